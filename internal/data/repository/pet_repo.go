package repository

import (
	"context"
	"fmt"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"
	"github.com/vinodbargaje/happy-paws-connect/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PetRepository interface {
	Create(ctx context.Context, pet *entity.Pet) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pet, error)
	Update(ctx context.Context, pet *entity.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type petRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPetRepository(db database.PgxIface, log *zap.Logger) PetRepository {
	return &petRepository{
		db:  db,
		log: log.With(zap.String("repository", "pet")),
	}
}

const petColumns = `id, owner_id, name, pet_type, breed, age, sex, weight, photo_url,
	special_needs, medical_conditions, vaccination_status, temperament,
	feeding_schedule, behavior_notes, created_at, updated_at`

func scanPet(row pgx.Row) (*entity.Pet, error) {
	var pet entity.Pet
	err := row.Scan(
		&pet.ID,
		&pet.OwnerID,
		&pet.Name,
		&pet.PetType,
		&pet.Breed,
		&pet.Age,
		&pet.Sex,
		&pet.Weight,
		&pet.PhotoURL,
		&pet.SpecialNeeds,
		&pet.MedicalConditions,
		&pet.VaccinationStatus,
		&pet.Temperament,
		&pet.FeedingSchedule,
		&pet.BehaviorNotes,
		&pet.CreatedAt,
		&pet.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) Create(ctx context.Context, pet *entity.Pet) error {
	query := `
		INSERT INTO pets (id, owner_id, name, pet_type, breed, age, sex, weight, photo_url,
		                  special_needs, medical_conditions, vaccination_status, temperament,
		                  feeding_schedule, behavior_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		pet.ID,
		pet.OwnerID,
		pet.Name,
		pet.PetType,
		pet.Breed,
		pet.Age,
		pet.Sex,
		pet.Weight,
		pet.PhotoURL,
		pet.SpecialNeeds,
		pet.MedicalConditions,
		pet.VaccinationStatus,
		pet.Temperament,
		pet.FeedingSchedule,
		pet.BehaviorNotes,
		pet.CreatedAt,
		pet.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create pet",
			zap.Error(err),
			zap.String("owner_id", pet.OwnerID.String()),
			zap.String("name", pet.Name),
		)
		return fmt.Errorf("create pet %s: %w", pet.Name, err)
	}

	return nil
}

func (r *petRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE id = $1`

	pet, err := scanPet(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find pet by ID",
			zap.Error(err),
			zap.String("pet_id", id.String()),
		)
		return nil, fmt.Errorf("find pet by ID %s: %w", id.String(), err)
	}

	return pet, nil
}

func (r *petRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find pets by owner ID",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find pets by owner ID %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	var pets []*entity.Pet
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			r.log.Error("Failed to scan pet row", zap.Error(err))
			return nil, fmt.Errorf("scan pet row: %w", err)
		}
		pets = append(pets, pet)
	}

	return pets, nil
}

func (r *petRepository) Update(ctx context.Context, pet *entity.Pet) error {
	query := `
		UPDATE pets
		SET name = $2, pet_type = $3, breed = $4, age = $5, sex = $6, weight = $7,
		    photo_url = $8, special_needs = $9, medical_conditions = $10,
		    vaccination_status = $11, temperament = $12, feeding_schedule = $13,
		    behavior_notes = $14, updated_at = $15
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		pet.ID,
		pet.Name,
		pet.PetType,
		pet.Breed,
		pet.Age,
		pet.Sex,
		pet.Weight,
		pet.PhotoURL,
		pet.SpecialNeeds,
		pet.MedicalConditions,
		pet.VaccinationStatus,
		pet.Temperament,
		pet.FeedingSchedule,
		pet.BehaviorNotes,
		pet.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update pet",
			zap.Error(err),
			zap.String("pet_id", pet.ID.String()),
		)
		return fmt.Errorf("update pet %s: %w", pet.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("pet %s not found", pet.ID.String())
	}

	return nil
}

func (r *petRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM pets WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete pet",
			zap.Error(err),
			zap.String("pet_id", id.String()),
		)
		return fmt.Errorf("delete pet %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("pet %s not found", id.String())
	}

	r.log.Info("Pet deleted", zap.String("pet_id", id.String()))
	return nil
}
