package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"
	"github.com/vinodbargaje/happy-paws-connect/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CaregiverFilter narrows the caregiver listing. Flat filtering only, no
// ranking.
type CaregiverFilter struct {
	Service  string
	Verified *bool
}

type CaregiverRepository interface {
	Create(ctx context.Context, profile *entity.CaregiverProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CaregiverProfile, error)
	Update(ctx context.Context, profile *entity.CaregiverProfile) error
	List(ctx context.Context, filter CaregiverFilter) ([]*entity.CaregiverProfile, error)
}

type caregiverRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCaregiverRepository(db database.PgxIface, log *zap.Logger) CaregiverRepository {
	return &caregiverRepository{
		db:  db,
		log: log.With(zap.String("repository", "caregiver")),
	}
}

const caregiverColumns = `id, user_id, bio, services, hourly_rate, daily_rate, years_experience,
	is_verified, rating, total_reviews, service_radius, languages, created_at, updated_at`

func scanCaregiver(row pgx.Row) (*entity.CaregiverProfile, error) {
	var profile entity.CaregiverProfile
	var services []byte

	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Bio,
		&services,
		&profile.HourlyRate,
		&profile.DailyRate,
		&profile.YearsExp,
		&profile.IsVerified,
		&profile.Rating,
		&profile.TotalReviews,
		&profile.ServiceRadius,
		&profile.Languages,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(services) > 0 {
		if err := json.Unmarshal(services, &profile.Services); err != nil {
			return nil, fmt.Errorf("decode services: %w", err)
		}
	}

	return &profile, nil
}

func (r *caregiverRepository) Create(ctx context.Context, profile *entity.CaregiverProfile) error {
	services, err := json.Marshal(profile.Services)
	if err != nil {
		return fmt.Errorf("encode services: %w", err)
	}

	query := `
		INSERT INTO caregiver_profiles (id, user_id, bio, services, hourly_rate, daily_rate,
		                                years_experience, is_verified, rating, total_reviews,
		                                service_radius, languages, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = r.db.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Bio,
		services,
		profile.HourlyRate,
		profile.DailyRate,
		profile.YearsExp,
		profile.IsVerified,
		profile.Rating,
		profile.TotalReviews,
		profile.ServiceRadius,
		profile.Languages,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create caregiver profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("create caregiver profile for %s: %w", profile.UserID.String(), err)
	}

	return nil
}

func (r *caregiverRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CaregiverProfile, error) {
	query := `SELECT ` + caregiverColumns + ` FROM caregiver_profiles WHERE user_id = $1`

	profile, err := scanCaregiver(r.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find caregiver profile",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find caregiver profile for %s: %w", userID.String(), err)
	}

	return profile, nil
}

func (r *caregiverRepository) Update(ctx context.Context, profile *entity.CaregiverProfile) error {
	services, err := json.Marshal(profile.Services)
	if err != nil {
		return fmt.Errorf("encode services: %w", err)
	}

	query := `
		UPDATE caregiver_profiles
		SET bio = $2, services = $3, hourly_rate = $4, daily_rate = $5, years_experience = $6,
		    is_verified = $7, service_radius = $8, languages = $9, updated_at = $10
		WHERE user_id = $1
	`

	result, err := r.db.Exec(ctx, query,
		profile.UserID,
		profile.Bio,
		services,
		profile.HourlyRate,
		profile.DailyRate,
		profile.YearsExp,
		profile.IsVerified,
		profile.ServiceRadius,
		profile.Languages,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update caregiver profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("update caregiver profile for %s: %w", profile.UserID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("caregiver profile for %s not found", profile.UserID.String())
	}

	return nil
}

func (r *caregiverRepository) List(ctx context.Context, filter CaregiverFilter) ([]*entity.CaregiverProfile, error) {
	query := `SELECT ` + caregiverColumns + ` FROM caregiver_profiles WHERE 1=1`
	args := []any{}

	if filter.Service != "" {
		args = append(args, filter.Service)
		query += fmt.Sprintf(` AND services @> jsonb_build_array(jsonb_build_object('name', $%d::text))`, len(args))
	}
	if filter.Verified != nil {
		args = append(args, *filter.Verified)
		query += fmt.Sprintf(` AND is_verified = $%d`, len(args))
	}

	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list caregiver profiles", zap.Error(err))
		return nil, fmt.Errorf("list caregiver profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*entity.CaregiverProfile
	for rows.Next() {
		profile, err := scanCaregiver(rows)
		if err != nil {
			r.log.Error("Failed to scan caregiver profile row", zap.Error(err))
			return nil, fmt.Errorf("scan caregiver profile row: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}
