package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"
	"github.com/vinodbargaje/happy-paws-connect/internal/data/repository"
	"github.com/vinodbargaje/happy-paws-connect/internal/dto/request"
	"github.com/vinodbargaje/happy-paws-connect/internal/dto/response"
	"github.com/vinodbargaje/happy-paws-connect/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PetService interface {
	GetPets(ctx context.Context, ownerID uuid.UUID) ([]response.PetResponse, error)
	GetPetByID(ctx context.Context, ownerID uuid.UUID, petID string) (*response.PetResponse, error)
	CreatePet(ctx context.Context, ownerID uuid.UUID, req *request.CreatePetRequest) (*response.PetResponse, error)
	UpdatePet(ctx context.Context, ownerID uuid.UUID, petID string, req *request.UpdatePetRequest) (*response.PetResponse, error)
	DeletePet(ctx context.Context, ownerID uuid.UUID, petID string) error
}

type petService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPetService(repo *repository.Repository, log *zap.Logger) PetService {
	return &petService{
		repo: repo,
		log:  log.With(zap.String("service", "pet")),
	}
}

func (s *petService) GetPets(ctx context.Context, ownerID uuid.UUID) ([]response.PetResponse, error) {
	// No identity, no query: callers without a session get an empty list,
	// never someone else's pets.
	if ownerID == uuid.Nil {
		return []response.PetResponse{}, nil
	}

	pets, err := s.repo.Pet.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pets")
	}

	return response.PetsToResponse(pets), nil
}

func (s *petService) GetPetByID(ctx context.Context, ownerID uuid.UUID, petID string) (*response.PetResponse, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("unauthorized: no identity")
	}

	pet, err := s.findOwnedPet(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	resp := response.PetToResponse(pet)
	return &resp, nil
}

func (s *petService) CreatePet(ctx context.Context, ownerID uuid.UUID, req *request.CreatePetRequest) (*response.PetResponse, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("unauthorized: no identity")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("CreatePet validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	pet := &entity.Pet{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID:           ownerID,
		Name:              req.Name,
		PetType:           req.PetType,
		Breed:             req.Breed,
		Age:               req.Age,
		Sex:               req.Sex,
		Weight:            req.Weight,
		PhotoURL:          req.PhotoURL,
		SpecialNeeds:      req.SpecialNeeds,
		MedicalConditions: req.MedicalConditions,
		VaccinationStatus: req.VaccinationStatus,
		Temperament:       req.Temperament,
		FeedingSchedule:   req.FeedingSchedule,
		BehaviorNotes:     req.BehaviorNotes,
	}

	if err := s.repo.Pet.Create(ctx, pet); err != nil {
		return nil, fmt.Errorf("failed to create pet")
	}

	s.log.Info("Pet created",
		zap.String("pet_id", pet.ID.String()),
		zap.String("owner_id", ownerID.String()),
	)

	resp := response.PetToResponse(pet)
	return &resp, nil
}

func (s *petService) UpdatePet(ctx context.Context, ownerID uuid.UUID, petID string, req *request.UpdatePetRequest) (*response.PetResponse, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("unauthorized: no identity")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	pet, err := s.findOwnedPet(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	applyPetUpdate(pet, req)
	pet.UpdatedAt = time.Now()

	if err := s.repo.Pet.Update(ctx, pet); err != nil {
		return nil, fmt.Errorf("failed to update pet")
	}

	resp := response.PetToResponse(pet)
	return &resp, nil
}

func (s *petService) DeletePet(ctx context.Context, ownerID uuid.UUID, petID string) error {
	if ownerID == uuid.Nil {
		return fmt.Errorf("unauthorized: no identity")
	}

	pet, err := s.findOwnedPet(ctx, ownerID, petID)
	if err != nil {
		return err
	}

	if err := s.repo.Pet.Delete(ctx, pet.ID); err != nil {
		return fmt.Errorf("failed to delete pet")
	}

	s.log.Info("Pet deleted",
		zap.String("pet_id", pet.ID.String()),
		zap.String("owner_id", ownerID.String()),
	)

	return nil
}

// findOwnedPet resolves petID and enforces that ownerID owns it. A pet owned
// by someone else reads as not found, not forbidden.
func (s *petService) findOwnedPet(ctx context.Context, ownerID uuid.UUID, petID string) (*entity.Pet, error) {
	id, err := uuid.Parse(petID)
	if err != nil {
		return nil, fmt.Errorf("invalid pet ID %s", petID)
	}

	pet, err := s.repo.Pet.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load pet")
	}
	if pet == nil || pet.OwnerID != ownerID {
		return nil, fmt.Errorf("pet %s not found", petID)
	}

	return pet, nil
}

func applyPetUpdate(pet *entity.Pet, req *request.UpdatePetRequest) {
	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.PetType != nil {
		pet.PetType = *req.PetType
	}
	if req.Breed != nil {
		pet.Breed = req.Breed
	}
	if req.Age != nil {
		pet.Age = req.Age
	}
	if req.Sex != nil {
		pet.Sex = req.Sex
	}
	if req.Weight != nil {
		pet.Weight = req.Weight
	}
	if req.PhotoURL != nil {
		pet.PhotoURL = req.PhotoURL
	}
	if req.SpecialNeeds != nil {
		pet.SpecialNeeds = req.SpecialNeeds
	}
	if req.MedicalConditions != nil {
		pet.MedicalConditions = req.MedicalConditions
	}
	if req.VaccinationStatus != nil {
		pet.VaccinationStatus = req.VaccinationStatus
	}
	if req.Temperament != nil {
		pet.Temperament = req.Temperament
	}
	if req.FeedingSchedule != nil {
		pet.FeedingSchedule = req.FeedingSchedule
	}
	if req.BehaviorNotes != nil {
		pet.BehaviorNotes = req.BehaviorNotes
	}
}
