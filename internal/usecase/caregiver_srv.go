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

type CaregiverService interface {
	ListCaregivers(ctx context.Context, filter repository.CaregiverFilter) ([]response.CaregiverProfileResponse, error)
	GetCaregiver(ctx context.Context, userID string) (*response.CaregiverProfileResponse, error)
	UpdateOwnProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateCaregiverProfileRequest) (*response.CaregiverProfileResponse, error)
}

type caregiverService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCaregiverService(repo *repository.Repository, log *zap.Logger) CaregiverService {
	return &caregiverService{
		repo: repo,
		log:  log.With(zap.String("service", "caregiver")),
	}
}

func (s *caregiverService) ListCaregivers(ctx context.Context, filter repository.CaregiverFilter) ([]response.CaregiverProfileResponse, error) {
	profiles, err := s.repo.Caregiver.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load caregivers")
	}

	return response.CaregiverProfilesToResponse(profiles), nil
}

func (s *caregiverService) GetCaregiver(ctx context.Context, userID string) (*response.CaregiverProfileResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid caregiver ID %s", userID)
	}

	profile, err := s.repo.Caregiver.FindByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load caregiver")
	}
	if profile == nil {
		return nil, fmt.Errorf("caregiver %s not found", userID)
	}

	resp := response.CaregiverProfileToResponse(profile)
	return &resp, nil
}

func (s *caregiverService) UpdateOwnProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateCaregiverProfileRequest) (*response.CaregiverProfileResponse, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("unauthorized: no identity")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("UpdateOwnProfile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	profile, err := s.repo.Caregiver.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load caregiver profile")
	}
	if profile == nil {
		return nil, fmt.Errorf("caregiver profile not found")
	}

	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.Services != nil {
		services := make([]entity.ServiceOffering, len(req.Services))
		for i, svc := range req.Services {
			services[i] = entity.ServiceOffering{
				Name:     svc.Name,
				Price:    svc.Price,
				Duration: svc.Duration,
			}
		}
		profile.Services = services
	}
	if req.HourlyRate != nil {
		profile.HourlyRate = req.HourlyRate
	}
	if req.DailyRate != nil {
		profile.DailyRate = req.DailyRate
	}
	if req.YearsExp != nil {
		profile.YearsExp = req.YearsExp
	}
	if req.ServiceRadius != nil {
		profile.ServiceRadius = req.ServiceRadius
	}
	if req.Languages != nil {
		profile.Languages = req.Languages
	}
	profile.UpdatedAt = time.Now()

	if err := s.repo.Caregiver.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update caregiver profile")
	}

	s.log.Info("Caregiver profile updated", zap.String("user_id", userID.String()))

	resp := response.CaregiverProfileToResponse(profile)
	return &resp, nil
}
