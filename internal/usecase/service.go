package usecase

import (
	"github.com/vinodbargaje/happy-paws-connect/internal/data/repository"
	"github.com/vinodbargaje/happy-paws-connect/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Pet       PetService
	Caregiver CaregiverService
	Booking   BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, publisher ChangePublisher, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Pet:       NewPetService(repo, log),
		Caregiver: NewCaregiverService(repo, log),
		Booking:   NewBookingService(repo, publisher, log),
	}
}
