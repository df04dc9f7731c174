package adaptor

import (
	"github.com/vinodbargaje/happy-paws-connect/internal/realtime"
	"github.com/vinodbargaje/happy-paws-connect/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Pet       *PetHandler
	Caregiver *CaregiverHandler
	Booking   *BookingHandler
	Realtime  *RealtimeHandler
}

func NewHandler(service *usecase.Service, hub *realtime.Hub, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Pet:       NewPetHandler(service.Pet, log),
		Caregiver: NewCaregiverHandler(service.Caregiver, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Realtime:  NewRealtimeHandler(hub, log),
	}
}
