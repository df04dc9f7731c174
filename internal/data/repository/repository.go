package repository

import (
	"github.com/vinodbargaje/happy-paws-connect/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Session   SessionRepository
	Role      RoleRepository
	Pet       PetRepository
	Caregiver CaregiverRepository
	Booking   BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Session:   NewSessionRepository(db, log),
		Role:      NewRoleRepository(db, log),
		Pet:       NewPetRepository(db, log),
		Caregiver: NewCaregiverRepository(db, log),
		Booking:   NewBookingRepository(db, log),
	}
}
