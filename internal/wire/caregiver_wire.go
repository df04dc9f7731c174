package wire

import (
	"github.com/vinodbargaje/happy-paws-connect/internal/adaptor"
	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"
	"github.com/vinodbargaje/happy-paws-connect/internal/data/repository"
	"github.com/vinodbargaje/happy-paws-connect/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCaregiver(
	r chi.Router,
	caregiverHandler *adaptor.CaregiverHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public discovery routes
	r.Get("/api/caregivers", caregiverHandler.ListCaregivers)
	r.Get("/api/caregivers/{id}", caregiverHandler.GetCaregiver)

	// Caregivers manage their own profile
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Role, log))
		r.Use(middleware.RequireRole(string(entity.RoleCaregiver), log))

		r.Put("/api/caregivers/me", caregiverHandler.UpdateProfile)
	})
}
