package wire

import (
	"github.com/vinodbargaje/happy-paws-connect/internal/adaptor"
	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"
	"github.com/vinodbargaje/happy-paws-connect/internal/data/repository"
	"github.com/vinodbargaje/happy-paws-connect/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePet(
	r chi.Router,
	petHandler *adaptor.PetHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Pets belong to owners; caregivers see pet details only through their
	// bookings.
	r.Route("/api/pets", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Role, log))
		r.Use(middleware.RequireRole(string(entity.RoleOwner), log))

		r.Get("/", petHandler.GetPets)
		r.Post("/", petHandler.CreatePet)
		r.Get("/{id}", petHandler.GetPetByID)
		r.Put("/{id}", petHandler.UpdatePet)
		r.Delete("/{id}", petHandler.DeletePet)
	})
}
