package wire

import (
	"github.com/vinodbargaje/happy-paws-connect/internal/adaptor"
	"github.com/vinodbargaje/happy-paws-connect/internal/data/repository"
	"github.com/vinodbargaje/happy-paws-connect/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRealtime(
	r chi.Router,
	realtimeHandler *adaptor.RealtimeHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Role, log))

		// GET /api/bookings/sync - websocket dashboard sync
		r.Get("/api/bookings/sync", realtimeHandler.Sync)
	})
}
