package wire

import (
	"net/http"

	"github.com/vinodbargaje/happy-paws-connect/internal/adaptor"
	"github.com/vinodbargaje/happy-paws-connect/internal/data/repository"
	"github.com/vinodbargaje/happy-paws-connect/internal/realtime"
	"github.com/vinodbargaje/happy-paws-connect/internal/store"
	"github.com/vinodbargaje/happy-paws-connect/internal/usecase"
	"github.com/vinodbargaje/happy-paws-connect/pkg/middleware"
	"github.com/vinodbargaje/happy-paws-connect/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service, realtime hub and handler graph on top of the
// repository and returns the configured router.
func Wiring(repo *repository.Repository, config *utils.Config, notifier *realtime.Notifier, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, notifier, logger)

	storeFactory := func(userID uuid.UUID) *store.BookingStore {
		return store.New(userID, repo.Booking.FindByParticipant, logger)
	}
	hub := realtime.NewHub(notifier, storeFactory, logger)

	handler := adaptor.NewHandler(service, hub, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, logger)
	wirePet(r, handler.Pet, repo, logger)
	wireCaregiver(r, handler.Caregiver, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireRealtime(r, handler.Realtime, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
