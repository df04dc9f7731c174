package wire

import (
	"github.com/vinodbargaje/happy-paws-connect/internal/adaptor"
	"github.com/vinodbargaje/happy-paws-connect/internal/data/entity"
	"github.com/vinodbargaje/happy-paws-connect/internal/data/repository"
	"github.com/vinodbargaje/happy-paws-connect/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public route: the request form shows slots before login
	r.Get("/api/bookings/time-slots", bookingHandler.GetTimeSlots)

	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.Role, log))

		// Either participant, role-agnostic
		r.Get("/", bookingHandler.GetBookings)
		r.Get("/dashboard", bookingHandler.GetDashboard)
		r.Put("/{id}/status", bookingHandler.UpdateStatus)
		r.Delete("/{id}", bookingHandler.DeleteBooking)

		// Only owners submit booking requests
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(string(entity.RoleOwner), log))
			r.Post("/", bookingHandler.CreateBooking)
		})
	})
}
