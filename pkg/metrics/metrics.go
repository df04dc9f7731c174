package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Number of booking requests created",
		},
	)

	bookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_status_transitions_total",
			Help: "Number of booking status transitions by target status",
		},
		[]string{"status"},
	)

	bookingsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_deleted_total",
			Help: "Number of bookings deleted",
		},
	)

	realtimeEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realtime_events_total",
			Help: "Number of booking change notifications received by operation",
		},
		[]string{"op"},
	)

	staleInService = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookings_in_service_window",
			Help: "Confirmed or in-progress bookings whose start has passed but end has not",
		},
	)
)

// Register registers all collectors with the default registry. Safe to call
// more than once.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			bookingsCreated,
			bookingTransitions,
			bookingsDeleted,
			realtimeEvents,
			staleInService,
		)
	})
}

func BookingCreated() {
	bookingsCreated.Inc()
}

func BookingTransition(status string) {
	bookingTransitions.WithLabelValues(status).Inc()
}

func BookingDeleted() {
	bookingsDeleted.Inc()
}

func RealtimeEvent(op string) {
	realtimeEvents.WithLabelValues(op).Inc()
}

func SetInServiceWindow(n float64) {
	staleInService.Set(n)
}
