package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	bookingOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_operations_total",
			Help: "Total booking operations by type and outcome",
		},
		[]string{"operation", "status"},
	)

	bookingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "booking_duration_seconds",
			Help:    "Duration of booking operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	ticketsBooked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_booked_total",
			Help: "Total number of tickets booked, counting each group member",
		},
	)
)

// TrackBooking records the outcome of a booking operation
// ("book_single", "book_group", "cancel").
func TrackBooking(operation, status string) {
	bookingOperations.WithLabelValues(operation, status).Inc()
}

// ObserveBooking records how long a booking operation took.
func ObserveBooking(operation string, d time.Duration) {
	bookingDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// AddTicketsBooked bumps the booked-ticket counter by n.
func AddTicketsBooked(n int) {
	ticketsBooked.Add(float64(n))
}

// Handler exposes the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
