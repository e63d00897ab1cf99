package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "muzrent"

// Outcome labels.
const (
	OutcomeSuccess   = "success"
	OutcomeNotFound  = "not_found"
	OutcomeConflict  = "conflict"
	OutcomeForbidden = "forbidden"
	OutcomeTransient = "transient"
	OutcomeError     = "error"
)

type Metrics struct {
	bookings      *prometheus.CounterVec
	cancellations *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	statusFixes   prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking attempts by outcome.",
		}, []string{"outcome"}),
		cancellations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cancellations_total",
			Help:      "Cancellation attempts by outcome.",
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		statusFixes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "item_status_fixes_total",
			Help:      "Item statuses corrected by the reconciler.",
		}),
	}

	reg.MustRegister(m.bookings, m.cancellations, m.httpRequests, m.httpDuration, m.statusFixes)
	return m
}

func (m *Metrics) RecordBooking(err error) {
	m.bookings.WithLabelValues(Outcome(err)).Inc()
}

func (m *Metrics) RecordCancellation(err error) {
	m.cancellations.WithLabelValues(Outcome(err)).Inc()
}

func (m *Metrics) RecordStatusFixes(n int) {
	m.statusFixes.Add(float64(n))
}

func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// Outcome maps an operation result onto a bounded label set.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrTransient):
		return OutcomeTransient
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrRentalNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrItemUnavailable):
		return OutcomeConflict
	case errors.Is(err, domain.ErrForbidden):
		return OutcomeForbidden
	default:
		return OutcomeError
	}
}
