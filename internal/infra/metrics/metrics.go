package metrics

import (
	"net/http"
	"strconv"
	"time"

	"barbershop-booking/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns a private prometheus registry so tests can build as many as they like.
type Registry struct {
	reg *prometheus.Registry

	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	reservations  *prometheus.CounterVec
	notifications *prometheus.CounterVec
	slotCache     *prometheus.CounterVec
}

func New(cfg config.MetricsConfig) *Registry {
	ns := cfg.Namespace
	r := &Registry{
		reg: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: ns,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		reservations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "reservations_total",
				Help:      "Reservation attempts by outcome.",
			},
			[]string{"outcome"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "notifications_total",
				Help:      "Booking notifications by event and delivery result.",
			},
			[]string{"event", "result"},
		),
		slotCache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "slot_cache_operations_total",
				Help:      "Availability cache lookups and writes by result.",
			},
			[]string{"result"},
		),
	}
	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.requests, r.duration, r.reservations, r.notifications, r.slotCache,
	)
	return r
}

func (r *Registry) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	r.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.duration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func (r *Registry) ObserveReservation(outcome string) {
	r.reservations.WithLabelValues(outcome).Inc()
}

func (r *Registry) ObserveNotification(event string, delivered bool) {
	result := "delivered"
	if !delivered {
		result = "failed"
	}
	r.notifications.WithLabelValues(event, result).Inc()
}

// ObserveSlotCache takes one of hit, miss, write, stale or error.
func (r *Registry) ObserveSlotCache(result string) {
	r.slotCache.WithLabelValues(result).Inc()
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer exposes the registry to tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
