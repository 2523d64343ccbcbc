package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the Prometheus metrics of the booking API on its own
// prometheus.Registry, so several servers can coexist in one process.
type Registry struct {
	reg *prometheus.Registry

	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	OrdersCreatedTotal  prometheus.Counter
	TicketsSoldTotal    prometheus.Counter
	SeatConflictsTotal  prometheus.Counter
	LoginsRejectedTotal *prometheus.CounterVec
}

func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Registry{
		reg: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "airport_http_requests_total",
				Help: "Total HTTP requests processed by route, method, and status code",
			},
			[]string{"route", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "airport_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"route", "method"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "airport_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		OrdersCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "airport_orders_created_total",
				Help: "Total orders placed",
			},
		),
		TicketsSoldTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "airport_tickets_sold_total",
				Help: "Total tickets stored as part of placed or replaced orders",
			},
		),
		SeatConflictsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "airport_seat_conflicts_total",
				Help: "Order writes rejected because a requested seat was already sold",
			},
		),
		LoginsRejectedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "airport_logins_rejected_total",
				Help: "Login attempts rejected by reason",
			},
			[]string{"reason"},
		),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
