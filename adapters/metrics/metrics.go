// Package metrics provides Prometheus metrics collection for ArtistDesk.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds all Prometheus metrics for ArtistDesk.
type Collector struct {
	// HTTP metrics
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Auth metrics
	LoginsTotal   *prometheus.CounterVec
	AccessDenied  *prometheus.CounterVec
	SessionsAlive prometheus.Gauge

	// CSV transfer metrics
	ImportsTotal *prometheus.CounterVec
	ImportRows   *prometheus.CounterVec
	ExportsTotal prometheus.Counter

	// Config metrics
	ConfigReloads      prometheus.Counter
	ConfigReloadErrors prometheus.Counter
}

// New creates a new metrics collector registered on the default registry.
func New() *Collector {
	return newWith(promauto.With(prometheus.DefaultRegisterer))
}

// NewWithRegistry creates a new metrics collector with a custom registry.
// Useful for testing to avoid global state.
func NewWithRegistry(reg prometheus.Registerer) *Collector {
	return newWith(promauto.With(reg))
}

func newWith(factory promauto.Factory) *Collector {
	return &Collector{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "artistdesk",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "artistdesk",
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path", "status"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "artistdesk",
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
		),

		LoginsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "artistdesk",
				Name:      "logins_total",
				Help:      "Total login attempts by result",
			},
			[]string{"result"}, // "success", "invalid_credentials", "invalid_form"
		),
		AccessDenied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "artistdesk",
				Name:      "access_denied_total",
				Help:      "Requests rejected by the role guard",
			},
			[]string{"role"},
		),
		SessionsAlive: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "artistdesk",
				Name:      "sessions_alive",
				Help:      "Sessions created minus sessions ended on this process",
			},
		),

		ImportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "artistdesk",
				Name:      "artist_imports_total",
				Help:      "CSV import attempts by result",
			},
			[]string{"result"}, // "ok", "bad_header", "no_records", "error"
		),
		ImportRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "artistdesk",
				Name:      "artist_import_rows_total",
				Help:      "CSV import rows by outcome",
			},
			[]string{"outcome"}, // "inserted", "skipped"
		),
		ExportsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "artistdesk",
				Name:      "artist_exports_total",
				Help:      "Total CSV exports served",
			},
		),

		ConfigReloads: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "artistdesk",
				Name:      "config_reloads_total",
				Help:      "Total number of successful config reloads",
			},
		),
		ConfigReloadErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "artistdesk",
				Name:      "config_reload_errors_total",
				Help:      "Total number of config reload errors",
			},
		),
	}
}
