package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the gateway.
type Metrics struct {
	Payments            *prometheus.CounterVec
	BankRequestDuration *prometheus.HistogramVec
}

// New registers the gateway collectors on the given registerer. Tests pass a
// fresh registry to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Payments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_payments_total",
				Help: "Payments by terminal outcome (authorized, declined, rejected, unavailable, failed)",
			},
			[]string{"status"},
		),
		BankRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_bank_request_duration_seconds",
				Help:    "Duration of acquiring bank calls by outcome",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
	}
}
