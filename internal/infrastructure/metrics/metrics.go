package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the client engine.
type Metrics struct {
	// Gateway metrics
	GatewayRequests *prometheus.CounterVec
	GatewayDuration *prometheus.HistogramVec

	// Credential renewal metrics
	TokenRenewals       prometheus.Counter
	TokenRenewalErrors  prometheus.Counter
	RenewalWaiters      prometheus.Gauge

	// Session metrics
	Logins  prometheus.Counter
	Logouts prometheus.Counter
}

// New creates and registers all metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		GatewayRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_gateway_requests_total",
				Help: "Total number of gateway requests by method and status",
			},
			[]string{"method", "status"},
		),
		GatewayDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fintrack_gateway_request_duration_seconds",
				Help:    "Duration of gateway requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		TokenRenewals: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_token_renewals_total",
			Help: "Total number of credential renewal calls issued",
		}),
		TokenRenewalErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_token_renewal_errors_total",
			Help: "Total number of failed credential renewals",
		}),
		RenewalWaiters: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fintrack_renewal_waiters",
			Help: "Number of requests currently blocked on a renewal",
		}),
		Logins: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_logins_total",
			Help: "Total number of successful logins and signups",
		}),
		Logouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_logouts_total",
			Help: "Total number of logouts",
		}),
	}
}

// NewDefault registers on the default Prometheus registry.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}
