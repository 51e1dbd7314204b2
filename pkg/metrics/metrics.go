// Package metrics exposes Prometheus collectors for the delivery engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records delivery engine metrics.
type Recorder interface {
	IncDelivery(channel, status string)
	ObserveDispatchDuration(d time.Duration)
	IncEscalation()
}

type promRecorder struct {
	deliveries       *prometheus.CounterVec
	dispatchDuration prometheus.Histogram
	escalations      prometheus.Counter
}

// New registers and returns the default Prometheus recorder.
func New() Recorder {
	return &promRecorder{
		deliveries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "alert_deliveries_total",
			Help: "Delivery attempts by channel and outcome.",
		}, []string{"channel", "status"}),
		dispatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "alert_dispatch_duration_seconds",
			Help:    "Wall time of a full alert dispatch.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		escalations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "incident_escalations_total",
			Help: "Incident reports escalated to administrators.",
		}),
	}
}

func (r *promRecorder) IncDelivery(channel, status string) {
	r.deliveries.WithLabelValues(channel, status).Inc()
}

func (r *promRecorder) ObserveDispatchDuration(d time.Duration) {
	r.dispatchDuration.Observe(d.Seconds())
}

func (r *promRecorder) IncEscalation() {
	r.escalations.Inc()
}

// Nop returns a recorder that drops all observations. Used in tests.
func Nop() Recorder { return nopRecorder{} }

type nopRecorder struct{}

func (nopRecorder) IncDelivery(string, string) {}
func (nopRecorder) ObserveDispatchDuration(time.Duration) {}
func (nopRecorder) IncEscalation() {}
