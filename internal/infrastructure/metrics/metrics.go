package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ressKim-io/NewsGuard/internal/usecase"
)

// Recorder exports prediction form outcomes as prometheus metrics
type Recorder struct {
	interactions *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

// NewRecorder creates a Recorder and registers its collectors with reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		interactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "newsguard",
			Subsystem: "form",
			Name:      "interactions_total",
			Help:      "Prediction form interactions by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "newsguard",
			Subsystem: "form",
			Name:      "interaction_duration_seconds",
			Help:      "Time from submission to display update.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	reg.MustRegister(r.interactions, r.duration)
	return r
}

// Record implements usecase.OutcomeRecorder
func (r *Recorder) Record(outcome usecase.Outcome, elapsed time.Duration) {
	r.interactions.WithLabelValues(string(outcome)).Inc()
	r.duration.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
}
