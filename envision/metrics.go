package envision

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/envision/legality"
)

const metricsNamespace = "envision"

const buildSubsystem = "build"

// Build outcomes used as the "outcome" label of BuildsTotal.
const (
	OutcomeOK       = "ok"
	OutcomeLimit    = "limit"
	OutcomeError    = "error"
	OutcomeCanceled = "canceled"
)

// Metrics holds the Prometheus collectors updated by Build.
type Metrics struct {
	// BuildsTotal counts Build calls by outcome (ok, limit, error, canceled).
	BuildsTotal *prometheus.CounterVec

	// CandidatesTotal counts enumerated candidate states.
	CandidatesTotal prometheus.Counter

	// RejectionsTotal counts illegal candidates by the stage that rejected them.
	RejectionsTotal *prometheus.CounterVec

	// StatesTotal counts legal states added to graphs.
	StatesTotal prometheus.Counter

	// TransitionsTotal counts edges added to graphs.
	TransitionsTotal prometheus.Counter

	// DurationSeconds measures successful Build wall time.
	DurationSeconds prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	m := &Metrics{
		BuildsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: buildSubsystem,
			Name:      "runs_total",
			Help:      "Envisionment runs by outcome",
		}, []string{"outcome"}),
		CandidatesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: buildSubsystem,
			Name:      "candidates_total",
			Help:      "Candidate states enumerated",
		}),
		RejectionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: buildSubsystem,
			Name:      "rejections_total",
			Help:      "Illegal candidate states by rejecting stage",
		}, []string{"stage"}),
		StatesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: buildSubsystem,
			Name:      "states_total",
			Help:      "Legal states added to state graphs",
		}),
		TransitionsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: buildSubsystem,
			Name:      "transitions_total",
			Help:      "Transitions added to state graphs",
		}),
		DurationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: buildSubsystem,
			Name:      "duration_seconds",
			Help:      "Envisionment run duration",
			Buckets:   []float64{0.001, 0.01, 0.1, 1, 10, 60},
		}),
	}
	// pre-create label values so they export as zero
	for _, st := range legality.Stages {
		m.RejectionsTotal.WithLabelValues(st.String())
	}
	return m
}

func (m *Metrics) observe(outcome string, st *Stats) {
	if m == nil {
		return
	}
	m.BuildsTotal.WithLabelValues(outcome).Inc()
	if st == nil {
		return
	}
	m.CandidatesTotal.Add(float64(st.Candidates))
	for stage, n := range st.Rejected {
		m.RejectionsTotal.WithLabelValues(stage.String()).Add(float64(n))
	}
	m.StatesTotal.Add(float64(st.Nodes))
	m.TransitionsTotal.Add(float64(st.Edges))
	m.DurationSeconds.Observe(st.Duration.Seconds())
}
