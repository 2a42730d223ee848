package vm

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics wires the dispatcher's per-step activity into Prometheus: a
// counter of steps executed broken down by opcode, and a histogram of
// how many steps a single RunToHalt call took. Every method has a
// nil-receiver no-op path, so tests and other callers that don't care
// about observability can pass a nil *Metrics to Config without any
// special-casing.
//
// No direct teacher precedent in core/vm (the teacher's own chain-level
// metrics live in pkg/metrics, built on ewma/influx); this gives the
// corpus's prometheus/client_golang dependency — indirect in the
// teacher's go.mod — a concrete home in the component spec.md §2 calls
// out as carrying 65% of the system (the dispatcher).
type Metrics struct {
	stepsTotal    *prometheus.CounterVec
	stepsPerRun   prometheus.Histogram
	runStepsSoFar int
}

// NewMetrics registers and returns a Metrics bound to reg. Pass
// prometheus.NewRegistry() for an isolated registry (recommended for
// tests that construct multiple ExecutionContexts), or nil to use the
// default global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		stepsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coreevm",
			Subsystem: "interpreter",
			Name:      "steps_total",
			Help:      "Number of opcode steps executed, by opcode mnemonic.",
		}, []string{"opcode"}),
		stepsPerRun: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "coreevm",
			Subsystem: "interpreter",
			Name:      "run_steps",
			Help:      "Number of steps executed per RunToHalt call.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.stepsTotal, m.stepsPerRun)
	return m
}

// observeStep records one executed opcode. No-op on a nil Metrics.
func (m *Metrics) observeStep(op OpCode) {
	if m == nil {
		return
	}
	m.stepsTotal.WithLabelValues(op.String()).Inc()
	m.runStepsSoFar++
}

// observeRunEnd records the step count of a completed RunToHalt call and
// resets the counter for the next one. No-op on a nil Metrics.
func (m *Metrics) observeRunEnd() {
	if m == nil {
		return
	}
	m.stepsPerRun.Observe(float64(m.runStepsSoFar))
	m.runStepsSoFar = 0
}
