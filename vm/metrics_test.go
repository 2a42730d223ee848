package vm

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsObserveStep(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.observeStep(ADD)
	m.observeStep(ADD)
	m.observeStep(MUL)

	got := testutil.ToFloat64(m.stepsTotal.WithLabelValues("ADD"))
	if got != 2 {
		t.Errorf("steps_total{opcode=ADD} = %v, want 2", got)
	}
}

func TestMetricsNilReceiverIsNoop(t *testing.T) {
	var m *Metrics
	m.observeStep(ADD)
	m.observeRunEnd()
}

func TestMetricsRunToHaltRecordsStepCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	code := []byte{byte(PUSH1), 1, byte(PUSH1), 2, byte(ADD), byte(STOP)}
	ctx := NewExecutionContext(Address{}, code, nil, Config{Metrics: m})
	if err := ctx.RunToHalt(0); err != nil {
		t.Fatalf("RunToHalt: %v", err)
	}
	if count := testutil.CollectAndCount(m.stepsTotal); count == 0 {
		t.Error("expected steps_total to have at least one labeled series")
	}
}
