package vm

import "testing"

func TestStructLogTracerSnapshotsStackBottomToTop(t *testing.T) {
	tracer := NewStructLogTracer()
	s := NewStack()
	s.Push(new(Word).SetUint64(1))
	s.Push(new(Word).SetUint64(2))

	tracer.CaptureStep(0, PUSH1, s, NewMemory())
	if len(tracer.Logs) != 1 {
		t.Fatalf("len(Logs) = %d, want 1", len(tracer.Logs))
	}
	got := tracer.Logs[0].Stack
	if len(got) != 2 || got[0].Uint64() != 1 || got[1].Uint64() != 2 {
		t.Errorf("Stack snapshot = %v, want [1 2] (bottom first)", got)
	}
}

func TestStructLogTracerRecordsPC(t *testing.T) {
	tracer := NewStructLogTracer()
	tracer.CaptureStep(5, JUMPDEST, NewStack(), NewMemory())
	if tracer.Logs[0].PC != 5 {
		t.Errorf("Logs[0].PC = %d, want 5", tracer.Logs[0].PC)
	}
	if tracer.Logs[0].Op != JUMPDEST {
		t.Errorf("Logs[0].Op = %s, want JUMPDEST", tracer.Logs[0].Op)
	}
}
