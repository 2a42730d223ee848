package vm

// StepTracer captures execution traces step by step. Attaching one to
// Config lets a driver record every opcode executed without the core
// itself committing to any particular trace format.
//
// Grounded on core/vm/tracer.go's EVMLogger in the teacher, with the gas
// fields (gas, cost) dropped — this spec carries no gas accounting — and
// CaptureStart/CaptureEnd collapsed away, since this interpreter has no
// nested call frames to bracket.
type StepTracer interface {
	// CaptureStep is called immediately before the opcode at pc executes.
	CaptureStep(pc uint64, op OpCode, stack *Stack, memory *Memory)
}

// StructLogEntry is a single step recorded by a StructLogTracer.
type StructLogEntry struct {
	PC    uint64
	Op    OpCode
	Depth int
	Stack []Word
}

// StructLogTracer collects a step-by-step trace in memory, useful for
// tests and for drivers that want to inspect a full run after the fact.
type StructLogTracer struct {
	Logs []StructLogEntry
}

// NewStructLogTracer returns a new, empty StructLogTracer.
func NewStructLogTracer() *StructLogTracer {
	return &StructLogTracer{}
}

// CaptureStep records one opcode step, snapshotting the stack contents
// bottom-to-top so later mutation of the live stack doesn't alias the
// recorded entry.
func (t *StructLogTracer) CaptureStep(pc uint64, op OpCode, stack *Stack, memory *Memory) {
	snapshot := make([]Word, stack.Depth())
	for i := range snapshot {
		w, err := stack.Peek(stack.Depth() - 1 - i)
		if err != nil {
			break
		}
		snapshot[i] = *w
	}
	t.Logs = append(t.Logs, StructLogEntry{PC: pc, Op: op, Stack: snapshot})
}

var _ StepTracer = (*StructLogTracer)(nil)
