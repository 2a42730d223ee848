package vm

import "github.com/cockroachdb/errors"

// Sentinel error kinds from spec.md §7. Every dispatch failure is one of
// these (wrapped with PC/opcode context by Step — see StepError below);
// drivers match on these with errors.Is.
var (
	ErrStackOverflow   = errors.New("stack overflow")
	ErrStackUnderflow  = errors.New("stack underflow")
	ErrStackOutOfRange = errors.New("stack index out of range")
	ErrInvalidJump     = errors.New("invalid jump destination")
	ErrInvalidOpcode   = errors.New("invalid opcode")
	ErrMemoryError     = errors.New("memory error")
	ErrOffsetTooLarge  = errors.New("offset exceeds platform address size")

	// ErrStepBudgetExceeded is returned by RunToHalt when max_steps is
	// exhausted before the context halts. Unlike the errors above it does
	// NOT halt the context — the caller may resume with a further Step
	// or RunToHalt call (spec.md §5: "a driver wishing to impose a step
	// budget checks its own counter between step invocations").
	ErrStepBudgetExceeded = errors.New("step budget exceeded")

	// ErrHalted is returned by Step when called on a context that has
	// already halted (spec.md §3: "once halted, no further step occurs";
	// §9: "this spec forbids such reuse"). RunToHalt on an already halted
	// context executes no step and returns nil.
	ErrHalted = errors.New("execution context already halted")
)

// StepError is the tagged error a driver receives from a failed Step:
// the error Kind plus the PC and opcode at the point of failure, per
// spec.md §7 ("a tagged error describing kind and the PC at which it
// occurred; internal enum nesting ... is an implementation choice").
type StepError struct {
	Kind error
	PC   uint64
	Op   OpCode
}

func (e *StepError) Error() string {
	return errors.Wrapf(e.Kind, "pc=%d op=%s", e.PC, e.Op).Error()
}

func (e *StepError) Unwrap() error { return e.Kind }

// newStepError wraps kind with the PC/opcode it failed at.
func newStepError(kind error, pc uint64, op OpCode) *StepError {
	return &StepError{Kind: kind, PC: pc, Op: op}
}
