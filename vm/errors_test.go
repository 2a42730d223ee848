package vm

import (
	"errors"
	"strings"
	"testing"
)

func TestStepErrorUnwraps(t *testing.T) {
	err := newStepError(ErrStackUnderflow, 12, ADD)
	if !errors.Is(err, ErrStackUnderflow) {
		t.Error("StepError should unwrap to its Kind")
	}
}

func TestStepErrorMessageNamesPCAndOp(t *testing.T) {
	err := newStepError(ErrInvalidJump, 7, JUMP)
	msg := err.Error()
	if !strings.Contains(msg, "7") || !strings.Contains(msg, "JUMP") {
		t.Errorf("StepError.Error() = %q, want it to mention pc=7 and op=JUMP", msg)
	}
}
