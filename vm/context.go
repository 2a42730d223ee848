package vm

import "github.com/cockroachdb/errors"

// Config bundles the optional collaborators an ExecutionContext is built
// with: a tracer, a metrics sink, the jump-validity strategy to use, and
// the environment accessors CALLER/CALLVALUE read through. Every field
// is optional; the zero Config runs with no tracing, no metrics, naive
// JUMPDEST validation, and a ZeroEnvironment.
//
// Grounded on core/vm/interpreter.go's Config in the teacher (there it
// carries Tracer, NoBaseFee, EnableOpcodeOptimizations and a dozen
// fork-gating bools; here it's trimmed to exactly what this spec's core
// needs).
type Config struct {
	Tracer         StepTracer
	Metrics        *Metrics
	StrictJumpdest bool
	Environment    EnvironmentProvider
}

// ExecutionContext is the mutable state a single call frame's bytecode
// executes against: the code being run, the operand stack, linear
// memory, the immutable calldata, the contract's own address, the
// program counter, and the halted/return-data pair that records how
// execution ended.
//
// Grounded on core/vm/interpreter.go's ScopeContext plus the halted/pc
// fields core/vm/contract.go and original_source/src/evm/context.rs
// both fold into a single struct; this spec's ExecutionContext follows
// original_source's single-struct shape rather than the teacher's
// Contract/ScopeContext split, since there is no call-frame nesting to
// separate out here.
type ExecutionContext struct {
	code            []byte
	stack           *Stack
	memory          *Memory
	calldata        *Calldata
	contractAddress Address

	pc         uint64
	halted     bool
	returnData []byte

	jumpdests *JumpdestSet
	cfg       Config
}

// NewExecutionContext constructs a fresh, unstarted ExecutionContext for
// address running code against calldata. If cfg.Environment is nil, a
// ZeroEnvironment is used so the context is always safe to step.
func NewExecutionContext(address Address, code, calldata []byte, cfg Config) *ExecutionContext {
	if cfg.Environment == nil {
		cfg.Environment = ZeroEnvironment{}
	}
	ctx := &ExecutionContext{
		code:            code,
		stack:           NewStack(),
		memory:          NewMemory(),
		calldata:        NewCalldata(calldata),
		contractAddress: address,
		cfg:             cfg,
	}
	if cfg.StrictJumpdest {
		ctx.jumpdests = BuildJumpdestSet(code)
	}
	return ctx
}

func (c *ExecutionContext) Stack() *Stack            { return c.stack }
func (c *ExecutionContext) Memory() *Memory          { return c.memory }
func (c *ExecutionContext) Calldata() *Calldata      { return c.calldata }
func (c *ExecutionContext) Code() []byte             { return c.code }
func (c *ExecutionContext) PC() uint64               { return c.pc }
func (c *ExecutionContext) Halted() bool             { return c.halted }
func (c *ExecutionContext) ReturnData() []byte       { return c.returnData }
func (c *ExecutionContext) ContractAddress() Address { return c.contractAddress }
func (c *ExecutionContext) Environment() EnvironmentProvider { return c.cfg.Environment }

// CodeLen reports the total length of the running code, which CODESIZE
// reads directly.
func (c *ExecutionContext) CodeLen() uint64 {
	return uint64(len(c.code))
}

// ReadCode copies length bytes of code starting at offset into dst,
// zero-filling past the end of the code slice. CODECOPY and the PUSH
// handlers both read through this.
func (c *ExecutionContext) ReadCode(dst []byte, offset uint64) {
	for i := range dst {
		dst[i] = 0
	}
	if offset >= uint64(len(c.code)) {
		return
	}
	n := copy(dst, c.code[offset:])
	_ = n
}

// CurrentOp returns the opcode at the current PC, or STOP if the PC has
// run off the end of the code — mirroring the canonical EVM rule that
// execution past the end of code behaves as an implicit STOP.
func (c *ExecutionContext) CurrentOp() OpCode {
	if c.pc >= uint64(len(c.code)) {
		return STOP
	}
	return OpCode(c.code[c.pc])
}

// SetPC jumps execution to dest, after validating dest names a JUMPDEST
// under whichever analysis strategy cfg.StrictJumpdest selects. Used by
// JUMP and JUMPI.
func (c *ExecutionContext) SetPC(dest uint64) error {
	valid := false
	if c.jumpdests != nil {
		valid = c.jumpdests.Contains(dest)
	} else {
		valid = isJumpdestNaive(c.code, dest)
	}
	if !valid {
		return ErrInvalidJump
	}
	c.pc = dest
	return nil
}

// AdvancePC moves the PC forward by n bytes, the ordinary fall-through
// after an opcode that isn't a jump.
func (c *ExecutionContext) AdvancePC(n uint64) {
	c.pc += n
}

// Stop marks execution halted with no return data. Used by STOP.
func (c *ExecutionContext) Stop() {
	c.halted = true
}

// SetReturnData halts execution and copies length bytes of memory
// starting at offset out as the return value. Used by RETURN.
func (c *ExecutionContext) SetReturnData(offset, length uint64) {
	c.returnData = c.memory.LoadRange(offset, length)
	c.halted = true
}

// Step executes exactly one opcode: it looks the current opcode up in
// the default jump table, checks stack bounds, invokes the handler, and
// advances the PC unless the handler already moved it (jumps) or halted
// execution. Any failure is wrapped in a StepError carrying the PC and
// opcode for driver-facing diagnostics, and leaves the context halted —
// a fatal error is a transition to Halted just like STOP/RETURN, and
// resumption after one is forbidden (enforced by the ErrHalted guard
// at the top of Step).
//
// Grounded on core/vm/interpreter.go's Run loop in the teacher, with gas
// metering and the call-depth/readonly checks stripped out.
func (c *ExecutionContext) Step() error {
	if c.halted {
		return newStepError(ErrHalted, c.pc, c.CurrentOp())
	}

	op := c.CurrentOp()
	operation := defaultJumpTable[op]
	if operation == nil {
		err := newStepError(ErrInvalidOpcode, c.pc, op)
		logger.Warn("invalid opcode", "pc", c.pc, "op", op)
		c.halted = true
		return err
	}

	if n := c.stack.Depth(); n < operation.minStack {
		logger.Warn("stack underflow", "pc", c.pc, "op", op)
		c.halted = true
		return newStepError(ErrStackUnderflow, c.pc, op)
	} else if n > operation.maxStack {
		logger.Warn("stack overflow", "pc", c.pc, "op", op)
		c.halted = true
		return newStepError(ErrStackOverflow, c.pc, op)
	}

	if c.cfg.Tracer != nil {
		c.cfg.Tracer.CaptureStep(c.pc, op, c.stack, c.memory)
	}
	logger.Debug("step", "pc", c.pc, "op", op)

	pcBefore := c.pc
	if err := operation.execute(c); err != nil {
		logger.Warn("step failed", "pc", pcBefore, "op", op, "err", err)
		c.halted = true
		return newStepError(err, pcBefore, op)
	}
	if c.cfg.Metrics != nil {
		c.cfg.Metrics.observeStep(op)
	}

	if !operation.jumps && !c.halted && c.pc == pcBefore {
		c.pc += instructionSize(op)
	}
	return nil
}

// RunToHalt steps the context until it halts or maxSteps have executed,
// whichever comes first. maxSteps == 0 means unbounded. It returns
// ErrStepBudgetExceeded (non-fatal — the context remains valid and
// resumable) if the budget runs out first.
func (c *ExecutionContext) RunToHalt(maxSteps uint64) error {
	var steps uint64
	for !c.halted {
		if maxSteps != 0 && steps >= maxSteps {
			return errors.Wrapf(ErrStepBudgetExceeded, "after %d steps at pc=%d", steps, c.pc)
		}
		if err := c.Step(); err != nil {
			if c.cfg.Metrics != nil {
				c.cfg.Metrics.observeRunEnd()
			}
			return err
		}
		steps++
	}
	if c.cfg.Metrics != nil {
		c.cfg.Metrics.observeRunEnd()
	}
	return nil
}
