package vm

// Control-flow and termination opcodes.

func opStop(c *ExecutionContext) error {
	c.Stop()
	return nil
}

func opJump(c *ExecutionContext) error {
	dest, err := c.stack.Pop()
	if err != nil {
		return err
	}
	if !dest.IsUint64() {
		return ErrInvalidJump
	}
	return c.SetPC(dest.Uint64())
}

func opJumpi(c *ExecutionContext) error {
	dest, cond, err := pop2(c)
	if err != nil {
		return err
	}
	if cond.IsZero() {
		c.pc += instructionSize(JUMPI)
		return nil
	}
	if !dest.IsUint64() {
		return ErrInvalidJump
	}
	return c.SetPC(dest.Uint64())
}

func opPc(c *ExecutionContext) error {
	w := NewWord()
	w.SetUint64(c.pc)
	return c.stack.Push(w)
}

// opJumpdest is a no-op marker opcode: it exists purely as a valid jump
// target.
func opJumpdest(c *ExecutionContext) error {
	return nil
}

func opReturn(c *ExecutionContext) error {
	offset, length, err := pop2(c)
	if err != nil {
		return err
	}
	if !offset.IsUint64() || !length.IsUint64() {
		return ErrOffsetTooLarge
	}
	c.SetReturnData(offset.Uint64(), length.Uint64())
	return nil
}
