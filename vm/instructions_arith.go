package vm

// Arithmetic opcodes. Every operation is computed mod 2^256 via
// holiman/uint256's wraparound semantics, matching original_source's
// wrapping_add/wrapping_mul/etc and the teacher's own core/vm
// instructions built on the same library.

func opAdd(c *ExecutionContext) error {
	a, b, err := pop2(c)
	if err != nil {
		return err
	}
	return c.stack.Push(a.Add(a, b))
}

func opMul(c *ExecutionContext) error {
	a, b, err := pop2(c)
	if err != nil {
		return err
	}
	return c.stack.Push(a.Mul(a, b))
}

func opSub(c *ExecutionContext) error {
	a, b, err := pop2(c)
	if err != nil {
		return err
	}
	return c.stack.Push(a.Sub(a, b))
}

func opDiv(c *ExecutionContext) error {
	a, b, err := pop2(c)
	if err != nil {
		return err
	}
	return c.stack.Push(a.Div(a, b))
}

func opMod(c *ExecutionContext) error {
	a, b, err := pop2(c)
	if err != nil {
		return err
	}
	return c.stack.Push(a.Mod(a, b))
}

func opExp(c *ExecutionContext) error {
	base, exponent, err := pop2(c)
	if err != nil {
		return err
	}
	return c.stack.Push(base.Exp(base, exponent))
}

// pop2 pops two operands off the stack in EVM order: a is the
// shallower (first-popped) operand, b the deeper one, matching the
// convention "a OP b" for e.g. SUB, DIV where operand order matters.
func pop2(c *ExecutionContext) (a, b *Word, err error) {
	a, err = c.stack.Pop()
	if err != nil {
		return nil, nil, err
	}
	b, err = c.stack.Pop()
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
