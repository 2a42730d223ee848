package vm

// Memory and calldata/code access opcodes.

func opMload(c *ExecutionContext) error {
	offset, err := c.stack.Pop()
	if err != nil {
		return err
	}
	if !offset.IsUint64() {
		return ErrOffsetTooLarge
	}
	return c.stack.Push(c.memory.LoadWord(offset.Uint64()))
}

func opMstore(c *ExecutionContext) error {
	offset, value, err := pop2(c)
	if err != nil {
		return err
	}
	if !offset.IsUint64() {
		return ErrOffsetTooLarge
	}
	c.memory.StoreWord(offset.Uint64(), value)
	return nil
}

func opMstore8(c *ExecutionContext) error {
	offset, value, err := pop2(c)
	if err != nil {
		return err
	}
	if !offset.IsUint64() {
		return ErrOffsetTooLarge
	}
	c.memory.StoreByte(offset.Uint64(), byte(value.Uint64()))
	return nil
}

func opMsize(c *ExecutionContext) error {
	w := NewWord()
	w.SetUint64(c.memory.Size())
	return c.stack.Push(w)
}

func opCalldataload(c *ExecutionContext) error {
	offset, err := c.stack.Pop()
	if err != nil {
		return err
	}
	if !offset.IsUint64() {
		return c.stack.Push(NewWord())
	}
	return c.stack.Push(c.calldata.LoadWord(offset.Uint64()))
}

func opCalldatasize(c *ExecutionContext) error {
	w := NewWord()
	w.SetUint64(c.calldata.Size())
	return c.stack.Push(w)
}

func opCalldatacopy(c *ExecutionContext) error {
	destOffset, offset, err := pop2(c)
	if err != nil {
		return err
	}
	length, err := c.stack.Pop()
	if err != nil {
		return err
	}
	if !destOffset.IsUint64() || !offset.IsUint64() || !length.IsUint64() {
		return ErrOffsetTooLarge
	}
	c.calldata.CopyToMemory(offset.Uint64(), destOffset.Uint64(), length.Uint64(), c.memory)
	return nil
}

func opCodesize(c *ExecutionContext) error {
	w := NewWord()
	w.SetUint64(c.CodeLen())
	return c.stack.Push(w)
}

func opCodecopy(c *ExecutionContext) error {
	destOffset, offset, err := pop2(c)
	if err != nil {
		return err
	}
	length, err := c.stack.Pop()
	if err != nil {
		return err
	}
	if !destOffset.IsUint64() || !offset.IsUint64() || !length.IsUint64() {
		return ErrOffsetTooLarge
	}
	buf := make([]byte, length.Uint64())
	c.ReadCode(buf, offset.Uint64())
	c.memory.StoreBytes(destOffset.Uint64(), buf)
	return nil
}
