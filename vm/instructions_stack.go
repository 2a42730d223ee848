package vm

// Stack-shape opcodes: POP, PUSH1..PUSH32, DUP1..DUP16, SWAP1..SWAP16.
// The PUSH/DUP/SWAP families are generated once by newJumpTable via the
// factories below rather than written out 16 or 32 times over, following
// the teacher's own makeDup/makeSwap/makePush helpers in
// core/vm/instructions.go.

func opPop(c *ExecutionContext) error {
	_, err := c.stack.Pop()
	return err
}

// makePush returns a handler for PUSHn: it reads n bytes of code
// immediately following the opcode, zero-padding past the end of code,
// and pushes them as a big-endian word.
func makePush(n int) func(*ExecutionContext) error {
	return func(c *ExecutionContext) error {
		buf := make([]byte, n)
		c.ReadCode(buf, c.pc+1)
		return c.stack.Push(WordFromBytes(buf))
	}
}

// makeDup returns a handler for DUPn: duplicate the n-th stack item
// (1-indexed from the top) onto the top of the stack.
func makeDup(n int) func(*ExecutionContext) error {
	return func(c *ExecutionContext) error {
		return c.stack.Dup(n)
	}
}

// makeSwap returns a handler for SWAPn: exchange the top item with the
// item n below it.
func makeSwap(n int) func(*ExecutionContext) error {
	return func(c *ExecutionContext) error {
		return c.stack.Swap(n)
	}
}
