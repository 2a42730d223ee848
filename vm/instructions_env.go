package vm

// Transaction/block/contract environment opcodes. CALLER and CALLVALUE
// read through the EnvironmentProvider collaborator rather than touching
// any global state, so a driver can supply whatever block/transaction
// context it has without this package knowing its shape. ADDRESS reads
// the contract's own address straight off the ExecutionContext.

// opAddress pushes the currently executing contract's address as a
// 256-bit word, left-zero-padded.
func opAddress(c *ExecutionContext) error {
	return c.stack.Push(AddressToWord(c.contractAddress))
}

func opCaller(c *ExecutionContext) error {
	return c.stack.Push(AddressToWord(c.cfg.Environment.Caller()))
}

func opCallvalue(c *ExecutionContext) error {
	return c.stack.Push(c.cfg.Environment.CallValue())
}
