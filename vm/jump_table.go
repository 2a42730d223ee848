package vm

// operation is the per-opcode metadata the dispatcher needs: the
// handler itself, and the stack-depth bounds it requires to run safely.
// Gas cost fields (constantGas, dynamicGas) are dropped entirely — gas
// accounting is out of scope for this interpreter.
//
// Grounded on core/vm/jump_table.go's operation in the teacher, which
// additionally carries gas/memorySize/writes fields this spec has no use
// for.
type operation struct {
	execute  func(*ExecutionContext) error
	minStack int
	maxStack int
	jumps    bool // PC is set by the handler itself; Step must not auto-advance
}

// JumpTable maps each possible opcode byte to its operation, or nil if
// the byte is not a wired instruction.
type JumpTable [256]*operation

// instructionSize reports how many bytes of code op and its immediate
// (if any) occupy, used by Step to advance the PC after a non-jump
// instruction. Every wired opcode in this interpreter is one byte plus,
// for PUSH1..PUSH32, its immediate.
func instructionSize(op OpCode) uint64 {
	if n := op.PushSize(); n > 0 {
		return uint64(n) + 1
	}
	return 1
}

// minMax is a small helper to keep the table below legible: every
// operation gets maxStack = MaxStackDepth, so Step's maxStack check never
// rejects an operation; a push that would overflow fails inside the
// handler with ErrStackOverflow instead.
func minMax(pops int) (min, max int) {
	return pops, MaxStackDepth
}

// defaultJumpTable is the fixed dispatch table this interpreter's Step
// uses. It is package-level and immutable after init, following the
// teacher's own newLondonInstructionSet()-style construction in
// core/vm/jump_table.go, collapsed to a single fork since this spec
// carries no fork-gating.
var defaultJumpTable = newJumpTable()

func newJumpTable() *JumpTable {
	tbl := &JumpTable{}

	set := func(op OpCode, pops int, fn func(*ExecutionContext) error) {
		min, max := minMax(pops)
		tbl[op] = &operation{execute: fn, minStack: min, maxStack: max}
	}
	setJump := func(op OpCode, pops int, fn func(*ExecutionContext) error) {
		min, max := minMax(pops)
		tbl[op] = &operation{execute: fn, minStack: min, maxStack: max, jumps: true}
	}

	// 0x00s: stop and arithmetic
	set(STOP, 0, opStop)
	set(ADD, 2, opAdd)
	set(MUL, 2, opMul)
	set(SUB, 2, opSub)
	set(DIV, 2, opDiv)
	set(MOD, 2, opMod)
	set(EXP, 2, opExp)

	// 0x10s: comparison
	set(LT, 2, opLt)
	set(GT, 2, opGt)
	set(EQ, 2, opEq)
	set(ISZERO, 1, opIszero)
	set(AND, 2, opAnd)
	set(OR, 2, opOr)
	set(XOR, 2, opXor)
	set(NOT, 1, opNot)
	set(BYTE, 2, opByte)

	// 0x30s: environment
	set(ADDRESS, 0, opAddress)
	set(CALLDATALOAD, 1, opCalldataload)
	set(CALLDATASIZE, 0, opCalldatasize)
	set(CALLDATACOPY, 3, opCalldatacopy)
	set(CODESIZE, 0, opCodesize)
	set(CODECOPY, 3, opCodecopy)
	set(CALLER, 0, opCaller)
	set(CALLVALUE, 0, opCallvalue)

	// 0x50s: stack, memory, control flow
	set(POP, 1, opPop)
	set(MLOAD, 1, opMload)
	set(MSTORE, 2, opMstore)
	set(MSTORE8, 2, opMstore8)
	setJump(JUMP, 1, opJump)
	setJump(JUMPI, 2, opJumpi)
	set(PC, 0, opPc)
	set(MSIZE, 0, opMsize)
	set(JUMPDEST, 0, opJumpdest)

	for i := 0; i < 32; i++ {
		op := OpCode(int(PUSH1) + i)
		n := i + 1
		set(op, 0, makePush(n))
	}
	for i := 1; i <= 16; i++ {
		op := OpCode(int(DUP1) + i - 1)
		n := i
		set(op, n, makeDup(n))
	}
	for i := 1; i <= 16; i++ {
		op := OpCode(int(SWAP1) + i - 1)
		n := i
		set(op, n+1, makeSwap(n))
	}

	set(RETURN, 2, opReturn)

	return tbl
}
