// Package testutil holds bytecode fixtures shared across vm package
// tests, so the same end-to-end scenario can be asserted on from
// multiple test files without each redefining the raw bytes.
package testutil

// Scenario bundles a short piece of bytecode with a human-readable name,
// mirroring how the teacher's run_test.go table-drives interpreter runs
// over named {name, code} cases.
type Scenario struct {
	Name string
	Code []byte
}

// S1AddTwoConstants pushes 2 and 3 and adds them, leaving 5 on the stack.
var S1AddTwoConstants = Scenario{
	Name: "add two constants",
	Code: []byte{
		0x60, 0x02, // PUSH1 2
		0x60, 0x03, // PUSH1 3
		0x01, // ADD
		0x00, // STOP
	},
}

// S2StoreAndLoadMemory stores a word at offset 0 and reloads it.
var S2StoreAndLoadMemory = Scenario{
	Name: "store and load memory",
	Code: []byte{
		0x60, 0x2a, // PUSH1 42
		0x60, 0x00, // PUSH1 0
		0x52,       // MSTORE
		0x60, 0x00, // PUSH1 0
		0x51, // MLOAD
		0x00, // STOP
	},
}

// S3LoopToJumpdest counts down from 3 to 0 using JUMPI, exercising
// JUMPDEST validation, JUMP/JUMPI, and a multi-iteration loop. Ends with
// 0 left on the stack.
//
//	pc  0: PUSH1 3          ; i = 3
//	pc  2: JUMPDEST         ; loop:
//	pc  3: DUP1
//	pc  4: PUSH1 0
//	pc  6: EQ               ; i == 0
//	pc  7: PUSH1 17         ; end
//	pc  9: JUMPI
//	pc 10: PUSH1 1
//	pc 12: SWAP1
//	pc 13: SUB              ; i = i - 1
//	pc 14: PUSH1 2          ; loop
//	pc 16: JUMP
//	pc 17: JUMPDEST         ; end:
//	pc 18: STOP
var S3LoopToJumpdest = Scenario{
	Name: "loop via JUMPI to JUMPDEST",
	Code: []byte{
		0x60, 0x03, // 0: PUSH1 3
		0x5b,       // 2: JUMPDEST
		0x80,       // 3: DUP1
		0x60, 0x00, // 4: PUSH1 0
		0x14,       // 6: EQ
		0x60, 0x11, // 7: PUSH1 17
		0x57,       // 9: JUMPI
		0x60, 0x01, // 10: PUSH1 1
		0x90,       // 12: SWAP1
		0x03,       // 13: SUB
		0x60, 0x02, // 14: PUSH1 2
		0x56, // 16: JUMP
		0x5b, // 17: JUMPDEST
		0x00, // 18: STOP
	},
}

// S4CalldataRoundTrip copies calldata into memory and reloads a word.
var S4CalldataRoundTrip = Scenario{
	Name: "calldatacopy then mload",
	Code: []byte{
		0x60, 0x20, // PUSH1 32 (length)
		0x60, 0x00, // PUSH1 0 (calldata offset)
		0x60, 0x00, // PUSH1 0 (mem offset)
		0x37,       // CALLDATACOPY
		0x60, 0x00, // PUSH1 0
		0x51, // MLOAD
		0x00, // STOP
	},
}

// S5StackUnderflow is ADD with only one operand pushed, expected to fail
// with a stack-underflow StepError.
var S5StackUnderflow = Scenario{
	Name: "add with one operand underflows",
	Code: []byte{
		0x60, 0x01, // PUSH1 1
		0x01, // ADD
	},
}

// S6InvalidJumpTarget jumps to offset 5, a STOP byte, which must be
// rejected whether or not Config.StrictJumpdest is set, since the byte
// there isn't JUMPDEST at all in this fixture.
var S6InvalidJumpTarget = Scenario{
	Name: "jump to non-JUMPDEST byte",
	Code: []byte{
		0x60, 0x05, // 0: PUSH1 5
		0x56, // 2: JUMP
		0x00, // 3: STOP (not a JUMPDEST)
		0x00, // 4: STOP
		0x00, // 5: STOP (target, still not JUMPDEST)
	},
}
