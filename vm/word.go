package vm

import "github.com/holiman/uint256"

// Word is a 256-bit unsigned operand, big-endian on the wire (spec.md
// §3). uint256.Int's arithmetic (Add, Mul, Sub, Div, Mod, Exp, ...) wraps
// modulo 2^256 by construction, so handlers never need an explicit mask
// after an operation the way a math/big-backed stack would.
type Word = uint256.Int

// NewWord returns a zero-valued Word.
func NewWord() *Word { return new(uint256.Int) }

// WordFromBytes decodes a big-endian byte slice into a Word. Slices
// longer than 32 bytes are truncated to their low-order 32 bytes,
// shorter slices are implicitly left-zero-padded, matching every
// big-endian decode elsewhere in this package (PUSHn, CALLDATALOAD,
// MLOAD).
func WordFromBytes(b []byte) *Word {
	return new(uint256.Int).SetBytes(b)
}

// AddressLength is the byte width of a contract Address (spec.md §3).
const AddressLength = 20

// Address is the 20-byte identifier of the currently executing contract.
type Address [AddressLength]byte

// AddressToWord left-zero-pads addr into a 256-bit word, big-endian, per
// spec.md §6 ("Address encoding: big-endian 20 bytes right-aligned in a
// 32-byte word"). This is what ADDRESS pushes.
func AddressToWord(addr Address) *Word {
	return new(uint256.Int).SetBytes(addr[:])
}

// WordToAddress truncates w to its low-order 20 bytes. Not used by any
// wired opcode today (CALLER gets an Address from EnvironmentProvider and
// only encodes it with AddressToWord) but kept as ADDRESS's natural
// inverse and exercised by its own test.
func WordToAddress(w *Word) Address {
	bs := w.Bytes32()
	var a Address
	copy(a[:], bs[32-AddressLength:])
	return a
}
