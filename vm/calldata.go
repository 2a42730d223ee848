package vm

// Calldata is the immutable input byte string given to an execution
// (spec.md §4.3). Grounded on the teacher's opCalldataLoad/
// opCalldataCopy handlers in core/vm/instructions.go, confirmed bit for
// bit against original_source/src/evm/calldata.rs's zero-fill-past-end
// semantics.
type Calldata struct {
	data []byte
}

// NewCalldata wraps data as an immutable Calldata. The slice is not
// copied; callers must not mutate it after constructing the Calldata.
func NewCalldata(data []byte) *Calldata {
	return &Calldata{data: data}
}

// Size returns the calldata's byte length.
func (c *Calldata) Size() uint64 {
	return uint64(len(c.data))
}

// LoadWord returns the big-endian word formed by calldata[offset:offset+32],
// substituting zero for any byte index >= Size() (spec.md §4.3, §8.6).
func (c *Calldata) LoadWord(offset uint64) *Word {
	var buf [32]byte
	c.copyInto(buf[:], offset)
	return WordFromBytes(buf[:])
}

// CopyToMemory writes length bytes into memory starting at memOffset,
// sourcing byte i from calldata[calldataOffset+i] when that index is in
// range, else zero (spec.md §4.3).
func (c *Calldata) CopyToMemory(calldataOffset, memOffset, length uint64, memory *Memory) {
	if length == 0 {
		return
	}
	bs := make([]byte, length)
	c.copyInto(bs, calldataOffset)
	memory.StoreBytes(memOffset, bs)
}

// copyInto fills dst with calldata bytes starting at offset, zero-filling
// past Size(). Shared by LoadWord (dst is a 32-byte array slice) and
// CopyToMemory (dst is length-sized).
func (c *Calldata) copyInto(dst []byte, offset uint64) {
	size := uint64(len(c.data))
	if offset >= size {
		return // dst is already zeroed by its caller's allocation
	}
	avail := size - offset
	if avail > uint64(len(dst)) {
		avail = uint64(len(dst))
	}
	copy(dst, c.data[offset:offset+avail])
}
