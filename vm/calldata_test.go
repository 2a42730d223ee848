package vm

import "testing"

func TestCalldataLoadWordExact(t *testing.T) {
	data := make([]byte, 32)
	data[31] = 7
	c := NewCalldata(data)
	w := c.LoadWord(0)
	if w.Uint64() != 7 {
		t.Errorf("LoadWord(0) = %d, want 7", w.Uint64())
	}
}

func TestCalldataLoadWordZeroFillsPastEnd(t *testing.T) {
	c := NewCalldata([]byte{0x01, 0x02})
	w := c.LoadWord(0)
	b := w.Bytes32()
	if b[0] != 0x01 || b[1] != 0x02 {
		t.Fatalf("LoadWord(0) bytes = %x, want leading 0102", b)
	}
	for i := 2; i < 32; i++ {
		if b[i] != 0 {
			t.Fatalf("LoadWord(0) byte %d = %x, want 0", i, b[i])
		}
	}
}

func TestCalldataLoadWordFullyOutOfRange(t *testing.T) {
	c := NewCalldata([]byte{0x01})
	w := c.LoadWord(10)
	if !w.IsZero() {
		t.Errorf("LoadWord(10) on 1-byte calldata = %v, want zero", w)
	}
}

func TestCalldataCopyToMemory(t *testing.T) {
	c := NewCalldata([]byte{0xaa, 0xbb, 0xcc})
	m := NewMemory()
	c.CopyToMemory(0, 10, 5, m)
	got := m.LoadRange(10, 5)
	want := []byte{0xaa, 0xbb, 0xcc, 0x00, 0x00}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("CopyToMemory result = %x, want %x", got, want)
		}
	}
}

func TestCalldataSize(t *testing.T) {
	c := NewCalldata([]byte{1, 2, 3})
	if c.Size() != 3 {
		t.Errorf("Size() = %d, want 3", c.Size())
	}
}
