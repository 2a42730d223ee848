package vm

import "testing"

func TestMemoryStoreLoadWord(t *testing.T) {
	m := NewMemory()
	w := new(Word).SetUint64(0xdeadbeef)
	m.StoreWord(0, w)

	got := m.LoadWord(0)
	if got.Uint64() != 0xdeadbeef {
		t.Errorf("LoadWord(0) = %x, want deadbeef", got.Uint64())
	}
	if m.Size() != 32 {
		t.Errorf("Size() = %d, want 32", m.Size())
	}
}

func TestMemoryLoadWordUnderSizedReturnsZeroWithoutGrowing(t *testing.T) {
	m := NewMemory()
	got := m.LoadWord(100)
	if !got.IsZero() {
		t.Errorf("LoadWord on empty memory = %v, want zero", got)
	}
	if m.Size() != 0 {
		t.Errorf("Size() after under-sized LoadWord = %d, want 0 (must not grow)", m.Size())
	}
}

func TestMemoryStoreByte(t *testing.T) {
	m := NewMemory()
	m.StoreByte(5, 0xff)
	if m.Size() != 6 {
		t.Fatalf("Size() = %d, want 6", m.Size())
	}
	got := m.LoadRange(5, 1)
	if got[0] != 0xff {
		t.Errorf("LoadRange(5,1) = %x, want ff", got[0])
	}
}

func TestMemoryLoadRangeZeroFillsPastSize(t *testing.T) {
	m := NewMemory()
	m.StoreByte(0, 0xaa)
	got := m.LoadRange(0, 4)
	if len(got) != 4 {
		t.Fatalf("LoadRange length = %d, want 4", len(got))
	}
	if got[0] != 0xaa || got[1] != 0 || got[2] != 0 || got[3] != 0 {
		t.Errorf("LoadRange(0,4) = %x, want aa000000", got)
	}
	if m.Size() != 1 {
		t.Errorf("Size() after LoadRange = %d, want 1 (must not grow)", m.Size())
	}
}

func TestMemoryNeverShrinks(t *testing.T) {
	m := NewMemory()
	m.StoreByte(63, 1)
	size := m.Size()
	m.StoreByte(0, 1)
	if m.Size() != size {
		t.Errorf("Size() after smaller store = %d, want unchanged %d", m.Size(), size)
	}
}
