package vm

import "testing"

func TestIsJumpdestNaiveAcceptsByteInsidePushData(t *testing.T) {
	// PUSH1 0x5b -- the immediate byte happens to equal JUMPDEST's
	// opcode value. The naive check doesn't know it's push data.
	code := []byte{byte(PUSH1), byte(JUMPDEST), byte(STOP)}
	if !isJumpdestNaive(code, 1) {
		t.Error("isJumpdestNaive should (wrongly, by design) accept a JUMPDEST byte inside push data")
	}
}

func TestIsJumpdestNaiveRejectsOutOfRange(t *testing.T) {
	code := []byte{byte(JUMPDEST)}
	if isJumpdestNaive(code, 5) {
		t.Error("isJumpdestNaive should reject an out-of-range destination")
	}
}

func TestBuildJumpdestSetSkipsPushImmediates(t *testing.T) {
	code := []byte{byte(PUSH1), byte(JUMPDEST), byte(JUMPDEST), byte(STOP)}
	set := BuildJumpdestSet(code)
	if set.Contains(1) {
		t.Error("JumpdestSet should not treat a PUSH1 immediate byte as a valid target")
	}
	if !set.Contains(2) {
		t.Error("JumpdestSet should treat the real JUMPDEST at index 2 as valid")
	}
}

func TestBuildJumpdestSetSkipsMultiBytePush(t *testing.T) {
	code := make([]byte, 0)
	code = append(code, byte(PUSH32))
	for i := 0; i < 32; i++ {
		code = append(code, byte(JUMPDEST))
	}
	code = append(code, byte(JUMPDEST)) // real one, right after the push
	set := BuildJumpdestSet(code)
	for i := uint64(1); i <= 32; i++ {
		if set.Contains(i) {
			t.Fatalf("index %d is inside PUSH32 immediate, should not be valid", i)
		}
	}
	if !set.Contains(33) {
		t.Error("index 33 is a real JUMPDEST following the PUSH32, should be valid")
	}
}
