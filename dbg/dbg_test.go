package dbg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(enabled bool, fn func()) string {
	var buf bytes.Buffer
	oldEnabled, oldOut := Enabled, Out
	Enabled, Out = enabled, &buf
	defer func() {
		Enabled, Out = oldEnabled, oldOut
	}()
	fn()
	return buf.String()
}

func TestPrintf(t *testing.T) {
	out := capture(true, func() {
		Printf("preimage", "generation %d: %d pieces", 3, 40)
	})
	assert.Contains(t, out, "[preimage]")
	assert.Contains(t, out, "generation 3: 40 pieces")

	out = capture(false, func() {
		Printf("preimage", "generation %d", 3)
		Warnf("orbit", "stopped")
		Dump("frontier", []int{1, 2})
	})
	assert.Empty(t, out)
}

func TestDump(t *testing.T) {
	out := capture(true, func() {
		Dump("frontier", struct{ X, Y float64 }{1, 2})
	})
	assert.Contains(t, out, "frontier")
	assert.Contains(t, out, "X: (float64) 1")
}

func TestName(t *testing.T) {
	a := new(int)
	assert.Equal(t, Name(a), Name(a))
	assert.NotEmpty(t, Name(a))
	var nilPointer *int
	assert.Equal(t, "Ø", Name(nilPointer))
}
