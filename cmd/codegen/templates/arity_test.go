package templates

import (
	"go/format"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixedStrings(t *testing.T) {
	assert.Equal(t, "", prefixedStrings("T", 0))
	assert.Equal(t, "T0", prefixedStrings("T", 1))
	assert.Equal(t, "a.A0, a.A1, a.A2", prefixedStrings("a.A", 3))
	assert.Equal(t, "a0 T0, a1 T1", pairedStrings("a", "T", 2))
}

func TestArityGen(t *testing.T) {
	src, err := format.Source([]byte(ArityGen(3)))
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "package relay")
	assert.Contains(t, out, "type Args2[T0, T1 any] struct {")
	assert.Contains(t, out, "func NewSlot3[R Object, T0, T1, T2 any](name string, fn func(R, T0, T1, T2)) *Slot[R, Args3[T0, T1, T2]] {")
	assert.Contains(t, out, "fn(r, a.A0, a.A1, a.A2)")
	assert.Contains(t, out, "Emit(emitter, sig, Args3[T0, T1, T2]{a0, a1, a2})")
	assert.NotContains(t, out, "Args4")
}
