package bitwriter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBytesLayoutAcrossByteBoundary pins the exact byte layout Bytes()
// produces when a field straddles a byte boundary, with bits packed
// MSB-first into each byte.
func TestBytesLayoutAcrossByteBoundary(t *testing.T) {
	w := New(16)
	w.Append(0b1111, 4)
	w.Append(0b00001111, 8)
	w.Append(0b11, 2)

	b := w.Bytes()
	require.Len(t, b, 2)
	require.Equal(t, byte(0b11110000), b[0])
	require.Equal(t, byte(0b111111_00), b[1])
}

// TestCodewordRoundTripsThroughPatch asserts that patching individual bits
// and reading them back as a multi-bit codeword agree, the invariant the
// DataBar Expanded variable-length bit patch relies on.
func TestCodewordRoundTripsThroughPatch(t *testing.T) {
	w := New(16)
	w.Append(0, 12)
	w.Patch(2, true)
	w.Patch(3, true)
	require.Equal(t, 0b001100000000, w.Codeword(0, 12))
}
