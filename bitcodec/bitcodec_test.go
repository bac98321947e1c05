package bitcodec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTripUint(t *testing.T, v uint64) {
	t.Helper()
	w := NewWriter()
	w.WriteUint(v)
	r, err := NewReader(w.String())
	require.NoError(t, err)
	got, err := r.ReadUint()
	require.NoError(t, err)
	assert.Equal(t, v, got)
	assert.NoError(t, r.Done())
}

func TestUintRoundTrip(t *testing.T) {
	for v := uint64(0); v < 300; v++ {
		roundTripUint(t, v)
	}
	roundTripUint(t, 1<<20)
	roundTripUint(t, 1<<40-1)
	roundTripUint(t, math.MaxUint64)
}

func TestUintSmallValuesStaySmall(t *testing.T) {
	w := NewWriter()
	w.WriteUint(0)
	assert.Equal(t, 1, w.Len())

	w = NewWriter()
	w.WriteUint(1)
	assert.Equal(t, 3, w.Len())

	w = NewWriter()
	w.WriteUint(2)
	assert.Equal(t, 3, w.Len())
}

func TestIntRoundTrip(t *testing.T) {
	for v := int64(-200); v < 200; v++ {
		w := NewWriter()
		w.WriteInt(v)
		r, err := NewReader(w.String())
		require.NoError(t, err)
		got, err := r.ReadInt()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	for _, v := range []int64{math.MinInt64, math.MaxInt64} {
		w := NewWriter()
		w.WriteInt(v)
		r, err := NewReader(w.String())
		require.NoError(t, err)
		got, err := r.ReadInt()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestBoolsAndOptions(t *testing.T) {
	w := NewWriter()
	w.WriteBool(true)
	w.WriteBool(false)
	w.WriteOption(true)
	w.WriteUint(7)
	w.WriteOption(false)

	r, err := NewReader(w.String())
	require.NoError(t, err)

	b, err := r.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)
	b, err = r.ReadBool()
	require.NoError(t, err)
	assert.False(t, b)

	present, err := r.ReadOption()
	require.NoError(t, err)
	require.True(t, present)
	v, err := r.ReadUint()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v)

	present, err = r.ReadOption()
	require.NoError(t, err)
	assert.False(t, present)
	assert.NoError(t, r.Done())
}

// An absent option followed by the value 1 packs into the bits 0100, which
// is the single character 'C' plus two padding bits.
func TestStringFormRegression(t *testing.T) {
	w := NewWriter()
	w.WriteOption(false)
	w.WriteUint(1)
	assert.Equal(t, "C2", w.String())

	r, err := NewReader("C2")
	require.NoError(t, err)
	present, err := r.ReadOption()
	require.NoError(t, err)
	assert.False(t, present)
	v, err := r.ReadUint()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
	assert.NoError(t, r.Done())
}

func TestEmptyWriterString(t *testing.T) {
	w := NewWriter()
	assert.Equal(t, "0", w.String())

	r, err := NewReader("0")
	require.NoError(t, err)
	assert.Equal(t, 0, r.Remaining())
	assert.NoError(t, r.Done())
}

func TestReaderErrors(t *testing.T) {
	_, err := NewReader("")
	assert.ErrorIs(t, err, ErrEOF)

	_, err = NewReader("AB9")
	assert.Error(t, err, "padding digit out of range")

	_, err = NewReader("A!0")
	assert.Error(t, err, "character outside the alphabet")

	// Reading past the end.
	r, err := NewReader("0")
	require.NoError(t, err)
	_, err = r.ReadBool()
	assert.ErrorIs(t, err, ErrEOF)

	// Unread bits left over.
	w := NewWriter()
	w.WriteUint(100)
	w.WriteUint(200)
	r, err = NewReader(w.String())
	require.NoError(t, err)
	_, err = r.ReadUint()
	require.NoError(t, err)
	assert.ErrorIs(t, r.Done(), ErrTrailing)
}

func TestLenRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteLen(0)
	w.WriteLen(22)
	for i := 0; i < 22; i++ {
		w.WriteBool(i%2 == 0)
	}
	r, err := NewReader(w.String())
	require.NoError(t, err)
	n, err := r.ReadLen()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	n, err = r.ReadLen()
	require.NoError(t, err)
	assert.Equal(t, 22, n)
}

func TestLenBoundedByRemainingBits(t *testing.T) {
	// A length promises at least one bit per element, so a big length
	// with nothing behind it must be rejected before anything allocates.
	w := NewWriter()
	w.WriteLen(1 << 30)
	r, err := NewReader(w.String())
	require.NoError(t, err)
	_, err = r.ReadLen()
	assert.ErrorIs(t, err, ErrEOF)
}
