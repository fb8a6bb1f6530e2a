package sequence_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/framealign/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lyingSeq reports size elements but only ever yields actual of them.
type lyingSeq struct {
	size, actual, pos int
	resets            int
}

func (s *lyingSeq) Size() int     { return s.size }
func (s *lyingSeq) HasNext() bool { return s.pos < s.actual }
func (s *lyingSeq) Next() (int, error) {
	if s.pos >= s.actual {
		return 0, sequence.ErrExhausted
	}
	s.pos++
	return s.pos - 1, nil
}
func (s *lyingSeq) Reset() error {
	s.resets++
	s.pos = 0
	return nil
}

// TestSlice_IterateAndReset walks a slice twice and checks exhaustion.
func TestSlice_IterateAndReset(t *testing.T) {
	s := sequence.FromSlice([]string{"a", "b"})
	assert.Equal(t, 2, s.Size())

	for pass := 0; pass < 2; pass++ {
		got, err := sequence.Drain[string](s)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, got, "pass %d", pass)
		assert.False(t, s.HasNext())

		_, err = s.Next()
		assert.ErrorIs(t, err, sequence.ErrExhausted)

		require.NoError(t, s.Reset())
		require.NoError(t, s.Reset(), "Reset must be idempotent")
	}
	assert.Equal(t, 2, s.Size(), "Size is stable across resets")
}

// TestTake_Segments reads consecutive segments, including empty ones.
func TestTake_Segments(t *testing.T) {
	s := sequence.FromSlice([]int{1, 2, 3, 4, 5})

	first, err := sequence.Take[int](s, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, first)

	empty, err := sequence.Take[int](s, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	rest, err := sequence.Take[int](s, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, rest)
}

// TestTake_Short fails fast when the source ends early.
func TestTake_Short(t *testing.T) {
	s := sequence.FromSlice([]int{1})

	got, err := sequence.Take[int](s, 3)
	assert.ErrorIs(t, err, sequence.ErrShortSequence)
	assert.Equal(t, []int{1}, got, "partial read is returned alongside the error")
}

// TestCollect_SizeMismatch rejects sources whose Size lies in either direction.
func TestCollect_SizeMismatch(t *testing.T) {
	short := &lyingSeq{size: 4, actual: 2}
	_, err := sequence.Collect[int](short)
	assert.ErrorIs(t, err, sequence.ErrShortSequence)

	long := &lyingSeq{size: 2, actual: 4}
	_, err = sequence.Collect[int](long)
	assert.ErrorIs(t, err, sequence.ErrLongSequence)

	exact := &lyingSeq{size: 3, actual: 3, pos: 2}
	got, err := sequence.Collect[int](exact)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got, "Collect rewinds before reading")
	assert.Equal(t, 2, exact.resets, "Collect rewinds before and after")
	assert.True(t, exact.HasNext())
}

// TestFromFunc_Load checks lazy loading, error propagation and resets.
func TestFromFunc_Load(t *testing.T) {
	boom := errors.New("decode failed")
	calls := 0
	s, err := sequence.FromFunc(3, func(i int) (int, error) {
		calls++
		if i == 1 && calls == 2 {
			return 0, boom
		}
		return i * 10, nil
	})
	require.NoError(t, err)

	x, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, x)

	_, err = s.Next()
	assert.ErrorIs(t, err, boom)

	x, err = s.Next() // the failed load did not advance
	require.NoError(t, err)
	assert.Equal(t, 10, x)

	require.NoError(t, s.Reset())
	all, err := sequence.Drain[int](s)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 20}, all)

	_, err = sequence.FromFunc(-1, func(int) (int, error) { return 0, nil })
	assert.ErrorIs(t, err, sequence.ErrNegativeSize)
}
