package vm

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackOrder(t *testing.T) {
	t.Parallel()

	s := newStack()

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, s.Push(big.NewInt(i)))
	}

	// last pushed is on top
	values := s.Values()
	require.Len(t, values, 5)

	for i, v := range values {
		assert.Equal(t, int64(5-i), v.Int64())
	}

	for i := int64(5); i >= 1; i-- {
		v, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, v.Int64())
	}

	assert.Equal(t, 0, s.Depth())
}

func TestStackOverflow(t *testing.T) {
	t.Parallel()

	s := newStack()

	for i := 0; i < StackSize; i++ {
		require.NoError(t, s.Push(big.NewInt(int64(i))))
	}

	err := s.Push(big.NewInt(0))
	assert.ErrorIs(t, err, ErrStackOverflow)

	// the failed push must not mutate the stack
	assert.Equal(t, StackSize, s.Depth())

	top, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, int64(StackSize-1), top.Int64())
}

func TestStackUnderflow(t *testing.T) {
	t.Parallel()

	s := newStack()

	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrStackUnderflow)

	require.NoError(t, s.Push(big.NewInt(1)))

	_, err = s.Pop()
	require.NoError(t, err)

	_, err = s.Pop()
	assert.ErrorIs(t, err, ErrStackUnderflow)
}

func TestStackPopDetached(t *testing.T) {
	t.Parallel()

	s := newStack()

	require.NoError(t, s.Push(big.NewInt(7)))

	v, err := s.Pop()
	require.NoError(t, err)

	// the slot is reused by the next push, the popped copy must not be
	require.NoError(t, s.Push(big.NewInt(99)))
	assert.Equal(t, int64(7), v.Int64())
}
