package vm

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectLength(t *testing.T, m *Memory, length int) {
	t.Helper()

	if m.Len() != length {
		t.Fatalf("expected length %d but found %d", length, m.Len())
	}
}

func TestMemoryInitialState(t *testing.T) {
	t.Parallel()

	m := newMemory(0)
	expectLength(t, m, MemoryWords)

	for _, addr := range []int{0, 100, MemoryWords - 1} {
		assert.Equal(t, int64(0), m.Get(addr).Int64())
	}

	assert.Equal(t, 0, m.used())
}

func TestMemorySetGrows(t *testing.T) {
	t.Parallel()

	m := newMemory(0)

	require.NoError(t, m.Set(1, big.NewInt(3)))
	expectLength(t, m, MemoryWords)
	assert.Equal(t, int64(3), m.Get(1).Int64())

	// store past the end extends with zero fill up to the address
	require.NoError(t, m.Set(1500, big.NewInt(7)))
	expectLength(t, m, 1501)
	assert.Equal(t, int64(7), m.Get(1500).Int64())
	assert.Equal(t, int64(0), m.Get(1200).Int64())

	// memory never shrinks
	require.NoError(t, m.Set(0, big.NewInt(1)))
	expectLength(t, m, 1501)

	assert.Equal(t, 3, m.used())
}

func TestMemoryGetOutOfRange(t *testing.T) {
	t.Parallel()

	m := newMemory(0)

	// reads past the end are 0 and do not grow the memory
	assert.Equal(t, int64(0), m.Get(MemoryWords).Int64())
	assert.Equal(t, int64(0), m.Get(1<<30).Int64())
	assert.Equal(t, int64(0), m.Get(-1).Int64())
	expectLength(t, m, MemoryWords)
}

func TestMemorySetNegative(t *testing.T) {
	t.Parallel()

	m := newMemory(0)

	assert.Error(t, m.Set(-1, big.NewInt(1)))
	expectLength(t, m, MemoryWords)
}

func TestMemoryLimit(t *testing.T) {
	t.Parallel()

	m := newMemory(2048)

	// in-range behavior is unchanged by the limit
	require.NoError(t, m.Set(2047, big.NewInt(5)))
	assert.Equal(t, int64(5), m.Get(2047).Int64())

	err := m.Set(2048, big.NewInt(5))
	assert.ErrorIs(t, err, ErrMemoryLimit)
	expectLength(t, m, 2048)
}
