package vm

import (
	"math/big"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	zero  = big.NewInt(0)
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

func getState() *state {
	return &state{
		stack:  newStack(),
		memory: newMemory(0),
		logger: hclog.NewNullLogger(),
	}
}

type cases2To1 []struct {
	a *big.Int
	b *big.Int
	c *big.Int
}

func test2to1(t *testing.T, f instruction, tests cases2To1) {
	t.Helper()

	for _, i := range tests {
		s := getState()

		require.NoError(t, s.stack.Push(i.a))
		require.NoError(t, s.stack.Push(i.b))

		f(s)

		require.NoError(t, s.err)

		v, err := s.stack.Pop()
		require.NoError(t, err)
		assert.Equal(t, i.c.Int64(), v.Int64())
	}
}

func TestAdd(t *testing.T) {
	test2to1(t, opAdd, cases2To1{
		{one, one, two},
		{zero, one, one},
		{three, two, big.NewInt(5)},
	})
}

func TestSub(t *testing.T) {
	// first pushed minus second pushed, the pop order must not be swapped
	test2to1(t, opSub, cases2To1{
		{three, two, one},
		{two, three, big.NewInt(-1)},
		{one, one, zero},
	})
}

func TestMul(t *testing.T) {
	test2to1(t, opMul, cases2To1{
		{three, two, big.NewInt(6)},
		{zero, one, zero},
	})
}

func TestMStoreOrder(t *testing.T) {
	t.Parallel()

	s := getState()

	// value below, address on top: MSTORE pops the address first
	require.NoError(t, s.stack.Push(three)) // value
	require.NoError(t, s.stack.Push(one))   // address

	opMStore(s)

	require.NoError(t, s.err)
	assert.Equal(t, int64(3), s.memory.Get(1).Int64())
	assert.Equal(t, int64(0), s.memory.Get(3).Int64())
	assert.Equal(t, 0, s.stack.Depth())
}

func TestMStoreUnaddressable(t *testing.T) {
	t.Parallel()

	s := getState()

	require.NoError(t, s.stack.Push(three))
	require.NoError(t, s.stack.Push(new(big.Int).Lsh(one, 80)))

	opMStore(s)

	assert.Error(t, s.err)
	assert.True(t, s.stop)
}

func TestMLoad(t *testing.T) {
	t.Parallel()

	s := getState()

	require.NoError(t, s.memory.Set(1, three))

	require.NoError(t, s.stack.Push(one))
	opMLoad(s)

	require.NoError(t, s.err)

	v, err := s.stack.Pop()
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Int64())

	// a never-written address loads as 0
	require.NoError(t, s.stack.Push(big.NewInt(500)))
	opMLoad(s)

	require.NoError(t, s.err)

	v, err = s.stack.Pop()
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.Int64())

	// so does an address no slice could back
	require.NoError(t, s.stack.Push(new(big.Int).Lsh(one, 80)))
	opMLoad(s)

	require.NoError(t, s.err)

	v, err = s.stack.Pop()
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.Int64())
	assert.Equal(t, MemoryWords, s.memory.Len())
}

func TestPush1(t *testing.T) {
	t.Parallel()

	s := getState()
	s.tokens = []string{"60", "ff"}

	opPush1(s)

	require.NoError(t, s.err)
	assert.Equal(t, 1, s.pc)

	v, err := s.stack.Pop()
	require.NoError(t, err)
	assert.Equal(t, int64(0xff), v.Int64())
}

func TestPush1MissingOperand(t *testing.T) {
	t.Parallel()

	s := getState()
	s.tokens = []string{"60"}

	opPush1(s)

	assert.Error(t, s.err)
	assert.True(t, s.stop)
}
