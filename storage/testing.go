package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PlaceholderStorage opens a fresh store for a conformance test. The
// returned reopen function closes the store and opens a new instance
// on the same backing path; it is nil for volatile backends.
type PlaceholderStorage func(t *testing.T) (s *Storage, reopen func() *Storage, closeFn func())

// TestStorage tests a set of tests on a storage
func TestStorage(t *testing.T, m PlaceholderStorage) {
	t.Helper()

	t.Run("testMissingKey", func(t *testing.T) {
		testMissingKey(t, m)
	})
	t.Run("testRoundTrip", func(t *testing.T) {
		testRoundTrip(t, m)
	})
	t.Run("testReplace", func(t *testing.T) {
		testReplace(t, m)
	})
	t.Run("testCount", func(t *testing.T) {
		testCount(t, m)
	})
	t.Run("testReopen", func(t *testing.T) {
		testReopen(t, m)
	})
}

func testMissingKey(t *testing.T, m PlaceholderStorage) {
	t.Helper()

	s, _, closeFn := m(t)
	defer closeFn()

	v, err := s.Get("never_stored")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func testRoundTrip(t *testing.T, m PlaceholderStorage) {
	t.Helper()

	s, _, closeFn := m(t)
	defer closeFn()

	var cases = []struct {
		Key   string
		Value int64
	}{
		{"persist_key", 123},
		{"zero", 0},
		{"negative", -77},
		{"large", 1 << 52},
	}

	for _, cc := range cases {
		require.NoError(t, s.Put(cc.Key, cc.Value))

		v, err := s.Get(cc.Key)
		assert.NoError(t, err)
		assert.Equal(t, cc.Value, v)
	}
}

func testReplace(t *testing.T, m PlaceholderStorage) {
	t.Helper()

	s, _, closeFn := m(t)
	defer closeFn()

	require.NoError(t, s.Put("k", 1))
	require.NoError(t, s.Put("k", 2))

	v, err := s.Get("k")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), v)

	count, err := s.Count()
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func testCount(t *testing.T, m PlaceholderStorage) {
	t.Helper()

	s, _, closeFn := m(t)
	defer closeFn()

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, s.Put("a", 1))
	require.NoError(t, s.Put("b", 2))
	require.NoError(t, s.Put("c", 3))

	count, err = s.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func testReopen(t *testing.T, m PlaceholderStorage) {
	t.Helper()

	s, reopen, closeFn := m(t)
	defer closeFn()

	if reopen == nil {
		t.Skip("volatile backend")
	}

	require.NoError(t, s.Put("persist_key", 123))

	s = reopen()

	v, err := s.Get("persist_key")
	assert.NoError(t, err)
	assert.Equal(t, int64(123), v)
}
