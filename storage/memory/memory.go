package memory

import (
	"github.com/hashicorp/go-hclog"

	"github.com/pocketevm/pocketevm/storage"
)

// NewMemoryStorage creates a volatile storage reference for tests and
// demonstrations. Nothing survives Close.
func NewMemoryStorage(logger hclog.Logger) *storage.Storage {
	kv := &memoryKV{
		entries: map[string]int64{},
	}

	return storage.NewKeyValueStorage(logger.Named("memory"), kv)
}

// memoryKV is the in-memory implementation of the kv storage
type memoryKV struct {
	entries map[string]int64
}

func (m *memoryKV) Set(key string, value int64) error {
	m.entries[key] = value

	return nil
}

func (m *memoryKV) Get(key string) (int64, bool, error) {
	value, ok := m.entries[key]

	return value, ok, nil
}

func (m *memoryKV) Count() (int, error) {
	return len(m.entries), nil
}

func (m *memoryKV) Close() error {
	return nil
}
