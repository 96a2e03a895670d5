package storage

import (
	"github.com/hashicorp/go-hclog"
)

// KV is the capability every durable key/value engine provides. Set
// must be a synchronous, atomic upsert; Get reports whether the key
// exists instead of failing on a missing key.
type KV interface {
	Set(key string, value int64) error
	Get(key string) (int64, bool, error)
	Count() (int, error)
	Close() error
}

// Factory is a factory method to create a persistent store
type Factory func(path string, logger hclog.Logger) (*Storage, error)

// Storage is the persistent store: a durable mapping from string key
// to integer value on top of a KV engine. Keys that were never stored
// read as 0, a repeated Put replaces the prior value.
type Storage struct {
	logger hclog.Logger
	kv     KV
}

// NewKeyValueStorage creates a storage layer over a kv engine
func NewKeyValueStorage(logger hclog.Logger, kv KV) *Storage {
	return &Storage{
		logger: logger,
		kv:     kv,
	}
}

// Put durably upserts key to value. It does not return before the
// write is durable.
func (s *Storage) Put(key string, value int64) error {
	return s.kv.Set(key, value)
}

// Get returns the stored value for key, or 0 when the key has never
// been stored
func (s *Storage) Get(key string) (int64, error) {
	value, ok, err := s.kv.Get(key)
	if err != nil {
		return 0, err
	}

	if !ok {
		return 0, nil
	}

	return value, nil
}

// Count is the number of stored keys
func (s *Storage) Count() (int, error) {
	return s.kv.Count()
}

// Close releases the backing engine. No operation is valid on the
// instance afterwards; reopening the same path sees prior writes.
func (s *Storage) Close() error {
	return s.kv.Close()
}
