package leveldb

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/pocketevm/pocketevm/storage"
)

// writeOptions force a synchronous commit, a Put does not return
// before the write hit stable storage
var writeOptions = &opt.WriteOptions{
	Sync: true,
}

// NewLevelDBStorage creates the new storage reference with leveldb
func NewLevelDBStorage(path string, logger hclog.Logger) (*storage.Storage, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}

	kv := &levelDBKV{db: db}

	return storage.NewKeyValueStorage(logger.Named("leveldb"), kv), nil
}

// levelDBKV is the leveldb implementation of the kv storage. Values
// are stored as 8-byte big-endian integers.
type levelDBKV struct {
	db *leveldb.DB
}

func (l *levelDBKV) Set(key string, value int64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(value))

	return l.db.Put([]byte(key), buf, writeOptions)
}

func (l *levelDBKV) Get(key string) (int64, bool, error) {
	data, err := l.db.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return 0, false, nil
		}

		return 0, false, err
	}

	if len(data) != 8 {
		return 0, false, fmt.Errorf("corrupt value for key %q: %d bytes", key, len(data))
	}

	return int64(binary.BigEndian.Uint64(data)), true, nil
}

func (l *levelDBKV) Count() (int, error) {
	it := l.db.NewIterator(nil, nil)
	defer it.Release()

	count := 0
	for it.Next() {
		count++
	}

	return count, it.Error()
}

func (l *levelDBKV) Close() error {
	return l.db.Close()
}
