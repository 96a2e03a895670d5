package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/pocketevm/pocketevm/storage"

	_ "modernc.org/sqlite"
)

// NewSQLiteStorage creates the new storage reference with a sqlite
// database at path, creating the file and the storage table if absent.
// The layout is a single table, no versioning, no secondary indexes:
//
//	storage(key TEXT PRIMARY KEY, value INTEGER)
func NewSQLiteStorage(path string, logger hclog.Logger) (*storage.Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()

		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS storage (key TEXT PRIMARY KEY, value INTEGER)"); err != nil {
		db.Close()

		return nil, fmt.Errorf("creating table: %w", err)
	}

	kv := &sqliteKV{db: db}

	return storage.NewKeyValueStorage(logger.Named("sqlite"), kv), nil
}

// sqliteKV is the sqlite implementation of the kv storage. The mutex
// serializes the shared database handle only, it does not make the
// machine above safe for concurrent callers.
type sqliteKV struct {
	mu sync.Mutex
	db *sql.DB
}

func (s *sqliteKV) Set(key string, value int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("INSERT OR REPLACE INTO storage (key, value) VALUES (?, ?)", key, value)

	return err
}

func (s *sqliteKV) Get(key string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value int64

	err := s.db.QueryRow("SELECT value FROM storage WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, err
	}

	return value, true, nil
}

func (s *sqliteKV) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int

	if err := s.db.QueryRow("SELECT COUNT(*) FROM storage").Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (s *sqliteKV) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Close()
}
