package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/pocketevm/pocketevm/storage"
)

func newStorage(t *testing.T) (*storage.Storage, func() *storage.Storage, func()) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "evm.db")

	s, err := NewSQLiteStorage(path, hclog.NewNullLogger())
	if err != nil {
		t.Fatal(err)
	}

	current := s

	reopen := func() *storage.Storage {
		if err := current.Close(); err != nil {
			t.Fatal(err)
		}

		next, err := NewSQLiteStorage(path, hclog.NewNullLogger())
		if err != nil {
			t.Fatal(err)
		}

		current = next

		return next
	}

	closeFn := func() {
		if err := current.Close(); err != nil {
			t.Fatal(err)
		}
	}

	return s, reopen, closeFn
}

func TestStorage(t *testing.T) {
	storage.TestStorage(t, newStorage)
}
