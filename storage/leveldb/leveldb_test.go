package leveldb

import (
	"os"
	"testing"

	"github.com/hashicorp/go-hclog"
	"go.uber.org/goleak"

	"github.com/pocketevm/pocketevm/storage"
)

func newStorage(t *testing.T) (*storage.Storage, func() *storage.Storage, func()) {
	t.Helper()

	path, err := os.MkdirTemp("/tmp", "pocketevm_storage")
	if err != nil {
		t.Fatal(err)
	}

	s, err := NewLevelDBStorage(path, hclog.NewNullLogger())
	if err != nil {
		t.Fatal(err)
	}

	current := s

	reopen := func() *storage.Storage {
		if err := current.Close(); err != nil {
			t.Fatal(err)
		}

		next, err := NewLevelDBStorage(path, hclog.NewNullLogger())
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

		if err := os.RemoveAll(path); err != nil {
			t.Fatal(err)
		}
	}

	return s, reopen, closeFn
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStorage(t *testing.T) {
	storage.TestStorage(t, newStorage)
}
