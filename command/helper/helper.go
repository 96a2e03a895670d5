package helper

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/pocketevm/pocketevm/storage"
	"github.com/pocketevm/pocketevm/storage/leveldb"
	"github.com/pocketevm/pocketevm/storage/memory"
	"github.com/pocketevm/pocketevm/storage/sqlite"
	"github.com/pocketevm/pocketevm/vm"
)

const (
	// DataDirFlag is the location of the durable store, a directory
	// for leveldb and a file for sqlite
	DataDirFlag = "data-dir"

	// BackendFlag selects the durable store engine
	BackendFlag = "backend"

	// LogLevelFlag sets the log level of the root logger
	LogLevelFlag = "log-level"

	// MemoryLimitFlag caps the linear memory, in words
	MemoryLimitFlag = "memory-limit"
)

// DefaultDataDir is the durable store location used when no flag is set
const DefaultDataDir = "evm-data"

// RegisterStorageFlags registers the flags shared by every command
// that opens the persistent store
func RegisterStorageFlags(cmd *cobra.Command) {
	cmd.Flags().String(
		DataDirFlag,
		DefaultDataDir,
		"the location of the durable store (a directory for leveldb, a file for sqlite)",
	)

	cmd.Flags().String(
		BackendFlag,
		"leveldb",
		"the durable store engine (leveldb, sqlite, memory)",
	)

	cmd.Flags().String(
		LogLevelFlag,
		"INFO",
		"the log level of the command",
	)
}

// RegisterMachineFlags registers the flags shared by every command
// that opens a machine
func RegisterMachineFlags(cmd *cobra.Command) {
	RegisterStorageFlags(cmd)

	cmd.Flags().Int(
		MemoryLimitFlag,
		0,
		"optional ceiling for the linear memory in words, 0 is unbounded",
	)
}

// GetLogger builds the root logger from the command flags
func GetLogger(cmd *cobra.Command) hclog.Logger {
	logLevel, _ := cmd.Flags().GetString(LogLevelFlag)

	return hclog.New(&hclog.LoggerOptions{
		Name:  "pocketevm",
		Level: hclog.LevelFromString(logLevel),
	})
}

// OpenStorage opens the durable store selected by the command flags
func OpenStorage(cmd *cobra.Command, logger hclog.Logger) (*storage.Storage, error) {
	backend, _ := cmd.Flags().GetString(BackendFlag)
	dataDir, _ := cmd.Flags().GetString(DataDirFlag)

	switch backend {
	case "leveldb":
		return leveldb.NewLevelDBStorage(dataDir, logger)
	case "sqlite":
		return sqlite.NewSQLiteStorage(dataDir, logger)
	case "memory":
		return memory.NewMemoryStorage(logger), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// OpenVM opens a machine over the store selected by the command flags
func OpenVM(cmd *cobra.Command, logger hclog.Logger) (*vm.VM, error) {
	store, err := OpenStorage(cmd, logger)
	if err != nil {
		return nil, err
	}

	memoryLimit, _ := cmd.Flags().GetInt(MemoryLimitFlag)

	return vm.NewVM(&vm.Config{
		Logger:      logger,
		Store:       store,
		MemoryLimit: memoryLimit,
	})
}

// CloseVM closes the machine and logs any failure, for use in defers
func CloseVM(machine *vm.VM, logger hclog.Logger) {
	if err := machine.Close(); err != nil {
		logger.Error("failed to close the machine", "err", err)
	}
}

// FormatReport renders a machine state report as a [VM STATE] block
func FormatReport(r *vm.Report) string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[VM STATE]\n")
	buffer.WriteString(FormatKV([]string{
		fmt.Sprintf("Stack (top to bottom)|%s", formatStack(r.Stack)),
		fmt.Sprintf("Stack depth|%d / %d", r.StackDepth, r.StackCapacity),
		fmt.Sprintf("Memory usage|%d / %d words", r.MemoryUsed, r.MemoryWords),
		fmt.Sprintf("Persistent storage|%d items", r.StorageItems),
	}))

	return buffer.String()
}

func formatStack(values []*big.Int) string {
	if len(values) == 0 {
		return "<empty>"
	}

	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = v.String()
	}

	return strings.Join(strs, " ")
}

// FormatList formats a list, using a specific blank value replacement
func FormatList(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"

	return columnize.Format(in, columnConf)
}

// FormatKV formats key value pairs:
//
// Key = Value
//
// Key = <none>
func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}
