package vm

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/pocketevm/pocketevm/helper/hex"
	"github.com/pocketevm/pocketevm/storage"
	"github.com/pocketevm/pocketevm/storage/leveldb"
)

// Config is the machine configuration
type Config struct {
	// Logger for the machine, a null logger is used when not set
	Logger hclog.Logger

	// DataDir is the location of the durable store. It is only used
	// when Store is not set, in which case a leveldb store is opened
	// (created if absent) under this path and owned by the machine.
	DataDir string

	// Store is a pre-opened durable store. Close still releases it.
	Store *storage.Storage

	// MemoryLimit is an optional ceiling for the linear memory, in
	// words. 0 means unbounded. In-range accesses behave identically
	// with or without a limit.
	MemoryLimit int
}

// VM is a single-owner bytecode machine. The operand stack and the
// linear memory live as long as the machine, so successive Execute
// calls compose against the same state. The machine must not be shared
// across concurrent callers.
type VM struct {
	logger hclog.Logger

	stack  *Stack
	memory *Memory
	store  *storage.Storage
}

// NewVM creates a machine and opens its durable store before any
// operation is accepted
func NewVM(config *Config) (*VM, error) {
	logger := config.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	logger = logger.Named("vm")

	store := config.Store
	if store == nil {
		if config.DataDir == "" {
			return nil, fmt.Errorf("no durable store: set DataDir or Store")
		}

		var err error

		store, err = leveldb.NewLevelDBStorage(config.DataDir, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open durable store: %w", err)
		}
	}

	return &VM{
		logger: logger,
		stack:  newStack(),
		memory: newMemory(config.MemoryLimit),
		store:  store,
	}, nil
}

// state is the execution state of a single Execute call. The stack and
// memory belong to the machine and survive the call, the program
// counter does not.
type state struct {
	pc     int
	tokens []string

	stack  *Stack
	memory *Memory

	logger hclog.Logger

	stop bool
	err  error
}

func (c *state) halt() {
	c.stop = true
}

func (c *state) exit(err error) {
	if err == nil {
		panic("cannot exit with nil")
	}

	c.stop = true
	c.err = err
}

func (c *state) run() error {
	for !c.stop {
		if c.pc >= len(c.tokens) {
			c.halt()

			break
		}

		token := c.tokens[c.pc]

		op, decodeErr := hex.DecodeHexByte(token)

		inst := handler{}
		if decodeErr == nil {
			inst = dispatchTable[op]
		}

		// an unrecognized token stops the loop without failing the
		// call, all effects of the prior opcodes remain applied
		if inst.inst == nil {
			c.logger.Warn("unknown opcode", "token", token, "pc", c.pc)
			c.halt()

			break
		}

		if c.stack.Depth() < inst.stack {
			c.exit(fmt.Errorf("%s at %d: %w", OpCode(op), c.pc, ErrStackUnderflow))

			break
		}

		inst.inst(c)

		c.pc++
	}

	return c.err
}

// Execute runs a program of two-hex-character tokens against the
// machine. Stack violations abort the call and leave every effect of
// the already executed opcodes applied; an unrecognized token halts the
// loop with a diagnostic and no error.
func (v *VM) Execute(tokens []string) error {
	c := &state{
		tokens: tokens,
		stack:  v.stack,
		memory: v.memory,
		logger: v.logger,
	}

	return c.run()
}

// Store durably upserts key to value, independently of Execute. The
// write is synchronous, the call does not return before it is durable.
func (v *VM) Store(key string, value int64) error {
	return v.store.Put(key, value)
}

// Load returns the stored value for key, or 0 when the key has never
// been stored
func (v *VM) Load(key string) (int64, error) {
	return v.store.Get(key)
}

// Close releases the durable store. The machine is not usable
// afterwards, but a new machine opened on the same DataDir sees every
// prior durable write.
func (v *VM) Close() error {
	return v.store.Close()
}
