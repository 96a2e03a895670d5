package vm

import (
	"errors"
	"fmt"
	"math/big"
)

// MemoryWords is the initial word length of the linear memory
const MemoryWords = 1024

// ErrMemoryLimit is returned by stores past a configured memory ceiling
var ErrMemoryLimit = errors.New("memory limit reached")

// Memory is the linear word-addressed scratch memory. It starts as
// MemoryWords zero words and only ever grows: a store beyond the
// current length extends it with zero fill up to and including that
// address, and the growth is permanent.
//
// Without a configured limit the address space is unbounded, which is
// an inherited memory-exhaustion risk. The limit does not change the
// behavior of any in-range access.
type Memory struct {
	words []big.Int
	limit int
}

func newMemory(limit int) *Memory {
	return &Memory{
		words: make([]big.Int, MemoryWords),
		limit: limit,
	}
}

// Set writes value at addr, growing the memory so addr becomes valid.
// All newly created intermediate words read as 0.
func (m *Memory) Set(addr int, value *big.Int) error {
	if addr < 0 {
		return fmt.Errorf("negative memory address %d", addr)
	}

	if m.limit > 0 && addr >= m.limit {
		return fmt.Errorf("%w: address %d, limit %d words", ErrMemoryLimit, addr, m.limit)
	}

	if addr >= len(m.words) {
		m.words = append(m.words, make([]big.Int, addr+1-len(m.words))...)
	}

	m.words[addr].Set(value)

	return nil
}

// Get returns a copy of the word at addr. Addresses that were never
// written, including addresses beyond the current length, read as 0;
// reads never grow the memory.
func (m *Memory) Get(addr int) *big.Int {
	if addr < 0 || addr >= len(m.words) {
		return new(big.Int)
	}

	return new(big.Int).Set(&m.words[addr])
}

// Len is the current length of the memory in words
func (m *Memory) Len() int {
	return len(m.words)
}

// used counts the non-zero words for the state report
func (m *Memory) used() int {
	n := 0

	for i := range m.words {
		if m.words[i].Sign() != 0 {
			n++
		}
	}

	return n
}
