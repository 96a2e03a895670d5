package vm

import "math/big"

// Report is a read-only snapshot of the machine state
type Report struct {
	// Stack holds detached copies of the stack contents, top to bottom
	Stack []*big.Int

	// StackDepth is the number of occupied stack slots
	StackDepth int

	// StackCapacity is the fixed stack capacity
	StackCapacity int

	// MemoryWords is the current memory length in words
	MemoryWords int

	// MemoryUsed is the number of non-zero memory words
	MemoryUsed int

	// StorageItems is the number of keys in the durable store
	StorageItems int
}

// Snapshot produces a state report without mutating any component
func (v *VM) Snapshot() (*Report, error) {
	items, err := v.store.Count()
	if err != nil {
		return nil, err
	}

	return &Report{
		Stack:         v.stack.Values(),
		StackDepth:    v.stack.Depth(),
		StackCapacity: StackSize,
		MemoryWords:   v.memory.Len(),
		MemoryUsed:    v.memory.used(),
		StorageItems:  items,
	}, nil
}
