package vm

import (
	"fmt"
	"math"
	"math/big"

	"github.com/pocketevm/pocketevm/helper/hex"
)

type instruction func(c *state)

// handler binds an instruction to the minimum stack depth it requires.
// The dispatch loop checks the depth before invoking the instruction so
// the handlers can pop without re-checking.
type handler struct {
	inst  instruction
	stack int
}

var dispatchTable [256]handler

func register(op OpCode, inst instruction, stack int) {
	dispatchTable[op] = handler{inst: inst, stack: stack}
}

func init() {
	register(PUSH1, opPush1, 0)
	register(ADD, opAdd, 2)
	register(SUB, opSub, 2)
	register(MUL, opMul, 2)
	register(MLOAD, opMLoad, 1)
	register(MSTORE, opMStore, 2)
}

func opAdd(c *state) {
	a := c.stack.pop()
	b := c.stack.top()

	b.Add(a, b)
}

// opSub computes second-popped minus first-popped. The order is part of
// the execution contract, swapping it silently negates every result.
func opSub(c *state) {
	a := c.stack.pop()
	b := c.stack.top()

	b.Sub(b, a)
}

func opMul(c *state) {
	a := c.stack.pop()
	b := c.stack.top()

	b.Mul(a, b)
}

// opMStore pops the destination address first and the value second, so
// programs push the value before the address. The order is part of the
// execution contract, swapping it silently stores into the wrong cell.
func opMStore(c *state) {
	address := c.stack.pop()
	value := c.stack.pop()

	addr, ok := wordToAddr(address)
	if !ok {
		c.exit(fmt.Errorf("mstore at %d: address %s is not addressable", c.pc, address.String()))

		return
	}

	if err := c.memory.Set(addr, value); err != nil {
		c.exit(fmt.Errorf("mstore at %d: %w", c.pc, err))
	}
}

// opMLoad pops an address and pushes the word stored there. The push is
// part of the operation, a load is observable only as a stack effect.
func opMLoad(c *state) {
	address := c.stack.pop()

	addr, ok := wordToAddr(address)
	if !ok {
		// out of any reachable range, reads as 0
		addr = -1
	}

	if err := c.stack.Push(c.memory.Get(addr)); err != nil {
		c.exit(err)
	}
}

// opPush1 consumes the next token as its operand. A missing or
// malformed operand is a hard failure, unlike an unknown opcode.
func opPush1(c *state) {
	c.pc++

	if c.pc >= len(c.tokens) {
		c.exit(fmt.Errorf("push at %d: missing operand", c.pc-1))

		return
	}

	value, err := hex.DecodeHexByte(c.tokens[c.pc])
	if err != nil {
		c.exit(fmt.Errorf("push at %d: %w", c.pc-1, err))

		return
	}

	if err := c.stack.Push(big.NewInt(int64(value))); err != nil {
		c.exit(err)
	}
}

// wordToAddr narrows a stack word to a memory index. Anything outside
// the int range cannot be backed by a slice and is reported as not
// addressable.
func wordToAddr(w *big.Int) (int, bool) {
	if !w.IsInt64() {
		return 0, false
	}

	v := w.Int64()
	if v > math.MaxInt {
		return 0, false
	}

	return int(v), true
}
