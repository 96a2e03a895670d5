package vm

import (
	"errors"
	"math/big"
)

// StackSize is the maximum depth of the operand stack
const StackSize = 1024

var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrStackOverflow  = errors.New("stack overflow")
)

// Stack is the bounded operand stack. Values are arbitrary-precision
// integers; no word-size truncation is applied anywhere.
//
// The backing slice is never trimmed, popped slots are reused by later
// pushes to avoid churning big.Int allocations.
type Stack struct {
	data []*big.Int
	sp   int
}

func newStack() *Stack {
	return &Stack{
		data: []*big.Int{},
	}
}

// Push appends val on top of the stack. The capacity check happens
// before any mutation, a failed push leaves the stack untouched.
func (s *Stack) Push(val *big.Int) error {
	if s.sp == StackSize {
		return ErrStackOverflow
	}

	s.push1().Set(val)

	return nil
}

// push1 advances the stack pointer and returns the slot at the new top.
// The caller must have checked capacity already.
func (s *Stack) push1() *big.Int {
	if len(s.data) > s.sp {
		s.sp++

		return s.data[s.sp-1]
	}

	v := new(big.Int)
	s.data = append(s.data, v)
	s.sp++

	return v
}

// Pop removes the top element and returns a detached copy of it
func (s *Stack) Pop() (*big.Int, error) {
	v := s.pop()
	if v == nil {
		return nil, ErrStackUnderflow
	}

	return new(big.Int).Set(v), nil
}

// pop returns the top slot without copying it. The returned value is
// only valid until the next push, instruction handlers consume it
// immediately.
func (s *Stack) pop() *big.Int {
	if s.sp == 0 {
		return nil
	}

	o := s.data[s.sp-1]
	s.sp--

	return o
}

// top returns the top slot in place, or nil when the stack is empty
func (s *Stack) top() *big.Int {
	if s.sp == 0 {
		return nil
	}

	return s.data[s.sp-1]
}

// Depth is the current number of elements on the stack
func (s *Stack) Depth() int {
	return s.sp
}

// Values returns detached copies of the stack contents, top to bottom
func (s *Stack) Values() []*big.Int {
	values := make([]*big.Int, 0, s.sp)
	for i := s.sp - 1; i >= 0; i-- {
		values = append(values, new(big.Int).Set(s.data[i]))
	}

	return values
}
