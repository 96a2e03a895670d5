package vm

import "fmt"

// OpCode is a single instruction identifier decoded from the token stream
type OpCode byte

const (
	// ADD pops two values and pushes their sum
	ADD OpCode = 0x01

	// SUB pops a then b and pushes b - a
	SUB OpCode = 0x02

	// MUL pops two values and pushes their product
	MUL OpCode = 0x03

	// MLOAD pops an address and pushes the memory word stored there
	MLOAD OpCode = 0x51

	// MSTORE pops an address then a value and writes the value at the address
	MSTORE OpCode = 0x52

	// PUSH1 pushes the next token, parsed as a hexadecimal byte
	PUSH1 OpCode = 0x60
)

var opCodeToString = map[OpCode]string{
	ADD:    "ADD",
	SUB:    "SUB",
	MUL:    "MUL",
	MLOAD:  "MLOAD",
	MSTORE: "MSTORE",
	PUSH1:  "PUSH1",
}

func (op OpCode) String() string {
	str, ok := opCodeToString[op]
	if !ok {
		return fmt.Sprintf("opcode(0x%02x)", byte(op))
	}

	return str
}
