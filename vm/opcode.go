package vm

// Opcode is the operation selector, the low two decimal digits of an
// instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD      = Opcode(1)  // add
	OP_MULTIPLY = Opcode(2)  // mul
	OP_INPUT    = Opcode(3)  // in
	OP_OUTPUT   = Opcode(4)  // out
	OP_JUMP_NZ  = Opcode(5)  // jnz
	OP_JUMP_Z   = Opcode(6)  // jz
	OP_LESS     = Opcode(7)  // lt
	OP_EQUAL    = Opcode(8)  // eq
	OP_BASE     = Opcode(9)  // base
	OP_HALT     = Opcode(99) // halt
)

// Mode is the addressing mode for one operand, one decimal digit of the
// instruction word above the opcode digits.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // position
	MODE_IMMEDIATE = Mode(1) // immediate
	MODE_RELATIVE  = Mode(2) // relative
)

// Operands returns the number of operand words following the opcode.
func (op Opcode) Operands() int {
	switch op {
	case OP_ADD, OP_MULTIPLY, OP_LESS, OP_EQUAL:
		return 3
	case OP_JUMP_NZ, OP_JUMP_Z:
		return 2
	case OP_INPUT, OP_OUTPUT, OP_BASE:
		return 1
	}

	return 0
}
