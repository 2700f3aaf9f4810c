// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"errors"
	"log"
)

// Handler is the machine's sole capability: request the next input word,
// or emit an output word. Both operations may block. Receive reports end
// of input with an error; the machine propagates it to the caller of Run.
type Handler interface {
	Receive() (value Word, err error)
	Send(value Word) error
}

// Machine is a single execution engine: an exclusively owned Memory, a
// program counter, and a relative base register. It communicates with
// its environment only through the injected Handler.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	handler Handler
	mem     Memory
	pc      Word
	base    Word
}

// New creates a machine from a program image and an I/O handler. The
// image is copied; the machine owns its memory.
func New(image []Word, handler Handler) (m *Machine) {
	m = &Machine{
		handler: handler,
		mem:     append(Memory{}, image...),
	}

	return
}

// read resolves a parameter to its value.
func (m *Machine) read(p Param) (value Word, err error) {
	if p.Immediate {
		value = p.Value
		return
	}

	return m.mem.Load(p.Value)
}

// write stores value through a parameter. Writing through an immediate
// parameter is a fatal fault; programs never legally do this.
func (m *Machine) write(p Param, value Word) (err error) {
	if p.Immediate {
		err = ErrWriteImmediate
		return
	}

	return m.mem.Store(p.Value, value)
}

// Step decodes and executes one instruction. No partial instruction
// effects are observable: any error leaves the machine at the faulting pc.
func (m *Machine) Step() (done bool, err error) {
	inst, err := m.Decode()
	if err != nil {
		return
	}

	defer func() {
		if err != nil {
			err = errors.Join(ErrFault{Pc: m.pc, Op: inst.Op}, err)
		}
	}()

	if m.Verbose {
		log.Printf("%6d: %v %v", m.pc, inst.Op, inst.Param[:inst.Op.Operands()])
	}

	next := m.pc + inst.Width()

	switch inst.Op {
	case OP_ADD, OP_MULTIPLY, OP_LESS, OP_EQUAL:
		var a, b Word
		a, err = m.read(inst.Param[0])
		if err != nil {
			return
		}
		b, err = m.read(inst.Param[1])
		if err != nil {
			return
		}

		var value Word
		switch inst.Op {
		case OP_ADD:
			value = a + b
		case OP_MULTIPLY:
			value = a * b
		case OP_LESS:
			if a < b {
				value = 1
			}
		case OP_EQUAL:
			if a == b {
				value = 1
			}
		}

		err = m.write(inst.Param[2], value)
		if err != nil {
			return
		}
	case OP_INPUT:
		var value Word
		value, err = m.handler.Receive()
		if err != nil {
			return
		}

		err = m.write(inst.Param[0], value)
		if err != nil {
			return
		}
	case OP_OUTPUT:
		var value Word
		value, err = m.read(inst.Param[0])
		if err != nil {
			return
		}

		err = m.handler.Send(value)
		if err != nil {
			return
		}
	case OP_JUMP_NZ, OP_JUMP_Z:
		var cond, target Word
		cond, err = m.read(inst.Param[0])
		if err != nil {
			return
		}
		target, err = m.read(inst.Param[1])
		if err != nil {
			return
		}

		// The resolved target value becomes the next pc directly.
		jump := cond != 0
		if inst.Op == OP_JUMP_Z {
			jump = cond == 0
		}
		if jump {
			next = target
		}
	case OP_BASE:
		var incr Word
		incr, err = m.read(inst.Param[0])
		if err != nil {
			return
		}

		m.base += incr
	case OP_HALT:
		done = true
		return
	}

	m.pc = next

	return
}

// Run executes instructions until the program halts.
func (m *Machine) Run() (err error) {
	for {
		var done bool
		done, err = m.Step()
		if done || err != nil {
			return
		}
	}
}
