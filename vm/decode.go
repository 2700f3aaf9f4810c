package vm

// Param is a resolved operand. An immediate parameter carries a literal
// value; otherwise Value is an address to read or write through Memory.
// Relative-mode offsets are already folded into the address at decode.
type Param struct {
	Immediate bool
	Value     Word
}

// Instruction is one decoded instruction: the opcode and its resolved
// parameters. It exists only for the duration of one execute step.
type Instruction struct {
	Op    Opcode
	Param [3]Param
}

// Width returns the number of words the instruction occupies.
func (inst Instruction) Width() Word {
	return Word(1 + inst.Op.Operands())
}

// Decode materializes the instruction at the current program counter.
// Decode depends only on memory, the pc, and the relative base; decoding
// the same position twice yields identical instructions.
func (m *Machine) Decode() (inst Instruction, err error) {
	word, err := m.mem.Load(m.pc)
	if err != nil {
		return
	}

	inst.Op = Opcode(word % 100)

	count := inst.Op.Operands()
	if count == 0 && inst.Op != OP_HALT {
		err = ErrOpcode{Pc: m.pc, Word: word}
		return
	}

	modes := word / 100
	for k := range count {
		var value Word
		value, err = m.mem.Load(m.pc + 1 + Word(k))
		if err != nil {
			return
		}

		switch Mode(modes % 10) {
		case MODE_POSITION:
			inst.Param[k] = Param{Value: value}
		case MODE_IMMEDIATE:
			inst.Param[k] = Param{Immediate: true, Value: value}
		case MODE_RELATIVE:
			inst.Param[k] = Param{Value: value + m.base}
		default:
			err = ErrMode{Pc: m.pc, Word: word, Mode: modes % 10}
			return
		}
		modes /= 10
	}

	return
}
