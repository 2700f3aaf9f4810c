package vm

// Word is the machine's sole value type. Code, data, and addresses are
// all signed 64-bit words.
type Word int64

// Memory is a growable, zero-initialized word store. Any access beyond
// the current length extends it first; memory never truncates and never
// fails except on a negative address.
type Memory []Word

// grow extends the memory so that addr is a valid index, preserving
// existing contents.
func (mem *Memory) grow(addr Word) {
	if int(addr) < len(*mem) {
		return
	}

	grown := make(Memory, 2*addr+1)
	copy(grown, *mem)
	*mem = grown
}

// Load returns the word at addr, extending the memory if needed.
func (mem *Memory) Load(addr Word) (value Word, err error) {
	if addr < 0 {
		err = ErrAddressNegative
		return
	}

	mem.grow(addr)
	value = (*mem)[addr]

	return
}

// Store writes value at addr, extending the memory if needed.
func (mem *Memory) Store(addr Word, value Word) (err error) {
	if addr < 0 {
		err = ErrAddressNegative
		return
	}

	mem.grow(addr)
	(*mem)[addr] = value

	return
}
