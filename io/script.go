package io

import (
	"github.com/ezrec/intvm/vm"
)

// Script binds a machine to a pre-supplied finite input sequence and
// captures everything the machine emits. Requesting more inputs than
// were supplied is fatal.
type Script struct {
	Values  []vm.Word // Input sequence, consumed front to back.
	Emitted []vm.Word // Captured outputs, in emit order.

	next int
}

var _ vm.Handler = (*Script)(nil)

// Rewind resets the script to its initial state, dropping captured
// outputs.
func (sc *Script) Rewind() {
	sc.next = 0
	sc.Emitted = nil
}

// Receive returns the next scripted input word.
func (sc *Script) Receive() (value vm.Word, err error) {
	if sc.next >= len(sc.Values) {
		err = ErrInputExhausted
		return
	}

	value = sc.Values[sc.next]
	sc.next++

	return
}

// Send captures an output word.
func (sc *Script) Send(value vm.Word) (err error) {
	sc.Emitted = append(sc.Emitted, value)

	return
}
