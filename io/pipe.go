package io

import (
	"github.com/ezrec/intvm/vm"
)

// Pipe binds a machine to a pair of word channels: one inbound end it
// consumes, one outbound end it produces. Receive blocks until a word
// is available or the producing end closes. Values arrive in send order.
type Pipe struct {
	In  <-chan vm.Word
	Out chan<- vm.Word
}

var _ vm.Handler = (*Pipe)(nil)

// Receive blocks on the inbound channel. A closed inbound end is
// ErrEndOfStream.
func (p *Pipe) Receive() (value vm.Word, err error) {
	value, ok := <-p.In
	if !ok {
		err = ErrEndOfStream
	}

	return
}

// Send delivers a word on the outbound channel.
func (p *Pipe) Send(value vm.Word) (err error) {
	p.Out <- value

	return
}

// Close closes the outbound end, signalling end of stream to the
// consumer. Call exactly once, after the owning machine halts.
func (p *Pipe) Close() {
	close(p.Out)
}
