// Package io provides handler bindings for the word machine. A binding
// implements the machine's two-operation capability: Console reads and
// prints words interactively, Script plays back a fixed input sequence,
// and Pipe connects machines over in-process channels.
package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/intvm/vm"
)

// Console binds a machine to an interactive terminal. Receive prompts
// for one integer per line and re-prompts on malformed input; Send
// prints one value per line.
type Console struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
}

var _ vm.Handler = (*Console)(nil)

// Receive prompts for the next input word. Malformed lines are reported
// and re-prompted, never fatal. End of the input stream is
// ErrInputExhausted.
func (con *Console) Receive() (value vm.Word, err error) {
	if con.scanner == nil {
		con.scanner = bufio.NewScanner(con.Input)
	}

	fmt.Fprintf(con.Output, "input: ")
	for con.scanner.Scan() {
		n, nerr := strconv.ParseInt(strings.TrimSpace(con.scanner.Text()), 10, 64)
		if nerr == nil {
			value = vm.Word(n)
			return
		}

		fmt.Fprintf(con.Output, "not an integer, try again\ninput: ")
	}

	err = ErrInputExhausted

	return
}

// Send prints an output word.
func (con *Console) Send(value vm.Word) (err error) {
	_, err = fmt.Fprintln(con.Output, value)

	return
}
