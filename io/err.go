package io

import (
	"errors"

	"github.com/ezrec/intvm/translate"
)

var f = translate.From

var (
	// ErrInputExhausted reports a request for more inputs than were
	// supplied. Fatal for the Script binding.
	ErrInputExhausted = errors.New(f("input exhausted"))

	// ErrEndOfStream reports that the producing end of a Pipe has
	// closed. Normal end of input, not a fault.
	ErrEndOfStream = errors.New(f("end of stream"))
)
