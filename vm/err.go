package vm

import (
	"errors"

	"github.com/ezrec/intvm/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrAddressNegative = errors.New(f("negative address"))
	ErrWriteImmediate  = errors.New(f("write to immediate parameter"))

	// Image errors
	ErrImageEmpty = errors.New(f("empty program image"))
)

// ErrOpcode reports an unrecognized opcode and where it was decoded.
type ErrOpcode struct {
	Pc   Word
	Word Word
}

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v at pc %v", eo.Word, eo.Pc)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrMode reports an unrecognized addressing mode and where it was decoded.
type ErrMode struct {
	Pc   Word
	Word Word
	Mode Word
}

func (em ErrMode) Error() string {
	return f("bad mode %v in word %v at pc %v", em.Mode, em.Word, em.Pc)
}

func (em ErrMode) Is(err error) (ok bool) {
	_, ok = err.(ErrMode)
	return
}

// ErrFault locates a runtime fault at the instruction that raised it.
type ErrFault struct {
	Pc Word
	Op Opcode
}

func (ef ErrFault) Error() string {
	return f("fault at pc %v (%v)", ef.Pc, ef.Op)
}

func (ef ErrFault) Is(err error) (ok bool) {
	_, ok = err.(ErrFault)
	return
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
