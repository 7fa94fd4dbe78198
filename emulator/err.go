package emulator

import (
	"github.com/ezrec/zregs/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a script error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrValueRange is a write of a value that does not fit the register.
type ErrValueRange struct {
	Name  string
	Value string
}

func (err *ErrValueRange) Error() string {
	return f("%v does not fit in %v", err.Value, err.Name)
}

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not an integer expression", string(err))
}
