package cpu

import (
	"errors"

	"github.com/ezrec/zregs/translate"
)

var f = translate.From

var (
	// Register access errors
	ErrInvalidAccessWidth = errors.New(f("invalid access width"))
	ErrNameInvalid        = errors.New(f("register name invalid"))
)

// ErrAccessWidth reports an 8-bit access to a register pair or a 16-bit
// access to a byte register. No register is modified when it is returned.
type ErrAccessWidth struct {
	Name  Name  // Register that was addressed.
	Width Width // Width of the attempted access.
	Write bool  // Set if the access was a write.
}

func (err *ErrAccessWidth) Error() string {
	op := f("read")
	if err.Write {
		op = f("write")
	}
	return f("attempted %v %v of %v register %v", err.Width, op, err.Name.Width(), err.Name)
}

func (err *ErrAccessWidth) Unwrap() error {
	return ErrInvalidAccessWidth
}

type ErrNameUnknown string

func (err ErrNameUnknown) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrNameUnknown) Is(target error) (ok bool) {
	_, ok = target.(ErrNameUnknown)
	return
}

type ErrFlagUnknown string

func (err ErrFlagUnknown) Error() string {
	return f("'%v' is not a flag", string(err))
}

func (err ErrFlagUnknown) Is(target error) (ok bool) {
	_, ok = target.(ErrFlagUnknown)
	return
}
