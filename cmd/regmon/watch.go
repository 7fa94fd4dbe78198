package main

import (
	"fmt"
	"io"

	"github.com/ezrec/zregs/emulator"
)

// watch evaluates each expression and writes "expr = 0x...." lines to out.
// It stops at the first expression that fails.
func watch(emu *emulator.Emulator, exprs []string, out io.Writer) (err error) {
	for _, expr := range exprs {
		var value int64
		value, err = emu.Eval(expr)
		if err != nil {
			err = fmt.Errorf("%v: %w", expr, err)
			return
		}
		fmt.Fprintf(out, "%v = 0x%04x\n", expr, value)
	}

	return
}
