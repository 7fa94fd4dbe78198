// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"strings"

	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/zregs/cpu"
	"github.com/ezrec/zregs/internal"
)

// Names of the 16-bit values held outside the register file.
const (
	NAME_PC = "pc"
	NAME_SP = "sp"
)

// Emulator is a monitor over the CPU register state. Scripts and watch
// expressions address registers through the register file.
//
// An Emulator is not safe for concurrent use.
type Emulator struct {
	Verbose  bool      // If set, enables verbose logging.
	*cpu.Cpu           // Reference to the CPU register state.
	Output   io.Writer // Destination of script print(); logged if nil.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	return
}

// Defines returns an iterator over the register names and their values.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	var regs iter.Seq2[string, string] = func(yield func(string, string) bool) {
		for name, value := range emu.Cpu.Registers.All() {
			width := 2
			if name.Width() == cpu.WIDTH_16 {
				width = 4
			}
			if !yield(name.String(), fmt.Sprintf("0x%0*x", width, value)) {
				return
			}
		}
	}

	others := map[string]string{
		"PC": fmt.Sprintf("0x%04x", emu.Cpu.Pc),
		"SP": fmt.Sprintf("0x%04x", emu.Cpu.Sp),
	}

	return internal.IterSeq2Concat(regs, maps.All(others))
}

// Reset the CPU state.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// Exec runs a monitor script against the CPU state.
//
// The script may call:
//   - get(name): value of a register, pc or sp.
//   - set(name, value): write a register, pc or sp.
//   - flag(name[, value]): read, or set and read, a condition flag.
//   - flags(z, n, h, c): replace all four condition flags.
func (emu *Emulator) Exec(filename string, src any) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	thread := &starlark.Thread{
		Name:  filename,
		Print: emu.print,
	}
	opts := syntax.FileOptions{
		TopLevelControl: true,
		GlobalReassign:  true,
	}
	pred := starlark.StringDict{
		"get":   starlark.NewBuiltin("get", emu.builtinGet),
		"set":   starlark.NewBuiltin("set", emu.builtinSet),
		"flag":  starlark.NewBuiltin("flag", emu.builtinFlag),
		"flags": starlark.NewBuiltin("flags", emu.builtinFlags),
	}

	if emu.Verbose {
		log.Printf("emulator: exec %v", filename)
	}

	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		err = &ErrRuntime{LineNo: lineOf(err), Err: err}
	}

	return
}

// Eval evaluates a single watch expression over the current register
// values; statements are rejected. Register names (lower case), pc and sp
// are predeclared, and flag(name) reads a condition flag. True and False
// evaluate to 1 and 0.
func (emu *Emulator) Eval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		NAME_PC: starlark.MakeUint64(uint64(emu.Cpu.Pc)),
		NAME_SP: starlark.MakeUint64(uint64(emu.Cpu.Sp)),
		"flag":  starlark.NewBuiltin("flag", emu.builtinFlagRead),
	}
	for name, val := range emu.Cpu.Registers.All() {
		pred[strings.ToLower(name.String())] = starlark.MakeUint64(uint64(val))
	}

	rc, err := starlark.EvalOptions(&opts, &thread, "expr", expr, pred)
	if err != nil {
		return
	}

	switch rc := rc.(type) {
	case starlark.Int:
		var ok bool
		value, ok = rc.Int64()
		if !ok {
			err = ErrExpression(expr)
		}
	case starlark.Bool:
		if rc {
			value = 1
		}
	default:
		err = ErrExpression(expr)
	}

	return
}

func (emu *Emulator) print(thread *starlark.Thread, msg string) {
	if emu.Output == nil {
		log.Printf("%v: %v", thread.Name, msg)
		return
	}

	fmt.Fprintln(emu.Output, msg)
}

func (emu *Emulator) builtinGet(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &name)
	if err != nil {
		return nil, err
	}

	value, err := emu.get(name)
	if err != nil {
		return nil, err
	}

	return starlark.MakeUint64(uint64(value)), nil
}

func (emu *Emulator) builtinSet(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var value starlark.Int
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &name, &value)
	if err != nil {
		return nil, err
	}

	val64, ok := value.Int64()
	if !ok {
		return nil, &ErrValueRange{Name: name, Value: value.String()}
	}

	err = emu.set(name, val64)
	if err != nil {
		return nil, err
	}

	return starlark.None, nil
}

func (emu *Emulator) builtinFlag(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var value starlark.Value
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "value?", &value)
	if err != nil {
		return nil, err
	}

	flag, err := cpu.ParseFlag(name)
	if err != nil {
		return nil, err
	}

	if value != nil {
		if emu.Verbose {
			log.Printf("emulator: flag %v <- %v", flag, value.Truth())
		}
		emu.Cpu.Registers.SetFlag(flag, bool(value.Truth()))
	}

	return starlark.Bool(emu.Cpu.Registers.Flag(flag)), nil
}

func (emu *Emulator) builtinFlagRead(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &name)
	if err != nil {
		return nil, err
	}

	flag, err := cpu.ParseFlag(name)
	if err != nil {
		return nil, err
	}

	return starlark.Bool(emu.Cpu.Registers.Flag(flag)), nil
}

func (emu *Emulator) builtinFlags(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var z, n, h, c starlark.Value
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 4, &z, &n, &h, &c)
	if err != nil {
		return nil, err
	}

	emu.Cpu.Registers.SetFlags(bool(z.Truth()), bool(n.Truth()), bool(h.Truth()), bool(c.Truth()))
	if emu.Verbose {
		log.Printf("emulator: flags <- %02X", emu.Cpu.Registers.ReadByte(cpu.REG_F))
	}

	return starlark.None, nil
}

// get reads a register, pc or sp by name.
func (emu *Emulator) get(text string) (value uint16, err error) {
	switch strings.ToLower(text) {
	case NAME_PC:
		value = emu.Cpu.Pc
		return
	case NAME_SP:
		value = emu.Cpu.Sp
		return
	}

	name, err := cpu.ParseName(text)
	if err != nil {
		return
	}

	if name.Width() == cpu.WIDTH_16 {
		return emu.Cpu.Registers.Read16(name)
	}

	val8, err := emu.Cpu.Registers.Read8(name)
	value = uint16(val8)
	return
}

// set writes a register, pc or sp by name. The width of the write is
// chosen by the name.
func (emu *Emulator) set(text string, value int64) (err error) {
	if emu.Verbose {
		log.Printf("emulator: %v <- %#x", text, value)
	}

	limit := int64(0xffff)
	var name cpu.Name
	switch strings.ToLower(text) {
	case NAME_PC, NAME_SP:
	default:
		name, err = cpu.ParseName(text)
		if err != nil {
			return
		}
		if name.Width() == cpu.WIDTH_8 {
			limit = 0xff
		}
	}

	if value < 0 || value > limit {
		err = &ErrValueRange{Name: text, Value: fmt.Sprintf("%#x", value)}
		return
	}

	switch strings.ToLower(text) {
	case NAME_PC:
		emu.Cpu.Pc = uint16(value)
	case NAME_SP:
		emu.Cpu.Sp = uint16(value)
	default:
		if name.Width() == cpu.WIDTH_16 {
			err = emu.Cpu.Registers.Write16(name, uint16(value))
		} else {
			err = emu.Cpu.Registers.Write8(name, uint8(value))
		}
	}

	return
}

// lineOf finds the script line of a starlark error.
func lineOf(err error) (lineno int) {
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		stack := evalErr.CallStack
		for n := range len(stack) {
			pos := stack.At(n).Pos
			if pos.Line > 0 {
				return int(pos.Line)
			}
		}
		return
	}

	var syntaxErr syntax.Error
	if errors.As(err, &syntaxErr) {
		return int(syntaxErr.Pos.Line)
	}

	var resolveErrs resolve.ErrorList
	if errors.As(err, &resolveErrs) && len(resolveErrs) > 0 {
		return int(resolveErrs[0].Pos.Line)
	}

	return
}
