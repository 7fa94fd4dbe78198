package cpu

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/zregs/internal"
)

// RegisterFile holds the byte register cells. Register pairs are views
// over two cells and have no storage of their own.
//
// A RegisterFile is not safe for concurrent use.
type RegisterFile struct {
	cell [BYTE_COUNT]uint8
}

// NewRegisterFile returns a register file with every register zeroed.
func NewRegisterFile() (rf *RegisterFile) {
	rf = &RegisterFile{}
	return
}

// Reset zeroes every register.
func (rf *RegisterFile) Reset() {
	clear(rf.cell[:])
}

// ReadByte returns the value of a byte register.
func (rf *RegisterFile) ReadByte(reg Byte) uint8 {
	return rf.cell[reg]
}

// WriteByte sets the value of a byte register.
func (rf *RegisterFile) WriteByte(reg Byte, value uint8) {
	rf.cell[reg] = value
}

// ReadPair returns the value of a register pair, with the upper
// register in the high byte.
func (rf *RegisterFile) ReadPair(reg Pair) uint16 {
	hi := rf.ReadByte(reg.Upper())
	lo := rf.ReadByte(reg.Lower())
	return (uint16(hi) << 8) | uint16(lo)
}

// WritePair sets the value of a register pair, upper register first.
func (rf *RegisterFile) WritePair(reg Pair, value uint16) {
	rf.WriteByte(reg.Upper(), uint8((value>>8)&0xff))
	rf.WriteByte(reg.Lower(), uint8(value&0xff))
}

// SetFlag sets or clears a single flag, leaving the other bits of F alone.
func (rf *RegisterFile) SetFlag(flag Flag, value bool) {
	bits := rf.ReadByte(REG_F)
	if value {
		bits |= flag.Mask()
	} else {
		bits &^= flag.Mask()
	}
	rf.WriteByte(REG_F, bits)
}

// SetFlags replaces F with the four flags. The low nibble is cleared.
func (rf *RegisterFile) SetFlags(z, n, h, c bool) {
	value := boolToUint8(z)<<FLAG_Z |
		boolToUint8(n)<<FLAG_N |
		boolToUint8(h)<<FLAG_H |
		boolToUint8(c)<<FLAG_C
	rf.WriteByte(REG_F, value)
}

// Flag returns the state of a single flag.
func (rf *RegisterFile) Flag(flag Flag) bool {
	return rf.ReadByte(REG_F)&flag.Mask() != 0
}

// Flags returns the state of all four flags.
func (rf *RegisterFile) Flags() (z, n, h, c bool) {
	z = rf.Flag(FLAG_Z)
	n = rf.Flag(FLAG_N)
	h = rf.Flag(FLAG_H)
	c = rf.Flag(FLAG_C)
	return
}

// Read8 reads a byte register by name.
func (rf *RegisterFile) Read8(name Name) (value uint8, err error) {
	reg, err := byteOf(name, false)
	if err != nil {
		return
	}

	value = rf.ReadByte(reg)
	return
}

// Write8 writes a byte register by name.
func (rf *RegisterFile) Write8(name Name, value uint8) (err error) {
	reg, err := byteOf(name, true)
	if err != nil {
		return
	}

	rf.WriteByte(reg, value)
	return
}

// Read16 reads a register pair by name.
func (rf *RegisterFile) Read16(name Name) (value uint16, err error) {
	reg, err := pairOf(name, false)
	if err != nil {
		return
	}

	value = rf.ReadPair(reg)
	return
}

// Write16 writes a register pair by name.
func (rf *RegisterFile) Write16(name Name, value uint16) (err error) {
	reg, err := pairOf(name, true)
	if err != nil {
		return
	}

	rf.WritePair(reg, value)
	return
}

func byteOf(name Name, write bool) (reg Byte, err error) {
	if !name.Valid() {
		err = ErrNameInvalid
		return
	}

	reg, ok := name.Byte()
	if !ok {
		err = &ErrAccessWidth{Name: name, Width: WIDTH_8, Write: write}
	}
	return
}

func pairOf(name Name, write bool) (reg Pair, err error) {
	if !name.Valid() {
		err = ErrNameInvalid
		return
	}

	reg, ok := name.Pair()
	if !ok {
		err = &ErrAccessWidth{Name: name, Width: WIDTH_16, Write: write}
	}
	return
}

// Bytes iterates over the byte registers and their values.
func (rf *RegisterFile) Bytes() iter.Seq2[Byte, uint8] {
	return func(yield func(Byte, uint8) bool) {
		for n := range BYTE_COUNT {
			reg := Byte(n)
			if !yield(reg, rf.ReadByte(reg)) {
				return
			}
		}
	}
}

// Pairs iterates over the register pairs and their values.
func (rf *RegisterFile) Pairs() iter.Seq2[Pair, uint16] {
	return func(yield func(Pair, uint16) bool) {
		for n := range PAIR_COUNT {
			reg := Pair(n)
			if !yield(reg, rf.ReadPair(reg)) {
				return
			}
		}
	}
}

// All iterates over every register name and its value, byte registers
// first.
func (rf *RegisterFile) All() iter.Seq2[Name, uint16] {
	var bytes iter.Seq2[Name, uint16] = func(yield func(Name, uint16) bool) {
		for reg, value := range rf.Bytes() {
			if !yield(reg.Name(), uint16(value)) {
				return
			}
		}
	}
	var pairs iter.Seq2[Name, uint16] = func(yield func(Name, uint16) bool) {
		for reg, value := range rf.Pairs() {
			if !yield(reg.Name(), value) {
				return
			}
		}
	}
	return internal.IterSeq2Concat(bytes, pairs)
}

// String returns the byte registers and flags on one line.
func (rf *RegisterFile) String() string {
	var sb strings.Builder
	for reg, value := range rf.Bytes() {
		fmt.Fprintf(&sb, "%v=%02X ", reg, value)
	}
	sb.WriteString(rf.flagString())
	return sb.String()
}

// flagString renders the flags as "ZNHC", with '-' for a clear flag.
func (rf *RegisterFile) flagString() string {
	text := []byte("----")
	for n, flag := range Flags() {
		if rf.Flag(flag) {
			text[n] = flag.String()[0]
		}
	}
	return string(text)
}
