package cpu

import (
	"strings"
)

// Width is the access width of a register.
type Width int

//go:generate go tool stringer -linecomment -type=Width
const (
	WIDTH_8  = Width(8)  // 8-bit
	WIDTH_16 = Width(16) // 16-bit
)

// Byte is a handle to one of the eight byte registers.
type Byte int

//go:generate go tool stringer -linecomment -type=Byte
const (
	REG_B = Byte(0) // B
	REG_C = Byte(1) // C
	REG_D = Byte(2) // D
	REG_E = Byte(3) // E
	REG_H = Byte(4) // H
	REG_L = Byte(5) // L
	REG_A = Byte(6) // A
	REG_F = Byte(7) // F

	BYTE_COUNT = 8 // Number of byte registers.
)

// Pair is a handle to one of the four 16-bit register pairs.
type Pair int

//go:generate go tool stringer -linecomment -type=Pair
const (
	REG_BC = Pair(0) // BC
	REG_DE = Pair(1) // DE
	REG_HL = Pair(2) // HL
	REG_AF = Pair(3) // AF

	PAIR_COUNT = 4 // Number of register pairs.
)

// pairTable maps each pair to its upper (high) and lower (low) byte register.
var pairTable = [PAIR_COUNT][2]Byte{
	REG_BC: {REG_B, REG_C},
	REG_DE: {REG_D, REG_E},
	REG_HL: {REG_H, REG_L},
	REG_AF: {REG_A, REG_F},
}

// Valid returns true if the byte register handle is one of the eight.
func (reg Byte) Valid() bool {
	return reg >= 0 && reg < BYTE_COUNT
}

// Name returns the register name of the byte register.
func (reg Byte) Name() Name {
	return Name(reg)
}

// Valid returns true if the pair handle is one of the four.
func (reg Pair) Valid() bool {
	return reg >= 0 && reg < PAIR_COUNT
}

// Name returns the register name of the pair.
func (reg Pair) Name() Name {
	return Name(BYTE_COUNT + int(reg))
}

// Upper returns the byte register holding the high byte of the pair.
func (reg Pair) Upper() Byte {
	return pairTable[reg][0]
}

// Lower returns the byte register holding the low byte of the pair.
func (reg Pair) Lower() Byte {
	return pairTable[reg][1]
}

// Name is the closed set of register names, covering both byte registers
// and register pairs.
type Name int

//go:generate go tool stringer -linecomment -type=Name
const (
	NAME_B  = Name(0)  // B
	NAME_C  = Name(1)  // C
	NAME_D  = Name(2)  // D
	NAME_E  = Name(3)  // E
	NAME_H  = Name(4)  // H
	NAME_L  = Name(5)  // L
	NAME_A  = Name(6)  // A
	NAME_F  = Name(7)  // F
	NAME_BC = Name(8)  // BC
	NAME_DE = Name(9)  // DE
	NAME_HL = Name(10) // HL
	NAME_AF = Name(11) // AF

	NAME_COUNT = 12 // Number of register names.
)

// Valid returns true if the name is one of the twelve register names.
func (name Name) Valid() bool {
	return name >= 0 && name < NAME_COUNT
}

// Width returns the access width of the named register.
func (name Name) Width() Width {
	if name >= NAME_BC {
		return WIDTH_16
	}
	return WIDTH_8
}

// Byte returns the byte register handle for the name.
func (name Name) Byte() (reg Byte, ok bool) {
	if !name.Valid() || name.Width() != WIDTH_8 {
		return
	}

	return Byte(name), true
}

// Pair returns the register pair handle for the name.
func (name Name) Pair() (reg Pair, ok bool) {
	if !name.Valid() || name.Width() != WIDTH_16 {
		return
	}

	return Pair(name - BYTE_COUNT), true
}

// Names returns all register names, byte registers first.
func Names() (names []Name) {
	names = make([]Name, NAME_COUNT)
	for n := range names {
		names[n] = Name(n)
	}
	return
}

// ParseName resolves a register name, ignoring case.
func ParseName(text string) (name Name, err error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	for _, candidate := range Names() {
		if candidate.String() == text {
			name = candidate
			return
		}
	}

	err = ErrNameUnknown(text)
	return
}
