package cpu

import (
	"strings"
)

// Flag is a condition flag, valued by its bit position in F.
type Flag int

//go:generate go tool stringer -linecomment -type=Flag
const (
	FLAG_C = Flag(4) // C
	FLAG_H = Flag(5) // H
	FLAG_N = Flag(6) // N
	FLAG_Z = Flag(7) // Z
)

// FLAG_MASK covers the bits of F that hold flags. The low nibble is unused.
const FLAG_MASK = uint8(0xf0)

// Flags returns all condition flags, most significant bit first.
func Flags() []Flag {
	return []Flag{FLAG_Z, FLAG_N, FLAG_H, FLAG_C}
}

// Mask returns the bit mask of the flag within F.
func (flag Flag) Mask() uint8 {
	return 1 << uint(flag)
}

// Valid returns true if the flag is one of the four condition flags.
func (flag Flag) Valid() bool {
	return flag >= FLAG_C && flag <= FLAG_Z
}

// ParseFlag resolves a flag name, ignoring case.
func ParseFlag(text string) (flag Flag, err error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	switch text {
	case "Z":
		flag = FLAG_Z
	case "N":
		flag = FLAG_N
	case "H":
		flag = FLAG_H
	case "C":
		flag = FLAG_C
	default:
		err = ErrFlagUnknown(text)
	}
	return
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
