package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFile_Fresh(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()

	for reg, value := range rf.Bytes() {
		assert.Equal(uint8(0), value, reg.String())
	}
	for reg, value := range rf.Pairs() {
		assert.Equal(uint16(0), value, reg.String())
	}
	assert.Equal("B=00 C=00 D=00 E=00 H=00 L=00 A=00 F=00 ----", rf.String())
}

func TestRegisterFile_ByteRoundTrip(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()

	for n := range BYTE_COUNT {
		reg := Byte(n)
		for value := range 0x100 {
			rf.WriteByte(reg, uint8(value))
			assert.Equal(uint8(value), rf.ReadByte(reg), reg.String())
		}
	}
}

func TestRegisterFile_ByteIsolation(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()

	for n := range BYTE_COUNT {
		rf.WriteByte(Byte(n), uint8(0x11*(n+1)))
	}

	for reg, value := range rf.Bytes() {
		assert.Equal(uint8(0x11*(int(reg)+1)), value, reg.String())
	}
}

func TestRegisterFile_PairRoundTrip(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()

	for n := range PAIR_COUNT {
		reg := Pair(n)
		for value := range 0x10000 {
			rf.WritePair(reg, uint16(value))
			if rf.ReadPair(reg) != uint16(value) {
				assert.Equal(uint16(value), rf.ReadPair(reg), reg.String())
				break
			}
		}
	}
}

func TestRegisterFile_PairAliasing(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		pair  Pair
		upper Byte
		lower Byte
	}){
		{REG_BC, REG_B, REG_C},
		{REG_DE, REG_D, REG_E},
		{REG_HL, REG_H, REG_L},
		{REG_AF, REG_A, REG_F},
	}

	for _, entry := range table {
		name := entry.pair.String()
		rf := NewRegisterFile()

		assert.Equal(entry.upper, entry.pair.Upper(), name)
		assert.Equal(entry.lower, entry.pair.Lower(), name)

		rf.WriteByte(entry.upper, 0x12)
		rf.WriteByte(entry.lower, 0x34)
		assert.Equal(uint16(0x1234), rf.ReadPair(entry.pair), name)

		rf.WritePair(entry.pair, 0xabcd)
		assert.Equal(uint8(0xab), rf.ReadByte(entry.upper), name)
		assert.Equal(uint8(0xcd), rf.ReadByte(entry.lower), name)

		// Only the two component registers change.
		for reg, value := range rf.Bytes() {
			if reg == entry.upper || reg == entry.lower {
				continue
			}
			assert.Equal(uint8(0), value, name+" "+reg.String())
		}
	}
}

func TestRegisterFile_PairsDisjoint(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	rf.WritePair(REG_BC, 0x0102)
	rf.WritePair(REG_DE, 0x0304)
	rf.WritePair(REG_HL, 0x0506)
	rf.WritePair(REG_AF, 0x0708)

	assert.Equal(uint16(0x0102), rf.ReadPair(REG_BC))
	assert.Equal(uint16(0x0304), rf.ReadPair(REG_DE))
	assert.Equal(uint16(0x0506), rf.ReadPair(REG_HL))
	assert.Equal(uint16(0x0708), rf.ReadPair(REG_AF))
	assert.Equal("B=01 C=02 D=03 E=04 H=05 L=06 A=07 F=08 ----", rf.String())
}

func TestRegisterFile_SetFlag(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()

	rf.SetFlag(FLAG_Z, true)
	assert.Equal(uint8(0x80), rf.ReadByte(REG_F))

	rf.SetFlag(FLAG_C, true)
	assert.Equal(uint8(0x90), rf.ReadByte(REG_F))

	rf.SetFlag(FLAG_N, true)
	rf.SetFlag(FLAG_H, true)
	assert.Equal(uint8(0xf0), rf.ReadByte(REG_F))

	rf.SetFlag(FLAG_Z, false)
	assert.Equal(uint8(0x70), rf.ReadByte(REG_F))

	// Clearing a clear flag is a no-op.
	rf.SetFlag(FLAG_Z, false)
	assert.Equal(uint8(0x70), rf.ReadByte(REG_F))
}

func TestRegisterFile_SetFlagKeepsLowNibble(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	rf.WriteByte(REG_F, 0x0f)

	rf.SetFlag(FLAG_H, true)
	assert.Equal(uint8(0x2f), rf.ReadByte(REG_F))

	rf.SetFlag(FLAG_H, false)
	assert.Equal(uint8(0x0f), rf.ReadByte(REG_F))
}

func TestRegisterFile_SetFlags(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name       string
		prior      uint8
		z, n, h, c bool
		expected   uint8
	}){
		{"zero", 0x00, true, false, true, false, 0xa0},
		{"ones", 0xff, true, false, true, false, 0xa0},
		{"nibble", 0x0f, false, false, false, false, 0x00},
		{"all", 0x00, true, true, true, true, 0xf0},
		{"carry", 0x80, false, false, false, true, 0x10},
		{"subtract", 0x55, false, true, false, false, 0x40},
	}

	for _, entry := range table {
		rf := NewRegisterFile()
		rf.WriteByte(REG_F, entry.prior)
		rf.WriteByte(REG_A, 0x42)

		rf.SetFlags(entry.z, entry.n, entry.h, entry.c)

		assert.Equal(entry.expected, rf.ReadByte(REG_F), entry.name)
		assert.Equal(uint8(0x42), rf.ReadByte(REG_A), entry.name)

		z, n, h, c := rf.Flags()
		assert.Equal(entry.z, z, entry.name)
		assert.Equal(entry.n, n, entry.name)
		assert.Equal(entry.h, h, entry.name)
		assert.Equal(entry.c, c, entry.name)
	}
}

func TestRegisterFile_FlagsThroughAF(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	rf.WritePair(REG_AF, 0x0150)

	assert.Equal(uint8(0x01), rf.ReadByte(REG_A))
	assert.False(rf.Flag(FLAG_Z))
	assert.True(rf.Flag(FLAG_N))
	assert.False(rf.Flag(FLAG_H))
	assert.True(rf.Flag(FLAG_C))

	rf.SetFlag(FLAG_Z, true)
	assert.Equal(uint16(0x01d0), rf.ReadPair(REG_AF))
}

func TestRegisterFile_Named(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()

	err := rf.Write8(NAME_H, 0xbe)
	assert.NoError(err)
	err = rf.Write8(NAME_L, 0xef)
	assert.NoError(err)

	value16, err := rf.Read16(NAME_HL)
	assert.NoError(err)
	assert.Equal(uint16(0xbeef), value16)

	err = rf.Write16(NAME_DE, 0x1234)
	assert.NoError(err)

	value8, err := rf.Read8(NAME_D)
	assert.NoError(err)
	assert.Equal(uint8(0x12), value8)
	value8, err = rf.Read8(NAME_E)
	assert.NoError(err)
	assert.Equal(uint8(0x34), value8)
}

func TestRegisterFile_InvalidWidth(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	for n := range BYTE_COUNT {
		rf.WriteByte(Byte(n), uint8(0xa0+n))
	}
	before := rf.String()

	value16, err := rf.Read16(NAME_L)
	assert.ErrorIs(err, ErrInvalidAccessWidth)
	assert.Equal(uint16(0), value16)
	assert.EqualError(err, "attempted 16-bit read of 8-bit register L")

	err = rf.Write8(NAME_HL, 0x55)
	assert.ErrorIs(err, ErrInvalidAccessWidth)
	assert.EqualError(err, "attempted 8-bit write of 16-bit register HL")

	err = rf.Write16(NAME_A, 0x5555)
	assert.ErrorIs(err, ErrInvalidAccessWidth)

	value8, err := rf.Read8(NAME_AF)
	assert.ErrorIs(err, ErrInvalidAccessWidth)
	assert.Equal(uint8(0), value8)

	var werr *ErrAccessWidth
	assert.True(errors.As(err, &werr))
	assert.Equal(NAME_AF, werr.Name)
	assert.Equal(WIDTH_8, werr.Width)
	assert.False(werr.Write)

	assert.Equal(before, rf.String())
}

func TestRegisterFile_InvalidName(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()

	_, err := rf.Read8(Name(12))
	assert.ErrorIs(err, ErrNameInvalid)
	err = rf.Write16(Name(-1), 0)
	assert.ErrorIs(err, ErrNameInvalid)
}

func TestRegisterFile_All(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	rf.WritePair(REG_BC, 0x1234)
	rf.WritePair(REG_AF, 0xff80)

	var names []Name
	values := map[Name]uint16{}
	for name, value := range rf.All() {
		names = append(names, name)
		values[name] = value
	}

	assert.Equal(Names(), names)
	assert.Equal(uint16(0x12), values[NAME_B])
	assert.Equal(uint16(0x34), values[NAME_C])
	assert.Equal(uint16(0x1234), values[NAME_BC])
	assert.Equal(uint16(0xff80), values[NAME_AF])
	assert.Equal(uint16(0), values[NAME_HL])

	// Early exit from the iteration.
	count := 0
	for range rf.All() {
		count++
		if count == 9 {
			break
		}
	}
	assert.Equal(9, count)
}

func TestRegisterFile_Reset(t *testing.T) {
	assert := assert.New(t)

	rf := NewRegisterFile()
	rf.WritePair(REG_DE, 0xffff)
	rf.SetFlags(true, true, true, true)

	rf.Reset()

	for name, value := range rf.All() {
		assert.Equal(uint16(0), value, name.String())
	}
}

func FuzzRegisterFile(f *testing.F) {
	f.Add(uint8(0), uint8(0), uint16(0))
	f.Add(uint8(7), uint8(3), uint16(0xffff))
	f.Add(uint8(5), uint8(2), uint16(0x8001))

	f.Fuzz(func(t *testing.T, breg uint8, preg uint8, value uint16) {
		assert := assert.New(t)

		rf := NewRegisterFile()
		reg := Byte(breg % BYTE_COUNT)
		pair := Pair(preg % PAIR_COUNT)

		rf.WritePair(pair, value)
		assert.Equal(value, rf.ReadPair(pair))
		assert.Equal(uint8(value>>8), rf.ReadByte(pair.Upper()))
		assert.Equal(uint8(value), rf.ReadByte(pair.Lower()))

		rf.WriteByte(reg, uint8(value))
		assert.Equal(uint8(value), rf.ReadByte(reg))

		expect := value
		switch reg {
		case pair.Upper():
			expect = (uint16(uint8(value)) << 8) | (value & 0xff)
		case pair.Lower():
			expect = (value & 0xff00) | (value & 0xff)
		}
		assert.Equal(expect, rf.ReadPair(pair))
	})
}
