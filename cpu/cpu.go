package cpu

import (
	"fmt"
	"log"
)

// Cpu is the register state of the CPU: the register file, the program
// counter and the stack pointer.
//
// Pc and Sp are plain values; the execution engine advances them itself.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers *RegisterFile // Byte registers and their pair views.
	Pc        uint16        // Program counter.
	Sp        uint16        // Stack pointer.
}

// NewCpu creates a new CPU with all registers zeroed.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Registers: NewRegisterFile(),
	}

	return
}

// Reset the CPU state.
// - Replaces the register file with a fresh, zeroed one.
// - Zeros the program counter and stack pointer.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers = NewRegisterFile()
	cpu.Pc = 0
	cpu.Sp = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"af", "bc", "de", "hl",
		"pc", "sp",
		"flags",
	}
	rf := cpu.Registers
	for _, reg := range regs {
		var strval string
		switch reg {
		case "af":
			strval = fmt.Sprintf("%04X", rf.ReadPair(REG_AF))
		case "bc":
			strval = fmt.Sprintf("%04X", rf.ReadPair(REG_BC))
		case "de":
			strval = fmt.Sprintf("%04X", rf.ReadPair(REG_DE))
		case "hl":
			strval = fmt.Sprintf("%04X", rf.ReadPair(REG_HL))
		case "pc":
			strval = fmt.Sprintf("%04X", cpu.Pc)
		case "sp":
			strval = fmt.Sprintf("%04X", cpu.Sp)
		case "flags":
			strval = rf.flagString()
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
