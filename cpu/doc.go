// Package cpu implements the register file of an 8-bit Z80-family CPU.
//
// The register file holds eight byte registers (B, C, D, E, H, L, A and
// the flags register F). The four 16-bit pairs BC, DE, HL and AF are views
// over two byte registers each and own no storage: a write through a pair
// is visible through its byte registers and vice versa. The first-named
// register of a pair supplies the high byte.
//
// The upper nibble of F carries the condition flags Z (bit 7), N (bit 6),
// H (bit 5) and C (bit 4).
//
// Byte and Pair are distinct handle types, so an 8-bit access to a pair or
// a 16-bit access to a byte register does not compile. Operands decoded at
// run time can be addressed by Name through the checked Read8/Write8 and
// Read16/Write16 methods, which report ErrAccessWidth on a mismatch.
package cpu
