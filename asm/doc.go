// Package asm implements the assembler core for the quad CPU.
//
// The quad CPU has four 8-bit registers (rA-rD) and ten opcodes, each encoded
// in a single 16-bit word. The top nibble of a word is the opcode, the rest of
// the high byte holds up to two register fields, and the low byte holds a
// third register, an immediate, or a signed branch offset.
//
// Assembly is strictly staged. All source lines are built into Commands
// (registering labels as a side effect), then every Command is encoded against
// the completed label table, so labels may be referenced before they are
// defined.
package asm
