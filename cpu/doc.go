// Package cpu implements the instruction set and assembler for the t16 toy CPU.
//
// The CPU has sixteen 8-bit registers (R0-R15), a 256 byte data memory and a
// 16-bit instruction word. Every instruction is one word: a 4-bit opcode tag
// followed by either three register fields or a register field and an 8-bit
// immediate, address or signed offset.
//
// The assembler is single pass. There are no labels, macros or relocations;
// each source line encodes to exactly one word, independent of its position.
package cpu
