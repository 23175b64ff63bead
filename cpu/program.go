package cpu

import (
	"iter"
	"slices"

	"github.com/ezrec/t16/internal"
)

// RESERVED_WORD is placed at image address 0, ahead of the program.
const RESERVED_WORD = uint16(0x0000)

// Opcode is an assembled source line.
type Opcode struct {
	LineNo int    // Source line number, starting at 1.
	Line   string // Source text, without comment.
	Code   Code   // Encoded instruction.
}

// Program is an assembled source file, in source order.
type Program struct {
	Opcodes []Opcode
}

// Debug returns the opcode stored at an image address, or nil for the
// reserved word and addresses past the end of the program.
func (prog *Program) Debug(addr uint16) *Opcode {
	if addr == 0 || int(addr) > len(prog.Opcodes) {
		return nil
	}

	return &prog.Opcodes[addr-1]
}

// Codes returns the encoded instructions.
func (prog *Program) Codes() iter.Seq[Code] {
	return func(yield func(code Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Code) {
				return
			}
		}
	}
}

// Image returns the words of the program image: the reserved word followed
// by every instruction.
func (prog *Program) Image() iter.Seq[uint16] {
	words := internal.IterSeqMap(prog.Codes(), func(code Code) uint16 { return uint16(code) })

	return internal.IterSeqConcat(slices.Values([]uint16{RESERVED_WORD}), words)
}

// ImageSize returns the number of words in the program image.
func (prog *Program) ImageSize() int {
	return len(prog.Opcodes) + 1
}

// Binary returns the program image.
func (prog *Program) Binary() []uint16 {
	return slices.Collect(prog.Image())
}
