package cpu

import (
	"fmt"
	"log"
	"slices"
	"strings"
)

// Field widths, in bits.
const (
	WORD_WIDTH = 16 // Instruction word.
	TAG_WIDTH  = 4  // Opcode tag.
	REG_WIDTH  = 4  // Register index.
	BYTE_WIDTH = 8  // Immediate, address or offset.

	REG_MAX = (1 << REG_WIDTH) - 1 // Highest register index.
)

// Both instruction layouts must pack into exactly one word.
var (
	_ [WORD_WIDTH - (TAG_WIDTH + 3*REG_WIDTH)]struct{}
	_ [(TAG_WIDTH + 3*REG_WIDTH) - WORD_WIDTH]struct{}
	_ [WORD_WIDTH - (TAG_WIDTH + REG_WIDTH + BYTE_WIDTH)]struct{}
	_ [(TAG_WIDTH + REG_WIDTH + BYTE_WIDTH) - WORD_WIDTH]struct{}
)

// CodeOp is an opcode tag.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_LDI   = CodeOp(0) // LDI
	OP_ADD   = CodeOp(1) // ADD
	OP_SUB   = CodeOp(2) // SUB
	OP_LOAD  = CodeOp(3) // LOAD
	OP_STORE = CodeOp(4) // STORE
	OP_JRZ   = CodeOp(5) // JRZ
)

// opCount is the number of defined opcodes.
const opCount = int(OP_JRZ) + 1

// Valid returns true if the tag is a defined opcode.
func (op CodeOp) Valid() bool {
	return op >= 0 && int(op) < opCount
}

// FieldKind is the type of an operand field.
type FieldKind int

//go:generate go tool stringer -linecomment -type=FieldKind
const (
	FIELD_REG     = FieldKind(0) // reg
	FIELD_IMM8    = FieldKind(1) // imm8
	FIELD_ADDR8   = FieldKind(2) // addr8
	FIELD_OFFSET8 = FieldKind(3) // offset8
)

// Width returns the encoded width of the field, in bits.
func (fk FieldKind) Width() int {
	if fk == FIELD_REG {
		return REG_WIDTH
	}
	return BYTE_WIDTH
}

// Operand describes one operand slot of an opcode.
type Operand struct {
	Name string    // Name used in diagnostics, e.g. "Rd" or "[A]".
	Kind FieldKind // Field encoding.
}

// opShape lists the operands of each opcode, most significant field first.
var opShape = [...][]Operand{
	OP_LDI:   {{"Rd", FIELD_REG}, {"imm8", FIELD_IMM8}},
	OP_ADD:   {{"Rd", FIELD_REG}, {"Rs1", FIELD_REG}, {"Rs2", FIELD_REG}},
	OP_SUB:   {{"Rd", FIELD_REG}, {"Rs1", FIELD_REG}, {"Rs2", FIELD_REG}},
	OP_LOAD:  {{"Rd", FIELD_REG}, {"[A]", FIELD_ADDR8}},
	OP_STORE: {{"Rs", FIELD_REG}, {"[A]", FIELD_ADDR8}},
	OP_JRZ:   {{"Rd", FIELD_REG}, {"offset", FIELD_OFFSET8}},
}

// opMap maps upper case mnemonics to opcodes.
var opMap = map[string]CodeOp{}

func init() {
	if len(opShape) != opCount {
		log.Panicf("cpu: %d opcode shapes for %d opcodes", len(opShape), opCount)
	}

	for n, shape := range opShape {
		op := CodeOp(n)
		width := TAG_WIDTH
		for _, operand := range shape {
			width += operand.Kind.Width()
		}
		if width != WORD_WIDTH {
			log.Panicf("cpu: %v encodes to %d bits", op, width)
		}
		opMap[op.String()] = op
	}
}

// LookupOp finds the opcode for a mnemonic, ignoring case.
func LookupOp(mnemonic string) (op CodeOp, ok bool) {
	op, ok = opMap[strings.ToUpper(mnemonic)]
	return
}

// Shape returns the operand slots of the opcode.
func (op CodeOp) Shape() []Operand {
	if !op.Valid() {
		return nil
	}
	return slices.Clone(opShape[op])
}

// Syntax returns the operand list as written in diagnostics, e.g. "Rd, imm8".
func (op CodeOp) Syntax() string {
	names := make([]string, 0, 3)
	for _, operand := range op.Shape() {
		names = append(names, operand.Name)
	}
	return strings.Join(names, ", ")
}

// Code is a single encoded instruction word.
type Code uint16

// MakeCodeReg3 creates a three register instruction.
func MakeCodeReg3(op CodeOp, rd, rs1, rs2 uint16) Code {
	return Code((uint16(op) << 12) | ((rd & REG_MAX) << 8) | ((rs1 & REG_MAX) << 4) | ((rs2 & REG_MAX) << 0))
}

// MakeCodeRegByte creates a register and 8-bit field instruction.
func MakeCodeRegByte(op CodeOp, reg uint16, value uint8) Code {
	return Code((uint16(op) << 12) | ((reg & REG_MAX) << 8) | uint16(value))
}

// Op returns the opcode tag.
func (code Code) Op() CodeOp {
	return CodeOp((code >> 12) & 0xf)
}

// Rd returns the first register field. STORE keeps its source register here.
func (code Code) Rd() uint16 {
	return uint16(code>>8) & REG_MAX
}

// Rs1 returns the second register field.
func (code Code) Rs1() uint16 {
	return uint16(code>>4) & REG_MAX
}

// Rs2 returns the third register field.
func (code Code) Rs2() uint16 {
	return uint16(code>>0) & REG_MAX
}

// Byte returns the low 8 bits as an unsigned immediate or address.
func (code Code) Byte() uint8 {
	return uint8(code & 0xff)
}

// Offset returns the low 8 bits as a signed offset.
func (code Code) Offset() int8 {
	return int8(code & 0xff)
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	op := code.Op()

	switch op {
	case OP_LDI:
		out = fmt.Sprintf("%v R%d, 0x%02x", op, code.Rd(), code.Byte())
	case OP_ADD, OP_SUB:
		out = fmt.Sprintf("%v R%d, R%d, R%d", op, code.Rd(), code.Rs1(), code.Rs2())
	case OP_LOAD, OP_STORE:
		out = fmt.Sprintf("%v R%d, [0x%02x]", op, code.Rd(), code.Byte())
	case OP_JRZ:
		out = fmt.Sprintf("%v R%d, %d", op, code.Rd(), code.Offset())
	default:
		out = fmt.Sprintf(".word 0x%04x", uint16(code))
	}

	return
}
