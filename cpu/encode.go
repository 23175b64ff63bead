package cpu

import (
	"log"
	"strings"
)

// Encode assembles one instruction from its mnemonic and operand text.
//
// Failures are returned as *ErrInstruction wrapping the cause. The mnemonic
// is resolved before any operand is examined.
func Encode(lineno int, mnemonic string, operands []string) (code Code, err error) {
	name := strings.ToUpper(mnemonic)

	defer func() {
		if err != nil {
			err = &ErrInstruction{LineNo: lineno, Mnemonic: name, Err: err}
		}
	}()

	op, ok := opMap[name]
	if !ok {
		err = ErrMnemonicUnknown(name)
		return
	}

	shape := opShape[op]
	if len(operands) != len(shape) {
		err = &ErrOperandCount{Expected: len(shape), Actual: len(operands), Syntax: op.Syntax()}
		return
	}

	word := uint32(op)
	width := TAG_WIDTH
	for n, operand := range shape {
		var field uint16
		field, err = operand.Kind.Parse(operands[n])
		if err != nil {
			return
		}
		word = (word << operand.Kind.Width()) | uint32(field)
		width += operand.Kind.Width()
	}

	if width != WORD_WIDTH || word > 0xffff {
		log.Panicf("cpu: %v encoded to %d bits (0x%x)", op, width, word)
	}

	code = Code(word)
	return
}
