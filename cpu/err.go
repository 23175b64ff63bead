package cpu

import (
	"github.com/ezrec/t16/translate"
)

var f = translate.From

// ErrMnemonicUnknown is an instruction name outside of the opcode table.
type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("unknown mnemonic %v", string(err))
}

// ErrOperandCount is an instruction with the wrong number of operands.
type ErrOperandCount struct {
	Expected int
	Actual   int
	Syntax   string // Expected operands, e.g. "Rd, imm8".
}

func (err ErrOperandCount) Error() string {
	return f("expects %d operands (%v), got %d", err.Expected, err.Syntax, err.Actual)
}

// ErrRegisterInvalid is a register operand that is not R0-R15.
type ErrRegisterInvalid string

func (err ErrRegisterInvalid) Error() string {
	return f("invalid register '%v', expected R0-R15", string(err))
}

// ErrParseNumber is a numeric operand that is not an integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrRange is an integer that does not fit its field.
type ErrRange struct {
	Text   string
	Bits   int
	Signed bool
}

func (err ErrRange) Error() string {
	if err.Signed {
		return f("%d-bit signed value %v out of range", err.Bits, err.Text)
	}
	return f("%d-bit unsigned value %v out of range", err.Bits, err.Text)
}

// ErrAddressMalformed is an address operand without its brackets.
type ErrAddressMalformed string

func (err ErrAddressMalformed) Error() string {
	return f("memory address must be bracketed, like [0x10], got '%v'", string(err))
}

// ErrInstruction locates an encoding failure.
type ErrInstruction struct {
	LineNo   int
	Mnemonic string
	Err      error
}

func (err ErrInstruction) Error() string {
	return f("%v: %v", err.Mnemonic, err.Err)
}

func (err ErrInstruction) Unwrap() error {
	return err.Err
}

// ErrSyntax locates a failure in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
