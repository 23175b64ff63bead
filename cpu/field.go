package cpu

import (
	"errors"
	"log"
	"regexp"
	"strconv"
	"strings"
)

// registerPattern matches R0 through R15, either case.
var registerPattern = regexp.MustCompile(`^[Rr]([0-9]|1[0-5])$`)

// ParseRegister returns the 4-bit field for a register name.
func ParseRegister(text string) (reg uint16, err error) {
	match := registerPattern.FindStringSubmatch(text)
	if match == nil {
		err = ErrRegisterInvalid(text)
		return
	}

	// The pattern bounds the index, but the range check is the authority.
	n, err := strconv.Atoi(match[1])
	if err != nil || n < 0 || n > REG_MAX {
		err = ErrRegisterInvalid(text)
		return
	}

	reg = uint16(n)
	return
}

// parseInteger parses decimal or 0x-prefixed hexadecimal text, with an
// optional leading '+'. Returns strconv.ErrRange if the value does not fit
// an int64.
func parseInteger(text string) (value int64, err error) {
	digits, plus := strings.CutPrefix(text, "+")

	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
		base = 16
	}

	if len(digits) == 0 || digits[0] == '+' || (digits[0] == '-' && (plus || base == 16)) {
		err = ErrParseNumber(text)
		return
	}

	value, err = strconv.ParseInt(digits, base, 64)
	if errors.Is(err, strconv.ErrRange) {
		err = strconv.ErrRange
		return
	}
	if err != nil {
		err = ErrParseNumber(text)
		return
	}

	return
}

// checkWidth rejects field widths that cannot hold in a word.
func checkWidth(bits int) {
	if bits < 1 || bits >= WORD_WIDTH {
		log.Panicf("cpu: invalid field width %d", bits)
	}
}

// ParseUnsigned returns the bits wide field for an unsigned integer.
func ParseUnsigned(text string, bits int) (field uint16, err error) {
	checkWidth(bits)

	word := strings.TrimSpace(text)
	value, err := parseInteger(word)
	if errors.Is(err, strconv.ErrRange) {
		err = &ErrRange{Text: word, Bits: bits}
		return
	}
	if err != nil {
		return
	}

	if value < 0 || value >= (1<<bits) {
		err = &ErrRange{Text: word, Bits: bits}
		return
	}

	field = uint16(value)
	return
}

// ParseSigned returns the bits wide two's-complement field for a signed
// integer.
func ParseSigned(text string, bits int) (field uint16, err error) {
	checkWidth(bits)

	word := strings.TrimSpace(text)
	value, err := parseInteger(word)
	if errors.Is(err, strconv.ErrRange) {
		err = &ErrRange{Text: word, Bits: bits, Signed: true}
		return
	}
	if err != nil {
		return
	}

	limit := int64(1) << (bits - 1)
	if value < -limit || value >= limit {
		err = &ErrRange{Text: word, Bits: bits, Signed: true}
		return
	}

	if value < 0 {
		value += 1 << bits
	}

	field = uint16(value)
	return
}

// ParseAddress returns the 8-bit field for a bracketed address, like "[0x10]".
func ParseAddress(text string) (field uint16, err error) {
	if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") {
		err = ErrAddressMalformed(text)
		return
	}

	return ParseUnsigned(text[1:len(text)-1], BYTE_WIDTH)
}

// Parse returns the encoded field for an operand of this kind.
func (fk FieldKind) Parse(text string) (field uint16, err error) {
	text = strings.TrimSpace(text)

	switch fk {
	case FIELD_REG:
		return ParseRegister(text)
	case FIELD_IMM8:
		return ParseUnsigned(text, BYTE_WIDTH)
	case FIELD_ADDR8:
		return ParseAddress(text)
	case FIELD_OFFSET8:
		return ParseSigned(text, BYTE_WIDTH)
	}

	log.Panicf("cpu: no parser for %v field", fk)
	return
}
