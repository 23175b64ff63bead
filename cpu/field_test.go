package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRegister(t *testing.T) {
	assert := assert.New(t)

	for n := range 16 {
		for _, prefix := range []string{"R", "r"} {
			text := fmt.Sprintf("%v%d", prefix, n)
			reg, err := ParseRegister(text)
			assert.NoError(err, text)
			assert.Equal(uint16(n), reg, text)
			assert.Equal(fmt.Sprintf("%04b", n), fmt.Sprintf("%04b", reg), text)
		}
	}

	for _, text := range []string{"R16", "R19", "R-1", "RX", "R", "R01", "r99", " R1", "X1", ""} {
		_, err := ParseRegister(text)
		var target ErrRegisterInvalid
		assert.ErrorAs(err, &target, text)
		assert.Equal(ErrRegisterInvalid(text), target)
	}
}

func TestParseUnsigned(t *testing.T) {
	assert := assert.New(t)

	for v := range 256 {
		for _, text := range []string{fmt.Sprintf("%d", v), fmt.Sprintf("0x%x", v), fmt.Sprintf("0X%02X", v)} {
			field, err := ParseUnsigned(text, 8)
			assert.NoError(err, text)
			assert.Equal(uint16(v), field, text)
			assert.Equal(fmt.Sprintf("%08b", v), fmt.Sprintf("%08b", field), text)
		}
	}

	good := map[string]uint16{
		"+12":     12,
		" 0x1F ":  31,
		"0x0A":    10,
		"007":     7,
		"+0x10":   16,
		"\t255\t": 255,
	}
	for text, expected := range good {
		field, err := ParseUnsigned(text, 8)
		assert.NoError(err, text)
		assert.Equal(expected, field, text)
	}

	for _, text := range []string{"256", "-1", "0x100", "99999999999999999999", "1000"} {
		_, err := ParseUnsigned(text, 8)
		var target *ErrRange
		if assert.ErrorAs(err, &target, text) {
			assert.Equal(8, target.Bits)
			assert.False(target.Signed)
		}
	}

	for _, text := range []string{"", "abc", "0x", "0xZZ", "1.5", "+-1", "++1", "0x-1", "-0x10", "1 2", "R1"} {
		_, err := ParseUnsigned(text, 8)
		var target ErrParseNumber
		assert.ErrorAs(err, &target, text)
	}
}

func TestParseUnsignedWidth(t *testing.T) {
	assert := assert.New(t)

	field, err := ParseUnsigned("15", 4)
	assert.NoError(err)
	assert.Equal(uint16(15), field)

	_, err = ParseUnsigned("16", 4)
	var target *ErrRange
	assert.ErrorAs(err, &target)

	field, err = ParseUnsigned("0x7fff", 15)
	assert.NoError(err)
	assert.Equal(uint16(0x7fff), field)

	assert.Panics(func() { ParseUnsigned("1", 0) })
	assert.Panics(func() { ParseUnsigned("1", 16) })
	assert.Panics(func() { ParseSigned("1", -1) })
}

func TestParseSigned(t *testing.T) {
	assert := assert.New(t)

	for v := -128; v <= 127; v++ {
		text := fmt.Sprintf("%d", v)
		field, err := ParseSigned(text, 8)
		assert.NoError(err, text)
		assert.Equal(uint16(uint8(int8(v))), field, text)
	}

	binary := map[string]string{
		"-1":   "11111111",
		"127":  "01111111",
		"-128": "10000000",
		"0":    "00000000",
		"+2":   "00000010",
		"0x7f": "01111111",
	}
	for text, expected := range binary {
		field, err := ParseSigned(text, 8)
		assert.NoError(err, text)
		assert.Equal(expected, fmt.Sprintf("%08b", field), text)
	}

	for _, text := range []string{"128", "-129", "0x80", "+200", "-99999999999999999999"} {
		_, err := ParseSigned(text, 8)
		var target *ErrRange
		if assert.ErrorAs(err, &target, text) {
			assert.Equal(8, target.Bits)
			assert.True(target.Signed)
		}
	}

	for _, text := range []string{"", "-", "+", "one", "+-1", "0x-1"} {
		_, err := ParseSigned(text, 8)
		var target ErrParseNumber
		assert.ErrorAs(err, &target, text)
	}

	field, err := ParseSigned("-8", 4)
	assert.NoError(err)
	assert.Equal("1000", fmt.Sprintf("%04b", field))
}

func TestParseAddress(t *testing.T) {
	assert := assert.New(t)

	field, err := ParseAddress("[0x10]")
	assert.NoError(err)
	assert.Equal(uint16(0x10), field)

	field, err = ParseAddress("[ 200 ]")
	assert.NoError(err)
	assert.Equal(uint16(200), field)

	for _, text := range []string{"0x10", "[0x10", "0x10]", "(0x10)", ""} {
		_, err := ParseAddress(text)
		var target ErrAddressMalformed
		assert.ErrorAs(err, &target, text)
	}

	_, err = ParseAddress("[256]")
	var outside *ErrRange
	assert.ErrorAs(err, &outside)

	_, err = ParseAddress("[]")
	var number ErrParseNumber
	assert.ErrorAs(err, &number)
}

func TestFieldKindParse(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		kind     FieldKind
		text     string
		expected uint16
	}{
		{FIELD_REG, " r7 ", 7},
		{FIELD_IMM8, "0xff", 0xff},
		{FIELD_ADDR8, "[0x20]", 0x20},
		{FIELD_OFFSET8, "-2", 0xfe},
	}

	for _, tt := range tests {
		field, err := tt.kind.Parse(tt.text)
		assert.NoError(err, tt.kind.String())
		assert.Equal(tt.expected, field, tt.kind.String())
	}

	assert.Panics(func() { FieldKind(9).Parse("0") })
}
