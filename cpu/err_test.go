package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/ezrec/t16/translate"
)

func TestErrorText(t *testing.T) {
	assert := assert.New(t)

	translate.SetLanguage(language.AmericanEnglish)
	defer translate.SetLanguage(language.AmericanEnglish)

	_, err := Encode(3, "ldi", []string{"R1"})
	assert.EqualError(err, "LDI: expects 2 operands (Rd, imm8), got 1")

	_, err = Encode(3, "LOAD", []string{"R1", "0x10"})
	assert.EqualError(err, "LOAD: memory address must be bracketed, like [0x10], got '0x10'")

	_, err = Encode(3, "JRZ", []string{"R1", "200"})
	assert.EqualError(err, "JRZ: 8-bit signed value 200 out of range")

	err = &ErrSyntax{LineNo: 9, Line: "MOV R1, R2", Err: ErrMnemonicUnknown("MOV")}
	assert.EqualError(err, "line 9 'MOV R1, R2' unknown mnemonic MOV")

	translate.SetLanguage(language.SimplifiedChinese)

	_, err = Encode(3, "ldi", []string{"R1"})
	assert.EqualError(err, "LDI: 需要 2 个操作数 (Rd, imm8)，实际得到 1")

	_, err = Encode(3, "LDI", []string{"R17", "1"})
	assert.EqualError(err, "LDI: 无效的寄存器格式: R17。应为 R0-R15。")
}
