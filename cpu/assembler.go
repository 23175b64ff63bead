// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"slices"
	"strings"
	"unicode"
)

// Assembler is a single pass assembler for the t16 CPU.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.
}

// StripComment removes a ';' comment and surrounding whitespace.
func StripComment(text string) string {
	line, _, _ := strings.Cut(text, ";")
	return strings.TrimSpace(line)
}

// isSeparator reports whether r ends the mnemonic.
func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// appendOperand appends a trimmed operand, dropping empty ones.
func appendOperand(operands []string, text string) []string {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return operands
	}
	return append(operands, text)
}

// SplitLine splits a comment-free line into its mnemonic and operands.
//
// Operands are separated by commas, except for commas inside '[...]', which
// belong to the bracketed address operand.
func SplitLine(line string) (mnemonic string, operands []string) {
	line = strings.TrimSpace(line)

	end := strings.IndexFunc(line, isSeparator)
	if end < 0 {
		mnemonic = line
		return
	}
	mnemonic = line[:end]
	rest := strings.TrimLeftFunc(line[end:], isSeparator)

	var current strings.Builder
	bracket := false
	for _, r := range rest {
		switch r {
		case '[':
			bracket = true
		case ']':
			bracket = false
		case ',':
			if !bracket {
				operands = appendOperand(operands, current.String())
				current.Reset()
				continue
			}
		}
		current.WriteRune(r)
	}
	operands = appendOperand(operands, current.String())

	return
}

// parseLine encodes a single comment-free, non-empty line.
func (asm *Assembler) parseLine(line string, lineno int) (code Code, err error) {
	mnemonic, operands := SplitLine(line)

	code, err = Encode(lineno, mnemonic, operands)
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("%v: %04x %v\n", lineno, uint16(code), code)
	}

	return
}

// Parse parses an input stream into a Program.
//
// Parsing stops at the first line that fails to encode; the error is an
// *ErrSyntax and no Program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	asm.Opcode = asm.Opcode[:0]

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = StripComment(text)
		if len(line) == 0 {
			continue
		}

		var code Code
		code, err = asm.parseLine(line, lineno)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}

		asm.Opcode = append(asm.Opcode, Opcode{LineNo: lineno, Line: line, Code: code})
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}
