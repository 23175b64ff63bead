package rom

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("prog_rom.hex", OutputName("prog.asm"))
	assert.Equal("dir/Prog_rom.hex", OutputName("dir/Prog.ASM"))
	assert.Equal("noext_rom.hex", OutputName("noext"))
	assert.Equal("a.b_rom.hex", OutputName("a.b.s"))
}

func TestWriteEmpty(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := Write(&buf, slices.Values([]uint16{0}))
	assert.NoError(err)
	assert.Equal("v2.0 raw\n0000\n", buf.String())
}

func TestWrite(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	err := Write(&buf, slices.Values([]uint16{0, 0x010a, 0x50ff, 0xABCD}))
	assert.NoError(err)
	assert.Equal("v2.0 raw\n0000\n010a\n50ff\nabcd\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteFailure(t *testing.T) {
	assert := assert.New(t)

	err := Write(failWriter{}, slices.Values([]uint16{0}))
	assert.EqualError(err, "disk full")
}

func TestRead(t *testing.T) {
	assert := assert.New(t)

	words, err := Read(strings.NewReader("v2.0 raw\n0000\n010a\n50ff\n"))
	assert.NoError(err)
	assert.Equal([]uint16{0, 0x010a, 0x50ff}, words)

	words, err = Read(strings.NewReader("v2.0 raw\n\n3*0 1312 # three zeros\r\nABCD\n"))
	assert.NoError(err)
	assert.Equal([]uint16{0, 0, 0, 0x1312, 0xabcd}, words)

	words, err = Read(strings.NewReader("v2.0 raw\n"))
	assert.NoError(err)
	assert.Empty(words)
}

func TestReadRoundTrip(t *testing.T) {
	assert := assert.New(t)

	image := []uint16{0, 1, 0x7fff, 0x8000, 0xffff}

	var buf bytes.Buffer
	assert.NoError(Write(&buf, slices.Values(image)))

	words, err := Read(&buf)
	assert.NoError(err)
	assert.Equal(image, words)
}

func TestReadErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Read(strings.NewReader(""))
	assert.ErrorIs(err, ErrHeader)

	_, err = Read(strings.NewReader("v3.0 hex words\n0000\n"))
	assert.ErrorIs(err, ErrHeader)

	tests := map[string]ErrWord{
		"v2.0 raw\n0000\n10000\n": {LineNo: 3, Text: "10000"},
		"v2.0 raw\nzz\n":          {LineNo: 2, Text: "zz"},
		"v2.0 raw\n0 x*1\n":       {LineNo: 2, Text: "x*1"},
		"v2.0 raw\n\n\n99999*0\n": {LineNo: 4, Text: "99999*0"},
	}
	for input, expected := range tests {
		_, err := Read(strings.NewReader(input))
		var target *ErrWord
		if assert.ErrorAs(err, &target, input) {
			assert.Equal(expected, *target, input)
		}
	}
}
