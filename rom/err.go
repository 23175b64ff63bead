package rom

import (
	"errors"

	"github.com/ezrec/t16/translate"
)

var f = translate.From

var (
	// Image errors
	ErrHeader = errors.New(f("missing '%v' header", HEADER))
)

// ErrWord is an image entry that is not a 16-bit hex word.
type ErrWord struct {
	LineNo int
	Text   string
}

func (err ErrWord) Error() string {
	return f("line %d '%v' is not a hex word", err.LineNo, err.Text)
}
