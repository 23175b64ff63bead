package batch

import (
	"github.com/ezrec/t16/translate"
)

var f = translate.From

// ErrSource is a source file that could not be read.
type ErrSource struct {
	Path string
	Err  error
}

func (err *ErrSource) Error() string {
	return f("input file '%v' not readable: %v", err.Path, err.Err)
}

func (err *ErrSource) Unwrap() error {
	return err.Err
}

// ErrOutput is an image file that could not be written.
type ErrOutput struct {
	Path string
	Err  error
}

func (err *ErrOutput) Error() string {
	return f("output file '%v' not writable: %v", err.Path, err.Err)
}

func (err *ErrOutput) Unwrap() error {
	return err.Err
}
