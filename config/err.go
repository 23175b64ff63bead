package config

import (
	"github.com/ezrec/t16/translate"
)

var f = translate.From

// ErrConfigKey is a setting the assembler does not know.
type ErrConfigKey string

func (err ErrConfigKey) Error() string {
	return f("unknown setting '%v'", string(err))
}

// ErrConfigType is a setting with a value of the wrong type.
type ErrConfigType struct {
	Name string
	Want string
	Got  string
}

func (err ErrConfigType) Error() string {
	return f("setting '%v' must be %v, not %v", err.Name, err.Want, err.Got)
}
