package compiler

import (
	"github.com/ezrec/casm/translate"
)

var f = translate.From

// ErrFile is a failure to read the source or write the image.
type ErrFile struct {
	Path string
	Err  error
}

func (err *ErrFile) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrFile) Unwrap() error {
	return err.Err
}

// ErrConfig is a failure to evaluate a configuration file.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("config %v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// ErrConfigType names a configuration global holding the wrong type.
type ErrConfigType string

func (err ErrConfigType) Error() string {
	return f("'%v' has the wrong type", string(err))
}
