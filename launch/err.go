package launch

import (
	"github.com/ezrec/casm/translate"
)

var f = translate.From

// ErrRuntime indicates an image that could not be started.
type ErrRuntime struct {
	Path string
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("run %v: %v", err.Path, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
