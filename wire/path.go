package wire

import (
	"fmt"

	"github.com/wippyai/msggen/errors"
)

// WithPath prefixes the path of a structured error. Generated accessors use
// it to name the message and field a runtime error belongs to.
func WithPath(err error, path ...string) error {
	var se *errors.Error
	if !errors.As(err, &se) {
		return err
	}
	cp := *se
	cp.Path = append(append(make([]string, 0, len(path)+len(se.Path)), path...), se.Path...)
	return &cp
}

func element(err error, i uint32) error {
	return WithPath(err, fmt.Sprintf("[%d]", i))
}
