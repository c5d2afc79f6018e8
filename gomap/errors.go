package gomap

import (
	"errors"
	"fmt"
)

var (
	ErrDoubleWrite      = errors.New("single value container already written")
	ErrUnsupportedInput = errors.New("unsupported input")
)

// EncodeError reports a failure at a position in the tree being built.
type EncodeError struct {
	Path    string // kpath of the value, e.g. "person.address[0]"
	Message string
	Err     error
}

func (e *EncodeError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg += ": " + e.Err.Error()
		}
	}
	if e.Path != "" {
		return fmt.Sprintf("encode error at %s: %s", e.Path, msg)
	}
	return fmt.Sprintf("encode error: %s", msg)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
