package encode

import (
	"errors"
	"fmt"
)

var ErrInvalidRoot = errors.New("invalid root")

// InvalidRootError is returned when the tree's root is not keyed.
type InvalidRootError struct {
	Received string // description of the root
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("%s: form encoding requires keyed root object, received %s instead", ErrInvalidRoot, e.Received)
}

func (e *InvalidRootError) Unwrap() error {
	return ErrInvalidRoot
}
