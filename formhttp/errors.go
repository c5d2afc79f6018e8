package formhttp

import (
	"errors"
	"fmt"
)

var (
	ErrMissingURL        = errors.New("request has no URL")
	ErrParameterEncoding = errors.New("parameter encoding failed")
)

// ParameterEncodingError wraps a failure of a Body or Query encoder.
type ParameterEncodingError struct {
	Err error
}

func (e *ParameterEncodingError) Error() string {
	return fmt.Sprintf("%s: %v", ErrParameterEncoding, e.Err)
}

func (e *ParameterEncodingError) Unwrap() []error {
	return []error{ErrParameterEncoding, e.Err}
}
