package ir

import "errors"

var (
	ErrNotFound = errors.New("path not found")
	ErrType     = errors.New("type mismatch")
)
