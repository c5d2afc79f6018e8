package policy

import "errors"

var ErrUnknown = errors.New("unknown policy")
