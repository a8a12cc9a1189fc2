package core

import "errors"

// ErrOutOfRange is wrapped by every core constructor that rejects a value
// which does not fit the requested width. Callers can match on it with
// errors.Is to classify failures without duplicating the check.
var ErrOutOfRange = errors.New("out of range")
