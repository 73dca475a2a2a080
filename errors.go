package fluentjson

import (
	"errors"
	"fmt"
)

// ErrInvalidText is matched (errors.Is) by every BytesToText failure.
var ErrInvalidText = errors.New("fluentjson: bytes are not valid text")

// DecodeError wraps a failure of the underlying JSON codec while decoding.
// Err is passed through unchanged.
type DecodeError struct {
	Type string // Go type that was requested
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("fluentjson: decode %s: %v", e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError wraps a failure of the underlying JSON codec while encoding.
// Err is passed through unchanged.
type EncodeError struct {
	Type string // Go type of the value being encoded
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("fluentjson: encode %s: %v", e.Type, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
