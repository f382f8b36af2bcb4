package schnorr

import (
	"errors"
	"fmt"
)

// Common errors returned by the schnorr25519 primitives
var (
	// ErrPointDecompression is returned when bytes or an Edwards point do
	// not describe a valid element of the prime-order group.
	ErrPointDecompression = errors.New("cannot decompress point")

	// ErrScalarFormat is returned when scalar bytes are not canonical.
	ErrScalarFormat = errors.New("scalar is not canonically encoded")

	// ErrBytesLength is returned when an encoding has the wrong length.
	ErrBytesLength = errors.New("wrong number of bytes")

	// ErrEquation is returned when a proof or signature does not verify.
	ErrEquation = errors.New("verification equation was not satisfied")
)

// SignatureError records the operation that failed together with the
// underlying cause. Match the cause with errors.Is.
type SignatureError struct {
	Op  string
	Err error
}

func (e *SignatureError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *SignatureError) Unwrap() error {
	return e.Err
}

// NewError creates a new SignatureError.
func NewError(op string, err error) *SignatureError {
	return &SignatureError{
		Op:  op,
		Err: err,
	}
}

// BytesLengthError wraps ErrBytesLength with the name of the value and the
// length it must have.
func BytesLengthError(op, name string, want, got int) *SignatureError {
	return NewError(op, fmt.Errorf("%w: %s must be %d bytes, got %d", ErrBytesLength, name, want, got))
}
