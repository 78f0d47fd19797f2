package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every *ErrIndexOutOfRange.
	ErrOutOfRange = errors.New("index out of range")

	// ErrLengthMismatch is matched by every *ErrDimensionMismatch.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrInvalidEncoding is returned when binary or JSON input cannot be decoded.
	ErrInvalidEncoding = errors.New("invalid vector encoding")
)

// ErrIndexOutOfRange indicates an access outside [0, Length).
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range [%d] with length %d", e.Index, e.Length)
}

// Is reports whether target is ErrOutOfRange.
func (e *ErrIndexOutOfRange) Is(target error) bool { return target == ErrOutOfRange }

// ErrDimensionMismatch indicates that two operands have different lengths.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Is reports whether target is ErrLengthMismatch.
func (e *ErrDimensionMismatch) Is(target error) bool { return target == ErrLengthMismatch }

func checkIndex(i, length int) error {
	if i < 0 || i >= length {
		return &ErrIndexOutOfRange{Index: i, Length: length}
	}
	return nil
}
