package topogo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/topogo/boundary"
	"github.com/hupe1980/topogo/pairs"
)

var (
	// ErrInvalidState is returned when an operation is attempted on a
	// matrix whose lifecycle state does not permit it, e.g. reducing a
	// matrix that was already consumed by a reduction run.
	ErrInvalidState = errors.New("invalid state")

	// ErrMalformedFile is returned when a matrix or pair file cannot be
	// decoded.
	ErrMalformedFile = errors.New("malformed file")
)

// ErrSizeMismatch indicates a bulk load whose column and dimension counts
// disagree.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrSizeMismatch struct {
	Cols  int
	Dims  int
	cause error
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: %d columns, %d dimensions", e.Cols, e.Dims)
}

func (e *ErrSizeMismatch) Unwrap() error { return e.cause }

// ErrOutOfRange indicates a pair index outside the container, after
// negative wraparound resolution.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrOutOfRange struct {
	Index int
	Len   int
	cause error
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for %d pairs", e.Index, e.Len)
}

func (e *ErrOutOfRange) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Lifecycle unification.
	if errors.Is(err, boundary.ErrAlreadyReduced) {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	// File format unification.
	if errors.Is(err, boundary.ErrMalformedFile) || errors.Is(err, pairs.ErrMalformedFile) {
		return fmt.Errorf("%w: %w", ErrMalformedFile, err)
	}

	// Argument normalization.
	var sm *boundary.SizeMismatchError
	if errors.As(err, &sm) {
		return &ErrSizeMismatch{Cols: sm.Cols, Dims: sm.Dims, cause: err}
	}
	var oor *pairs.OutOfRangeError
	if errors.As(err, &oor) {
		return &ErrOutOfRange{Index: oor.Index, Len: oor.Len, cause: err}
	}

	return err
}
