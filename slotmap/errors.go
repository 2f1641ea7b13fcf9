package slotmap

import (
	"errors"
	"fmt"
)

var (
	// ErrWireShape is returned when decoded input is not the
	// [handles, values] pair form.
	ErrWireShape = errors.New("input is not a [handles, values] pair")

	// ErrLengthMismatch is returned when the handle and value sequences
	// disagree in length.
	ErrLengthMismatch = errors.New("handle and value counts differ")

	// ErrIndexRange is returned when a slot position or stored index does
	// not fit the handle's index type.
	ErrIndexRange = errors.New("index exceeds the handle's index range")

	// ErrGenerationRange is returned when a stored generation does not fit
	// the handle's generation type.
	ErrGenerationRange = errors.New("generation exceeds the handle's generation range")

	// ErrMissingValue is returned when a live slot arrives without a value.
	ErrMissingValue = errors.New("live slot without a value")

	// ErrUnexpectedValue is returned when a dead slot arrives with a value.
	ErrUnexpectedValue = errors.New("dead slot carries a value")
)

// SlotError reports a decode failure together with the slot position it was
// found at.
//
// The underlying error can be accessed via errors.Unwrap.
type SlotError struct {
	Pos int
	Err error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("slot %d: %v", e.Pos, e.Err)
}

func (e *SlotError) Unwrap() error { return e.Err }
