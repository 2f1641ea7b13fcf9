package sparseset

import (
	"errors"
	"fmt"
)

var (
	// ErrEntryShape is returned when a decoded entry is not the
	// [handle, value] pair form.
	ErrEntryShape = errors.New("entry is not a [handle, value] pair")

	// ErrDuplicateIndex is returned when two decoded entries share a raw
	// index. Letting the later entry win would leave the earlier one in the
	// dense array but unreachable through the sparse array.
	ErrDuplicateIndex = errors.New("duplicate raw index")

	// ErrIndexRange is returned when a stored index does not fit the
	// handle's index type.
	ErrIndexRange = errors.New("index exceeds the handle's index range")

	// ErrGenerationRange is returned when a stored generation does not fit
	// the handle's generation type.
	ErrGenerationRange = errors.New("generation exceeds the handle's generation range")
)

// EntryError reports a decode failure together with the dense position it
// was found at.
//
// The underlying error can be accessed via errors.Unwrap.
type EntryError struct {
	Pos int
	Err error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Pos, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }
