package genmap

import (
	"errors"
	"fmt"
)

var (
	// ErrEntryShape is returned when a decoded entry is not the
	// two-element [handle, value] form.
	ErrEntryShape = errors.New("entry is not a [handle, value] pair")

	// ErrKeyMismatch is returned when a decoded object key does not equal
	// the raw index of the handle stored under it.
	ErrKeyMismatch = errors.New("object key does not match the entry's raw index")

	// ErrDuplicateIndex is returned when two decoded entries share a raw
	// index.
	ErrDuplicateIndex = errors.New("duplicate raw index")

	// ErrIndexRange is returned when a stored index does not fit the
	// handle encoding.
	ErrIndexRange = errors.New("index exceeds the handle's index range")

	// ErrGenerationRange is returned when a stored generation does not fit
	// the handle encoding.
	ErrGenerationRange = errors.New("generation exceeds the handle's generation range")
)

// KeyError wraps a decode error with the object key it occurred under.
type KeyError struct {
	Key uint64
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key %d: %v", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }

// EntryError wraps a decode error with the position of the offending entry
// in the input stream.
type EntryError struct {
	Pos int
	Err error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Pos, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }
