package snapshot

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic is returned when a stream does not start with the
	// snapshot magic bytes.
	ErrBadMagic = errors.New("not a snapshot stream")

	// ErrVersion is returned for snapshot format versions this build does
	// not understand.
	ErrVersion = errors.New("unsupported snapshot version")

	// ErrChecksum is returned when the stored checksum does not match the
	// stream contents.
	ErrChecksum = errors.New("checksum mismatch")

	// ErrCodecMismatch is returned when the codec name stored in the
	// header differs from the one the caller required.
	ErrCodecMismatch = errors.New("codec mismatch")

	// ErrCorrupt is returned for structurally broken snapshot streams.
	ErrCorrupt = errors.New("corrupt snapshot")

	// ErrUnknownSection is returned when a stream carries a section the
	// bundle has not registered.
	ErrUnknownSection = errors.New("section not registered")

	// ErrMissingSection is returned when a registered section is absent
	// from the stream.
	ErrMissingSection = errors.New("section missing from snapshot")

	// ErrCompression is returned for compression types this build does
	// not understand.
	ErrCompression = errors.New("unsupported compression type")
)

// SectionError reports which section a save or load failure belongs to.
//
// The underlying error can be accessed via errors.Unwrap.
type SectionError struct {
	Name string
	Err  error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %q: %v", e.Name, e.Err)
}

func (e *SectionError) Unwrap() error { return e.Err }
