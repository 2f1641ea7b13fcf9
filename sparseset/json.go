package sparseset

import (
	"encoding/json"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/gendex/genindex"
)

// MarshalJSON encodes the entry as a two-element array [handle, value].
func (e Entry[H, T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Handle, e.Value})
}

// UnmarshalJSON decodes the [handle, value] pair form.
func (e *Entry[H, T]) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return ErrEntryShape
	}

	if err := json.Unmarshal(parts[0], &e.Handle); err != nil {
		return err
	}

	return json.Unmarshal(parts[1], &e.Value)
}

// MarshalJSON encodes the set as its dense entry sequence. The sparse array
// is not persisted; it is rebuilt from the handles on load.
func (s *Set[T, H]) MarshalJSON() ([]byte, error) {
	entries := s.entries
	if entries == nil {
		entries = []Entry[H, T]{}
	}

	return json.Marshal(entries)
}

// UnmarshalJSON decodes a dense entry sequence produced by MarshalJSON,
// replacing the set's contents. Entries sharing a raw index are rejected
// with ErrDuplicateIndex rather than letting the later one shadow the
// earlier. The set is left unchanged on error.
func (s *Set[T, H]) UnmarshalJSON(data []byte) error {
	var entries []Entry[H, T]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	if err := checkDuplicates(entries); err != nil {
		return err
	}

	s.entries = entries
	s.rebuildSparse()

	return nil
}

func checkDuplicates[H genindex.GenIndex[H], T any](entries []Entry[H, T]) error {
	seen := roaring64.New()
	for pos, e := range entries {
		if !seen.CheckedAdd(e.Handle.Index()) {
			return &EntryError{Pos: pos, Err: ErrDuplicateIndex}
		}
	}

	return nil
}
