package slotmap

import "encoding/json"

// MarshalJSON encodes the map as a two-element array [handles, values]. The
// handle at position i either names position i (live slot, value present)
// or carries a free-list pointer (dead slot, null value).
func (m *Map[T, H]) MarshalJSON() ([]byte, error) {
	handles := m.indices
	if handles == nil {
		handles = []H{}
	}

	values := make([]*T, len(m.indices))
	for pos, h := range m.indices {
		if h.Index() != uint64(pos) {
			continue
		}
		values[pos] = &m.pages[pos>>m.pageShift][pos&m.pageMask]
	}

	return json.Marshal([2]any{handles, values})
}

// UnmarshalJSON decodes the [handles, values] form produced by MarshalJSON,
// replacing the map's contents. Value presence must agree with slot
// liveness; the free list is rebuilt from the dead slots in ascending
// position order, so stored free-list pointers are not trusted.
func (m *Map[T, H]) UnmarshalJSON(data []byte) error {
	var arrays []json.RawMessage
	if err := json.Unmarshal(data, &arrays); err != nil {
		return err
	}
	if len(arrays) != 2 {
		return ErrWireShape
	}

	var handles []H
	if err := json.Unmarshal(arrays[0], &handles); err != nil {
		return err
	}

	var values []*T
	if err := json.Unmarshal(arrays[1], &values); err != nil {
		return err
	}

	if len(handles) != len(values) {
		return ErrLengthMismatch
	}

	var null H
	if n := len(handles); n > 0 && uint64(n-1) > null.MaxIndex() {
		return &SlotError{Pos: n - 1, Err: ErrIndexRange}
	}

	for pos, h := range handles {
		live := h.Index() == uint64(pos)
		switch {
		case live && values[pos] == nil:
			return &SlotError{Pos: pos, Err: ErrMissingValue}
		case !live && values[pos] != nil:
			return &SlotError{Pos: pos, Err: ErrUnexpectedValue}
		}
	}

	m.lazyInit()
	m.indices = handles
	m.pages = makePages[T](len(handles), m.pageSize)

	for pos, value := range values {
		if value == nil {
			continue
		}
		m.pages[pos>>m.pageShift][pos&m.pageMask] = *value
	}

	m.rebuildFreeList()

	return nil
}

func makePages[T any](slots, pageSize int) [][]T {
	pages := make([][]T, (slots+pageSize-1)/pageSize)
	for i := range pages {
		pages[i] = make([]T, pageSize)
	}

	return pages
}
