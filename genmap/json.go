package genmap

import "encoding/json"

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

// MarshalJSON encodes the map as a JSON object mapping the decimal raw
// index to its [handle, value] entry.
func (m *Map[T, H]) MarshalJSON() ([]byte, error) {
	m.lazyInit()

	obj := make(map[uint64]*Entry[H, T], m.backing.Len())
	for e := range m.backing.All() {
		obj[e.Handle.Index()] = e
	}

	return json.Marshal(obj)
}

// UnmarshalJSON decodes the object form produced by MarshalJSON, replacing
// the map's contents. A key that disagrees with its entry's raw index is
// rejected with ErrKeyMismatch. The map is left unchanged on error.
func (m *Map[T, H]) UnmarshalJSON(data []byte) error {
	var obj map[uint64]*Entry[H, T]
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	for key, e := range obj {
		if e == nil {
			return &KeyError{Key: key, Err: ErrEntryShape}
		}
		if e.Handle.Index() != key {
			return &KeyError{Key: key, Err: ErrKeyMismatch}
		}
	}

	m.lazyInit()
	m.backing.Clear()
	for key, e := range obj {
		m.backing.Set(key, e)
	}

	return nil
}
