package slotmap

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/hupe1980/gendex/codec"
)

// Save writes the map to w with values encoded by c. A nil codec falls back
// to codec.Default.
//
// Format: [SlotCount: 8 bytes] [Slot...]
// Slot: [Index: 8 bytes] [Generation: 8 bytes] and, for live slots only,
// [ValueLen: 4 bytes] [ValueBytes].
func (m *Map[T, H]) Save(w io.Writer, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}

	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, uint64(len(m.indices))); err != nil {
		return err
	}

	for pos, h := range m.indices {
		if err := binary.Write(bw, binary.LittleEndian, h.Index()); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, h.Generation()); err != nil {
			return err
		}

		if h.Index() != uint64(pos) {
			continue
		}

		data, err := c.Marshal(m.pages[pos>>m.pageShift][pos&m.pageMask])
		if err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, uint32(len(data))); err != nil {
			return err
		}
		if _, err := bw.Write(data); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Load replaces the map's contents from r, decoding values with c. A nil
// codec falls back to codec.Default. Stored indices and generations are
// validated against the handle's range before any handle is rebuilt, and
// the free list is rebuilt from dead slot positions as in UnmarshalJSON.
// The map is left unchanged on error.
func (m *Map[T, H]) Load(r io.Reader, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}

	m.lazyInit()

	br := bufio.NewReader(r)

	var count uint64
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return err
	}

	var null H
	if count > 0 && count-1 > null.MaxIndex() {
		return &SlotError{Pos: int(count - 1), Err: ErrIndexRange}
	}

	indices := make([]H, 0, count)
	pages := makePages[T](int(count), m.pageSize)

	for i := uint64(0); i < count; i++ {
		var index, generation uint64
		if err := binary.Read(br, binary.LittleEndian, &index); err != nil {
			return err
		}
		if err := binary.Read(br, binary.LittleEndian, &generation); err != nil {
			return err
		}

		if index > null.MaxIndex() {
			return &SlotError{Pos: int(i), Err: ErrIndexRange}
		}
		if generation > null.MaxGeneration() {
			return &SlotError{Pos: int(i), Err: ErrGenerationRange}
		}

		indices = append(indices, null.FromRawParts(index, generation))

		if index != i {
			continue
		}

		var vlen uint32
		if err := binary.Read(br, binary.LittleEndian, &vlen); err != nil {
			return err
		}
		data := make([]byte, vlen)
		if _, err := io.ReadFull(br, data); err != nil {
			return err
		}

		var value T
		if err := c.Unmarshal(data, &value); err != nil {
			return err
		}
		pages[int(i)>>m.pageShift][int(i)&m.pageMask] = value
	}

	m.indices = indices
	m.pages = pages
	m.rebuildFreeList()

	return nil
}
