package sparseset

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/gendex/codec"
)

// Save writes the set to w with values encoded by c. A nil codec falls back
// to codec.Default.
//
// Format: [EntryCount: 8 bytes] [Entry...]
// Entry: [Index: 8 bytes] [Generation: 8 bytes] [ValueLen: 4 bytes]
// [ValueBytes].
func (s *Set[T, H]) Save(w io.Writer, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}

	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, uint64(len(s.entries))); err != nil {
		return err
	}

	for _, e := range s.entries {
		if err := binary.Write(bw, binary.LittleEndian, e.Handle.Index()); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, e.Handle.Generation()); err != nil {
			return err
		}

		data, err := c.Marshal(e.Value)
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

// Load replaces the set's contents from r, decoding values with c. A nil
// codec falls back to codec.Default. Stored indices and generations are
// validated against the handle's range, and entries sharing a raw index are
// rejected with ErrDuplicateIndex. The set is left unchanged on error.
func (s *Set[T, H]) Load(r io.Reader, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}

	br := bufio.NewReader(r)

	var count uint64
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return err
	}

	var null H
	entries := make([]Entry[H, T], 0, count)
	seen := roaring64.New()

	for i := uint64(0); i < count; i++ {
		var index, generation uint64
		if err := binary.Read(br, binary.LittleEndian, &index); err != nil {
			return err
		}
		if err := binary.Read(br, binary.LittleEndian, &generation); err != nil {
			return err
		}

		if index > null.MaxIndex() {
			return &EntryError{Pos: int(i), Err: ErrIndexRange}
		}
		if generation > null.MaxGeneration() {
			return &EntryError{Pos: int(i), Err: ErrGenerationRange}
		}
		if !seen.CheckedAdd(index) {
			return &EntryError{Pos: int(i), Err: ErrDuplicateIndex}
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

		entries = append(entries, Entry[H, T]{
			Handle: null.FromRawParts(index, generation),
			Value:  value,
		})
	}

	s.entries = entries
	s.rebuildSparse()

	return nil
}
