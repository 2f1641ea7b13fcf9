package snapshot

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Info describes a snapshot stream without loading it.
type Info struct {
	Version     int
	Codec       string
	Compression CompressionType
	BlockSize   int
	Sections    []SectionInfo
	Checksum    uint32
	ChecksumOK  bool
}

// SectionInfo describes one stored section.
type SectionInfo struct {
	Name        string
	Bytes       int64 // logical size after decompression
	StoredBytes int64 // payload size in the stream
}

// TotalBytes returns the logical size of all sections combined.
func (i *Info) TotalBytes() int64 {
	var total int64
	for _, s := range i.Sections {
		total += s.Bytes
	}
	return total
}

// Inspect reads a snapshot stream and reports its header, sections and
// checksum without decompressing or decoding any payload. A checksum
// mismatch is reported through ChecksumOK, not as an error, so damaged
// files can still be described.
func Inspect(r io.Reader) (*Info, error) {
	br := bufio.NewReader(r)

	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	info := &Info{
		Version:     int(hdr.version),
		Codec:       hdr.codecName,
		Compression: hdr.compression,
		BlockSize:   hdr.blockSize,
	}

	cr := newChecksumReader(br)
	for {
		var marker [1]byte
		if _, err := io.ReadFull(cr, marker[:]); err != nil {
			return nil, fmt.Errorf("%w: stream ends without end marker", ErrCorrupt)
		}
		if marker[0] == markerEnd {
			break
		}
		if marker[0] != markerSection {
			return nil, fmt.Errorf("%w: bad section marker 0x%02x", ErrCorrupt, marker[0])
		}

		name, payload, err := readSectionFrame(cr)
		if err != nil {
			return nil, err
		}
		logical, err := payloadLogicalSize(payload)
		if err != nil {
			return nil, &SectionError{Name: name, Err: err}
		}
		info.Sections = append(info.Sections, SectionInfo{
			Name:        name,
			Bytes:       logical,
			StoredBytes: int64(len(payload)),
		})
	}

	if err := binary.Read(br, binary.LittleEndian, &info.Checksum); err != nil {
		return nil, fmt.Errorf("%w: truncated checksum", ErrCorrupt)
	}
	info.ChecksumOK = cr.Sum32() == info.Checksum

	return info, nil
}
