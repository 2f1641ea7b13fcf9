package snapshot

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"golang.org/x/sync/errgroup"
)

// Stream layout, all integers little-endian:
//
//	magic "GDXS", version uint16, compression uint8, reserved uint8,
//	block size uint32, codec name (uint8 length prefix)
//	per section: marker 0x01, name (uint16 length prefix),
//	             payload (uint32 length prefix, compressed block stream)
//	end marker 0x00
//	CRC-32 (IEEE) uint32 of everything between header and checksum
var magic = [4]byte{'G', 'D', 'X', 'S'}

const (
	formatVersion = uint16(1)

	markerSection = byte(1)
	markerEnd     = byte(0)
)

// Save writes the bundle as one snapshot stream. Sections are encoded
// concurrently, one goroutine per section, and written in registration
// order.
func Save(ctx context.Context, w io.Writer, b *Bundle, optFns ...Option) error {
	o := applyOptions(optFns)

	written, err := save(ctx, w, b, o)
	o.logger.LogSave(ctx, b.Len(), written, err)
	return err
}

func save(ctx context.Context, w io.Writer, b *Bundle, o options) (int64, error) {
	// Encode before writing anything, so an encode failure does not leave
	// a half-written stream behind.
	payloads := make([][]byte, len(b.names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range b.names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			bw := newBlockWriter(&buf, o.compression, o.blockSize)
			if err := b.sections[name].Save(bw); err != nil {
				return &SectionError{Name: name, Err: err}
			}
			if err := bw.Flush(); err != nil {
				return &SectionError{Name: name, Err: err}
			}
			payloads[i] = buf.Bytes()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	out := bufio.NewWriter(w)

	codecName := o.headerCodecName()
	if len(codecName) > math.MaxUint8 {
		return 0, fmt.Errorf("codec name %q too long", codecName)
	}
	header := make([]byte, 0, 13+len(codecName))
	header = append(header, magic[:]...)
	header = binary.LittleEndian.AppendUint16(header, formatVersion)
	header = append(header, byte(o.compression), 0)
	header = binary.LittleEndian.AppendUint32(header, uint32(o.blockSize))
	header = append(header, byte(len(codecName)))
	header = append(header, codecName...)
	if _, err := out.Write(header); err != nil {
		return 0, err
	}

	cw := newChecksumWriter(out)
	for i, name := range b.names {
		if int64(len(payloads[i])) > math.MaxUint32 {
			return 0, &SectionError{Name: name, Err: fmt.Errorf("payload exceeds 4 GiB")}
		}
		if err := writeSectionFrame(cw, name, payloads[i]); err != nil {
			return 0, &SectionError{Name: name, Err: err}
		}
	}
	if _, err := cw.Write([]byte{markerEnd}); err != nil {
		return 0, err
	}
	if err := binary.Write(out, binary.LittleEndian, cw.Sum32()); err != nil {
		return 0, err
	}
	if err := out.Flush(); err != nil {
		return 0, err
	}

	return int64(len(header)) + cw.written + 4, nil
}

func writeSectionFrame(w io.Writer, name string, payload []byte) error {
	frame := make([]byte, 0, 7+len(name))
	frame = append(frame, markerSection)
	frame = binary.LittleEndian.AppendUint16(frame, uint16(len(name)))
	frame = append(frame, name...)
	frame = binary.LittleEndian.AppendUint32(frame, uint32(len(payload)))
	if _, err := w.Write(frame); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// Load restores the bundle from a snapshot stream. Sections are dispatched
// by stored name in file order; every stored section must be registered
// and every registered section must be present. A failure part-way through
// leaves the sections dispatched before it in their loaded state.
func Load(ctx context.Context, r io.Reader, b *Bundle, optFns ...Option) error {
	o := applyOptions(optFns)

	read, err := load(ctx, r, b, o)
	o.logger.LogLoad(ctx, b.Len(), read, err)
	return err
}

func load(ctx context.Context, r io.Reader, b *Bundle, o options) (int64, error) {
	br := bufio.NewReader(r)

	hdr, err := readHeader(br)
	if err != nil {
		return 0, err
	}
	if o.codecName != "" && hdr.codecName != o.codecName {
		return 0, fmt.Errorf("%w: snapshot carries %q, want %q", ErrCodecMismatch, hdr.codecName, o.codecName)
	}

	cr := newChecksumReader(br)
	seen := make(map[string]bool, len(b.names))
	for {
		if err := ctx.Err(); err != nil {
			return cr.read, err
		}

		var marker [1]byte
		if _, err := io.ReadFull(cr, marker[:]); err != nil {
			return cr.read, fmt.Errorf("%w: stream ends without end marker", ErrCorrupt)
		}
		if marker[0] == markerEnd {
			break
		}
		if marker[0] != markerSection {
			return cr.read, fmt.Errorf("%w: bad section marker 0x%02x", ErrCorrupt, marker[0])
		}

		name, payload, err := readSectionFrame(cr)
		if err != nil {
			return cr.read, err
		}

		sec, ok := b.sections[name]
		if !ok {
			return cr.read, &SectionError{Name: name, Err: ErrUnknownSection}
		}
		if seen[name] {
			return cr.read, &SectionError{Name: name, Err: fmt.Errorf("%w: duplicate section", ErrCorrupt)}
		}

		logical, err := decompressPayload(payload, hdr.compression)
		if err != nil {
			return cr.read, &SectionError{Name: name, Err: err}
		}
		if err := sec.Load(bytes.NewReader(logical)); err != nil {
			return cr.read, &SectionError{Name: name, Err: err}
		}
		seen[name] = true
	}

	var stored uint32
	if err := binary.Read(br, binary.LittleEndian, &stored); err != nil {
		return cr.read, fmt.Errorf("%w: truncated checksum", ErrCorrupt)
	}
	if sum := cr.Sum32(); sum != stored {
		return cr.read, fmt.Errorf("%w: stored 0x%08x, computed 0x%08x", ErrChecksum, stored, sum)
	}

	for _, name := range b.names {
		if !seen[name] {
			return cr.read, &SectionError{Name: name, Err: ErrMissingSection}
		}
	}
	return cr.read, nil
}

type header struct {
	version     uint16
	compression CompressionType
	blockSize   int
	codecName   string
}

func readHeader(r io.Reader) (header, error) {
	var m [4]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return header{}, fmt.Errorf("%w: %v", ErrBadMagic, err)
	}
	if m != magic {
		return header{}, ErrBadMagic
	}

	fixed := make([]byte, 8)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return header{}, fmt.Errorf("%w: truncated header", ErrCorrupt)
	}

	var h header
	h.version = binary.LittleEndian.Uint16(fixed[0:2])
	if h.version != formatVersion {
		return header{}, fmt.Errorf("%w: %d", ErrVersion, h.version)
	}
	h.compression = CompressionType(fixed[2])
	if !h.compression.valid() {
		return header{}, fmt.Errorf("%w: %d", ErrCompression, fixed[2])
	}
	h.blockSize = int(binary.LittleEndian.Uint32(fixed[4:8]))

	var nameLen [1]byte
	if _, err := io.ReadFull(r, nameLen[:]); err != nil {
		return header{}, fmt.Errorf("%w: truncated header", ErrCorrupt)
	}
	name := make([]byte, nameLen[0])
	if _, err := io.ReadFull(r, name); err != nil {
		return header{}, fmt.Errorf("%w: truncated header", ErrCorrupt)
	}
	h.codecName = string(name)

	return h, nil
}

func readSectionFrame(r io.Reader) (string, []byte, error) {
	var nameLen uint16
	if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
		return "", nil, fmt.Errorf("%w: truncated section frame", ErrCorrupt)
	}
	if nameLen == 0 {
		return "", nil, fmt.Errorf("%w: empty section name", ErrCorrupt)
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return "", nil, fmt.Errorf("%w: truncated section frame", ErrCorrupt)
	}

	var payloadLen uint32
	if err := binary.Read(r, binary.LittleEndian, &payloadLen); err != nil {
		return "", nil, fmt.Errorf("%w: truncated section frame", ErrCorrupt)
	}
	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return "", nil, fmt.Errorf("%w: truncated section frame", ErrCorrupt)
	}

	return string(name), payload, nil
}
