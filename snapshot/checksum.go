package snapshot

import (
	"hash"
	"hash/crc32"
	"io"
)

// CRC-32 with the IEEE polynomial: fast, hardware-accelerated, and good at
// catching storage corruption. Not cryptographically secure; the checksum
// detects accidents, not tampering.

var crcTable = crc32.MakeTable(crc32.IEEE)

// checksumWriter wraps an io.Writer and keeps a running CRC-32 of the
// bytes written through it.
type checksumWriter struct {
	w       io.Writer
	hash    hash.Hash32
	written int64
}

func newChecksumWriter(w io.Writer) *checksumWriter {
	return &checksumWriter{
		w:    w,
		hash: crc32.New(crcTable),
	}
}

func (cw *checksumWriter) Write(p []byte) (int, error) {
	if _, err := cw.hash.Write(p); err != nil {
		return 0, err
	}
	n, err := cw.w.Write(p)
	cw.written += int64(n)
	return n, err
}

func (cw *checksumWriter) Sum32() uint32 {
	return cw.hash.Sum32()
}

// checksumReader wraps an io.Reader and keeps a running CRC-32 of the
// bytes read through it.
type checksumReader struct {
	r    io.Reader
	hash hash.Hash32
	read int64
}

func newChecksumReader(r io.Reader) *checksumReader {
	return &checksumReader{
		r:    r,
		hash: crc32.New(crcTable),
	}
}

func (cr *checksumReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		if _, hashErr := cr.hash.Write(p[:n]); hashErr != nil {
			return n, hashErr
		}
		cr.read += int64(n)
	}
	return n, err
}

func (cr *checksumReader) Sum32() uint32 {
	return cr.hash.Sum32()
}
