package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType selects the block compression algorithm.
type CompressionType uint8

const (
	// CompressionNone stores blocks uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast, moderate ratio).
	CompressionLZ4 CompressionType = 1
	// CompressionZstd uses Zstandard block compression (better ratio).
	CompressionZstd CompressionType = 2
)

func (t CompressionType) valid() bool {
	return t <= CompressionZstd
}

func (t CompressionType) String() string {
	switch t {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Block format: [UncompressedSize uint32][CompressedSize uint32][Data...]
// CompressedSize == 0 means the block is stored uncompressed. Blocks are
// framed even with CompressionNone so a payload can be walked without
// knowing the algorithm.
const blockHeaderSize = 8

// compressBlock frames data as one block, compressing it with the given
// algorithm. Blocks that do not shrink meaningfully are stored raw.
func compressBlock(data []byte, compressionType CompressionType) ([]byte, error) {
	var compressed []byte
	var err error

	switch compressionType {
	case CompressionNone:
	case CompressionLZ4:
		compressed, err = compressBlockLZ4(data)
	case CompressionZstd:
		compressed, err = compressBlockZstd(data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrCompression, uint8(compressionType))
	}
	if err != nil {
		return nil, err
	}

	// If compression doesn't help (ratio > 0.9), store uncompressed.
	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[4:], 0) // 0 = uncompressed
		copy(result[blockHeaderSize:], data)
		return result, nil
	}

	result := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[blockHeaderSize:], compressed)
	return result, nil
}

func compressBlockLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}
	return compressed[:n], nil
}

func compressBlockZstd(data []byte) ([]byte, error) {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil), nil
}

// blockWriter chunks the bytes written through it into compressed blocks.
type blockWriter struct {
	w               io.Writer
	compressionType CompressionType
	blockSize       int
	buffer          *bytes.Buffer
	logical         int64
	written         int64
}

func newBlockWriter(w io.Writer, compressionType CompressionType, blockSize int) *blockWriter {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &blockWriter{
		w:               w,
		compressionType: compressionType,
		blockSize:       blockSize,
		buffer:          bytes.NewBuffer(make([]byte, 0, blockSize)),
	}
}

func (bw *blockWriter) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		space := bw.blockSize - bw.buffer.Len()
		if space <= 0 {
			if err := bw.flushBlock(); err != nil {
				return total, err
			}
			space = bw.blockSize
		}

		toWrite := min(len(p), space)
		n, err := bw.buffer.Write(p[:toWrite])
		if err != nil {
			return total, err
		}
		total += n
		bw.logical += int64(n)
		p = p[n:]
	}
	return total, nil
}

func (bw *blockWriter) flushBlock() error {
	if bw.buffer.Len() == 0 {
		return nil
	}

	block, err := compressBlock(bw.buffer.Bytes(), bw.compressionType)
	if err != nil {
		return err
	}

	n, err := bw.w.Write(block)
	if err != nil {
		return err
	}
	bw.written += int64(n)
	bw.buffer.Reset()
	return nil
}

// Flush writes any remaining buffered data as a final block.
func (bw *blockWriter) Flush() error {
	return bw.flushBlock()
}

// decompressPayload walks the block stream in payload and returns the
// concatenated logical bytes.
func decompressPayload(payload []byte, compressionType CompressionType) ([]byte, error) {
	var result []byte
	offset := 0
	for offset < len(payload) {
		block, n, err := readBlock(payload[offset:], compressionType)
		if err != nil {
			return nil, err
		}
		result = append(result, block...)
		offset += n
	}
	return result, nil
}

// readBlock decodes the first block in data and returns the logical bytes
// plus the stored size consumed.
func readBlock(data []byte, compressionType CompressionType) ([]byte, int, error) {
	if len(data) < blockHeaderSize {
		return nil, 0, fmt.Errorf("%w: truncated block header", ErrCorrupt)
	}

	uncompressedSize := int(binary.LittleEndian.Uint32(data[0:]))
	compressedSize := int(binary.LittleEndian.Uint32(data[4:]))

	if compressedSize == 0 {
		if len(data) < blockHeaderSize+uncompressedSize {
			return nil, 0, fmt.Errorf("%w: block extends beyond payload", ErrCorrupt)
		}
		return data[blockHeaderSize : blockHeaderSize+uncompressedSize], blockHeaderSize + uncompressedSize, nil
	}

	if len(data) < blockHeaderSize+compressedSize {
		return nil, 0, fmt.Errorf("%w: block extends beyond payload", ErrCorrupt)
	}
	compressedData := data[blockHeaderSize : blockHeaderSize+compressedSize]

	switch compressionType {
	case CompressionLZ4:
		result := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(compressedData, result)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if n != uncompressedSize {
			return nil, 0, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return result, blockHeaderSize + compressedSize, nil

	case CompressionZstd:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(compressedData, make([]byte, 0, uncompressedSize))
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if len(decoded) != uncompressedSize {
			return nil, 0, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return decoded, blockHeaderSize + compressedSize, nil

	default:
		// A compressed block under CompressionNone is malformed.
		return nil, 0, fmt.Errorf("%w: compressed block in uncompressed payload", ErrCorrupt)
	}
}

// payloadLogicalSize sums block headers without decompressing anything.
func payloadLogicalSize(payload []byte) (int64, error) {
	var total int64
	offset := 0
	for offset < len(payload) {
		if len(payload)-offset < blockHeaderSize {
			return 0, fmt.Errorf("%w: truncated block header", ErrCorrupt)
		}
		uncompressedSize := int(binary.LittleEndian.Uint32(payload[offset:]))
		compressedSize := int(binary.LittleEndian.Uint32(payload[offset+4:]))
		stored := compressedSize
		if stored == 0 {
			stored = uncompressedSize
		}
		if len(payload)-offset < blockHeaderSize+stored {
			return 0, fmt.Errorf("%w: block extends beyond payload", ErrCorrupt)
		}
		total += int64(uncompressedSize)
		offset += blockHeaderSize + stored
	}
	return total, nil
}
