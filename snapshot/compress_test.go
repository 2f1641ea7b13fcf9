package snapshot

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// incompressible returns n bytes with enough entropy that LZ4 and zstd
// cannot shrink them below the stored-raw threshold.
func incompressible(n int) []byte {
	data := make([]byte, n)
	state := uint64(0x9e3779b97f4a7c15)
	for i := range data {
		state = state*6364136223846793005 + 1442695040888963407
		data[i] = byte(state >> 56)
	}
	return data
}

func TestCompressBlockRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("generational index "), 64)

	for _, ct := range []CompressionType{CompressionNone, CompressionLZ4, CompressionZstd} {
		t.Run(ct.String(), func(t *testing.T) {
			block, err := compressBlock(data, ct)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(block), blockHeaderSize)

			decoded, n, err := readBlock(block, ct)
			require.NoError(t, err)

			assert.Equal(t, len(block), n)
			assert.Equal(t, data, decoded)
		})
	}
}

func TestCompressBlockShrinks(t *testing.T) {
	data := bytes.Repeat([]byte{7}, 4096)

	for _, ct := range []CompressionType{CompressionLZ4, CompressionZstd} {
		t.Run(ct.String(), func(t *testing.T) {
			block, err := compressBlock(data, ct)
			require.NoError(t, err)

			compressedSize := binary.LittleEndian.Uint32(block[4:])
			assert.NotZero(t, compressedSize, "repetitive data should not be stored raw")
			assert.Less(t, len(block), len(data))
		})
	}
}

func TestCompressBlockIncompressibleStoredRaw(t *testing.T) {
	data := incompressible(2048)

	for _, ct := range []CompressionType{CompressionLZ4, CompressionZstd} {
		t.Run(ct.String(), func(t *testing.T) {
			block, err := compressBlock(data, ct)
			require.NoError(t, err)

			assert.Zero(t, binary.LittleEndian.Uint32(block[4:]), "expected stored-raw marker")
			assert.Equal(t, uint32(len(data)), binary.LittleEndian.Uint32(block[0:]))

			decoded, _, err := readBlock(block, ct)
			require.NoError(t, err)
			assert.Equal(t, data, decoded)
		})
	}
}

func TestCompressBlockUnknownType(t *testing.T) {
	_, err := compressBlock([]byte("x"), CompressionType(9))
	assert.ErrorIs(t, err, ErrCompression)
}

func TestBlockWriterChunks(t *testing.T) {
	var buf bytes.Buffer
	bw := newBlockWriter(&buf, CompressionNone, 8)

	var want []byte
	for _, chunk := range [][]byte{
		[]byte("abc"),
		[]byte("defghijklm"),
		[]byte("nopqrst"),
	} {
		n, err := bw.Write(chunk)
		require.NoError(t, err)
		require.Equal(t, len(chunk), n)
		want = append(want, chunk...)
	}
	require.NoError(t, bw.Flush())

	assert.Equal(t, int64(len(want)), bw.logical)

	// 20 logical bytes at block size 8 means three blocks.
	blocks := 0
	payload := buf.Bytes()
	for offset := 0; offset < len(payload); {
		_, n, err := readBlock(payload[offset:], CompressionNone)
		require.NoError(t, err)
		offset += n
		blocks++
	}
	assert.Equal(t, 3, blocks)

	got, err := decompressPayload(payload, CompressionNone)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBlockWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	bw := newBlockWriter(&buf, CompressionZstd, 16)

	require.NoError(t, bw.Flush())
	assert.Zero(t, buf.Len())

	got, err := decompressPayload(buf.Bytes(), CompressionZstd)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecompressPayloadRoundTrip(t *testing.T) {
	logical := append(bytes.Repeat([]byte("pages and slots "), 512), incompressible(300)...)

	for _, ct := range []CompressionType{CompressionNone, CompressionLZ4, CompressionZstd} {
		t.Run(ct.String(), func(t *testing.T) {
			var buf bytes.Buffer
			bw := newBlockWriter(&buf, ct, 1024)
			_, err := bw.Write(logical)
			require.NoError(t, err)
			require.NoError(t, bw.Flush())

			got, err := decompressPayload(buf.Bytes(), ct)
			require.NoError(t, err)
			assert.Equal(t, logical, got)

			size, err := payloadLogicalSize(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, int64(len(logical)), size)
		})
	}
}

func TestReadBlockTruncated(t *testing.T) {
	_, _, err := readBlock([]byte{1, 2, 3}, CompressionNone)
	assert.ErrorIs(t, err, ErrCorrupt)

	// Header promising more data than the payload holds.
	block := make([]byte, blockHeaderSize+2)
	binary.LittleEndian.PutUint32(block[0:], 64)
	binary.LittleEndian.PutUint32(block[4:], 0)
	_, _, err = readBlock(block, CompressionNone)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestReadBlockCompressedUnderNone(t *testing.T) {
	block := make([]byte, blockHeaderSize+4)
	binary.LittleEndian.PutUint32(block[0:], 16)
	binary.LittleEndian.PutUint32(block[4:], 4)

	_, _, err := readBlock(block, CompressionNone)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestCompressionTypeString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "unknown(9)", CompressionType(9).String())
}
