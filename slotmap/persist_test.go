package slotmap

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gendex/codec"
	"github.com/hupe1980/gendex/genindex"
)

type record struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func TestMapSaveLoad(t *testing.T) {
	m := New[record, genindex.U64]()

	ha := m.Push(record{Name: "a", Score: 1})
	m.Push(record{Name: "b", Score: 2})
	hc := m.Push(record{Name: "c", Score: 3})
	_, ok := m.Remove(ha)
	require.True(t, ok)
	m.Push(record{Name: "d", Score: 4})

	for _, c := range []codec.Codec{nil, codec.JSON{}, codec.Gob{}} {
		name := "default"
		if c != nil {
			name = c.Name()
		}

		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, m.Save(&buf, c))

			// Loading into a map with a different page size keeps content.
			got := New[record, genindex.U64](WithPageSize(2))
			require.NoError(t, got.Load(&buf, c))

			assert.True(t, Equal(m, got))

			v, ok := got.Get(hc)
			assert.True(t, ok)
			assert.Equal(t, record{Name: "c", Score: 3}, v)
		})
	}
}

func TestMapLoadRebuildsFreeList(t *testing.T) {
	m := New[int, genindex.U64]()

	handles := make([]genindex.U64, 4)
	for i := range handles {
		handles[i] = m.Push(i)
	}
	for _, i := range []int{2, 0} {
		_, ok := m.Remove(handles[i])
		require.True(t, ok)
	}

	var buf bytes.Buffer
	require.NoError(t, m.Save(&buf, nil))

	var got Map[int, genindex.U64]
	require.NoError(t, got.Load(&buf, nil))
	require.Equal(t, 2, got.Len())

	// Dead slot positions come back in ascending order regardless of the
	// order they were freed in.
	assert.Equal(t, uint64(0), got.Push(10).Index())
	assert.Equal(t, uint64(2), got.Push(20).Index())
	assert.Equal(t, uint64(4), got.Push(30).Index())
}

func TestMapLoadValidatesRanges(t *testing.T) {
	write := func(index, generation uint64) *bytes.Buffer {
		var buf bytes.Buffer
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(1)))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, index))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, generation))
		return &buf
	}

	var m Map[string, genindex.U64]

	err := m.Load(write(uint64(math.MaxUint32)+1, 1), nil)
	assert.ErrorIs(t, err, ErrIndexRange)

	err = m.Load(write(1, uint64(math.MaxUint32)+1), nil)
	assert.ErrorIs(t, err, ErrGenerationRange)

	assert.Equal(t, 0, m.Len(), "failed loads must not leave partial state")
}

func TestMapLoadTruncated(t *testing.T) {
	m := New[string, genindex.U64]()
	m.Push("a")

	var buf bytes.Buffer
	require.NoError(t, m.Save(&buf, nil))

	data := buf.Bytes()
	var got Map[string, genindex.U64]
	assert.Error(t, got.Load(bytes.NewReader(data[:len(data)-3]), nil))
}
