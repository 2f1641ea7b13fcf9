package genindex

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairRawParts(t *testing.T) {
	h := NewPair[uint32, uint32](123, 456)

	assert.Equal(t, uint64(123), h.Index())
	assert.Equal(t, uint64(456), h.Generation())
	assert.Equal(t, h, Pair[uint32, uint32]{}.FromRawParts(123, 456))
	assert.Equal(t, "(123, 456)", h.String())
}

func TestPairNull(t *testing.T) {
	null := Null[Pair[uint32, uint16]]()

	assert.True(t, IsNull(null))
	assert.Equal(t, uint64(0), null.Index())
	assert.Equal(t, uint64(0), null.Generation())

	// The zero index is only null together with generation zero.
	assert.False(t, IsNull(FromIndex[Pair[uint32, uint16]](0)))
}

func TestPairFromIndex(t *testing.T) {
	h := FromIndex[Pair[uint32, uint32]](7)

	assert.Equal(t, uint64(7), h.Index())
	assert.Equal(t, uint64(1), h.Generation())
}

func TestPairNextGeneration(t *testing.T) {
	h := NewPair[uint32, uint8](9, 254)

	h = h.NextGeneration()
	assert.Equal(t, uint64(9), h.Index())
	assert.Equal(t, uint64(255), h.Generation())

	// Past the widest generation the counter wraps to zero.
	h = h.NextGeneration()
	assert.Equal(t, uint64(9), h.Index())
	assert.Equal(t, uint64(0), h.Generation())
}

func TestPairGenerationWraps(t *testing.T) {
	h := Pair[uint32, uint8]{}.FromRawParts(3, 256+7)

	assert.Equal(t, uint64(3), h.Index())
	assert.Equal(t, uint64(7), h.Generation())
}

func TestPairIndexOverflowPanics(t *testing.T) {
	require.Panics(t, func() {
		Pair[uint8, uint8]{}.FromRawParts(256, 0)
	})
}

func TestPairLimits(t *testing.T) {
	var h Pair[uint8, uint16]

	assert.Equal(t, uint64(255), h.MaxIndex())
	assert.Equal(t, uint64(65535), h.MaxGeneration())
}

func TestPairCompare(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Pair[uint32, uint32]
		wantCmp int
		wantOK  bool
	}{
		{
			name:    "equal handles",
			a:       NewPair[uint32, uint32](1, 1),
			b:       NewPair[uint32, uint32](1, 1),
			wantCmp: 0,
			wantOK:  true,
		},
		{
			name:    "lower index orders first",
			a:       NewPair[uint32, uint32](1, 1),
			b:       NewPair[uint32, uint32](2, 1),
			wantCmp: -1,
			wantOK:  true,
		},
		{
			name:    "index ordering ignores generations",
			a:       NewPair[uint32, uint32](1, 3),
			b:       NewPair[uint32, uint32](2, 1),
			wantCmp: -1,
			wantOK:  true,
		},
		{
			name:    "higher index orders last",
			a:       NewPair[uint32, uint32](2, 1),
			b:       NewPair[uint32, uint32](1, 3),
			wantCmp: 1,
			wantOK:  true,
		},
		{
			name:    "same index different generation is unordered",
			a:       NewPair[uint32, uint32](1, 1),
			b:       NewPair[uint32, uint32](1, 2),
			wantCmp: 0,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, ok := Compare(tt.a, tt.b)
			assert.Equal(t, tt.wantCmp, cmp)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestPairJSON(t *testing.T) {
	h := NewPair[uint32, uint32](123, 456)

	data, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `[123,456]`, string(data))

	var got Pair[uint32, uint32]
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, h, got)
}

func TestPairJSONInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not an array", data: `"handle"`},
		{name: "too short", data: `[1]`},
		{name: "too long", data: `[1,2,3]`},
		{name: "negative index", data: `[-1,2]`},
		{name: "index overflows width", data: `[256,1]`},
		{name: "generation overflows width", data: `[1,256]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h Pair[uint8, uint8]
			assert.Error(t, json.Unmarshal([]byte(tt.data), &h))
		})
	}
}
