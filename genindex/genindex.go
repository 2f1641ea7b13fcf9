package genindex

// Unsigned constrains the field widths available to the Pair encoding.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// GenIndex is the contract shared by all handle encodings. H is the
// implementing type itself.
//
// Index and generation are exchanged as uint64 no matter how many bits an
// encoding stores internally; MaxIndex and MaxGeneration report the
// representable range.
type GenIndex[H comparable] interface {
	comparable

	// FromRawParts builds a handle from an index and a generation. The
	// generation is reduced modulo MaxGeneration()+1. FromRawParts panics
	// when the index does not fit the encoding: running out of index space
	// is the one fatal condition in this library, and callers that grow
	// containers are expected to pre-size against MaxIndex themselves.
	FromRawParts(index, generation uint64) H

	// Index returns the raw slot index.
	Index() uint64

	// Generation returns the generation counter.
	Generation() uint64

	// MaxIndex returns the largest index the encoding can represent.
	MaxIndex() uint64

	// MaxGeneration returns the largest generation the encoding can
	// represent.
	MaxGeneration() uint64

	// NextGeneration returns a handle at the same index with the generation
	// advanced by one. Wrap behavior past MaxGeneration is encoding
	// specific: Pair and U64 wrap to zero, F64 wraps to one and keeps zero
	// reserved.
	NextGeneration() H
}

// Null returns the encoding's null handle, its all-zero value.
func Null[H GenIndex[H]]() H {
	var null H
	return null
}

// IsNull reports whether h is the null handle.
func IsNull[H GenIndex[H]](h H) bool {
	var null H
	return h == null
}

// FromIndex builds a fresh handle at generation one. Generation zero is
// reserved for handles that were never issued, so a handle minted for a new
// slot can always be told apart from the null handle.
func FromIndex[H GenIndex[H]](index uint64) H {
	var null H
	return null.FromRawParts(index, 1)
}

// Compare orders two handles by index and reports whether they are
// comparable at all. Handles sharing an index but carrying different
// generations are unrelated identities that happen to occupy the same slot;
// ranking them against each other would be meaningless, so Compare reports
// ok == false for that case.
func Compare[H GenIndex[H]](a, b H) (cmp int, ok bool) {
	if a == b {
		return 0, true
	}
	switch ai, bi := a.Index(), b.Index(); {
	case ai < bi:
		return -1, true
	case ai > bi:
		return 1, true
	default:
		return 0, false
	}
}

// GenIndex embeds comparable, so it is only usable as a constraint; the
// encodings assert satisfaction by instantiating it.
func assertGenIndex[H GenIndex[H]]() {}

var (
	_ = assertGenIndex[Pair[uint32, uint32]]
	_ = assertGenIndex[U64]
	_ = assertGenIndex[F64]
	_ = assertGenIndex[Typed[struct{}, U64]]
)
