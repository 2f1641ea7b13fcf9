package snapshot

import (
	"io"

	"github.com/hupe1980/gendex/codec"
)

// Section is one named unit of snapshot payload. Save writes the section's
// logical bytes; Load restores state from exactly those bytes.
type Section interface {
	Save(w io.Writer) error
	Load(r io.Reader) error
}

// SaverLoader is the codec-parameterized persistence surface the
// containers expose.
type SaverLoader interface {
	Save(w io.Writer, c codec.Codec) error
	Load(r io.Reader, c codec.Codec) error
}

// Bind adapts a container to a Section by fixing its value codec. A nil
// codec selects codec.Default.
func Bind(c codec.Codec, target SaverLoader) Section {
	if c == nil {
		c = codec.Default
	}
	return &boundSection{codec: c, target: target}
}

type boundSection struct {
	codec  codec.Codec
	target SaverLoader
}

func (s *boundSection) Save(w io.Writer) error {
	return s.target.Save(w, s.codec)
}

func (s *boundSection) Load(r io.Reader) error {
	return s.target.Load(r, s.codec)
}

// Value adapts a single codec-encodable value to a Section, for the odd
// config or manifest struct stored next to the containers. v must be a
// pointer so Load can unmarshal into it.
func Value(c codec.Codec, v any) Section {
	if c == nil {
		c = codec.Default
	}
	return &valueSection{codec: c, v: v}
}

type valueSection struct {
	codec codec.Codec
	v     any
}

func (s *valueSection) Save(w io.Writer) error {
	data, err := s.codec.Marshal(s.v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (s *valueSection) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return s.codec.Unmarshal(data, s.v)
}
