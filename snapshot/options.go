package snapshot

import (
	"github.com/hupe1980/gendex"
	"github.com/hupe1980/gendex/codec"
)

// DefaultBlockSize is the payload block size used when WithBlockSize is
// not given.
const DefaultBlockSize = 256 * 1024

type options struct {
	compression CompressionType
	blockSize   int
	codecName   string
	logger      *gendex.Logger
}

// Option configures Save and Load.
type Option func(*options)

// WithCompression selects the block compression algorithm. Save records it
// in the header; Load ignores the option and follows the header.
func WithCompression(t CompressionType) Option {
	return func(o *options) {
		o.compression = t
	}
}

// WithBlockSize sets how many payload bytes go into one compression block.
// Smaller blocks compress worse but bound the decode working set.
func WithBlockSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.blockSize = n
		}
	}
}

// WithCodecName sets the value codec name recorded in the header on save.
// On load it is a requirement: a header carrying a different name fails
// with ErrCodecMismatch.
func WithCodecName(name string) Option {
	return func(o *options) {
		o.codecName = name
	}
}

// WithLogger sets the logger save and load report to.
func WithLogger(l *gendex.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		compression: CompressionNone,
		blockSize:   DefaultBlockSize,
		logger:      gendex.NoopLogger(),
	}

	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func (o options) headerCodecName() string {
	if o.codecName != "" {
		return o.codecName
	}
	return codec.Default.Name()
}
