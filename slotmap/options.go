package slotmap

import "fmt"

// DefaultPageSize is the page capacity used when WithPageSize is not given.
const DefaultPageSize = 64

type options struct {
	pageSize int
}

// Option configures a Map at construction time.
type Option func(*options)

// WithPageSize sets the number of value slots per page. The size must be a
// power of two so slot positions split into page and offset by shifting.
func WithPageSize(n int) Option {
	return func(o *options) {
		o.pageSize = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		pageSize: DefaultPageSize,
	}

	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.pageSize < 1 || o.pageSize&(o.pageSize-1) != 0 {
		panic(fmt.Sprintf("slotmap: page size %d is not a power of two", o.pageSize))
	}

	return o
}
