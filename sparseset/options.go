package sparseset

type options struct {
	capacity int
}

// Option configures a Set at construction time.
type Option func(*options)

// WithCapacity pre-sizes the dense array for n entries.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

func applyOptions(optFns []Option) options {
	var o options

	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
