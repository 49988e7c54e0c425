package bitvec

type options struct {
	logger *Logger
}

// Option configures a BitVector.
type Option func(*options)

// WithLogger configures a logger for structural changes (resize, clear, parse).
//
// Bit-level operations never log. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
