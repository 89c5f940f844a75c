package rosette

import "log/slog"

const panicNilLogger = "rosette: WithLogger: logger must not be nil"

// Option configures a Symmetry at construction.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{logger: slog.Default()}
}

// WithLogger sets the logger used for the zero-fallback warning of
// UpdateCoefficients. Panics on nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) {
		o.logger = l
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
