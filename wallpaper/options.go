package wallpaper

import "log/slog"

const panicNilLogger = "wallpaper: WithLogger: logger must not be nil"

// Option configures an Editor at construction.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger that reports terms dropped because their
// frequencies fall outside the grid. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) {
		o.logger = l
	}
}

func gatherOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
