package bitvec

import (
	"log/slog"
)

type options struct {
	medium     Medium
	blockWidth int
	logger     *Logger
}

func defaultOptions() options {
	return options{
		medium:     MediumWords,
		blockWidth: 64,
		logger:     NoopLogger(),
	}
}

// Option configures vector and set construction.
type Option func(*options)

// WithMedium selects the storage medium. The default is MediumWords.
//
// Example:
//
//	v, _ := bitvec.New(1<<20, bitvec.WithMedium(bitvec.MediumMapped))
//	defer v.Close()
func WithMedium(m Medium) Option {
	return func(o *options) {
		o.medium = m
	}
}

// WithBlockWidth sets the block width in bits for MediumBuffer and
// MediumMapped. Supported widths are 8, 16, 32 and 64 (the default).
// The other media have a fixed width and ignore this option.
func WithBlockWidth(width int) Option {
	return func(o *options) {
		o.blockWidth = width
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example:
//
//	logger := bitvec.NewJSONLogger(slog.LevelDebug)
//	s, _ := bitvec.NewSet(4096, bitvec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
