package bitvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitvec-specific fields.
// Field names are consistent across all log records.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler writing to stderr at info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger emitting JSON records at or above level.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger emitting human-readable records at or above level.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards everything. It is the default.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithBitLength adds the bit length field.
func (l *Logger) WithBitLength(n int) *Logger {
	return &Logger{Logger: l.Logger.With("bit_length", n)}
}

// WithMedium adds the storage medium and block width fields.
func (l *Logger) WithMedium(medium string, width int) *Logger {
	return &Logger{Logger: l.Logger.With("medium", medium, "block_width", width)}
}

// LogAllocated logs the creation of a vector.
func (l *Logger) LogAllocated(blocks int) {
	l.Debug("bit vector allocated", "blocks", blocks)
}

// LogCloned logs a deep copy, or its failure.
func (l *Logger) LogCloned(err error) {
	if err != nil {
		l.Warn("clone failed", "error", err)
		return
	}
	l.Debug("bit vector cloned")
}

// LogClosed logs the release of the backing store.
func (l *Logger) LogClosed(err error) {
	if err != nil {
		l.Warn("close failed", "error", err)
		return
	}
	l.Debug("bit vector closed")
}

// LogRejected logs an operation refused before any mutation.
func (l *Logger) LogRejected(op string, err error) {
	l.Debug("operation rejected", "op", op, "error", err)
}
