// Package cli implements the inscribe command-line interface.
//
// The CLI wraps the solver in the root package: the solve command reads a
// polygon from a JSON or GeoJSON file (or stdin), runs the
// largest-inscribed-rectangle search, and prints the result as JSON. It is
// built with cobra and logs through the charmbracelet/log library; --verbose
// (-v) enables debug-level logging, and loggers travel through
// context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w, filtering at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package. Using a
// distinct type prevents collisions with other packages.
type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
