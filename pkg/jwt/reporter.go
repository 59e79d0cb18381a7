package jwt

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/jwtkit/pkg/logger"
)

// Reporter receives the internal diagnostic for every rejected token.
// Implementations must be safe for concurrent use.
type Reporter interface {
	Report(kind error, message string)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(kind error, message string)

func (f ReporterFunc) Report(kind error, message string) { f(kind, message) }

type discardReporter struct{}

func (discardReporter) Report(error, string) {}

// SlogReporter logs diagnostics at warn level on l.
func SlogReporter(l *slog.Logger) Reporter {
	if l == nil {
		return discardReporter{}
	}
	l = l.With(logger.Component("jwt"))
	return ReporterFunc(func(kind error, message string) {
		l.LogAttrs(context.Background(), slog.LevelWarn, "token rejected",
			logger.Kind(kind),
			slog.String("diagnostic", message),
		)
	})
}
