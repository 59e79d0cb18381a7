// Package logger builds *slog.Logger values with functional options and
// provides the attribute helpers used across the module.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which adds attributes pulled from the
// context.Context of each record.
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "auth"),
//		logger.WithContextExtractors(requestIDExtractor),
//	)
//
// Nothing in this package touches slog.Default unless SetAsDefault is called.
package logger
