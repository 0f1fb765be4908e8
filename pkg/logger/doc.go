// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers so field names stay consistent across logs.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which appends attributes pulled from the
// record context by registered ContextExtractor callbacks.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "fieldkit"),
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//	logger.SetAsDefault(log)
//
// WithEnvironment applies per-environment presets: text at DEBUG for
// development, JSON at INFO for staging and production.
//
// The helpers Owner, Field, Kind and Value describe rejected field writes;
// Error and Errors return an empty Attr for nil errors, so they can be passed
// unconditionally.
package logger
