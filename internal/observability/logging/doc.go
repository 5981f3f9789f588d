// Package logging builds the application's slog loggers and carries
// request-scoped loggers through context.
//
// Output is JSON by default (LOG_FORMAT=text switches to the text handler)
// and the level comes from LOG_LEVEL (debug, info, warn, error).
//
//	logger := logging.NewLogger()
//	reqLogger := logging.WithRequestID(ctx, logger)
//	reqLogger.Info("organization resolved", slog.String("slug", slug))
package logging
