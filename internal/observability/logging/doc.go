// Package logging builds the slog loggers used by every binary and carries
// request-scoped loggers through contexts.
//
//	logger := logging.NewLogger()                 // JSON, LOG_LEVEL=debug|info|warn|error
//	reqLogger := logging.WithRequestID(ctx, logger) // adds request_id
package logging
