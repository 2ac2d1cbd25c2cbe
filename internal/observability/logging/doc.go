// Package logging provides structured logging utilities with context propagation.
//
// Loggers are log/slog loggers writing JSON (or text, for local development)
// to stdout. LOG_LEVEL selects debug, info, warn or error; LOG_FORMAT selects
// json or text. LOG_ADD_SOURCE adds source locations.
//
// Example usage:
//
//	logger := logging.NewLogger()
//	slog.SetDefault(logger)
//
//	func handle(ctx context.Context) {
//	    logger := logging.WithRequestID(ctx, slog.Default())
//	    logger.Info("processing request")
//	}
package logging
