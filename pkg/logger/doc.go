// Package logger builds log/slog loggers and provides attribute helpers with
// consistent keys.
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "kit"),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.ErrorContext(ctx, "image load failed", logger.URL(u), logger.Error(err))
//
// Production and staging use JSON at info level; anything else is treated as
// development and uses text at debug level. Context extractors run on every
// record so request-scoped values are always current.
package logger
