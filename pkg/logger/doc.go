// Package logger builds log/slog loggers with functional options, attribute
// helpers with consistent names, and injection of values stored in
// context.Context.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler so registered ContextExtractor callbacks run on every record:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "validkit"),
//	    logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "message catalog loaded",
//	    logger.Component("i18n"),
//	    logger.Locale("pt_br"),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed without a nil check:
//
//	log.Warn("reload failed", logger.Error(err))
package logger
