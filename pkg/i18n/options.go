package i18n

import (
	"log/slog"

	"github.com/dmitrymomot/validkit/pkg/logger"
)

type options struct {
	logger     *slog.Logger
	logMissing bool
}

func defaultOptions() options {
	return options{
		logger: logger.Discard(),
	}
}

// Option configures a Catalog or a Store.
type Option func(*options)

// WithLogger provides a customizable logger.
// If not specified, a discard logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMissingKeyLogging logs a warning every time a key misses and the
// default is returned. Off by default: lookups then perform no I/O.
func WithMissingKeyLogging(enabled bool) Option {
	return func(o *options) {
		o.logMissing = enabled
	}
}

// WithNoLogging is a convenience option that disables all logging.
func WithNoLogging() Option {
	return func(o *options) {
		o.logger = logger.Discard()
		o.logMissing = false
	}
}
