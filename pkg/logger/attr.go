package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Locale records a catalog locale under the key "locale".
func Locale(locale string) slog.Attr {
	return slog.String("locale", locale)
}

// Locales records a list of catalog locales under the key "locales".
func Locales(locales []string) slog.Attr {
	return slog.Any("locales", locales)
}

// Key records a message key under the key "key".
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// Kind records a validator kind under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Source records where a catalog was loaded from under the key "source".
func Source(source string) slog.Attr {
	return slog.String("source", source)
}
