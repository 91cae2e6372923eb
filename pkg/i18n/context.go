package i18n

import "context"

type localeContextKey struct{}

// WithLocale stores the locale in the context.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext returns the locale stored in ctx, or def when none is set.
func LocaleFromContext(ctx context.Context, def string) string {
	if ctx == nil {
		return def
	}
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return def
	}
	return locale
}
