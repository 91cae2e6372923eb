package validkit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/validkit/pkg/cache"
	"github.com/dmitrymomot/validkit/pkg/i18n"
	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/metrics"
	"github.com/dmitrymomot/validkit/pkg/sanitizer"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

// negotiationCacheSize bounds the number of remembered locale preferences.
const negotiationCacheSize = 256

// ErrInvalidRecord is returned by ValidateRecord for unsupported record types.
var ErrInvalidRecord = errors.New("unsupported record type")

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics records every validation in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithAdapter loads catalogs from a instead of the configured source.
func WithAdapter(a i18n.Adapter) Option {
	return func(e *Engine) {
		if a != nil {
			e.adapter = a
		}
	}
}

// WithClock sets the time source used by the transaction validator.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// Engine builds localized validators over an atomically replaceable
// message catalog. It is safe for concurrent use.
type Engine struct {
	cfg     Config
	adapter i18n.Adapter
	store   *i18n.Store
	locale  atomic.Pointer[string]
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	negotiated *cache.LRU[negotiationKey, string]
}

// negotiationKey ties a negotiated locale to the catalog and default locale
// it was computed against.
type negotiationKey struct {
	catalog    *i18n.Catalog
	fallback   string
	preference string
}

// New loads the catalogs and returns an engine bound to cfg.Locale.
// It fails with i18n.ErrLocaleNotFound when that locale has no catalog.
func New(ctx context.Context, cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:        cfg,
		logger:     logger.Discard(),
		now:        time.Now,
		negotiated: cache.NewLRU[negotiationKey, string](negotiationCacheSize),
	}
	for _, opt := range opts {
		opt(e)
	}

	source := "embedded"
	if e.adapter == nil {
		e.adapter = EmbeddedMessages()
		if cfg.MessagesDir != "" {
			e.adapter = i18n.NewDirectoryAdapter(cfg.MessagesDir)
			source = cfg.MessagesDir
		}
	} else {
		source = "custom"
	}

	storeOpts := []i18n.Option{
		i18n.WithLogger(e.logger.With(logger.Component("i18n"), logger.Source(source))),
		i18n.WithMissingKeyLogging(cfg.LogMissingMessage),
	}
	store, err := i18n.NewStore(ctx, e.adapter, storeOpts...)
	if err != nil {
		return nil, fmt.Errorf("load message catalog: %w", err)
	}
	e.store = store

	if err := e.SetLocale(cfg.Locale); err != nil {
		return nil, err
	}

	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Catalog returns the current catalog snapshot.
func (e *Engine) Catalog() *i18n.Catalog {
	return e.store.Catalog()
}

// Locale returns the default locale.
func (e *Engine) Locale() string {
	return *e.locale.Load()
}

// Locales returns the locales of the current catalog.
func (e *Engine) Locales() []string {
	return e.Catalog().Locales()
}

// SetLocale replaces the default locale. The locale must exist in the
// current catalog.
func (e *Engine) SetLocale(locale string) error {
	if !e.Catalog().HasLocale(locale) {
		return fmt.Errorf("%w: %s", i18n.ErrLocaleNotFound, locale)
	}
	e.locale.Store(&locale)
	e.logger.Debug("default locale set", logger.Locale(locale))
	return nil
}

// Reload reads the catalog source again and publishes it. A failed reload,
// or one that drops the default locale, keeps the previous catalog; the
// rejected catalog is never visible to concurrent callers.
func (e *Engine) Reload(ctx context.Context) error {
	err := e.store.ReloadIf(ctx, func(c *i18n.Catalog) error {
		if locale := e.Locale(); !c.HasLocale(locale) {
			return fmt.Errorf("%w: %s", i18n.ErrLocaleNotFound, locale)
		}
		return nil
	})
	if err != nil {
		e.logger.ErrorContext(ctx, "catalog reload failed", logger.Error(err))
		return err
	}
	e.negotiated.Clear()
	return nil
}

// NegotiateLocale picks the catalog locale that best matches preference, an
// Accept-Language value or a POSIX locale. It returns the default locale
// when nothing matches.
func (e *Engine) NegotiateLocale(preference string) string {
	catalog := e.Catalog()
	key := negotiationKey{catalog: catalog, fallback: e.Locale(), preference: preference}
	return e.negotiated.GetOrLoad(key, func() string {
		return i18n.Negotiate(preference, catalog.Locales(), key.fallback)
	})
}

// WithPreferredLocale stores the negotiated locale of preference in ctx, for
// Validate and ValidateRecord to pick up.
func (e *Engine) WithPreferredLocale(ctx context.Context, preference string) context.Context {
	return i18n.WithLocale(ctx, e.NegotiateLocale(preference))
}

// Localizer returns a localizer for locale over the current catalog.
func (e *Engine) Localizer(locale string) (validator.Localizer, error) {
	return validator.NewLocalizer(e.Catalog(), locale)
}

// LocalizerFromContext uses the locale stored in ctx, falling back to the
// default locale.
func (e *Engine) LocalizerFromContext(ctx context.Context) (validator.Localizer, error) {
	return e.Localizer(i18n.LocaleFromContext(ctx, e.Locale()))
}

// Validator builds the validator of kind for loc, with the configured
// extensions and instrumentation applied.
func (e *Engine) Validator(kind validator.Kind, loc validator.Localizer) (validator.Validator, error) {
	v, err := e.extended(kind, loc)
	if err != nil {
		return nil, err
	}
	return metrics.Instrument(kind.String(), v, e.metrics), nil
}

// extended builds the validator of kind with the configured extensions but
// without instrumentation. Record validators use it for their fields so a
// record is counted once, under its own kind.
func (e *Engine) extended(kind validator.Kind, loc validator.Localizer) (validator.Validator, error) {
	base, err := validator.New(kind, loc, validator.WithPasswordPolicy(e.cfg.PasswordPolicy()))
	if err != nil {
		return nil, err
	}

	switch kind {
	case validator.KindCPF, validator.KindCNPJ, validator.KindDocument:
		if len(e.cfg.BlockedDocuments) > 0 {
			return validator.Extend(base, validator.BlockedDocuments(loc, e.cfg.BlockedDocuments...)), nil
		}
	case validator.KindEmail:
		if len(e.cfg.BlockedEmailDomains) > 0 {
			return validator.Extend(base, validator.BlockedEmailDomains(loc, e.cfg.BlockedEmailDomains...)), nil
		}
	case validator.KindPassword:
		if len(e.cfg.DictionaryWords) > 0 {
			return validator.Extend(base, validator.DictionaryWords(loc, e.cfg.DictionaryWords...)), nil
		}
	}
	return base, nil
}

// Validate validates value as kind in the locale of ctx. The error is
// non-nil only for configuration problems (unknown locale or kind); invalid
// input is reported through the result.
func (e *Engine) Validate(ctx context.Context, kind validator.Kind, value string) (validator.Result, error) {
	loc, err := e.LocalizerFromContext(ctx)
	if err != nil {
		return validator.Result{}, err
	}
	v, err := e.Validator(kind, loc)
	if err != nil {
		return validator.Result{}, err
	}

	res := v.Validate(value)
	e.logger.DebugContext(ctx, "value validated",
		logger.Kind(kind.String()),
		logger.Locale(loc.Locale()),
		slog.String("value", maskValue(kind, value)),
		slog.Bool("success", res.Success()),
		slog.Int("errors", res.Len()),
	)
	return res, nil
}

// maskValue renders value for logs without exposing personal data.
func maskValue(kind validator.Kind, value string) string {
	switch kind {
	case validator.KindCPF, validator.KindCNPJ, validator.KindDocument:
		return sanitizer.MaskDocument(value)
	case validator.KindEmail:
		return sanitizer.MaskEmail(value)
	case validator.KindCEP:
		return sanitizer.FormatCEP(value)
	default:
		return "[redacted]"
	}
}

// ValidateRecord validates one of the record types of pkg/validator:
// BankAccount, Transaction, User or Customer.
func (e *Engine) ValidateRecord(ctx context.Context, record any) (validator.Result, error) {
	loc, err := e.LocalizerFromContext(ctx)
	if err != nil {
		return validator.Result{}, err
	}

	var (
		kind string
		res  validator.Result
	)
	switch r := record.(type) {
	case validator.BankAccount:
		kind, res = "bank_account", validator.NewBankAccountValidator(loc).Validate(r)
	case validator.Transaction:
		kind, res = "transaction", validator.NewTransactionValidator(loc, validator.WithClock(e.now)).Validate(r)
	case validator.User:
		email, password, err := e.extendedPair(validator.KindEmail, validator.KindPassword, loc)
		if err != nil {
			return validator.Result{}, err
		}
		kind, res = "user", validator.NewUserValidator(loc, email, password).Validate(r)
	case validator.Customer:
		cpf, email, err := e.extendedPair(validator.KindCPF, validator.KindEmail, loc)
		if err != nil {
			return validator.Result{}, err
		}
		kind, res = "customer", validator.NewCustomerValidator(loc, cpf, email).Validate(r)
	default:
		return validator.Result{}, fmt.Errorf("%w: %T", ErrInvalidRecord, record)
	}

	if e.metrics != nil {
		e.metrics.Observe(kind, res)
	}
	return res, nil
}

func (e *Engine) extendedPair(a, b validator.Kind, loc validator.Localizer) (validator.Validator, validator.Validator, error) {
	va, err := e.extended(a, loc)
	if err != nil {
		return nil, nil, err
	}
	vb, err := e.extended(b, loc)
	if err != nil {
		return nil, nil, err
	}
	return va, vb, nil
}
