// Package validkit is a validation engine for Brazilian identifiers (CPF and
// CNPJ), banking fields, contact fields, postal codes and password policies,
// producing structured results with localized messages.
//
// The Engine wires the pieces together: a message catalog store
// (pkg/i18n), the validators (pkg/validator), optional Prometheus
// instrumentation (pkg/metrics) and structured logging (pkg/logger).
//
// Basic usage:
//
//	cfg, err := validkit.LoadConfig()
//	if err != nil {
//		return err
//	}
//
//	engine, err := validkit.New(ctx, cfg)
//	if err != nil {
//		return err // i18n.ErrLocaleNotFound when APP_LOCALE has no catalog
//	}
//
//	res, err := engine.Validate(ctx, validator.KindDocument, "111.444.777-35")
//	if err != nil {
//		return err
//	}
//	if !res.Success() {
//		for _, e := range res.Errors() {
//			fmt.Println(e.Field, e.Message)
//		}
//	}
//
// Locale:
//
// The engine validates in its configured locale unless the context carries
// another one (i18n.WithLocale). A locale without a catalog is an error; the
// engine never falls back to a different locale on its own. Use
// i18n.Negotiate to map a user preference to a supported locale first.
//
// Catalogs:
//
// Default catalogs for pt_br (JSON), en (YAML) and es (TOML) are embedded in
// the binary. Setting VALIDKIT_MESSAGES_DIR replaces them with the per-locale
// files of that directory. Reload re-reads the source and swaps the catalog
// atomically; validations in flight keep the snapshot they started with.
package validkit
