// Package i18n provides the message catalog used to render validation
// results in the caller's language.
//
// A catalog maps a locale tag ("pt_br", "en") to a nested document of
// message keys. Messages are looked up by dotted path
// ("validations.cpf.invalid_length") and a lookup never fails because of a
// missing key: the caller always supplies a default that is returned
// instead. The only hard failure is an unknown locale, reported as
// ErrLocaleNotFound, because it signals a configuration defect rather than a
// data defect. The package never falls back across locales on its own; use
// Negotiate to pick a supported locale explicitly.
//
// # Architecture
//
// Loading and lookup are separate concerns:
//
//   - Parser turns one JSON, YAML or TOML document into a nested map.
//   - Adapter produces the per-locale documents: MapAdapter for pre-loaded
//     data, FileAdapter for a single multi-locale file, DirectoryAdapter and
//     FSAdapter for one file per locale named after the locale
//     (messages/pt_br.json, messages/en.yaml, ...). FSAdapter accepts any
//     fs.FS, including embed.FS.
//   - Catalog is an immutable snapshot built from adapter output. It is safe
//     for concurrent use without locking.
//   - Store publishes the current Catalog through an atomic pointer. Reload
//     builds a fresh snapshot and swaps it in; readers in flight keep the
//     snapshot they already hold.
//
// # Usage
//
//	store, err := i18n.NewStore(ctx, i18n.NewDirectoryAdapter("./messages"),
//		i18n.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//
//	msg, err := store.Catalog().Resolve("pt_br", "validations.password.length",
//		"Password must have at least %{min} characters", "min", "8")
//	if errors.Is(err, i18n.ErrLocaleNotFound) {
//		// configuration defect
//	}
//
// Placeholders use the %{name} syntax and are substituted from key/value
// argument pairs in both the resolved message and the default.
package i18n
