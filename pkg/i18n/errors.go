package i18n

import "errors"

var (
	// ErrLocaleNotFound is returned when a catalog has no messages for the requested locale.
	ErrLocaleNotFound = errors.New("locale not found")

	// Catalog construction
	ErrEmptyLocale     = errors.New("empty locale code found")
	ErrNilTranslations = errors.New("nil translations map")
	ErrNilAdapter      = errors.New("adapter is nil")

	// Parsing
	ErrParsingCancelled    = errors.New("parsing cancelled")
	ErrFailedToParseJSON   = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML   = errors.New("failed to parse YAML content")
	ErrFailedToParseTOML   = errors.New("failed to parse TOML content")
	ErrUnsupportedFormat   = errors.New("unsupported translation file format")
	ErrInvalidStructure    = errors.New("invalid translation structure")
	ErrFailedToMarshalJSON = errors.New("failed to marshal translations to JSON")

	// File and directory operations
	ErrLoadingCancelled        = errors.New("loading translations cancelled")
	ErrFailedToReadFile        = errors.New("failed to read translation file")
	ErrFailedToParseFile       = errors.New("failed to parse translation file")
	ErrFailedToAccessDirectory = errors.New("failed to access directory")
	ErrFailedToReadDirectory   = errors.New("failed to read directory")
	ErrNoTranslations          = errors.New("no valid translation files found")
)
