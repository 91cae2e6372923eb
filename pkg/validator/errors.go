package validator

import "errors"

var (
	// ErrUnknownKind is returned by New and ParseKind for an unsupported kind.
	ErrUnknownKind = errors.New("unknown validator kind")

	// ErrNilCatalog is returned by NewLocalizer when no catalog is given.
	ErrNilCatalog = errors.New("message catalog is nil")
)
