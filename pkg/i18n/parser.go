package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser decodes a single translation document into a nested map.
type Parser interface {
	// Parse decodes content. Nested objects become map[string]any values.
	Parse(ctx context.Context, content []byte) (map[string]any, error)

	// SupportsFileExtension reports whether the parser handles ext.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserForFile returns a parser based on the file extension, or nil when
// the extension is not supported.
func ParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(path.Ext(filename), ".")

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	case "toml":
		return NewTOMLParser()
	default:
		return nil
	}
}

// localeFromFilename derives the locale from a per-locale file name:
// "pt_br.json" -> "pt_br".
func localeFromFilename(filename string) string {
	base := path.Base(filename)
	return strings.TrimSuffix(base, path.Ext(base))
}
