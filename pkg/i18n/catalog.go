package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/logger"
)

// Catalog is an immutable, locale-keyed set of messages addressed by dotted
// keys. Build it with NewCatalog; never mutate it afterwards. Replacing the
// messages means building a new Catalog (see Store).
type Catalog struct {
	messages   map[string]map[string]string // locale -> dotted key -> message
	logger     *slog.Logger
	logMissing bool
}

// NewCatalog copies data into a new Catalog. Nested maps are flattened into
// dotted keys; leaves that are not strings are dropped and therefore resolve
// as missing.
func NewCatalog(data map[string]map[string]any, opts ...Option) (*Catalog, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Catalog{
		messages:   make(map[string]map[string]string, len(data)),
		logger:     o.logger,
		logMissing: o.logMissing,
	}

	for locale, doc := range data {
		if locale == "" {
			return nil, ErrEmptyLocale
		}
		if doc == nil {
			return nil, fmt.Errorf("%w for locale: %s", ErrNilTranslations, locale)
		}
		flat := make(map[string]string)
		flatten(flat, "", doc)
		c.messages[locale] = flat
	}

	return c, nil
}

func flatten(dst map[string]string, prefix string, src map[string]any) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			dst[key] = val
		default:
			if nested, ok := asStringMap(val); ok {
				flatten(dst, key, nested)
			}
		}
	}
}

// Locales returns the sorted list of locales in the catalog.
func (c *Catalog) Locales() []string {
	locales := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// HasLocale reports whether the catalog holds messages for locale.
func (c *Catalog) HasLocale(locale string) bool {
	_, ok := c.messages[locale]
	return ok
}

// Has reports whether key resolves to a string message in locale.
func (c *Catalog) Has(locale, key string) bool {
	msgs, ok := c.messages[locale]
	if !ok {
		return false
	}
	_, ok = msgs[key]
	return ok
}

// Resolve returns the message stored under the dotted key for locale, or def
// when the key is missing or does not hold a string. Placeholders in the
// form %{name} are substituted from args given as key/value pairs.
//
// The only error is ErrLocaleNotFound: a missing key is an expected case
// and always degrades to def.
func (c *Catalog) Resolve(locale, key, def string, args ...string) (string, error) {
	msgs, ok := c.messages[locale]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLocaleNotFound, locale)
	}

	msg, ok := msgs[key]
	if !ok {
		if c.logMissing {
			c.logger.Warn("message not found", logger.Locale(locale), logger.Key(key))
		}
		return sprintf(def, args), nil
	}

	return sprintf(msg, args), nil
}

// ExportJSON returns the nested messages of a locale as a JSON document,
// useful for handing the catalog to client-side code.
func (c *Catalog) ExportJSON(locale string) (string, error) {
	msgs, ok := c.messages[locale]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLocaleNotFound, locale)
	}

	bytes, err := json.Marshal(unflatten(msgs))
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}

	return string(bytes), nil
}

func unflatten(flat map[string]string) map[string]any {
	root := make(map[string]any)
	for key, msg := range flat {
		parts := strings.Split(key, ".")
		node := root
		for _, part := range parts[:len(parts)-1] {
			next, ok := node[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				node[part] = next
			}
			node = next
		}
		node[parts[len(parts)-1]] = msg
	}
	return root
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Format substitutes %{name} placeholders in tmpl from key/value args,
// the same way Resolve does for catalog messages.
func Format(tmpl string, args ...string) string {
	return sprintf(tmpl, args)
}

// sprintf performs substitution of named placeholders. Placeholders without
// a matching argument are kept as is; a trailing odd argument is ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}
