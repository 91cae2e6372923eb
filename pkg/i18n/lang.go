package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// maxPreferenceLength prevents oversized Accept-Language values from being
// parsed in full; 4KB is generous for legitimate headers.
const maxPreferenceLength = 4096

// Negotiate picks the best catalog locale for a user preference.
//
// preference may be an Accept-Language header ("pt-BR,pt;q=0.9,en;q=0.8")
// or a POSIX locale ("pt_BR.UTF-8"). supported holds catalog locale tags,
// which use underscores ("pt_br"). fallback is returned when nothing matches.
func Negotiate(preference string, supported []string, fallback string) string {
	preference = strings.TrimSpace(preference)
	if preference == "" || len(supported) == 0 {
		return fallback
	}
	if len(preference) > maxPreferenceLength {
		preference = preference[:maxPreferenceLength]
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, locale := range supported {
		tag, err := language.Parse(toBCP47(locale))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, locale)
	}
	if len(tags) == 0 {
		return fallback
	}

	if !strings.ContainsAny(preference, ",;") {
		preference = posixToBCP47(preference)
	}

	wanted, _, err := language.ParseAcceptLanguage(toBCP47(preference))
	if err != nil || len(wanted) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(tags).Match(wanted...)
	if confidence == language.No || idx < 0 || idx >= len(names) {
		return fallback
	}

	return names[idx]
}

// toBCP47 converts catalog-style tags ("pt_br") into BCP 47 ("pt-br").
func toBCP47(tag string) string {
	return strings.ReplaceAll(tag, "_", "-")
}

// posixToBCP47 strips the encoding and modifier parts of a POSIX locale:
// "pt_BR.UTF-8@euro" -> "pt_BR".
func posixToBCP47(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return locale
}
