package validkit

import (
	"embed"

	"github.com/dmitrymomot/validkit/pkg/i18n"
)

//go:embed messages/*.json messages/*.yaml messages/*.toml
var messagesFS embed.FS

// EmbeddedMessages returns an adapter over the catalogs compiled into the
// binary.
func EmbeddedMessages() i18n.Adapter {
	return i18n.NewFSAdapter(messagesFS, "messages")
}
