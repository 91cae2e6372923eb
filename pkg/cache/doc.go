// Package cache provides a bounded, thread-safe LRU cache.
//
// The engine uses it to memoize locale negotiation: Accept-Language values
// repeat heavily across requests but are not bounded in number, so results
// are kept for the most recently seen preferences only.
//
//	c := cache.NewLRU[string, string](256)
//	locale := c.GetOrLoad("pt-BR,pt;q=0.9", func() string {
//		return i18n.Negotiate("pt-BR,pt;q=0.9", locales, "pt_br")
//	})
//
// Clear drops every entry, for example after the catalog is reloaded.
package cache
