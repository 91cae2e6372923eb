package i18n

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/validkit/pkg/logger"
)

// Store publishes the current Catalog snapshot. Readers take the snapshot
// with Catalog and keep using it for the duration of their work; Reload and
// Replace swap the pointer atomically and never mutate a published catalog.
type Store struct {
	adapter Adapter
	opts    []Option
	current atomic.Pointer[Catalog]

	// reloadMu serializes loads so that an older load never overwrites a
	// newer one.
	reloadMu sync.Mutex
}

// NewStore loads the catalog from adapter once and returns a Store holding it.
func NewStore(ctx context.Context, adapter Adapter, opts ...Option) (*Store, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	s := &Store{adapter: adapter, opts: opts}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// Catalog returns the current snapshot.
func (s *Store) Catalog() *Catalog {
	return s.current.Load()
}

// Reload loads the adapter again and publishes the result. On failure the
// previous snapshot stays in place.
func (s *Store) Reload(ctx context.Context) error {
	return s.ReloadIf(ctx, nil)
}

// ReloadIf works like Reload but publishes the new catalog only if accept
// returns nil. A rejected catalog is never visible to readers; its error is
// returned unchanged.
func (s *Store) ReloadIf(ctx context.Context, accept func(*Catalog) error) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	data, err := s.adapter.Load(ctx)
	if err != nil {
		return err
	}

	catalog, err := NewCatalog(data, s.opts...)
	if err != nil {
		return err
	}

	if accept != nil {
		if err := accept(catalog); err != nil {
			return err
		}
	}

	s.current.Store(catalog)
	catalog.logger.InfoContext(ctx, "message catalog loaded", logger.Locales(catalog.Locales()))
	return nil
}

// Replace publishes an externally built catalog. A nil catalog is ignored.
func (s *Store) Replace(c *Catalog) {
	if c != nil {
		s.reloadMu.Lock()
		s.current.Store(c)
		s.reloadMu.Unlock()
	}
}
