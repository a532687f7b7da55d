package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/scout/internal/core/domain"
	"github.com/custodia-labs/scout/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interfaces.
var (
	_ driven.CatalogSource = (*CatalogStore)(nil)
	_ driven.CatalogSink   = (*CatalogStore)(nil)
)

// CatalogStore is an in-memory catalog source and sink for testing and
// fixtures.
type CatalogStore struct {
	mu      sync.RWMutex
	entries []domain.CatalogEntry
}

// NewCatalogStore creates a store seeded with entries.
func NewCatalogStore(entries ...domain.CatalogEntry) *CatalogStore {
	s := &CatalogStore{}
	s.entries = append(s.entries, entries...)
	return s
}

// Load returns a copy of the stored entries in insertion order.
func (s *CatalogStore) Load(_ context.Context) ([]domain.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CatalogEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Replace swaps the stored entries for entries.
func (s *CatalogStore) Replace(_ context.Context, entries []domain.CatalogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make([]domain.CatalogEntry, len(entries))
	copy(s.entries, entries)
	return nil
}
