// Package catalog holds the menu a session orders from and the query
// operations over it.
package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/Beka01247/menu-order/internal/domain"
)

// Loader supplies the full catalog once per Load.
type Loader interface {
	LoadCatalog(ctx context.Context) ([]domain.MenuItem, error)
}

// Store is read-mostly shared state. Queries never mutate it; Load swaps the
// whole list at once.
type Store struct {
	mu      sync.RWMutex
	items   []domain.MenuItem
	loading bool
	loadErr error
}

// NewStore starts in the loading state until the first Load or Replace.
func NewStore() *Store {
	return &Store{loading: true}
}

func (s *Store) Load(ctx context.Context, loader Loader) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	items, err := loader.LoadCatalog(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.loadErr = err
	if err != nil {
		return err
	}
	s.items = items
	return nil
}

func (s *Store) Replace(items []domain.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.loading = false
	s.loadErr = nil
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err reports the last failed Load, if any.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Items returns a copy of the catalog, never nil.
func (s *Store) Items() []domain.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]domain.MenuItem, 0, len(s.items)), s.items...)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) Item(id string) (domain.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

func (s *Store) ItemsByCategory(category domain.Category) []domain.MenuItem {
	return s.filter(func(item domain.MenuItem) bool {
		return item.Category == category
	})
}

func (s *Store) PopularItems() []domain.MenuItem {
	return s.filter(func(item domain.MenuItem) bool {
		return item.IsPopular
	})
}

// Search matches name, description or category label case-insensitively. An
// empty query returns the whole catalog.
func (s *Store) Search(query string) []domain.MenuItem {
	if query == "" {
		return s.Items()
	}
	return s.filter(Matches(query))
}

func (s *Store) filter(keep func(domain.MenuItem) bool) []domain.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []domain.MenuItem{}
	for _, item := range s.items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

func Matches(query string) func(domain.MenuItem) bool {
	q := strings.ToLower(query)
	return func(item domain.MenuItem) bool {
		return strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Description), q) ||
			strings.Contains(strings.ToLower(string(item.Category)), q)
	}
}
