package memory

import (
	"context"
	"sync"

	"github.com/Beka01247/menu-order/internal/domain"
)

type CatalogRepository struct {
	mu    sync.RWMutex
	items []domain.MenuItem
}

func NewCatalogRepository(seed []domain.MenuItem) *CatalogRepository {
	return &CatalogRepository{items: append([]domain.MenuItem(nil), seed...)}
}

func (r *CatalogRepository) LoadCatalog(ctx context.Context) ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.MenuItem(nil), r.items...), nil
}

func (r *CatalogRepository) ReplaceAll(ctx context.Context, items []domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]domain.MenuItem(nil), items...)
	return nil
}
