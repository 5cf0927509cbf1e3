package repo

import (
	"context"

	"github.com/Beka01247/menu-order/internal/domain"
)

type CatalogRepository interface {
	LoadCatalog(ctx context.Context) ([]domain.MenuItem, error)
	ReplaceAll(ctx context.Context, items []domain.MenuItem) error
}
