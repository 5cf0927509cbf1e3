package repo

import (
	"context"

	"github.com/Beka01247/menu-order/internal/domain"
)

// SessionRepository is process-local: sessions are not persisted.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
}
