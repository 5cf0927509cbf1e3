package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/menu-order/internal/catalog"
	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/Beka01247/menu-order/internal/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCatalogUnavailable = errors.New("catalog is not available")
	ErrMenuItemNotFound   = fmt.Errorf("menu item %w", repo.ErrNotFound)
	ErrOrderNotFound      = fmt.Errorf("order %w", repo.ErrNotFound)
)

type SessionService struct {
	sessionRepo repo.SessionRepository
	logger      *zap.SugaredLogger
	now         func() time.Time
}

func NewSessionService(sessionRepo repo.SessionRepository, logger *zap.SugaredLogger) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *SessionService) CreateSession(ctx context.Context) (*domain.Session, error) {
	session := domain.NewSession(uuid.NewString(), s.now())

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Infow("session created", "session_id", session.ID)

	return session, nil
}

// withSession runs fn while holding the session lock.
func withSession(ctx context.Context, sessions repo.SessionRepository, sessionID string, fn func(session *domain.Session) error) error {
	session, err := sessions.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	session.Lock()
	defer session.Unlock()

	return fn(session)
}

// lookupItem resolves an item from the loaded catalog. A catalog that is
// still loading, or whose first load failed, is unavailable.
func lookupItem(store *catalog.Store, itemID string) (domain.MenuItem, error) {
	if store.Loading() || (store.Err() != nil && store.Len() == 0) {
		return domain.MenuItem{}, ErrCatalogUnavailable
	}

	item, ok := store.Item(itemID)
	if !ok {
		return domain.MenuItem{}, fmt.Errorf("%w: %s", ErrMenuItemNotFound, itemID)
	}
	return item, nil
}
