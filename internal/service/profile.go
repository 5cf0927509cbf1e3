package service

import (
	"context"

	"github.com/Beka01247/menu-order/internal/catalog"
	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/Beka01247/menu-order/internal/repo"
	"go.uber.org/zap"
)

type ProfileService struct {
	sessionRepo repo.SessionRepository
	catalog     *catalog.Store
	logger      *zap.SugaredLogger
}

func NewProfileService(
	sessionRepo repo.SessionRepository,
	catalog *catalog.Store,
	logger *zap.SugaredLogger,
) *ProfileService {
	return &ProfileService{
		sessionRepo: sessionRepo,
		catalog:     catalog,
		logger:      logger,
	}
}

type Identity struct {
	Name  string
	Email string
	Phone string
}

// Preferences changes the fields that are set.
type Preferences struct {
	Notifications          *bool
	SpecialOffers          *bool
	DarkMode               *bool
	PreferredPaymentMethod *domain.PaymentMethod
}

func (s *ProfileService) GetProfile(ctx context.Context, sessionID string) (*domain.Profile, error) {
	return s.update(ctx, sessionID, func(profile *domain.Profile) error { return nil })
}

func (s *ProfileService) UpdateIdentity(ctx context.Context, sessionID string, identity Identity) (*domain.Profile, error) {
	profile, err := s.update(ctx, sessionID, func(profile *domain.Profile) error {
		profile.Name = identity.Name
		profile.Email = identity.Email
		profile.Phone = identity.Phone
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("profile updated", "session_id", sessionID, "logged_in", profile.IsLoggedIn())
	return profile, nil
}

func (s *ProfileService) UpdatePreferences(ctx context.Context, sessionID string, prefs Preferences) (*domain.Profile, error) {
	return s.update(ctx, sessionID, func(profile *domain.Profile) error {
		if prefs.Notifications != nil {
			profile.Notifications = *prefs.Notifications
		}
		if prefs.SpecialOffers != nil {
			profile.SpecialOffers = *prefs.SpecialOffers
		}
		if prefs.DarkMode != nil {
			profile.DarkMode = *prefs.DarkMode
		}
		if prefs.PreferredPaymentMethod != nil {
			method := *prefs.PreferredPaymentMethod
			profile.PreferredPaymentMethod = &method
		}
		return nil
	})
}

func (s *ProfileService) AddFavorite(ctx context.Context, sessionID, itemID string) (*domain.Profile, error) {
	item, err := lookupItem(s.catalog, itemID)
	if err != nil {
		return nil, err
	}

	return s.update(ctx, sessionID, func(profile *domain.Profile) error {
		profile.AddToFavorites(item)
		return nil
	})
}

func (s *ProfileService) RemoveFavorite(ctx context.Context, sessionID, itemID string) (*domain.Profile, error) {
	return s.update(ctx, sessionID, func(profile *domain.Profile) error {
		profile.RemoveFromFavorites(itemID)
		return nil
	})
}

func (s *ProfileService) SaveAddress(ctx context.Context, sessionID string, address domain.Address) (*domain.Profile, error) {
	return s.update(ctx, sessionID, func(profile *domain.Profile) error {
		profile.SaveAddress(address)
		return nil
	})
}

func (s *ProfileService) RemoveAddress(ctx context.Context, sessionID string, address domain.Address) (*domain.Profile, error) {
	return s.update(ctx, sessionID, func(profile *domain.Profile) error {
		profile.RemoveAddress(address)
		return nil
	})
}

// History returns archived orders, oldest first.
func (s *ProfileService) History(ctx context.Context, sessionID string) ([]domain.HistoricalOrder, error) {
	profile, err := s.GetProfile(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return profile.History, nil
}

func (s *ProfileService) Logout(ctx context.Context, sessionID string) (*domain.Profile, error) {
	profile, err := s.update(ctx, sessionID, func(profile *domain.Profile) error {
		profile.Logout()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("profile logged out", "session_id", sessionID)
	return profile, nil
}

// update applies fn under the session lock and returns a snapshot of the
// result.
func (s *ProfileService) update(ctx context.Context, sessionID string, fn func(profile *domain.Profile) error) (*domain.Profile, error) {
	var profile *domain.Profile
	err := withSession(ctx, s.sessionRepo, sessionID, func(session *domain.Session) error {
		if err := fn(session.Profile); err != nil {
			return err
		}
		profile = session.Profile.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}
