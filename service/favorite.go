package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dcode-github/property_listing_card/cache"
	"github.com/dcode-github/property_listing_card/models"
	"github.com/dcode-github/property_listing_card/repository"
)

// ToggleResult is a listing's favorite state after a toggle.
type ToggleResult struct {
	PropertyID string `json:"propertyID"`
	IsFavorite bool   `json:"isFavorite"`
	// Changed is false when the toggle left the state alone.
	Changed bool `json:"changed"`
}

// Toggler flips a user's favorite state for one listing. The card's
// favorite control posts to it.
type Toggler interface {
	ToggleFavorite(ctx context.Context, userID, propertyID string) (ToggleResult, error)
}

// LogToggler only records the request.
type LogToggler struct {
	Logger *zap.Logger
}

func (t LogToggler) ToggleFavorite(_ context.Context, userID, propertyID string) (ToggleResult, error) {
	t.Logger.Info("Toggle favorite for property",
		zap.String("propertyID", propertyID),
		zap.String("userID", userID))
	return ToggleResult{PropertyID: propertyID}, nil
}

// FavoriteService drops the listing cache before a write returns, so a
// listing read right after a toggle sees the new favorite state.
type FavoriteService struct {
	favorites  repository.FavoriteRepository
	properties repository.PropertyRepository
	invalidator
}

func NewFavoriteService(favorites repository.FavoriteRepository, properties repository.PropertyRepository, c cache.PropertyCache, logger *zap.Logger) *FavoriteService {
	if c == nil {
		c = cache.NopCache{}
	}
	return &FavoriteService{
		favorites:   favorites,
		properties:  properties,
		invalidator: invalidator{cache: c, logger: logger},
	}
}

// Add marks propertyID as a favorite of userID. The listing must exist.
func (s *FavoriteService) Add(ctx context.Context, userID, propertyID string) (models.Favorite, error) {
	if propertyID == "" {
		return models.Favorite{}, fmt.Errorf("%w: propertyID", ErrInvalidInput)
	}
	if _, err := s.properties.Get(ctx, propertyID); err != nil {
		return models.Favorite{}, err
	}

	fav, err := s.favorites.Add(ctx, userID, propertyID)
	if err != nil {
		return models.Favorite{}, err
	}
	s.invalidateNow(ctx)
	return fav, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, propertyID string) error {
	if err := s.favorites.Remove(ctx, userID, propertyID); err != nil {
		return err
	}
	s.invalidateNow(ctx)
	return nil
}

func (s *FavoriteService) List(ctx context.Context, userID string) ([]models.Property, error) {
	return s.favorites.ListProperties(ctx, userID)
}

// ToggleFavorite removes the favorite when present and adds it otherwise.
func (s *FavoriteService) ToggleFavorite(ctx context.Context, userID, propertyID string) (ToggleResult, error) {
	exists, err := s.favorites.Exists(ctx, userID, propertyID)
	if err != nil {
		return ToggleResult{}, fmt.Errorf("check favorite: %w", err)
	}

	if exists {
		err = s.Remove(ctx, userID, propertyID)
		// Removed concurrently; the end state is what was asked for.
		if errors.Is(err, repository.ErrNotFound) {
			return ToggleResult{PropertyID: propertyID}, nil
		}
		if err != nil {
			return ToggleResult{}, err
		}
		s.logger.Info("Favorite removed", zap.String("userID", userID), zap.String("propertyID", propertyID))
		return ToggleResult{PropertyID: propertyID, Changed: true}, nil
	}

	_, err = s.Add(ctx, userID, propertyID)
	if errors.Is(err, repository.ErrConflict) {
		return ToggleResult{PropertyID: propertyID, IsFavorite: true}, nil
	}
	if err != nil {
		return ToggleResult{}, err
	}
	s.logger.Info("Favorite added", zap.String("userID", userID), zap.String("propertyID", propertyID))
	return ToggleResult{PropertyID: propertyID, IsFavorite: true, Changed: true}, nil
}
