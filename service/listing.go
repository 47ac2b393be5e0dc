package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"slices"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/dcode-github/property_listing_card/cache"
	"github.com/dcode-github/property_listing_card/models"
	"github.com/dcode-github/property_listing_card/repository"
)

type ListingService struct {
	properties repository.PropertyRepository
	favorites  repository.FavoriteRepository
	invalidator
}

func NewListingService(properties repository.PropertyRepository, favorites repository.FavoriteRepository, c cache.PropertyCache, logger *zap.Logger) *ListingService {
	if c == nil {
		c = cache.NopCache{}
	}
	return &ListingService{
		properties:  properties,
		favorites:   favorites,
		invalidator: invalidator{cache: c, logger: logger},
	}
}

// List returns one page of listings matching query. Results are cached per
// user since they carry that user's favorite flags. An empty userID lists
// anonymously with no favorites marked.
func (s *ListingService) List(ctx context.Context, userID string, query url.Values) ([]models.Property, error) {
	cacheKey := cache.Key(userID, query)

	data, ok, err := s.cache.Get(ctx, cacheKey)
	if err != nil {
		s.logger.Warn("Cache get failed", zap.String("key", cacheKey), zap.Error(err))
	}
	if ok {
		var cached []models.Property
		if err := json.Unmarshal(data, &cached); err == nil {
			s.logger.Debug("Cache hit", zap.String("key", cacheKey))
			return cached, nil
		}
		s.logger.Warn("Discarding unreadable cache entry", zap.String("key", cacheKey))
	}

	properties, err := s.properties.List(ctx, repository.ParseQuery(query))
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	if err := s.markFavorites(ctx, userID, properties); err != nil {
		return nil, err
	}

	if data, err := json.Marshal(properties); err == nil {
		if err := s.cache.Set(ctx, cacheKey, data); err != nil {
			s.logger.Warn("Cache set failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return properties, nil
}

func (s *ListingService) Get(ctx context.Context, userID, id string) (models.Property, error) {
	p, err := s.properties.Get(ctx, id)
	if err != nil {
		return models.Property{}, err
	}
	if userID != "" {
		fav, err := s.favorites.Exists(ctx, userID, id)
		if err != nil {
			return models.Property{}, fmt.Errorf("check favorite: %w", err)
		}
		p.IsFavorite = fav
	}
	return p, nil
}

// Create stores p as owned by userID.
func (s *ListingService) Create(ctx context.Context, userID string, p *models.Property) error {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	if !routableID(p.ID) {
		return fmt.Errorf("%w: id %q", ErrInvalidInput, p.ID)
	}
	p.CreatedBy = userID
	p.IsFavorite = false
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.properties.Create(ctx, p); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Update applies a partial update of known listing fields. Ownership
// fields are ignored; unknown or ill-typed fields fail with ErrInvalidInput.
func (s *ListingService) Update(ctx context.Context, userID, id string, fields map[string]interface{}) (models.Property, error) {
	set, err := normalizeUpdate(fields)
	if err != nil {
		return models.Property{}, err
	}
	if err := s.checkOwner(ctx, userID, id); err != nil {
		return models.Property{}, err
	}

	if err := s.properties.Update(ctx, id, userID, set); err != nil {
		return models.Property{}, err
	}
	s.invalidate()
	return s.Get(ctx, userID, id)
}

func (s *ListingService) Delete(ctx context.Context, userID, id string) error {
	if err := s.checkOwner(ctx, userID, id); err != nil {
		return err
	}
	if err := s.properties.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// routableID reports whether id survives as one segment of a listing path.
func routableID(id string) bool {
	return !strings.Contains(id, "/") && id != "." && id != ".."
}

func (s *ListingService) checkOwner(ctx context.Context, userID, id string) error {
	p, err := s.properties.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.CreatedBy != userID {
		return ErrForbidden
	}
	return nil
}

func (s *ListingService) markFavorites(ctx context.Context, userID string, properties []models.Property) error {
	if userID == "" || len(properties) == 0 {
		return nil
	}

	ids := make([]string, len(properties))
	for i, p := range properties {
		ids[i] = p.ID
	}
	favMap, err := s.favorites.FavoriteIDs(ctx, userID, ids)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}
	for i := range properties {
		properties[i].IsFavorite = favMap[properties[i].ID]
	}
	return nil
}

// updateField checks one decoded JSON value and returns it in the type the
// listing stores.
type updateField func(v interface{}) (interface{}, bool)

var updateFields = map[string]updateField{
	"title":       nonEmptyString,
	"location":    anyString,
	"type":        anyString,
	"description": anyString,
	"price":       nonNegativeNumber,
	"bedrooms":    count,
	"bathrooms":   count,
	"parking":     nullable(count),
	"area":        nullable(nonNegativeNumber),
	"rating":      nullable(nonNegativeNumber),
	"featured":    boolean,
	"images":      stringList,
	"amenities":   stringList,
}

// normalizeUpdate accepts only known listing fields with well-typed values.
func normalizeUpdate(fields map[string]interface{}) (bson.M, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty update", ErrInvalidInput)
	}

	set := bson.M{}
	for key, v := range fields {
		if slices.Contains(repository.ProtectedFields, key) {
			continue
		}
		check, known := updateFields[key]
		if !known {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidInput, key)
		}
		value, ok := check(v)
		if !ok {
			if key == "price" {
				return nil, fmt.Errorf("%w: %w", ErrInvalidInput, models.ErrInvalidPrice)
			}
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, key)
		}
		set[key] = value
	}
	return set, nil
}

func anyString(v interface{}) (interface{}, bool) {
	s, ok := v.(string)
	return s, ok
}

func nonEmptyString(v interface{}) (interface{}, bool) {
	s, ok := v.(string)
	return s, ok && s != ""
}

func boolean(v interface{}) (interface{}, bool) {
	b, ok := v.(bool)
	return b, ok
}

func nonNegativeNumber(v interface{}) (interface{}, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil, false
	}
	return f, true
}

func count(v interface{}) (interface{}, bool) {
	switch n := v.(type) {
	case int:
		return n, n >= 0
	case float64:
		if n < 0 || n > math.MaxInt32 || n != math.Trunc(n) {
			return nil, false
		}
		return int(n), true
	}
	return nil, false
}

func nullable(check updateField) updateField {
	return func(v interface{}) (interface{}, bool) {
		if v == nil {
			return nil, true
		}
		return check(v)
	}
}

func stringList(v interface{}) (interface{}, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []interface{}:
		out := make([]string, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out[i] = s
		}
		return out, true
	}
	return nil, false
}
