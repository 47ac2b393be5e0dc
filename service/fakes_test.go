package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dcode-github/property_listing_card/models"
	"github.com/dcode-github/property_listing_card/repository"
)

type memProperties struct {
	mu    sync.Mutex
	items map[string]models.Property
	lists int
	// lastSet is the field set of the last successful Update.
	lastSet bson.M
}

func newMemProperties(props ...models.Property) *memProperties {
	m := &memProperties{items: map[string]models.Property{}}
	for _, p := range props {
		m.items[p.ID] = p
	}
	return m
}

func (m *memProperties) Create(_ context.Context, p *models.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[p.ID]; ok {
		return repository.ErrConflict
	}
	m.items[p.ID] = *p
	return nil
}

func (m *memProperties) Get(_ context.Context, id string) (models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok {
		return models.Property{}, repository.ErrNotFound
	}
	return p, nil
}

func (m *memProperties) List(_ context.Context, _ repository.Query) ([]models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	out := make([]models.Property, 0, len(m.items))
	for _, p := range m.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memProperties) Update(_ context.Context, id, owner string, fields bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok || p.CreatedBy != owner {
		return repository.ErrNotFound
	}
	if v, ok := fields["title"].(string); ok {
		p.Title = v
	}
	if v, ok := fields["price"].(float64); ok {
		p.Price = v
	}
	m.items[id] = p
	m.lastSet = fields
	return nil
}

func (m *memProperties) Delete(_ context.Context, id, owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok || p.CreatedBy != owner {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memFavorites struct {
	mu    sync.Mutex
	props *memProperties
	items map[[2]string]time.Time
}

func newMemFavorites(props *memProperties) *memFavorites {
	return &memFavorites{props: props, items: map[[2]string]time.Time{}}
}

func (m *memFavorites) Add(_ context.Context, userID, propertyID string) (models.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]string{userID, propertyID}
	if _, ok := m.items[key]; ok {
		return models.Favorite{}, repository.ErrConflict
	}
	now := time.Now()
	m.items[key] = now
	return models.Favorite{ID: userID + "/" + propertyID, UserID: userID, PropertyID: propertyID, CreatedAt: now}, nil
}

func (m *memFavorites) Remove(_ context.Context, userID, propertyID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]string{userID, propertyID}
	if _, ok := m.items[key]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, key)
	return nil
}

func (m *memFavorites) Exists(_ context.Context, userID, propertyID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[[2]string{userID, propertyID}]
	return ok, nil
}

func (m *memFavorites) FavoriteIDs(_ context.Context, userID string, propertyIDs []string) (map[string]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]bool{}
	for _, id := range propertyIDs {
		if _, ok := m.items[[2]string{userID, id}]; ok {
			out[id] = true
		}
	}
	return out, nil
}

func (m *memFavorites) ListProperties(ctx context.Context, userID string) ([]models.Property, error) {
	m.mu.Lock()
	var ids []string
	for key := range m.items {
		if key[0] == userID {
			ids = append(ids, key[1])
		}
	}
	m.mu.Unlock()
	sort.Strings(ids)

	out := []models.Property{}
	for _, id := range ids {
		p, err := m.props.Get(ctx, id)
		if err != nil {
			continue
		}
		p.IsFavorite = true
		out = append(out, p)
	}
	return out, nil
}

type memUsers struct {
	mu    sync.Mutex
	items map[string]models.User
}

func newMemUsers() *memUsers { return &memUsers{items: map[string]models.User{}} }

func (m *memUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.items {
		if existing.UserID == u.UserID || existing.Email == u.Email {
			return repository.ErrConflict
		}
	}
	m.items[u.UserID] = *u
	return nil
}

func (m *memUsers) FindByUserID(_ context.Context, userID string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.items[userID]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

type memCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	invalidated int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	return nil
}

func (c *memCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = map[string][]byte{}
	c.invalidated++
	return nil
}

func (c *memCache) invalidations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalidated
}

// slowCache makes invalidation take a while, like a SCAN over a busy Redis.
type slowCache struct {
	*memCache
	delay time.Duration
}

func (c slowCache) Invalidate(ctx context.Context) error {
	time.Sleep(c.delay)
	return c.memCache.Invalidate(ctx)
}
