package controllers

import (
	"context"
	"net/url"

	"github.com/dcode-github/property_listing_card/models"
	"github.com/dcode-github/property_listing_card/repository"
	"github.com/dcode-github/property_listing_card/service"
)

type fakeListings struct {
	items     map[string]models.Property
	favorites map[string]bool
	err       error
	lastQuery url.Values
	lastUser  string
}

func newFakeListings(props ...models.Property) *fakeListings {
	f := &fakeListings{items: map[string]models.Property{}, favorites: map[string]bool{}}
	for _, p := range props {
		f.items[p.ID] = p
	}
	return f
}

func (f *fakeListings) List(_ context.Context, userID string, query url.Values) ([]models.Property, error) {
	f.lastQuery, f.lastUser = query, userID
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Property{}
	for _, id := range []string{"a", "b", "c"} {
		if p, ok := f.items[id]; ok {
			p.IsFavorite = userID != "" && f.favorites[id]
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeListings) Get(_ context.Context, userID, id string) (models.Property, error) {
	f.lastUser = userID
	if f.err != nil {
		return models.Property{}, f.err
	}
	p, ok := f.items[id]
	if !ok {
		return models.Property{}, repository.ErrNotFound
	}
	p.IsFavorite = userID != "" && f.favorites[id]
	return p, nil
}

func (f *fakeListings) Create(_ context.Context, userID string, p *models.Property) error {
	if f.err != nil {
		return f.err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	p.CreatedBy = userID
	f.items[p.ID] = *p
	return nil
}

func (f *fakeListings) Update(_ context.Context, userID, id string, fields map[string]interface{}) (models.Property, error) {
	p, ok := f.items[id]
	if !ok {
		return models.Property{}, repository.ErrNotFound
	}
	if p.CreatedBy != userID {
		return models.Property{}, service.ErrForbidden
	}
	if title, ok := fields["title"].(string); ok {
		p.Title = title
	}
	f.items[id] = p
	return p, nil
}

func (f *fakeListings) Delete(_ context.Context, userID, id string) error {
	p, ok := f.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	if p.CreatedBy != userID {
		return service.ErrForbidden
	}
	delete(f.items, id)
	return nil
}

type fakeFavorites struct {
	set map[string]bool
}

func (f *fakeFavorites) Add(_ context.Context, userID, propertyID string) (models.Favorite, error) {
	if propertyID == "" {
		return models.Favorite{}, service.ErrInvalidInput
	}
	if f.set[propertyID] {
		return models.Favorite{}, repository.ErrConflict
	}
	f.set[propertyID] = true
	return models.Favorite{UserID: userID, PropertyID: propertyID}, nil
}

func (f *fakeFavorites) Remove(_ context.Context, _, propertyID string) error {
	if !f.set[propertyID] {
		return repository.ErrNotFound
	}
	delete(f.set, propertyID)
	return nil
}

func (f *fakeFavorites) List(_ context.Context, _ string) ([]models.Property, error) {
	out := []models.Property{}
	for id := range f.set {
		out = append(out, models.Property{ID: id, Title: id, IsFavorite: true})
	}
	return out, nil
}

func (f *fakeFavorites) ToggleFavorite(_ context.Context, _, propertyID string) (service.ToggleResult, error) {
	if f.set[propertyID] {
		delete(f.set, propertyID)
		return service.ToggleResult{PropertyID: propertyID, Changed: true}, nil
	}
	f.set[propertyID] = true
	return service.ToggleResult{PropertyID: propertyID, IsFavorite: true, Changed: true}, nil
}

type fakeAccounts struct {
	users map[string]string
}

func (f *fakeAccounts) Register(_ context.Context, userID, _, password string) error {
	if userID == "" {
		return service.ErrInvalidInput
	}
	if _, ok := f.users[userID]; ok {
		return repository.ErrConflict
	}
	f.users[userID] = password
	return nil
}

func (f *fakeAccounts) Login(_ context.Context, userID, password string) (string, error) {
	if pw, ok := f.users[userID]; !ok || pw != password {
		return "", service.ErrInvalidCredentials
	}
	return "token-for-" + userID, nil
}
