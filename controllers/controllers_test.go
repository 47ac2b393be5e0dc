package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dcode-github/property_listing_card/components"
	"github.com/dcode-github/property_listing_card/constants"
	"github.com/dcode-github/property_listing_card/format"
	"github.com/dcode-github/property_listing_card/models"
	"github.com/dcode-github/property_listing_card/repository"
	"github.com/dcode-github/property_listing_card/service"
	"github.com/dcode-github/property_listing_card/utils"
)

var nop = zap.NewNop()

func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), UserIDKey, userID))
}

func withID(r *http.Request, id string) *http.Request {
	return mux.SetURLVars(r, map[string]string{"id": id})
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func owned(id, owner string) models.Property {
	return models.Property{ID: id, Title: "Listing " + id, Location: "Lekki", Type: "Flat", Price: 1_500_000, CreatedBy: owner}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: title", service.ErrInvalidInput), http.StatusBadRequest},
		{models.ErrMissingField, http.StatusBadRequest},
		{models.ErrInvalidPrice, http.StatusBadRequest},
		{fmt.Errorf("format price: %w", format.ErrInvalidPrice), http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{utils.ErrExpiredToken, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("get: %w", repository.ErrNotFound), http.StatusNotFound},
		{repository.ErrConflict, http.StatusConflict},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			status, text := statusFor(tc.err)
			assert.Equal(t, tc.status, status)
			assert.NotEmpty(t, text)
		})
	}
}

func TestRequireUser(t *testing.T) {
	rec := httptest.NewRecorder()
	GetAllProperties(newFakeListings(), nop)(rec, httptest.NewRequest(http.MethodGet, "/api/properties", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, constants.ErrTextUnauthorized, resp.Message)
}

func TestCreateProperty(t *testing.T) {
	listings := newFakeListings()
	handler := CreateProperty(listings, nop)

	body := `{"id":"a","title":"New flat","location":"Yaba","type":"Flat","price":750000}`
	rec := httptest.NewRecorder()
	handler(rec, asUser(httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(body)), "ada"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ada", listings.items["a"].CreatedBy)
	assert.Equal(t, constants.SuccessCreated, decodeResponse(t, rec).Message)

	t.Run("missing price", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(`{"id":"b","title":"Free?"}`))
		handler(rec, asUser(req, "ada"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, asUser(httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader("{")), "ada"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, constants.ErrTextValidation, decodeResponse(t, rec).Message)
	})

	t.Run("negative price", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(`{"id":"c","title":"Odd","price":-1}`))
		handler(rec, asUser(req, "ada"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetAllPropertiesPassesQuery(t *testing.T) {
	listings := newFakeListings(owned("a", "ada"), owned("b", "ada"))
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/properties?price[gte]=1000&page=2", nil), "bola")
	rec := httptest.NewRecorder()

	GetAllProperties(listings, nop)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bola", listings.lastUser)
	assert.Equal(t, url.Values{"price[gte]": {"1000"}, "page": {"2"}}, listings.lastQuery)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
}

func TestGetProperty(t *testing.T) {
	listings := newFakeListings(owned("a", "ada"))

	rec := httptest.NewRecorder()
	GetProperty(listings, nop)(rec, withID(asUser(httptest.NewRequest(http.MethodGet, "/api/properties/a", nil), "ada"), "a"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	GetProperty(listings, nop)(rec, withID(asUser(httptest.NewRequest(http.MethodGet, "/api/properties/zzz", nil), "ada"), "zzz"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constants.ErrTextNotFound, decodeResponse(t, rec).Message)
}

func TestUpdateAndDeleteProperty(t *testing.T) {
	listings := newFakeListings(owned("a", "ada"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/properties/a", strings.NewReader(`{"title":"Renamed"}`))
	UpdateProperty(listings, nop)(rec, withID(asUser(req, "bola"), "a"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/properties/a", strings.NewReader(`{"title":"Renamed"}`))
	UpdateProperty(listings, nop)(rec, withID(asUser(req, "ada"), "a"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Renamed", listings.items["a"].Title)

	rec = httptest.NewRecorder()
	DeleteProperty(listings, nop)(rec, withID(asUser(httptest.NewRequest(http.MethodDelete, "/api/properties/a", nil), "ada"), "a"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constants.SuccessDeleted, decodeResponse(t, rec).Message)
	assert.NotContains(t, listings.items, "a")
}

func TestFavoriteHandlers(t *testing.T) {
	favs := &fakeFavorites{set: map[string]bool{}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"propertyID":"a"}`))
	AddFavorite(favs, nop)(rec, asUser(req, "ada"))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"propertyID":"a"}`))
	AddFavorite(favs, nop)(rec, asUser(req, "ada"))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	GetFavorites(favs, nop)(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/favorites", nil), "ada"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeResponse(t, rec).Data, 1)

	rec = httptest.NewRecorder()
	DeleteFavorite(favs, nop)(rec, withID(asUser(httptest.NewRequest(http.MethodDelete, "/api/favorites/a", nil), "ada"), "a"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	DeleteFavorite(favs, nop)(rec, withID(asUser(httptest.NewRequest(http.MethodDelete, "/api/favorites/a", nil), "ada"), "a"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleFavoriteJSON(t *testing.T) {
	favs := &fakeFavorites{set: map[string]bool{}}
	rec := httptest.NewRecorder()

	ToggleFavorite(favs, nop)(rec, withID(asUser(httptest.NewRequest(http.MethodPost, "/api/favorites/a/toggle", nil), "ada"), "a"))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success bool                 `json:"success"`
		Data    service.ToggleResult `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, service.ToggleResult{PropertyID: "a", IsFavorite: true, Changed: true}, resp.Data)
}

func TestToggleFavoriteFormRedirect(t *testing.T) {
	cases := []struct {
		redirect string
		status   int
	}{
		{"/properties?page=2", http.StatusSeeOther},
		{"https://evil.example", http.StatusOK},
		{"//evil.example", http.StatusOK},
		{"", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.redirect, func(t *testing.T) {
			favs := &fakeFavorites{set: map[string]bool{}}
			form := url.Values{"redirect": {tc.redirect}}
			req := httptest.NewRequest(http.MethodPost, "/api/favorites/a/toggle", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()

			ToggleFavorite(favs, nop)(rec, withID(asUser(req, "ada"), "a"))

			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusSeeOther {
				assert.Equal(t, tc.redirect, rec.Header().Get("Location"))
			}
			assert.True(t, favs.set["a"])
		})
	}
}

func TestToggleWithLogToggler(t *testing.T) {
	rec := httptest.NewRecorder()
	req := withID(asUser(httptest.NewRequest(http.MethodPost, "/api/favorites/a/toggle", nil), "ada"), "a")

	ToggleFavorite(service.LogToggler{Logger: nop}, nop)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeResponse(t, rec).Message, "unchanged")
}

func TestRegisterAndLogin(t *testing.T) {
	accounts := &fakeAccounts{users: map[string]string{}}

	rec := httptest.NewRecorder()
	body := `{"userID":"ada","email":"ada@example.com","password":"correct horse"}`
	RegisterUser(accounts, nop)(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	RegisterUser(accounts, nop)(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body)))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	LoginUser(accounts, time.Hour, nop)(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"userID":"ada","password":"correct horse"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.CookieSession, cookies[0].Name)
	assert.Equal(t, "token-for-ada", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	var resp struct {
		Data tokenResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "token-for-ada", resp.Data.Token)

	rec = httptest.NewRecorder()
	LoginUser(accounts, time.Hour, nop)(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"userID":"ada","password":"nope"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, constants.ErrTextInvalidLogin, decodeResponse(t, rec).Message)
}

func TestListingPage(t *testing.T) {
	renderer, err := components.NewRenderer(components.DefaultCardOptions())
	require.NoError(t, err)

	listings := newFakeListings(owned("a", "ada"), owned("b", "ada"))
	listings.favorites["b"] = true
	handler := ListingPage(listings, renderer, nop)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/properties", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, 2, strings.Count(rec.Body.String(), `data-icon="heart-outline"`))
	assert.Equal(t, "", listings.lastUser)

	rec = httptest.NewRecorder()
	handler(rec, asUser(httptest.NewRequest(http.MethodGet, "/properties", nil), "ada"))
	assert.Equal(t, 1, strings.Count(rec.Body.String(), `data-icon="heart-solid"`))

	listings.err = errors.New("mongo down")
	rec = httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/properties", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPropertyCard(t *testing.T) {
	renderer, err := components.NewRenderer(components.DefaultCardOptions())
	require.NoError(t, err)

	broken := owned("c", "ada")
	broken.Title = ""
	listings := newFakeListings(owned("a", "ada"), broken)
	handler := PropertyCard(listings, renderer, nop)

	rec := httptest.NewRecorder()
	handler(rec, withID(httptest.NewRequest(http.MethodGet, "/properties/a/card", nil), "a"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-testid="property-card-a"`)
	assert.Contains(t, rec.Body.String(), "₦1.5M")

	rec = httptest.NewRecorder()
	handler(rec, withID(httptest.NewRequest(http.MethodGet, "/properties/zzz/card", nil), "zzz"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	handler(rec, withID(httptest.NewRequest(http.MethodGet, "/properties/c/card", nil), "c"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "property-card-c")
}

func TestHealthz(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	rec := httptest.NewRecorder()
	Healthz(map[string]Check{"mongo": ok}, nop)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	Healthz(map[string]Check{"mongo": ok, "redis": down}, nop)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp healthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "unavailable", resp.Status)
	assert.Equal(t, "ok", resp.Checks["mongo"])
	assert.Equal(t, "connection refused", resp.Checks["redis"])
}
