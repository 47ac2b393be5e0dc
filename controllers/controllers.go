// Package controllers holds the HTTP handlers for listings, favorites,
// accounts and the rendered card pages.
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/dcode-github/property_listing_card/constants"
	"github.com/dcode-github/property_listing_card/models"
	"github.com/dcode-github/property_listing_card/repository"
	"github.com/dcode-github/property_listing_card/service"
	"github.com/dcode-github/property_listing_card/utils"
)

type ContextKey string

const UserIDKey = ContextKey("userID")

// Listings is the listing logic the handlers depend on.
type Listings interface {
	List(ctx context.Context, userID string, query url.Values) ([]models.Property, error)
	Get(ctx context.Context, userID, id string) (models.Property, error)
	Create(ctx context.Context, userID string, p *models.Property) error
	Update(ctx context.Context, userID, id string, fields map[string]interface{}) (models.Property, error)
	Delete(ctx context.Context, userID, id string) error
}

type Favorites interface {
	Add(ctx context.Context, userID, propertyID string) (models.Favorite, error)
	Remove(ctx context.Context, userID, propertyID string) error
	List(ctx context.Context, userID string) ([]models.Property, error)
}

type Accounts interface {
	Register(ctx context.Context, userID, email, password string) error
	Login(ctx context.Context, userID, password string) (string, error)
}

// UserID returns the authenticated user, or "" for anonymous requests.
func UserID(r *http.Request) string {
	userID, _ := r.Context().Value(UserIDKey).(string)
	return userID
}

// requireUser answers 401 when the request carries no user.
func requireUser(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (string, bool) {
	userID := UserID(r)
	if userID == "" {
		logger.Warn("User ID missing in context", zap.String("path", r.URL.Path))
		writeJSON(w, http.StatusUnauthorized, models.APIResponse{Message: constants.ErrTextUnauthorized})
		return "", false
	}
	return userID, true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, models.APIResponse{Success: true, Message: message, Data: data})
}

// writeError maps err onto a status and a user facing message.
func writeError(w http.ResponseWriter, logger *zap.Logger, msg string, err error) {
	status, text := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err))
	} else {
		logger.Info(msg, zap.Error(err), zap.Int("status", status))
	}
	writeJSON(w, status, models.APIResponse{Message: text})
}

// wrapDecode marks a body that could not be decoded as a client error.
func wrapDecode(err error) error {
	if errors.Is(err, models.ErrMissingField) {
		return err
	}
	return fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, models.ErrMissingField),
		errors.Is(err, models.ErrInvalidPrice):
		return http.StatusBadRequest, constants.ErrTextValidation
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, constants.ErrTextInvalidLogin
	case errors.Is(err, utils.ErrInvalidToken), errors.Is(err, utils.ErrExpiredToken):
		return http.StatusUnauthorized, constants.ErrTextUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, constants.ErrTextForbidden
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, constants.ErrTextNotFound
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, constants.ErrTextConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, constants.ErrTextTimeout
	default:
		return http.StatusInternalServerError, constants.ErrTextServerError
	}
}
