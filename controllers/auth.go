package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dcode-github/property_listing_card/constants"
	"github.com/dcode-github/property_listing_card/models"
)

type credentials struct {
	UserID   string `json:"userID"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func RegisterUser(accounts Accounts, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body credentials
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			logger.Info("Error decoding user data", zap.Error(err))
			writeJSON(w, http.StatusBadRequest, models.APIResponse{Message: constants.ErrTextValidation})
			return
		}

		if err := accounts.Register(r.Context(), body.UserID, body.Email, body.Password); err != nil {
			writeError(w, logger, "Register failed", err)
			return
		}

		writeSuccess(w, http.StatusCreated, constants.SuccessCreated, nil)
	}
}

// LoginUser answers with the token and also sets it as the session cookie
// so browser forms on the card pages are authenticated.
func LoginUser(accounts Accounts, sessionTTL time.Duration, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body credentials
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			logger.Info("Error decoding login credentials", zap.Error(err))
			writeJSON(w, http.StatusBadRequest, models.APIResponse{Message: constants.ErrTextValidation})
			return
		}

		token, err := accounts.Login(r.Context(), body.UserID, body.Password)
		if err != nil {
			writeError(w, logger, "Login failed", err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     constants.CookieSession,
			Value:    token,
			Path:     "/",
			MaxAge:   int(sessionTTL.Seconds()),
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
		logger.Info("User logged in", zap.String("userID", body.UserID))
		writeSuccess(w, http.StatusOK, "", tokenResponse{Token: token})
	}
}
