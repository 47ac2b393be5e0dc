package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/dcode-github/property_listing_card/constants"
	"github.com/dcode-github/property_listing_card/controllers"
	"github.com/dcode-github/property_listing_card/utils"
)

type Auth struct {
	tokens *utils.TokenIssuer
	logger *zap.Logger
}

func NewAuth(tokens *utils.TokenIssuer, logger *zap.Logger) *Auth {
	return &Auth{tokens: tokens, logger: logger}
}

// Require rejects requests without a valid token.
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := tokenFrom(r)
		if !ok {
			a.logger.Info("Missing credentials", zap.String("method", r.Method), zap.String("path", r.URL.Path))
			http.Error(w, "Missing Authorization header", http.StatusUnauthorized)
			return
		}

		claims, err := a.tokens.ValidateJWT(token)
		if err != nil {
			a.logger.Info("Invalid or expired token", zap.Error(err))
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), controllers.UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional attaches the user when a valid token is present and otherwise
// lets the request through anonymously.
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, ok := tokenFrom(r); ok {
			if claims, err := a.tokens.ValidateJWT(token); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), controllers.UserIDKey, claims.UserID))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// tokenFrom reads a Bearer header, falling back to the session cookie.
func tokenFrom(r *http.Request) (string, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		tokenParts := strings.Split(header, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
			return "", false
		}
		return tokenParts[1], true
	}

	cookie, err := r.Cookie(constants.CookieSession)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
