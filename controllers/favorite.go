package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/dcode-github/property_listing_card/constants"
	"github.com/dcode-github/property_listing_card/service"
)

type favoriteRequest struct {
	PropertyID string `json:"propertyID"`
}

func AddFavorite(favorites Favorites, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r, logger)
		if !ok {
			return
		}

		var body favoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, logger, "Invalid request data", wrapDecode(err))
			return
		}

		fav, err := favorites.Add(r.Context(), userID, body.PropertyID)
		if err != nil {
			writeError(w, logger, "Add favorite failed", err)
			return
		}
		writeSuccess(w, http.StatusCreated, constants.SuccessCreated, fav)
	}
}

func GetFavorites(favorites Favorites, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r, logger)
		if !ok {
			return
		}

		properties, err := favorites.List(r.Context(), userID)
		if err != nil {
			writeError(w, logger, "List favorites failed", err)
			return
		}
		writeSuccess(w, http.StatusOK, "", properties)
	}
}

// DeleteFavorite removes the favorite for the listing named by {id}.
func DeleteFavorite(favorites Favorites, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r, logger)
		if !ok {
			return
		}

		if err := favorites.Remove(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
			writeError(w, logger, "Remove favorite failed", err)
			return
		}
		writeSuccess(w, http.StatusOK, constants.SuccessDeleted, nil)
	}
}

// ToggleFavorite flips the favorite state of {id}. A form post with a local
// redirect field is answered with 303 so the card page reloads; anything
// else gets the JSON result.
func ToggleFavorite(toggler service.Toggler, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r, logger)
		if !ok {
			return
		}

		propertyID := mux.Vars(r)["id"]
		result, err := toggler.ToggleFavorite(r.Context(), userID, propertyID)
		if err != nil {
			writeError(w, logger, "Toggle favorite failed", err)
			return
		}

		if redirect := r.PostFormValue("redirect"); isLocalPath(redirect) {
			http.Redirect(w, r, redirect, http.StatusSeeOther)
			return
		}
		writeSuccess(w, http.StatusOK, toggleMessage(result), result)
	}
}

func toggleMessage(res service.ToggleResult) string {
	if !res.Changed {
		return fmt.Sprintf("favorite unchanged for %s", res.PropertyID)
	}
	if res.IsFavorite {
		return constants.SuccessCreated
	}
	return constants.SuccessDeleted
}

// isLocalPath accepts only same-origin absolute paths.
func isLocalPath(p string) bool {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return false
	}
	return !strings.ContainsAny(p, "\r\n")
}
