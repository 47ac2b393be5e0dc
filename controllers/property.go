package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/dcode-github/property_listing_card/constants"
	"github.com/dcode-github/property_listing_card/models"
)

func CreateProperty(listings Listings, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r, logger)
		if !ok {
			return
		}

		var property models.Property
		if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
			writeError(w, logger, "Invalid request body", wrapDecode(err))
			return
		}

		if err := listings.Create(r.Context(), userID, &property); err != nil {
			writeError(w, logger, "Create property failed", err)
			return
		}

		logger.Info("Property created", zap.String("propertyID", property.ID), zap.String("userID", userID))
		writeSuccess(w, http.StatusCreated, constants.SuccessCreated, property)
	}
}

// GetAllProperties lists one page of listings. See repository.ParseQuery for
// the filter syntax.
func GetAllProperties(listings Listings, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r, logger)
		if !ok {
			return
		}

		properties, err := listings.List(r.Context(), userID, r.URL.Query())
		if err != nil {
			writeError(w, logger, "List properties failed", err)
			return
		}
		writeSuccess(w, http.StatusOK, "", properties)
	}
}

func GetProperty(listings Listings, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r, logger)
		if !ok {
			return
		}

		property, err := listings.Get(r.Context(), userID, mux.Vars(r)["id"])
		if err != nil {
			writeError(w, logger, "Get property failed", err)
			return
		}
		writeSuccess(w, http.StatusOK, "", property)
	}
}

func UpdateProperty(listings Listings, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r, logger)
		if !ok {
			return
		}

		var fields map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			writeError(w, logger, "Invalid request body", wrapDecode(err))
			return
		}

		id := mux.Vars(r)["id"]
		property, err := listings.Update(r.Context(), userID, id, fields)
		if err != nil {
			writeError(w, logger, "Update property failed", err)
			return
		}

		logger.Info("Property updated", zap.String("propertyID", id), zap.String("userID", userID))
		writeSuccess(w, http.StatusOK, constants.SuccessUpdated, property)
	}
}

func DeleteProperty(listings Listings, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r, logger)
		if !ok {
			return
		}

		id := mux.Vars(r)["id"]
		if err := listings.Delete(r.Context(), userID, id); err != nil {
			writeError(w, logger, "Delete property failed", err)
			return
		}

		logger.Info("Property deleted", zap.String("propertyID", id), zap.String("userID", userID))
		writeSuccess(w, http.StatusOK, constants.SuccessDeleted, nil)
	}
}
