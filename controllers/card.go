package controllers

import (
	"bytes"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/dcode-github/property_listing_card/components"
	"github.com/dcode-github/property_listing_card/constants"
)

const listingPageTitle = "Properties"

// ListingPage renders the card grid. Anonymous visitors see no favorites.
func ListingPage(listings Listings, renderer *components.Renderer, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		properties, err := listings.List(r.Context(), UserID(r), r.URL.Query())
		if err != nil {
			status, text := statusFor(err)
			logger.Error("List properties for page failed", zap.Error(err))
			http.Error(w, text, status)
			return
		}

		var buf bytes.Buffer
		if err := renderer.Listing(&buf, listingPageTitle, properties); err != nil {
			logger.Error("Render listing page failed", zap.Error(err))
			http.Error(w, constants.ErrTextServerError, http.StatusInternalServerError)
			return
		}
		writeHTML(w, buf.Bytes())
	}
}

// PropertyCard renders the card for {id}.
func PropertyCard(listings Listings, renderer *components.Renderer, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		property, err := listings.Get(r.Context(), UserID(r), id)
		if err != nil {
			status, text := statusFor(err)
			if status >= http.StatusInternalServerError {
				logger.Error("Get property for card failed", zap.String("propertyID", id), zap.Error(err))
			}
			http.Error(w, text, status)
			return
		}

		var buf bytes.Buffer
		if err := renderer.Card(&buf, property); err != nil {
			logger.Error("Render card failed", zap.String("propertyID", id), zap.Error(err))
			http.Error(w, constants.ErrTextServerError, http.StatusInternalServerError)
			return
		}
		writeHTML(w, buf.Bytes())
	}
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
