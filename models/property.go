package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/dcode-github/property_listing_card/format"
)

var (
	// ErrMissingField marks a record without one of its required fields.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidPrice marks a negative or non-finite price. It is the
	// formatter's error so one check covers records and rendering.
	ErrInvalidPrice = format.ErrInvalidPrice
)

// Property is one listing as stored and as consumed by the card renderer.
// Optional numeric fields are pointers; nil means the value is absent.
type Property struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Location    string    `bson:"location" json:"location"`
	Type        string    `bson:"type" json:"type"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Bedrooms    int       `bson:"bedrooms" json:"bedrooms"`
	Bathrooms   int       `bson:"bathrooms" json:"bathrooms"`
	Parking     *int      `bson:"parking,omitempty" json:"parking,omitempty"`
	Area        *float64  `bson:"area,omitempty" json:"area,omitempty"`
	Images      []string  `bson:"images" json:"images"`
	Featured    bool      `bson:"featured" json:"featured"`
	Rating      *float64  `bson:"rating,omitempty" json:"rating,omitempty"`
	Amenities   []string  `bson:"amenities" json:"amenities"`
	IsFavorite  bool      `bson:"-" json:"isFavorite"`
	CreatedBy   string    `bson:"createdBy" json:"createdBy,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitempty"`
}

// UnmarshalJSON rejects records that omit price. A missing price would
// otherwise decode as a free listing.
func (p *Property) UnmarshalJSON(data []byte) error {
	type plain Property
	aux := struct {
		*plain
		Price *float64 `json:"price"`
	}{plain: (*plain)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Price == nil {
		return fmt.Errorf("%w: price", ErrMissingField)
	}
	p.Price = *aux.Price
	return nil
}

// Validate checks the fields that drive navigation and uniqueness.
func (p Property) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: id", ErrMissingField)
	}
	if p.Title == "" {
		return fmt.Errorf("%w: title", ErrMissingField)
	}
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) || p.Price < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPrice, p.Price)
	}
	return nil
}

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
