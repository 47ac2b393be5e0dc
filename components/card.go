// Package components renders listing markup on the server.
package components

import (
	"strings"

	"github.com/dcode-github/property_listing_card/constants"
	"github.com/dcode-github/property_listing_card/format"
	"github.com/dcode-github/property_listing_card/models"
	"github.com/dcode-github/property_listing_card/ui"
)

const (
	DefaultPlaceholder  = "/placeholder-property.jpg"
	DefaultMaxAmenities = 3
	DefaultPriceSuffix  = "/month"
)

// CardOptions controls how a Property becomes a card.
type CardOptions struct {
	Formatter    *format.Formatter
	Placeholder  string
	MaxAmenities int
	PriceSuffix  string
	// TogglePath builds the favorite toggle target for a listing id.
	TogglePath func(id string) string
	// Redirect is where the toggle form sends the browser afterwards.
	Redirect string
}

func DefaultCardOptions() CardOptions {
	return CardOptions{
		Formatter:    format.New(),
		Placeholder:  DefaultPlaceholder,
		MaxAmenities: DefaultMaxAmenities,
		PriceSuffix:  DefaultPriceSuffix,
		TogglePath:   constants.RouteFavoriteToggle,
		Redirect:     constants.RouteProperties,
	}
}

func (o CardOptions) withDefaults() CardOptions {
	d := DefaultCardOptions()
	if o.Formatter == nil {
		o.Formatter = d.Formatter
	}
	if o.Placeholder == "" {
		o.Placeholder = d.Placeholder
	}
	if o.MaxAmenities <= 0 {
		o.MaxAmenities = d.MaxAmenities
	}
	if o.PriceSuffix == "" {
		o.PriceSuffix = d.PriceSuffix
	}
	if o.TogglePath == nil {
		o.TogglePath = d.TogglePath
	}
	if o.Redirect == "" {
		o.Redirect = d.Redirect
	}
	return o
}

// CardView is everything the card template shows, already decided.
type CardView struct {
	Props ui.CardProps

	ID          string
	Title       string
	Location    string
	Type        string
	Description string
	Image       string
	Featured    bool
	IsFavorite  bool

	Price       string
	PriceSuffix string

	Rating    string
	HasRating bool

	Bedrooms  int
	Bathrooms int

	Parking    int
	HasParking bool

	Area    string
	HasArea bool

	Amenities     []string
	MoreAmenities int

	ToggleAction string
	Redirect     string

	Details ui.ButtonProps
	Contact ui.ButtonProps
}

// NewCardView applies the card display rules to p. It fails when p lacks
// an id or title or has an invalid price.
func NewCardView(p models.Property, opts CardOptions) (CardView, error) {
	if err := p.Validate(); err != nil {
		return CardView{}, err
	}
	opts = opts.withDefaults()

	price, err := opts.Formatter.Price(p.Price)
	if err != nil {
		return CardView{}, err
	}

	v := CardView{
		ID:           p.ID,
		Title:        p.Title,
		Location:     p.Location,
		Type:         p.Type,
		Description:  p.Description,
		Image:        opts.Placeholder,
		Featured:     p.Featured,
		IsFavorite:   p.IsFavorite,
		Price:        price,
		PriceSuffix:  opts.PriceSuffix,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		ToggleAction: opts.TogglePath(p.ID),
		Redirect:     opts.Redirect,
	}

	if len(p.Images) > 0 && strings.TrimSpace(p.Images[0]) != "" {
		v.Image = p.Images[0]
	}
	if p.Rating != nil {
		v.HasRating = true
		v.Rating = format.Quantity(*p.Rating)
	}
	if p.Parking != nil && *p.Parking != 0 {
		v.HasParking = true
		v.Parking = *p.Parking
	}
	if p.Area != nil {
		v.HasArea = true
		v.Area = format.Quantity(*p.Area)
	}

	v.Amenities = p.Amenities
	if len(p.Amenities) > opts.MaxAmenities {
		v.Amenities = p.Amenities[:opts.MaxAmenities]
		v.MoreAmenities = len(p.Amenities) - opts.MaxAmenities
	}

	v.Props = ui.DefaultCardProps()
	v.Props.Title = p.Title
	v.Props.Hoverable = true
	v.Props.Image = v.Image
	v.Props.ImageAlt = p.Title
	v.Props.ImageFill = true
	v.Props.TestID = "property-card-" + p.ID

	v.Details = ui.DefaultButtonProps()
	v.Details.Text = "View Details"
	v.Details.Variant = ui.ButtonPrimary
	v.Details.FullWidth = true
	v.Details.ClassName = "w-full bg-blue-600 hover:bg-blue-700 text-white py-2 px-4 rounded-lg font-medium transition-colors duration-200"
	v.Details.Link = ui.NewLink(constants.RoutePropertyDetail(p.ID))

	v.Contact = ui.DefaultButtonProps()
	v.Contact.Text = constants.NavContact
	v.Contact.Variant = ui.ButtonSecondary
	v.Contact.ClassName = "bg-gray-100 hover:bg-gray-200 text-gray-700 py-2 px-4 rounded-lg font-medium transition-colors duration-200"

	return v, nil
}
