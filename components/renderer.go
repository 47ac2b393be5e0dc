package components

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/dcode-github/property_listing_card/constants"
	"github.com/dcode-github/property_listing_card/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the card templates. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	opts CardOptions
}

func NewRenderer(opts CardOptions) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse card templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, opts: opts.withDefaults()}, nil
}

// Card writes the markup for one listing. Nothing is written when the
// record is invalid.
func (r *Renderer) Card(w io.Writer, p models.Property) error {
	view, err := NewCardView(p, r.opts)
	if err != nil {
		return fmt.Errorf("card %q: %w", p.ID, err)
	}
	return r.execute(w, "card", view)
}

type listingPage struct {
	Title string
	Empty string
	Cards []CardView
}

// Listing writes a full page with a grid of cards.
func (r *Renderer) Listing(w io.Writer, title string, props []models.Property) error {
	page := listingPage{
		Title: fmt.Sprintf(constants.SEOTitleTemplate, title),
		Empty: constants.EmptyNoResults,
		Cards: make([]CardView, 0, len(props)),
	}
	for _, p := range props {
		view, err := NewCardView(p, r.opts)
		if err != nil {
			return fmt.Errorf("card %q: %w", p.ID, err)
		}
		page.Cards = append(page.Cards, view)
	}
	return r.execute(w, "listing", page)
}

func (r *Renderer) execute(w io.Writer, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute %s template: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
