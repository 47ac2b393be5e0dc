package ui

import "fmt"

// CardProps configures a Card. Start from DefaultCardProps.
type CardProps struct {
	Title       string
	Subtitle    string
	Description string

	Variant     CardVariant
	Size        Size
	Orientation Orientation

	ClassName string
	Shadow    Shadow
	Rounded   Rounded

	Clickable bool
	Hoverable bool

	Image         string
	ImageAlt      string
	ImagePosition ImagePosition
	ImagePriority bool
	ImageFill     bool
	ImageSizes    string

	Loading  bool
	Disabled bool
	Selected bool

	Role            string
	AriaLabel       string
	AriaDescribedBy string
	AriaSelected    bool
	TestID          string

	// Link makes the card a navigation card.
	Link *LinkOptions
}

// DefaultCardProps returns the card defaults:
//
//	Variant      default
//	Size         md
//	Orientation  vertical
//	Shadow       sm
//	Rounded      md
//
// All flags start false. Navigation links made with NewLink prefetch and
// scroll by default.
func DefaultCardProps() CardProps {
	return CardProps{
		Variant:     CardDefault,
		Size:        SizeMD,
		Orientation: Vertical,
		Shadow:      ShadowSM,
		Rounded:     RoundedMD,
	}
}

// Normalize fills empty enumeration fields with their defaults.
func (p CardProps) Normalize() CardProps {
	d := DefaultCardProps()
	if p.Variant == "" {
		p.Variant = d.Variant
	}
	if p.Size == "" {
		p.Size = d.Size
	}
	if p.Orientation == "" {
		p.Orientation = d.Orientation
	}
	if p.Shadow == "" {
		p.Shadow = d.Shadow
	}
	if p.Rounded == "" {
		p.Rounded = d.Rounded
	}
	return p
}

func (p CardProps) Kind() Kind { return kindOf(p.Link) }

func (p CardProps) IsNavigation() bool { return p.Kind() == Navigation }

func (p CardProps) Validate() error {
	checks := []error{
		oneOf("variant", p.Variant, CardDefault, CardOutlined, CardElevated, CardFilled, CardGhost),
		oneOf("size", p.Size, SizeSM, SizeMD, SizeLG, SizeXL),
		oneOf("orientation", p.Orientation, Horizontal, Vertical),
		oneOf("shadow", p.Shadow, ShadowNone, ShadowSM, ShadowMD, ShadowLG, ShadowXL),
		oneOf("rounded", p.Rounded, RoundedNone, RoundedSM, RoundedMD, RoundedLG, RoundedXL, RoundedFull),
		oneOf("imagePosition", p.ImagePosition, ImageTop, ImageBottom, ImageLeft, ImageRight),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

type CardHeaderProps struct {
	Title     string
	Subtitle  string
	ClassName string
}

func (p CardHeaderProps) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("%w: card header title is required", ErrInvalidProp)
	}
	return nil
}

type CardFooterProps struct {
	Align     Align
	ClassName string
}

func (p CardFooterProps) Validate() error {
	return oneOf("align", p.Align, AlignLeft, AlignCenter, AlignRight, AlignSpaceBetween)
}
