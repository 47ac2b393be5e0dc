// Package ui describes the configurable props of the Card and Button
// components and their defaults.
package ui

import (
	"errors"
	"fmt"

	"github.com/dcode-github/property_listing_card/constants"
)

// ErrInvalidProp is returned by Validate for unknown enumeration values.
var ErrInvalidProp = errors.New("invalid prop")

type CardVariant string

const (
	CardDefault  CardVariant = "default"
	CardOutlined CardVariant = "outlined"
	CardElevated CardVariant = "elevated"
	CardFilled   CardVariant = "filled"
	CardGhost    CardVariant = "ghost"
)

type ButtonVariant string

const (
	ButtonDefault     ButtonVariant = constants.VariantDefault
	ButtonPrimary     ButtonVariant = constants.VariantPrimary
	ButtonSecondary   ButtonVariant = constants.VariantSecondary
	ButtonOutline     ButtonVariant = constants.VariantOutline
	ButtonGhost       ButtonVariant = constants.VariantGhost
	ButtonLink        ButtonVariant = constants.VariantLink
	ButtonDestructive ButtonVariant = constants.VariantDestructive
)

// Size is shared by cards (sm..xl) and buttons (xs..xl).
type Size string

const (
	SizeXS Size = constants.SizeXS
	SizeSM Size = constants.SizeSM
	SizeMD Size = constants.SizeMD
	SizeLG Size = constants.SizeLG
	SizeXL Size = constants.SizeXL
)

type Color string

const (
	ColorDefault   Color = constants.ColorDefault
	ColorPrimary   Color = constants.ColorPrimary
	ColorSecondary Color = constants.ColorSecondary
	ColorSuccess   Color = constants.ColorSuccess
	ColorWarning   Color = constants.ColorWarning
	ColorError     Color = constants.ColorError
	ColorInfo      Color = constants.ColorInfo
)

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

type Shadow string

const (
	ShadowNone Shadow = "none"
	ShadowSM   Shadow = "sm"
	ShadowMD   Shadow = "md"
	ShadowLG   Shadow = "lg"
	ShadowXL   Shadow = "xl"
)

type Rounded string

const (
	RoundedNone Rounded = "none"
	RoundedSM   Rounded = "sm"
	RoundedMD   Rounded = "md"
	RoundedLG   Rounded = "lg"
	RoundedXL   Rounded = "xl"
	RoundedFull Rounded = "full"
)

type ImagePosition string

const (
	ImageTop    ImagePosition = "top"
	ImageBottom ImagePosition = "bottom"
	ImageLeft   ImagePosition = "left"
	ImageRight  ImagePosition = "right"
)

type IconPosition string

const (
	IconLeft  IconPosition = "left"
	IconRight IconPosition = "right"
)

type ButtonType string

const (
	TypeButton ButtonType = "button"
	TypeSubmit ButtonType = "submit"
	TypeReset  ButtonType = "reset"
)

type LinkTarget string

const (
	TargetBlank  LinkTarget = "_blank"
	TargetSelf   LinkTarget = "_self"
	TargetParent LinkTarget = "_parent"
	TargetTop    LinkTarget = "_top"
)

type Align string

const (
	AlignLeft         Align = "left"
	AlignCenter       Align = "center"
	AlignRight        Align = "right"
	AlignSpaceBetween Align = "space-between"
)

type Spacing string

const (
	SpacingNone Spacing = "none"
	SpacingSM   Spacing = "sm"
	SpacingMD   Spacing = "md"
	SpacingLG   Spacing = "lg"
)

// oneOf reports an error naming field when v is set and not in allowed.
// The empty value is always accepted; Normalize fills it.
func oneOf[T ~string](field string, v T, allowed ...T) error {
	if v == "" {
		return nil
	}
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q", ErrInvalidProp, field, v)
}
