package ui

// ButtonProps configures a Button. Start from DefaultButtonProps.
type ButtonProps struct {
	Text string

	Variant ButtonVariant
	Size    Size
	Color   Color

	IconPosition IconPosition
	IconOnly     bool

	Loading     bool
	LoadingText string
	Disabled    bool
	Active      bool

	ClassName string
	FullWidth bool
	Rounded   Rounded

	Type           ButtonType
	Form           string
	FormAction     string
	FormMethod     string
	FormNoValidate bool
	FormTarget     string
	Name           string
	Value          string

	AriaLabel       string
	AriaDescribedBy string
	AriaExpanded    bool
	AriaPressed     bool
	AriaControls    string
	TabIndex        int

	Target   LinkTarget
	Rel      string
	Download string

	Tooltip   string
	TestID    string
	AutoFocus bool

	// Link makes the button a navigation button.
	Link *LinkOptions
}

// DefaultButtonProps returns the button defaults:
//
//	Variant       default
//	Size          md
//	Color         default
//	Type          button
//	IconPosition  left
//	Rounded       md
//
// All flags start false.
func DefaultButtonProps() ButtonProps {
	return ButtonProps{
		Variant:      ButtonDefault,
		Size:         SizeMD,
		Color:        ColorDefault,
		Type:         TypeButton,
		IconPosition: IconLeft,
		Rounded:      RoundedMD,
	}
}

func (p ButtonProps) Normalize() ButtonProps {
	d := DefaultButtonProps()
	if p.Variant == "" {
		p.Variant = d.Variant
	}
	if p.Size == "" {
		p.Size = d.Size
	}
	if p.Color == "" {
		p.Color = d.Color
	}
	if p.Type == "" {
		p.Type = d.Type
	}
	if p.IconPosition == "" {
		p.IconPosition = d.IconPosition
	}
	if p.Rounded == "" {
		p.Rounded = d.Rounded
	}
	return p
}

func (p ButtonProps) Kind() Kind { return kindOf(p.Link) }

func (p ButtonProps) IsNavigation() bool { return p.Kind() == Navigation }

// Label is the text shown on the button, honouring the loading state.
func (p ButtonProps) Label() string {
	if p.Loading && p.LoadingText != "" {
		return p.LoadingText
	}
	return p.Text
}

func (p ButtonProps) Validate() error {
	checks := []error{
		oneOf("variant", p.Variant, ButtonDefault, ButtonPrimary, ButtonSecondary, ButtonOutline, ButtonGhost, ButtonLink, ButtonDestructive),
		oneOf("size", p.Size, SizeXS, SizeSM, SizeMD, SizeLG, SizeXL),
		oneOf("color", p.Color, ColorDefault, ColorPrimary, ColorSecondary, ColorSuccess, ColorWarning, ColorError, ColorInfo),
		oneOf("iconPosition", p.IconPosition, IconLeft, IconRight),
		oneOf("rounded", p.Rounded, RoundedNone, RoundedSM, RoundedMD, RoundedLG, RoundedXL, RoundedFull),
		oneOf("type", p.Type, TypeButton, TypeSubmit, TypeReset),
		oneOf("target", p.Target, TargetBlank, TargetSelf, TargetParent, TargetTop),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

type ButtonGroupProps struct {
	Variant     ButtonVariant
	Size        Size
	Orientation Orientation
	Spacing     Spacing
	Attached    bool
	ClassName   string
}

func (p ButtonGroupProps) Validate() error {
	checks := []error{
		oneOf("variant", p.Variant, ButtonDefault, ButtonPrimary, ButtonSecondary, ButtonOutline, ButtonGhost, ButtonLink, ButtonDestructive),
		oneOf("size", p.Size, SizeXS, SizeSM, SizeMD, SizeLG, SizeXL),
		oneOf("orientation", p.Orientation, Horizontal, Vertical),
		oneOf("spacing", p.Spacing, SpacingNone, SpacingSM, SpacingMD, SpacingLG),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
