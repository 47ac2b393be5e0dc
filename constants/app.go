package constants

const (
	AppName        = "My Next.js App"
	AppDescription = "A modern web application built with Next.js"
	AppVersion     = "1.0.0"
	AppAuthor      = "Your Name"
)

var AppKeywords = []string{"nextjs", "react", "typescript", "tailwind"}

// SEO
const (
	SEODefaultTitle       = "My Next.js App"
	SEOTitleTemplate      = "%s | My Next.js App"
	SEODefaultDescription = "A modern web application built with Next.js"
	SEODefaultSiteURL     = "https://example.com"
	SEOTwitterHandle      = "@yourusername"
)

// Pagination
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	PostsPerPage    = 12
	CommentsPerPage = 20
)

// Upload limits
const (
	MaxFileSize  = 10 * 1024 * 1024
	MaxImageSize = 5 * 1024 * 1024
)

var (
	AllowedImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}
	AllowedFileTypes  = []string{"application/pdf", "application/msword", "text/plain"}
)

// Component sizes, variants and colors as used by the ui package.
const (
	SizeXS = "xs"
	SizeSM = "sm"
	SizeMD = "md"
	SizeLG = "lg"
	SizeXL = "xl"

	VariantDefault     = "default"
	VariantPrimary     = "primary"
	VariantSecondary   = "secondary"
	VariantOutline     = "outline"
	VariantGhost       = "ghost"
	VariantLink        = "link"
	VariantDestructive = "destructive"

	ColorDefault   = "default"
	ColorPrimary   = "primary"
	ColorSecondary = "secondary"
	ColorSuccess   = "success"
	ColorWarning   = "warning"
	ColorError     = "error"
	ColorInfo      = "info"
)

// Breakpoints, matching Tailwind defaults.
const (
	BreakpointSM  = "640px"
	BreakpointMD  = "768px"
	BreakpointLG  = "1024px"
	BreakpointXL  = "1280px"
	Breakpoint2XL = "1536px"
)

// Z-index layers
const (
	ZIndexDropdown      = 1000
	ZIndexSticky        = 1020
	ZIndexFixed         = 1030
	ZIndexModalBackdrop = 1040
	ZIndexModal         = 1050
	ZIndexPopover       = 1060
	ZIndexTooltip       = 1070
	ZIndexToast         = 1080
)

// Animation durations in milliseconds.
const (
	AnimationFast   = 150
	AnimationNormal = 200
	AnimationSlow   = 300
	AnimationSlower = 500
)
