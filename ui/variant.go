package ui

// Kind tells action components from navigation components.
type Kind int

const (
	Action Kind = iota
	Navigation
)

func (k Kind) String() string {
	if k == Navigation {
		return "navigation"
	}
	return "action"
}

// LinkOptions turns a component into a navigation variant. A component is
// navigational exactly when it carries LinkOptions with a non-empty Href.
type LinkOptions struct {
	Href     string
	As       string
	Replace  bool
	Scroll   bool
	Shallow  bool
	Prefetch bool
	Locale   string
}

// NewLink returns link options with the default navigation behaviour
// (prefetch and scroll on).
func NewLink(href string) *LinkOptions {
	return &LinkOptions{Href: href, Scroll: true, Prefetch: true}
}

func kindOf(l *LinkOptions) Kind {
	if l != nil && l.Href != "" {
		return Navigation
	}
	return Action
}
