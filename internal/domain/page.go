package domain

// HostPage is the host menu that is active when the checklist opens.
type HostPage int

const (
	PageNone HostPage = iota
	PageCooking
	PageCrafting
)

// String returns a human-readable page name.
func (p HostPage) String() string {
	switch p {
	case PageCooking:
		return "cooking"
	case PageCrafting:
		return "crafting"
	default:
		return "none"
	}
}

// Context maps the page to the checklist's opening context. Recipe pages
// pin their own sub-mode; everything else leaves the checklist free.
func (p HostPage) Context() OpeningContext {
	switch p {
	case PageCooking:
		return FixedMode(ModeCooking)
	case PageCrafting:
		return FixedMode(ModeCrafting)
	default:
		return Unconstrained()
	}
}

// Next cycles through the pages in declaration order.
func (p HostPage) Next() HostPage {
	return (p + 1) % (PageCrafting + 1)
}

var pageNames = map[string]HostPage{
	"none":     PageNone,
	"cooking":  PageCooking,
	"crafting": PageCrafting,
}

// PageFromString converts a page name to a HostPage.
// Returns PageNone for unrecognized names.
func PageFromString(name string) HostPage {
	if p, ok := pageNames[name]; ok {
		return p
	}
	return PageNone
}

// Page maps an opening context back to the host page it came from.
func (c OpeningContext) Page() HostPage {
	if !c.Fixed {
		return PageNone
	}
	if c.Mode == ModeCrafting {
		return PageCrafting
	}
	return PageCooking
}
