package domain

// OpeningContext describes the host page the checklist was opened from.
// A fixed context pins the mode and disables toggling.
type OpeningContext struct {
	Fixed bool
	Mode  Mode
}

// Unconstrained is the context of a checklist opened outside a recipe page.
func Unconstrained() OpeningContext { return OpeningContext{} }

// FixedMode is the context of a checklist opened from a recipe page.
func FixedMode(m Mode) OpeningContext { return OpeningContext{Fixed: true, Mode: m} }

// String returns a human-readable context.
func (c OpeningContext) String() string {
	if c.Fixed {
		return "fixed:" + c.Mode.String()
	}
	return "unconstrained"
}

// ChecklistState tracks the lifecycle of a checklist session.
type ChecklistState int

const (
	ChecklistClosed ChecklistState = iota
	ChecklistOpen
)

// String returns a human-readable checklist state.
func (s ChecklistState) String() string {
	switch s {
	case ChecklistClosed:
		return "closed"
	case ChecklistOpen:
		return "open"
	default:
		return "unknown"
	}
}
