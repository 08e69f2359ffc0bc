package display

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the checklist bindings. It satisfies help.KeyMap.
type keyMap struct {
	Open   key.Binding
	Close  key.Binding
	Toggle key.Binding
	Page   key.Binding
	Up     key.Binding
	Down   key.Binding
	PgUp   key.Binding
	PgDown key.Binding
	Quit   key.Binding
}

func newKeyMap(openKey, menuKey string) keyMap {
	return keyMap{
		Open: key.NewBinding(
			key.WithKeys(openKey),
			key.WithHelp(openKey, "open checklist"),
		),
		Close: key.NewBinding(
			key.WithKeys(menuKey, "esc"),
			key.WithHelp(menuKey+"/esc", "close"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "cooking/crafting"),
		),
		Page: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch page"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PgUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PgDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// setOpen enables the bindings that only make sense while the checklist
// is open, and disables the rest.
func (k *keyMap) setOpen(open, canToggle bool) {
	k.Open.SetEnabled(!open)
	k.Page.SetEnabled(!open)
	k.Close.SetEnabled(open)
	k.Toggle.SetEnabled(open && canToggle)
	k.Up.SetEnabled(open)
	k.Down.SetEnabled(open)
	k.PgUp.SetEnabled(open)
	k.PgDown.SetEnabled(open)
}

// setBrowse enables the cursor keys on a closed recipe page, where they
// move the hovered recipe.
func (k *keyMap) setBrowse(on bool) {
	k.Up.SetEnabled(on)
	k.Down.SetEnabled(on)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Page, k.Toggle, k.Up, k.Down, k.Close, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Page, k.Close},
		{k.Toggle, k.Up, k.Down, k.PgUp, k.PgDown},
		{k.Quit},
	}
}
