package cli

import "github.com/charmbracelet/bubbles/key"

// keyMap documents the shortcuts in the help footer. Counter keys are
// interpreted by the gesture classifier; only Help and Quit are matched here.
type keyMap struct {
	RowUp      key.Binding
	RowDown    key.Binding
	StitchUp   key.Binding
	StitchDown key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		RowUp:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "row +1")),
		RowDown:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "row -1")),
		StitchUp:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "stitch +1")),
		StitchDown: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "stitch -1")),
		Reset:      key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "reset all")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RowUp, k.StitchUp, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RowUp, k.RowDown},
		{k.StitchUp, k.StitchDown},
		{k.Reset, k.Help, k.Quit},
	}
}
