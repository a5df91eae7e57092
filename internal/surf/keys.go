package surf

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the container-level key bindings. Everything else is
// forwarded to the focused scene.
type KeyMap struct {
	Back key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
