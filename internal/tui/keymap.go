package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the playground.
type KeyMap struct {
	Quit         key.Binding
	Shuffle      key.Binding
	Increase     key.Binding
	Decrease     key.Binding
	PageIncrease key.Binding
	PageDecrease key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reshuffle rainbow"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→", "increase value"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←", "decrease value"),
		),
		PageIncrease: key.NewBinding(
			key.WithKeys("pgup", "L"),
			key.WithHelp("pgup", "big increase"),
		),
		PageDecrease: key.NewBinding(
			key.WithKeys("pgdown", "H"),
			key.WithHelp("pgdn", "big decrease"),
		),
	}
}
