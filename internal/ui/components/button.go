package components

import (
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// Button is a labelled control with a key shortcut. Disabled buttons are
// drawn dim and their key does nothing.
type Button struct {
	Key     string
	Label   string
	Enabled bool
}

// NewButton creates a new button.
func NewButton(key, label string, enabled bool) Button {
	return Button{
		Key:     key,
		Label:   label,
		Enabled: enabled,
	}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label = b.Key + " " + label
	}
	if b.Enabled {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow renders buttons side by side separated by a space.
func ButtonRow(buttons ...Button) string {
	var s string
	for i, b := range buttons {
		if i > 0 {
			s += " "
		}
		s += b.View()
	}
	return s
}
