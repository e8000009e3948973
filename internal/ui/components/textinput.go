package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumberInput wraps bubbles/textinput and accepts digits only.
type NumberInput struct {
	Model textinput.Model
}

// NewNumberInput creates a focused number input.
func NewNumberInput(placeholder string, maxDigits int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "# "
	if maxDigits > 0 {
		ti.CharLimit = maxDigits
	}
	ti.Focus()
	return NumberInput{Model: ti}
}

// Init returns the initial command.
func (n NumberInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Update handles messages, dropping non-digit characters.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the input.
func (n NumberInput) View() string {
	return n.Model.View()
}

// Value returns the input as an integer.
func (n NumberInput) Value() (int, error) {
	return strconv.Atoi(n.Model.Value())
}
