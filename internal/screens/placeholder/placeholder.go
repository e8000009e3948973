package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// PlaceholderScreen stands in for a topic that cannot be opened, showing
// why. With a fallback set, enter swaps it for the fallback screen.
type PlaceholderScreen struct {
	title   string
	message string

	fallbackLabel string
	fallback      func() screen.Screen
}

var _ screen.Screen = (*PlaceholderScreen)(nil)
var _ screen.KeyHintProvider = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen with the given title and message.
func New(title, message string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, message: message}
}

// WithFallback makes enter replace this screen with the one open builds.
func (p *PlaceholderScreen) WithFallback(label string, open func() screen.Screen) *PlaceholderScreen {
	p.fallbackLabel = label
	p.fallback = open
	return p
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" && p.fallback != nil {
		next := p.fallback()
		return p, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return p, nil
}

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if p.fallback != nil {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Open " + p.fallbackLabel})
	}
	return append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (p *PlaceholderScreen) View(width, height int) string {
	body := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("╌╌ Topic unavailable ╌╌") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-8, 70)).Render(p.message)
	if p.fallback != nil {
		body += "\n\n" + theme.Hint.Render("Press enter to practice "+p.fallbackLabel+" instead.")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
