package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

const (
	titleFull    = "Q U I Z D E C K"
	titleCompact = "quizdeck"
	subtitle     = "multiple-choice practice"
)

// buttonWidth is the fixed width for topic buttons.
const buttonWidth = 26

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderCount(len(h.topics), cw),
	}
	if compact {
		sections = append(sections, renderMenuCompact(h.menu, cw))
	} else {
		sections = append(sections, renderMenu(h.menu, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Highlight).
		Bold(true)

	title := titleFull
	if compact {
		title = titleCompact
	}
	block := style.Render(title)
	if !compact {
		block += "\n" + theme.Hint.Render(subtitle)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

func renderCount(n, cw int) string {
	text := fmt.Sprintf("%d topics", n)
	if n == 1 {
		text = "1 topic"
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Foreground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(text)
}

// renderMenu renders each menu item as a fixed-width button with its source
// beneath.
func renderMenu(m components.Menu, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Highlight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Highlight).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := normalBtn.Foreground(theme.TextDim)

	var buttons []string
	for i, item := range m.Items {
		var btn string
		switch {
		case item.Disabled:
			btn = disabledBtn.Render(item.Label)
		case i == m.Selected:
			btn = selectedBtn.Render("▸ " + item.Label)
		default:
			btn = normalBtn.Render(item.Label)
		}
		if i == m.Selected && item.Detail != "" {
			btn += "\n" + theme.Hint.Render(item.Detail)
		}
		buttons = append(buttons, btn)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for small terminals
// where bordered buttons would overflow.
func renderMenuCompact(m components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(m.View())
}
