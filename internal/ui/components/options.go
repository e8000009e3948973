package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/render"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// OptionList draws the answer options of one question.
type OptionList struct {
	Options []render.OptionView
	Cursor  int
	// Checkboxes draws a box per option, used for questions with several
	// correct options.
	Checkboxes bool
	Width      int
}

// View renders the option list.
func (l OptionList) View() string {
	var b strings.Builder
	for i, opt := range l.Options {
		pointer := "  "
		if i == l.Cursor && !opt.Disabled {
			pointer = "▸ "
		}

		mark := ""
		if l.Checkboxes {
			mark = "[ ] "
			if opt.Chosen {
				mark = "[x] "
			}
		}

		status := ""
		switch {
		case opt.Wrong:
			status = " ✗"
		case opt.Correct:
			status = " ✓"
		}

		prefix := fmt.Sprintf("%s%d) %s", pointer, i+1, mark)
		text := lipgloss.NewStyle().
			Width(max(l.Width-lipgloss.Width(prefix)-2, 10)).
			Render(opt.Text + status)
		line := lipgloss.JoinHorizontal(lipgloss.Top, prefix, text)

		b.WriteString(optionStyle(opt, i == l.Cursor).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func optionStyle(opt render.OptionView, atCursor bool) lipgloss.Style {
	switch {
	case opt.Wrong:
		return theme.Incorrect
	case opt.Correct:
		return theme.Correct
	case opt.Chosen:
		return theme.Chosen
	case opt.Disabled:
		return theme.Disabled
	case atCursor:
		return theme.Cursor
	}
	return theme.Unselected
}
