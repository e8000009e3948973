package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/mathfmt"
	"github.com/abhisek/quizdeck/internal/questions"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// maxWrongListed caps how many wrong questions the summary prints.
const maxWrongListed = 8

// SummaryScreen displays how the current round is going.
type SummaryScreen struct {
	summary session.RoundSummary
	wrong   []questions.Question
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. wrong lists the wrongly answered
// questions in bank order.
func New(summary session.RoundSummary, wrong []questions.Question) *SummaryScreen {
	return &SummaryScreen{summary: summary, wrong: wrong}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Round Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "s":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		fmt.Sprintf("Round %d", sum.Round)))
	b.WriteString("\n\n")

	accuracy := "n/a"
	if sum.Correct+sum.Wrong > 0 {
		accuracy = fmt.Sprintf("%.0f%%", sum.Accuracy*100)
	}
	stats := fmt.Sprintf("Questions: %d    Correct: %d    Wrong: %d    Unanswered: %d    Accuracy: %s",
		sum.Total, sum.Correct, sum.Wrong, sum.Unanswered, accuracy)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), stats))
	b.WriteString("\n\n")

	if len(s.wrong) == 0 {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), "No wrong answers so far."))
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("To review")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	lineWidth := max(min(width-8, 60), 10)
	for i, q := range s.wrong {
		if i == maxWrongListed {
			more := fmt.Sprintf("… and %d more", len(s.wrong)-maxWrongListed)
			b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), more))
			b.WriteString("\n")
			break
		}
		line := fmt.Sprintf("#%s  %s", q.ID, firstLine(mathfmt.Terminal(q.Question)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).MaxWidth(lineWidth).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
