package session

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/render"
	sess "github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.err != nil {
		return s.renderFrame(render.ErrorFrame(s.err), width)
	}
	if s.state == nil {
		return renderLoading(width)
	}
	return s.renderFrame(s.renderer.Render(s.state), width)
}

// renderFrame draws a render.Frame top to bottom: title line, progress,
// body, options, feedback and the control row.
func (s *SessionScreen) renderFrame(f render.Frame, width int) string {
	cw := min(width-4, 100)
	var b strings.Builder

	// Title line with position and score on the right.
	left := theme.Title.Render(f.Title)
	if f.Tag != "" {
		left += " " + theme.Tag.Render(f.Tag)
	}
	right := theme.Hint.Render("Question " + f.Position + "   Score " + f.Score)
	gap := max(cw-lipgloss.Width(left)-lipgloss.Width(right), 1)
	b.WriteString(left + strings.Repeat(" ", gap) + right)
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", f.Progress, true, cw).View())
	b.WriteString("\n\n")

	bodyStyle := theme.Body.Width(cw)
	if f.Kind == render.KindError {
		bodyStyle = bodyStyle.Foreground(theme.Error)
	}
	b.WriteString(bodyStyle.Render(f.Body))
	b.WriteString("\n\n")

	if len(f.Options) > 0 {
		q, _ := sess.Current(s.state)
		list := components.OptionList{
			Options:    f.Options,
			Cursor:     s.cursor,
			Checkboxes: q.IsMultiCorrect(),
			Width:      cw,
		}
		b.WriteString(list.View())
		b.WriteString("\n")
	}

	if f.Feedback != "" {
		b.WriteString(feedbackStyle(f, s.state).Width(cw).Render(f.Feedback))
		b.WriteString("\n\n")
	}

	nav := f.Kind == render.KindQuestion
	b.WriteString(components.ButtonRow(
		components.NewButton("←", "Prev", f.PrevEnabled),
		components.NewButton("enter", f.NextLabel, f.NextEnabled),
		components.NewButton("r", "Restart all", f.Kind != render.KindError),
		components.NewButton("w", "Restart wrong", nav),
	))

	if s.jumping {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Go to question: ") + s.jump.View())
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// feedbackStyle colors answer feedback by outcome and notices with the
// notice color.
func feedbackStyle(f render.Frame, state *sess.SessionState) lipgloss.Style {
	if f.IsNotice {
		return theme.Notice
	}
	if state != nil {
		if q, ok := sess.Current(state); ok {
			if a, ok := state.Answers[q.ID]; ok && a.Correct {
				return theme.Correct.Bold(false)
			}
		}
	}
	return theme.Incorrect.Bold(false)
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Loading questions...")
}
