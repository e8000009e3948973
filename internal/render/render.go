package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/quizdeck/internal/mathfmt"
	"github.com/abhisek/quizdeck/internal/questions"
	"github.com/abhisek/quizdeck/internal/session"
)

const (
	LabelCheck = "Check"
	LabelNext  = "Next"

	emptyOption = "—"
)

// QuizRenderer is the default Renderer. Format is applied to question bodies,
// option texts and explanations.
type QuizRenderer struct {
	Format mathfmt.Formatter
}

// New returns a QuizRenderer using format, or mathfmt.Terminal when nil.
func New(format mathfmt.Formatter) *QuizRenderer {
	if format == nil {
		format = mathfmt.Terminal
	}
	return &QuizRenderer{Format: format}
}

// Render builds the frame for the current question.
func (r *QuizRenderer) Render(state *session.SessionState) Frame {
	q, ok := session.Current(state)
	if !ok {
		return r.emptyFrame(state)
	}

	answer, answered := state.Answers[q.ID]
	multi := q.IsMultiCorrect()

	var pending []int
	if multi && !answered {
		pending = session.PendingSelection(state, q.ID)
	}

	f := Frame{
		Kind:        KindQuestion,
		Title:       fmt.Sprintf("Question %d", state.Cursor+1),
		Tag:         q.Quiz,
		Body:        r.Format(q.Question),
		PrevEnabled: state.Cursor > 0,
		NextEnabled: answered || multi,
		NextLabel:   LabelNext,
	}
	if multi && !answered {
		f.NextLabel = LabelCheck
	}

	for i, opt := range q.Options {
		text := opt.Text
		if text == "" {
			text = emptyOption
		}
		v := OptionView{Text: r.Format(text), Disabled: answered}
		switch {
		case answered:
			v.Correct = opt.Correct
			v.Chosen = answer.Has(i)
			v.Wrong = v.Chosen && !opt.Correct
		case multi:
			v.Chosen = slices.Contains(pending, i)
		}
		f.Options = append(f.Options, v)
	}

	if answered {
		f.Feedback = r.feedback(q, answer)
	}
	if state.Notice != session.NoticeNone {
		f.Feedback = NoticeText(state)
		f.IsNotice = true
	}

	fillStats(&f, state)
	return f
}

func (r *QuizRenderer) emptyFrame(state *session.SessionState) Frame {
	f := Frame{
		Kind:      KindEmpty,
		Title:     "No questions",
		Body:      "Add questions to the bank and restart.",
		NextLabel: LabelNext,
	}
	if state.Notice != session.NoticeNone {
		f.Feedback = NoticeText(state)
		f.IsNotice = true
	}
	fillStats(&f, state)
	return f
}

// ErrorFrame replaces the question with a load failure message. Navigation
// is disabled.
func ErrorFrame(err error) Frame {
	return Frame{
		Kind:      KindError,
		Title:     "Something went wrong",
		Body:      err.Error(),
		NextLabel: LabelNext,
		Score:     "0 / 0",
		Position:  "0 / 0",
	}
}

// feedback reports the outcome and appends any explanation.
func (r *QuizRenderer) feedback(q questions.Question, a session.Answer) string {
	var base string
	if a.Correct {
		base = "Correct answer!"
	} else {
		texts := q.CorrectTexts()
		for i, t := range texts {
			texts[i] = r.Format(t)
		}
		base = "Correct solution: " + strings.Join(texts, " | ")
	}

	explanation := strings.TrimSpace(q.Explanation)
	if explanation == "" {
		return base
	}
	return base + "\n\nExplanation: " + r.Format(explanation)
}

// NoticeText returns the message for the state's pending notice.
func NoticeText(state *session.SessionState) string {
	switch state.Notice {
	case session.NoticeEndOfDeck:
		s := session.BuildSummary(state)
		return fmt.Sprintf("You reached the end of this round (%d of %d correct, %d unanswered). Restart with all or only the wrong questions.",
			s.Correct, s.Total, s.Unanswered)
	case session.NoticeNoAnswersYet:
		return "Answer a few questions first so there is a list of wrong ones."
	case session.NoticeNoWrongAnswers:
		return "No wrong answers in this round. Go through all of them instead."
	}
	return ""
}

func fillStats(f *Frame, state *session.SessionState) {
	correct, total := session.Score(state)
	pos, _ := session.Position(state)
	f.Score = fmt.Sprintf("%d / %d", correct, total)
	f.Position = fmt.Sprintf("%d / %d", pos, total)
	f.Progress = session.Progress(state)
}
