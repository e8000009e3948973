package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/quizdeck/internal/questions"
	"github.com/abhisek/quizdeck/internal/session"
)

type identityShuffler struct{}

func (identityShuffler) IntN(n int) int { return n - 1 }

func newState(t *testing.T, list ...questions.Question) *session.SessionState {
	t.Helper()
	bank, err := questions.NewBank(list)
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}
	state := session.NewSessionState(bank, identityShuffler{})
	session.RestartFull(state)
	return state
}

func plain(s string) string { return s }

func TestRender_WrongSingleAnswer(t *testing.T) {
	state := newState(t, questions.Question{
		ID:       "1",
		Question: "Pick B",
		Options:  []questions.Option{{Text: "A"}, {Text: "B", Correct: true}},
	})
	if _, err := session.RecordAnswer(state, "1", []int{0}); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	f := New(plain).Render(state)

	if !f.Options[1].Correct || f.Options[1].Chosen {
		t.Errorf("option 1 = %+v, want correct and not chosen", f.Options[1])
	}
	if !f.Options[0].Chosen || !f.Options[0].Wrong {
		t.Errorf("option 0 = %+v, want chosen and wrong", f.Options[0])
	}
	for i, o := range f.Options {
		if !o.Disabled {
			t.Errorf("option %d not disabled after answering", i)
		}
	}
	if !f.NextEnabled {
		t.Error("next should be enabled once answered")
	}
	if !strings.Contains(f.Feedback, "B") || !strings.HasPrefix(f.Feedback, "Correct solution: ") {
		t.Errorf("Feedback = %q", f.Feedback)
	}
}

func TestRender_CorrectAnswerWithExplanation(t *testing.T) {
	state := newState(t, questions.Question{
		ID:          "1",
		Question:    "Q",
		Options:     []questions.Option{{Text: "A", Correct: true}, {Text: "B"}},
		Explanation: "  because  ",
	})
	_, _ = session.RecordAnswer(state, "1", []int{0})

	f := New(plain).Render(state)
	if want := "Correct answer!\n\nExplanation: because"; f.Feedback != want {
		t.Errorf("Feedback = %q, want %q", f.Feedback, want)
	}
}

func TestRender_MultiCorrectFeedbackJoinsOptions(t *testing.T) {
	state := newState(t, questions.Question{
		ID:      "1",
		Options: []questions.Option{{Text: "A", Correct: true}, {Text: "B"}, {Text: "C", Correct: true}},
	})
	_, _ = session.RecordAnswer(state, "1", []int{0})

	f := New(plain).Render(state)
	if want := "Correct solution: A | C"; f.Feedback != want {
		t.Errorf("Feedback = %q, want %q", f.Feedback, want)
	}
}

func TestRender_UnansweredMulti(t *testing.T) {
	state := newState(t, questions.Question{
		ID:      "1",
		Options: []questions.Option{{Text: "A", Correct: true}, {Text: "B"}, {Text: "C", Correct: true}},
	})
	session.TogglePending(state, 2)

	f := New(plain).Render(state)
	if f.NextLabel != LabelCheck || !f.NextEnabled {
		t.Errorf("next = %q enabled=%v, want Check enabled", f.NextLabel, f.NextEnabled)
	}
	if f.Options[0].Chosen || !f.Options[2].Chosen {
		t.Errorf("pending not reflected: %+v", f.Options)
	}
	if f.Options[2].Correct || f.Options[2].Disabled {
		t.Errorf("unanswered option revealed: %+v", f.Options[2])
	}
	if f.Feedback != "" {
		t.Errorf("Feedback = %q, want empty", f.Feedback)
	}
}

func TestRender_UnansweredSingle(t *testing.T) {
	state := newState(t,
		questions.Question{ID: "1", Options: []questions.Option{{Text: ""}, {Text: "B", Correct: true}}, Quiz: "Quiz 3"},
		questions.Question{ID: "2", Options: []questions.Option{{Text: "A", Correct: true}, {Text: "B"}}},
	)

	f := New(plain).Render(state)
	if f.NextEnabled || f.NextLabel != LabelNext {
		t.Errorf("next = %q enabled=%v, want Next disabled", f.NextLabel, f.NextEnabled)
	}
	if f.PrevEnabled {
		t.Error("prev enabled on first question")
	}
	if f.Options[0].Text != "—" {
		t.Errorf("empty option text = %q", f.Options[0].Text)
	}
	if f.Title != "Question 1" || f.Tag != "Quiz 3" {
		t.Errorf("title/tag = %q/%q", f.Title, f.Tag)
	}
	if f.Position != "1 / 2" || f.Score != "0 / 2" {
		t.Errorf("position/score = %q/%q", f.Position, f.Score)
	}

	session.Advance(state)
	f = New(plain).Render(state)
	if !f.PrevEnabled || f.Title != "Question 2" {
		t.Errorf("after advance: prev=%v title=%q", f.PrevEnabled, f.Title)
	}
}

func TestRender_NoticeReplacesFeedback(t *testing.T) {
	state := newState(t, questions.Question{ID: "1", Options: []questions.Option{{Text: "A", Correct: true}, {Text: "B"}}})
	_, _ = session.RecordAnswer(state, "1", []int{0})
	session.Advance(state)

	f := New(plain).Render(state)
	if !f.IsNotice || !strings.Contains(f.Feedback, "end of this round") {
		t.Errorf("Feedback = %q notice=%v", f.Feedback, f.IsNotice)
	}
	if !strings.Contains(f.Feedback, "1 of 1 correct") {
		t.Errorf("notice lacks summary: %q", f.Feedback)
	}
}

func TestRender_EmptyDeck(t *testing.T) {
	state := newState(t)

	f := New(plain).Render(state)
	if f.Kind != KindEmpty || f.Title != "No questions" {
		t.Errorf("frame = %+v", f)
	}
	if f.NextEnabled || f.PrevEnabled {
		t.Error("navigation enabled on empty deck")
	}
	if f.Position != "0 / 0" || f.Progress != 0 {
		t.Errorf("position/progress = %q/%f", f.Position, f.Progress)
	}
}

func TestRender_EmptyDeckEndNotice(t *testing.T) {
	state := newState(t)
	session.Advance(state)

	f := New(plain).Render(state)
	if !f.IsNotice {
		t.Fatal("expected a notice after next on an empty deck")
	}
	if !strings.Contains(f.Feedback, "You reached the end of this round (0 of 0 correct, 0 unanswered)") {
		t.Errorf("Feedback = %q", f.Feedback)
	}
}

func TestRender_FormatsText(t *testing.T) {
	state := newState(t, questions.Question{
		ID:       "1",
		Question: "x^2",
		Options:  []questions.Option{{Text: "a_1", Correct: true}, {Text: "b"}},
	})

	f := New(nil).Render(state)
	if f.Body != "x²" || f.Options[0].Text != "a₁" {
		t.Errorf("body/option = %q/%q", f.Body, f.Options[0].Text)
	}
}

func TestErrorFrame(t *testing.T) {
	f := ErrorFrame(errors.New("boom"))
	if f.Kind != KindError || f.Title != "Something went wrong" || f.Body != "boom" {
		t.Errorf("frame = %+v", f)
	}
	if f.NextEnabled || f.PrevEnabled {
		t.Error("navigation enabled on error frame")
	}
}

func TestNoticeText(t *testing.T) {
	state := newState(t, questions.Question{ID: "1", Options: []questions.Option{{Text: "A", Correct: true}, {Text: "B"}}})

	session.RestartWrong(state)
	if got := NoticeText(state); !strings.Contains(got, "Answer a few questions") {
		t.Errorf("no answers notice = %q", got)
	}

	_, _ = session.RecordAnswer(state, "1", []int{0})
	session.RestartWrong(state)
	if got := NoticeText(state); !strings.Contains(got, "No wrong answers") {
		t.Errorf("no wrong notice = %q", got)
	}
}
