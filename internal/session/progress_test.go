package session

import (
	"fmt"
	"testing"

	"github.com/abhisek/quizdeck/internal/questions"
)

func TestProgress_FractionOfAnswered(t *testing.T) {
	var list []questions.Question
	for i := 0; i < 4; i++ {
		list = append(list, single(fmt.Sprint(i), 0, 2))
	}

	tests := []struct {
		answered int
		want     float64
	}{
		{0, 0},
		{1, 0.25},
		{2, 0.5},
		{4, 1},
	}

	for _, tt := range tests {
		state := testState(t, list...)
		for i := 0; i < tt.answered; i++ {
			_, _ = RecordAnswer(state, questions.ID(fmt.Sprint(i)), []int{0})
		}
		if got := Progress(state); got != tt.want {
			t.Errorf("Progress after %d answers = %f, want %f", tt.answered, got, tt.want)
		}
	}
}

func TestProgress_Clamped(t *testing.T) {
	state := testState(t, single("1", 0, 2))
	// Answers outside the deck cannot be recorded through RecordAnswer; plant
	// one directly to exercise the clamp.
	state.Answers["1"] = Answer{Selected: []int{0}, Correct: true}
	state.Answers["ghost"] = Answer{Selected: []int{0}}

	if got := Progress(state); got != 1 {
		t.Errorf("Progress = %f, want 1", got)
	}
}

func TestProgress_EmptyDeck(t *testing.T) {
	state := testState(t)
	if got := Progress(state); got != 0 {
		t.Errorf("Progress = %f, want 0", got)
	}
}

func TestScoreAndPosition(t *testing.T) {
	state := testState(t, single("1", 0, 2), single("2", 0, 2), single("3", 0, 2))
	_, _ = RecordAnswer(state, "1", []int{0})
	_, _ = RecordAnswer(state, "2", []int{1})
	Advance(state)

	correct, total := Score(state)
	if correct != 1 || total != 3 {
		t.Errorf("Score = %d/%d, want 1/3", correct, total)
	}

	pos, total := Position(state)
	if pos != 2 || total != 3 {
		t.Errorf("Position = %d/%d, want 2/3", pos, total)
	}
}

func TestPosition_EmptyDeck(t *testing.T) {
	state := testState(t)
	pos, total := Position(state)
	if pos != 0 || total != 0 {
		t.Errorf("Position = %d/%d, want 0/0", pos, total)
	}
}

func TestBuildSummary(t *testing.T) {
	state := testState(t, single("1", 0, 2), single("2", 0, 2), single("3", 0, 2), single("4", 0, 2))
	_, _ = RecordAnswer(state, "1", []int{0})
	_, _ = RecordAnswer(state, "2", []int{0})
	_, _ = RecordAnswer(state, "3", []int{1})

	s := BuildSummary(state)
	if s.Total != 4 || s.Correct != 2 || s.Wrong != 1 || s.Unanswered != 1 {
		t.Errorf("summary = %+v", s)
	}
	if want := 2.0 / 3.0; s.Accuracy != want {
		t.Errorf("Accuracy = %f, want %f", s.Accuracy, want)
	}
	if s.Round != 1 {
		t.Errorf("Round = %d, want 1", s.Round)
	}
}
