package session

import (
	"github.com/abhisek/quizdeck/internal/questions"
)

// Notice is an informational message raised by a transition. It is never an
// error; the renderer shows it in the feedback region.
type Notice int

const (
	NoticeNone           Notice = iota
	NoticeEndOfDeck             // Advance at the last card
	NoticeNoAnswersYet          // RestartWrong before any answer
	NoticeNoWrongAnswers        // RestartWrong with a clean round
)

// Answer is the final answer recorded for one question.
type Answer struct {
	// Selected holds the chosen option indexes in ascending order.
	// Single-correct questions always have exactly one.
	Selected []int

	// Correct is true when Selected equals the question's correct indexes.
	Correct bool

	// Multi is true when the question had more than one correct option.
	Multi bool
}

// Wrong is the complement of Correct.
func (a Answer) Wrong() bool {
	return !a.Correct
}

// Has reports whether option index i was selected.
func (a Answer) Has(i int) bool {
	for _, s := range a.Selected {
		if s == i {
			return true
		}
	}
	return false
}

// SessionState is the mutable state of one quiz run.
type SessionState struct {
	// Bank is the full question store. Never mutated.
	Bank *questions.Bank

	// Deck is the shuffled list of questions for this round.
	Deck []questions.Question

	// Cursor is the index into Deck of the displayed question.
	Cursor int

	// Answers holds the first answer per question ID.
	Answers map[questions.ID]Answer

	// Pending holds tentative selections for unanswered multi-correct questions.
	Pending map[questions.ID]map[int]bool

	// Notice is the latest informational message, if any.
	Notice Notice

	// SessionID identifies the current round in logs.
	SessionID string

	// Round counts StartSession calls on this state.
	Round int

	shuffler Shuffler
}

// NewSessionState creates state for bank. Call StartSession to deal a deck.
// A nil shuffler uses a time-seeded generator.
func NewSessionState(bank *questions.Bank, shuffler Shuffler) *SessionState {
	if shuffler == nil {
		shuffler = NewShuffler(0)
	}
	return &SessionState{
		Bank:     bank,
		Answers:  make(map[questions.ID]Answer),
		Pending:  make(map[questions.ID]map[int]bool),
		shuffler: shuffler,
	}
}
