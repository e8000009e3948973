package session

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/quizdeck/internal/questions"
)

var (
	// ErrUnknownQuestion is returned when an ID is not in the current deck.
	ErrUnknownQuestion = errors.New("question not in deck")

	// ErrInvalidSelection is returned for out-of-range option indexes or a
	// single-correct answer with other than one index.
	ErrInvalidSelection = errors.New("invalid option selection")
)

// StartSession deals a fresh shuffled deck from list and resets the cursor,
// answers, pending selections and notice. An empty list is valid.
func StartSession(state *SessionState, list []questions.Question) {
	state.Deck = Shuffle(list, state.shuffler)
	state.Cursor = 0
	state.Answers = make(map[questions.ID]Answer)
	state.Pending = make(map[questions.ID]map[int]bool)
	state.Notice = NoticeNone
	state.SessionID = uuid.New().String()
	state.Round++
}

// Current returns the question under the cursor.
func Current(state *SessionState) (questions.Question, bool) {
	if state.Cursor < 0 || state.Cursor >= len(state.Deck) {
		return questions.Question{}, false
	}
	return state.Deck[state.Cursor], true
}

// Lookup returns the deck question with the given ID.
func Lookup(state *SessionState, id questions.ID) (questions.Question, bool) {
	for _, q := range state.Deck {
		if q.ID == id {
			return q, true
		}
	}
	return questions.Question{}, false
}

// IsAnswered reports whether id already has a final answer.
func IsAnswered(state *SessionState, id questions.ID) bool {
	_, ok := state.Answers[id]
	return ok
}

// RecordAnswer stores the first answer for question id. A second call for the
// same question is ignored and returns false. selection holds one index for
// single-correct questions and any set of indexes for multi-correct ones.
func RecordAnswer(state *SessionState, id questions.ID, selection []int) (bool, error) {
	q, ok := Lookup(state, id)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
	}
	if IsAnswered(state, id) {
		return false, nil
	}

	multi := q.IsMultiCorrect()
	if !multi && len(selection) != 1 {
		return false, fmt.Errorf("%w: single-correct question %q needs one option, got %d", ErrInvalidSelection, id, len(selection))
	}
	for _, i := range selection {
		if i < 0 || i >= len(q.Options) {
			return false, fmt.Errorf("%w: option %d of %d", ErrInvalidSelection, i, len(q.Options))
		}
	}

	selected := normalize(selection)
	state.Answers[id] = Answer{
		Selected: selected,
		Correct:  slices.Equal(selected, q.CorrectIndexes()),
		Multi:    multi,
	}
	delete(state.Pending, id)
	state.Notice = NoticeNone
	return true, nil
}

// TogglePending flips option i in the pending set of the current question.
// Only unanswered multi-correct questions have a pending set.
func TogglePending(state *SessionState, i int) bool {
	q, ok := Current(state)
	if !ok || !q.IsMultiCorrect() || IsAnswered(state, q.ID) {
		return false
	}
	if i < 0 || i >= len(q.Options) {
		return false
	}

	set := state.Pending[q.ID]
	if set == nil {
		set = make(map[int]bool)
		state.Pending[q.ID] = set
	}
	if set[i] {
		delete(set, i)
	} else {
		set[i] = true
	}
	return true
}

// PendingSelection returns the pending indexes for id in ascending order.
func PendingSelection(state *SessionState, id questions.ID) []int {
	var out []int
	for i, on := range state.Pending[id] {
		if on {
			out = append(out, i)
		}
	}
	slices.Sort(out)
	return out
}

// SubmitPending finalizes the current multi-correct question with its pending
// selection. An empty selection is recorded as a wrong answer.
func SubmitPending(state *SessionState) bool {
	q, ok := Current(state)
	if !ok || !q.IsMultiCorrect() {
		return false
	}
	recorded, err := RecordAnswer(state, q.ID, PendingSelection(state, q.ID))
	return err == nil && recorded
}

// Advance moves to the next card. At the last card, or on an empty deck, the
// cursor stays put and the end-of-deck notice is raised.
func Advance(state *SessionState) bool {
	if state.Cursor >= len(state.Deck)-1 {
		state.Notice = NoticeEndOfDeck
		return false
	}
	state.Cursor++
	state.Notice = NoticeNone
	return true
}

// Retreat moves to the previous card. No-op on the first card.
func Retreat(state *SessionState) bool {
	if state.Cursor <= 0 {
		return false
	}
	state.Cursor--
	state.Notice = NoticeNone
	return true
}

// Jump moves the cursor to deck index i. Out-of-range indexes are ignored.
func Jump(state *SessionState, i int) bool {
	if i < 0 || i >= len(state.Deck) || i == state.Cursor {
		return false
	}
	state.Cursor = i
	state.Notice = NoticeNone
	return true
}

// RestartFull starts a new round with the whole bank.
func RestartFull(state *SessionState) {
	StartSession(state, state.Bank.Questions())
}

// WrongIDs returns the IDs answered incorrectly in this round.
func WrongIDs(state *SessionState) map[questions.ID]bool {
	ids := make(map[questions.ID]bool)
	for id, a := range state.Answers {
		if a.Wrong() {
			ids[id] = true
		}
	}
	return ids
}

// RestartWrong starts a new round with only the wrongly answered questions,
// in bank order. With no answers, or no wrong ones, it only raises a notice.
func RestartWrong(state *SessionState) bool {
	if len(state.Answers) == 0 {
		state.Notice = NoticeNoAnswersYet
		return false
	}
	wrong := WrongIDs(state)
	if len(wrong) == 0 {
		state.Notice = NoticeNoWrongAnswers
		return false
	}
	StartSession(state, state.Bank.Filter(wrong))
	return true
}

// normalize returns a sorted copy of sel without duplicates.
func normalize(sel []int) []int {
	out := slices.Clone(sel)
	slices.Sort(out)
	return slices.Compact(out)
}
