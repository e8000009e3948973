package session

// Score returns the number of correct answers and the deck size.
func Score(state *SessionState) (correct, total int) {
	for _, a := range state.Answers {
		if a.Correct {
			correct++
		}
	}
	return correct, len(state.Deck)
}

// Progress returns answered/total clamped to [0, 1]. An empty deck is 0.
func Progress(state *SessionState) float64 {
	total := len(state.Deck)
	if total == 0 {
		return 0
	}
	p := float64(len(state.Answers)) / float64(total)
	if p > 1 {
		return 1
	}
	return p
}

// Position returns the 1-based cursor position and the deck size.
// An empty deck reports 0 of 0.
func Position(state *SessionState) (pos, total int) {
	if len(state.Deck) == 0 {
		return 0, 0
	}
	return state.Cursor + 1, len(state.Deck)
}
