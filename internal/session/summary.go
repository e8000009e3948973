package session

// RoundSummary counts how the current round went.
type RoundSummary struct {
	Round      int
	Total      int
	Correct    int
	Wrong      int
	Unanswered int
	Accuracy   float64 // Correct / answered, 0 when nothing answered
}

// BuildSummary creates a RoundSummary from the current session state.
func BuildSummary(state *SessionState) RoundSummary {
	s := RoundSummary{
		Round: state.Round,
		Total: len(state.Deck),
	}
	for _, q := range state.Deck {
		a, ok := state.Answers[q.ID]
		switch {
		case !ok:
			s.Unanswered++
		case a.Correct:
			s.Correct++
		default:
			s.Wrong++
		}
	}
	if answered := s.Correct + s.Wrong; answered > 0 {
		s.Accuracy = float64(s.Correct) / float64(answered)
	}
	return s
}
