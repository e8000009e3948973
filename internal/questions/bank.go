package questions

import "fmt"

// Bank is the immutable, ordered question store a session draws from.
type Bank struct {
	questions []Question
	index     map[ID]int
}

// NewBank builds a bank from list, preserving order. IDs must be unique.
func NewBank(list []Question) (*Bank, error) {
	b := &Bank{
		questions: make([]Question, len(list)),
		index:     make(map[ID]int, len(list)),
	}
	copy(b.questions, list)
	for i, q := range b.questions {
		if prev, dup := b.index[q.ID]; dup {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateID, q.ID, prev, i)
		}
		b.index[q.ID] = i
	}
	return b, nil
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.questions)
}

// Questions returns a copy of all questions in bank order.
func (b *Bank) Questions() []Question {
	if b == nil {
		return nil
	}
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Get returns the question with the given ID.
func (b *Bank) Get(id ID) (Question, bool) {
	if b == nil {
		return Question{}, false
	}
	i, ok := b.index[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i], true
}

// Filter returns the questions whose IDs are in ids, in bank order.
func (b *Bank) Filter(ids map[ID]bool) []Question {
	if b == nil {
		return nil
	}
	var out []Question
	for _, q := range b.questions {
		if ids[q.ID] {
			out = append(out, q)
		}
	}
	return out
}
