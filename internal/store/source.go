package store

import (
	"context"

	"github.com/abhisek/quizdeck/internal/questions"
)

// BankSource loads a topic from the SQLite bank at Path. The database is
// opened for the duration of one Load.
type BankSource struct {
	Path  string
	Topic string
}

func (s BankSource) String() string { return "bank://" + s.Topic }

func (s BankSource) Load(ctx context.Context) (*questions.Bank, error) {
	st, err := Open(s.Path)
	if err != nil {
		return nil, &questions.LoadError{Source: s.String(), Err: err}
	}
	defer st.Close()

	b, err := st.TopicRepo().Load(ctx, s.Topic)
	if err != nil {
		return nil, &questions.LoadError{Source: s.String(), Err: err}
	}
	return b, nil
}
