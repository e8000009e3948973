package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/quizdeck/internal/questions"
)

// ErrTopicNotFound is returned when a topic has not been imported.
var ErrTopicNotFound = errors.New("topic not in bank")

// Topic is an imported question set.
type Topic struct {
	Name       string
	Label      string
	Source     string // where the questions were imported from
	Count      int
	ImportedAt time.Time
}

// TopicRepo manages imported topics.
type TopicRepo interface {
	// Import stores bank under topic, replacing any earlier import.
	Import(ctx context.Context, topic Topic, bank *questions.Bank) error

	// List returns all topics ordered by name.
	List(ctx context.Context) ([]Topic, error)

	// Load returns the questions of a topic in import order.
	Load(ctx context.Context, name string) (*questions.Bank, error)

	// Delete removes a topic and its questions. Unknown topics are ignored.
	Delete(ctx context.Context, name string) error
}
