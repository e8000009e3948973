package questions

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned when two questions share an ID.
	ErrDuplicateID = errors.New("duplicate question id")

	// ErrBadStatus is returned when a remote bank answers with a non-2xx status.
	ErrBadStatus = errors.New("unexpected response status")
)

// SchemaError indicates the document is not a valid question bank.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid question bank: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// LoadError wraps any failure to load a bank from a source.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load questions from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
