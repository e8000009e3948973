// Package render turns session state into a toolkit-free Frame that a view
// layer can draw.
package render

import "github.com/abhisek/quizdeck/internal/session"

// Kind tells the view what sort of frame it is drawing.
type Kind int

const (
	KindQuestion Kind = iota
	KindEmpty
	KindError
)

// OptionView is one answer option as it should be displayed.
type OptionView struct {
	Text     string
	Chosen   bool
	Correct  bool
	Wrong    bool
	Disabled bool
}

// Frame describes every region of the quiz screen.
type Frame struct {
	Kind Kind

	Title string
	Tag   string
	Body  string

	Options []OptionView

	// Feedback is empty until the question is answered. IsNotice marks it
	// as an informational notice rather than answer feedback.
	Feedback string
	IsNotice bool

	Score    string
	Position string
	Progress float64

	NextLabel   string
	NextEnabled bool
	PrevEnabled bool
}

// Renderer produces a Frame from session state.
type Renderer interface {
	Render(state *session.SessionState) Frame
}
