package session

import (
	"github.com/abhisek/quizdeck/internal/questions"
)

// bankLoadedMsg is sent when the question bank finished loading.
type bankLoadedMsg struct {
	Bank *questions.Bank
	Err  error
}
