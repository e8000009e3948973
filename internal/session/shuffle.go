package session

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/quizdeck/internal/questions"
)

// Shuffler returns a uniform random int in [0, n). *rand.Rand satisfies it.
type Shuffler interface {
	IntN(n int) int
}

// NewShuffler returns a PCG-backed generator. A zero seed uses the clock.
func NewShuffler(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle returns a Fisher–Yates shuffled copy of list.
func Shuffle(list []questions.Question, r Shuffler) []questions.Question {
	deck := make([]questions.Question, len(list))
	copy(deck, list)
	for i := len(deck) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}
