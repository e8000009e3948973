package session

import (
	"testing"

	"github.com/abhisek/quizdeck/internal/questions"
)

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	list := []questions.Question{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	_ = Shuffle(list, NewShuffler(7))

	for i, want := range []questions.ID{"1", "2", "3"} {
		if list[i].ID != want {
			t.Fatalf("input reordered: %v", list)
		}
	}
}

func TestShuffle_SeedIsDeterministic(t *testing.T) {
	var list []questions.Question
	for _, id := range []questions.ID{"a", "b", "c", "d", "e", "f", "g", "h"} {
		list = append(list, questions.Question{ID: id})
	}

	a := Shuffle(list, NewShuffler(99))
	b := Shuffle(list, NewShuffler(99))
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("same seed gave different decks: %v vs %v", a, b)
		}
	}
}

func TestShuffle_AllPositionsReachable(t *testing.T) {
	list := []questions.Question{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	r := NewShuffler(1)

	firsts := make(map[questions.ID]bool)
	for i := 0; i < 200; i++ {
		firsts[Shuffle(list, r)[0].ID] = true
	}
	if len(firsts) != 3 {
		t.Errorf("only %d distinct first cards in 200 shuffles", len(firsts))
	}
}

func TestShuffle_Empty(t *testing.T) {
	if got := Shuffle(nil, NewShuffler(1)); len(got) != 0 {
		t.Errorf("Shuffle(nil) = %v", got)
	}
}
