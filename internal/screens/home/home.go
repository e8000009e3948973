package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// Topic is one entry of the topic picker.
type Topic struct {
	Key    string
	Label  string
	Source string
}

// Opener builds the quiz screen for a topic key.
type Opener func(key string) screen.Screen

// HomeScreen lets the user pick a topic to practice.
type HomeScreen struct {
	menu   components.Menu
	topics []Topic
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen listing topics, followed by a quit entry.
func New(topics []Topic, open Opener) *HomeScreen {
	items := make([]components.MenuItem, 0, len(topics)+1)
	for _, t := range topics {
		items = append(items, components.MenuItem{
			Label:  t.Label,
			Detail: t.Source,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: open(t.Key)}
				}
			},
			Disabled: open == nil,
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{
		menu:   components.NewMenu(items),
		topics: topics,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Topics"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Choose"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
