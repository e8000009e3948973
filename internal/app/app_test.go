package app

import (
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/questions"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screens/home"
	"github.com/abhisek/quizdeck/internal/screens/placeholder"
	sessionscreen "github.com/abhisek/quizdeck/internal/screens/session"
	"github.com/abhisek/quizdeck/internal/store"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DefaultTopic: "szamelm",
		QuestionsDir: "/data",
		BankPath:     filepath.Join(t.TempDir(), "bank.db"),
		Topics: map[string]config.Topic{
			"szamelm": {Source: "questions.json", Label: "Számelm"},
			"remote":  {Source: "https://example.com/q.json"},
			"algo":    {Source: "bank://algo", Label: "Algorithms"},
		},
	}
}

func TestResolveSource(t *testing.T) {
	cfg := testConfig(t)

	src, err := ResolveSource(cfg, cfg.Topics["szamelm"])
	require.NoError(t, err)
	assert.Equal(t, questions.FileSource{Path: filepath.Join("/data", "questions.json")}, src)

	src, err = ResolveSource(cfg, cfg.Topics["remote"])
	require.NoError(t, err)
	assert.Equal(t, questions.HTTPSource{URL: "https://example.com/q.json"}, src)

	src, err = ResolveSource(cfg, cfg.Topics["algo"])
	require.NoError(t, err)
	assert.Equal(t, store.BankSource{Path: cfg.BankPath, Topic: "algo"}, src)
}

func TestResolveSourceDefaultBankPath(t *testing.T) {
	cfg := testConfig(t)
	cfg.BankPath = ""
	p := filepath.Join(t.TempDir(), "env.db")
	t.Setenv("QUIZDECK_BANK", p)

	src, err := ResolveSource(cfg, cfg.Topics["algo"])
	require.NoError(t, err)
	assert.Equal(t, store.BankSource{Path: p, Topic: "algo"}, src)
}

func TestAppStartsOnTopicPicker(t *testing.T) {
	m := newAppModel(Options{Config: testConfig(t)})

	assert.Equal(t, 1, m.router.Depth())
	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok, "expected topic picker at the root")
}

func TestAppOpensTopicOnInit(t *testing.T) {
	m := newAppModel(Options{Config: testConfig(t), Topic: "szamelm"})

	s := m.openTopic("szamelm")
	ss, ok := s.(*sessionscreen.SessionScreen)
	require.True(t, ok, "expected a session screen, got %T", s)
	assert.Equal(t, "Quiz practice · Számelm", ss.Title())

	assert.NotNil(t, m.Init())
}

func TestAppUnknownTopicFallsBack(t *testing.T) {
	m := newAppModel(Options{Config: testConfig(t)})

	s := m.openTopic("nope")
	assert.Equal(t, "Quiz practice · Számelm", s.Title())
}

func TestAppEscPopsToPicker(t *testing.T) {
	m := newAppModel(Options{Config: testConfig(t)})
	m.router.Push(m.openTopic("szamelm"))
	require.Equal(t, 2, m.router.Depth())

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok, "esc should pop the session screen")
}

func TestAppEscAtRootDoesNothing(t *testing.T) {
	m := newAppModel(Options{Config: testConfig(t)})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestAppViewWaitsForSize(t *testing.T) {
	m := newAppModel(Options{Config: testConfig(t)})
	v := m.View()
	assert.True(t, v.AltScreen)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	v = next.(AppModel).View()
	assert.True(t, v.AltScreen)
}

func TestAppUnresolvableTopicOffersDefault(t *testing.T) {
	cfg := testConfig(t)
	cfg.BankPath = ""
	// A bank path below a regular file cannot be created.
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	t.Setenv("QUIZDECK_BANK", filepath.Join(blocker, "sub", "bank.db"))

	m := newAppModel(Options{Config: cfg})
	s := m.openTopic("algo")
	p, ok := s.(*placeholder.PlaceholderScreen)
	require.True(t, ok, "expected placeholder, got %T", s)

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "enter should replace the placeholder")
	assert.Equal(t, "Quiz practice · Számelm", msg.Screen.Title())

	// Replacing keeps the stack depth.
	m.router.Push(p)
	m.router.Update(msg)
	assert.Equal(t, 2, m.router.Depth())
	_, ok = m.router.Active().(*sessionscreen.SessionScreen)
	assert.True(t, ok, "expected session screen after replace")
}

func TestAppUnresolvableDefaultTopicHasNoFallback(t *testing.T) {
	cfg := testConfig(t)
	cfg.BankPath = ""
	cfg.DefaultTopic = "algo"
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	t.Setenv("QUIZDECK_BANK", filepath.Join(blocker, "sub", "bank.db"))

	m := newAppModel(Options{Config: cfg})
	s := m.openTopic("algo")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}
