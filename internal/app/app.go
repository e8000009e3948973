package app

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/home"
	"github.com/abhisek/quizdeck/internal/screens/placeholder"
	sessionscreen "github.com/abhisek/quizdeck/internal/screens/session"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Config *config.Config
	Logger *zap.Logger

	// Topic opens this topic right away. Unknown keys fall back to the
	// default topic. Empty shows the topic picker only.
	Topic string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

// newAppModel creates a new AppModel with the topic picker at the bottom of
// the stack.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	m := AppModel{opts: opts}

	var topics []home.Topic
	for _, key := range opts.Config.TopicKeys() {
		_, t := opts.Config.Topic(key)
		topics = append(topics, home.Topic{
			Key:    key,
			Label:  config.Label(key, t),
			Source: t.Source,
		})
	}
	m.router = router.New(home.New(topics, m.openTopic))
	return m
}

// openTopic builds the quiz screen for a topic key.
func (m AppModel) openTopic(key string) screen.Screen {
	cfg := m.opts.Config
	resolved, t := cfg.Topic(key)
	label := config.Label(resolved, t)
	if resolved != key {
		m.opts.Logger.Warn("unknown topic, using default", zap.String("topic", key), zap.String("default", resolved))
	}

	src, err := ResolveSource(cfg, t)
	if err != nil {
		m.opts.Logger.Error("resolve topic source", zap.String("topic", resolved), zap.Error(err))
		p := placeholder.New(label, err.Error())
		if def := cfg.DefaultTopic; resolved != def {
			p.WithFallback(config.Label(def, cfg.Topics[def]), func() screen.Screen {
				return m.openTopic(def)
			})
		}
		return p
	}
	return sessionscreen.New(sessionscreen.Options{
		Source:      src,
		Label:       label,
		Seed:        cfg.Shuffle.Seed,
		LoadTimeout: cfg.LoadTimeout,
		Logger:      m.opts.Logger,
	})
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Init()}
	if m.opts.Topic != "" {
		s := m.openTopic(m.opts.Topic)
		cmds = append(cmds, func() tea.Msg { return router.PushScreenMsg{Screen: s} })
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturingInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Config == nil {
		return errors.New("app: nil config")
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
