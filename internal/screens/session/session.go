package session

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/mathfmt"
	"github.com/abhisek/quizdeck/internal/questions"
	"github.com/abhisek/quizdeck/internal/render"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/summary"
	sess "github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// Options configures a SessionScreen.
type Options struct {
	Source      questions.Source
	Label       string
	Seed        uint64        // 0 seeds from the clock
	LoadTimeout time.Duration // 0 means no timeout
	Renderer    render.Renderer
	Logger      *zap.Logger
}

// SessionScreen implements screen.Screen for one quiz run over a topic.
type SessionScreen struct {
	source   questions.Source
	label    string
	seed     uint64
	timeout  time.Duration
	renderer render.Renderer
	log      *zap.Logger
	keys     keyMap

	state  *sess.SessionState
	err    error
	cursor int
	shown  questions.ID

	jumping bool
	jump    components.NumberInput
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.InputCapturer = (*SessionScreen)(nil)

// New creates a new SessionScreen.
func New(opts Options) *SessionScreen {
	r := opts.Renderer
	if r == nil {
		r = render.New(mathfmt.Terminal)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionScreen{
		source:   opts.Source,
		label:    opts.Label,
		seed:     opts.Seed,
		timeout:  opts.LoadTimeout,
		renderer: r,
		log:      log.With(zap.String("topic", opts.Label)),
		keys:     defaultKeyMap(),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.loadBank()
}

func (s *SessionScreen) Title() string {
	return "Quiz practice · " + s.label
}

func (s *SessionScreen) CapturingInput() bool {
	return s.jumping
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.jumping:
		return hints(s.keys.Confirm, s.keys.Cancel)
	case s.err != nil:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case s.state == nil:
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}

	next := s.keys.Next.Help()
	f := s.renderer.Render(s.state)
	out := hints(s.keys.Select)
	out = append(out, layout.KeyHint{Key: next.Key, Description: f.NextLabel})
	out = append(out, hints(s.keys.Prev, s.keys.RestartAll, s.keys.RestartWrong, s.keys.Summary, s.keys.Jump)...)
	return append(out, layout.KeyHint{Key: "esc", Description: "back"})
}

func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bankLoadedMsg:
		return s.handleLoaded(msg)

	case tea.KeyMsg:
		if s.jumping {
			return s.handleJumpKey(msg)
		}
		return s.handleKey(msg)
	}

	if s.jumping {
		var cmd tea.Cmd
		s.jump, cmd = s.jump.Update(msg)
		return s, cmd
	}
	return s, nil
}

// loadBank loads the question bank asynchronously.
func (s *SessionScreen) loadBank() tea.Cmd {
	src := s.source
	timeout := s.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		bank, err := src.Load(ctx)
		return bankLoadedMsg{Bank: bank, Err: err}
	}
}

func (s *SessionScreen) handleLoaded(msg bankLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.err = msg.Err
		s.log.Error("load questions", zap.Stringer("source", s.source), zap.Error(msg.Err))
		return s, nil
	}

	for _, w := range questions.Lint(msg.Bank) {
		s.log.Warn("question bank lint", zap.String("question_id", string(w.ID)), zap.String("warning", w.Message))
	}

	s.state = sess.NewSessionState(msg.Bank, sess.NewShuffler(s.seed))
	sess.RestartFull(s.state)
	s.log.Info("session started",
		zap.String("session_id", s.state.SessionID),
		zap.Stringer("source", s.source),
		zap.Int("questions", msg.Bank.Len()))
	s.sync()
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Loading and load failure: navigation is disabled.
	if s.err != nil || s.state == nil {
		return s, nil
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, s.keys.Select):
		s.choose(int(msg.String()[0] - '1'))
	case key.Matches(msg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, s.keys.Down):
		if q, ok := sess.Current(s.state); ok && s.cursor < len(q.Options)-1 {
			s.cursor++
		}
	case key.Matches(msg, s.keys.Toggle):
		s.choose(s.cursor)
	case key.Matches(msg, s.keys.Next):
		s.next()
	case key.Matches(msg, s.keys.Prev):
		sess.Retreat(s.state)
	case key.Matches(msg, s.keys.RestartAll):
		sess.RestartFull(s.state)
		s.shown = ""
		s.log.Info("restart all", zap.String("session_id", s.state.SessionID), zap.Int("round", s.state.Round))
	case key.Matches(msg, s.keys.RestartWrong):
		if sess.RestartWrong(s.state) {
			s.shown = ""
			s.log.Info("restart wrong",
				zap.String("session_id", s.state.SessionID),
				zap.Int("round", s.state.Round),
				zap.Int("questions", len(s.state.Deck)))
		}
	case key.Matches(msg, s.keys.Summary):
		cmd = s.openSummary()
	case key.Matches(msg, s.keys.Jump):
		if len(s.state.Deck) > 0 {
			s.jumping = true
			s.jump = components.NewNumberInput("question number", 4)
			cmd = s.jump.Init()
		}
	}

	s.sync()
	return s, cmd
}

func (s *SessionScreen) handleJumpKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Cancel):
		s.jumping = false
		return s, nil
	case key.Matches(msg, s.keys.Confirm):
		s.jumping = false
		if n, err := s.jump.Value(); err == nil {
			sess.Jump(s.state, n-1)
			s.sync()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.jump, cmd = s.jump.Update(msg)
	return s, cmd
}

// choose acts on option i of the current question: single-correct questions
// are answered at once, multi-correct ones toggle a pending pick.
func (s *SessionScreen) choose(i int) {
	q, ok := sess.Current(s.state)
	if !ok || i < 0 || i >= len(q.Options) {
		return
	}
	s.cursor = i

	if q.IsMultiCorrect() {
		sess.TogglePending(s.state, i)
		return
	}

	recorded, err := sess.RecordAnswer(s.state, q.ID, []int{i})
	if err != nil {
		s.log.Warn("record answer", zap.String("question_id", string(q.ID)), zap.Error(err))
		return
	}
	if recorded {
		s.logAnswer(q.ID)
	}
}

// next finalizes an unanswered multi-correct question, otherwise advances.
func (s *SessionScreen) next() {
	q, ok := sess.Current(s.state)
	if !ok {
		sess.Advance(s.state)
		return
	}
	answered := sess.IsAnswered(s.state, q.ID)

	if q.IsMultiCorrect() && !answered {
		if sess.SubmitPending(s.state) {
			s.logAnswer(q.ID)
		}
		return
	}
	if !answered {
		return
	}
	sess.Advance(s.state)
}

func (s *SessionScreen) logAnswer(id questions.ID) {
	a := s.state.Answers[id]
	s.log.Debug("answer recorded",
		zap.String("session_id", s.state.SessionID),
		zap.String("question_id", string(id)),
		zap.Ints("selected", a.Selected),
		zap.Bool("correct", a.Correct))
}

func (s *SessionScreen) openSummary() tea.Cmd {
	sum := sess.BuildSummary(s.state)
	wrong := s.state.Bank.Filter(sess.WrongIDs(s.state))
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(sum, wrong)}
	}
}

// sync resets the option cursor when the displayed question changes.
func (s *SessionScreen) sync() {
	q, ok := sess.Current(s.state)
	if !ok {
		s.cursor = 0
		s.shown = ""
		return
	}
	if q.ID != s.shown {
		s.shown = q.ID
		s.cursor = 0
	}
}
