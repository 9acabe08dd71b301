package quiz

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/valodiag/internal/profile"
	"github.com/abhisek/valodiag/internal/router"
	"github.com/abhisek/valodiag/internal/screen"
	"github.com/abhisek/valodiag/internal/screens/result"
	"github.com/abhisek/valodiag/internal/session"
	"github.com/abhisek/valodiag/internal/ui/components"
	"github.com/abhisek/valodiag/internal/ui/layout"
)

// QuizScreen asks each question in turn and hands the answers to the
// aggregator once the last one is answered.
type QuizScreen struct {
	profiles *profile.Store
	username string
	state    *session.State
	choice   components.YesNo
	finished bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New starts a quiz over the fixed question set. The result is recorded
// for username; an empty username records nothing.
func New(profiles *profile.Store, username string) *QuizScreen {
	return NewWithState(profiles, username, session.NewDefault())
}

// NewWithState runs the quiz over an existing session state.
func NewWithState(profiles *profile.Store, username string, state *session.State) *QuizScreen {
	return &QuizScreen{
		profiles: profiles,
		username: username,
		state:    state,
		choice:   components.NewYesNo("Ya", "Tidak"),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Diagnosa"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Y/N", Description: "Jawab"},
		{Key: "←", Description: "Sebelumnya"},
		{Key: "→", Description: "Lewati"},
		{Key: "Esc", Description: "Home"},
	}
}

// State exposes the session for inspection.
func (s *QuizScreen) State() *session.State {
	return s.state
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizCompleteMsg:
		return s.handleComplete(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}

	switch msg.String() {
	case "left", "backspace":
		s.state.Previous()
		s.choice = components.NewYesNo(s.choice.YesLabel, s.choice.NoLabel)
		return s, nil
	case "right":
		s.state.Next()
		s.choice = components.NewYesNo(s.choice.YesLabel, s.choice.NoLabel)
		return s, nil
	}

	var chosen, yes bool
	s.choice, chosen, yes = s.choice.Update(msg)
	if !chosen {
		return s, nil
	}

	s.state.Answer(yes)
	s.choice = components.NewYesNo(s.choice.YesLabel, s.choice.NoLabel)
	if s.state.Done() {
		s.finished = true
		return s, s.complete()
	}
	return s, nil
}

func (s *QuizScreen) complete() tea.Cmd {
	state, profiles, username := s.state, s.profiles, s.username
	return func() tea.Msg {
		res, err := session.Complete(context.Background(), state, profiles, username)
		return quizCompleteMsg{Result: res, Err: err}
	}
}

func (s *QuizScreen) handleComplete(msg quizCompleteMsg) (screen.Screen, tea.Cmd) {
	profiles, username := s.profiles, s.username
	again := func() screen.Screen { return New(profiles, username) }
	next := result.New(msg.Result, msg.Err, again)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
