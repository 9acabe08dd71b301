package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/valodiag/internal/profile"
	"github.com/abhisek/valodiag/internal/router"
	"github.com/abhisek/valodiag/internal/screen"
	"github.com/abhisek/valodiag/internal/ui/components"
	"github.com/abhisek/valodiag/internal/ui/layout"
	"github.com/abhisek/valodiag/internal/ui/theme"
)

// MsgEmptyName is shown when the user submits a blank name.
const MsgEmptyName = "Please enter your name to continue!"

// usernameLimit caps input length; usernames are display labels.
const usernameLimit = 32

// LoginScreen asks for a player name and logs it in.
type LoginScreen struct {
	profiles *profile.Store
	home     screen.Factory
	input    components.TextInput
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)
var _ screen.InputCapturer = (*LoginScreen)(nil)

// New creates a LoginScreen that replaces itself with home() on success.
func New(profiles *profile.Store, home screen.Factory) *LoginScreen {
	return &LoginScreen{
		profiles: profiles,
		home:     home,
		input:    components.NewTextInput("Nama pemain", "", usernameLimit),
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *LoginScreen) Title() string {
	return "Login"
}

func (s *LoginScreen) CapturingInput() bool {
	return true
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Masuk"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, s.submit()
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LoginScreen) submit() tea.Cmd {
	name, err := s.profiles.Login(context.Background(), s.input.Value())
	if errors.Is(err, profile.ErrEmptyUsername) {
		s.input.SetError(MsgEmptyName)
		return nil
	}
	if err != nil {
		s.input.SetError(err.Error())
		return nil
	}

	next := s.home()
	return tea.Batch(
		func() tea.Msg { return screen.UserChangedMsg{Username: name} },
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} },
	)
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("VALORANT SKILL DIAGNOSIS"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Temukan area yang perlu kamu tingkatkan"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("Masukkan nama kamu:"))
	b.WriteString("\n")
	b.WriteString(s.input.View())

	cw := components.ContentWidth(width)
	return components.Center(components.Card(b.String(), cw), width, height)
}
