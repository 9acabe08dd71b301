package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/valodiag/internal/logger"
	"github.com/abhisek/valodiag/internal/profile"
	"github.com/abhisek/valodiag/internal/router"
	"github.com/abhisek/valodiag/internal/screen"
	"github.com/abhisek/valodiag/internal/screens/guide"
	"github.com/abhisek/valodiag/internal/screens/home"
	"github.com/abhisek/valodiag/internal/screens/login"
	"github.com/abhisek/valodiag/internal/screens/playerprofile"
	"github.com/abhisek/valodiag/internal/screens/quiz"
	"github.com/abhisek/valodiag/internal/screens/welcome"
	"github.com/abhisek/valodiag/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Profiles  *profile.Store
	ExportDir string
	Logger    *logger.Logger
	// Splash plays the welcome animation before the first screen.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	log      *logger.Logger
	username string
	width    int
	height   int
}

// screens builds the screen graph. Screens refer to each other only
// through these factories.
type screens struct {
	opts Options
}

func (s screens) login() screen.Screen {
	return login.New(s.opts.Profiles, s.home)
}

func (s screens) home() screen.Screen {
	return home.New(s.opts.Profiles, home.Factories{
		Quiz:    s.quiz,
		Profile: s.profile,
		Guide:   s.guide,
		Login:   s.login,
	})
}

func (s screens) quiz() screen.Screen {
	username, _ := s.opts.Profiles.CurrentUser(context.Background())
	return quiz.New(s.opts.Profiles, username)
}

func (s screens) guide() screen.Screen {
	return guide.New(s.opts.Profiles)
}

func (s screens) profile() screen.Screen {
	return playerprofile.New(s.opts.Profiles, s.opts.ExportDir, s.login)
}

// first is home when a user is already logged in, otherwise login.
func (s screens) first() screen.Screen {
	if _, ok := s.opts.Profiles.CurrentUser(context.Background()); ok {
		return s.home()
	}
	return s.login()
}

func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	g := screens{opts: opts}

	username, _ := opts.Profiles.CurrentUser(context.Background())
	var initial screen.Screen
	if opts.Splash {
		initial = welcome.New(g.first)
	} else {
		initial = g.first()
	}
	opts.Logger.Debug("starting tui", "user", username, "splash", opts.Splash)

	return AppModel{
		router:   router.New(initial),
		log:      opts.Logger,
		username: username,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.UserChangedMsg:
		m.log.Debug("user changed", "from", m.username, "to", msg.Username)
		m.username = msg.Username
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if !m.capturing() {
				if m.router.Depth() > 1 {
					return m, func() tea.Msg { return router.PopScreenMsg{} }
				}
				return m, nil
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// capturing reports whether the active screen wants esc for itself.
func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturingInput()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.username, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Profiles == nil {
		return fmt.Errorf("app: profile store is required")
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
