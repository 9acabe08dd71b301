package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/valodiag/internal/profile"
	"github.com/abhisek/valodiag/internal/router"
	"github.com/abhisek/valodiag/internal/screen"
	"github.com/abhisek/valodiag/internal/ui/components"
	"github.com/abhisek/valodiag/internal/ui/layout"
)

// Menu labels.
const (
	LabelStart   = "MULAI DIAGNOSA"
	LabelProfile = "PROFIL"
	LabelGuide   = "PANDUAN"
	LabelLogout  = "LOGOUT"
	LabelExit    = "KELUAR"
)

// PromptLogout asks before the current user is logged out.
const PromptLogout = "Apakah Anda yakin ingin keluar? (y/n)"

// Factories holds the screens reachable from home.
type Factories struct {
	Quiz    screen.Factory
	Profile screen.Factory
	Guide   screen.Factory
	Login   screen.Factory
}

// summaryLoadedMsg carries the current user's stats.
type summaryLoadedMsg struct {
	username string
	summary  profile.Summary
	loggedIn bool
}

// HomeScreen greets the player and offers the main menu.
type HomeScreen struct {
	profiles *profile.Store
	next     Factories

	menu       components.Menu
	menuLabels []string

	loaded  bool
	summary profile.Summary

	confirmLogout bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.InputCapturer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(profiles *profile.Store, next Factories) *HomeScreen {
	h := &HomeScreen{
		profiles:   profiles,
		next:       next,
		menuLabels: []string{LabelStart, LabelProfile, LabelGuide, LabelLogout, LabelExit},
	}

	items := []components.MenuItem{
		{Label: LabelStart, Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: h.next.Quiz()} }
		}},
		{Label: LabelProfile, Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: h.next.Profile()} }
		}},
		{Label: LabelGuide, Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: h.next.Guide()} }
		}},
		{Label: LabelLogout, Action: func() tea.Cmd {
			h.confirmLogout = true
			return nil
		}},
		{Label: LabelExit, Action: func() tea.Cmd { return tea.Quit }},
	}
	h.menu = components.NewMenu(items)
	return h
}

// Init loads the summary. It runs again whenever home is revealed by a pop,
// so stats reflect diagnoses taken meanwhile.
func (h *HomeScreen) Init() tea.Cmd {
	profiles := h.profiles
	return func() tea.Msg {
		ctx := context.Background()
		username, ok := profiles.CurrentUser(ctx)
		if !ok {
			return summaryLoadedMsg{}
		}
		p, _ := profiles.Profile(ctx, username)
		return summaryLoadedMsg{
			username: username,
			summary:  profile.Summarize(username, p, profiles.Locale()),
			loggedIn: true,
		}
	}
}

func (h *HomeScreen) logout() tea.Cmd {
	if err := h.profiles.Logout(context.Background()); err != nil {
		return nil
	}
	login := h.next.Login()
	return tea.Batch(
		func() tea.Msg { return screen.UserChangedMsg{} },
		func() tea.Msg { return router.ResetScreenMsg{Screen: login} },
	)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(summaryLoadedMsg); ok {
		if !m.loggedIn {
			login := h.next.Login()
			return h, func() tea.Msg { return router.ResetScreenMsg{Screen: login} }
		}
		h.loaded = true
		h.summary = m.summary
		return h, nil
	}

	if km, ok := msg.(tea.KeyMsg); ok && h.confirmLogout {
		switch km.String() {
		case "y":
			h.confirmLogout = false
			return h, h.logout()
		case "n", "t", "esc":
			h.confirmLogout = false
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) CapturingInput() bool {
	return h.confirmLogout
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || width < 90

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderBanner(cw, compact))
	if h.loaded {
		sections = append(sections, renderGreeting(h.summary.Username, cw))
		sections = append(sections, renderStatsBar(h.summary, cw, compact))
	}
	if h.confirmLogout {
		sections = append(sections, renderPrompt(PromptLogout, cw))
	} else if compact {
		sections = append(sections, renderButtonsCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderButtons(h.menuLabels, h.menu.Selected, cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirmLogout {
		return []layout.KeyHint{
			{Key: "Y", Description: "Logout"},
			{Key: "N", Description: "Batal"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Pilih"},
		{Key: "Enter", Description: "OK"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
