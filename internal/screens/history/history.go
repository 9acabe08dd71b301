package history

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/valodiag/internal/diagnosis"
	"github.com/abhisek/valodiag/internal/profile"
	"github.com/abhisek/valodiag/internal/router"
	"github.com/abhisek/valodiag/internal/screen"
	"github.com/abhisek/valodiag/internal/ui/layout"
	"github.com/abhisek/valodiag/internal/ui/theme"
)

type historyLoadedMsg struct {
	Entries []profile.HistoryEntry
}

// HistoryScreen lists the current player's past diagnoses, newest first.
// Enter expands an entry to show that result's advice again.
type HistoryScreen struct {
	profiles *profile.Store
	entries  []profile.HistoryEntry
	selected int
	expanded map[int]bool
	loaded   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(profiles *profile.Store) *HistoryScreen {
	return &HistoryScreen{
		profiles: profiles,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	profiles := s.profiles
	return func() tea.Msg {
		ctx := context.Background()
		username, ok := profiles.CurrentUser(ctx)
		if !ok {
			return historyLoadedMsg{}
		}
		p, ok := profiles.Profile(ctx, username)
		if !ok {
			return historyLoadedMsg{}
		}
		return historyLoadedMsg{Entries: p.History}
	}
}

func (s *HistoryScreen) Title() string {
	return "Riwayat"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Detail"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.entries = msg.Entries
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Memuat riwayat...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Belum ada riwayat. Mulai diagnosa dulu!")
	}

	var b strings.Builder
	b.WriteString("\n")

	detail := lipgloss.NewStyle().Foreground(theme.TextDim).Width(min(width-8, 70))

	for i, e := range s.entries {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+e.Date+"  "+e.Result)))
		b.WriteString("\n")

		if !s.expanded[i] {
			continue
		}
		res, ok := diagnosis.ResultByTitle(e.Result)
		if !ok {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				detail.Italic(true).Render("Detail tidak tersedia")))
			b.WriteString("\n")
			continue
		}
		lines := []string{res.Message}
		for _, tip := range res.Tips {
			lines = append(lines, "• "+tip)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			detail.Render(strings.Join(lines, "\n"))))
		b.WriteString("\n\n")
	}

	return b.String()
}
