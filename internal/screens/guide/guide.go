package guide

import (
	"context"
	"fmt"
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

type rowKind int

const (
	rowHeader rowKind = iota
	rowArea
)

type row struct {
	kind     rowKind
	header   string
	result   diagnosis.Result
	question *diagnosis.Question // nil for BALANCED
}

type countsLoadedMsg struct {
	counts map[diagnosis.Category]int
}

// GuideScreen lists every improvement area with how often the current
// player has been diagnosed with it.
type GuideScreen struct {
	profiles     *profile.Store
	rows         []row
	cursor       int
	scrollOffset int
	counts       map[diagnosis.Category]int
}

var _ screen.Screen = (*GuideScreen)(nil)
var _ screen.KeyHintProvider = (*GuideScreen)(nil)

// New creates a GuideScreen. profiles may be nil, in which case no counts
// are shown.
func New(profiles *profile.Store) *GuideScreen {
	byCategory := make(map[diagnosis.Category]diagnosis.Question)
	for _, q := range diagnosis.Questions() {
		byCategory[diagnosis.CategoryForLabel(q.Label)] = q
	}

	rows := []row{{kind: rowHeader, header: "Area Latihan"}}
	var general []row
	for _, res := range diagnosis.AllResults() {
		q, ok := byCategory[res.Category]
		if !ok {
			general = append(general, row{kind: rowArea, result: res})
			continue
		}
		rows = append(rows, row{kind: rowArea, result: res, question: &q})
	}
	if len(general) > 0 {
		rows = append(rows, row{kind: rowHeader, header: "Umum"})
		rows = append(rows, general...)
	}

	s := &GuideScreen{
		profiles: profiles,
		rows:     rows,
		counts:   make(map[diagnosis.Category]int),
	}
	s.moveCursor(1)
	return s
}

// Init counts past diagnoses per category for the current player.
func (s *GuideScreen) Init() tea.Cmd {
	if s.profiles == nil {
		return nil
	}
	profiles := s.profiles
	return func() tea.Msg {
		ctx := context.Background()
		counts := make(map[diagnosis.Category]int)
		username, ok := profiles.CurrentUser(ctx)
		if !ok {
			return countsLoadedMsg{counts: counts}
		}
		if p, ok := profiles.Profile(ctx, username); ok {
			for _, e := range p.History {
				if res, ok := diagnosis.ResultByTitle(e.Result); ok {
					counts[res.Category]++
				}
			}
		}
		return countsLoadedMsg{counts: counts}
	}
}

func (s *GuideScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case countsLoadedMsg:
		s.counts = msg.counts
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "enter":
			return s, s.selectArea()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *GuideScreen) View(width, height int) string {
	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}
		switch r.kind {
		case rowHeader:
			lines = append(lines, renderHeader(r.header, width))
		case rowArea:
			lines = append(lines, s.renderArea(r, i == s.cursor, width))
		}
		visible++
	}
	return strings.Join(lines, "\n")
}

func (s *GuideScreen) Title() string {
	return "Panduan"
}

func (s *GuideScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Detail"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping headers.
func (s *GuideScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowArea {
			s.cursor = next
			return
		}
		next += delta
	}
}

// adjustScroll keeps the cursor, and the header above it, in view.
func (s *GuideScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	top := s.cursor
	for top > 0 && s.rows[top-1].kind == rowHeader {
		top--
	}
	if top < s.scrollOffset {
		s.scrollOffset = top
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *GuideScreen) selectArea() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowArea {
		return nil
	}
	detail := newAreaDetail(r.result, r.question, s.counts[r.result.Category])
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func renderHeader(name string, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(strings.ToUpper(name))
}

func (s *GuideScreen) renderArea(r row, selected bool, width int) string {
	countWidth := 10
	nameWidth := max(width-8-countWidth, 10)

	name := r.result.Title
	if lipgloss.Width(name) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	n := s.counts[r.result.Category]
	count := countLabel(n)

	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	countStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	cursor := "  "
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		countStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		cursor = "▸ "
	} else if n > 0 {
		countStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}

	return fmt.Sprintf("  %s%s  %s",
		cursor,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		countStyle.Render(fmt.Sprintf("%*s", countWidth-2, count)),
	)
}

// countLabel shows how often an area was diagnosed, "-" when never.
func countLabel(n int) string {
	if n <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d×", n)
}
