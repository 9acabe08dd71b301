package result

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/valodiag/internal/diagnosis"
	"github.com/abhisek/valodiag/internal/router"
	"github.com/abhisek/valodiag/internal/screen"
	"github.com/abhisek/valodiag/internal/ui/components"
	"github.com/abhisek/valodiag/internal/ui/layout"
	"github.com/abhisek/valodiag/internal/ui/theme"
)

// Menu labels.
const (
	LabelRetry = "Ulangi Diagnosa"
	LabelHome  = "Kembali ke Beranda"
)

// ResultScreen shows a diagnosis result with its improvement tips.
type ResultScreen struct {
	result  diagnosis.Result
	saveErr error
	menu    components.Menu
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. saveErr, if set, is shown as a warning that
// the result was not stored. again builds the screen for a new attempt.
func New(res diagnosis.Result, saveErr error, again screen.Factory) *ResultScreen {
	items := []components.MenuItem{
		{Label: LabelRetry, Action: func() tea.Cmd {
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: again()} }
		}},
		{Label: LabelHome, Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
	}
	return &ResultScreen{
		result:  res,
		saveErr: saveErr,
		menu:    components.NewMenu(items),
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Hasil Diagnosa"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Pilih"},
		{Key: "Enter", Description: "OK"},
		{Key: "Esc", Description: "Home"},
	}
}

// Result returns the diagnosis being shown.
func (s *ResultScreen) Result() diagnosis.Result {
	return s.result
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	inner := cw - 6

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(inner).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(s.result.Title))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(inner).
		Foreground(theme.Text).
		Render(s.result.Message))
	b.WriteString("\n\n")

	if len(s.result.Tips) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Tips:"))
		b.WriteString("\n")
		tip := lipgloss.NewStyle().Width(inner).Foreground(theme.Text)
		for _, t := range s.result.Tips {
			b.WriteString(tip.Render("• " + t))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if s.saveErr != nil {
		b.WriteString(theme.ErrorText.Render("Hasil tidak tersimpan: " + s.saveErr.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(s.menu.View())

	return components.Center(components.Card(b.String(), cw), width, height)
}
