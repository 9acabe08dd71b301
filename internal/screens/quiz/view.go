package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/valodiag/internal/ui/components"
	"github.com/abhisek/valodiag/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	q, ok := s.state.Current()
	if !ok {
		return components.Center(
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Menganalisis jawaban..."),
			width, height)
	}

	p := s.state.Progress()

	var b strings.Builder
	bar := components.NewProgressBar(
		fmt.Sprintf("Pertanyaan %d/%d", p.Number, p.Total), p.Percent, false, cw-4)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(strings.ToUpper(q.Label)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(cw - 6).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(cw-6, lipgloss.Center, s.choice.View()))

	return components.Center(components.Card(b.String(), cw), width, height)
}
