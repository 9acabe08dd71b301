package guide

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/valodiag/internal/diagnosis"
	"github.com/abhisek/valodiag/internal/screen"
	"github.com/abhisek/valodiag/internal/ui/layout"
	"github.com/abhisek/valodiag/internal/ui/theme"
)

// AreaDetailScreen shows the full advice for one improvement area.
type AreaDetailScreen struct {
	result   diagnosis.Result
	question *diagnosis.Question
	count    int
}

var _ screen.Screen = (*AreaDetailScreen)(nil)
var _ screen.KeyHintProvider = (*AreaDetailScreen)(nil)

func newAreaDetail(res diagnosis.Result, q *diagnosis.Question, count int) *AreaDetailScreen {
	return &AreaDetailScreen{result: res, question: q, count: count}
}

func (d *AreaDetailScreen) Init() tea.Cmd { return nil }
func (d *AreaDetailScreen) Title() string { return d.result.Title }

func (d *AreaDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *AreaDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *AreaDetailScreen) View(width, height int) string {
	contentWidth := min(width-8, 70)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	section := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + d.result.Title))
	b.WriteString("\n")
	b.WriteString(dim.Render(fmt.Sprintf("  Didiagnosa %d kali", d.count)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(theme.Text).
		PaddingLeft(2).
		Render(d.result.Message))
	b.WriteString("\n\n")

	if d.question != nil {
		b.WriteString(section.Render("  Pertanyaan"))
		b.WriteString("\n")
		b.WriteString(dim.Width(contentWidth).PaddingLeft(2).Render(d.question.Text))
		b.WriteString("\n\n")
	}

	b.WriteString(section.Render("  Tips"))
	b.WriteString("\n")
	for _, tip := range d.result.Tips {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Text).
			PaddingLeft(2).
			Render("• " + tip))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "\n"+b.String())
}
