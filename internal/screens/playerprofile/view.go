package playerprofile

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/valodiag/internal/ui/components"
	"github.com/abhisek/valodiag/internal/ui/theme"
)

func (s *ProfileScreen) View(width, height int) string {
	if !s.loaded {
		return components.Center(theme.Hint.Render("Memuat profil..."), width, height)
	}

	cw := components.ContentWidth(width)
	inner := cw - 6
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s.username))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(s.summary.Rank))
	b.WriteString("\n")
	if s.summary.MemberSince != "" {
		b.WriteString(label.Render("Member sejak " + s.summary.MemberSince))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	row := func(k, v string) {
		b.WriteString(label.Render(fmt.Sprintf("%-20s", k)))
		b.WriteString(value.Render(v))
		b.WriteString("\n")
	}
	row("Total Diagnosa", fmt.Sprintf("%d", s.summary.TotalDiagnoses))
	row("Aktivitas Terakhir", s.summary.LastActivity)
	row("Improvement Score", s.summary.ImprovementScore)
	row("Completion Rate", s.summary.CompletionRate)
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Riwayat"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", inner)))
	b.WriteString("\n")
	b.WriteString(s.renderHistory(inner, max(height-24, 3)))

	switch s.mode {
	case modeRename:
		b.WriteString("\n")
		b.WriteString(label.Render("Nama baru:"))
		b.WriteString("\n")
		b.WriteString(s.input.View())
		b.WriteString("\n")
	case modeConfirmClear:
		b.WriteString("\n")
		b.WriteString(theme.ErrorText.Render(PromptClear))
		b.WriteString("\n")
	case modeConfirmLogout:
		b.WriteString("\n")
		b.WriteString(theme.ErrorText.Render(PromptLogout))
		b.WriteString("\n")
	}

	if s.status != "" {
		b.WriteString("\n")
		if s.statusErr {
			b.WriteString(theme.ErrorText.Render(s.status))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(s.status))
		}
	}

	return components.Center(components.Card(b.String(), cw), width, height)
}

// renderHistory lists up to limit entries, newest first.
func (s *ProfileScreen) renderHistory(width, limit int) string {
	if s.profile == nil || len(s.profile.History) == 0 {
		return theme.Hint.Render("Belum ada riwayat diagnosa") + "\n"
	}

	var b strings.Builder
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	text := lipgloss.NewStyle().Foreground(theme.Text)
	for i, e := range s.profile.History {
		if i == limit {
			b.WriteString(dim.Render(fmt.Sprintf("… %d lainnya", len(s.profile.History)-limit)))
			b.WriteString("\n")
			break
		}
		date := dim.Render(e.Date)
		title := text.Width(max(width-lipgloss.Width(date)-2, 10)).Render(e.Result)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", date))
		b.WriteString("\n")
	}
	return b.String()
}
