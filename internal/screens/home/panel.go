package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/valodiag/internal/profile"
	"github.com/abhisek/valodiag/internal/ui/theme"
)

const bannerFull = `██╗   ██╗ █████╗ ██╗      ██████╗
██║   ██║██╔══██╗██║     ██╔═══██╗
╚██╗ ██╔╝███████║██║     ██║   ██║
 ╚████╔╝ ██╔══██║██║     ██║   ██║
  ╚██╔╝  ██║  ██║███████╗╚██████╔╝
   ╚═╝   ╚═╝  ╚═╝╚══════╝ ╚═════╝ `

const bannerCompact = "V · A · L · O · D · I · A · G"

// renderBanner returns the block-letter banner or the compact fallback.
func renderBanner(cw int, compact bool) string {
	text := bannerFull
	if compact {
		text = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(text))
}

// renderGreeting renders the welcome line under the banner.
func renderGreeting(username string, cw int) string {
	name := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(username)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Selamat datang, " + name + "!")
}

// renderPrompt renders a centered confirmation question in place of the buttons.
func renderPrompt(text string, cw int) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(theme.ErrorText.Render(text))
}

// renderStatsBar renders the dashboard stats in a bordered box.
func renderStatsBar(sum profile.Summary, cw int, compact bool) string {
	total := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	rate := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	rank := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			total.Render(fmt.Sprintf("◆%d", sum.TotalDiagnoses)),
			rate.Render("▲"+sum.ImprovementRate),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			total.Render(fmt.Sprintf("◆ %d DIAGNOSA", sum.TotalDiagnoses)),
			rate.Render("▲ "+sum.ImprovementRate),
			rank.Render(strings.ToUpper(sum.Rank)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderButtons renders each menu item as a fixed-width button.
func renderButtons(items []string, selected int, cw int) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	selectedBtn := base.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		BorderForeground(theme.Primary)

	normalBtn := base.
		Foreground(theme.Text).
		BorderForeground(theme.Border)

	buttons := make([]string, 0, len(items))
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderButtonsCompact renders menu items as plain lines for terminals too
// short for bordered buttons.
func renderButtonsCompact(items []string, selected int, cw int) string {
	lines := make([]string, 0, len(items))
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderFrame wraps content in a double border centered in the area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
