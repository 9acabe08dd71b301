package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/valodiag/internal/router"
	"github.com/abhisek/valodiag/internal/screen"
	"github.com/abhisek/valodiag/internal/ui/theme"
)

// Tagline is shown under the banner once it appears.
const Tagline = "Temukan area yang perlu kamu tingkatkan"

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const crosshairArt = `      │
      │
──────┼──────
      │
      │`

// Crosshair colors cycle once the reticle is drawn.
var pulseFrames = []string{"◆", "◇"}

type tickMsg time.Time

// WelcomeScreen plays a short splash, then replaces itself with the screen
// built by next. Any key skips ahead.
type WelcomeScreen struct {
	next         screen.Factory
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to next().
func New(next screen.Factory) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	reticle := lipgloss.NewStyle().Foreground(theme.Primary).Render(crosshairArt)

	if w.elapsed >= phase1End {
		mark := pulseFrames[w.tickCount%len(pulseFrames)]
		accent := lipgloss.NewStyle().Foreground(theme.Accent).Render(mark)
		lines := strings.Split(reticle, "\n")
		if len(lines) > 2 {
			lines[2] = accent + " " + lines[2] + " " + accent
		}
		reticle = strings.Join(lines, "\n")
	}
	sections = append(sections, reticle)

	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(Tagline))
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("tekan tombol apa saja untuk lanjut"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
