package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/valodiag/internal/ui/theme"
)

// YesNo is a two-option selector. Left/right or up/down move the cursor,
// enter chooses, and y/n choose directly.
type YesNo struct {
	YesLabel string
	NoLabel  string
	OnYes    bool // cursor position
}

// NewYesNo creates a selector with the cursor on yes.
func NewYesNo(yesLabel, noLabel string) YesNo {
	return YesNo{YesLabel: yesLabel, NoLabel: noLabel, OnYes: true}
}

// Update handles a key press. chosen is true when the user made a choice,
// and yes holds that choice.
func (y YesNo) Update(msg tea.Msg) (updated YesNo, chosen bool, yes bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return y, false, false
	}
	switch kmsg.String() {
	case "up", "down", "tab", "h", "l":
		y.OnYes = !y.OnYes
	case "y":
		return y, true, true
	case "n", "t":
		return y, true, false
	case "enter", "space":
		return y, true, y.OnYes
	}
	return y, false, false
}

// View renders both options side by side.
func (y YesNo) View() string {
	yes := "  ✓ " + y.YesLabel + "  "
	no := "  ✗ " + y.NoLabel + "  "
	if y.OnYes {
		yes = theme.Yes.Reverse(true).Render(yes)
		no = theme.Unselected.Render(no)
	} else {
		yes = theme.Unselected.Render(yes)
		no = theme.No.Reverse(true).Render(no)
	}
	return yes + "    " + no
}
