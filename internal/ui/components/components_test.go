package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pickedMsg string

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg("B") } }},
		{Label: "C", Disabled: true},
		{Label: "D", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg("D") } }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)

	m, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, pickedMsg("D"), cmd())

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, m.Selected, "wraps to first enabled item")

	m, _ = m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	assert.Equal(t, 3, m.Selected, "wraps backwards")
}

func TestMenuDigitShortcut(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg("A") } }},
		{Label: "B", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg("B") } }},
		{Label: "C", Disabled: true},
	})

	m, cmd := m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	require.NotNil(t, cmd)
	assert.Equal(t, pickedMsg("B"), cmd())
	assert.Equal(t, 1, m.Selected)

	_, cmd = m.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	assert.Nil(t, cmd, "disabled item")
	_, cmd = m.Update(tea.KeyPressMsg{Code: '9', Text: "9"})
	assert.Nil(t, cmd, "out of range")
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		name       string
		keys       []tea.KeyPressMsg
		wantChosen bool
		wantYes    bool
	}{
		{"y chooses yes", []tea.KeyPressMsg{{Code: 'y', Text: "y"}}, true, true},
		{"n chooses no", []tea.KeyPressMsg{{Code: 'n', Text: "n"}}, true, false},
		{"t chooses no", []tea.KeyPressMsg{{Code: 't', Text: "t"}}, true, false},
		{"enter takes cursor", []tea.KeyPressMsg{{Code: tea.KeyEnter}}, true, true},
		{"toggle then enter", []tea.KeyPressMsg{{Code: tea.KeyDown}, {Code: tea.KeyEnter}}, true, false},
		{"toggle only", []tea.KeyPressMsg{{Code: tea.KeyTab}}, false, false},
		{"unrelated key", []tea.KeyPressMsg{{Code: 'x', Text: "x"}}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := NewYesNo("Ya", "Tidak")
			var chosen, yes bool
			for _, k := range tt.keys {
				y, chosen, yes = y.Update(k)
			}
			assert.Equal(t, tt.wantChosen, chosen)
			assert.Equal(t, tt.wantYes, yes)
		})
	}
}

func TestTextInputClearsError(t *testing.T) {
	ti := NewTextInput("name", "", 10)
	ti.SetError("bad")
	assert.Contains(t, ti.View(), "bad")

	ti, _ = ti.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	assert.Empty(t, ti.Error())
	assert.Equal(t, "a", ti.Value())
}

func TestProgressBarWidth(t *testing.T) {
	bar := NewProgressBar("", 0.5, true, 20)
	assert.Contains(t, bar.View(), "50%")
}
