package history

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/valodiag/internal/diagnosis"
	"github.com/abhisek/valodiag/internal/profile"
	"github.com/abhisek/valodiag/internal/router"
	"github.com/abhisek/valodiag/internal/store"
)

func loadedScreen(t *testing.T, titles ...string) *HistoryScreen {
	t.Helper()
	profiles := profile.New(store.NewMemory())
	ctx := context.Background()
	_, err := profiles.Login(ctx, "cypher")
	require.NoError(t, err)
	for _, title := range titles {
		require.NoError(t, profiles.RecordDiagnosis(ctx, "cypher", title))
	}
	s := New(profiles)
	s.Update(s.Init()())
	return s
}

func TestEmptyHistory(t *testing.T) {
	s := loadedScreen(t)
	assert.Contains(t, s.View(80, 24), "Belum ada riwayat")
}

func TestNewestFirstAndExpand(t *testing.T) {
	aim := diagnosis.ResultFor(diagnosis.CategoryAimDueling)
	comms := diagnosis.ResultFor(diagnosis.CategoryCommunication)
	s := loadedScreen(t, aim.Title, comms.Title)

	require.Len(t, s.entries, 2)
	assert.Equal(t, comms.Title, s.entries[0].Result)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected, "stays on last entry")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, s.expanded[1])
	assert.Contains(t, s.View(120, 60), aim.Tips[0][:10])
}

func TestUnknownTitle(t *testing.T) {
	s := loadedScreen(t, "Hasil lama")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, s.View(100, 40), "Detail tidak tersedia")
}

func TestEscPops(t *testing.T) {
	s := loadedScreen(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}
