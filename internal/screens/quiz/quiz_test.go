package quiz

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/valodiag/internal/diagnosis"
	"github.com/abhisek/valodiag/internal/profile"
	"github.com/abhisek/valodiag/internal/router"
	"github.com/abhisek/valodiag/internal/screens/result"
	"github.com/abhisek/valodiag/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestQuiz(t *testing.T) (*QuizScreen, *profile.Store) {
	t.Helper()
	profiles := profile.New(store.NewMemory())
	_, err := profiles.Login(context.Background(), "sage")
	require.NoError(t, err)
	return New(profiles, "sage"), profiles
}

// finish drives the completion command and returns the result screen.
func finish(t *testing.T, s *QuizScreen, cmd tea.Cmd) *result.ResultScreen {
	t.Helper()
	require.NotNil(t, cmd, "last answer should trigger completion")
	msg := cmd()
	done, ok := msg.(quizCompleteMsg)
	require.True(t, ok, "expected quizCompleteMsg, got %T", msg)

	_, cmd = s.Update(done)
	require.NotNil(t, cmd)
	replace, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	rs, ok := replace.Screen.(*result.ResultScreen)
	require.True(t, ok)
	return rs
}

func TestAnswerAllAndRecord(t *testing.T) {
	s, profiles := newTestQuiz(t)

	// Yes to aim only.
	keys := []rune{'y', 'n', 'n', 'n', 'n'}
	var cmd tea.Cmd
	for i, k := range keys {
		_, cmd = s.Update(keyPress(k))
		if i < len(keys)-1 {
			assert.Nil(t, cmd)
		}
	}
	assert.True(t, s.State().Done())

	rs := finish(t, s, cmd)
	assert.Equal(t, diagnosis.CategoryAimDueling, rs.Result().Category)

	p, ok := profiles.Profile(context.Background(), "sage")
	require.True(t, ok)
	require.Len(t, p.History, 1)
	assert.Equal(t, rs.Result().Title, p.History[0].Result)
}

func TestAllNoIsBalanced(t *testing.T) {
	s, _ := newTestQuiz(t)
	var cmd tea.Cmd
	for range 5 {
		_, cmd = s.Update(keyPress('n'))
	}
	rs := finish(t, s, cmd)
	assert.Equal(t, diagnosis.CategoryBalanced, rs.Result().Category)
}

func TestEnterUsesCursor(t *testing.T) {
	s, _ := newTestQuiz(t)

	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 1, s.State().Index)

	s.Update(specialKey(tea.KeyDown)) // cursor to "no"
	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, 2, s.State().Index)

	answers := s.State().Answers()
	require.Len(t, answers, 2)
	assert.True(t, answers[0].Yes)
	assert.False(t, answers[1].Yes)
}

func TestPreviousAndSkip(t *testing.T) {
	s, _ := newTestQuiz(t)

	s.Update(keyPress('y'))
	assert.Equal(t, 1, s.State().Index)

	s.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, 0, s.State().Index)
	assert.Empty(t, s.State().Answers(), "stepping back discards the answer")

	s.Update(specialKey(tea.KeyRight))
	assert.Equal(t, 1, s.State().Index)
	assert.Empty(t, s.State().Answers(), "skipping does not answer")

	s.Update(specialKey(tea.KeyBackspace))
	assert.Equal(t, 0, s.State().Index)
}

func TestSkipStopsAtLastQuestion(t *testing.T) {
	s, _ := newTestQuiz(t)
	for range 10 {
		s.Update(specialKey(tea.KeyRight))
	}
	assert.Equal(t, len(s.State().Questions)-1, s.State().Index)
	assert.False(t, s.State().Done())
}

func TestIgnoresKeysAfterFinish(t *testing.T) {
	s, _ := newTestQuiz(t)
	for range 5 {
		s.Update(keyPress('y'))
	}
	_, cmd := s.Update(keyPress('y'))
	assert.Nil(t, cmd)
	_, cmd = s.Update(specialKey(tea.KeyLeft))
	assert.Nil(t, cmd)
	assert.True(t, s.State().Done())
}

func TestViewShowsProgress(t *testing.T) {
	s, _ := newTestQuiz(t)
	view := s.View(80, 30)
	assert.Contains(t, view, "Pertanyaan 1/5")
	assert.Contains(t, view, "AIM & DUELING")
}

func TestRecordFailureStillShowsResult(t *testing.T) {
	s, _ := newTestQuiz(t)
	_, cmd := s.Update(quizCompleteMsg{
		Result: diagnosis.ResultFor(diagnosis.CategoryAccuracy),
		Err:    errors.New("disk full"),
	})
	require.NotNil(t, cmd)
	replace := cmd().(router.ReplaceScreenMsg)
	rs := replace.Screen.(*result.ResultScreen)
	assert.Equal(t, diagnosis.CategoryAccuracy, rs.Result().Category)
	assert.Contains(t, rs.View(80, 40), "disk full")
}
