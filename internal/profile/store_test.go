package profile

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/valodiag/internal/logger"
	"github.com/abhisek/valodiag/internal/store"
)

var baseTime = time.Date(2026, time.October, 16, 14, 5, 0, 0, time.UTC)

// fakeClock advances one minute per call.
type fakeClock struct{ n int }

func (c *fakeClock) Now() time.Time {
	t := baseTime.Add(time.Duration(c.n) * time.Minute)
	c.n++
	return t
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	clock := &fakeClock{}
	ids := 0
	base := []Option{
		WithClock(clock.Now),
		WithIDFunc(func() string {
			ids++
			return fmt.Sprintf("id-%d", ids)
		}),
	}
	return New(kv, append(base, opts...)...), kv
}

// failingKV fails every operation.
type failingKV struct{}

var errBoom = errors.New("boom")

func (failingKV) Get(context.Context, string) (string, bool, error) { return "", false, errBoom }
func (failingKV) Set(context.Context, string, string) error         { return errBoom }
func (failingKV) Delete(context.Context, string) error              { return errBoom }
func (failingKV) Close() error                                      { return nil }

func TestCurrentUserLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, ok := s.CurrentUser(ctx)
	assert.False(t, ok)

	require.NoError(t, s.SetCurrentUser(ctx, "jett"))
	u, ok := s.CurrentUser(ctx)
	assert.True(t, ok)
	assert.Equal(t, "jett", u)

	require.NoError(t, s.SetCurrentUser(ctx, "sage"))
	u, _ = s.CurrentUser(ctx)
	assert.Equal(t, "sage", u)

	require.NoError(t, s.ClearCurrentUser(ctx))
	_, ok = s.CurrentUser(ctx)
	assert.False(t, ok)
}

func TestCurrentUserReadFailureIsAbsent(t *testing.T) {
	s := New(failingKV{})
	_, ok := s.CurrentUser(context.Background())
	assert.False(t, ok)
}

func TestAllProfilesDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{nope"},
		{"wrong top-level type", `[1,2,3]`},
		{"missing history", `{"jett":{"createdAt":"2026-10-16T14:05:00.000Z"}}`},
		{"history not array", `{"jett":{"createdAt":"x","history":"none"}}`},
		{"entry missing id", `{"jett":{"createdAt":"x","history":[{"result":"r","timestamp":"t","date":"d"}]}}`},
		{"json null", `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			s, kv := newTestStore(t, WithLogger(logger.Wrap(zap.New(core))))
			require.NoError(t, kv.Set(context.Background(), KeyPlayersData, tt.raw))

			all := s.AllProfiles(context.Background())
			assert.NotNil(t, all)
			assert.Empty(t, all)
			assert.Equal(t, 1, logs.Len(), "corrupt data should be logged")
		})
	}
}

func TestSaveAllProfilesSkipsNilEntries(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "jett")
	require.NoError(t, err)
	require.NoError(t, s.RecordDiagnosis(ctx, "jett", "Aim"))

	all := s.AllProfiles(ctx)
	all["ghost"] = nil
	require.NoError(t, s.SaveAllProfiles(ctx, all))

	raw, _, err := kv.Get(ctx, KeyPlayersData)
	require.NoError(t, err)
	assert.NotContains(t, raw, "ghost")

	require.NoError(t, s.RecordDiagnosis(ctx, "sage", "Awareness"))
	reloaded := s.AllProfiles(ctx)
	assert.Len(t, reloaded, 2)
	require.Contains(t, reloaded, "jett")
	assert.Len(t, reloaded["jett"].History, 1)
}

func TestAllProfilesSkipsOnlyCorruptProfile(t *testing.T) {
	tests := []struct {
		name string
		bad  string
	}{
		{"null profile", `null`},
		{"entry missing date", `{"createdAt":"x","history":[{"id":"1","result":"r","timestamp":"t"}]}`},
		{"history not array", `{"createdAt":"x","history":"none"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			s, kv := newTestStore(t, WithLogger(logger.Wrap(zap.New(core))))
			ctx := context.Background()
			raw := `{"ghost":` + tt.bad + `,"jett":{"createdAt":"2026-10-16T14:05:00.000Z","history":[]}}`
			require.NoError(t, kv.Set(ctx, KeyPlayersData, raw))

			all := s.AllProfiles(ctx)
			assert.Len(t, all, 1)
			assert.Contains(t, all, "jett")
			assert.NotContains(t, all, "ghost")
			assert.Equal(t, 1, logs.Len())

			require.NoError(t, s.RecordDiagnosis(ctx, "sage", "Aim"))
			assert.Contains(t, s.AllProfiles(ctx), "jett", "good profiles survive the next write")
		})
	}
}

func TestAllProfilesReadFailure(t *testing.T) {
	s := New(failingKV{})
	assert.Empty(t, s.AllProfiles(context.Background()))
}

func TestLogin(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	name, err := s.Login(ctx, "  jett  ")
	require.NoError(t, err)
	assert.Equal(t, "jett", name)

	u, ok := s.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "jett", u)

	p, ok := s.Profile(ctx, "jett")
	require.True(t, ok)
	assert.Equal(t, "2026-10-16T14:05:00.000Z", p.CreatedAt)
	assert.Equal(t, p.CreatedAt, p.LastActivity)
	assert.NotNil(t, p.History)
	assert.Empty(t, p.History)
}

func TestLoginKeepsExistingProfile(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "jett")
	require.NoError(t, err)
	require.NoError(t, s.RecordDiagnosis(ctx, "jett", "title"))
	before, _ := s.Profile(ctx, "jett")

	_, err = s.Login(ctx, "jett")
	require.NoError(t, err)
	after, _ := s.Profile(ctx, "jett")
	assert.Equal(t, before, after)
}

func TestLoginRejectsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := s.Login(context.Background(), in)
		assert.ErrorIs(t, err, ErrEmptyUsername)
	}
	_, ok := s.CurrentUser(context.Background())
	assert.False(t, ok)
}

func TestLogout(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	_, err := s.Login(ctx, "jett")
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))

	_, ok := s.CurrentUser(ctx)
	assert.False(t, ok)
	_, ok = s.Profile(ctx, "jett")
	assert.True(t, ok, "logout must keep the profile")
}

func TestRecordDiagnosisNoUser(t *testing.T) {
	s, kv := newTestStore(t)
	require.NoError(t, s.RecordDiagnosis(context.Background(), "", "title"))
	_, ok, err := kv.Get(context.Background(), KeyPlayersData)
	require.NoError(t, err)
	assert.False(t, ok, "no-op must not write")
}

func TestRecordDiagnosisCreatesProfile(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordDiagnosis(ctx, "sova", "⭐ Well Rounded Player"))

	p, ok := s.Profile(ctx, "sova")
	require.True(t, ok)
	require.Len(t, p.History, 1)
	e := p.History[0]
	assert.Equal(t, "id-1", e.ID)
	assert.Equal(t, "⭐ Well Rounded Player", e.Result)
	assert.Equal(t, "2026-10-16T14:05:00.000Z", e.Timestamp)
	assert.Equal(t, "16 Oktober 2026 pukul 14.05", e.Date)
	assert.Equal(t, "2026-10-16T14:05:00.000Z", p.CreatedAt)
	assert.Equal(t, e.Timestamp, p.LastActivity)
}

func TestRecordDiagnosisPrependsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	_, err := s.Login(ctx, "sova")
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		before, _ := s.Profile(ctx, "sova")
		require.NoError(t, s.RecordDiagnosis(ctx, "sova", fmt.Sprintf("r%d", i)))
		after, _ := s.Profile(ctx, "sova")

		require.Len(t, after.History, len(before.History)+1, "exactly one new entry")
		assert.Equal(t, fmt.Sprintf("r%d", i), after.History[0].Result)
		assert.Equal(t, before.History, after.History[1:], "existing entries are kept in order")
		assert.Equal(t, before.CreatedAt, after.CreatedAt)
	}

	p, _ := s.Profile(ctx, "sova")
	assert.Equal(t, p.History[0].Timestamp, p.LastActivity)
}

func TestRecordDiagnosisLocale(t *testing.T) {
	s, _ := newTestStore(t, WithLocale("en-US"))
	ctx := context.Background()
	require.NoError(t, s.RecordDiagnosis(ctx, "sova", "r"))
	p, _ := s.Profile(ctx, "sova")
	assert.Equal(t, "October 16, 2026 at 02:05 PM", p.History[0].Date)
}

func TestRecordDiagnosisWriteFailure(t *testing.T) {
	s := New(failingKV{})
	err := s.RecordDiagnosis(context.Background(), "sova", "r")
	assert.ErrorIs(t, err, errBoom)
}

func TestRenameUser(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	_, err := s.Login(ctx, "old")
	require.NoError(t, err)
	require.NoError(t, s.RecordDiagnosis(ctx, "old", "r1"))
	before, _ := s.Profile(ctx, "old")

	name, err := s.RenameUser(ctx, "old", " new ")
	require.NoError(t, err)
	assert.Equal(t, "new", name)

	all := s.AllProfiles(ctx)
	assert.NotContains(t, all, "old")
	require.Contains(t, all, "new")
	assert.Equal(t, before, all["new"])

	u, _ := s.CurrentUser(ctx)
	assert.Equal(t, "new", u)
}

func TestRenameUserOverwritesExisting(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s, _ := newTestStore(t, WithLogger(logger.Wrap(zap.New(core))))
	ctx := context.Background()

	require.NoError(t, s.RecordDiagnosis(ctx, "a", "from-a"))
	require.NoError(t, s.RecordDiagnosis(ctx, "b", "from-b"))

	_, err := s.RenameUser(ctx, "a", "b")
	require.NoError(t, err)

	all := s.AllProfiles(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "from-a", all["b"].History[0].Result)
	assert.Equal(t, 1, logs.FilterMessage("rename overwrites existing profile").Len())
}

func TestRenameUserWithoutProfile(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.RenameUser(ctx, "ghost", "neon")
	require.NoError(t, err)
	assert.Empty(t, s.AllProfiles(ctx))
	u, _ := s.CurrentUser(ctx)
	assert.Equal(t, "neon", u)
}

func TestRenameUserSameName(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.RecordDiagnosis(ctx, "kay", "r"))

	_, err := s.RenameUser(ctx, "kay", "kay")
	require.NoError(t, err)
	_, ok := s.Profile(ctx, "kay")
	assert.True(t, ok, "renaming to the same name must not delete the profile")
}

func TestRenameUserEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.RenameUser(context.Background(), "kay", "  ")
	assert.ErrorIs(t, err, ErrEmptyUsername)
}

func TestClearHistory(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	_, err := s.Login(ctx, "reyna")
	require.NoError(t, err)
	require.NoError(t, s.RecordDiagnosis(ctx, "reyna", "r1"))
	require.NoError(t, s.RecordDiagnosis(ctx, "reyna", "r2"))
	before, _ := s.Profile(ctx, "reyna")

	require.NoError(t, s.ClearHistory(ctx, "reyna"))

	after, ok := s.Profile(ctx, "reyna")
	require.True(t, ok)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.NotNil(t, after.History)
	assert.Len(t, after.History, 0)
}

func TestClearHistoryMissingProfile(t *testing.T) {
	s, kv := newTestStore(t)
	require.NoError(t, s.ClearHistory(context.Background(), "nobody"))
	_, ok, _ := kv.Get(context.Background(), KeyPlayersData)
	assert.False(t, ok)
}

func TestSaveAllProfilesRoundTrip(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.RecordDiagnosis(ctx, "a", "r1"))
	require.NoError(t, s.RecordDiagnosis(ctx, "b", "r2"))
	require.NoError(t, s.ClearHistory(ctx, "b"))

	first, _, err := kv.Get(ctx, KeyPlayersData)
	require.NoError(t, err)

	require.NoError(t, s.SaveAllProfiles(ctx, s.AllProfiles(ctx)))
	second, _, err := kv.Get(ctx, KeyPlayersData)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRoundTripPreservesForeignTimestamps(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()
	raw := `{"jett":{"createdAt":"2025-01-02T03:04:05.678Z","lastActivity":"2025-01-02T03:04:05.678Z","history":[{"id":"1735787045678","result":"🎯 Aim & Dueling <3","timestamp":"2025-01-02T03:04:05.678Z","date":"2 Januari 2025 pukul 10.04"}]}}`
	require.NoError(t, kv.Set(ctx, KeyPlayersData, raw))

	require.NoError(t, s.SaveAllProfiles(ctx, s.AllProfiles(ctx)))
	got, _, _ := kv.Get(ctx, KeyPlayersData)
	assert.Equal(t, raw, got)
}

func TestSaveAllProfilesNilHistory(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveAllProfiles(ctx, Profiles{"x": {CreatedAt: "c"}}))
	got, _, _ := kv.Get(ctx, KeyPlayersData)
	assert.JSONEq(t, `{"x":{"createdAt":"c","history":[]}}`, got)
}

func TestPersistedShape(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.RecordDiagnosis(ctx, "jett", "🎯 Area Improvement: Aim & Dueling"))

	got, _, _ := kv.Get(ctx, KeyPlayersData)
	assert.JSONEq(t, `{
		"jett": {
			"createdAt": "2026-10-16T14:05:00.000Z",
			"lastActivity": "2026-10-16T14:05:00.000Z",
			"history": [{
				"id": "id-1",
				"result": "🎯 Area Improvement: Aim & Dueling",
				"timestamp": "2026-10-16T14:05:00.000Z",
				"date": "16 Oktober 2026 pukul 14.05"
			}]
		}
	}`, got)
}

func TestNewEntryIDIsTimeOrdered(t *testing.T) {
	a := newEntryID()
	b := newEntryID()
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
}
