package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// testKV exercises the KV contract shared by every backend.
func testKV(t *testing.T, kv KV) {
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "current_user")
	require.NoError(t, err)
	assert.False(t, ok, "missing key should report ok=false")

	require.NoError(t, kv.Set(ctx, "current_user", "jett"))
	v, ok, err := kv.Get(ctx, "current_user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "jett", v)

	require.NoError(t, kv.Set(ctx, "current_user", "sage"))
	v, _, err = kv.Get(ctx, "current_user")
	require.NoError(t, err)
	assert.Equal(t, "sage", v, "set should overwrite")

	require.NoError(t, kv.Set(ctx, "players_data", `{"sage":{}}`))
	require.NoError(t, kv.Delete(ctx, "current_user"))
	_, ok, err = kv.Get(ctx, "current_user")
	require.NoError(t, err)
	assert.False(t, ok, "deleted key should be absent")

	v, ok, err = kv.Get(ctx, "players_data")
	require.NoError(t, err)
	assert.True(t, ok, "delete must not touch other keys")
	assert.Equal(t, `{"sage":{}}`, v)

	require.NoError(t, kv.Delete(ctx, "never-set"), "deleting a missing key is not an error")
}

func TestMemoryKV(t *testing.T) {
	testKV(t, NewMemory())
}

func TestMemoryKVClosed(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.Close())
	_, _, err := m.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, m.Set(context.Background(), "k", "v"), ErrClosed)
}

func TestSQLiteKV(t *testing.T) {
	testKV(t, openTestSQLite(t))
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "current_user", "omen"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "current_user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "omen", v)
}

func TestSQLitePragmasApplied(t *testing.T) {
	s := openTestSQLite(t)

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var sync string
	require.NoError(t, s.DB().QueryRow("PRAGMA synchronous").Scan(&sync))
	assert.Equal(t, "1", sync) // NORMAL = 1
}

func TestRedisKV(t *testing.T) {
	addr := os.Getenv("VALODIAG_TEST_REDIS")
	if addr == "" {
		t.Skip("VALODIAG_TEST_REDIS not set")
	}
	r, err := NewRedis(context.Background(), RedisOptions{Addr: addr, Prefix: "valodiag-test:" + t.Name() + ":"})
	require.NoError(t, err)
	defer r.Close()
	testKV(t, r)
}

func TestDefaultDBPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "nested", "x.db")
		t.Setenv("VALODIAG_DB", p)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, p, got)
		assert.DirExists(t, filepath.Dir(p))
	})

	t.Run("xdg data home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("VALODIAG_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "valodiag", "valodiag.db"), got)
	})
}
