package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gderrors "gitdesk.dev/gitdesk/internal/errors"
	"gitdesk.dev/gitdesk/internal/store"
)

func TestFileStore(t *testing.T) {
	t.Run("missing file yields empty store", func(t *testing.T) {
		s, err := store.OpenFile(filepath.Join(t.TempDir(), "settings.json"))
		require.NoError(t, err)

		_, ok := s.Get("repos")
		require.False(t, ok)
	})

	t.Run("round trips values through disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "settings.json")
		s, err := store.OpenFile(path)
		require.NoError(t, err)

		require.NoError(t, s.Set("repos", []string{"/a", "/b"}))
		require.NoError(t, s.Set("last_opened_repo", "/b"))
		require.NoError(t, s.Save())

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())

		reopened, err := store.OpenFile(path)
		require.NoError(t, err)
		require.Equal(t, []string{"/a", "/b"}, store.GetStrings(reopened, "repos"))
		require.Equal(t, "/b", store.GetString(reopened, "last_opened_repo"))
	})

	t.Run("unsaved values are not persisted", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		s, err := store.OpenFile(path)
		require.NoError(t, err)
		require.NoError(t, s.Set("repos", []string{"/a"}))

		reopened, err := store.OpenFile(path)
		require.NoError(t, err)
		require.Empty(t, store.GetStrings(reopened, "repos"))
	})

	t.Run("corrupt file is a store error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

		_, err := store.OpenFile(path)
		require.ErrorIs(t, err, gderrors.ErrStore)
	})
}

func TestTypedGetters(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Set("last_opened_repo", 42))
	require.NoError(t, s.Set("repos", []any{"/a", 3, "/b"}))

	require.Equal(t, "", store.GetString(s, "last_opened_repo"))
	require.Equal(t, []string{"/a", "/b"}, store.GetStrings(s, "repos"))
	require.Equal(t, "", store.GetString(s, "missing"))
}

func TestMemoryStoreSaveErr(t *testing.T) {
	s := store.NewMemoryStore()
	s.SaveErr = errors.New("read-only")
	require.NoError(t, s.Set("repos", []string{"/a"}))

	err := s.Save()
	require.ErrorIs(t, err, gderrors.ErrStore)
	_, ok := s.Saved("repos")
	require.False(t, ok)
}
