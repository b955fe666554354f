package prefs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SetGet_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SetTheme(Light))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Theme()
	require.NoError(t, err)
	assert.Equal(t, Light, got)
}

func TestStore_Set_Overwrites(t *testing.T) {
	s := openTemp(t)

	require.NoError(t, s.Set("k", "one"))
	require.NoError(t, s.Set("k", "two"))

	v, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", v)

	_, ok, err = s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Theme_UsesDetection_When_Unset(t *testing.T) {
	s := openTemp(t)

	s.detect = func() bool { return false }
	got, err := s.Theme()
	require.NoError(t, err)
	assert.Equal(t, Light, got)

	s.detect = func() bool { return true }
	got, err = s.Theme()
	require.NoError(t, err)
	assert.Equal(t, Dark, got)
}

func TestStore_SetTheme_RejectsUnknownMode(t *testing.T) {
	s := openTemp(t)

	err := s.SetTheme("sepia")
	assert.True(t, errors.Is(err, ErrInvalidMode))
}

func TestStore_MemoryOnly_When_PathEmpty(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	s.detect = func() bool { return true }

	require.NoError(t, s.SetTheme(Light))
	got, err := s.Theme()
	require.NoError(t, err)
	assert.Equal(t, Light, got)
	assert.NoError(t, s.Close())
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Dark, Toggle(Light))
	assert.Equal(t, Light, Toggle(Dark))
}
