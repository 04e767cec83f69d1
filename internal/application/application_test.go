package application

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetDirectory() {
	once = sync.Once{}
	appDir = ""
	errDir = nil
}

func TestGetApplicationDirectory_HomeOverride(t *testing.T) {
	resetDirectory()
	t.Cleanup(resetDirectory)

	home := filepath.Join(t.TempDir(), "custom")
	t.Setenv("STITCHR_HOME", home)

	dir, err := GetApplicationDirectory()
	require.NoError(t, err)
	assert.Equal(t, home, dir)
}

func TestGetApplicationDirectory_Default(t *testing.T) {
	resetDirectory()
	t.Cleanup(resetDirectory)

	t.Setenv("STITCHR_HOME", "")

	dir, err := GetApplicationDirectory()
	require.NoError(t, err)
	assert.Equal(t, AppName, filepath.Base(dir))
}

func TestEnsureApplicationDirectory(t *testing.T) {
	resetDirectory()
	t.Cleanup(resetDirectory)

	home := filepath.Join(t.TempDir(), "a", "b")
	t.Setenv("STITCHR_HOME", home)

	dir, err := EnsureApplicationDirectory()
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
