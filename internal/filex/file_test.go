package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirs(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b", "data.db")

	require.NoError(t, EnsureParentDir(target))

	info, err := os.Stat(filepath.Join(base, "a", "b"))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsureParentDir_BareFileName(t *testing.T) {
	require.NoError(t, EnsureParentDir("local.db"))
}

func TestReadImage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	want := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	require.NoError(t, os.WriteFile(path, want, 0o600))

	got, err := ReadImage(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadImage_RejectsUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hi"), 0o600))

	_, err := ReadImage(path)
	require.Error(t, err)
}

func TestReadImage_MissingFile(t *testing.T) {
	_, err := ReadImage(filepath.Join(t.TempDir(), "gone.png"))
	require.Error(t, err)
}
