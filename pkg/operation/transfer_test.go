package operation

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestCopyFile tests content, mode and mtime carry-over
func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")

	require.NoError(t, os.WriteFile(src, []byte("payload"), 0600))
	mtime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, time.Now(), mtime))

	require.NoError(t, copyFile(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.True(t, info.ModTime().Equal(mtime), "mtime should be preserved")

	// No temp leftovers beside the destination
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

// 🧪 TestCopyFileMissingSource tests the error path leaves nothing behind
func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()

	err := copyFile(filepath.Join(dir, "absent.bin"), filepath.Join(dir, "dst.bin"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading source info")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// 🧪 TestMoveFileUnremovableSource tests that a failed move never leaves the
// file in both trees
func TestMoveFileUnremovableSource(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not bind root")
	}

	dir := t.TempDir()
	srcDir := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(srcDir, 0755))
	src := filepath.Join(srcDir, "src.bin")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0644))

	// A read-only parent makes the rename and the source removal fail while
	// the file itself stays readable for the copy fallback.
	require.NoError(t, os.Chmod(srcDir, 0555))
	t.Cleanup(func() { _ = os.Chmod(srcDir, 0755) })

	dst := filepath.Join(dir, "dst.bin")
	err := moveFile(src, dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "removing source after copy")

	_, err = os.Stat(src)
	assert.NoError(t, err, "source must be left untouched")
	_, err = os.Stat(dst)
	assert.True(t, os.IsNotExist(err), "failed move must not leave a destination copy")
}

// 🧪 TestMoveFile tests that a move leaves no source entry behind
func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0644))

	require.NoError(t, moveFile(src, dst))

	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
}
