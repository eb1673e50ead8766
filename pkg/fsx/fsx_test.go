// SPDX-License-Identifier: Apache-2.0

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/require"
)

func TestPathExists(t *testing.T) {
	dir := t.TempDir()

	info, exists, err := PathExists(dir)
	require.NoError(t, err)
	require.True(t, exists)
	require.True(t, info.IsDir())

	_, exists, err = PathExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	require.False(t, exists)
}

func TestCreateDirectory_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, CreateDirectory(dir, 0o755))
	require.NoError(t, CreateDirectory(dir, 0o755))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	require.NoError(t, CopyFile(src, dst, 0o755))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "payload", string(content))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	// no stray temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestCopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "missing"), filepath.Join(dir, "dst"), 0o755)
	require.Error(t, err)
	require.True(t, errorx.IsOfType(err, ErrFileRead))
}

func TestContainsLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.conf")

	found, err := ContainsLine(path, "ec_sys")
	require.NoError(t, err)
	require.False(t, found, "missing file is treated as empty")

	require.NoError(t, os.WriteFile(path, []byte("other\nec_sys\n"), 0o644))

	found, err = ContainsLine(path, "ec_sys")
	require.NoError(t, err)
	require.True(t, found)

	found, err = ContainsLine(path, "ec_sys write_support=1")
	require.NoError(t, err)
	require.False(t, found, "partial line must not match")
}

func TestEnsureLineInFile_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ec_sys.conf")

	added, err := EnsureLineInFile(path, "ec_sys", 0o644)
	require.NoError(t, err)
	require.True(t, added)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "ec_sys\n", string(content))
}

func TestEnsureLineInFile_RunTwiceIsByteIdentical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ec_sys.conf")

	added, err := EnsureLineInFile(path, "options ec_sys write_support=1", 0o644)
	require.NoError(t, err)
	require.True(t, added)

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	added, err = EnsureLineInFile(path, "options ec_sys write_support=1", 0o644)
	require.NoError(t, err)
	require.False(t, added)

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureLineInFile_AppendsToExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.conf")
	require.NoError(t, os.WriteFile(path, []byte("overlay"), 0o644))

	added, err := EnsureLineInFile(path, "ec_sys", 0o644)
	require.NoError(t, err)
	require.True(t, added)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "overlay\nec_sys\n", string(content), "missing trailing newline is repaired before appending")
}

func TestRemoveIfExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.NoError(t, RemoveIfExists(path))
	require.NoError(t, RemoveIfExists(path), "second removal is a no-op")

	_, exists, err := PathExists(path)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestRemoveAllIfExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "f"), []byte("x"), 0o644))

	require.NoError(t, RemoveAllIfExists(dir))
	require.NoError(t, RemoveAllIfExists(dir))
}
