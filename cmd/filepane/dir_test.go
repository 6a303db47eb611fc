package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/filepane/pkg/ui/event"
)

func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "Docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), make([]byte, 2048), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "main.go"), []byte("package main\n"), 0o644))
	return root
}

func names(items []event.FileItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestReadDirOrdering(t *testing.T) {
	root := makeTree(t)

	items, err := readDir(root, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Docs", "src", "a.txt", "b.txt"}, names(items))

	items, err = readDir(root, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Docs", "src", ".hidden", "a.txt", "b.txt"}, names(items))
}

func TestReadDirMetadata(t *testing.T) {
	root := makeTree(t)

	items, err := readDir(root, false)
	require.NoError(t, err)

	dir := items[indexOf(items, "src")]
	assert.True(t, dir.IsDir)
	assert.Equal(t, "-", dir.Size)
	assert.Equal(t, byte('d'), dir.Mode[0])

	file := items[indexOf(items, "b.txt")]
	assert.False(t, file.IsDir)
	assert.Equal(t, "2.0 kB", file.Size)
	assert.Equal(t, "-rw-r--r--", file.Mode)
	assert.Len(t, file.ModifyTime, len(modifyTimeLayout))
}

func TestReadDirFollowsDirectoryLinks(t *testing.T) {
	root := makeTree(t)
	require.NoError(t, os.Symlink(filepath.Join(root, "src"), filepath.Join(root, "link")))

	items, err := readDir(root, false)
	require.NoError(t, err)
	assert.True(t, items[indexOf(items, "link")].IsDir)
}

func TestReadDirMissing(t *testing.T) {
	_, err := readDir(filepath.Join(t.TempDir(), "gone"), false)
	assert.True(t, os.IsNotExist(err))
}

func TestIndexOf(t *testing.T) {
	items := []event.FileItem{{Name: "a"}, {Name: "b"}}
	assert.Equal(t, 1, indexOf(items, "b"))
	assert.Equal(t, -1, indexOf(items, "z"))
}
