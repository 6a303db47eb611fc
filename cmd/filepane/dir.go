package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"

	"github.com/odvcencio/filepane/pkg/ui/event"
)

const modifyTimeLayout = "2006-01-02 15:04"

// readDir lists path as file rows: directories first, then by name.
// Entries whose metadata cannot be read are shown without it.
func readDir(path string, hidden bool) ([]event.FileItem, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	items := make([]event.FileItem, 0, len(entries))
	for _, e := range entries {
		if !hidden && strings.HasPrefix(e.Name(), ".") {
			continue
		}
		items = append(items, fileItem(path, e))
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsDir != items[j].IsDir {
			return items[i].IsDir
		}
		return fold(items[i].Name) < fold(items[j].Name)
	})
	return items, nil
}

func fileItem(dir string, e os.DirEntry) event.FileItem {
	item := event.FileItem{Name: e.Name(), IsDir: e.IsDir()}

	info, err := e.Info()
	if err != nil {
		item.Mode = "?"
		return item
	}
	// Follow symlinks so links to directories can be entered.
	if info.Mode()&os.ModeSymlink != 0 {
		if target, err := os.Stat(filepath.Join(dir, e.Name())); err == nil {
			item.IsDir = target.IsDir()
		}
	}

	item.ModifyTime = info.ModTime().Format(modifyTimeLayout)
	item.Mode = info.Mode().String()
	if item.IsDir {
		item.Size = "-"
	} else {
		item.Size = humanize.Bytes(uint64(info.Size()))
	}
	return item
}

// indexOf returns the row named name, or -1.
func indexOf(items []event.FileItem, name string) int {
	for i, it := range items {
		if it.Name == name {
			return i
		}
	}
	return -1
}

// fold returns the Unicode case-folded form of s, for ordering and
// matching names without regard to case.
func fold(s string) string {
	return cases.Fold().String(s)
}
