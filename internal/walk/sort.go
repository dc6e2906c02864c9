package walk

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Kind classifies a path on disk. Links are followed.
type Kind int

const (
	Other Kind = iota // missing, broken link, device, socket...
	File
	Dir
)

// Entry is one candidate for traversal.
type Entry struct {
	Name   string
	Path   string
	Kind   Kind
	Hidden bool
}

func statKind(path string) Kind {
	info, err := os.Stat(path)
	if err != nil {
		return Other
	}
	switch {
	case info.IsDir():
		return Dir
	case info.Mode().IsRegular():
		return File
	}
	return Other
}

// Sort orders entries with files (and anything that is not a directory)
// first, then by case-folded name, then by exact name.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if (a.Kind == Dir) != (b.Kind == Dir) {
			return b.Kind == Dir
		}
		la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if la != lb {
			return la < lb
		}
		return a.Name < b.Name
	})
}

// SortPaths returns paths in traversal order, keyed on their base names.
func SortPaths(paths []string) []string {
	entries := make([]Entry, len(paths))
	for i, p := range paths {
		name := ""
		if p != "" {
			name = filepath.Base(p)
		}
		entries[i] = Entry{Name: name, Path: p, Kind: statKind(p)}
	}
	Sort(entries)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}
