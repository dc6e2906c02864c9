//go:build !windows

package filter

import "strings"

// IsHidden reports whether a directory entry is hidden. On Unix-like
// systems that is any name starting with a dot.
func IsHidden(_ string, name string) bool {
	return strings.HasPrefix(name, ".")
}
