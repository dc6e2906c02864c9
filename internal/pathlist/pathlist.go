// Package pathlist reads lists of files and folders to check.
package pathlist

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a list of paths, one per line. Blank lines and lines starting
// with # are skipped, repeated entries are kept once. A path of "-" reads
// standard input.
func Load(path string) ([]string, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading path list %s: %w", path, err)
	}
	return Parse(string(raw)), nil
}

// Parse splits raw list text into de-duplicated paths.
func Parse(raw string) []string {
	lines := strings.Split(raw, "\n")
	seen := make(map[string]struct{}, len(lines))
	var result []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; !ok {
			seen[line] = struct{}{}
			result = append(result, line)
		}
	}
	return result
}
