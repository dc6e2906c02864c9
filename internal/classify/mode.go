package classify

import (
	"fmt"
	"strings"
)

// Mode selects which properties a file is checked for.
type Mode uint8

const (
	Plain Mode = 1 << iota // only accepted characters
	Trim                   // no trailing whitespace on any line
	Both = Plain | Trim
)

// ParseMode accepts plain, trim, both and the numeric forms 1, 2, 3.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "1":
		return Plain, nil
	case "trim", "trimmed", "2":
		return Trim, nil
	case "both", "", "3":
		return Both, nil
	}
	return 0, fmt.Errorf("invalid mode %q: must be one of plain, trim, both", s)
}

// Plain reports whether plain-text checking is enabled.
func (m Mode) Plain() bool { return m&Plain != 0 }

// Trim reports whether trailing-whitespace checking is enabled.
func (m Mode) Trim() bool { return m&Trim != 0 }

// String describes the kind of text a correct file has.
func (m Mode) String() string {
	switch m {
	case Plain:
		return "plain text"
	case Trim:
		return "trimmed text"
	default:
		return "plain trimmed text"
	}
}
