package config

// Options holds all configuration for a plaincheck run.
type Options struct {
	// Input
	Paths    []string
	FromFile string // file with one path per line
	Encoding string // charset name, "local" or "raw"
	Suffixes string // empty = check every file
	Recurse  bool
	Hidden   bool

	// Checks
	Mode string // "plain", "trim", "both" (or 1, 2, 3)

	// Output
	Show         string // "all", "correct", "errors"
	OutputFile   string
	OutputFormat string // "text", "json", "csv"
	Quiet        bool
	NoColor      bool
	Tree         bool

	// Hooks
	OnErrorCmd string

	ConfigFile string
}

// Defaults returns the options used when nothing is configured.
func Defaults() Options {
	return Options{
		Encoding:     "local",
		Mode:         "both",
		Show:         "all",
		OutputFormat: "text",
	}
}
