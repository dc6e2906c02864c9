package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// File mirrors the keys accepted in a TOML configuration file. Unset keys
// leave the corresponding option alone.
type File struct {
	Encoding *string `toml:"encoding"`
	Suffixes *string `toml:"suffixes"`
	Mode     *string `toml:"mode"`
	Recurse  *bool   `toml:"recurse"`
	Hidden   *bool   `toml:"hidden"`
	Show     *string `toml:"show"`
	Format   *string `toml:"format"`
	NoColor  *bool   `toml:"no_color"`
	Quiet    *bool   `toml:"quiet"`
	OnError  *string `toml:"on_error"`
}

// LoadFile reads and parses a TOML configuration file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &f, nil
}

// Apply copies every key set in the file into opts, except options for
// which explicit reports true. explicit receives the command-line flag name.
func (f *File) Apply(opts *Options, explicit func(flag string) bool) {
	setString := func(flag string, dst *string, v *string) {
		if v != nil && !explicit(flag) {
			*dst = *v
		}
	}
	setBool := func(flag string, dst *bool, v *bool) {
		if v != nil && !explicit(flag) {
			*dst = *v
		}
	}

	setString("encoding", &opts.Encoding, f.Encoding)
	setString("suffixes", &opts.Suffixes, f.Suffixes)
	setString("mode", &opts.Mode, f.Mode)
	setBool("recurse", &opts.Recurse, f.Recurse)
	setBool("hidden", &opts.Hidden, f.Hidden)
	setString("show", &opts.Show, f.Show)
	setString("format", &opts.OutputFormat, f.Format)
	setBool("no-color", &opts.NoColor, f.NoColor)
	setBool("quiet", &opts.Quiet, f.Quiet)
	setString("on-error", &opts.OnErrorCmd, f.OnError)
}
