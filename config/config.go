// Package config loads fluxfmt.toml into the Options surface: max_line_width,
// indent_unit, include_paths, allow_partial_failure. Decoding goes through
// github.com/BurntSushi/toml, directly onto a typed struct instead of
// decoding into a generic map.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Options is the core's external configuration surface. It has exactly
// these four knobs; adding more is explicitly out of scope.
type Options struct {
	MaxLineWidth        int      `toml:"max_line_width"`
	IndentUnit          int      `toml:"indent_unit"`
	IncludePaths        []string `toml:"include_paths"`
	AllowPartialFailure bool     `toml:"allow_partial_failure"`
}

// Default returns the documented defaults: 100-column width, 4-space indent
// unit, no include paths, and surfacing parse errors rather than silently
// falling back to the original source.
func Default() Options {
	return Options{
		MaxLineWidth:        100,
		IndentUnit:          4,
		IncludePaths:        nil,
		AllowPartialFailure: false,
	}
}

// Load reads and decodes a fluxfmt.toml at path, starting from Default() so
// a config file only needs to mention the fields it overrides. Fields that
// exist in the file but not in Options are reported as warnings rather than
// a decode error, so an unrecognized key never fails the whole parse.
func Load(path string) (Options, []string, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, nil, fmt.Errorf("config: %w", err)
	}
	meta, err := toml.Decode(string(data), &opts)
	if err != nil {
		return opts, nil, fmt.Errorf("config: %s: %w", path, err)
	}
	var warnings []string
	for _, key := range meta.Undecoded() {
		warnings = append(warnings, fmt.Sprintf("config: %s: unknown key %q", path, key.String()))
	}
	if opts.MaxLineWidth <= 0 {
		return opts, warnings, fmt.Errorf("config: %s: max_line_width must be positive, got %d", path, opts.MaxLineWidth)
	}
	if opts.IndentUnit <= 0 {
		return opts, warnings, fmt.Errorf("config: %s: indent_unit must be positive, got %d", path, opts.IndentUnit)
	}
	return opts, warnings, nil
}
