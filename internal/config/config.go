// Package config loads wsvcat configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// Config holds the wsvcat defaults that can be set from a config file.
// Command-line flags override it.
type Config struct {
	// Comment is the comment character; empty disables comment filtering.
	Comment string `toml:"comment"`
	// ExtraPrefix is the prefix for synthetic column names.
	ExtraPrefix string `toml:"extra_prefix"`
	// JSON prints records as JSON objects, one per line.
	JSON bool `toml:"json"`
	// Unordered uses plain map records instead of order-preserving ones.
	Unordered bool `toml:"unordered"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Comment:     "#",
		ExtraPrefix: "extra",
	}
}

// Load reads config: defaults, then the TOML file when it exists.
// An empty path means "wsvcat.toml" in the working directory; a missing
// file is not an error, a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = "wsvcat.toml"
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// CommentRune returns the configured comment character as a rune,
// or 0 when comment filtering is disabled.
func (c Config) CommentRune() (rune, error) {
	if c.Comment == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(c.Comment)
	if r == utf8.RuneError || size != len(c.Comment) {
		return 0, fmt.Errorf("config: comment must be a single character, got %q", c.Comment)
	}
	return r, nil
}
