// Package config holds the settings for rendering the architecture diagram.
//
// [Default] reproduces the diagram exactly as designed. A TOML file loaded
// with [Load] overrides any subset of the defaults:
//
//	output  = "docs/architecture.png"
//	font    = "/Library/Fonts/Arial.ttf"
//	formats = ["png", "svg"]
//
//	[font_sizes]
//	title = 48
//
//	[palette]
//	frontend = "#3366CC"
//
// Unknown keys are rejected so that typos do not pass silently.
package config

import (
	stderrors "errors"
	"io/fs"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/archdiagram/pkg/errors"
	"github.com/matzehuels/archdiagram/pkg/fonts"
	"github.com/matzehuels/archdiagram/pkg/palette"
	"github.com/matzehuels/archdiagram/pkg/render/sink"
)

// DefaultOutput is the file the diagram is written to, relative to the
// working directory.
const DefaultOutput = "finance-architecture-corrected.png"

// Config is the full set of render settings.
type Config struct {
	Output     string            `toml:"output"`
	Font       string            `toml:"font"`
	FontFamily string            `toml:"font_family"`
	Formats    []string          `toml:"formats"`
	FontSizes  fonts.Sizes       `toml:"font_sizes"`
	Palette    map[string]string `toml:"palette"`
}

// Default returns the settings the diagram was designed with.
func Default() Config {
	return Config{
		Output:     DefaultOutput,
		Font:       fonts.DefaultPath,
		FontFamily: fonts.FontFamily,
		Formats:    []string{sink.FormatPNG},
		FontSizes:  fonts.DefaultSizes(),
	}
}

// Load decodes the TOML file at path over [Default] and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks paths, formats, sizes, and palette overrides.
func (c Config) Validate() error {
	if err := errors.ValidatePath("output", c.Output); err != nil {
		return err
	}
	if err := errors.ValidatePath("font", c.Font); err != nil {
		return err
	}
	if len(c.Formats) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "at least one format is required")
	}
	if err := errors.ValidateFormats(c.Formats, sink.ValidFormats); err != nil {
		return err
	}

	s := c.FontSizes
	for _, size := range []struct {
		name string
		v    float64
	}{{"title", s.Title}, {"header", s.Header}, {"text", s.Body}, {"small", s.Small}} {
		if size.v <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "font_sizes.%s must be positive, got %g", size.name, size.v)
		}
	}

	if _, err := c.ResolvePalette(); err != nil {
		return err
	}
	return nil
}

// ResolvePalette returns the default palette with the configured overrides.
func (c Config) ResolvePalette() (palette.Palette, error) {
	return palette.Default().With(c.Palette)
}
