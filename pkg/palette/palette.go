// Package palette maps the symbolic color names used by the architecture
// scene to concrete colors.
//
// The palette is purely visual styling. Scenes resolve the keys they need
// once, up front, with [Palette.Resolve], so an undefined key is reported
// before anything is drawn and no lookup ever happens for a key the scene
// does not reference.
package palette

import (
	"image/color"
	"maps"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/archdiagram/pkg/errors"
)

// Key is a symbolic color name.
type Key string

// Keys referenced by the architecture scene.
const (
	Frontend Key = "frontend"
	Backend  Key = "backend"
	AI       Key = "ai"
	Database Key = "database"
	External Key = "external"
	Text     Key = "text"
	White    Key = "white"
)

// defaults holds the hex value for every built-in key.
var defaults = map[Key]string{
	Frontend: "#4A90E2", // blue
	Backend:  "#7ED321", // green
	AI:       "#F5A623", // orange
	Database: "#BD10E0", // purple
	External: "#B8E986", // light green
	Text:     "#333333",
	White:    "#FFFFFF",
}

// Palette maps keys to colors. The zero value is an empty palette.
type Palette map[Key]color.RGBA

// Default returns a fresh copy of the built-in palette.
func Default() Palette {
	p := make(Palette, len(defaults))
	for k, hex := range defaults {
		p[k] = MustHex(hex)
	}
	return p
}

// Lookup returns the color for k.
func (p Palette) Lookup(k Key) (color.RGBA, error) {
	c, ok := p[k]
	if !ok {
		return color.RGBA{}, errors.New(errors.ErrCodeUnknownColor, "undefined palette key %q", k)
	}
	return c, nil
}

// Resolve looks up every key and returns the subset of the palette they name.
// It fails on the first undefined key.
func (p Palette) Resolve(keys ...Key) (Palette, error) {
	out := make(Palette, len(keys))
	for _, k := range keys {
		c, err := p.Lookup(k)
		if err != nil {
			return nil, err
		}
		out[k] = c
	}
	return out, nil
}

// With returns a copy of p with the given hex overrides applied.
// Override keys are case-insensitive; new keys are allowed.
func (p Palette) With(overrides map[string]string) (Palette, error) {
	out := maps.Clone(p)
	if out == nil {
		out = make(Palette, len(overrides))
	}
	for name, hex := range overrides {
		c, err := ParseHex(hex)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "palette key %q", name)
		}
		out[Key(strings.ToLower(name))] = c
	}
	return out, nil
}

// Keys returns the palette keys in sorted order.
func (p Palette) Keys() []Key {
	return slices.Sorted(maps.Keys(p))
}

// ParseHex parses "#RRGGBB" or "#RGB" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.ToLower(strings.TrimSpace(s))
	if len(hex) != 4 && len(hex) != 7 {
		return color.RGBA{}, errors.New(errors.ErrCodeInvalidColor, "parse color %q: want #RGB or #RRGGBB", s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parse color %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustHex is like [ParseHex] but panics on malformed input.
// It is meant for package-level literals.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
