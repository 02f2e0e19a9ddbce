// Package fonts loads the faces used to draw scene text.
//
// A scene asks for text by [draw.Role]; a [Set] maps each role to a face at
// its configured size. Every face in a Set comes from the same font source:
// either the requested font file or, when that file cannot be loaded for any
// reason, the Go Regular font embedded in the binary. The fallback is applied
// to all roles at once, never to a single size.
package fonts

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/archdiagram/pkg/draw"
)

// DefaultPath is the platform font the architecture diagram asks for first.
const DefaultPath = "/System/Library/Fonts/Helvetica.ttc"

// FontFamily is the CSS font-family list written into SVG output.
const FontFamily = `Helvetica, 'Helvetica Neue', Arial, sans-serif`

// FallbackName identifies the embedded font in logs and JSON output.
const FallbackName = "Go Regular (embedded)"

// Sizes holds the font size, in pixels, for each text role.
type Sizes struct {
	Title  float64 `toml:"title" json:"title"`
	Header float64 `toml:"header" json:"header"`
	Body   float64 `toml:"text" json:"text"`
	Small  float64 `toml:"small" json:"small"`
}

// DefaultSizes returns the sizes used by the architecture diagram.
func DefaultSizes() Sizes {
	return Sizes{Title: 42, Header: 30, Body: 22, Small: 18}
}

// Of returns the size for r. Unknown roles get the small size.
func (s Sizes) Of(r draw.Role) float64 {
	switch r {
	case draw.Title:
		return s.Title
	case draw.Header:
		return s.Header
	case draw.Body:
		return s.Body
	default:
		return s.Small
	}
}

// Set is a complete set of faces, one per role.
type Set struct {
	faces  map[draw.Role]text.Face
	source *text.FontSource

	// Name is the loaded font's name, or FallbackName.
	Name string
	// Fallback is true when the embedded font replaced the requested one.
	Fallback bool
	// Cause is why the requested font was rejected. Nil unless Fallback.
	Cause error
}

// Face returns the face for r.
func (s *Set) Face(r draw.Role) text.Face {
	if f, ok := s.faces[r]; ok {
		return f
	}
	return s.faces[draw.Small]
}

// Close releases the underlying font source.
func (s *Set) Close() error {
	if s.source == nil {
		return nil
	}
	return s.source.Close()
}

// Load builds a Set from the font file at path. Any failure to read or parse
// the file (missing file, font collections such as .ttc, corrupt data) is
// masked: the returned Set uses the embedded font for every role and records
// the reason in Cause.
func Load(path string, sizes Sizes) *Set {
	src, err := openSource(path)
	if err != nil {
		set := Embedded(sizes)
		set.Cause = err
		return set
	}
	return newSet(src, src.Name(), sizes)
}

// Embedded builds a Set from the embedded Go Regular font.
func Embedded(sizes Sizes) *Set {
	set := newSet(embeddedSource(), FallbackName, sizes)
	set.Fallback = true
	// the embedded source is shared; Close must not release it
	set.source = nil
	return set
}

func openSource(path string) (src *text.FontSource, err error) {
	// The parser panics on some malformed tables; treat that as a load failure.
	defer func() {
		if r := recover(); r != nil {
			src, err = nil, fmt.Errorf("parse font %s: %v", path, r)
		}
	}()
	return text.NewFontSourceFromFile(path)
}

func newSet(src *text.FontSource, name string, sizes Sizes) *Set {
	faces := make(map[draw.Role]text.Face, len(draw.Roles))
	for _, r := range draw.Roles {
		faces[r] = src.Face(sizes.Of(r))
	}
	return &Set{faces: faces, source: src, Name: name}
}

var (
	embedded     *text.FontSource
	embeddedOnce sync.Once
)

// embeddedSource parses the embedded font once per process.
func embeddedSource() *text.FontSource {
	embeddedOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			panic(fmt.Sprintf("fonts: embedded Go Regular failed to parse: %v", err))
		}
		embedded = src
	})
	return embedded
}
