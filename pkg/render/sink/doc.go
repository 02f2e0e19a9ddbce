// Package sink renders scenes to output formats.
//
// Every renderer implements [draw.Drawer] and is driven by a [Compose]
// function, normally a scene from package scene:
//
//	png, err := sink.RenderPNG(func(d draw.Drawer) error {
//	    return scene.Architecture(d, palette.Default())
//	}, sink.WithFonts(fonts.Load(fonts.DefaultPath, fonts.DefaultSizes())))
//
// Formats:
//   - PNG: rasterized on a gogpu/gg canvas with a white background
//   - SVG: one element per draw call, in call order
//   - JSON: the display list (ordered draw operations) for diffing and tooling
//
// All renderers are deterministic: the same scene and options always yield
// the same bytes.
package sink

import "github.com/matzehuels/archdiagram/pkg/draw"

// Compose issues draw calls on d and returns the first error it hit.
type Compose func(d draw.Drawer) error

// Format names accepted by [Render].
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of formats [Render] understands.
var ValidFormats = map[string]bool{FormatPNG: true, FormatSVG: true, FormatJSON: true}
