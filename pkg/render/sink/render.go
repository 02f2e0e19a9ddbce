package sink

import (
	"github.com/matzehuels/archdiagram/pkg/errors"
	"github.com/matzehuels/archdiagram/pkg/fonts"
)

// Options carries the settings shared by every format.
type Options struct {
	Width, Height int
	Fonts         *fonts.Set
	Sizes         fonts.Sizes
	FontFamily    string
}

// Render dispatches to the renderer for format. Zero-valued fields of o
// leave the renderer's defaults in place.
func Render(format string, compose Compose, o Options) ([]byte, error) {
	switch format {
	case FormatPNG:
		var opts []PNGOption
		if o.Width != 0 || o.Height != 0 {
			opts = append(opts, WithCanvasSize(o.Width, o.Height))
		}
		if o.Fonts != nil {
			opts = append(opts, WithFonts(o.Fonts))
		}
		return RenderPNG(compose, opts...)
	case FormatSVG:
		var opts []SVGOption
		if o.Width != 0 || o.Height != 0 {
			opts = append(opts, WithSVGSize(o.Width, o.Height))
		}
		if o.Sizes != (fonts.Sizes{}) {
			opts = append(opts, WithFontSizes(o.Sizes))
		}
		if o.FontFamily != "" {
			opts = append(opts, WithFontFamily(o.FontFamily))
		}
		return RenderSVG(compose, opts...)
	case FormatJSON:
		var opts []JSONOption
		if o.Width != 0 || o.Height != 0 {
			opts = append(opts, WithJSONSize(o.Width, o.Height))
		}
		if o.Fonts != nil {
			sizes := o.Sizes
			if sizes == (fonts.Sizes{}) {
				sizes = fonts.DefaultSizes()
			}
			opts = append(opts, WithJSONFonts(o.Fonts, sizes))
		}
		return RenderJSON(compose, opts...)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
}
