package sink

import (
	"bytes"

	"github.com/matzehuels/archdiagram/pkg/errors"
	"github.com/matzehuels/archdiagram/pkg/fonts"
	"github.com/matzehuels/archdiagram/pkg/scene"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	width, height int
	fonts         *fonts.Set
}

// WithCanvasSize sets the bitmap size (default 1600x1200).
func WithCanvasSize(width, height int) PNGOption {
	return func(r *pngRenderer) { r.width, r.height = width, height }
}

// WithFonts sets the faces used for text (default: embedded font at the
// default sizes).
func WithFonts(fs *fonts.Set) PNGOption {
	return func(r *pngRenderer) { r.fonts = fs }
}

// RenderPNG runs compose on a fresh canvas and encodes the result as PNG.
func RenderPNG(compose Compose, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{width: scene.Width, height: scene.Height}
	for _, opt := range opts {
		opt(&r)
	}
	if r.width <= 0 || r.height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "canvas size %dx%d must be positive", r.width, r.height)
	}
	if r.fonts == nil {
		r.fonts = fonts.Embedded(fonts.DefaultSizes())
	}

	c := NewCanvas(r.width, r.height, r.fonts)
	defer c.Close()

	if err := compose(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "draw scene")
	}

	var buf bytes.Buffer
	if err := c.dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}
