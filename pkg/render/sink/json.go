package sink

import (
	"encoding/json"
	"image/color"

	"github.com/matzehuels/archdiagram/pkg/draw"
	"github.com/matzehuels/archdiagram/pkg/errors"
	"github.com/matzehuels/archdiagram/pkg/fonts"
	"github.com/matzehuels/archdiagram/pkg/palette"
	"github.com/matzehuels/archdiagram/pkg/scene"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	width, height int
	sizes         fonts.Sizes
	font          string
	fallback      bool
}

// WithJSONSize records the canvas size (default 1600x1200).
func WithJSONSize(width, height int) JSONOption {
	return func(r *jsonRenderer) { r.width, r.height = width, height }
}

// WithJSONFonts records the font name, fallback state and sizes of fs.
func WithJSONFonts(fs *fonts.Set, sizes fonts.Sizes) JSONOption {
	return func(r *jsonRenderer) {
		r.font, r.fallback, r.sizes = fs.Name, fs.Fallback, sizes
	}
}

// Op is one recorded draw call.
type Op struct {
	Op     string       `json:"op"`
	Box    *[4]float64  `json:"box,omitempty"`
	From   *[2]float64  `json:"from,omitempty"`
	To     *[2]float64  `json:"to,omitempty"`
	Head   [][2]float64 `json:"head,omitempty"`
	At     *[2]float64  `json:"at,omitempty"`
	Text   string       `json:"text,omitempty"`
	Role   string       `json:"role,omitempty"`
	Anchor string       `json:"anchor,omitempty"`
	Fill   string       `json:"fill,omitempty"`
	Stroke string       `json:"stroke,omitempty"`
	Width  float64      `json:"width,omitempty"`
}

// DisplayList is a [draw.Drawer] that records every call as an [Op].
type DisplayList struct {
	Ops []Op
}

// Rect records a "rect" op with the box corners as given.
func (l *DisplayList) Rect(b draw.Box, fill, outline color.Color, width float64) {
	l.Ops = append(l.Ops, Op{
		Op:     "rect",
		Box:    &[4]float64{b.X1, b.Y1, b.X2, b.Y2},
		Fill:   palette.Hex(fill),
		Stroke: palette.Hex(outline),
		Width:  width,
	})
}

// Arrow records an "arrow" op including the computed head triangle.
func (l *DisplayList) Arrow(from, to draw.Point, c color.Color, width float64) {
	h := draw.ArrowHead(from, to)
	l.Ops = append(l.Ops, Op{
		Op:     "arrow",
		From:   &[2]float64{from.X, from.Y},
		To:     &[2]float64{to.X, to.Y},
		Head:   [][2]float64{{h[0].X, h[0].Y}, {h[1].X, h[1].Y}, {h[2].X, h[2].Y}},
		Stroke: palette.Hex(c),
		Width:  width,
	})
}

// Text records a "text" op.
func (l *DisplayList) Text(s string, at draw.Point, role draw.Role, c color.Color, anchor draw.Anchor) {
	l.Ops = append(l.Ops, Op{
		Op:     "text",
		At:     &[2]float64{at.X, at.Y},
		Text:   s,
		Role:   role.String(),
		Anchor: string(anchor),
		Fill:   palette.Hex(c),
	})
}

// Err always returns nil.
func (l *DisplayList) Err() error { return nil }

var _ draw.Drawer = (*DisplayList)(nil)

type jsonOutput struct {
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Font     string      `json:"font,omitempty"`
	Fallback bool        `json:"font_fallback,omitempty"`
	Sizes    fonts.Sizes `json:"font_sizes"`
	Ops      []Op        `json:"ops"`
}

// RenderJSON runs compose against a [DisplayList] and returns it as a
// pretty-printed JSON document.
func RenderJSON(compose Compose, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{width: scene.Width, height: scene.Height, sizes: fonts.DefaultSizes()}
	for _, opt := range opts {
		opt(&r)
	}

	var l DisplayList
	if err := compose(&l); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "draw scene")
	}

	out := jsonOutput{
		Width:    r.width,
		Height:   r.height,
		Font:     r.font,
		Fallback: r.fallback,
		Sizes:    r.sizes,
		Ops:      l.Ops,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode display list")
	}
	return append(data, '\n'), nil
}
