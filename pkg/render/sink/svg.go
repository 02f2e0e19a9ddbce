package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"strconv"

	"github.com/matzehuels/archdiagram/pkg/draw"
	"github.com/matzehuels/archdiagram/pkg/errors"
	"github.com/matzehuels/archdiagram/pkg/fonts"
	"github.com/matzehuels/archdiagram/pkg/palette"
	"github.com/matzehuels/archdiagram/pkg/scene"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height int
	sizes         fonts.Sizes
	family        string
}

// WithSVGSize sets the viewport size (default 1600x1200).
func WithSVGSize(width, height int) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = width, height }
}

// WithFontSizes sets the per-role font sizes.
func WithFontSizes(s fonts.Sizes) SVGOption { return func(r *svgRenderer) { r.sizes = s } }

// WithFontFamily sets the CSS font-family for all text.
func WithFontFamily(f string) SVGOption { return func(r *svgRenderer) { r.family = f } }

// SVG is a [draw.Drawer] that writes SVG elements into a buffer.
type SVG struct {
	buf   bytes.Buffer
	sizes fonts.Sizes
}

// Rect writes a <rect>. Negative corner order is normalized.
func (s *SVG) Rect(b draw.Box, fill, outline color.Color, width float64) {
	m := b.Min()
	fmt.Fprintf(&s.buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		num(m.X), num(m.Y), num(b.Width()), num(b.Height()),
		palette.Hex(fill), palette.Hex(outline), num(width))
}

// Arrow writes the shaft as a <line> and the head as a <polygon>.
func (s *SVG) Arrow(from, to draw.Point, c color.Color, width float64) {
	hex := palette.Hex(c)
	fmt.Fprintf(&s.buf, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		num(from.X), num(from.Y), num(to.X), num(to.Y), hex, num(width))

	h := draw.ArrowHead(from, to)
	fmt.Fprintf(&s.buf, `  <polygon points="%s,%s %s,%s %s,%s" fill="%s"/>`+"\n",
		num(h[0].X), num(h[0].Y), num(h[1].X), num(h[1].Y), num(h[2].X), num(h[2].Y), hex)
}

// Text writes a <text> element anchored with text-anchor and
// dominant-baseline.
func (s *SVG) Text(str string, at draw.Point, role draw.Role, c color.Color, anchor draw.Anchor) {
	textAnchor := "start"
	if anchor == draw.Middle {
		textAnchor = "middle"
	}
	fmt.Fprintf(&s.buf, `  <text x="%s" y="%s" font-size="%s" fill="%s" text-anchor="%s" dominant-baseline="central">%s</text>`+"\n",
		num(at.X), num(at.Y), num(s.sizes.Of(role)), palette.Hex(c), textAnchor, escapeXML(str))
}

// Err always returns nil; writes to a bytes.Buffer cannot fail.
func (s *SVG) Err() error { return nil }

var _ draw.Drawer = (*SVG)(nil)

// RenderSVG runs compose against an SVG document and returns its bytes.
func RenderSVG(compose Compose, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{
		width:  scene.Width,
		height: scene.Height,
		sizes:  fonts.DefaultSizes(),
		family: fonts.FontFamily,
	}
	for _, opt := range opts {
		opt(&r)
	}

	s := &SVG{sizes: r.sizes}
	if err := compose(s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "draw scene")
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		r.width, r.height, r.width, r.height)
	fmt.Fprintf(&out, "  <style>text { font-family: %s; }</style>\n", escapeXML(r.family))
	out.WriteString(`  <rect width="100%" height="100%" fill="#ffffff"/>` + "\n")
	out.Write(s.buf.Bytes())
	out.WriteString("</svg>\n")
	return out.Bytes(), nil
}

// num formats v with the fewest digits that round-trip.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
