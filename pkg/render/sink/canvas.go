package sink

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/matzehuels/archdiagram/pkg/draw"
	"github.com/matzehuels/archdiagram/pkg/fonts"
)

// Canvas is a [draw.Drawer] that paints onto an in-memory bitmap.
// The first failed fill or stroke is kept and all later calls are no-ops.
type Canvas struct {
	dc    *gg.Context
	fonts *fonts.Set
	err   error
}

// NewCanvas allocates a white width x height canvas that draws text with fs.
func NewCanvas(width, height int, fs *fonts.Set) *Canvas {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)
	return &Canvas{dc: dc, fonts: fs}
}

// Rect fills b and strokes its outline. Box corners are inclusive pixel
// coordinates, so the painted area is one pixel wider and taller than
// b.Width() x b.Height(), and the outline lies entirely inside it. When the
// outline is at least as wide as the box, the whole box takes the outline
// color.
func (c *Canvas) Rect(b draw.Box, fill, outline color.Color, width float64) {
	if c.err != nil {
		return
	}
	m := b.Min()
	w, h := b.Width()+1, b.Height()+1

	if !b.Empty() {
		c.dc.DrawRectangle(m.X, m.Y, w, h)
		c.dc.SetColor(fill)
		if c.fail(c.dc.Fill()) {
			return
		}
	}
	if width <= 0 {
		return
	}

	c.dc.SetColor(outline)
	if w <= width || h <= width {
		c.dc.DrawRectangle(m.X, m.Y, w, h)
		c.fail(c.dc.Fill())
		return
	}
	inset := width / 2
	c.dc.DrawRectangle(m.X+inset, m.Y+inset, w-width, h-width)
	c.dc.SetLineWidth(width)
	c.fail(c.dc.Stroke())
}

// Arrow strokes the shaft and fills the axis-aligned head.
func (c *Canvas) Arrow(from, to draw.Point, col color.Color, width float64) {
	if c.err != nil {
		return
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	if from != to {
		c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
		if c.fail(c.dc.Stroke()) {
			return
		}
	}

	head := draw.ArrowHead(from, to)
	c.dc.MoveTo(head[0].X, head[0].Y)
	c.dc.LineTo(head[1].X, head[1].Y)
	c.dc.LineTo(head[2].X, head[2].Y)
	c.dc.ClosePath()
	c.fail(c.dc.Fill())
}

// Text draws s so that the anchor point of its box lands on at. Vertical
// centering uses the face's ascent and descent, not the glyphs' ink.
func (c *Canvas) Text(s string, at draw.Point, role draw.Role, col color.Color, anchor draw.Anchor) {
	if c.err != nil || s == "" {
		return
	}
	face := c.fonts.Face(role)
	c.dc.SetFont(face)
	c.dc.SetColor(col)

	x := at.X
	if anchor == draw.Middle {
		x -= face.Advance(s) / 2
	}
	m := face.Metrics()
	baseline := at.Y + (m.Ascent-m.Descent)/2
	c.dc.DrawString(s, x, baseline)
}

// Err returns the first drawing error.
func (c *Canvas) Err() error { return c.err }

// Image returns the canvas bitmap.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// Close releases the drawing context.
func (c *Canvas) Close() error { return c.dc.Close() }

func (c *Canvas) fail(err error) bool {
	if err != nil && c.err == nil {
		c.err = err
	}
	return err != nil
}

var _ draw.Drawer = (*Canvas)(nil)
