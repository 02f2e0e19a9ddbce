package draw

import "image/color"

// Anchor selects which point of a text's bounding box lands on the
// requested position.
type Anchor string

const (
	// Middle centers the text horizontally and vertically.
	Middle Anchor = "mm"
	// LeftMiddle puts the left edge on the point, vertically centered.
	LeftMiddle Anchor = "lm"
)

// Role names one of the fixed text sizes a scene can use.
type Role int

const (
	Title Role = iota
	Header
	Body
	Small
)

// Roles lists every role in size order, largest first.
var Roles = []Role{Title, Header, Body, Small}

func (r Role) String() string {
	switch r {
	case Title:
		return "title"
	case Header:
		return "header"
	case Body:
		return "text"
	case Small:
		return "small"
	default:
		return "unknown"
	}
}

// Default stroke settings.
const (
	OutlineWidth = 2
	ArrowWidth   = 3
)

// Default stroke colors: black outlines, #333333 arrows.
var (
	OutlineColor = color.RGBA{A: 0xff}
	ArrowColor   = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// Drawer is implemented by every output format.
//
// Calls are recorded or painted in the order they are made; later calls draw
// over earlier ones. A Drawer reports the first failure from [Drawer.Err]
// rather than from each call, so scenes can stay a flat list of calls.
type Drawer interface {
	// Rect paints b filled with fill and outlined with outline at the given
	// stroke width. Degenerate boxes are accepted.
	Rect(b Box, fill, outline color.Color, width float64)
	// Arrow draws a straight line from -> to plus the [ArrowHead] triangle.
	Arrow(from, to Point, c color.Color, width float64)
	// Text draws s with the font for role, positioned by anchor.
	Text(s string, at Point, role Role, c color.Color, anchor Anchor)
	// Err returns the first error encountered by any call, if any.
	Err() error
}

// FilledBox draws b with the default black outline of width 2.
func FilledBox(d Drawer, b Box, fill color.Color) {
	d.Rect(b, fill, OutlineColor, OutlineWidth)
}

// DefaultArrow draws an arrow in the default #333333 with width 3.
func DefaultArrow(d Drawer, from, to Point) {
	d.Arrow(from, to, ArrowColor, ArrowWidth)
}
