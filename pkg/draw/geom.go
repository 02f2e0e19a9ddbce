package draw

// Point is a position in canvas pixels. The origin is the top-left corner and
// y grows downward.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Box is an axis-aligned bounding box given by two corners, in the
// (x1, y1, x2, y2) order used throughout the scenes.
type Box struct {
	X1, Y1, X2, Y2 float64
}

// Rect is shorthand for Box{x1, y1, x2, y2}.
func Rect(x1, y1, x2, y2 float64) Box { return Box{X1: x1, Y1: y1, X2: x2, Y2: y2} }

// Min returns the top-left corner.
func (b Box) Min() Point { return Point{X: min(b.X1, b.X2), Y: min(b.Y1, b.Y2)} }

// Width is never negative, whichever order the corners were given in.
func (b Box) Width() float64 { return abs(b.X2 - b.X1) }

// Height is never negative, whichever order the corners were given in.
func (b Box) Height() float64 { return abs(b.Y2 - b.Y1) }

// Empty reports whether the box has zero width or zero height.
func (b Box) Empty() bool { return b.Width() == 0 || b.Height() == 0 }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
