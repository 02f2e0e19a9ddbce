package draw

// Heading is the axis-aligned direction an arrowhead points.
type Heading int

const (
	Up Heading = iota
	Right
	Left
	Down
)

func (h Heading) String() string {
	switch h {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	default:
		return "up"
	}
}

// Arrowhead dimensions in pixels.
const (
	HeadLength   = 10
	HeadHalfBase = 5
)

// HeadingOf chooses the arrowhead direction for a line from -> to.
// Horizontal displacement wins over vertical; a zero-length line points up.
func HeadingOf(from, to Point) Heading {
	switch {
	case to.X > from.X:
		return Right
	case to.X < from.X:
		return Left
	case to.Y > from.Y:
		return Down
	default:
		return Up
	}
}

// ArrowHead returns the triangle drawn at the end of a line from -> to.
// The middle vertex is always the tip, which sits exactly on to.
func ArrowHead(from, to Point) [3]Point {
	x, y := to.X, to.Y
	switch HeadingOf(from, to) {
	case Right:
		return [3]Point{{x - HeadLength, y - HeadHalfBase}, {x, y}, {x - HeadLength, y + HeadHalfBase}}
	case Left:
		return [3]Point{{x + HeadLength, y - HeadHalfBase}, {x, y}, {x + HeadLength, y + HeadHalfBase}}
	case Down:
		return [3]Point{{x - HeadHalfBase, y - HeadLength}, {x, y}, {x + HeadHalfBase, y - HeadLength}}
	default:
		return [3]Point{{x - HeadHalfBase, y + HeadLength}, {x, y}, {x + HeadHalfBase, y + HeadLength}}
	}
}
