// Package draw defines the drawing vocabulary shared by scenes and renderers.
//
// A scene is a function that issues a fixed sequence of calls on a [Drawer]:
// filled and outlined rectangles, straight arrows, and anchored text. Each
// output format (PNG canvas, SVG, JSON display list) implements Drawer, so the
// same scene code produces every format.
//
// # Arrowheads
//
// Arrowheads are not rotated to the line's true angle. [HeadingOf] picks one
// of four axis-aligned directions from the sign of the displacement, checking
// horizontal movement first, and [ArrowHead] returns the matching triangle.
// Diagonal arrows therefore get a horizontal head.
package draw
