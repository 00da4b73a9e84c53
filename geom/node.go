// Package geom provides the integer rectangle that every resolved widget
// geometry ends up as.
package geom

import (
	"errors"
	"fmt"
)

// ErrNegativeSize is returned when a Node is constructed with a negative
// width or height.
var ErrNegativeSize = errors.New("geom: negative size")

// Node is an axis-aligned rectangle with absolute integer position and
// size. Nodes are immutable; every operation that changes geometry
// returns a new Node.
type Node struct {
	x, y          int
	width, height int
}

// New creates a Node at (x, y) with the given size.
//
// Negative sizes are rejected rather than normalized. Callers holding two
// arbitrary corners should use FromCorners instead.
func New(x, y, width, height int) (Node, error) {
	if width < 0 || height < 0 {
		return Node{}, fmt.Errorf("%w: %dx%d", ErrNegativeSize, width, height)
	}
	return Node{x: x, y: y, width: width, height: height}, nil
}

// MustNew is like New but panics on invalid input. It is intended for
// literals in tests and static layouts.
func MustNew(x, y, width, height int) Node {
	n, err := New(x, y, width, height)
	if err != nil {
		panic(err)
	}
	return n
}

// FromCorners builds the Node spanned by two opposite corners in any
// order.
func FromCorners(x0, y0, x1, y1 int) Node {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Node{x: x0, y: y0, width: x1 - x0, height: y1 - y0}
}

// Size returns width and height.
func (n Node) Size() (width, height int) { return n.width, n.height }

// Position returns the top-left corner.
func (n Node) Position() (x, y int) { return n.x, n.y }

func (n Node) Left() int   { return n.x }
func (n Node) Top() int    { return n.y }
func (n Node) Right() int  { return n.x + n.width }
func (n Node) Bottom() int { return n.y + n.height }

func (n Node) Width() int  { return n.width }
func (n Node) Height() int { return n.height }

// Empty reports whether the node has zero area.
func (n Node) Empty() bool { return n.width == 0 || n.height == 0 }

// Equal reports whether both nodes describe the same rectangle.
func (n Node) Equal(other Node) bool { return n == other }

// PointInside reports whether (x, y) lies inside the node. Both edges are
// inclusive, so a point on the right or bottom edge is inside.
func (n Node) PointInside(x, y int) bool {
	return x >= n.Left() && x <= n.Right() &&
		y >= n.Top() && y <= n.Bottom()
}

// Contains reports whether other lies entirely within n.
func (n Node) Contains(other Node) bool {
	return other.Left() >= n.Left() && other.Right() <= n.Right() &&
		other.Top() >= n.Top() && other.Bottom() <= n.Bottom()
}

// Intersects reports whether the two nodes overlap. Nodes that only share
// an edge do not intersect.
func (n Node) Intersects(other Node) bool {
	return n.Left() < other.Right() && other.Left() < n.Right() &&
		n.Top() < other.Bottom() && other.Top() < n.Bottom()
}

// Translate returns the node moved by (dx, dy).
func (n Node) Translate(dx, dy int) Node {
	n.x += dx
	n.y += dy
	return n
}

// Clamp moves the node so that it fits inside bounds. Size is never
// changed; when the node is larger than bounds on an axis its left (or
// top) edge is aligned with the bounds.
func (n Node) Clamp(bounds Node) Node {
	if n.Right() > bounds.Right() {
		n.x = bounds.Right() - n.width
	}
	if n.x < bounds.Left() {
		n.x = bounds.Left()
	}
	if n.Bottom() > bounds.Bottom() {
		n.y = bounds.Bottom() - n.height
	}
	if n.y < bounds.Top() {
		n.y = bounds.Top()
	}
	return n
}

func (n Node) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", n.x, n.y, n.width, n.height)
}
