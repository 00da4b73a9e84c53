// Package layout resolves widget geometry that is declared relative to
// other widgets.
//
// Bodies live in an Arena and refer to each other through Handles. A
// Handle is a lookup key, not an owning pointer, so a parent may be
// removed while children still name it; resolving such a child reports
// ErrUnknownBody. Resolution is recomputed on every query.
package layout

import (
	"fmt"
	"math"
)

// Axis selects the horizontal or vertical component of a body.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Corner identifies one corner of a rectangle. Bit 0 is set for the right
// edge and bit 1 for the bottom edge.
type Corner uint8

const (
	TopLeft     Corner = 0
	TopRight    Corner = 1
	BottomLeft  Corner = 2
	BottomRight Corner = 3
)

// high reports whether the corner sits on the far edge of axis a.
func (c Corner) high(a Axis) bool {
	return (c>>uint(a))&1 == 1
}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return fmt.Sprintf("corner(%d)", uint8(c))
	}
}

// Anchor maps a corner of the child onto a corner of its position parent.
type Anchor struct {
	Child  Corner
	Parent Corner
}

// Value is one component of a body's base position or size. A pixel
// value is an absolute offset; a fractional value scales the parent's
// size on the same axis.
type Value struct {
	px         int
	frac       float64
	fractional bool
}

// Px returns an integer pixel value.
func Px(n int) Value { return Value{px: n} }

// Frac returns a fractional value.
func Frac(f float64) Value { return Value{frac: f, fractional: true} }

// IsFrac reports whether v was created with Frac.
func (v Value) IsFrac() bool { return v.fractional }

// Int returns v truncated to an integer.
func (v Value) Int() int {
	if v.fractional {
		return int(v.frac)
	}
	return v.px
}

// Float returns v as a float64.
func (v Value) Float() float64 {
	if v.fractional {
		return v.frac
	}
	return float64(v.px)
}

// offsetSize applies v to a parent size p.
func (v Value) offsetSize(p int) int {
	if v.fractional {
		return int(float64(p) * math.Abs(v.frac))
	}
	return p + v.px
}

// offsetPosition applies v to a parent position with parent size size.
func (v Value) offsetPosition(pos, size int) int {
	if v.fractional {
		return pos + int(v.frac*float64(size))
	}
	return pos + v.px
}

func (v Value) String() string {
	if v.fractional {
		return fmt.Sprintf("%g", v.frac)
	}
	return fmt.Sprintf("%dpx", v.px)
}

// Handle identifies a body inside an Arena. The zero Handle is None.
type Handle int32

// None marks an axis with no parent; its value is absolute.
const None Handle = 0

// Body declares how a rectangle derives its geometry. Each axis has its
// own position parent and size parent; None means the base value is
// absolute on that axis.
type Body struct {
	Position       [2]Value
	Size           [2]Value
	PositionParent [2]Handle
	SizeParent     [2]Handle
	Anchor         Anchor
}

// Absolute returns a body with fixed position and size.
func Absolute(x, y, width, height int) Body {
	return Body{
		Position: [2]Value{Px(x), Px(y)},
		Size:     [2]Value{Px(width), Px(height)},
	}
}

// Fill returns a body that covers parent, shrunk by inset pixels on every
// side.
func Fill(parent Handle, inset int) Body {
	return Body{
		Position:       [2]Value{Px(inset), Px(inset)},
		Size:           [2]Value{Px(-2 * inset), Px(-2 * inset)},
		PositionParent: [2]Handle{parent, parent},
		SizeParent:     [2]Handle{parent, parent},
	}
}

// Attach returns a fixed-size body whose child corner is placed on the
// parent corner of parent, then moved by (dx, dy).
func Attach(parent Handle, anchor Anchor, dx, dy Value, width, height int) Body {
	return Body{
		Position:       [2]Value{dx, dy},
		Size:           [2]Value{Px(width), Px(height)},
		PositionParent: [2]Handle{parent, parent},
		Anchor:         anchor,
	}
}

// parents returns every handle the body refers to.
func (b Body) parents() []Handle {
	var out []Handle
	for _, h := range [...]Handle{b.PositionParent[0], b.PositionParent[1], b.SizeParent[0], b.SizeParent[1]} {
		if h != None {
			out = append(out, h)
		}
	}
	return out
}
