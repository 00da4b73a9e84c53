package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	earcut "github.com/flywave/go-earcut"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/trellis/geom"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// triangulate splits a simple polygon given as flat x,y pairs into
// triangles and returns their vertex indices.
func triangulate(points []float64) ([]uint16, error) {
	if len(points) < 6 || len(points)%2 != 0 {
		return nil, fmt.Errorf("polygon needs at least 3 points, got %d values", len(points))
	}
	if len(points)/2 > math.MaxUint16 {
		return nil, fmt.Errorf("polygon has too many points: %d", len(points)/2)
	}
	indices, err := earcut.Earcut(points, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("triangulating polygon: %w", err)
	}
	out := make([]uint16, len(indices))
	for i, idx := range indices {
		out[i] = uint16(idx)
	}
	return out, nil
}

// fillPolygon draws the filled polygon described by flat x,y pairs.
func fillPolygon(dst *ebiten.Image, points []float64, clr color.Color) error {
	indices, err := triangulate(points)
	if err != nil {
		return err
	}
	r, g, b, a := clr.RGBA()
	vs := make([]ebiten.Vertex, len(points)/2)
	for i := range vs {
		vs[i] = ebiten.Vertex{
			DstX:   float32(points[2*i]),
			DstY:   float32(points[2*i+1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		}
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	dst.DrawTriangles(vs, indices, whiteSubImage, op)
	return nil
}

// chevron returns a right-pointing arrow head inset in n. The shape is
// concave, which is why it goes through the triangulator.
func chevron(n geom.Node) []float64 {
	w, h := float64(n.Width()), float64(n.Height())
	x, y := float64(n.Left()), float64(n.Top())
	return []float64{
		x, y,
		x + w*0.4, y,
		x + w, y + h/2,
		x + w*0.4, y + h,
		x, y + h,
		x + w*0.6, y + h/2,
	}
}

// grip returns the notched triangle drawn in a panel's resize corner.
func grip(n geom.Node) []float64 {
	x0, y0 := float64(n.Left()), float64(n.Top())
	x1, y1 := float64(n.Right()), float64(n.Bottom())
	notch := float64(n.Width()) / 3
	return []float64{
		x1, y0,
		x1, y1,
		x0, y1,
		x0 + notch, y1 - notch,
		x1 - notch, y1 - notch,
		x1 - notch, y0 + notch,
	}
}

// fillNode fills n.
func fillNode(dst *ebiten.Image, n geom.Node, clr color.Color) {
	vector.DrawFilledRect(dst, float32(n.Left()), float32(n.Top()),
		float32(n.Width()), float32(n.Height()), clr, true)
}

// strokeNode outlines n.
func strokeNode(dst *ebiten.Image, n geom.Node, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(n.Left()), float32(n.Top()),
		float32(n.Width()), float32(n.Height()), width, clr, true)
}
