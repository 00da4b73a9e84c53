package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/trellis/geom"
)

var labelFace = text.NewGoXFace(basicfont.Face7x13)

// drawLabel draws s centered in n.
func drawLabel(dst *ebiten.Image, s string, n geom.Node, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(n.Left())+float64(n.Width())/2, float64(n.Top())+float64(n.Height())/2)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, labelFace, op)
}

// drawTitle draws s left-aligned and vertically centered in n.
func drawTitle(dst *ebiten.Image, s string, n geom.Node, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(n.Left())+4, float64(n.Top())+float64(n.Height())/2)
	op.ColorScale.ScaleWithColor(clr)
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, labelFace, op)
}
