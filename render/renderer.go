// Package render draws frames for game objects.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/common"
)

// Renderer draws one frame into a destination rectangle. Rotation is in
// radians around the rectangle's center.
type Renderer interface {
	DrawFrame(frame *ebiten.Image, dst common.Rect, tint color.Color, rotation float64)
}

// Screen draws onto an ebiten target image.
type Screen struct {
	Target *ebiten.Image
}

func (s Screen) DrawFrame(frame *ebiten.Image, dst common.Rect, tint color.Color, rotation float64) {
	if s.Target == nil || frame == nil {
		return
	}
	b := frame.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(dst.Width/float64(b.Dx()), dst.Height/float64(b.Dy()))
	if rotation != 0 {
		op.GeoM.Translate(-dst.Width/2, -dst.Height/2)
		op.GeoM.Rotate(rotation)
		op.GeoM.Translate(dst.Width/2, dst.Height/2)
	}
	op.GeoM.Translate(dst.X, dst.Y)
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	op.Filter = ebiten.FilterNearest
	s.Target.DrawImage(frame, &op)
}
