// Package icon renders square gradient icons with rounded corners and an
// optional centred overlay.
package icon

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Overlay draws something on top of the gradient before the corners are
// masked. Implementations must not fail; a glyph that cannot be drawn is
// resolved before Render is called.
type Overlay interface {
	Draw(dst xdraw.Image, size int)
}

// Render builds a size×size icon with DefaultGradient.
func Render(size int, ov Overlay) *image.RGBA {
	return DefaultGradient.Render(size, ov)
}

// Render fills a fresh image with the gradient, draws ov on it (nil skips the
// overlay) and pastes the result through the rounded-corner mask onto an
// opaque black canvas. The returned image is fully opaque.
func (g Gradient) Render(size int, ov Overlay) *image.RGBA {
	if size < 0 {
		size = 0
	}
	bounds := image.Rect(0, 0, size, size)

	src := image.NewRGBA(bounds)
	g.Fill(src)
	if ov != nil {
		ov.Draw(src, size)
	}

	dst := image.NewRGBA(bounds)
	xdraw.Draw(dst, bounds, image.Black, image.Point{}, xdraw.Src)
	mask := RoundedMask(size, CornerRadius(size))
	xdraw.DrawMask(dst, bounds, src, image.Point{}, mask, image.Point{}, xdraw.Over)
	return dst
}
