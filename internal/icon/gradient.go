package icon

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Gradient is a top-to-bottom linear blend between two opaque colours.
type Gradient struct {
	Start color.RGBA
	End   color.RGBA
}

// DefaultGradient runs from #667eea at the top to #764ba2 at the bottom.
var DefaultGradient = Gradient{
	Start: color.RGBA{0x66, 0x7e, 0xea, 0xff},
	End:   color.RGBA{0x76, 0x4b, 0xa2, 0xff},
}

// At returns the colour of row y in an icon of the given size. The
// interpolation ratio is y/size, so the last row stops one step short of End.
func (g Gradient) At(y, size int) color.RGBA {
	if size <= 0 {
		return g.Start
	}
	t := float64(y) / float64(size)
	return color.RGBA{
		R: lerp(g.Start.R, g.End.R, t),
		G: lerp(g.Start.G, g.End.G, t),
		B: lerp(g.Start.B, g.End.B, t),
		A: 0xff,
	}
}

// Fill paints every row of dst with its gradient colour.
func (g Gradient) Fill(dst xdraw.Image) {
	b := dst.Bounds()
	size := b.Dy()
	for y := 0; y < size; y++ {
		row := image.Rect(b.Min.X, b.Min.Y+y, b.Max.X, b.Min.Y+y+1)
		xdraw.Draw(dst, row, image.NewUniform(g.At(y, size)), image.Point{}, xdraw.Src)
	}
}

// lerp truncates toward zero, matching integer conversion of the blend.
func lerp(a, b uint8, t float64) uint8 {
	v := int(float64(a) + (float64(b)-float64(a))*t)
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	}
	return uint8(v)
}
