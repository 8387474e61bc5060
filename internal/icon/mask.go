package icon

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// CornerRatio is the corner radius as a fraction of the icon edge.
const CornerRatio = 0.15

// bezierArc is the control point distance for a quarter circle of radius 1.
const bezierArc = 0.5522847498

// CornerRadius returns round(size * CornerRatio).
func CornerRadius(size int) int {
	return int(math.Round(float64(size) * CornerRatio))
}

// RoundedMask returns a size×size alpha mask that is 0xff inside a rounded
// rectangle with corner radius r and 0 elsewhere. Edge pixels are decided by
// coverage: at least half covered counts as inside.
func RoundedMask(size, r int) *image.Alpha {
	if size < 0 {
		size = 0
	}
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	if size == 0 {
		return mask
	}

	s := float32(size)
	rad := float32(r)
	if rad < 0 {
		rad = 0
	}
	if rad > s/2 {
		rad = s / 2
	}
	k := rad * bezierArc

	var z vector.Rasterizer
	z.Reset(size, size)
	z.MoveTo(rad, 0)
	z.LineTo(s-rad, 0)
	z.CubeTo(s-rad+k, 0, s, rad-k, s, rad)
	z.LineTo(s, s-rad)
	z.CubeTo(s, s-rad+k, s-rad+k, s, s-rad, s)
	z.LineTo(rad, s)
	z.CubeTo(rad-k, s, 0, s-rad+k, 0, s-rad)
	z.LineTo(0, rad)
	z.CubeTo(0, rad-k, rad-k, 0, rad, 0)
	z.ClosePath()
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}
	return mask
}
