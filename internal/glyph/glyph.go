// Package glyph resolves the text drawn on top of an icon. Fonts are tried
// in order through a Chain of strategies; when none of them works the
// overlay is skipped and the caller gets ErrUnavailable.
package glyph

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ErrUnavailable is returned when no strategy produced a usable face.
var ErrUnavailable = errors.New("no usable font for icon overlay")

// TextRatio is the font pixel size as a fraction of the icon edge.
const TextRatio = 0.5

// Truck is the preferred overlay glyph (U+1F69A DELIVERY TRUCK).
const Truck = "\U0001F69A"

// FallbackText is drawn when no emoji-capable font is found.
const FallbackText = "AL"

// Strategy opens a font face at a pixel size together with the text it
// should draw. Open must return an error rather than a face that cannot
// render the text.
type Strategy interface {
	Name() string
	Open(px int) (font.Face, string, error)
}

// Chain tries its strategies in order.
type Chain struct {
	Strategies []Strategy
}

// NewChain builds the standard fallback order: emoji from emojiFonts, then
// fallback text from sansFonts, then the embedded Go Bold face, then the
// fixed bitmap face.
func NewChain(emoji, fallback string, emojiFonts, sansFonts []string) *Chain {
	return &Chain{Strategies: []Strategy{
		FileFont{Label: "emoji", Paths: emojiFonts, Text: emoji},
		FileFont{Label: "sans-bold", Paths: sansFonts, Text: fallback},
		Builtin{Text: fallback},
		Bitmap{Text: fallback},
	}}
}

// FontSize returns round(size * TextRatio).
func FontSize(size int) int {
	return int(math.Round(float64(size) * TextRatio))
}

// Overlay for an icon of the given edge length. The first strategy whose
// face measures a non-empty ink box wins. Errors from every attempt are
// joined under ErrUnavailable.
func (c *Chain) Overlay(size int) (*Overlay, error) {
	px := FontSize(size)
	if px <= 0 {
		return nil, fmt.Errorf("%w: font size %d for %dpx icon", ErrUnavailable, px, size)
	}
	var errs []error
	for _, s := range c.Strategies {
		face, text, err := s.Open(px)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		if text == "" || inkBounds(face, text).Empty() {
			face.Close()
			errs = append(errs, fmt.Errorf("%s: %q has no visible outline", s.Name(), text))
			continue
		}
		return &Overlay{Face: face, Text: text, Source: s.Name(), Color: color.White}, nil
	}
	if len(errs) == 0 {
		return nil, fmt.Errorf("%w: no strategies configured", ErrUnavailable)
	}
	return nil, fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(errs...))
}

// Overlay is a resolved face plus the text to draw with it.
type Overlay struct {
	Face   font.Face
	Text   string
	Source string
	Color  color.Color
}

// Draw centres the text's ink box on a size×size canvas. The top-left of
// the box lands at ((size-w)/2, (size-h)/2), rounded down.
func (o *Overlay) Draw(dst xdraw.Image, size int) {
	b := inkBounds(o.Face, o.Text)
	if b.Empty() {
		return
	}
	x := floorDiv(size-b.Dx(), 2) - b.Min.X
	y := floorDiv(size-b.Dy(), 2) - b.Min.Y

	src := o.Color
	if src == nil {
		src = color.White
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(src),
		Face: o.Face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(o.Text)
}

// Close releases the face.
func (o *Overlay) Close() error {
	if o == nil || o.Face == nil {
		return nil
	}
	return o.Face.Close()
}

// inkBounds returns the pixel box covered by text drawn with its origin at
// (0, 0), relative to the baseline.
func inkBounds(face font.Face, text string) image.Rectangle {
	b, _ := font.BoundString(face, text)
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
