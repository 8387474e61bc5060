package glyph

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// DefaultEmojiFonts are the well-known locations of emoji-capable fonts.
var DefaultEmojiFonts = []string{
	"/usr/share/fonts/truetype/noto/NotoColorEmoji.ttf",
	"/usr/share/fonts/truetype/noto/NotoEmoji-Regular.ttf",
	"/usr/share/fonts/noto/NotoEmoji-Regular.ttf",
	"/usr/share/fonts/truetype/ancient-scripts/Symbola_hint.ttf",
	"/usr/share/fonts/TTF/Symbola.ttf",
}

// DefaultSansFonts are the well-known locations of bold sans-serif fonts.
var DefaultSansFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/truetype/freefont/FreeSansBold.ttf",
	"/Library/Fonts/Arial Bold.ttf",
	`C:\Windows\Fonts\arialbd.ttf`,
}

// FileFont loads the first path that parses and has a glyph for every rune
// of Text. Files are only read.
type FileFont struct {
	Label string
	Paths []string
	Text  string
}

func (f FileFont) Name() string { return f.Label }

func (f FileFont) Open(px int) (font.Face, string, error) {
	if len(f.Paths) == 0 {
		return nil, "", errors.New("no font paths configured")
	}
	var errs []error
	for _, p := range f.Paths {
		face, err := openFile(p, px, f.Text)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		return face, f.Text, nil
	}
	return nil, "", errors.Join(errs...)
}

func openFile(path string, px int, text string) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := hasGlyphs(f, text); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return newFace(f, px)
}

// hasGlyphs rejects fonts that would fall back to .notdef for any rune.
func hasGlyphs(f *sfnt.Font, text string) error {
	var buf sfnt.Buffer
	for _, r := range text {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return err
		}
		if idx == 0 {
			return fmt.Errorf("no glyph for %U", r)
		}
	}
	return nil
}

func newFace(f *opentype.Font, px int) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

var goBold = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gobold.TTF)
})

// Builtin draws Text with the Go Bold font compiled into the binary.
type Builtin struct {
	Text string
}

func (Builtin) Name() string { return "builtin" }

func (b Builtin) Open(px int) (font.Face, string, error) {
	f, err := goBold()
	if err != nil {
		return nil, "", fmt.Errorf("parsing Go Bold: %w", err)
	}
	if err := hasGlyphs(f, b.Text); err != nil {
		return nil, "", err
	}
	face, err := newFace(f, px)
	if err != nil {
		return nil, "", err
	}
	return face, b.Text, nil
}

// Bitmap draws Text with the fixed 7x13 face regardless of the requested
// size.
type Bitmap struct {
	Text string
}

func (Bitmap) Name() string { return "bitmap" }

func (b Bitmap) Open(int) (font.Face, string, error) {
	return basicfont.Face7x13, b.Text, nil
}
