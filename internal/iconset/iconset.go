// Package iconset writes the fixed set of extension icons to a directory.
package iconset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mavwarf/exticons/internal/glyph"
	"github.com/Mavwarf/exticons/internal/icon"
	"github.com/Mavwarf/exticons/internal/paths"
	"github.com/Mavwarf/exticons/internal/tmpl"
)

// DefaultNameTemplate names each icon after its size.
const DefaultNameTemplate = "icon{size}.png"

// DefaultSizes are the edge lengths a browser extension manifest expects.
var DefaultSizes = []int{16, 48, 128}

// ErrMissingDependency means no image encoder is available. Nothing is
// written when GenerateAll returns it.
var ErrMissingDependency = errors.New("image encoder not available")

// EncodeFunc writes m to w in the output image format.
type EncodeFunc func(w io.Writer, m image.Image) error

// IOError reports a failed directory creation or file write.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Spec is one output file.
type Spec struct {
	Name string
	Size int
}

// Specs expands nameTemplate for every size. The template must vary with
// size and must name a file, not a path.
func Specs(nameTemplate string, sizes []int) ([]Spec, error) {
	if !tmpl.HasSize(nameTemplate) {
		return nil, fmt.Errorf("name template %q has no {size} or {dims} placeholder", nameTemplate)
	}
	if strings.ContainsAny(nameTemplate, `/\`) {
		return nil, fmt.Errorf("name template %q must not contain path separators", nameTemplate)
	}
	specs := make([]Spec, 0, len(sizes))
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("invalid icon size %d", s)
		}
		specs = append(specs, Spec{Name: tmpl.Expand(nameTemplate, tmpl.Vars{Size: s}), Size: s})
	}
	return specs, nil
}

// DefaultSpecs returns icon16.png, icon48.png and icon128.png.
func DefaultSpecs() []Spec {
	specs, _ := Specs(DefaultNameTemplate, DefaultSizes)
	return specs
}

// Result describes one rendered icon.
type Result struct {
	Path  string
	Size  int
	Glyph string // strategy that drew the overlay, "" when skipped
	Note  error  // why the overlay was skipped
}

// Generator renders and writes icons. A nil Glyphs chain disables the
// overlay without a note.
type Generator struct {
	Encode   EncodeFunc
	Glyphs   *glyph.Chain
	Specs    []Spec
	Progress func(Result)
}

// New returns a Generator that writes the default icon set as PNG.
func New(glyphs *glyph.Chain) *Generator {
	return &Generator{
		Encode: png.Encode,
		Glyphs: glyphs,
		Specs:  DefaultSpecs(),
	}
}

// Render builds one icon. Font problems never fail the render: they are
// returned in Result.Note and the icon is drawn without text.
func (g *Generator) Render(size int) (*image.RGBA, Result) {
	res := Result{Size: size}
	if g.Glyphs == nil {
		return icon.Render(size, nil), res
	}
	ov, err := g.Glyphs.Overlay(size)
	if err != nil {
		res.Note = err
		return icon.Render(size, nil), res
	}
	defer ov.Close()
	res.Glyph = ov.Source
	return icon.Render(size, ov), res
}

// GenerateAll creates outputDir (and parents) and writes every spec into it,
// replacing existing files. It stops at the first failure; files already
// written are left in place.
func (g *Generator) GenerateAll(outputDir string) ([]Result, error) {
	if g.Encode == nil {
		return nil, ErrMissingDependency
	}
	specs := g.Specs
	if specs == nil {
		specs = DefaultSpecs()
	}
	if err := os.MkdirAll(outputDir, paths.DirPerm); err != nil {
		return nil, &IOError{Op: "create directory", Path: outputDir, Err: err}
	}

	results := make([]Result, 0, len(specs))
	for _, s := range specs {
		img, res := g.Render(s.Size)

		var buf bytes.Buffer
		if err := g.Encode(&buf, img); err != nil {
			return results, fmt.Errorf("encoding %s: %w", s.Name, err)
		}
		p := filepath.Join(outputDir, s.Name)
		if err := paths.AtomicWrite(p, buf.Bytes()); err != nil {
			return results, &IOError{Op: "write", Path: p, Err: err}
		}

		res.Path = p
		results = append(results, res)
		if g.Progress != nil {
			g.Progress(res)
		}
	}
	return results, nil
}
