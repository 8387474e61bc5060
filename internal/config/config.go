package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mavwarf/exticons/internal/glyph"
	"github.com/Mavwarf/exticons/internal/iconset"
	"github.com/Mavwarf/exticons/internal/tmpl"
)

// Options holds everything about a run that is not fixed by the icon
// format. Sizes and colours are deliberately absent.
type Options struct {
	OutputDir    string   `json:"output_dir,omitempty"`
	NameTemplate string   `json:"name_template,omitempty"`
	Emoji        string   `json:"emoji,omitempty"`
	FallbackText string   `json:"fallback_text,omitempty"`
	EmojiFonts   []string `json:"emoji_fonts,omitempty"`
	SansFonts    []string `json:"sans_fonts,omitempty"`
	NoOverlay    bool     `json:"no_overlay,omitempty"`
}

// Default returns the built-in options. OutputDir is empty, meaning the
// icons directory next to the binary.
func Default() Options {
	return Options{
		NameTemplate: iconset.DefaultNameTemplate,
		Emoji:        glyph.Truck,
		FallbackText: glyph.FallbackText,
		EmojiFonts:   append([]string(nil), glyph.DefaultEmojiFonts...),
		SansFonts:    append([]string(nil), glyph.DefaultSansFonts...),
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (o *Options) UnmarshalJSON(data []byte) error {
	*o = Default()
	type Alias Options
	return json.Unmarshal(data, (*Alias)(o))
}

// Validate reports settings that would produce a broken icon set.
func (o Options) Validate() error {
	if !tmpl.HasSize(o.NameTemplate) {
		return fmt.Errorf("name_template %q must contain {size} or {dims}", o.NameTemplate)
	}
	if o.FallbackText == "" && !o.NoOverlay {
		return fmt.Errorf("fallback_text must not be empty")
	}
	return nil
}

// Glyphs builds the overlay fallback chain, or nil when the overlay is off.
func (o Options) Glyphs() *glyph.Chain {
	if o.NoOverlay {
		return nil
	}
	return glyph.NewChain(o.Emoji, o.FallbackText, o.EmojiFonts, o.SansFonts)
}

// Load reads options from explicitPath. An empty path returns Default()
// without touching the filesystem. A relative output_dir is resolved
// against the config file's directory.
func Load(explicitPath string) (Options, error) {
	if explicitPath == "" {
		return Default(), nil
	}
	return readConfig(explicitPath)
}

func readConfig(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading config: %w", err)
	}
	var opts Options
	if err := json.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if opts.OutputDir != "" && !filepath.IsAbs(opts.OutputDir) {
		opts.OutputDir = filepath.Join(filepath.Dir(path), opts.OutputDir)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}
