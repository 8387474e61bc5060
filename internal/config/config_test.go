package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mavwarf/exticons/internal/glyph"
	"github.com/Mavwarf/exticons/internal/iconset"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "exticons-config.json")
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	opts, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.NameTemplate != iconset.DefaultNameTemplate {
		t.Errorf("NameTemplate = %q, want %q", opts.NameTemplate, iconset.DefaultNameTemplate)
	}
	if opts.Emoji != glyph.Truck || opts.FallbackText != glyph.FallbackText {
		t.Errorf("glyphs = %q/%q", opts.Emoji, opts.FallbackText)
	}
	if opts.OutputDir != "" {
		t.Errorf("OutputDir = %q, want empty", opts.OutputDir)
	}
	if len(opts.EmojiFonts) != len(glyph.DefaultEmojiFonts) || len(opts.SansFonts) != len(glyph.DefaultSansFonts) {
		t.Errorf("font lists = %d/%d, want defaults", len(opts.EmojiFonts), len(opts.SansFonts))
	}
}

func TestDefaultDoesNotAliasFontLists(t *testing.T) {
	opts := Default()
	opts.SansFonts[0] = "changed"
	if glyph.DefaultSansFonts[0] == "changed" {
		t.Error("Default() shares its slice with glyph.DefaultSansFonts")
	}
}

func TestUnmarshalKeepsDefaults(t *testing.T) {
	var opts Options
	if err := json.Unmarshal([]byte(`{"fallback_text": "TR"}`), &opts); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if opts.FallbackText != "TR" {
		t.Errorf("FallbackText = %q, want TR", opts.FallbackText)
	}
	if opts.Emoji != glyph.Truck {
		t.Errorf("Emoji = %q, want default", opts.Emoji)
	}
	if opts.NameTemplate != iconset.DefaultNameTemplate {
		t.Errorf("NameTemplate = %q, want default", opts.NameTemplate)
	}
}

func TestUnmarshalEmptyFontListDisablesFiles(t *testing.T) {
	var opts Options
	if err := json.Unmarshal([]byte(`{"emoji_fonts": []}`), &opts); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(opts.EmojiFonts) != 0 {
		t.Errorf("EmojiFonts = %v, want empty", opts.EmojiFonts)
	}
	if len(opts.SansFonts) == 0 {
		t.Error("SansFonts cleared, want defaults")
	}
}

func TestLoadFile(t *testing.T) {
	p := writeConfig(t, `{
		"output_dir": "out/icons",
		"name_template": "icon-{dims}.png",
		"sans_fonts": ["/fonts/Bold.ttf"]
	}`)
	opts, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	wantDir := filepath.Join(filepath.Dir(p), "out", "icons")
	if opts.OutputDir != wantDir {
		t.Errorf("OutputDir = %q, want %q", opts.OutputDir, wantDir)
	}
	if opts.NameTemplate != "icon-{dims}.png" {
		t.Errorf("NameTemplate = %q", opts.NameTemplate)
	}
	if len(opts.SansFonts) != 1 || opts.SansFonts[0] != "/fonts/Bold.ttf" {
		t.Errorf("SansFonts = %v", opts.SansFonts)
	}
}

func TestLoadAbsoluteOutputDir(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "icons")
	body, _ := json.Marshal(map[string]string{"output_dir": abs})
	opts, err := Load(writeConfig(t, string(body)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts.OutputDir != abs {
		t.Errorf("OutputDir = %q, want %q", opts.OutputDir, abs)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		want string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") }, "reading config"},
		{"bad json", func(t *testing.T) string { return writeConfig(t, `{`) }, "parsing config"},
		{"fixed name", func(t *testing.T) string { return writeConfig(t, `{"name_template": "icon.png"}`) }, "name_template"},
		{"empty fallback", func(t *testing.T) string { return writeConfig(t, `{"fallback_text": ""}`) }, "fallback_text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestGlyphs(t *testing.T) {
	opts := Default()
	if c := opts.Glyphs(); c == nil || len(c.Strategies) == 0 {
		t.Errorf("Glyphs() = %v, want default chain", c)
	}
	opts.NoOverlay = true
	if c := opts.Glyphs(); c != nil {
		t.Errorf("Glyphs() = %v, want nil with no_overlay", c)
	}
}
