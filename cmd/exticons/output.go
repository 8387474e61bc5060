package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Mavwarf/exticons/internal/iconset"
)

const (
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// printer writes progress to stdout and notes to stderr.
type printer struct {
	stdout, stderr io.Writer
	quiet          bool
	color          bool
}

func newPrinter(stdout, stderr io.Writer, quiet bool) *printer {
	return &printer{stdout: stdout, stderr: stderr, quiet: quiet, color: isTerminal(stdout)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) check() string {
	if p.color {
		return ansiGreen + "✓" + ansiReset
	}
	return "✓"
}

func (p *printer) start() {
	if !p.quiet {
		fmt.Fprintln(p.stdout, "Generating extension icons...")
	}
}

func (p *printer) created(r iconset.Result) {
	if r.Note != nil {
		fmt.Fprintf(p.stderr, "Note: could not add text/emoji to %s: %v\n", r.Path, r.Note)
	}
	if !p.quiet {
		fmt.Fprintf(p.stdout, "%s Created %s (%dx%d)\n", p.check(), r.Path, r.Size, r.Size)
	}
}

func (p *printer) done(dir string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.stdout, "\n%s All icons generated successfully!\n", p.check())
	fmt.Fprintf(p.stdout, "Icons saved to: %s\n", dir)
}

func (p *printer) missingDependency() {
	fmt.Fprintln(p.stderr, "Error: PNG encoder not available.")
	fmt.Fprintln(p.stderr, "Reinstall with: go install github.com/Mavwarf/exticons/cmd/exticons@latest")
}
