// mkicon renders a single gradient icon of any size, e.g. for a store
// listing or a favicon that the fixed icon set does not cover.
// Usage: go run ./cmd/mkicon <output.png> [size]
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/Mavwarf/exticons/internal/config"
	"github.com/Mavwarf/exticons/internal/iconset"
	"github.com/Mavwarf/exticons/internal/paths"
)

const defaultSize = 128

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: mkicon <output.png> [size]\n")
		os.Exit(1)
	}
	size := defaultSize
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Error: size must be a positive integer\n")
			os.Exit(1)
		}
		size = n
	}
	if err := write(os.Args[1], size); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func write(path string, size int) error {
	g := iconset.New(config.Default().Glyphs())
	img, res := g.Render(size)
	if res.Note != nil {
		fmt.Fprintf(os.Stderr, "Note: could not add text/emoji: %v\n", res.Note)
	}

	var buf bytes.Buffer
	if err := g.Encode(&buf, img); err != nil {
		return err
	}
	return paths.AtomicWrite(path, buf.Bytes())
}
