package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/Mavwarf/exticons/internal/config"
	"github.com/Mavwarf/exticons/internal/iconset"
	"github.com/Mavwarf/exticons/internal/paths"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// newGenerator is swapped in tests.
var newGenerator = iconset.New

func main() {
	args := os.Args[1:]
	configPath := ""
	outDir := ""
	quiet := false

	// Parse flags
	filtered := args[:0]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --config requires a file path\n")
				os.Exit(1)
			}
		case "--out", "-o":
			if i+1 < len(args) {
				outDir = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --out requires a directory\n")
				os.Exit(1)
			}
		case "--quiet", "-q":
			quiet = true
		default:
			filtered = append(filtered, args[i])
		}
	}

	if len(filtered) > 0 {
		switch filtered[0] {
		case "help", "-h", "--help":
			printUsage()
			return
		case "version", "-V", "--version":
			printVersion()
			return
		case "generate":
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", filtered[0])
			fmt.Fprintf(os.Stderr, "Run 'exticons help' for usage.\n")
			os.Exit(1)
		}
	}

	os.Exit(generate(configPath, outDir, quiet, os.Stdout, os.Stderr))
}

// generate writes the icon set and returns the process exit code.
func generate(configPath, outDir string, quiet bool, stdout, stderr io.Writer) int {
	opts, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	specs, err := iconset.Specs(opts.NameTemplate, iconset.DefaultSizes)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	dir := resolveOutputDir(outDir, opts)

	out := newPrinter(stdout, stderr, quiet)
	g := newGenerator(opts.Glyphs())
	g.Specs = specs
	g.Progress = out.created

	out.start()
	if _, err := g.GenerateAll(dir); err != nil {
		if errors.Is(err, iconset.ErrMissingDependency) {
			out.missingDependency()
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	out.done(dir)
	return 0
}

// resolveOutputDir picks the output directory.
// Priority: --out > config output_dir > icons/ next to the binary.
func resolveOutputDir(flag string, opts config.Options) string {
	if flag != "" {
		return flag
	}
	if opts.OutputDir != "" {
		return opts.OutputDir
	}
	return paths.DefaultIconsDir()
}

func printVersion() {
	fmt.Printf("exticons %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("exticons %s - Generate placeholder icons for a browser extension\n", version)
	fmt.Println(`
Usage:
  exticons [options] [generate]

Options:
  --out, -o <dir>        Output directory (default: icons/ next to binary)
  --config, -c <path>    Path to exticons-config.json
  --quiet, -q            Only print notes and errors

Commands:
  generate               Write icon16.png, icon48.png and icon128.png (default)
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Examples:
  exticons                         Write icons/ next to the binary
  exticons -o extension/icons      Write into extension/icons
  exticons -c exticons-config.json Use custom fonts and file names`)
}
