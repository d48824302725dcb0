// genicons creates placeholder PNG icons for the LDM interface.
//
// Every icon is a 32x32 colored badge with a centered glyph, drawn from the
// built-in catalog. Replace the output with real artwork when it exists.
//
// Usage:
//   go run ./cmd/genicons               # writes ./icons
//   go run ./cmd/genicons -dir out/icons
package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/ldm-project/ldm-assets/internal/bootstrap"

	"github.com/ldm-project/ldm-assets/internal/config"
	"github.com/ldm-project/ldm-assets/internal/icons"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	var (
		outputDir string
		ver       bool
	)
	flag.StringVar(&outputDir, "dir", config.DefaultIconsDir, "Output directory")
	flag.BoolVar(&ver, "version", false, "Print version and exit")
	flag.Parse()

	if ver {
		fmt.Printf("genicons %s\n", version)
		os.Exit(0)
	}

	if err := icons.Run(outputDir, config.DefaultIconSize, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "genicons: %v\n", err)
		os.Exit(1)
	}
}
