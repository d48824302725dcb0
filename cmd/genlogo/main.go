// genlogo creates the LDM logo variants from the master SVG.
//
// Reads icons/logo-ldm-opensource.svg and writes, next to it:
//   - logo-ldm-<size>.png for 16, 24, 32, 48, 64, 128, 256, 400 and 512
//   - logo-ldm-opensource.png (64x64), the raster the app loads by default
//   - logo-ldm-opensource.ico with 16..256 for Windows
//   - logo-ldm-opensource.icns and temp_iconset/ for macOS
//   - logo-ldm-branded.png, the logo with the product name (optional)
//
// Exits 1 only when none of the variants could be created.
//
// Usage:
//   go run ./cmd/genlogo
//   go run ./cmd/genlogo -dir resources/icons
package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/ldm-project/ldm-assets/internal/bootstrap"

	"github.com/ldm-project/ldm-assets/internal/config"
	"github.com/ldm-project/ldm-assets/internal/logo"
	"github.com/ldm-project/ldm-assets/internal/paths"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	var (
		outputDir string
		ver       bool
	)
	flag.StringVar(&outputDir, "dir", config.DefaultIconsDir, "Icons directory holding "+config.LogoSource)
	flag.BoolVar(&ver, "version", false, "Print version and exit")
	flag.Parse()

	if ver {
		fmt.Printf("genlogo %s\n", version)
		os.Exit(0)
	}

	if err := logo.NewExporter(outputDir, paths.LogoSource(outputDir), os.Stdout).Run(); err != nil {
		os.Exit(1)
	}
}
