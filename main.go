// ldm-assets - asset generators for the LDM download manager
//
// Generates the placeholder interface icons and exports the logo into the
// raster sizes and platform icon containers the desktop app ships with.
package main

import (
	"os"

	// Bootstrap MUST be imported first to set the log level before anything logs
	_ "github.com/ldm-project/ldm-assets/internal/bootstrap"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ldm-project/ldm-assets/cmd/ldm-assets/cmd"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "ldm-assets",
		Short: "Generate LDM icons and logo variants",
		Long: `ldm-assets generates the image assets of the LDM desktop app.

Everything is written into one icons directory (./icons by default).

COMMANDS:
  icons   - Placeholder toolbar, category, file-type and UI icons
  logo    - Logo rasters, .ico, .icns and macOS iconset from the master SVG
  all     - Both of the above`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored status markers")

	cmd.SetVersion(Version)

	rootCmd.AddCommand(cmd.IconsCmd)
	rootCmd.AddCommand(cmd.LogoCmd)
	rootCmd.AddCommand(cmd.AllCmd)
	rootCmd.AddCommand(cmd.VersionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
