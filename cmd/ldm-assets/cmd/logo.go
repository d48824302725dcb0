package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ldm-project/ldm-assets/internal/config"
	"github.com/ldm-project/ldm-assets/internal/logo"
	"github.com/ldm-project/ldm-assets/internal/paths"
)

var (
	logoDir    string
	logoSource string
)

// LogoCmd exports the logo variants.
var LogoCmd = &cobra.Command{
	Use:   "logo",
	Short: "Export logo rasters, .ico, .icns and the macOS iconset",
	Long: `Export the LDM logo from its master SVG.

Writes logo-ldm-<size>.png for every standard size, logo-ldm-opensource.png,
a multi-resolution .ico, a .icns, the temp_iconset staging directory for
iconutil, and a branded composite. Each step is independent; the command
fails only when no step succeeded.

Examples:
  ldm-assets logo
  ldm-assets logo --dir resources/icons
  ldm-assets logo --source artwork/logo.svg`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runLogo(cmd); err != nil {
			os.Exit(1)
		}
	},
}

func runLogo(cmd *cobra.Command) error {
	source := logoSource
	if source == "" {
		source = paths.LogoSource(logoDir)
	}
	return logo.NewExporter(logoDir, source, cmd.OutOrStdout()).Run()
}

func init() {
	LogoCmd.Flags().StringVar(&logoDir, "dir", config.DefaultIconsDir, "Icons directory (output)")
	LogoCmd.Flags().StringVar(&logoSource, "source", "", "Master SVG (default <dir>/"+config.LogoSource+")")
}
