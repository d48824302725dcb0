package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ldm-project/ldm-assets/internal/config"
	"github.com/ldm-project/ldm-assets/internal/icons"
	"github.com/ldm-project/ldm-assets/internal/logo"
	"github.com/ldm-project/ldm-assets/internal/paths"
)

var allDir string

// AllCmd runs both generators.
var AllCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate icons, then export logo variants",
	Long: `Run the icon generator and the logo exporter into the same directory.

The two are independent: a logo failure does not undo the icons.

Examples:
  ldm-assets all
  ldm-assets all --dir resources/icons`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		hasError := false

		if err := icons.Run(allDir, config.DefaultIconSize, out); err != nil {
			fmt.Fprintf(os.Stderr, "icons: %v\n", err)
			hasError = true
		}
		fmt.Fprintln(out)
		if err := logo.NewExporter(allDir, paths.LogoSource(allDir), out).Run(); err != nil {
			hasError = true
		}

		if hasError {
			os.Exit(1)
		}
	},
}

func init() {
	AllCmd.Flags().StringVar(&allDir, "dir", config.DefaultIconsDir, "Icons directory")
}
