package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ldm-project/ldm-assets/internal/config"
	"github.com/ldm-project/ldm-assets/internal/icons"
)

var (
	iconsDir  string
	iconsSize int
)

// IconsCmd generates the placeholder interface icons.
var IconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Generate placeholder toolbar, category and file-type icons",
	Long: `Generate placeholder PNG icons for the LDM interface.

Draws every icon of the built-in catalog (toolbar, category, file-type and
UI sets) as a small colored badge with a centered glyph. Existing files are
overwritten. The first icon that fails stops the run.

Examples:
  ldm-assets icons
  ldm-assets icons --dir resources/icons
  ldm-assets icons --size 48`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := icons.Run(iconsDir, iconsSize, cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(os.Stderr, "icons: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	IconsCmd.Flags().StringVar(&iconsDir, "dir", config.DefaultIconsDir, "Output directory")
	IconsCmd.Flags().IntVar(&iconsSize, "size", config.DefaultIconSize, "Icon edge in pixels")
}
