package icons

import (
	"io"

	"github.com/ldm-project/ldm-assets/internal/config"
	"github.com/ldm-project/ldm-assets/internal/fonts"
)

// Run generates every icon of the built-in catalog into dir at size pixels.
func Run(dir string, size int, out io.Writer) error {
	sets, err := LoadCatalog()
	if err != nil {
		return err
	}

	g := NewGenerator(dir, fonts.Bold(config.BoldFontPaths...), out)
	g.Size = size
	if _, err := g.Generate(sets...); err != nil {
		return err
	}

	g.out.Line("\nAll icons created successfully!")
	g.out.Line("You can replace these placeholder icons with better designs later.")
	return nil
}
