// Package icons generates the placeholder PNG icons of the LDM interface.
//
// Icons come from static sets of (file, color, glyph) specs. Each set is drawn
// with one variant: a plain rounded badge, a dog-eared document, or a folder.
// Generation is fail-fast: the first icon that cannot be drawn or saved stops
// the batch.
package icons

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/ldm-project/ldm-assets/internal/config"
	"github.com/ldm-project/ldm-assets/internal/console"
	"github.com/ldm-project/ldm-assets/internal/fonts"
	"github.com/ldm-project/ldm-assets/internal/osutil"
)

// Variant selects how a set of icons is drawn.
type Variant string

const (
	// Plain is a rounded rectangle badge.
	Plain Variant = "plain"
	// FileType is a document outline with a folded corner.
	FileType Variant = "file_type"
	// Category is a folder with a tab.
	Category Variant = "category"
)

func (v Variant) valid() bool {
	switch v {
	case Plain, FileType, Category:
		return true
	}
	return false
}

// Spec describes one icon.
type Spec struct {
	File  string
	Color color.NRGBA
	Glyph string
}

// Set is a group of specs drawn with the same variant.
type Set struct {
	Name    string
	Variant Variant
	Specs   []Spec
}

// Generator draws icons into a directory.
type Generator struct {
	// Size is the edge of the square canvas in pixels.
	Size int

	dir   string
	fonts *fonts.Set
	out   *console.Printer
}

// NewGenerator returns a Generator writing into dir and reporting to out.
func NewGenerator(dir string, fs *fonts.Set, out io.Writer) *Generator {
	return &Generator{
		Size:  config.DefaultIconSize,
		dir:   dir,
		fonts: fs,
		out:   console.New(out),
	}
}

// Generate draws every spec of every set, in order, and returns how many
// files were written. It stops at the first failure.
func (g *Generator) Generate(sets ...Set) (int, error) {
	if err := osutil.Mkdir(g.dir); err != nil {
		return 0, fmt.Errorf("create %s: %w", g.dir, err)
	}

	written := 0
	for _, set := range sets {
		for _, spec := range set.Specs {
			img, err := g.Render(set.Variant, spec)
			if err != nil {
				return written, fmt.Errorf("%s: %w", spec.File, err)
			}

			path := filepath.Join(g.dir, spec.File)
			if err := gg.SavePNG(path, img); err != nil {
				return written, fmt.Errorf("save %s: %w", spec.File, err)
			}
			g.out.Line("Created %s", path)
			written++
		}
	}
	return written, nil
}

// Render draws one icon on a transparent canvas.
func (g *Generator) Render(v Variant, spec Spec) (image.Image, error) {
	if g.Size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", g.Size)
	}

	dc := gg.NewContext(g.Size, g.Size)
	switch v {
	case Plain:
		g.drawBadge(dc, spec)
	case FileType:
		g.drawDocument(dc, spec)
	case Category:
		g.drawFolder(dc, spec)
	default:
		return nil, fmt.Errorf("unknown variant %q", v)
	}
	return dc.Image(), nil
}
