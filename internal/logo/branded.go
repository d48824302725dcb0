package logo

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/ldm-project/ldm-assets/internal/config"
	"github.com/ldm-project/ldm-assets/internal/fonts"
	"github.com/ldm-project/ldm-assets/internal/osutil"
)

const (
	brandedWidth  = 200
	brandedHeight = 80
	titleSize     = 16
)

var (
	titleColor    = color.NRGBA{0, 212, 255, 255}
	subtitleColor = color.NRGBA{255, 255, 255, 255}
)

// Branded composes the canonical PNG with the product name. It reads the
// file Export wrote, so it only works after a successful canonical step.
func (e *Exporter) Branded() error {
	logoPath := filepath.Join(e.dir, config.LogoPNG)
	if !osutil.IsFile(logoPath) {
		return fmt.Errorf("main PNG logo not found at %s", logoPath)
	}

	logo, err := imaging.Open(logoPath)
	if err != nil {
		return err
	}

	canvas := imaging.New(brandedWidth, brandedHeight, color.NRGBA{})
	resized := imaging.Resize(logo, CanonicalSize, CanonicalSize, imaging.Lanczos)
	canvas = imaging.Overlay(canvas, resized, image.Pt(10, 8), 1.0)

	dc := gg.NewContextForImage(canvas)
	drawText(dc, e.titleFonts.Face(titleSize), titleColor, "LDM", 80, 20)
	drawText(dc, fonts.Default(), subtitleColor, "Linux Download", 80, 40)
	drawText(dc, fonts.Default(), subtitleColor, "Manager", 80, 55)

	path := filepath.Join(e.dir, config.LogoBranded)
	if err := imaging.Save(dc.Image(), path); err != nil {
		return err
	}
	e.out.OK("Created branded logo: %s", config.LogoBranded)
	return nil
}

// drawText places the top of the text line at y.
func drawText(dc *gg.Context, face font.Face, c color.Color, s string, x, y float64) {
	dc.SetFontFace(face)
	dc.SetColor(c)
	dc.DrawStringAnchored(s, x, y, 0, 1)
}
