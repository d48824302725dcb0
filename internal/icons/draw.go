package icons

import (
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const margin = 2

var (
	outline  = color.NRGBA{0, 0, 0, 100}
	fold     = color.NRGBA{200, 200, 200, 150}
	glyphInk = color.NRGBA{255, 255, 255, 255}
)

func (g *Generator) drawBadge(dc *gg.Context, spec Spec) {
	s := float64(g.Size)

	dc.DrawRoundedRectangle(margin, margin, s-2*margin, s-2*margin, 4)
	fillAndOutline(dc, spec.Color)

	if spec.Glyph != "" {
		g.drawGlyph(dc, spec.Glyph, max(8, g.Size/4), 0)
	}
}

func (g *Generator) drawDocument(dc *gg.Context, spec Spec) {
	s := float64(g.Size)
	corner := float64(g.Size / 4)

	dc.MoveTo(margin, margin)
	dc.LineTo(s-corner-margin, margin)
	dc.LineTo(s-margin, corner+margin)
	dc.LineTo(s-margin, s-margin)
	dc.LineTo(margin, s-margin)
	dc.ClosePath()
	fillAndOutline(dc, spec.Color)

	dc.MoveTo(s-corner-margin, margin)
	dc.LineTo(s-margin, corner+margin)
	dc.LineTo(s-corner-margin, corner+margin)
	dc.ClosePath()
	dc.SetColor(fold)
	dc.Fill()

	// Nudged down to sit in the body below the fold.
	g.drawGlyph(dc, spec.Glyph, max(10, g.Size/3), g.Size/8)
}

func (g *Generator) drawFolder(dc *gg.Context, spec Spec) {
	s := float64(g.Size)
	tabW := float64(g.Size / 3)
	tabH := float64(g.Size / 6)

	// The tab pokes out above the body's top edge.
	dc.DrawRoundedRectangle(margin, margin, tabW, 2*tabH, 2)
	dc.SetColor(spec.Color)
	dc.Fill()

	dc.DrawRoundedRectangle(margin, margin+tabH, s-2*margin, s-2*margin-tabH, 3)
	fillAndOutline(dc, spec.Color)

	if spec.Glyph != "" {
		g.drawGlyph(dc, spec.Glyph, max(8, g.Size/4), g.Size/6)
	}
}

func fillAndOutline(dc *gg.Context, c color.Color) {
	dc.SetColor(c)
	dc.FillPreserve()
	dc.SetColor(outline)
	dc.SetLineWidth(1)
	dc.Stroke()
}

// drawGlyph centers the ink box of text on the canvas, shifted down by dy.
func (g *Generator) drawGlyph(dc *gg.Context, text string, px, dy int) {
	if text == "" {
		return
	}
	face := g.fonts.Face(float64(px))
	dc.SetFontFace(face)

	bounds, _ := font.BoundString(face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()

	x := (g.Size - w) / 2
	y := (g.Size-h)/2 + dy

	dc.SetColor(glyphInk)
	dc.DrawString(text, float64(x)-toFloat(bounds.Min.X), float64(y)-toFloat(bounds.Min.Y))
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
