package logo

import (
	"fmt"
	"image"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterizer renders the master logo as a size x size bitmap.
type Rasterizer interface {
	Rasterize(size int) (image.Image, error)
}

// SVGRasterizer renders an SVG file. The file is read on every call so each
// export step sees the source as it is on disk at that moment.
type SVGRasterizer struct {
	Path string
}

// NewSVGRasterizer returns a Rasterizer for the SVG at path.
func NewSVGRasterizer(path string) *SVGRasterizer {
	return &SVGRasterizer{Path: path}
}

// Rasterize implements Rasterizer.
func (r *SVGRasterizer) Rasterize(size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size %d", size)
	}

	in, err := os.Open(r.Path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	icon, err := oksvg.ReadIconStream(in, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.Path, err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1.0)

	return rgba, nil
}
