// Package logo exports the LDM logo from its master SVG into raster files
// and platform icon containers.
//
// Every export step is independent: a failure is printed and the next step
// still runs. A run counts as successful when any step succeeded.
package logo

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/jackmordaunt/icns/v3"
	"github.com/rs/zerolog/log"
	ico "github.com/sergeymakinen/go-ico"

	"github.com/ldm-project/ldm-assets/internal/config"
	"github.com/ldm-project/ldm-assets/internal/console"
	"github.com/ldm-project/ldm-assets/internal/fonts"
	"github.com/ldm-project/ldm-assets/internal/osutil"
	"github.com/ldm-project/ldm-assets/internal/paths"
)

// ErrNoVariants is returned by Run when no export step succeeded.
var ErrNoVariants = errors.New("no logo variants created")

// Failure records one failed export operation.
type Failure struct {
	Op  string
	Err error
}

// Report counts the outcome of Export.
type Report struct {
	Successes int
	Failures  []Failure
}

// OK reports whether at least one operation succeeded.
func (r Report) OK() bool {
	return r.Successes > 0
}

// Exporter writes logo variants into an icons directory.
type Exporter struct {
	// Rasterizer renders the master logo. Defaults to the SVG at the source path.
	Rasterizer Rasterizer

	dir        string
	source     string
	titleFonts *fonts.Set
	out        *console.Printer
}

// NewExporter returns an Exporter reading the SVG at source and writing into dir.
func NewExporter(dir, source string, out io.Writer) *Exporter {
	return &Exporter{
		Rasterizer: NewSVGRasterizer(source),
		dir:        dir,
		source:     source,
		titleFonts: fonts.Regular(config.RegularFontPaths...),
		out:        console.New(out),
	}
}

// Export runs every raster and container step and reports what succeeded.
func (e *Exporter) Export() Report {
	var rep Report

	if err := osutil.Mkdir(e.dir); err != nil {
		e.out.Fail("Failed to create %s: %v", e.dir, err)
		rep.Failures = append(rep.Failures, Failure{Op: "icons directory", Err: err})
		return rep
	}

	if osutil.IsFile(e.source) {
		e.out.Line("Creating logo variants from %s", e.source)
	} else {
		e.out.Line("Error: SVG file not found at %s", e.source)
	}

	for _, ns := range SizeTable {
		e.step(&rep, ns.Name, func() (string, error) {
			return e.writeSized(ns.Size)
		})
	}
	e.step(&rep, "main PNG", e.writeCanonical)
	e.step(&rep, "ICO file", e.writeICO)
	if e.step(&rep, "ICNS preparation", e.stageIconset) {
		e.out.Line("  Use: iconutil -c icns %s to create .icns file", paths.Iconset(e.dir))
	}
	e.step(&rep, "ICNS file", e.writeICNS)

	e.out.Line("\nCompleted: %d operations successful", rep.Successes)
	return rep
}

// step runs one operation inside its own failure boundary.
func (e *Exporter) step(rep *Report, op string, fn func() (string, error)) bool {
	msg, err := fn()
	if err != nil {
		e.out.Fail("Failed to create %s: %v", op, err)
		rep.Failures = append(rep.Failures, Failure{Op: op, Err: err})
		return false
	}
	e.out.OK("%s", msg)
	rep.Successes++
	return true
}

func (e *Exporter) writeSized(size int) (string, error) {
	img, err := e.Rasterizer.Rasterize(size)
	if err != nil {
		return "", err
	}
	path := paths.LogoSized(e.dir, size)
	if err := imaging.Save(img, path); err != nil {
		return "", err
	}
	return fmt.Sprintf("Created %s (%dx%d)", filepath.Base(path), size, size), nil
}

func (e *Exporter) writeCanonical() (string, error) {
	img, err := e.Rasterizer.Rasterize(CanonicalSize)
	if err != nil {
		return "", err
	}
	if err := imaging.Save(img, filepath.Join(e.dir, config.LogoPNG)); err != nil {
		return "", err
	}
	return "Created main PNG: " + config.LogoPNG, nil
}

func (e *Exporter) writeICO() (string, error) {
	images := make([]image.Image, 0, len(ICOSizes))
	for _, size := range ICOSizes {
		img, err := e.Rasterizer.Rasterize(size)
		if err != nil {
			return "", fmt.Errorf("%dx%d: %w", size, size, err)
		}
		images = append(images, img)
	}

	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, images); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(e.dir, config.LogoICO), buf.Bytes(), config.DefaultFilePerms); err != nil {
		return "", err
	}
	return "Created ICO file: " + config.LogoICO, nil
}

// stageIconset renders every size before writing anything, stages the files
// in a scratch directory, then merges them into the iconset directory so a
// failure never leaves a partial set behind.
func (e *Exporter) stageIconset() (string, error) {
	rendered := make([]image.Image, len(IconsetSizes))
	for i, size := range IconsetSizes {
		img, err := e.Rasterizer.Rasterize(size)
		if err != nil {
			return "", fmt.Errorf("%dx%d: %w", size, size, err)
		}
		rendered[i] = img
	}

	scratch, err := os.MkdirTemp(e.dir, ".iconset-*")
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			log.Warn().Str("dir", scratch).Err(err).Msg("could not remove staging scratch directory")
		}
	}()

	for i, size := range IconsetSizes {
		if err := imaging.Save(rendered[i], filepath.Join(scratch, paths.IconsetFile(size))); err != nil {
			return "", err
		}
		if size <= Max2xSize {
			if err := imaging.Save(rendered[i], filepath.Join(scratch, paths.IconsetFile2x(size))); err != nil {
				return "", err
			}
		}
	}

	dst := paths.Iconset(e.dir)
	if err := osutil.Merge(scratch, dst); err != nil {
		return "", err
	}
	return "Created macOS iconset in " + dst, nil
}

func (e *Exporter) writeICNS() (string, error) {
	img, err := e.Rasterizer.Rasterize(ICNSSize)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := icns.Encode(&buf, img); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(e.dir, config.LogoICNS), buf.Bytes(), config.DefaultFilePerms); err != nil {
		return "", err
	}
	return "Created ICNS file: " + config.LogoICNS, nil
}
