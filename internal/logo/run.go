package logo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/ldm-project/ldm-assets/internal/config"
	"github.com/ldm-project/ldm-assets/internal/osutil"
)

// Artifact is a generated logo file.
type Artifact struct {
	Name string
	Size int64
}

func (a Artifact) String() string {
	return fmt.Sprintf("%s (%s)", a.Name, humanize.Bytes(uint64(a.Size)))
}

// Summary lists the logo files currently in the icons directory.
func (e *Exporter) Summary() ([]Artifact, error) {
	matches, err := osutil.GlobIn(e.dir, config.LogoGlob)
	if err != nil {
		return nil, err
	}

	artifacts := make([]Artifact, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			continue
		}
		artifacts = append(artifacts, Artifact{Name: filepath.Base(m), Size: info.Size()})
	}
	return artifacts, nil
}

// Run is the whole logo build: export every variant, then the branded
// composite and a summary. Only an export without a single success is an
// error; the branded composite is optional.
func (e *Exporter) Run() error {
	e.out.Banner("LDM Logo Variants Generator")
	e.out.Line("")

	rep := e.Export()
	if !rep.OK() {
		e.out.Line("")
		e.out.Fail("Failed to create basic logo variants")
		return ErrNoVariants
	}
	e.out.Line("")
	e.out.OK("Basic logo variants created successfully")

	if err := e.Branded(); err != nil {
		e.out.Fail("Failed to create branded variants: %v", err)
		e.out.Warn("Could not create branded variants (not critical)")
	} else {
		e.out.OK("Branded logo variants created successfully")
	}

	e.out.Line("")
	e.out.Banner("Logo Generation Complete!")
	e.out.Line("\nGenerated files:")

	artifacts, err := e.Summary()
	if err != nil {
		e.out.Warn("Could not list generated files: %v", err)
	}
	for _, a := range artifacts {
		e.out.Line("  %s", a)
	}

	e.out.Line("\nUsage in Qt application:")
	e.out.Line("  QIcon(\":/icons/%s\")  // Vector", config.LogoSource)
	e.out.Line("  QIcon(\":/icons/%s\")  // Raster", config.LogoPNG)
	e.out.Line("  QIcon(\":/icons/%s\")         // Specific size", fmt.Sprintf(config.LogoSizedPattern, CanonicalSize))
	return nil
}
