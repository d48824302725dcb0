// Package paths provides wellknown locations inside the icons directory.
//
// All generated files are siblings inside one icons directory; the only
// subdirectory is the macOS iconset staging directory.
package paths

import (
	"fmt"
	"path/filepath"

	"github.com/ldm-project/ldm-assets/internal/config"
)

// LogoSource returns the master SVG logo path inside iconsDir.
func LogoSource(iconsDir string) string {
	return filepath.Join(iconsDir, config.LogoSource)
}

// LogoSized returns the per-size raster logo path, e.g. logo-ldm-64.png.
func LogoSized(iconsDir string, size int) string {
	return filepath.Join(iconsDir, fmt.Sprintf(config.LogoSizedPattern, size))
}

// Iconset returns the macOS iconset staging directory.
func Iconset(iconsDir string) string {
	return filepath.Join(iconsDir, config.IconsetDir)
}

// IconsetFile returns the iconset file name for a size, following Apple's
// icon_<n>x<n>.png convention.
func IconsetFile(size int) string {
	return fmt.Sprintf("icon_%dx%d.png", size, size)
}

// IconsetFile2x returns the double-resolution name a size is also staged
// under: a 64px image is icon_32x32@2x.png.
func IconsetFile2x(size int) string {
	half := size / 2
	return fmt.Sprintf("icon_%dx%d@2x.png", half, half)
}
