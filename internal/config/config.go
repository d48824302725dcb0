// Package config provides centralized constants for the LDM asset generators.
//
// There are no config files: every generator runs with no arguments and
// writes into DefaultIconsDir. Commands expose a few optional flags whose
// defaults come from here.
package config

// === Default paths ===

const (
	// DefaultIconsDir is the output directory, relative to the working directory.
	DefaultIconsDir = "icons"

	// LogoSource is the master vector logo, expected inside the icons directory.
	LogoSource = "logo-ldm-opensource.svg"

	// IconsetDir is the macOS staging directory inside the icons directory.
	// `iconutil -c icns <dir>` turns it into a final container.
	IconsetDir = "temp_iconset"
)

// === Artifact names ===

const (
	// LogoPNG is the canonical raster logo.
	LogoPNG = "logo-ldm-opensource.png"

	// LogoICO is the Windows multi-resolution icon.
	LogoICO = "logo-ldm-opensource.ico"

	// LogoICNS is the macOS icon container.
	LogoICNS = "logo-ldm-opensource.icns"

	// LogoBranded is the logo composed with the product name.
	LogoBranded = "logo-ldm-branded.png"

	// LogoSizedPattern is the fmt pattern for per-size logo rasters.
	LogoSizedPattern = "logo-ldm-%d.png"

	// LogoGlob matches every logo artifact for the end-of-run summary.
	LogoGlob = "logo-ldm-*.{png,ico,icns}"
)

// === Default permissions ===

const (
	// DefaultDirPerms is the default permission mode for created directories.
	DefaultDirPerms = 0755

	// DefaultFilePerms is the default permission mode for created files.
	DefaultFilePerms = 0644
)

// === Icon generation ===

const (
	// DefaultIconSize is the square edge of generated placeholder icons.
	DefaultIconSize = 32
)

// BoldFontPaths are tried in order for icon glyphs.
var BoldFontPaths = []string{
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/Library/Fonts/Arial Bold.ttf",
	"C:\\Windows\\Fonts\\arialbd.ttf",
}

// RegularFontPaths are tried in order for the branded logo title.
var RegularFontPaths = []string{
	"arial.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/Library/Fonts/Arial.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}
