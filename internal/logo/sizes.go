package logo

// NamedSize is a logo raster size and the use it serves.
type NamedSize struct {
	Name string
	Size int
}

// SizeTable lists the standalone logo rasters, written as logo-ldm-<size>.png.
var SizeTable = []NamedSize{
	{"icon_16", 16},     // small icons
	{"icon_24", 24},     // toolbar
	{"icon_32", 32},     // standard
	{"icon_48", 48},     // medium
	{"icon_64", 64},     // large
	{"icon_128", 128},   // high-res
	{"icon_256", 256},   // very high-res
	{"splash_400", 400}, // splash screen
	{"app_512", 512},    // application icon
}

// CanonicalSize is the edge of logo-ldm-opensource.png.
const CanonicalSize = 64

// ICOSizes are bundled into the Windows icon.
var ICOSizes = []int{16, 24, 32, 48, 64, 128, 256}

// IconsetSizes are staged for macOS. Sizes up to Max2xSize are also staged
// as the @2x variant of half their size.
var IconsetSizes = []int{16, 32, 64, 128, 256, 512, 1024}

// Max2xSize is the largest size that gets an @2x copy.
const Max2xSize = 512

// ICNSSize is rendered once and downscaled by the icns encoder.
const ICNSSize = 1024
