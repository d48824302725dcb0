// Package fonts resolves font faces for drawing text onto generated assets.
//
// A Set tries a list of font files in order and falls back to a font
// compiled into the binary, so text always renders even on a machine without
// the preferred system fonts. The fallback never has to match the requested
// look, only the requested size.
package fonts

import (
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Set resolves faces from an ordered list of font files.
type Set struct {
	paths    []string
	builtin  []byte
	cache    map[string]*truetype.Font
	missing  map[string]bool
	fallback *truetype.Font
}

// Bold returns a Set that tries paths and falls back to Go Bold.
func Bold(paths ...string) *Set {
	return newSet(gobold.TTF, paths)
}

// Regular returns a Set that tries paths and falls back to Go Regular.
func Regular(paths ...string) *Set {
	return newSet(goregular.TTF, paths)
}

func newSet(builtin []byte, paths []string) *Set {
	return &Set{
		paths:   paths,
		builtin: builtin,
		cache:   make(map[string]*truetype.Font),
		missing: make(map[string]bool),
	}
}

// Face returns a face rendering at size pixels.
func (s *Set) Face(size float64) font.Face {
	opts := &truetype.Options{Size: size, Hinting: font.HintingFull}

	for _, path := range s.paths {
		if f := s.load(path); f != nil {
			return truetype.NewFace(f, opts)
		}
	}

	if s.fallback == nil {
		f, err := truetype.Parse(s.builtin)
		if err != nil {
			log.Warn().Err(err).Msg("built-in font unusable, using basic font")
			return Default()
		}
		s.fallback = f
	}
	return truetype.NewFace(s.fallback, opts)
}

func (s *Set) load(path string) *truetype.Font {
	if f, ok := s.cache[path]; ok {
		return f
	}
	if s.missing[path] {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Str("path", path).Err(err).Msg("font not available")
		s.missing[path] = true
		return nil
	}
	f, err := truetype.Parse(data)
	if err != nil {
		log.Debug().Str("path", path).Err(err).Msg("font not parseable")
		s.missing[path] = true
		return nil
	}

	s.cache[path] = f
	return f
}

// Default returns the fixed-size bitmap face used when no size is requested.
func Default() font.Face {
	return basicfont.Face7x13
}
