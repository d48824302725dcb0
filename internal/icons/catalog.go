package icons

import (
	_ "embed"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogFile struct {
	Palette map[string][]uint8 `yaml:"palette"`
	Sets    []struct {
		Name    string  `yaml:"name"`
		Variant Variant `yaml:"variant"`
		Icons   []struct {
			File  string `yaml:"file"`
			Color string `yaml:"color"`
			Glyph string `yaml:"glyph"`
		} `yaml:"icons"`
	} `yaml:"sets"`
}

// LoadCatalog returns the icon sets compiled into the binary.
func LoadCatalog() ([]Set, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog decodes icon sets from YAML. Colors are referenced by palette
// name; a palette entry is an RGB or RGBA channel list.
func ParseCatalog(data []byte) ([]Set, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	palette := make(map[string]color.NRGBA, len(cf.Palette))
	for name, ch := range cf.Palette {
		c, err := channels(ch)
		if err != nil {
			return nil, fmt.Errorf("palette %q: %w", name, err)
		}
		palette[name] = c
	}

	sets := make([]Set, 0, len(cf.Sets))
	for _, s := range cf.Sets {
		if !s.Variant.valid() {
			return nil, fmt.Errorf("set %q: unknown variant %q", s.Name, s.Variant)
		}

		set := Set{Name: s.Name, Variant: s.Variant, Specs: make([]Spec, 0, len(s.Icons))}
		for _, ic := range s.Icons {
			if err := checkFile(ic.File); err != nil {
				return nil, fmt.Errorf("set %q: %w", s.Name, err)
			}
			c, ok := palette[ic.Color]
			if !ok {
				return nil, fmt.Errorf("set %q: %s: unknown color %q", s.Name, ic.File, ic.Color)
			}
			set.Specs = append(set.Specs, Spec{File: ic.File, Color: c, Glyph: ic.Glyph})
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func channels(ch []uint8) (color.NRGBA, error) {
	switch len(ch) {
	case 3:
		return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
	case 4:
		return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("want 3 or 4 channels, got %d", len(ch))
	}
}

// checkFile keeps every icon a plain PNG sibling inside the output directory.
func checkFile(name string) error {
	if name == "" || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid file name %q", name)
	}
	if !strings.EqualFold(filepath.Ext(name), ".png") {
		return fmt.Errorf("%s: icons must be .png", name)
	}
	return nil
}
