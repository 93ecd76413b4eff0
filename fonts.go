package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

type faceKey struct {
	family string
	size   float64
}

// FontRegistry maps family names to parsed TrueType fonts and caches the
// faces built from them.
type FontRegistry struct {
	fonts map[string]*truetype.Font
	faces map[faceKey]font.Face
}

var builtinFonts = map[string][]byte{
	"sans-serif": goregular.TTF,
	"monospace":  gomono.TTF,
	"bold":       gobold.TTF,
	"italic":     goitalic.TTF,
	"medium":     gomedium.TTF,
	"smallcaps":  gosmallcaps.TTF,
}

func NewFontRegistry() (*FontRegistry, error) {
	r := &FontRegistry{
		fonts: make(map[string]*truetype.Font),
		faces: make(map[faceKey]font.Face),
	}
	for name, data := range builtinFonts {
		if err := r.Register(name, data); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *FontRegistry) Register(family string, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %q: %v", family, err)
	}
	r.fonts[family] = f
	for key := range r.faces {
		if key.family == family {
			delete(r.faces, key)
		}
	}
	return nil
}

// RegisterDir registers every .ttf file in dir under its base name.
func (r *FontRegistry) RegisterDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(name), ".ttf") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if err := r.Register(strings.TrimSuffix(name, filepath.Ext(name)), data); err != nil {
			return err
		}
	}
	return nil
}

func (r *FontRegistry) Has(family string) bool {
	_, ok := r.fonts[family]
	return ok
}

// Families returns the registered family names in sorted order.
func (r *FontRegistry) Families() []string {
	names := make([]string, 0, len(r.fonts))
	for name := range r.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the family after current, wrapping around.
func (r *FontRegistry) Next(current string) string {
	names := r.Families()
	if len(names) == 0 {
		return current
	}
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func (r *FontRegistry) Face(family string, size float64) (font.Face, error) {
	key := faceKey{family: family, size: size}
	if face, ok := r.faces[key]; ok {
		return face, nil
	}
	f, ok := r.fonts[family]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFont, family)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	r.faces[key] = face
	return face, nil
}
