package main

import (
	"image/color"
	"log/slog"
)

// Session owns everything one editing session needs. It replaces ambient
// lookups: the controller and the compositor are handed their collaborators
// here and nowhere else.
type Session struct {
	Image      *ImageLayer
	Text       *TextLayer
	Compositor *Compositor
	Fonts      *FontRegistry
}

func NewSession(surface Surface, fonts *FontRegistry, spec FontSpec, textColor color.Color) (*Session, error) {
	face, err := fonts.Face(spec.Family, spec.Size)
	if err != nil {
		return nil, err
	}
	img := NewImageLayer()
	txt := NewTextLayer(spec, face, textColor)
	return &Session{
		Image:      img,
		Text:       txt,
		Compositor: NewCompositor(surface, img, txt),
		Fonts:      fonts,
	}, nil
}

// newSessionFromConfig builds a session on a gg canvas sized per config.
// A font directory that cannot be read or a family that is not registered
// is logged and falls back to the built-in fonts.
func newSessionFromConfig(config *Config) (*Session, error) {
	fonts, err := NewFontRegistry()
	if err != nil {
		return nil, err
	}
	if config.FontDirectory != "" {
		if err := fonts.RegisterDir(config.FontDirectory); err != nil {
			slog.Warn("failed to register font directory", "dir", config.FontDirectory, "error", err)
		}
	}

	family := config.FontFamily
	if !fonts.Has(family) {
		slog.Warn("unknown font family, using default", "family", family)
		family = defaultFontFamily
	}
	spec := FontSpec{Family: family, Size: config.FontSize, LineHeight: config.LineHeight}
	return NewSession(NewCanvas(config.Width, config.Height), fonts, spec, config.TextColor)
}

func (s *Session) Layer(kind LayerKind) Layer {
	switch kind {
	case LayerImage:
		return s.Image
	case LayerText:
		return s.Text
	default:
		return nil
	}
}
