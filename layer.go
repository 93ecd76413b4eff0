package main

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
)

// Layer is one independently transformable element of the composite.
type Layer interface {
	Kind() LayerKind
	Transform() *TransformState
	Visible() bool
	Draw(s Surface)
}

// drawTransformed applies t to s around a pivot derived from the content
// box, runs content, and restores s afterwards. The translation is applied
// twice, so the pivot moves with it.
func drawTransformed(s Surface, t TransformState, width, height float64, content func()) {
	s.Push()
	defer s.Pop()

	s.Translate(t.DX, t.DY)
	s.Translate(width/2+t.DX, height/2+t.DY)
	s.Rotate(t.Radians())
	s.Scale(t.MX, t.MY)
	s.Translate(-width/2, -height/2)
	content()
}

type ImageLayer struct {
	transform TransformState
	bitmap    image.Image
	visible   bool
}

func NewImageLayer() *ImageLayer {
	return &ImageLayer{transform: NewTransformState()}
}

func (l *ImageLayer) Kind() LayerKind            { return LayerImage }
func (l *ImageLayer) Transform() *TransformState { return &l.transform }
func (l *ImageLayer) Visible() bool              { return l.visible }
func (l *ImageLayer) Bitmap() image.Image        { return l.bitmap }

// SetBitmap replaces the content wholesale and makes the layer visible.
func (l *ImageLayer) SetBitmap(img image.Image) {
	l.bitmap = img
	l.visible = img != nil
}

func (l *ImageLayer) Draw(s Surface) {
	if l.bitmap == nil {
		return
	}
	size := l.bitmap.Bounds().Size()
	drawTransformed(s, l.transform, float64(size.X), float64(size.Y), func() {
		s.DrawImage(l.bitmap, 0, 0)
	})
}

type FontSpec struct {
	Family     string
	Size       float64
	LineHeight float64
}

// TextLayer draws multi-line text. Its pivot is computed from the whole
// surface rather than from the text extent.
type TextLayer struct {
	transform TransformState
	raw       string
	lines     []string
	font      FontSpec
	face      font.Face
	color     color.Color
	visible   bool
}

func NewTextLayer(spec FontSpec, face font.Face, col color.Color) *TextLayer {
	if col == nil {
		col = color.Black
	}
	return &TextLayer{
		transform: NewTransformState(),
		lines:     []string{""},
		font:      spec,
		face:      face,
		color:     col,
	}
}

func (l *TextLayer) Kind() LayerKind            { return LayerText }
func (l *TextLayer) Transform() *TransformState { return &l.transform }
func (l *TextLayer) Visible() bool              { return l.visible }
func (l *TextLayer) Text() string               { return l.raw }
func (l *TextLayer) Lines() []string            { return l.lines }
func (l *TextLayer) Font() FontSpec             { return l.font }

// SetText re-derives the lines from raw; nothing of the previous content
// is kept.
func (l *TextLayer) SetText(raw string) {
	l.raw = raw
	l.lines = strings.Split(raw, "\n")
	l.visible = raw != ""
}

func (l *TextLayer) SetFont(spec FontSpec, face font.Face) {
	l.font = spec
	l.face = face
}

func (l *TextLayer) Draw(s Surface) {
	width, height := s.Size()
	x2, y2 := 0.0, float64(height)/2
	step := l.font.Size * l.font.LineHeight
	drawTransformed(s, l.transform, float64(width), float64(height), func() {
		for i, line := range l.lines {
			s.DrawText(line, x2, y2+step*float64(i), l.face, l.color)
		}
	})
}
