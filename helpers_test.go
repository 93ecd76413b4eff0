package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

// recordingSurface records every call as a short string so tests can check
// the exact drawing sequence.
type recordingSurface struct {
	width     int
	height    int
	ops       []string
	encodeErr error
}

func newRecordingSurface(width, height int) *recordingSurface {
	return &recordingSurface{width: width, height: height}
}

func (r *recordingSurface) record(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recordingSurface) Size() (int, int)       { return r.width, r.height }
func (r *recordingSurface) Clear()                 { r.record("clear") }
func (r *recordingSurface) Push()                  { r.record("push") }
func (r *recordingSurface) Pop()                   { r.record("pop") }
func (r *recordingSurface) Translate(x, y float64) { r.record("translate(%g,%g)", x, y) }
func (r *recordingSurface) Rotate(radians float64) { r.record("rotate(%g)", radians) }
func (r *recordingSurface) Scale(x, y float64)     { r.record("scale(%g,%g)", x, y) }
func (r *recordingSurface) Image() image.Image     { return image.NewRGBA(image.Rect(0, 0, r.width, r.height)) }
func (r *recordingSurface) reset()                 { r.ops = nil }
func (r *recordingSurface) DrawImage(img image.Image, x, y int) {
	r.record("image(%d,%d)", x, y)
}

func (r *recordingSurface) DrawText(line string, x, y float64, face font.Face, c color.Color) {
	r.record("text(%q,%g,%g)", line, x, y)
}

func (r *recordingSurface) Encode(w io.Writer, format ExportFormat, quality int) error {
	if r.encodeErr != nil {
		return r.encodeErr
	}
	_, err := w.Write([]byte(format.String()))
	return err
}

func testFontSpec() FontSpec {
	return FontSpec{Family: defaultFontFamily, Size: defaultFontSize, LineHeight: defaultLineHeight}
}

func newTestSession(t *testing.T, surface Surface) *Session {
	t.Helper()
	fonts, err := NewFontRegistry()
	require.NoError(t, err)
	session, err := NewSession(surface, fonts, testFontSpec(), nil)
	require.NoError(t, err)
	return session
}

// testImage returns a w x h image with a gradient so that transforms
// produce distinguishable pixels.
func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 255 / w), uint8(y * 255 / h), 0x80, 0xff})
		}
	}
	return img
}

func pngBlob(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// loadImage runs a successful load through the controller.
func loadImage(t *testing.T, c *InputController, img image.Image) {
	t.Helper()
	require.NoError(t, c.CompleteLoad(LoadResult{Seq: c.BeginLoad(), Image: img, Format: "png"}))
}

func pixels(t *testing.T, s Surface) []byte {
	t.Helper()
	rgba, ok := s.Image().(*image.RGBA)
	require.True(t, ok)
	return append([]byte(nil), rgba.Pix...)
}
