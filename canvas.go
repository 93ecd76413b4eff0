package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Surface is the immediate-mode rasterizer layers draw onto. Push/Pop
// bracket every transformed draw.
type Surface interface {
	Size() (int, int)
	Clear()
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(radians float64)
	Scale(x, y float64)
	DrawImage(img image.Image, x, y int)
	DrawText(line string, x, y float64, face font.Face, c color.Color)
	Encode(w io.Writer, format ExportFormat, quality int) error
	Image() image.Image
}

// Canvas is a Surface backed by a gg context.
type Canvas struct {
	dc *gg.Context
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// Clear resets every pixel to transparent.
func (c *Canvas) Clear() {
	c.dc.Push()
	c.dc.SetColor(color.Transparent)
	c.dc.Clear()
	c.dc.Pop()
}

func (c *Canvas) Push() { c.dc.Push() }
func (c *Canvas) Pop()  { c.dc.Pop() }

func (c *Canvas) Translate(x, y float64) { c.dc.Translate(x, y) }
func (c *Canvas) Rotate(radians float64) { c.dc.Rotate(radians) }
func (c *Canvas) Scale(x, y float64)     { c.dc.Scale(x, y) }

func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.dc.DrawImage(img, x, y)
}

func (c *Canvas) DrawText(line string, x, y float64, face font.Face, col color.Color) {
	if face != nil {
		c.dc.SetFontFace(face)
	}
	c.dc.SetColor(col)
	c.dc.DrawString(line, x, y)
}

func (c *Canvas) Encode(w io.Writer, format ExportFormat, quality int) error {
	switch format {
	case FormatPNG:
		return c.dc.EncodePNG(w)
	case FormatJPEG:
		if quality < 1 || quality > 100 {
			return fmt.Errorf("jpeg quality %d out of range", quality)
		}
		return jpeg.Encode(w, c.dc.Image(), &jpeg.Options{Quality: quality})
	default:
		return fmt.Errorf("unsupported format %d", format)
	}
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}
