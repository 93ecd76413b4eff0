package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
)

var previewBackground = color.RGBA{0x20, 0x20, 0x20, 0xff}

// renderPreview draws img into a cols x rows block of terminal cells. Each
// cell shows two vertically stacked pixels using an upper half block with
// the top pixel as foreground and the bottom pixel as background.
func renderPreview(img image.Image, cols, rows int) string {
	if cols < 1 || rows < 1 {
		return ""
	}
	pixels := fitPreview(img, cols, rows*2)
	size := pixels.Bounds().Size()
	padLeft := (cols - size.X) / 2
	padTop := (rows - (size.Y+1)/2) / 2

	blank := strings.Repeat(" ", cols)
	var out strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			out.WriteString("\n")
		}
		y := (row - padTop) * 2
		if y < 0 || y >= size.Y {
			out.WriteString(blank)
			continue
		}
		out.WriteString(strings.Repeat(" ", padLeft))
		for x := 0; x < size.X; x++ {
			top := pixels.RGBAAt(x, y)
			bottom := previewBackground
			if y+1 < size.Y {
				bottom = pixels.RGBAAt(x, y+1)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bottom)))
			out.WriteString(style.Render("▀"))
		}
		out.WriteString(strings.Repeat(" ", cols-padLeft-size.X))
	}
	return out.String()
}

// fitPreview scales img down, keeping its aspect ratio, so that it fits in
// maxW x maxH pixels, composited over the preview background.
func fitPreview(img image.Image, maxW, maxH int) *image.RGBA {
	src := img.Bounds()
	w, h := src.Dx(), src.Dy()
	if w == 0 || h == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}
	dw, dh := int(float64(w)*scale), int(float64(h)*scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(previewBackground), image.Point{}, xdraw.Src)
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, src, xdraw.Over, nil)
	return dst
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// previewFor returns the cached preview, rebuilding it if the composite was
// repainted or the terminal was resized since it was made.
func (m model) previewFor(cols, rows int) string {
	cache := m.preview
	redraws := m.session.Compositor.Redraws()
	if cache.valid && cache.redraws == redraws && cache.width == cols && cache.height == rows {
		return cache.rendered
	}
	cache.rendered = renderPreview(m.session.Compositor.Surface().Image(), cols, rows)
	cache.redraws = redraws
	cache.width = cols
	cache.height = rows
	cache.valid = true
	return cache.rendered
}
