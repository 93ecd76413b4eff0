package main

import (
	"image"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFitPreviewKeepsAspect(t *testing.T) {
	img := testImage(200, 100)
	fitted := fitPreview(img, 40, 40)
	assert.Equal(t, image.Pt(40, 20), fitted.Bounds().Size())

	fitted = fitPreview(img, 100, 10)
	assert.Equal(t, image.Pt(20, 10), fitted.Bounds().Size())
}

func TestFitPreviewEmptyImage(t *testing.T) {
	fitted := fitPreview(image.NewRGBA(image.Rect(0, 0, 0, 0)), 10, 10)
	assert.True(t, fitted.Bounds().Empty())
}

func TestRenderPreviewDimensions(t *testing.T) {
	out := renderPreview(testImage(80, 60), 30, 10)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 10)
	for _, line := range lines {
		assert.Equal(t, 30, lipgloss.Width(line))
	}
	assert.Empty(t, renderPreview(testImage(8, 8), 0, 10))
}
