package main

import (
	"fmt"
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageLayerDrawSequence(t *testing.T) {
	layer := NewImageLayer()
	layer.SetBitmap(image.NewRGBA(image.Rect(0, 0, 100, 50)))
	require.True(t, layer.Visible())

	s := newRecordingSurface(800, 600)
	layer.Draw(s)
	assert.Equal(t, []string{
		"push",
		"translate(0,0)",
		"translate(50,25)",
		"rotate(0)",
		"scale(1,1)",
		"translate(-50,-25)",
		"image(0,0)",
		"pop",
	}, s.ops)
}

func TestImageLayerPivotMovesWithTranslation(t *testing.T) {
	layer := NewImageLayer()
	layer.SetBitmap(image.NewRGBA(image.Rect(0, 0, 100, 50)))
	layer.Transform().Translate(10, -20)
	layer.Transform().Rotate(15)
	layer.Transform().Scale(0.2)

	require.InDelta(t, math.Pi/12, layer.Transform().Radians(), 1e-12)

	s := newRecordingSurface(800, 600)
	layer.Draw(s)
	assert.Equal(t, []string{
		"push",
		"translate(10,-20)",
		"translate(60,5)",
		fmt.Sprintf("rotate(%g)", layer.Transform().Radians()),
		"scale(1.2,1.2)",
		"translate(-50,-25)",
		"image(0,0)",
		"pop",
	}, s.ops)
}

func TestImageLayerWithoutBitmapDrawsNothing(t *testing.T) {
	layer := NewImageLayer()
	s := newRecordingSurface(800, 600)
	layer.Draw(s)
	assert.Empty(t, s.ops)
	assert.False(t, layer.Visible())
}

func TestTextLayerDrawsStackedLines(t *testing.T) {
	layer := NewTextLayer(testFontSpec(), nil, nil)
	layer.SetText("line1\nline2")
	require.True(t, layer.Visible())
	assert.Equal(t, []string{"line1", "line2"}, layer.Lines())

	s := newRecordingSurface(800, 600)
	layer.Draw(s)
	assert.Equal(t, []string{
		"push",
		"translate(0,0)",
		"translate(400,300)",
		"rotate(0)",
		"scale(1,1)",
		"translate(-400,-300)",
		`text("line1",0,300)`,
		`text("line2",0,360)`,
		"pop",
	}, s.ops)
}

func TestTextLayerVisibilityFollowsContent(t *testing.T) {
	layer := NewTextLayer(testFontSpec(), nil, nil)
	assert.False(t, layer.Visible())

	layer.SetText("hello")
	assert.True(t, layer.Visible())

	layer.SetText("")
	assert.False(t, layer.Visible())
	assert.Equal(t, []string{""}, layer.Lines())
}

func TestTextLayerContentIsReplaced(t *testing.T) {
	layer := NewTextLayer(testFontSpec(), nil, nil)
	layer.SetText("a\nb\nc")
	layer.SetText("d")
	assert.Equal(t, "d", layer.Text())
	assert.Equal(t, []string{"d"}, layer.Lines())
}
