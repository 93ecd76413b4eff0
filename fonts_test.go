package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFontRegistryBuiltins(t *testing.T) {
	fonts, err := NewFontRegistry()
	require.NoError(t, err)

	assert.Equal(t, []string{"bold", "italic", "medium", "monospace", "sans-serif", "smallcaps"}, fonts.Families())
	assert.True(t, fonts.Has(defaultFontFamily))
	assert.Equal(t, "sans-serif", fonts.Next("monospace"))
	assert.Equal(t, "bold", fonts.Next("smallcaps"))
	assert.Equal(t, "bold", fonts.Next("not-registered"))
}

func TestFontRegistryFaceCaching(t *testing.T) {
	fonts, err := NewFontRegistry()
	require.NoError(t, err)

	a, err := fonts.Face("monospace", 20)
	require.NoError(t, err)
	b, err := fonts.Face("monospace", 20)
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := fonts.Face("monospace", 30)
	require.NoError(t, err)
	assert.NotSame(t, a, c)

	_, err = fonts.Face("fantasy", 20)
	assert.ErrorIs(t, err, ErrUnknownFont)
}

func TestFontRegistryRegisterDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Custom.ttf"), goregular.TTF, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("not a font"), 0644))

	fonts, err := NewFontRegistry()
	require.NoError(t, err)
	require.NoError(t, fonts.RegisterDir(dir))
	assert.True(t, fonts.Has("Custom"))
	assert.False(t, fonts.Has("readme"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Broken.ttf"), []byte("nope"), 0644))
	assert.Error(t, fonts.RegisterDir(dir))
}
