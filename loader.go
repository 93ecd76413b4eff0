package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// LoadResult is the outcome of one asynchronous decode. Seq identifies the
// load it belongs to so superseded results can be dropped.
type LoadResult struct {
	Seq    int
	Image  image.Image
	Format string
	Err    error
}

type imageLoadedMsg struct {
	result LoadResult
	path   string
}

// DecodeBitmap turns an opaque blob into a drawable bitmap.
func DecodeBitmap(blob []byte) (image.Image, string, error) {
	if len(blob) == 0 {
		return nil, "", fmt.Errorf("%w: empty input", ErrDecodeFailure)
	}
	if !filetype.IsImage(blob) {
		kind, _ := filetype.Match(blob)
		return nil, "", fmt.Errorf("%w: not an image (%s)", ErrDecodeFailure, kind.MIME.Value)
	}
	img, format, err := image.Decode(bytes.NewReader(blob))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	return img, format, nil
}

// Load decodes blob off the caller's goroutine. The returned channel
// yields exactly one result.
func Load(ctx context.Context, seq int, blob []byte) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	go func() {
		if err := ctx.Err(); err != nil {
			ch <- LoadResult{Seq: seq, Err: fmt.Errorf("%w: %v", ErrDecodeFailure, err)}
			return
		}
		img, format, err := DecodeBitmap(blob)
		if ctxErr := ctx.Err(); err == nil && ctxErr != nil {
			img, err = nil, fmt.Errorf("%w: %v", ErrDecodeFailure, ctxErr)
		}
		ch <- LoadResult{Seq: seq, Image: img, Format: format, Err: err}
	}()
	return ch
}

// loadImageCmd reads path and decodes it, reporting back to the update
// loop as an imageLoadedMsg.
func loadImageCmd(ctx context.Context, seq int, path string) tea.Cmd {
	return func() tea.Msg {
		blob, err := os.ReadFile(path)
		if err != nil {
			return imageLoadedMsg{result: LoadResult{Seq: seq, Err: err}, path: path}
		}
		return imageLoadedMsg{result: <-Load(ctx, seq, blob), path: path}
	}
}

func isImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// scanImageFiles lists the image files in dir, sorted by name.
func scanImageFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && isImageFile(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files
}
