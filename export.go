package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// ExportFile writes the composite under its fixed download name inside dir
// and returns the absolute path written. Nothing is written if encoding
// fails.
func (c *Compositor) ExportFile(dir string, format ExportFormat, quality int) (string, error) {
	var buf bytes.Buffer
	if err := c.Export(&buf, format, quality); err != nil {
		return "", err
	}

	filename := format.Filename()
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("%w: %v", ErrExportFailure, err)
		}
		filename = filepath.Join(dir, filename)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExportFailure, err)
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return absPath, nil
}
