package main

import (
	"fmt"
	"io"
)

// Compositor repaints the whole surface from the layers' current state. It
// borrows the layers; mutation goes through InputController.
type Compositor struct {
	surface Surface
	layers  []Layer
	redraws int
}

// NewCompositor draws layers in the given order, so later layers end up on
// top.
func NewCompositor(s Surface, layers ...Layer) *Compositor {
	return &Compositor{surface: s, layers: layers}
}

func (c *Compositor) Surface() Surface { return c.surface }

// Redraws reports how many full repaints have happened.
func (c *Compositor) Redraws() int { return c.redraws }

func (c *Compositor) Redraw() {
	c.surface.Clear()
	for _, layer := range c.layers {
		layer.Draw(c.surface)
	}
	c.redraws++
}

func (c *Compositor) Export(w io.Writer, format ExportFormat, quality int) error {
	if err := c.surface.Encode(w, format, quality); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrExportFailure, format, err)
	}
	return nil
}
