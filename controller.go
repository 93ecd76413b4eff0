package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// InputController turns UI events into layer mutations. Every event that
// changes visible output ends in exactly one redraw; events that change
// nothing end in none.
type InputController struct {
	session *Session
	loadSeq int
}

func NewInputController(s *Session) *InputController {
	return &InputController{session: s}
}

func (c *InputController) Session() *Session { return c.session }

// Press handles one transform button. Presses aimed at a layer that has
// nothing to show are ignored, whatever the direction.
func (c *InputController) Press(target LayerKind, group ControlGroup, dir Direction) error {
	layer := c.session.Layer(target)
	if layer == nil {
		return fmt.Errorf("%w: layer %d", ErrUnknownControl, int(target))
	}
	if !layer.Visible() {
		return nil
	}

	t := layer.Transform()
	switch group {
	case GroupTranslate:
		switch dir {
		case DirUp:
			t.Translate(0, -translateDistance)
		case DirDown:
			t.Translate(0, translateDistance)
		case DirLeft:
			t.Translate(-translateDistance, 0)
		case DirRight:
			t.Translate(translateDistance, 0)
		default:
			return invalidDirection(group, dir)
		}
	case GroupRotate:
		switch dir {
		case DirRight:
			t.Rotate(rotateStep)
		case DirLeft:
			t.Rotate(-rotateStep)
		default:
			return invalidDirection(group, dir)
		}
	case GroupScale:
		switch dir {
		case DirUp:
			t.Scale(scaleStep)
		case DirDown:
			t.Scale(-scaleStep)
		default:
			return invalidDirection(group, dir)
		}
	default:
		return fmt.Errorf("%w: group %d", ErrUnknownControl, int(group))
	}

	c.session.Compositor.Redraw()
	return nil
}

func invalidDirection(group ControlGroup, dir Direction) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidDirection, group, string(dir))
}

// BeginLoad starts a new image load and returns its sequence number. Any
// load still in flight is superseded.
func (c *InputController) BeginLoad() int {
	c.loadSeq++
	return c.loadSeq
}

// CompleteLoad applies the result of the load numbered res.Seq. Results of
// superseded loads are dropped. A failed load leaves the image layer as it
// was and does not redraw.
func (c *InputController) CompleteLoad(res LoadResult) error {
	if res.Seq != c.loadSeq {
		slog.Debug("dropping superseded image load", "seq", res.Seq, "latest", c.loadSeq)
		return nil
	}
	if res.Err == nil && res.Image == nil {
		res.Err = fmt.Errorf("%w: no image", ErrDecodeFailure)
	}
	if res.Err != nil {
		slog.Warn("image load failed", "seq", res.Seq, "error", res.Err)
		return res.Err
	}
	c.session.Image.SetBitmap(res.Image)
	size := res.Image.Bounds().Size()
	slog.Info("image loaded", "format", res.Format, "width", size.X, "height", size.Y)
	c.session.Compositor.Redraw()
	return nil
}

// LoadBlob decodes blob and waits for the result.
func (c *InputController) LoadBlob(ctx context.Context, blob []byte) error {
	seq := c.BeginLoad()
	return c.CompleteLoad(<-Load(ctx, seq, blob))
}

// SetText replaces the text layer content with raw.
func (c *InputController) SetText(raw string) {
	c.session.Text.SetText(raw)
	c.session.Compositor.Redraw()
}

func (c *InputController) SetFontFamily(family string) error {
	spec := c.session.Text.Font()
	face, err := c.session.Fonts.Face(family, spec.Size)
	if err != nil {
		return err
	}
	spec.Family = family
	c.session.Text.SetFont(spec, face)
	slog.Info("font family changed", "family", family)
	c.session.Compositor.Redraw()
	return nil
}

// CycleFontFamily switches to the next registered family.
func (c *InputController) CycleFontFamily() (string, error) {
	next := c.session.Fonts.Next(c.session.Text.Font().Family)
	if err := c.SetFontFamily(next); err != nil {
		return "", err
	}
	return next, nil
}

func (c *InputController) Export(w io.Writer, format ExportFormat, quality int) error {
	if err := c.session.Compositor.Export(w, format, quality); err != nil {
		slog.Error("export failed", "format", format, "error", err)
		return err
	}
	return nil
}

func (c *InputController) ExportFile(dir string, format ExportFormat, quality int) (string, error) {
	path, err := c.session.Compositor.ExportFile(dir, format, quality)
	if err != nil {
		slog.Error("export failed", "format", format, "error", err)
		return "", err
	}
	slog.Info("composite exported", "path", path)
	return path, nil
}
