package main

import (
	"math"

	"github.com/fogleman/gg"
)

// TransformState is the accumulated translation, rotation and magnification
// of one layer. The zero value is not usable; see NewTransformState.
type TransformState struct {
	DX      float64
	DY      float64
	Degrees float64
	MX      float64
	MY      float64
}

func NewTransformState() TransformState {
	return TransformState{MX: 1.0, MY: 1.0}
}

func (t *TransformState) Translate(dx, dy float64) {
	t.DX += dx
	t.DY += dy
}

func (t *TransformState) Rotate(degrees float64) {
	t.Degrees += degrees
}

// Scale adds delta to both axes. The floor only applies when both axes
// end up below minMagnification, and then it pins both of them.
func (t *TransformState) Scale(delta float64) {
	t.MX += delta
	t.MY += delta
	if t.MX < minMagnification && t.MY < minMagnification {
		t.MX = minMagnification
		t.MY = minMagnification
	}
}

// Radians is the drawing angle. Whole turns are dropped first so that
// θ and θ+360 produce the same matrix; Degrees itself is left as is.
func (t TransformState) Radians() float64 {
	return gg.Radians(math.Mod(t.Degrees, 360))
}
