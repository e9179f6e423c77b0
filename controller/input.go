// Package controller turns player intent into movement clamped to the navmesh and drives the
// trailing camera rig. Platform input is converted to an Intent before it reaches this package.
package controller

import "math"

// Intent is the per-tick movement and look request. Up and Right are in [-1, 1]; positive
// Right turns toward the player's right.
type Intent struct {
	Up        float64
	Right     float64
	LookUp    float64
	LookRight float64
	Fire      bool
}

// Moving reports whether the intent asks for any locomotion.
func (i Intent) Moving() bool {
	return i.Up != 0 || i.Right != 0
}

// Looking reports whether free-look is active.
func (i Intent) Looking() bool {
	return i.LookUp != 0 || i.LookRight != 0
}

// KeyState is a snapshot of discrete keys and the current pointer drag.
type KeyState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Fire     bool

	Dragging bool
	// Pointer offset from where the drag started, in pixels
	DragX, DragY float64
}

// Intent converts the key snapshot. Drag offsets are clamped to ±dragClamp pixels and
// normalized; vertical look is scaled by lookUpScale.
func (k KeyState) Intent(dragClamp, lookUpScale float64) Intent {
	var in Intent
	switch {
	case k.Forward && !k.Backward:
		in.Up = 1
	case k.Backward && !k.Forward:
		in.Up = -1
	}
	switch {
	case k.Right && !k.Left:
		in.Right = 1
	case k.Left && !k.Right:
		in.Right = -1
	}
	in.Fire = k.Fire

	if k.Dragging && dragClamp > 0 {
		x := clamp(k.DragX, -dragClamp, dragClamp) / dragClamp
		y := clamp(k.DragY, -dragClamp, dragClamp) / dragClamp
		in.LookUp = -y * lookUpScale
		in.LookRight = -x
	}
	return in
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
