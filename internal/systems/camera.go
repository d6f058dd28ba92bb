package systems

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"topdown/internal/components"
	"topdown/internal/input"
)

// ErrPixelScroll is returned for touchpad-style scroll deltas. The camera only understands wheel lines.
var ErrPixelScroll = errors.New("systems: pixel scroll deltas are not supported")

var (
	forwardKeys = []input.Key{input.KeyW, input.KeyUp}
	backKeys    = []input.Key{input.KeyS, input.KeyDown}
	leftKeys    = []input.Key{input.KeyA, input.KeyLeft}
	rightKeys   = []input.Key{input.KeyD, input.KeyRight}
	worldUp     = mgl32.Vec3{0, 1, 0}
)

// NewCamera returns a camera at eye looking along cc.LookOffset for a viewport of the given aspect.
func NewCamera(eye mgl32.Vec3, aspect float32, cc CameraControl) components.Camera {
	return components.Camera{
		Position:   eye,
		View:       lookView(eye, cc.LookOffset),
		Projection: mgl32.Perspective(cc.FovY, aspect, cc.Near, cc.Far),
	}
}

func lookView(eye, offset mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, eye.Add(offset), worldUp)
}

// MoveCamera applies held movement keys and pending scrolls to cam and rebuilds its view.
// Each held direction adds one step, so two keys give a diagonal move.
// Screen up is world -Z; scrolling up (positive lines) lowers the camera.
func MoveCamera(cam *components.Camera, in *input.State, cc CameraControl) error {
	var d mgl32.Vec3
	if in.AnyHeld(forwardKeys...) {
		d[2] -= cc.Step
	}
	if in.AnyHeld(backKeys...) {
		d[2] += cc.Step
	}
	if in.AnyHeld(leftKeys...) {
		d[0] -= cc.Step
	}
	if in.AnyHeld(rightKeys...) {
		d[0] += cc.Step
	}
	for _, s := range in.TakeScrolls() {
		if s.Unit != input.ScrollLines {
			return fmt.Errorf("scroll delta %v: %w", s.Delta, ErrPixelScroll)
		}
		d[1] -= s.Delta * cc.ScrollStep
	}
	if d == (mgl32.Vec3{}) {
		return nil
	}
	cam.Position = cam.Position.Add(d)
	cam.View = lookView(cam.Position, cc.LookOffset)
	return nil
}

// Reproject rebuilds cam's projection for a new viewport aspect, e.g. after a window resize.
func Reproject(cam *components.Camera, aspect float32, cc CameraControl) {
	cam.Projection = mgl32.Perspective(cc.FovY, aspect, cc.Near, cc.Far)
}
