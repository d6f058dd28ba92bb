// Package systems implements the per-frame behaviour of the world and the order it runs in.
package systems

import (
	"log/slog"

	"topdown/internal/input"
	"topdown/internal/world"
)

// Renderer draws the world. It is called once per frame, inside the window's drawing pass.
type Renderer interface {
	Draw(w *world.World) error
}

// Frame runs the systems over World in a fixed order.
type Frame struct {
	World    *world.World
	Renderer Renderer // nil runs headless
	Steering Steering
	Camera   CameraControl
	Log      *slog.Logger
}

// Run executes one frame:
//
//	spin → render → cursor → hover → clicks → camera → movement
//
// The cursor is resolved against the camera the frame was rendered with, hover reflects that
// cursor before this frame's clicks consume it, and movement runs last so the next render shows it.
// Any error is fatal for the session.
func (f *Frame) Run(in *input.State, vp Viewport) error {
	Spin(f.World)
	if f.Renderer != nil {
		if err := f.Renderer.Draw(f.World); err != nil {
			return err
		}
	}
	if err := ResolveCursor(f.World, in.Pointer(), vp); err != nil {
		return err
	}
	Hover(f.World)
	for _, ev := range in.TakeClicks() {
		Click(f.World, ev, f.Log)
	}
	cam, err := f.World.Camera()
	if err != nil {
		return err
	}
	if err := MoveCamera(cam, in, f.Camera); err != nil {
		return err
	}
	Move(f.World, f.Steering)
	return nil
}
