package systems

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"topdown/internal/geom"
	"topdown/internal/world"
)

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width, Height float32
}

// Aspect returns width over height.
func (v Viewport) Aspect() float32 {
	return v.Width / v.Height
}

// ResolveCursor casts a ray from the active camera through the pointer pixel and moves the
// cursor to where it meets the ground. A world without a cursor is left alone.
func ResolveCursor(w *world.World, pointer mgl32.Vec2, vp Viewport) error {
	cur, ok := w.Cursor()
	if !ok {
		return nil
	}
	cam, err := w.Camera()
	if err != nil {
		return err
	}
	dir, err := geom.ScreenRay(pointer.X(), pointer.Y(), vp.Width, vp.Height, cam.View, cam.Projection)
	if err != nil {
		return fmt.Errorf("resolve cursor: %w", err)
	}
	cur.Position = geom.IntersectGround(cam.Position, dir)
	return nil
}
