package geom

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrSingularMatrix means a camera matrix cannot be inverted. The camera is misconfigured;
// callers treat this as fatal rather than skipping the frame.
var ErrSingularMatrix = errors.New("geom: matrix is not invertible")

// ScreenRay un-projects the pixel (px, py) of a width×height viewport into a normalized
// world-space direction leaving the camera eye. Pixel y grows downwards; device y grows upwards.
func ScreenRay(px, py, width, height float32, view, projection mgl32.Mat4) (mgl32.Vec3, error) {
	if projection.Det() == 0 {
		return mgl32.Vec3{}, fmt.Errorf("projection: %w", ErrSingularMatrix)
	}
	if view.Det() == 0 {
		return mgl32.Vec3{}, fmt.Errorf("view: %w", ErrSingularMatrix)
	}
	ndcX := 2*px/width - 1
	ndcY := 1 - 2*py/height
	clip := mgl32.Vec4{ndcX, ndcY, -1, 1}

	eye := projection.Inv().Mul4x1(clip)
	eye[3] = 0 // direction, not a point

	dir := view.Inv().Mul4x1(eye).Vec3()
	return dir.Normalize(), nil
}

// IntersectGround returns where the ray origin + t*dir meets the plane y = 0.
// A dir nearly parallel to the ground yields very large or non-finite coordinates; no clamping is done.
func IntersectGround(origin, dir mgl32.Vec3) mgl32.Vec3 {
	t := -origin.Y() / dir.Y()
	return mgl32.Vec3{origin.X() + dir.X()*t, 0, origin.Z() + dir.Z()*t}
}
