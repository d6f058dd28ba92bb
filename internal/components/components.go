// Package components defines the data attached to world entities. Components are plain values;
// behaviour lives in the systems package.
package components

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"topdown/internal/geom"
)

// Transformation places an entity in the world. Yaw is the rotation about +Y in radians.
type Transformation struct {
	Position mgl32.Vec3
	Yaw      float32
	Scale    float32
}

// At returns an unrotated, unscaled transformation at position.
func At(position mgl32.Vec3) Transformation {
	return Transformation{Position: position, Scale: 1}
}

// Model returns translate(Position) · scale(Scale) · rotateY(Yaw - π/2).
// The -π/2 turns the mesh's default forward axis onto the steering convention, where yaw 0 faces +X.
func (t Transformation) Model() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(mgl32.Scale3D(t.Scale, t.Scale, t.Scale)).
		Mul4(mgl32.HomogRotate3DY(t.Yaw - math32.Pi/2))
}

// Forward is the ground-plane direction the entity walks along: (cos yaw, 0, -sin yaw).
func (t Transformation) Forward() mgl32.Vec3 {
	return mgl32.Vec3{math32.Cos(t.Yaw), 0, -math32.Sin(t.Yaw)}
}

// Ground returns the position projected onto the ground plane as (x, z).
func (t Transformation) Ground() mgl32.Vec2 {
	return mgl32.Vec2{t.Position.X(), t.Position.Z()}
}

// Selectable marks an entity the user can hover and select.
// Hover is recomputed every frame; Selected persists until a click clears it.
type Selectable struct {
	Selected bool
	Hover    bool
	Circle   *geom.BoundingCircle
}

// Highlighted reports whether the selection ring should be drawn.
func (s Selectable) Highlighted() bool {
	return s.Hover || s.Selected
}

// Movement holds a move order. A nil Target means idle.
type Movement struct {
	Target *mgl32.Vec2
}

// Order sets the target to the ground point (x, z).
func (m *Movement) Order(x, z float32) {
	m.Target = &mgl32.Vec2{x, z}
}

// Camera is a viewpoint. View and Projection are recomputed whenever Position changes.
type Camera struct {
	Position   mgl32.Vec3
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// Cursor is the pointer's position on the ground plane, resolved once per frame.
type Cursor struct {
	Position mgl32.Vec3
}

// Light is a static point light. The renderer uses the first one it finds.
type Light struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// MeshID is a handle into the renderer's mesh store.
type MeshID uint32

// MeshRef attaches a drawable mesh to an entity.
type MeshRef struct {
	ID MeshID
}

// Spin turns an entity about +Y by Rate radians every frame.
type Spin struct {
	Rate float32
}
