// Package geom holds the stateless geometry used by selection and cursor picking:
// ground-projected bounding circles and screen-to-ground ray casting.
package geom

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CircleMargin inflates the raw footprint radius so hit-testing is forgiving near the edge.
const CircleMargin = 1.2

var (
	ErrEmptyMesh = errors.New("geom: mesh has no vertices")
	ErrSegments  = errors.New("geom: ring needs at least one segment")
)

// BoundingCircle is a mesh footprint on the ground plane, in the mesh's local frame.
// Center is (x, z). It is built once per mesh and shared by every entity drawing that mesh.
type BoundingCircle struct {
	Radius float32
	Center mgl32.Vec2
}

// NewBoundingCircle projects vertices onto the ground plane (drops Y), takes their mean as the
// center and the furthest projected vertex as the radius, then applies CircleMargin.
func NewBoundingCircle(vertices []mgl32.Vec3) (*BoundingCircle, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyMesh
	}
	// Running mean: c_i = c_{i-1} + (p_i - c_{i-1}) / i.
	var center mgl32.Vec2
	for i, v := range vertices {
		p := mgl32.Vec2{v.X(), v.Z()}
		center = center.Add(p.Sub(center).Mul(1 / float32(i+1)))
	}
	var maxR float32
	for _, v := range vertices {
		r := mgl32.Vec2{v.X(), v.Z()}.Sub(center).Len()
		if r > maxR {
			maxR = r
		}
	}
	return &BoundingCircle{Radius: maxR * CircleMargin, Center: center}, nil
}

// Contains reports whether p (ground x, z) lies strictly inside the circle once it is placed at
// offset (entity position x, z) and scaled by scale.
func (c *BoundingCircle) Contains(p, offset mgl32.Vec2, scale float32) bool {
	center := c.Center.Add(offset)
	return p.Sub(center).Len() < c.Radius*scale
}

// TriangleStrip returns a closed ring around the circle as alternating inner/outer points, ready
// to be drawn as a triangle strip. Point i of segments+1 sits at angle i*2π/segments; the extra
// iteration repeats the first pair so the strip closes. Points lie on y = 0 in the local frame.
func (c *BoundingCircle) TriangleStrip(segments int, width float32) ([]mgl32.Vec3, error) {
	if segments < 1 {
		return nil, ErrSegments
	}
	step := 2 * math32.Pi / float32(segments)
	inner := c.Radius
	outer := c.Radius + width
	points := make([]mgl32.Vec3, 0, 2*(segments+1))
	for i := 0; i <= segments; i++ {
		cos, sin := math32.Cos(step*float32(i)), math32.Sin(step*float32(i))
		points = append(points,
			mgl32.Vec3{c.Center.X() + inner*cos, 0, c.Center.Y() + inner*sin},
			mgl32.Vec3{c.Center.X() + outer*cos, 0, c.Center.Y() + outer*sin},
		)
	}
	return points, nil
}
