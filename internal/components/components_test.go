package components_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"topdown/internal/components"
	"topdown/internal/xassert"
)

func TestTransformationModel(t *testing.T) {
	t.Run("should turn the mesh forward axis onto the walking direction", func(t *testing.T) {
		// Meshes face -Z by default. With the -π/2 offset the model matrix must map
		// that axis onto Forward() for any yaw, otherwise units walk sideways.
		for _, yaw := range []float32{0, 0.3, math32.Pi / 2, -2, math32.Pi} {
			tr := components.Transformation{Yaw: yaw, Scale: 1}
			got := tr.Model().Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
			xassert.EqualVec3(t, tr.Forward(), got, 1e-5)
		}
	})
	t.Run("should translate and scale", func(t *testing.T) {
		tr := components.Transformation{Position: mgl32.Vec3{4, 0, -2}, Yaw: math32.Pi / 2, Scale: 3}
		got := tr.Model().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		xassert.EqualVec3(t, mgl32.Vec3{4, 0, -2}, got, 1e-5)
		edge := tr.Model().Mul4x1(mgl32.Vec4{0, 1, 0, 1}).Vec3()
		assert.InDelta(t, 3, edge.Y(), 1e-5)
	})
}

func TestTransformationForward(t *testing.T) {
	cases := []struct {
		name string
		yaw  float32
		want mgl32.Vec3
	}{
		{"yaw zero faces +X", 0, mgl32.Vec3{1, 0, 0}},
		{"quarter turn faces -Z", math32.Pi / 2, mgl32.Vec3{0, 0, -1}},
		{"half turn faces -X", math32.Pi, mgl32.Vec3{-1, 0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := components.Transformation{Yaw: tc.yaw}.Forward()
			xassert.EqualVec3(t, tc.want, got, 1e-6)
		})
	}
}

func TestMovementOrder(t *testing.T) {
	var m components.Movement
	assert.Nil(t, m.Target)
	m.Order(3, -4)
	if assert.NotNil(t, m.Target) {
		assert.Equal(t, mgl32.Vec2{3, -4}, *m.Target)
	}
}

func TestSelectableHighlighted(t *testing.T) {
	assert.False(t, components.Selectable{}.Highlighted())
	assert.True(t, components.Selectable{Hover: true}.Highlighted())
	assert.True(t, components.Selectable{Selected: true}.Highlighted())
}
