package scenario_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topdown/internal/components"
	"topdown/internal/scenario"
	"topdown/internal/world"
)

const skirmish = `
meshes:
  - {name: tank, obj: assets/models/tank.obj}
  - {name: crate, primitive: cube, texture: assets/textures/crate.png, grayscale: true}
camera:
  eye: [0, 12, 8]
light:
  position: [20, 20, -20]
  color: [0.7, 0.7, 0.7]
templates:
  tank: {mesh: tank, scale: 0.5, yaw: 1}
units:
  - {template: tank, position: [1, 2]}
  - {template: tank, position: [3, 4], scale: 2}
  - {mesh: crate, position: [5, 6], selectable: false, movable: false, spin: 0.01}
`

func TestParse(t *testing.T) {
	t.Run("should expand templates and apply defaults", func(t *testing.T) {
		sc, err := scenario.Parse([]byte(skirmish))
		require.NoError(t, err)
		require.Len(t, sc.Units, 3)

		a, b, c := sc.Units[0], sc.Units[1], sc.Units[2]
		assert.Equal(t, "tank", a.Mesh)
		assert.Equal(t, [2]float32{1, 2}, a.Position)
		assert.Equal(t, float32(0.5), a.Scale)
		assert.Equal(t, float32(1), a.Yaw)
		assert.Empty(t, a.Template)
		assert.True(t, a.IsSelectable())
		assert.True(t, a.IsMovable())

		assert.Equal(t, float32(2), b.Scale)
		assert.Equal(t, [2]float32{3, 4}, b.Position)

		assert.Equal(t, float32(1), c.Scale)
		assert.False(t, c.IsSelectable())
		assert.False(t, c.IsMovable())
		assert.Equal(t, mgl32.Vec3{0, 12, 8}, sc.Eye(mgl32.Vec3{}))
	})
	t.Run("should keep mesh textures", func(t *testing.T) {
		sc, err := scenario.Parse([]byte(skirmish))
		require.NoError(t, err)
		assert.Empty(t, sc.Meshes[0].Texture)
		assert.Equal(t, "assets/textures/crate.png", sc.Meshes[1].Texture)
		assert.True(t, sc.Meshes[1].Grayscale)
	})
	cases := []struct {
		name string
		data string
	}{
		{"unknown mesh", "meshes: [{name: a, primitive: cube}]\nunits: [{mesh: b}]"},
		{"unknown template", "meshes: [{name: a, primitive: cube}]\nunits: [{template: x}]"},
		{"unknown primitive", "meshes: [{name: a, primitive: torus}]"},
		{"primitive and obj", "meshes: [{name: a, primitive: cube, obj: a.obj}]"},
		{"neither primitive nor obj", "meshes: [{name: a}]"},
		{"duplicate mesh", "meshes: [{name: a, primitive: cube}, {name: a, primitive: sphere}]"},
		{"grayscale without texture", "meshes: [{name: a, primitive: cube, grayscale: true}]"},
		{"negative scale", "meshes: [{name: a, primitive: cube}]\nunits: [{mesh: a, scale: -1}]"},
	}
	for _, tc := range cases {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.data))
			assert.ErrorIs(t, err, scenario.ErrInvalid)
		})
	}
	t.Run("should reject unknown keys", func(t *testing.T) {
		_, err := scenario.Parse([]byte("meshes: []\nunitz: []"))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("should load from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "s.yaml")
		require.NoError(t, os.WriteFile(path, []byte(skirmish), 0644))
		sc, err := scenario.Load(path)
		require.NoError(t, err)
		assert.Len(t, sc.Meshes, 2)
	})
	t.Run("should report a missing file", func(t *testing.T) {
		_, err := scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

type fakeSource struct {
	loads    map[string]int
	vertices []mgl32.Vec3
	err      error
}

func (f *fakeSource) Load(m scenario.Mesh) (components.MeshID, []mgl32.Vec3, error) {
	if f.err != nil {
		return 0, nil, f.err
	}
	f.loads[m.Name]++
	return components.MeshID(len(f.loads)), f.vertices, nil
}

func square() []mgl32.Vec3 {
	return []mgl32.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 0, 2}, {2, 0, 2}}
}

func TestPopulate(t *testing.T) {
	t.Run("should spawn units sharing one circle per mesh", func(t *testing.T) {
		// given
		sc, err := scenario.Parse([]byte(skirmish))
		require.NoError(t, err)
		src := &fakeSource{loads: make(map[string]int), vertices: square()}
		w := world.New()
		// when
		cat, err := scenario.Populate(w, sc, src)
		// then
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"tank": 1, "crate": 1}, src.loads)
		assert.InDelta(t, 1, cat["tank"].Circle.Center.X(), 1e-6)

		var circles []*components.Selectable
		for sel := range w.Selectables() {
			circles = append(circles, sel)
		}
		require.Len(t, circles, 2)
		assert.Same(t, circles[0].Circle, circles[1].Circle)

		var movers int
		for range w.Movers() {
			movers++
		}
		assert.Equal(t, 2, movers)
		_, ok := w.Light()
		assert.True(t, ok)
	})
	t.Run("should place units on the ground", func(t *testing.T) {
		sc, err := scenario.Parse([]byte("meshes: [{name: a, primitive: cube}]\nunits: [{mesh: a, position: [3, -4], yaw: 2}]"))
		require.NoError(t, err)
		w := world.New()
		_, err = scenario.Populate(w, sc, &fakeSource{loads: make(map[string]int), vertices: square()})
		require.NoError(t, err)
		for _, tr := range w.Selectables() {
			assert.Equal(t, components.Transformation{Position: mgl32.Vec3{3, 0, -4}, Yaw: 2, Scale: 1}, *tr)
		}
	})
	t.Run("should fail on a mesh without vertices", func(t *testing.T) {
		sc, err := scenario.Parse([]byte(skirmish))
		require.NoError(t, err)
		_, err = scenario.Populate(world.New(), sc, &fakeSource{loads: make(map[string]int)})
		assert.Error(t, err)
	})
	t.Run("should pass on loader errors", func(t *testing.T) {
		sc, err := scenario.Parse([]byte(skirmish))
		require.NoError(t, err)
		boom := errors.New("boom")
		_, err = scenario.Populate(world.New(), sc, &fakeSource{err: boom})
		assert.ErrorIs(t, err, boom)
	})
}

func TestCatalogSpawn(t *testing.T) {
	w := world.New()
	cat := scenario.Catalog{"crate": {ID: 3}}
	e, err := cat.Spawn(w, "crate", 1, 2, 1.5)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 0, 2}, w.Transformation(e).Position)
	assert.NotNil(t, w.Movement(e))
	_, err = cat.Spawn(w, "tank", 0, 0, 1)
	assert.ErrorIs(t, err, scenario.ErrInvalid)
	_, err = cat.Spawn(w, "crate", 0, 0, 0)
	assert.ErrorIs(t, err, scenario.ErrInvalid)
}
