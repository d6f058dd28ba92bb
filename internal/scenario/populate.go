package scenario

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"topdown/internal/components"
	"topdown/internal/geom"
	"topdown/internal/world"
)

// MeshSource turns a mesh declaration into a drawable handle plus the vertex positions used to
// build its bounding circle.
type MeshSource interface {
	Load(m Mesh) (components.MeshID, []mgl32.Vec3, error)
}

// Prototype is a loaded mesh ready to be placed any number of times.
type Prototype struct {
	ID     components.MeshID
	Circle *geom.BoundingCircle
}

// Catalog maps mesh names to prototypes.
type Catalog map[string]Prototype

// Eye returns the scenario's camera eye, or fallback when it sets none.
func (sc *Scenario) Eye(fallback mgl32.Vec3) mgl32.Vec3 {
	if sc.Camera == nil {
		return fallback
	}
	return sc.Camera.Eye
}

// Populate loads every mesh once, then spawns the light and the units into w.
// All units sharing a mesh share one bounding circle.
func Populate(w *world.World, sc *Scenario, src MeshSource) (Catalog, error) {
	cat := make(Catalog, len(sc.Meshes))
	for _, m := range sc.Meshes {
		id, vertices, err := src.Load(m)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
		circle, err := geom.NewBoundingCircle(vertices)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
		cat[m.Name] = Prototype{ID: id, Circle: circle}
	}
	if sc.Light != nil {
		w.SpawnLight(components.Light{Position: sc.Light.Position, Color: sc.Light.Color})
	}
	for _, u := range sc.Units {
		p := cat[u.Mesh]
		unit := world.Unit{
			Mesh: p.ID,
			Transform: components.Transformation{
				Position: mgl32.Vec3{u.Position[0], 0, u.Position[1]},
				Yaw:      u.Yaw,
				Scale:    u.Scale,
			},
			Movable: u.IsMovable(),
			Spin:    u.Spin,
		}
		if u.IsSelectable() {
			unit.Circle = p.Circle
		}
		w.SpawnUnit(unit)
	}
	return cat, nil
}

// Spawn places a selectable, movable unit of the named mesh at ground point (x, z).
func (c Catalog) Spawn(w *world.World, name string, x, z, scale float32) (world.Entity, error) {
	p, ok := c[name]
	if !ok {
		return world.Entity{}, fmt.Errorf("%w: unknown mesh %q", ErrInvalid, name)
	}
	if scale <= 0 {
		return world.Entity{}, fmt.Errorf("%w: scale must be positive", ErrInvalid)
	}
	return w.SpawnUnit(world.Unit{
		Mesh: p.ID,
		Transform: components.Transformation{
			Position: mgl32.Vec3{x, 0, z},
			Scale:    scale,
		},
		Circle:  p.Circle,
		Movable: true,
	}), nil
}
