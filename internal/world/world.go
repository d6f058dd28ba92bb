// Package world stores entities and their components and answers capability queries over them.
//
// Singletons the frame loop needs every frame (the active camera and the cursor) are tracked by
// entity so systems get them by direct lookup instead of by scanning.
package world

import (
	"errors"
	"iter"

	"github.com/ErikKalkoken/go-set"
	"github.com/mlange-42/ark/ecs"

	"topdown/internal/components"
	"topdown/internal/geom"
)

var (
	ErrNoCamera     = errors.New("world: no camera")
	ErrCameraExists = errors.New("world: a camera already exists")
	ErrCursorExists = errors.New("world: a cursor already exists")
	ErrNotAlive     = errors.New("world: entity is not alive")
	ErrSingleton    = errors.New("world: camera and cursor cannot be despawned")
)

// Entity identifies an entity in the world.
type Entity = ecs.Entity

// World owns every entity. It is not safe for concurrent use; the frame loop is its only user.
type World struct {
	ecs *ecs.World

	transforms  *ecs.Map[components.Transformation]
	selectables *ecs.Map[components.Selectable]
	movements   *ecs.Map[components.Movement]
	cameras     *ecs.Map[components.Camera]
	cursors     *ecs.Map[components.Cursor]
	lights      *ecs.Map[components.Light]
	meshes      *ecs.Map[components.MeshRef]
	spins       *ecs.Map[components.Spin]

	renderables *ecs.Filter2[components.MeshRef, components.Transformation]
	pickables   *ecs.Filter2[components.Selectable, components.Transformation]
	orderables  *ecs.Filter2[components.Selectable, components.Movement]
	movers      *ecs.Filter2[components.Movement, components.Transformation]
	spinners    *ecs.Filter2[components.Spin, components.Transformation]
	allLights   *ecs.Filter1[components.Light]

	camera    Entity
	hasCamera bool
	cursor    Entity
	hasCursor bool
}

// New returns an empty world.
func New() *World {
	ew := ecs.NewWorld()
	w := &ew
	return &World{
		ecs:         w,
		transforms:  ecs.NewMap[components.Transformation](w),
		selectables: ecs.NewMap[components.Selectable](w),
		movements:   ecs.NewMap[components.Movement](w),
		cameras:     ecs.NewMap[components.Camera](w),
		cursors:     ecs.NewMap[components.Cursor](w),
		lights:      ecs.NewMap[components.Light](w),
		meshes:      ecs.NewMap[components.MeshRef](w),
		spins:       ecs.NewMap[components.Spin](w),
		renderables: ecs.NewFilter2[components.MeshRef, components.Transformation](w),
		pickables:   ecs.NewFilter2[components.Selectable, components.Transformation](w),
		orderables:  ecs.NewFilter2[components.Selectable, components.Movement](w),
		movers:      ecs.NewFilter2[components.Movement, components.Transformation](w),
		spinners:    ecs.NewFilter2[components.Spin, components.Transformation](w),
		allLights:   ecs.NewFilter1[components.Light](w),
	}
}

// Unit describes a meshed entity to spawn. A nil Circle makes the unit unselectable.
type Unit struct {
	Mesh      components.MeshID
	Transform components.Transformation
	Circle    *geom.BoundingCircle
	Movable   bool
	Spin      float32
}

// SpawnUnit adds a meshed entity with the components u asks for.
func (w *World) SpawnUnit(u Unit) Entity {
	tr := u.Transform
	e := w.transforms.NewEntity(&tr)
	w.meshes.Add(e, &components.MeshRef{ID: u.Mesh})
	if u.Circle != nil {
		w.selectables.Add(e, &components.Selectable{Circle: u.Circle})
	}
	if u.Movable {
		w.movements.Add(e, &components.Movement{})
	}
	if u.Spin != 0 {
		w.spins.Add(e, &components.Spin{Rate: u.Spin})
	}
	return e
}

// SpawnCamera adds the camera. The world holds exactly one; a second call fails.
func (w *World) SpawnCamera(c components.Camera) (Entity, error) {
	if w.hasCamera {
		return Entity{}, ErrCameraExists
	}
	w.camera = w.cameras.NewEntity(&c)
	w.hasCamera = true
	return w.camera, nil
}

// SpawnCursor adds the cursor singleton at the origin.
func (w *World) SpawnCursor() (Entity, error) {
	if w.hasCursor {
		return Entity{}, ErrCursorExists
	}
	w.cursor = w.cursors.NewEntity(&components.Cursor{})
	w.hasCursor = true
	return w.cursor, nil
}

// SpawnLight adds a light.
func (w *World) SpawnLight(l components.Light) Entity {
	return w.lights.NewEntity(&l)
}

// Despawn removes a unit or light. The camera and cursor live for the whole session.
func (w *World) Despawn(e Entity) error {
	if !w.ecs.Alive(e) {
		return ErrNotAlive
	}
	if (w.hasCamera && e == w.camera) || (w.hasCursor && e == w.cursor) {
		return ErrSingleton
	}
	w.ecs.RemoveEntity(e)
	return nil
}

// Alive reports whether e exists.
func (w *World) Alive(e Entity) bool {
	return w.ecs.Alive(e)
}

// Camera returns the active camera.
func (w *World) Camera() (*components.Camera, error) {
	if !w.hasCamera {
		return nil, ErrNoCamera
	}
	return w.cameras.Get(w.camera), nil
}

// Cursor returns the cursor, if one was spawned.
func (w *World) Cursor() (*components.Cursor, bool) {
	if !w.hasCursor {
		return nil, false
	}
	return w.cursors.Get(w.cursor), true
}

// Light returns the first light found.
func (w *World) Light() (*components.Light, bool) {
	q := w.allLights.Query()
	if !q.Next() {
		return nil, false
	}
	l := q.Get()
	q.Close()
	return l, true
}

// Transformation returns e's transformation or nil.
func (w *World) Transformation(e Entity) *components.Transformation {
	if !w.transforms.Has(e) {
		return nil
	}
	return w.transforms.Get(e)
}

// Selectable returns e's selectable state or nil.
func (w *World) Selectable(e Entity) *components.Selectable {
	if !w.selectables.Has(e) {
		return nil
	}
	return w.selectables.Get(e)
}

// Movement returns e's movement order or nil.
func (w *World) Movement(e Entity) *components.Movement {
	if !w.movements.Has(e) {
		return nil
	}
	return w.movements.Get(e)
}

// Selected derives the current selection from the per-entity flags.
func (w *World) Selected() set.Set[Entity] {
	s := set.Of[Entity]()
	q := w.pickables.Query()
	for q.Next() {
		if sel, _ := q.Get(); sel.Selected {
			s.Add(q.Entity())
		}
	}
	return s
}

// Renderables yields every entity that has a mesh and a transformation.
func (w *World) Renderables() iter.Seq2[components.MeshRef, *components.Transformation] {
	return func(yield func(components.MeshRef, *components.Transformation) bool) {
		q := w.renderables.Query()
		for q.Next() {
			m, t := q.Get()
			if !yield(*m, t) {
				q.Close()
				return
			}
		}
	}
}

// Selectables yields every selectable entity with its transformation.
func (w *World) Selectables() iter.Seq2[*components.Selectable, *components.Transformation] {
	return each2(w.pickables)
}

// Orderables yields every selectable entity that can also receive move orders.
func (w *World) Orderables() iter.Seq2[*components.Selectable, *components.Movement] {
	return each2(w.orderables)
}

// Movers yields every entity that can move.
func (w *World) Movers() iter.Seq2[*components.Movement, *components.Transformation] {
	return each2(w.movers)
}

// Spinners yields every spinning entity.
func (w *World) Spinners() iter.Seq2[*components.Spin, *components.Transformation] {
	return each2(w.spinners)
}

func each2[A, B any](f *ecs.Filter2[A, B]) iter.Seq2[*A, *B] {
	return func(yield func(*A, *B) bool) {
		q := f.Query()
		for q.Next() {
			if !yield(q.Get()) {
				q.Close()
				return
			}
		}
	}
}
