package systems

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"topdown/internal/input"
	"topdown/internal/world"
)

// Hover flags every selectable entity whose world bounding circle contains the cursor.
// Without a cursor it does nothing.
func Hover(w *world.World) {
	cur, ok := w.Cursor()
	if !ok {
		return
	}
	p := mgl32.Vec2{cur.Position.X(), cur.Position.Z()}
	for sel, tr := range w.Selectables() {
		sel.Hover = sel.Circle.Contains(p, tr.Ground(), tr.Scale)
	}
}

// Click applies a mouse button event. Only releases act.
//
// Left: hovered entities become selected; the rest are deselected unless shift is held.
// Right: every selected movable entity is ordered to the cursor's ground position.
func Click(w *world.World, ev input.MouseButton, log *slog.Logger) {
	if ev.Pressed {
		return
	}
	switch ev.Button {
	case input.ButtonLeft:
		Select(w, ev.Mods.Has(input.ModShift))
	case input.ButtonRight:
		cur, ok := w.Cursor()
		if !ok {
			return
		}
		n := Order(w, cur.Position.X(), cur.Position.Z())
		log.Debug("move order", "x", cur.Position.X(), "z", cur.Position.Z(), "units", n)
	}
}

// Select promotes hovered entities to selected. Unless additive, everything else is deselected.
func Select(w *world.World, additive bool) {
	for sel := range w.Selectables() {
		if sel.Hover {
			sel.Selected = true
		} else if !additive {
			sel.Selected = false
		}
	}
}

// SelectAll selects or deselects every selectable entity.
func SelectAll(w *world.World, selected bool) {
	for sel := range w.Selectables() {
		sel.Selected = selected
	}
}

// Order sends every selected movable entity to the ground point (x, z) and returns how many
// entities received the order. Selected entities that cannot move are skipped.
func Order(w *world.World, x, z float32) int {
	var n int
	for sel, mv := range w.Orderables() {
		if sel.Selected {
			mv.Order(x, z)
			n++
		}
	}
	return n
}
