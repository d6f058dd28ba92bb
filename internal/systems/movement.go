package systems

import (
	"github.com/chewxy/math32"

	"topdown/internal/components"
	"topdown/internal/world"
)

// Move advances every entity that has a move order by one frame.
func Move(w *world.World, st Steering) {
	for mv, tr := range w.Movers() {
		Steer(mv, tr, st)
	}
}

// Steer runs one frame of the turn-then-walk law for a single entity.
//
// Within st.Arrival of the target nothing happens; the order stays set. Otherwise the unit turns
// in place by st.TurnStep towards the bearing until it is within st.Align of it, then walks
// st.WalkStep along its facing. The bearing difference is not wrapped into (-π, π], so a unit
// near the ±π seam may turn the long way round.
func Steer(mv *components.Movement, tr *components.Transformation, st Steering) {
	if mv.Target == nil {
		return
	}
	d := mv.Target.Sub(tr.Ground())
	if d.Len() <= st.Arrival {
		return
	}
	bearing := math32.Atan2(-d.Y(), d.X())
	diff := bearing - tr.Yaw
	if math32.Abs(diff) < st.Align {
		tr.Position = tr.Position.Add(tr.Forward().Mul(st.WalkStep))
		return
	}
	tr.Yaw += math32.Copysign(st.TurnStep, diff)
}

// Spin turns every spinning entity by its rate.
func Spin(w *world.World) {
	for s, tr := range w.Spinners() {
		tr.Yaw += s.Rate
	}
}
