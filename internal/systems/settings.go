package systems

import "github.com/go-gl/mathgl/mgl32"

// Steering tunes the turn-then-walk control law. Steps are applied once per frame.
type Steering struct {
	Arrival  float32 // planar distance at which a unit stops
	Align    float32 // radians; below this the unit walks instead of turning
	WalkStep float32 // distance per frame
	TurnStep float32 // radians per frame
}

// DefaultSteering returns the constants the prototype was tuned with.
func DefaultSteering() Steering {
	return Steering{
		Arrival:  0.5,
		Align:    0.1,
		WalkStep: 0.001,
		TurnStep: 0.001,
	}
}

// CameraControl tunes camera input and projection.
type CameraControl struct {
	Step       float32    // ground-plane distance per frame per held key
	ScrollStep float32    // height change per scroll line
	LookOffset mgl32.Vec3 // look-at target relative to the eye
	FovY       float32    // radians
	Near, Far  float32
}

// DefaultCameraControl returns a 45° oblique view with a 45° field of view.
func DefaultCameraControl() CameraControl {
	return CameraControl{
		Step:       0.1,
		ScrollStep: 1,
		LookOffset: mgl32.Vec3{0, -10, -10},
		FovY:       mgl32.DegToRad(45),
		Near:       0.1,
		Far:        100,
	}
}
