package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"topdown/internal/input"
)

// trackedKeys are the keys reported as KeyChanged events.
var trackedKeys = []input.Key{
	input.KeyW, input.KeyA, input.KeyS, input.KeyD,
	input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight,
	input.KeyLeftShift, input.KeyRightShift,
}

// buttons are polled in this order, so simultaneous clicks always reach the frame left first.
var buttons = []struct {
	button input.Button
	raylib rl.MouseButton
}{
	{input.ButtonLeft, rl.MouseButtonLeft},
	{input.ButtonRight, rl.MouseButtonRight},
	{input.ButtonMiddle, rl.MouseButtonMiddle},
}

// Poller emits the input events that happened since the previous frame.
type Poller struct {
	last   rl.Vector2
	events []input.Event
}

// Poll returns this frame's events. The returned slice is reused by the next call.
func (p *Poller) Poll() []input.Event {
	p.events = p.events[:0]
	if pos := rl.GetMousePosition(); pos != p.last {
		p.last = pos
		p.events = append(p.events, input.PointerMoved{X: pos.X, Y: pos.Y})
	}
	mods := modifiers()
	for _, b := range buttons {
		if rl.IsMouseButtonPressed(b.raylib) {
			p.events = append(p.events, input.MouseButton{Button: b.button, Pressed: true, Mods: mods})
		}
		if rl.IsMouseButtonReleased(b.raylib) {
			p.events = append(p.events, input.MouseButton{Button: b.button, Pressed: false, Mods: mods})
		}
	}
	if d := rl.GetMouseWheelMove(); d != 0 {
		p.events = append(p.events, input.Scroll{Unit: input.ScrollLines, Delta: d})
	}
	for _, k := range trackedKeys {
		if rl.IsKeyPressed(int32(k)) {
			p.events = append(p.events, input.KeyChanged{Key: k, Pressed: true})
		}
		if rl.IsKeyReleased(int32(k)) {
			p.events = append(p.events, input.KeyChanged{Key: k, Pressed: false})
		}
	}
	if rl.WindowShouldClose() {
		p.events = append(p.events, input.CloseRequested{})
	}
	return p.events
}

func modifiers() input.Modifiers {
	var m input.Modifiers
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		m |= input.ModShift
	}
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		m |= input.ModCtrl
	}
	if rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt) {
		m |= input.ModAlt
	}
	return m
}
