// Package input turns discrete window events into the snapshot the frame systems read:
// held keys, pointer position, modifiers, and the clicks and scrolls recorded since the last frame.
package input

import (
	"github.com/ErikKalkoken/go-set"
	"github.com/go-gl/mathgl/mgl32"
)

// Key is a keyboard key code. Values match GLFW (and therefore raylib) key codes.
type Key int32

const (
	KeyA          Key = 65
	KeyD          Key = 68
	KeyS          Key = 83
	KeyW          Key = 87
	KeyEscape     Key = 256
	KeyRight      Key = 262
	KeyLeft       Key = 263
	KeyDown       Key = 264
	KeyUp         Key = 265
	KeyLeftShift  Key = 340
	KeyRightShift Key = 344
)

// Button is a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Modifiers is a bit set of modifier keys held while a button changed.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether every modifier in m2 is set.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// ScrollUnit tells how a scroll delta is measured.
type ScrollUnit int

const (
	// ScrollLines deltas count wheel notches.
	ScrollLines ScrollUnit = iota
	// ScrollPixels deltas come from touchpads. The camera does not support them.
	ScrollPixels
)

// Event is one of PointerMoved, MouseButton, Scroll, KeyChanged or CloseRequested.
type Event interface {
	isEvent()
}

// PointerMoved carries the pointer's new pixel position.
type PointerMoved struct {
	X, Y float32
}

// MouseButton reports a press or release.
type MouseButton struct {
	Button  Button
	Pressed bool
	Mods    Modifiers
}

// Scroll reports a wheel or touchpad scroll.
type Scroll struct {
	Unit  ScrollUnit
	Delta float32
}

// KeyChanged reports a key press or release.
type KeyChanged struct {
	Key     Key
	Pressed bool
}

// CloseRequested asks the loop to stop.
type CloseRequested struct{}

func (PointerMoved) isEvent()   {}
func (MouseButton) isEvent()    {}
func (Scroll) isEvent()         {}
func (KeyChanged) isEvent()     {}
func (CloseRequested) isEvent() {}

// Captured reports whether ev goes to a focused console instead of the scene.
// Keys and button clicks are captured; pointer motion, scrolls and close requests are not.
func Captured(ev Event) bool {
	switch ev.(type) {
	case KeyChanged, MouseButton:
		return true
	}
	return false
}

// State is the input snapshot between frames.
type State struct {
	pointer mgl32.Vec2
	held    set.Set[Key]
	clicks  []MouseButton
	scrolls []Scroll
	closing bool
}

// NewState returns a state with the pointer centered in a width×height viewport.
func NewState(width, height float32) *State {
	return &State{
		pointer: mgl32.Vec2{width / 2, height / 2},
		held:    set.Of[Key](),
	}
}

// Apply folds ev into the snapshot.
func (s *State) Apply(ev Event) {
	switch ev := ev.(type) {
	case PointerMoved:
		s.pointer = mgl32.Vec2{ev.X, ev.Y}
	case MouseButton:
		s.clicks = append(s.clicks, ev)
	case Scroll:
		s.scrolls = append(s.scrolls, ev)
	case KeyChanged:
		if ev.Pressed {
			s.held.Add(ev.Key)
		} else {
			s.held.Delete(ev.Key)
		}
	case CloseRequested:
		s.closing = true
	}
}

// Pointer returns the last pointer position in pixels.
func (s *State) Pointer() mgl32.Vec2 {
	return s.pointer
}

// Held reports whether k is down.
func (s *State) Held(k Key) bool {
	return s.held.Contains(k)
}

// AnyHeld reports whether any of keys is down.
func (s *State) AnyHeld(keys ...Key) bool {
	for _, k := range keys {
		if s.held.Contains(k) {
			return true
		}
	}
	return false
}

// ReleaseAll forgets every held key, e.g. when keyboard focus moves to the console.
func (s *State) ReleaseAll() {
	s.held.Clear()
}

// TakeClicks returns the button events recorded since the last call and forgets them.
func (s *State) TakeClicks() []MouseButton {
	c := s.clicks
	s.clicks = nil
	return c
}

// TakeScrolls returns the scroll events recorded since the last call and forgets them.
func (s *State) TakeScrolls() []Scroll {
	sc := s.scrolls
	s.scrolls = nil
	return sc
}

// CloseRequested reports whether a close event arrived.
func (s *State) CloseRequested() bool {
	return s.closing
}
