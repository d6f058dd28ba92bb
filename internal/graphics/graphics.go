// Package graphics owns the raylib window: opening it, running the frame loop, and translating
// raylib's polled input into input events.
package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

var background = rl.NewColor(18, 20, 24, 255)

type Window struct {
	Width      int32
	Height     int32
	Title      string
	Fullscreen bool
	TargetFPS  int32
}

// Open creates the window and the GL context. Fullscreen uses the primary monitor's size.
// ESC is left to the console, so the window only closes through its close button.
func Open(w Window) {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(w.Width, w.Height, w.Title)
	if w.Fullscreen {
		rl.SetWindowSize(rl.GetMonitorWidth(0), rl.GetMonitorHeight(0))
	}
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(w.TargetFPS)
}

func Close() {
	rl.CloseWindow()
}

// Size returns the drawable area in pixels.
func Size() (width, height float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

// Run calls frame once per display refresh, between BeginDrawing and EndDrawing, until the
// window is asked to close or frame fails.
func Run(frame func() error) error {
	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(background)
		err := frame()
		rl.EndDrawing()
		if err != nil {
			return err
		}
	}
	return nil
}
