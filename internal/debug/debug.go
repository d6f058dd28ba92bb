package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"topdown/internal/world"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// Text is refreshed every updateInterval frames to limit allocations.
	updateInterval = 30
)

// Debug draws the optional overlays in the top-right corner. All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// ShowCursor adds the cursor's ground position and the selection size.
	ShowCursor bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

func New() *Debug {
	return &Debug{}
}

func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

func (d *Debug) SetShowCursor(show bool) {
	d.ShowCursor = show
}

// Draw renders the enabled overlays. Call after the scene and the terminal.
func (d *Debug) Draw(w *world.World) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if (d.ShowFPS && d.lastFpsText == "") || (d.ShowMemAlloc && d.lastMemText == "") {
		update = true
	}

	y := int32(fpsPadding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, y)
		y += fpsLineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
		}
		drawRight(d.lastMemText, y)
		y += fpsLineHeight
	}
	if d.ShowCursor {
		if c, ok := w.Cursor(); ok {
			drawRight(fmt.Sprintf("Cursor: %.2f, %.2f", c.Position.X(), c.Position.Z()), y)
			y += fpsLineHeight
		}
		drawRight(fmt.Sprintf("Selected: %d", w.Selected().Size()), y)
	}
}

func drawRight(text string, y int32) {
	if text == "" {
		return
	}
	x := int32(rl.GetScreenWidth()) - rl.MeasureText(text, fpsFontSize) - fpsPadding
	rl.DrawText(text, x, y, fpsFontSize, rl.Green)
}
