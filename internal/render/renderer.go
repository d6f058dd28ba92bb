// Package render draws the world with raylib: lit meshes, the ground grid, selection rings and
// the cursor marker. The camera matrices come from the world, not from raylib's camera helpers.
package render

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"topdown/internal/world"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220

	// ringLift keeps rings and the cursor above the grid to avoid z-fighting.
	ringLift   = 0.02
	cursorSize = 0.3
)

var (
	selectedColor = rl.NewColor(80, 220, 120, 255)
	hoverColor    = rl.NewColor(230, 220, 90, 255)
	cursorColor   = rl.NewColor(240, 240, 240, 255)
)

type Options struct {
	RingSegments int
	RingWidth    float32
	GridVisible  bool
}

// Renderer draws one frame of a world. It satisfies systems.Renderer.
type Renderer struct {
	GridVisible bool

	meshes       *MeshStore
	ringSegments int
	ringWidth    float32
	strip        []rl.Vector3
}

func New(meshes *MeshStore, opt Options) *Renderer {
	return &Renderer{
		GridVisible:  opt.GridVisible,
		meshes:       meshes,
		ringSegments: opt.RingSegments,
		ringWidth:    opt.RingWidth,
	}
}

// SetGridVisible sets whether the ground grid is drawn.
func (r *Renderer) SetGridVisible(visible bool) {
	r.GridVisible = visible
}

// Draw renders meshes, rings and the cursor from the active camera. Call between BeginDrawing
// and EndDrawing.
func (r *Renderer) Draw(w *world.World) error {
	cam, err := w.Camera()
	if err != nil {
		return err
	}
	// BeginMode3D sets up the batch; its matrices are replaced by the world camera's below.
	rl.BeginMode3D(rl.Camera3D{
		Position:   toVector3(cam.Position),
		Target:     toVector3(cam.Position.Add(mgl32.Vec3{0, 0, -1})),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	})
	defer rl.EndMode3D()
	rl.SetMatrixProjection(toMatrix(cam.Projection))
	rl.SetMatrixModelview(toMatrix(cam.View))

	if r.GridVisible {
		drawEditorGrid()
	}

	lightPos, lightColor := defaultLightPos, defaultLightColor
	if l, ok := w.Light(); ok {
		lightPos, lightColor = l.Position, l.Color
	}
	if r.meshes.lit != nil {
		r.meshes.lit.setFrame(cam.Position, lightPos, lightColor)
	}
	for ref, tr := range w.Renderables() {
		if err := r.meshes.draw(ref.ID, tr.Model()); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
	}

	if err := r.drawRings(w); err != nil {
		return err
	}
	if c, ok := w.Cursor(); ok {
		drawCursor(c.Position)
	}
	return nil
}

// drawRings outlines every hovered or selected entity. The ring scales with the entity while its
// width on screen stays constant.
func (r *Renderer) drawRings(w *world.World) error {
	rl.DisableBackfaceCulling()
	defer rl.EnableBackfaceCulling()
	for sel, tr := range w.Selectables() {
		if !sel.Highlighted() || tr.Scale == 0 {
			continue
		}
		points, err := sel.Circle.TriangleStrip(r.ringSegments, r.ringWidth/tr.Scale)
		if err != nil {
			return fmt.Errorf("ring: %w", err)
		}
		r.strip = r.strip[:0]
		for _, p := range points {
			wp := tr.Position.Add(p.Mul(tr.Scale))
			r.strip = append(r.strip, rl.NewVector3(wp.X(), ringLift, wp.Z()))
		}
		c := hoverColor
		if sel.Selected {
			c = selectedColor
		}
		rl.DrawTriangleStrip3D(r.strip, c)
	}
	return nil
}

func drawCursor(p mgl32.Vec3) {
	y := p.Y() + ringLift
	rl.DrawLine3D(rl.NewVector3(p.X()-cursorSize, y, p.Z()), rl.NewVector3(p.X()+cursorSize, y, p.Z()), cursorColor)
	rl.DrawLine3D(rl.NewVector3(p.X(), y, p.Z()-cursorSize), rl.NewVector3(p.X(), y, p.Z()+cursorSize), cursorColor)
}

// drawEditorGrid draws the ground grid with major/minor lines and the X/Z axes.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Z = -gridExtent, float32(i)
		end.X, end.Z = gridExtent, float32(i)
		rl.DrawLine3D(start, end, c)
	}
	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0.001, 0), rl.NewVector3(gridExtent, 0.001, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, 0.001, -gridExtent), rl.NewVector3(0, 0.001, gridExtent), axisZ)
}
