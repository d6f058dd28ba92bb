package render

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"topdown/internal/components"
	"topdown/internal/scenario"
	"topdown/internal/texture"
)

var (
	ErrUnknownMesh = errors.New("render: unknown mesh")
	ErrLoadModel   = errors.New("render: model has no meshes")
)

const (
	sphereRings     = 16
	sphereSlices    = 16
	cylinderSlices  = 16
	planeResolution = 1
)

// Primitives have unit size. Cube and sphere are centred on the origin, so they are lifted to
// stand on the ground; raylib's cylinder already has its base at y = 0.
var primitiveOffset = map[string]mgl32.Vec3{
	"cube":     {0, 0.5, 0},
	"sphere":   {0, 0.5, 0},
	"cylinder": {0, 0, 0},
	"plane":    {0, 0.01, 0},
}

// palette tints meshes in load order.
var palette = []rl.Color{
	rl.NewColor(128, 128, 128, 255),
	rl.NewColor(170, 120, 80, 255),
	rl.NewColor(90, 140, 170, 255),
	rl.NewColor(120, 160, 90, 255),
	rl.NewColor(170, 90, 120, 255),
}

type meshEntry struct {
	name   string
	meshes []rl.Mesh
	model  *rl.Model
	mtl    rl.Material
	tex    *rl.Texture2D
	offset mgl32.Mat4
}

// MeshStore owns GPU meshes. Load needs an open window.
type MeshStore struct {
	entries []meshEntry
	lit     *litShader
}

func NewMeshStore() *MeshStore {
	return &MeshStore{}
}

// Load generates or reads the mesh m names and returns its handle with its vertex positions.
// A texture, when set, replaces the palette tint.
func (s *MeshStore) Load(m scenario.Mesh) (components.MeshID, []mgl32.Vec3, error) {
	e := meshEntry{name: m.Name, offset: mgl32.Ident4()}
	switch {
	case m.OBJ != "":
		if _, err := os.Stat(m.OBJ); err != nil {
			return 0, nil, fmt.Errorf("render: %w", err)
		}
		model := rl.LoadModel(m.OBJ)
		if model.MeshCount == 0 {
			return 0, nil, fmt.Errorf("%w: %s", ErrLoadModel, m.OBJ)
		}
		e.model = &model
		e.meshes = unsafe.Slice(model.Meshes, model.MeshCount)
	default:
		mesh, err := genPrimitive(m.Primitive)
		if err != nil {
			return 0, nil, err
		}
		e.meshes = []rl.Mesh{mesh}
		o := primitiveOffset[m.Primitive]
		e.offset = mgl32.Translate3D(o.X(), o.Y(), o.Z())
	}
	e.mtl = s.material(len(s.entries))
	if m.Texture != "" {
		tex, err := loadTexture(m)
		if err != nil {
			unloadEntry(&e)
			return 0, nil, err
		}
		e.tex = &tex
		rl.SetMaterialTexture(&e.mtl, rl.MapAlbedo, tex)
		if albedo := e.mtl.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = rl.White
		}
	}
	s.entries = append(s.entries, e)
	return components.MeshID(len(s.entries) - 1), vertices(e.meshes), nil
}

// loadTexture decodes the mesh's texture file and uploads it.
func loadTexture(m scenario.Mesh) (rl.Texture2D, error) {
	pixels, err := texture.Load(m.Texture, texture.Options{Grayscale: m.Grayscale})
	if err != nil {
		return rl.Texture2D{}, fmt.Errorf("mesh %q: %w", m.Name, err)
	}
	img := rl.NewImageFromImage(pixels)
	defer rl.UnloadImage(img)
	tex := rl.LoadTextureFromImage(img)
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	return tex, nil
}

func genPrimitive(name string) (rl.Mesh, error) {
	switch name {
	case "cube":
		return rl.GenMeshCube(1, 1, 1), nil
	case "sphere":
		return rl.GenMeshSphere(0.5, sphereRings, sphereSlices), nil
	case "cylinder":
		return rl.GenMeshCylinder(0.5, 1, cylinderSlices), nil
	case "plane":
		return rl.GenMeshPlane(1, 1, planeResolution, planeResolution), nil
	}
	return rl.Mesh{}, fmt.Errorf("%w: primitive %q", ErrUnknownMesh, name)
}

func (s *MeshStore) material(i int) rl.Material {
	mtl := rl.LoadMaterialDefault()
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = palette[i%len(palette)]
	}
	if s.lit == nil {
		if lit, ok := loadLitShader(); ok {
			s.lit = lit
		}
	}
	if s.lit != nil {
		mtl.Shader = s.lit.shader
	}
	return mtl
}

// vertices copies the positions out of the meshes' CPU-side buffers.
func vertices(meshes []rl.Mesh) []mgl32.Vec3 {
	var out []mgl32.Vec3
	for _, m := range meshes {
		if m.Vertices == nil {
			continue
		}
		raw := unsafe.Slice(m.Vertices, m.VertexCount*3)
		for i := 0; i+2 < len(raw); i += 3 {
			out = append(out, mgl32.Vec3{raw[i], raw[i+1], raw[i+2]})
		}
	}
	return out
}

func (s *MeshStore) get(id components.MeshID) (*meshEntry, error) {
	if int(id) >= len(s.entries) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownMesh, id)
	}
	return &s.entries[id], nil
}

// draw renders every sub-mesh of id with model as its transform.
func (s *MeshStore) draw(id components.MeshID, model mgl32.Mat4) error {
	e, err := s.get(id)
	if err != nil {
		return err
	}
	transform := toMatrix(model.Mul4(e.offset))
	for _, m := range e.meshes {
		rl.DrawMesh(m, e.mtl, transform)
	}
	return nil
}

// Unload frees every mesh, texture and the shared shader.
func (s *MeshStore) Unload() {
	for i := range s.entries {
		unloadEntry(&s.entries[i])
	}
	s.entries = nil
	if s.lit != nil {
		s.lit.unload()
		s.lit = nil
	}
}

func unloadEntry(e *meshEntry) {
	if e.tex != nil {
		rl.UnloadTexture(*e.tex)
		e.tex = nil
	}
	if e.model != nil {
		rl.UnloadModel(*e.model)
		return
	}
	for j := range e.meshes {
		rl.UnloadMesh(&e.meshes[j])
	}
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout, where Mn is element n.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}
