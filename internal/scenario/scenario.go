// Package scenario loads world population files and spawns their contents.
//
// A scenario names the meshes it uses, an optional camera eye and light, reusable unit
// templates, and the units themselves:
//
//	meshes:
//	  - {name: tank, obj: assets/models/tank.obj}
//	  - {name: crate, primitive: cube, texture: assets/textures/crate.png}
//	templates:
//	  tank: {mesh: tank, scale: 0.5}
//	units:
//	  - {template: tank, position: [0, 0]}
//	  - {mesh: crate, position: [4, 2], selectable: false, movable: false, spin: 0.01}
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("scenario: invalid")

// Primitives are the generated meshes a scenario may name instead of an OBJ file.
var Primitives = []string{"cube", "sphere", "cylinder", "plane"}

type Scenario struct {
	Meshes    []Mesh          `yaml:"meshes"`
	Camera    *Camera         `yaml:"camera,omitempty"`
	Light     *Light          `yaml:"light,omitempty"`
	Templates map[string]Unit `yaml:"templates,omitempty"`
	Units     []Unit          `yaml:"units"`
}

// Mesh is either a generated primitive or an OBJ file, optionally with an albedo texture.
// Grayscale desaturates the texture on load.
type Mesh struct {
	Name      string `yaml:"name"`
	Primitive string `yaml:"primitive,omitempty"`
	OBJ       string `yaml:"obj,omitempty"`
	Texture   string `yaml:"texture,omitempty"`
	Grayscale bool   `yaml:"grayscale,omitempty"`
}

type Camera struct {
	Eye [3]float32 `yaml:"eye"`
}

type Light struct {
	Position [3]float32 `yaml:"position"`
	Color    [3]float32 `yaml:"color"`
}

// Unit places one entity. Position is on the ground plane as (x, z).
// Selectable and Movable default to true; Scale defaults to 1.
type Unit struct {
	Template   string     `yaml:"template,omitempty"`
	Mesh       string     `yaml:"mesh,omitempty"`
	Position   [2]float32 `yaml:"position,omitempty"`
	Yaw        float32    `yaml:"yaw,omitempty"`
	Scale      float32    `yaml:"scale,omitempty"`
	Selectable *bool      `yaml:"selectable,omitempty"`
	Movable    *bool      `yaml:"movable,omitempty"`
	Spin       float32    `yaml:"spin,omitempty"`
}

// IsSelectable reports whether the unit gets a selection circle.
func (u Unit) IsSelectable() bool {
	return u.Selectable == nil || *u.Selectable
}

// IsMovable reports whether the unit accepts move orders.
func (u Unit) IsMovable() bool {
	return u.Movable == nil || *u.Movable
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a scenario, expands unit templates and validates the result.
// Unknown keys are rejected so typos do not silently drop units.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	for i, u := range sc.Units {
		expanded, err := sc.expand(u)
		if err != nil {
			return nil, fmt.Errorf("unit %d: %w", i+1, err)
		}
		sc.Units[i] = expanded
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// expand fills the fields u leaves empty from its template.
func (sc *Scenario) expand(u Unit) (Unit, error) {
	if u.Template == "" {
		return u, nil
	}
	base, ok := sc.Templates[u.Template]
	if !ok {
		return Unit{}, fmt.Errorf("%w: unknown template %q", ErrInvalid, u.Template)
	}
	var out Unit
	if err := copier.Copy(&out, &base); err != nil {
		return Unit{}, err
	}
	if err := copier.CopyWithOption(&out, &u, copier.Option{IgnoreEmpty: true}); err != nil {
		return Unit{}, err
	}
	out.Template = ""
	return out, nil
}

func (sc *Scenario) validate() error {
	names := make(map[string]bool)
	for _, m := range sc.Meshes {
		if m.Name == "" {
			return fmt.Errorf("%w: mesh without a name", ErrInvalid)
		}
		if names[m.Name] {
			return fmt.Errorf("%w: duplicate mesh %q", ErrInvalid, m.Name)
		}
		if (m.Primitive == "") == (m.OBJ == "") {
			return fmt.Errorf("%w: mesh %q needs exactly one of primitive or obj", ErrInvalid, m.Name)
		}
		if m.Primitive != "" && !slices.Contains(Primitives, m.Primitive) {
			return fmt.Errorf("%w: mesh %q: unknown primitive %q", ErrInvalid, m.Name, m.Primitive)
		}
		if m.Grayscale && m.Texture == "" {
			return fmt.Errorf("%w: mesh %q: grayscale without a texture", ErrInvalid, m.Name)
		}
		names[m.Name] = true
	}
	for i := range sc.Units {
		u := &sc.Units[i]
		if !names[u.Mesh] {
			return fmt.Errorf("%w: unit %d: unknown mesh %q", ErrInvalid, i+1, u.Mesh)
		}
		if u.Scale == 0 {
			u.Scale = 1
		}
		if u.Scale < 0 {
			return fmt.Errorf("%w: unit %d: scale must be positive", ErrInvalid, i+1)
		}
	}
	return nil
}
