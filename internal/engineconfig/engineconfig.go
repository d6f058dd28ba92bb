package engineconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"topdown/internal/systems"
)

// DefaultPath is the engine config file, relative to the process working directory.
const DefaultPath = "config/engine.yaml"

// Config holds engine preferences and tuning. Persisted across runs; world state is not.
type Config struct {
	Window   Window   `yaml:"window"`
	Overlay  Overlay  `yaml:"overlay"`
	Steering Steering `yaml:"steering"`
	Camera   Camera   `yaml:"camera"`
	Ring     Ring     `yaml:"ring"`
	Scenario string   `yaml:"scenario"`
}

type Window struct {
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int32  `yaml:"target_fps"`
}

// Overlay toggles debug drawing. All are switchable from the console.
type Overlay struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	GridVisible  bool `yaml:"grid_visible"`
}

type Steering struct {
	Arrival  float32 `yaml:"arrival"`
	Align    float32 `yaml:"align"`
	WalkStep float32 `yaml:"walk_step"`
	TurnStep float32 `yaml:"turn_step"`
}

type Camera struct {
	Eye        [3]float32 `yaml:"eye"`
	LookOffset [3]float32 `yaml:"look_offset"`
	Step       float32    `yaml:"step"`
	ScrollStep float32    `yaml:"scroll_step"`
	FovDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
}

// Ring shapes the selection ring drawn under hovered and selected units.
type Ring struct {
	Segments int     `yaml:"segments"`
	Width    float32 `yaml:"width"`
}

// Default returns the built-in configuration.
func Default() Config {
	st := systems.DefaultSteering()
	cc := systems.DefaultCameraControl()
	return Config{
		Window: Window{
			Width:     1024,
			Height:    768,
			Title:     "Topdown",
			TargetFPS: 60,
		},
		Overlay: Overlay{GridVisible: true},
		Steering: Steering{
			Arrival:  st.Arrival,
			Align:    st.Align,
			WalkStep: st.WalkStep,
			TurnStep: st.TurnStep,
		},
		Camera: Camera{
			Eye:        [3]float32{0, 10, 10},
			LookOffset: cc.LookOffset,
			Step:       cc.Step,
			ScrollStep: cc.ScrollStep,
			FovDegrees: mgl32.RadToDeg(cc.FovY),
			Near:       cc.Near,
			Far:        cc.Far,
		},
		Ring:     Ring{Segments: 32, Width: 0.08},
		Scenario: "scenarios/skirmish.yaml",
	}
}

// Load reads the config at path. Keys the file leaves out keep their default values.
// A missing file is not an error; Default() is returned and no file is created.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("engineconfig: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("engineconfig: %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// SteeringSettings converts the steering section for the movement system.
func (c Config) SteeringSettings() systems.Steering {
	return systems.Steering{
		Arrival:  c.Steering.Arrival,
		Align:    c.Steering.Align,
		WalkStep: c.Steering.WalkStep,
		TurnStep: c.Steering.TurnStep,
	}
}

// CameraControl converts the camera section for the camera system.
func (c Config) CameraControl() systems.CameraControl {
	return systems.CameraControl{
		Step:       c.Camera.Step,
		ScrollStep: c.Camera.ScrollStep,
		LookOffset: c.Camera.LookOffset,
		FovY:       mgl32.DegToRad(c.Camera.FovDegrees),
		Near:       c.Camera.Near,
		Far:        c.Camera.Far,
	}
}

// Eye returns the camera's starting position.
func (c Config) Eye() mgl32.Vec3 {
	return c.Camera.Eye
}
