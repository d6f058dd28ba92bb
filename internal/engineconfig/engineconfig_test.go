package engineconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topdown/internal/engineconfig"
	"topdown/internal/systems"
)

func TestLoad(t *testing.T) {
	t.Run("should return defaults when the file is missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "engine.yaml")
		c, err := engineconfig.Load(path)
		require.NoError(t, err)
		assert.Equal(t, engineconfig.Default(), c)
		assert.NoFileExists(t, path)
	})
	t.Run("should override only the keys present", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "engine.yaml")
		data := "window:\n  width: 640\nsteering:\n  walk_step: 0.05\ncamera:\n  eye: [1, 20, 3]\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		c, err := engineconfig.Load(path)
		require.NoError(t, err)

		want := engineconfig.Default()
		want.Window.Width = 640
		want.Steering.WalkStep = 0.05
		want.Camera.Eye = [3]float32{1, 20, 3}
		assert.Equal(t, want, c)
	})
	t.Run("should report invalid yaml and fall back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "engine.yaml")
		require.NoError(t, os.WriteFile(path, []byte("window: [oops"), 0644))
		c, err := engineconfig.Load(path)
		assert.Error(t, err)
		assert.Equal(t, engineconfig.Default(), c)
	})
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "engine.yaml")
	c := engineconfig.Default()
	c.Overlay.ShowFPS = true
	c.Ring.Segments = 12
	require.NoError(t, engineconfig.Save(path, c))
	got, err := engineconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestConversions(t *testing.T) {
	c := engineconfig.Default()
	assert.Equal(t, systems.DefaultSteering(), c.SteeringSettings())
	cc := c.CameraControl()
	want := systems.DefaultCameraControl()
	assert.InDelta(t, want.FovY, cc.FovY, 1e-6)
	assert.Equal(t, want.LookOffset, cc.LookOffset)
	assert.Equal(t, mgl32.Vec3{0, 10, 10}, c.Eye())
}
