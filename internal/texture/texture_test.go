package texture_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topdown/internal/texture"
)

func writePNG(t *testing.T, m image.Image) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(p)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
	return p
}

func TestLoad(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(1, 0, color.NRGBA{B: 255, A: 255})

	t.Run("should decode the pixels", func(t *testing.T) {
		p := writePNG(t, src)
		m, err := texture.Load(p, texture.Options{})
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 2, 1), m.Bounds())
		assert.Equal(t, color.RGBA{R: 255, A: 255}, m.RGBAAt(0, 0))
		assert.Equal(t, color.RGBA{B: 255, A: 255}, m.RGBAAt(1, 0))
	})
	t.Run("should convert to grayscale when asked", func(t *testing.T) {
		p := writePNG(t, src)
		m, err := texture.Load(p, texture.Options{Grayscale: true})
		require.NoError(t, err)
		c := m.RGBAAt(0, 0)
		assert.Equal(t, c.R, c.G)
		assert.Equal(t, c.G, c.B)
		assert.NotZero(t, c.R)
	})
	t.Run("should fail for a missing file", func(t *testing.T) {
		_, err := texture.Load(filepath.Join(t.TempDir(), "none.png"), texture.Options{})
		assert.Error(t, err)
	})
}
