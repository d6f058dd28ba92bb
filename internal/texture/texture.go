// Package texture decodes image files into RGBA pixels ready for upload to the GPU.
package texture

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/imgio"
)

var ErrEmpty = errors.New("texture: image has no pixels")

// Options adjust a texture after decoding.
type Options struct {
	Grayscale bool
}

// Load decodes the image file at path.
func Load(path string, opt Options) (*image.RGBA, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	m := clone.AsRGBA(img)
	if opt.Grayscale {
		m = effect.Grayscale(m)
	}
	return m, nil
}
