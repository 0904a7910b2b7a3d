package texture

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Image is a texture backed by a decoded image, sampled with nearest-neighbor
// lookup. UV coordinates wrap outside [0, 1] and V is flipped so v=0 maps to
// the bottom of the image.
type Image struct {
	img    image.Image
	width  int
	height int
}

// NewImage creates an image texture from a decoded image
func NewImage(img image.Image) *Image {
	bounds := img.Bounds()
	return &Image{
		img:    img,
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
}

// LoadImage creates an image texture from a PNG or JPEG file
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return NewImage(img), nil
}

// Value samples the image at the given UV coordinates
func (t *Image) Value(u, v float64, p core.Vec3) core.Vec3 {
	u = wrapUV(u)
	v = 1.0 - wrapUV(v) // image rows run top to bottom

	x := int(u * float64(t.width))
	y := int(v * float64(t.height))
	if x >= t.width {
		x = t.width - 1
	}
	if y >= t.height {
		y = t.height - 1
	}

	bounds := t.img.Bounds()
	r, g, b, _ := t.img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()

	// RGBA returns 16-bit channels
	const scale = 1.0 / 65535.0
	return core.NewVec3(float64(r)*scale, float64(g)*scale, float64(b)*scale)
}

// wrapUV maps any coordinate into [0, 1) by repetition
func wrapUV(c float64) float64 {
	c = c - float64(int(c))
	if c < 0 {
		c += 1.0
	}
	return c
}
