package allcolors

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/BeatGlow/allcolors/pixel"
)

// PixelMap owns a generated buffer together with the parameters it was built from.
type PixelMap struct {
	depth   ColorDepth
	method  Method
	profile Profile
	img     *pixel.RGBAImage
}

// New generates a pixel map.
func New(method Method, depth ColorDepth) *PixelMap {
	return NewRand(method, depth, nil)
}

// NewRand generates a pixel map, shuffling with rng when the method is [Random].
func NewRand(method Method, depth ColorDepth, rng *rand.Rand) *PixelMap {
	profile := Resolve(depth)
	return &PixelMap{
		depth:   depth,
		method:  method,
		profile: profile,
		img:     GenerateRand(method, profile, rng),
	}
}

func (m *PixelMap) Width() int {
	return int(m.profile.Width)
}

func (m *PixelMap) Height() int {
	return int(m.profile.Height)
}

func (m *PixelMap) Depth() ColorDepth {
	return m.depth
}

func (m *PixelMap) Method() Method {
	return m.method
}

func (m *PixelMap) Profile() Profile {
	return m.profile
}

// Pixels returns the buffer in row-major order, four bytes per pixel in R, G, B, A order.
//
// The slice aliases the map's storage and must not be modified.
func (m *PixelMap) Pixels() []byte {
	return m.img.Pix[:len(m.img.Pix):len(m.img.Pix)]
}

// At returns the pixel at column x and row y.
func (m *PixelMap) At(x, y int) pixel.Pixel {
	return m.img.PixelAt(x, y)
}

// Image returns a read-only view of the buffer.
func (m *PixelMap) Image() image.Image {
	return view{m.img}
}

func (m *PixelMap) String() string {
	return fmt.Sprintf("%s %s (%s)", m.depth, m.method, m.profile)
}

// view hides the mutating methods of the underlying image.
type view struct {
	img *pixel.RGBAImage
}

func (v view) ColorModel() color.Model { return v.img.ColorModel() }
func (v view) Bounds() image.Rectangle { return v.img.Bounds() }
func (v view) At(x, y int) color.Color { return v.img.At(x, y) }
