package allcolors

import (
	"fmt"
	"math/rand/v2"

	"github.com/BeatGlow/allcolors/pixel"
)

// Quantize maps a raw channel index in [0, steps] to an 8-bit channel value, floor(i*255/steps).
func Quantize(i, steps uint8) uint8 {
	return uint8(uint(i) * 255 / uint(steps))
}

// Generate fills a buffer for profile in the order selected by method. The [Random] method draws
// from a source created for this call only.
func Generate(method Method, profile Profile) *pixel.RGBAImage {
	return GenerateRand(method, profile, nil)
}

// GenerateRand is like [Generate] but shuffles with rng. A nil rng behaves like [Generate].
func GenerateRand(method Method, profile Profile, rng *rand.Rand) *pixel.RGBAImage {
	w := newWriter(profile)
	switch method {
	case None:
		defaultPixels(w, profile)
	case Random:
		if rng == nil {
			rng = newRand()
		}
		randomPixels(w, profile, rng)
	case SmoothPixels:
		smoothPixels(w, profile)
	default:
		panic(fmt.Sprintf("allcolors: invalid generation method %d", uint8(method)))
	}
	return w.done()
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// writer appends quantized pixels to a buffer sized for its profile.
type writer struct {
	img   *pixel.RGBAImage
	steps uint8
	n     int
}

func newWriter(profile Profile) *writer {
	return &writer{
		img:   pixel.NewRGBAImage(int(profile.Width), int(profile.Height)),
		steps: profile.Steps,
	}
}

// put appends the pixel for raw channel indices r, g and b.
func (w *writer) put(r, g, b uint8) {
	s := w.img.Pix[w.n : w.n+4 : w.n+4]
	s[0] = Quantize(r, w.steps)
	s[1] = Quantize(g, w.steps)
	s[2] = Quantize(b, w.steps)
	s[3] = pixel.Opaque
	w.n += 4
}

func (w *writer) done() *pixel.RGBAImage {
	if w.n != len(w.img.Pix) {
		panic(fmt.Sprintf("allcolors: wrote %d of %d pixels", w.n/4, len(w.img.Pix)/4))
	}
	return w.img
}

// defaultPixels enumerates every raw triple, red outermost and blue innermost.
func defaultPixels(w *writer, profile Profile) {
	steps := int(profile.Steps)
	for r := 0; r <= steps; r++ {
		for g := 0; g <= steps; g++ {
			for b := 0; b <= steps; b++ {
				w.put(uint8(r), uint8(g), uint8(b))
			}
		}
	}
}

// randomPixels shuffles the raster order with Fisher-Yates.
func randomPixels(w *writer, profile Profile, rng *rand.Rand) {
	defaultPixels(w, profile)
	pix := w.img.Pix
	rng.Shuffle(len(pix)/4, func(i, j int) {
		i, j = i*4, j*4
		pix[i], pix[j] = pix[j], pix[i]
		pix[i+1], pix[j+1] = pix[j+1], pix[i+1]
		pix[i+2], pix[j+2] = pix[j+2], pix[i+2]
	})
}

// smoothPixels holds the blue index for runs of width/(steps+1) pixels. The run counter and the
// blue index carry across (r, g) rows, so the bands line up with the buffer width rather than
// with the enumeration.
func smoothPixels(w *writer, profile Profile) {
	var (
		steps    = int(profile.Steps)
		blueStep = int(profile.Width) / (steps + 1)
		count    int
		pb       int
	)
	for r := 0; r <= steps; r++ {
		for g := 0; g <= steps; g++ {
			for range steps + 1 {
				w.put(uint8(r), uint8(g), uint8(pb))
				if blueStep == 0 {
					continue
				}
				if count++; count >= blueStep {
					count = 0
					if pb == steps {
						pb = 0
					} else {
						pb++
					}
				}
			}
		}
	}
}
