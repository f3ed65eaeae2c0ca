package pixel

import "image/color"

// Models for the standard color types.
var (
	PixelModel  color.Model = color.ModelFunc(pixelModel)
	RGB555Model color.Model = color.ModelFunc(rgb555Model)
	BGR555Model color.Model = color.ModelFunc(bgr555Model)
	RGB565Model color.Model = color.ModelFunc(rgb565Model)
	BGR565Model color.Model = color.ModelFunc(bgr565Model)
)

// Opaque is the alpha value of every generated pixel.
const Opaque = 0xff

// Pixel is a non-premultiplied 8-bit RGBA color.
type Pixel struct {
	R, G, B, A uint8
}

// RGB returns an opaque pixel.
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: Opaque}
}

func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

func pixelModel(c color.Color) color.Color {
	if _, ok := c.(Pixel); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Format is a packed 16-bit pixel layout.
type Format uint8

// Supported packed formats. The first channel named occupies the most significant bits.
const (
	RGB555 Format = iota // 1 ignored, 5 red, 5 green, 5 blue
	BGR555               // 1 ignored, 5 blue, 5 green, 5 red
	RGB565               // 5 red, 6 green, 5 blue
	BGR565               // 5 blue, 6 green, 5 red
)

func (f Format) String() string {
	switch f {
	case RGB555:
		return "RGB555"
	case BGR555:
		return "BGR555"
	case RGB565:
		return "RGB565"
	case BGR565:
		return "BGR565"
	default:
		return "invalid"
	}
}

// Model returns the color model for the format.
func (f Format) Model() color.Model {
	switch f {
	case BGR555:
		return BGR555Model
	case RGB565:
		return RGB565Model
	case BGR565:
		return BGR565Model
	default:
		return RGB555Model
	}
}

// green channel width; red and blue are always 5 bits.
func (f Format) greenBits() uint {
	if f == RGB565 || f == BGR565 {
		return 6
	}
	return 5
}

// swapped reports whether blue occupies the most significant bits.
func (f Format) swapped() bool {
	return f == BGR555 || f == BGR565
}

func (f Format) pack(r, g, b uint32) uint16 {
	gb := f.greenBits()
	hi, lo := r, b
	if f.swapped() {
		hi, lo = b, r
	}
	hi >>= 11
	g >>= 16 - gb
	lo >>= 11
	return uint16(hi<<(5+gb) | g<<5 | lo)
}

func (f Format) unpack(v uint16) (r, g, b uint32) {
	gb := f.greenBits()
	hi := expand(uint32(v)>>(5+gb)&0x1f, 5)
	g = expand(uint32(v)>>5&(1<<gb-1), gb)
	lo := expand(uint32(v)&0x1f, 5)
	if f.swapped() {
		return lo, g, hi
	}
	return hi, g, lo
}

// expand scales an n-bit value to 16 bits by replicating its high bits.
func expand(v uint32, n uint) uint32 {
	v = v<<(8-n) | v>>(2*n-8)
	return v | v<<8
}

// Packed represents a 15- or 16-bit packed RGB color.
type Packed struct {
	V      uint16
	Format Format
}

func (c Packed) RGBA() (r, g, b, a uint32) {
	r, g, b = c.Format.unpack(c.V)
	return r, g, b, 0xffff
}

func packedModel(f Format, c color.Color) color.Color {
	if p, ok := c.(Packed); ok && p.Format == f {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Packed{V: f.pack(r, g, b), Format: f}
}

func rgb555Model(c color.Color) color.Color { return packedModel(RGB555, c) }
func bgr555Model(c color.Color) color.Color { return packedModel(BGR555, c) }
func rgb565Model(c color.Color) color.Color { return packedModel(RGB565, c) }
func bgr565Model(c color.Color) color.Color { return packedModel(BGR565, c) }
