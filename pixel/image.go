package pixel

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/BeatGlow/allcolors/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by all image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	clear(p.Pix)
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// fill repeats one encoded pixel across the whole buffer.
func (p *Buffer) fill(value []byte) {
	if len(p.Pix) == 0 {
		return
	}
	n := copy(p.Pix, value)
	for n < len(p.Pix) {
		n += copy(p.Pix[n:], p.Pix[:n])
	}
}

// RGBAImage is a 32-bits per pixel image with one byte per channel.
//
// Pixels are stored row-major, index = y*Stride + x*4, in R, G, B, A byte order, or
// B, G, R, A when BGR is set.
type RGBAImage struct {
	Buffer
	BGR bool
}

func NewRGBAImage(w, h int) *RGBAImage {
	return &RGBAImage{
		Buffer: makeBuffer(w, h, w*4, w*4*h),
	}
}

func (p *RGBAImage) ColorModel() color.Model {
	return PixelModel
}

// PixOffset returns the index of the first element of Pix that corresponds to the pixel at (x, y).
func (p *RGBAImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*4
}

func (p *RGBAImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return p.PixelAt(x, y)
}

// PixelAt returns the pixel at (x, y), which must be inside the bounds.
func (p *RGBAImage) PixelAt(x, y int) Pixel {
	s := p.Pix[p.PixOffset(x, y):]
	if p.BGR {
		return Pixel{R: s[2], G: s[1], B: s[0], A: s[3]}
	}
	return Pixel{R: s[0], G: s[1], B: s[2], A: s[3]}
}

func (p *RGBAImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.SetPixel(x, y, pixelModel(c).(Pixel))
}

// SetPixel stores a pixel at (x, y) without color model conversion.
func (p *RGBAImage) SetPixel(x, y int, c Pixel) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.encode(p.Pix[p.PixOffset(x, y):], c)
}

func (p *RGBAImage) encode(s []byte, c Pixel) {
	if p.BGR {
		s[0], s[1], s[2], s[3] = c.B, c.G, c.R, c.A
	} else {
		s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
	}
}

func (p *RGBAImage) Fill(c color.Color) {
	value := make([]byte, 4)
	p.encode(value, pixelModel(c).(Pixel))
	p.fill(value)
}

// Opaque reports whether every pixel has full alpha.
func (p *RGBAImage) Opaque() bool {
	for i := 3; i < len(p.Pix); i += 4 {
		if p.Pix[i] != Opaque {
			return false
		}
	}
	return true
}

// PackedImage is a 15- or 16-bits per pixel image in one of the packed [Format] layouts.
type PackedImage struct {
	Buffer
	Format Format
	Order  binary.ByteOrder
}

func NewPackedImage(w, h int, f Format) *PackedImage {
	return &PackedImage{
		Buffer: makeBuffer(w, h, w*2, w*2*h),
		Format: f,
		Order:  binary.BigEndian,
	}
}

func (p *PackedImage) ColorModel() color.Model {
	return p.Format.Model()
}

func (p *PackedImage) offset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

func (p *PackedImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	v := p.Order.Uint16(p.Pix[p.offset(x, y):])
	if p.Format == RGB555 || p.Format == BGR555 {
		v &= 0x7fff
	}
	return Packed{V: v, Format: p.Format}
}

func (p *PackedImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := packedModel(p.Format, c).(Packed).V
	p.Order.PutUint16(p.Pix[p.offset(x, y):], v)
}

func (p *PackedImage) Fill(c color.Color) {
	value := make([]byte, 2)
	p.Order.PutUint16(value, packedModel(p.Format, c).(Packed).V)
	p.fill(value)
}

// Interface checks.
var (
	_ Image = (*RGBAImage)(nil)
	_ Image = (*PackedImage)(nil)
)
