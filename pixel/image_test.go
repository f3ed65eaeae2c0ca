package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestRGBAImage(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewRGBAImage(size.X, size.Y)
	}, PixelModel)
}

func TestBGRAImage(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		i := NewRGBAImage(size.X, size.Y)
		i.BGR = true
		return i
	}, PixelModel)
}

func TestRGB555Image(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewPackedImage(size.X, size.Y, RGB555)
	}, RGB555Model)
}

func TestBGR555Image(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewPackedImage(size.X, size.Y, BGR555)
	}, BGR555Model)
}

func TestRGB565Image(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewPackedImage(size.X, size.Y, RGB565)
	}, RGB565Model)
}

func TestBGR565LittleEndianImage(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		i := NewPackedImage(size.X, size.Y, BGR565)
		i.Order = binary.LittleEndian
		return i
	}, BGR565Model)
}

func TestRGBAImageLayout(t *testing.T) {
	i := NewRGBAImage(3, 2)
	i.SetPixel(2, 1, Pixel{R: 1, G: 2, B: 3, A: 4})
	if v := i.Pix[1*12+2*4:][:4]; v[0] != 1 || v[1] != 2 || v[2] != 3 || v[3] != 4 {
		t.Errorf("expected R,G,B,A bytes at row 1 col 2, got %v", v)
	}

	i.BGR = true
	i.SetPixel(0, 0, Pixel{R: 1, G: 2, B: 3, A: 4})
	if v := i.Pix[:4]; v[0] != 3 || v[1] != 2 || v[2] != 1 || v[3] != 4 {
		t.Errorf("expected B,G,R,A bytes, got %v", v)
	}

	i.Fill(RGB(9, 9, 9))
	if !i.Opaque() {
		t.Error("expected opaque fill")
	}
	i.SetPixel(1, 1, Pixel{})
	if i.Opaque() {
		t.Error("expected transparent pixel to be detected")
	}
}

func testImage(t *testing.T, f func(image.Point) Image, model color.Model) {
	t.Helper()
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(3, 5),
		image.Pt(64, 64),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != model {
				it.Errorf("expected color model %T, got %T", model, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("in-bounds-matching-model", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := model.Convert(testRandomColor())
						i.Set(x, y, c)
						if i.At(x, y) != c {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						if r, g, b, _ := i.At(x, y).RGBA(); r|g|b != 0 {
							itt.Fatalf("pixel (%d,%d) is not black", x, y)
						}
					}
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
