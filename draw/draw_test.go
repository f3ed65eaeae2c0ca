package draw

import (
	"image"
	"image/color"
	"testing"
)

func TestFitRect(t *testing.T) {
	testCases := []struct {
		name   string
		bounds image.Rectangle
		size   image.Point
		want   image.Rectangle
	}{
		{"scale up", image.Rect(0, 0, 100, 50), image.Pt(8, 8), image.Rect(26, 1, 74, 49)},
		{"shrink", image.Rect(0, 0, 100, 50), image.Pt(4096, 4096), image.Rect(25, 0, 74, 49)},
		{"exact", image.Rect(0, 0, 64, 64), image.Pt(64, 64), image.Rect(0, 0, 64, 64)},
		{"offset", image.Rect(10, 10, 20, 20), image.Pt(5, 5), image.Rect(10, 10, 20, 20)},
		{"wide", image.Rect(0, 0, 80, 46), image.Pt(2048, 1024), image.Rect(1, 3, 79, 42)},
		{"empty size", image.Rect(0, 0, 10, 10), image.Point{}, image.Rectangle{}},
		{"empty bounds", image.Rectangle{}, image.Pt(8, 8), image.Rectangle{}},
	}
	for _, test := range testCases {
		t.Run(test.name, func(it *testing.T) {
			if v := FitRect(test.bounds, test.size); v != test.want {
				it.Errorf("expected %s, got %s", test.want, v)
			}
		})
	}
}

func TestFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	colors := []color.RGBA{
		{R: 0xff, A: 0xff},
		{G: 0xff, A: 0xff},
		{B: 0xff, A: 0xff},
		{R: 0x12, G: 0x34, B: 0x56, A: 0xff},
	}
	for i, c := range colors {
		src.SetRGBA(i%2, i/2, c)
	}

	dst := image.NewRGBA(image.Rect(0, 0, 10, 6))
	r := Fit(dst, src)
	if want := image.Rect(2, 0, 8, 6); r != want {
		t.Fatalf("expected %s, got %s", want, r)
	}

	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			var want color.RGBA
			if (image.Point{X: x, Y: y}).In(r) {
				want = colors[(x-2)/3+(y/3)*2]
			}
			if v := dst.RGBAAt(x, y); v != want {
				t.Fatalf("pixel (%d,%d) is %v, expected %v", x, y, v, want)
			}
		}
	}
}

func TestFrame(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 6, 6))
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Frame(dst, image.Rect(2, 2, 4, 4), white)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			edge := (x == 1 || x == 4) && y >= 1 && y <= 4 || (y == 1 || y == 4) && x >= 1 && x <= 4
			if v := dst.RGBAAt(x, y) == white; v != edge {
				t.Errorf("pixel (%d,%d): expected frame %t, got %t", x, y, edge, v)
			}
		}
	}
}

func TestCaption(t *testing.T) {
	var (
		dst   = image.NewRGBA(image.Rect(0, 0, 200, 40))
		white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		black = color.RGBA{A: 0xff}
	)
	r, err := Caption(dst, image.Pt(4, 4), "24-bit random", white, black)
	if err != nil {
		t.Fatal(err)
	}
	if r.Min != image.Pt(4, 4) || r.Dy() != CaptionHeight() || r.Dx() <= CaptionSize {
		t.Fatalf("unexpected caption rectangle %s", r)
	}

	var lit int
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := dst.RGBAAt(x, y)
			if c.A != 0xff {
				t.Fatalf("pixel (%d,%d) inside the caption is not opaque", x, y)
			}
			if c.R > 0x80 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("expected caption text to be drawn")
	}
	if v := dst.RGBAAt(0, 0); v.A != 0 {
		t.Errorf("expected pixels outside the caption to be untouched, got %v", v)
	}
}
