package allcolors

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/BeatGlow/allcolors/pixel"
)

func TestPixelMap(t *testing.T) {
	for _, d := range Depths[1:] {
		for _, method := range Methods {
			t.Run(d.String()+"/"+method.String(), func(it *testing.T) {
				m := NewRand(method, d, rand.New(rand.NewPCG(7, 7)))
				p := Resolve(d)

				if v := m.Width(); v != int(p.Width) {
					it.Errorf("expected width %d, got %d", p.Width, v)
				}
				if v := m.Height(); v != int(p.Height) {
					it.Errorf("expected height %d, got %d", p.Height, v)
				}
				if m.Depth() != d || m.Method() != method || m.Profile() != p {
					it.Errorf("unexpected parameters %s", m)
				}
				if v := len(m.Pixels()); v != m.Width()*m.Height()*4 {
					it.Errorf("expected %d bytes, got %d", m.Width()*m.Height()*4, v)
				}
				if v := m.Image().Bounds(); v != p.Bounds() {
					it.Errorf("expected image bounds %s, got %s", p.Bounds(), v)
				}
			})
		}
	}
}

func TestPixelMapPixelsLayout(t *testing.T) {
	m := New(None, Bit6)
	pix := m.Pixels()
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			i := (y*m.Width() + x) * 4
			want := pixel.Pixel{R: pix[i], G: pix[i+1], B: pix[i+2], A: pix[i+3]}
			if v := m.At(x, y); v != want {
				t.Fatalf("pixel (%d,%d) is %v, expected %v", x, y, v, want)
			}
			if v := m.Image().At(x, y); v != color.Color(want) {
				t.Fatalf("image pixel (%d,%d) is %v, expected %v", x, y, v, want)
			}
		}
	}
	if v := m.At(m.Width()-1, m.Height()-1); v != pixel.RGB(0xff, 0xff, 0xff) {
		t.Errorf("expected the last raster pixel to be white, got %v", v)
	}
}

func TestPixelMapOwnership(t *testing.T) {
	a := New(None, Bit9)
	before := append([]byte(nil), a.Pixels()...)

	b := New(None, Bit9)
	b.img.Pix[0] = 0x42

	if diff := cmp.Diff(before, a.Pixels()); diff != "" {
		t.Errorf("a later map changed an earlier one (-before +after):\n%s", diff)
	}
	if v := cap(a.Pixels()); v != len(a.Pixels()) {
		t.Errorf("expected view capacity to be clamped to %d, got %d", len(a.Pixels()), v)
	}
	if _, ok := a.Image().(*pixel.RGBAImage); ok {
		t.Error("expected image view to hide the mutable buffer")
	}
}

func TestPixelMapString(t *testing.T) {
	if v := New(SmoothPixels, Bit6).String(); v != "6-bit smooth (8x8/4)" {
		t.Errorf("unexpected string %q", v)
	}
}

func TestParseMethod(t *testing.T) {
	for _, method := range Methods {
		v, err := ParseMethod(method.String())
		if err != nil {
			t.Errorf("parse %q: %v", method, err)
			continue
		}
		if v != method {
			t.Errorf("parse %q: expected %s, got %s", method, method, v)
		}
	}
	if v, _ := ParseMethod("SmoothPixels"); v != SmoothPixels {
		t.Errorf("expected SmoothPixels, got %s", v)
	}
	if _, err := ParseMethod("spiral"); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("expected ErrUnknownMethod, got %v", err)
	}
}
