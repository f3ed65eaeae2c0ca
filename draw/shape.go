package draw

import (
	"image"
	"image/color"
)

// HorizontalLine draws a line between (x,y) and (x+w,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Frame draws a one pixel outline just outside rect.
func Frame(dst Image, rect image.Rectangle, c color.Color) {
	var (
		r = rect.Inset(-1)
		w = r.Dx()
		h = r.Dy()
	)
	HorizontalLine(dst, r.Min.X, r.Min.Y, w, c)
	HorizontalLine(dst, r.Min.X, r.Max.Y-1, w, c)
	VerticalLine(dst, r.Min.X, r.Min.Y, h, c)
	VerticalLine(dst, r.Max.X-1, r.Min.Y, h, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	Draw(dst, rect.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, Src)
}
