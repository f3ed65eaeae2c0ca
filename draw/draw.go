// Package draw provides compositing helpers for presenting color maps on a surface.
package draw

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Drawer is an alias for [image/draw.Drawer].
type Drawer = draw.Drawer

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// FitRect returns the largest rectangle inside bounds, centered, that holds a copy of size
// scaled by a whole factor. Sources larger than bounds are shrunk by a whole divisor instead, so
// every destination pixel maps onto exactly one source pixel.
func FitRect(bounds image.Rectangle, size image.Point) image.Rectangle {
	if size.X <= 0 || size.Y <= 0 || bounds.Empty() {
		return image.Rectangle{}
	}

	var (
		avail = bounds.Size()
		fit   image.Point
	)
	if scale := min(avail.X/size.X, avail.Y/size.Y); scale >= 1 {
		fit = size.Mul(scale)
	} else {
		div := max((size.X+avail.X-1)/avail.X, (size.Y+avail.Y-1)/avail.Y)
		fit = size.Div(div)
	}

	origin := bounds.Min.Add(avail.Sub(fit).Div(2))
	return image.Rectangle{Min: origin, Max: origin.Add(fit)}
}

// Fit scales src into the centered rectangle returned by [FitRect] using nearest-neighbor
// sampling, so colors are never blended. It returns the rectangle that was drawn.
func Fit(dst Image, src image.Image) image.Rectangle {
	sr := src.Bounds()
	r := FitRect(dst.Bounds(), sr.Size())
	if r.Empty() {
		return r
	}
	xdraw.NearestNeighbor.Scale(dst, r, src, sr, xdraw.Src, nil)
	return r
}
