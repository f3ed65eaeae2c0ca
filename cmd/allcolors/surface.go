package main

import (
	"image"
	"image/color"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/BeatGlow/allcolors"
	"github.com/BeatGlow/allcolors/draw"
	"github.com/BeatGlow/allcolors/framebuffer"
	"github.com/BeatGlow/allcolors/pixel"
	allterm "github.com/BeatGlow/allcolors/term"
)

// Default terminal size when it cannot be detected.
const (
	defaultCols = 80
	defaultRows = 24
)

var (
	frameColor   = pixel.RGB(0x80, 0x80, 0x80)
	captionColor = color.White
	captionBack  = color.Black
)

// surface is a drawable output.
type surface interface {
	pixel.Image
	Refresh() error
	Close() error
}

func openSurface(opts *options, stdout io.Writer) (surface, error) {
	if opts.output == "fb" {
		return framebuffer.Open(opts.device)
	}

	cols, rows := opts.cols, opts.rows
	if cols <= 0 || rows <= 0 {
		w, h := defaultCols, defaultRows
		if f, ok := stdout.(*os.File); ok {
			if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
				w, h = tw, th
			}
		}
		if cols <= 0 {
			cols = w
		}
		if rows <= 0 {
			// Leave room for the caption and the shell prompt.
			rows = max(h-2, 1)
		}
	}

	var termOpts []termenv.OutputOption
	if f, ok := stdout.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		termOpts = append(termOpts, termenv.WithProfile(termenv.TrueColor))
	}
	return &termSurface{
		Surface: allterm.New(stdout, cols, rows, termOpts...),
		w:       stdout,
	}, nil
}

// termSurface prints the caption as a line of text instead of rasterizing it.
type termSurface struct {
	*allterm.Surface
	w       io.Writer
	caption string
}

func (s *termSurface) Refresh() error {
	if err := s.Surface.Refresh(); err != nil {
		return err
	}
	if s.caption == "" {
		return nil
	}
	_, err := io.WriteString(s.w, termenv.String(s.caption).Bold().String()+"\n")
	return err
}

// present clears s, draws m scaled to fit, outlines it and adds a caption. It returns the
// rectangle the map occupies on the surface.
func present(s surface, m *allcolors.PixelMap, caption bool) (image.Rectangle, error) {
	s.Clear()

	var (
		bounds = s.Bounds()
		label  = m.String()
	)
	ts, isTerm := s.(*termSurface)
	if caption && !isTerm {
		bounds.Min.Y += draw.CaptionHeight() + 2
	}

	// Leave a pixel for the frame when it fits without shrinking the map.
	inner := bounds.Inset(1)
	size := image.Pt(m.Width(), m.Height())
	if r := draw.FitRect(inner, size); r.Dx() < draw.FitRect(bounds, size).Dx() {
		inner = bounds
	}

	r := draw.Fit(subImage{s, inner}, m.Image())
	if inner != bounds {
		draw.Frame(s, r, frameColor)
	}

	if caption {
		if isTerm {
			ts.caption = label
		} else if _, err := draw.Caption(s, s.Bounds().Min, label, captionColor, captionBack); err != nil {
			return r, err
		}
	}
	return r, s.Refresh()
}

// subImage restricts the bounds of a drawable image.
type subImage struct {
	draw.Image
	r image.Rectangle
}

func (s subImage) Bounds() image.Rectangle {
	return s.r.Intersect(s.Image.Bounds())
}
