// Package term renders images to a color terminal.
//
// Every text cell shows two vertically stacked pixels: the upper one as the foreground color of
// an upper half block and the lower one as the background color.
package term

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/muesli/termenv"

	"github.com/BeatGlow/allcolors/pixel"
)

const upperHalfBlock = "▀"

// Surface is an in-memory image that is written to a terminal on [Surface.Refresh].
type Surface struct {
	*pixel.RGBAImage
	out *termenv.Output
	w   io.Writer
}

// New creates a surface of cols×rows text cells writing to w. The color profile is detected
// from w unless one is passed in opts.
func New(w io.Writer, cols, rows int, opts ...termenv.OutputOption) *Surface {
	return &Surface{
		RGBAImage: pixel.NewRGBAImage(cols, rows*2),
		out:       termenv.NewOutput(w, opts...),
		w:         w,
	}
}

// Profile is the color profile used for output.
func (s *Surface) Profile() termenv.Profile {
	return s.out.Profile
}

// Refresh writes the surface to the terminal, one text row per two pixel rows.
func (s *Surface) Refresh() error {
	bw := bufio.NewWriter(s.w)
	r := s.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y += 2 {
		for x := r.Min.X; x < r.Max.X; x++ {
			top := s.PixelAt(x, y)
			style := s.out.String(upperHalfBlock).Foreground(s.color(top))
			if y+1 < r.Max.Y {
				style = style.Background(s.color(s.PixelAt(x, y+1)))
			}
			if _, err := bw.WriteString(style.String()); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (s *Surface) color(p pixel.Pixel) termenv.Color {
	return s.out.Color(hex(p))
}

// Close is a no-op; the writer is owned by the caller.
func (s *Surface) Close() error {
	return nil
}

func (s *Surface) String() string {
	size := s.Bounds().Size()
	return fmt.Sprintf("terminal %dx%d cells %s", size.X, (size.Y+1)/2, profileName(s.out.Profile))
}

func hex(p pixel.Pixel) string {
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}

var _ image.Image = (*Surface)(nil)
