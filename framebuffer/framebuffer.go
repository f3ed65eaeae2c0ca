// Package framebuffer provides access to the operating system's native framebuffer
//
// This requires framebuffer device support in the operating system. The framebuffer
// can be opened with the [Open] call and is drawn on like any other [pixel.Image];
// writes land in the device memory directly, so [FrameBuffer.Refresh] has nothing
// left to flush on most devices.
package framebuffer

import (
	"errors"

	"github.com/BeatGlow/allcolors/pixel"
)

// Errors
var (
	ErrNotSupported     = errors.New("framebuffer: not supported")
	ErrUnsupportedModel = errors.New("framebuffer: unsupported color model")
)

// Layout describes how pixels are stored in framebuffer memory.
type Layout struct {
	// BitsPerPixel is 15, 16 or 32.
	BitsPerPixel int

	// Format is the packed layout for 15 and 16 bit framebuffers.
	Format pixel.Format

	// BGR is set for 32 bit framebuffers that store blue in the lowest byte.
	BGR bool
}

func (l Layout) String() string {
	switch {
	case l.BitsPerPixel == 32 && l.BGR:
		return "BGRA8888"
	case l.BitsPerPixel == 32:
		return "RGBA8888"
	default:
		return l.Format.String()
	}
}

// channel is the position of one color channel within a pixel, as reported by the device.
type channel struct {
	Offset, Length uint32
}

// parseLayout matches the device channel positions against the supported layouts. Offsets
// count from the least significant bit of the little-endian pixel value.
func parseLayout(bpp uint32, red, green, blue channel) (Layout, error) {
	is := func(r, g, b channel) bool {
		return red == r && green == g && blue == b
	}

	switch bpp {
	case 15:
		switch {
		case is(channel{10, 5}, channel{5, 5}, channel{0, 5}):
			return Layout{BitsPerPixel: 15, Format: pixel.RGB555}, nil
		case is(channel{0, 5}, channel{5, 5}, channel{10, 5}):
			return Layout{BitsPerPixel: 15, Format: pixel.BGR555}, nil
		}

	case 16:
		switch {
		case is(channel{11, 5}, channel{5, 6}, channel{0, 5}):
			return Layout{BitsPerPixel: 16, Format: pixel.RGB565}, nil
		case is(channel{0, 5}, channel{5, 6}, channel{11, 5}):
			return Layout{BitsPerPixel: 16, Format: pixel.BGR565}, nil
		}

	case 32:
		switch {
		case is(channel{0, 8}, channel{8, 8}, channel{16, 8}):
			return Layout{BitsPerPixel: 32}, nil
		case is(channel{16, 8}, channel{8, 8}, channel{0, 8}):
			return Layout{BitsPerPixel: 32, BGR: true}, nil
		}
	}

	return Layout{}, ErrUnsupportedModel
}
