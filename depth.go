// Package allcolors builds pixel maps that contain every color of a
// quantized RGB color space exactly once.
//
// A [ColorDepth] selects how many steps each channel has, [Resolve] turns
// it into a [Profile] describing the buffer geometry, and [Generate] fills
// a buffer in one of the [Method] orders. [PixelMap] bundles the three for
// hosts that only want to draw the result.
package allcolors

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// Errors
var (
	ErrUnknownDepth  = errors.New("allcolors: unknown color depth")
	ErrUnknownMethod = errors.New("allcolors: unknown generation method")
)

// ColorDepth selects a quantization tier.
type ColorDepth uint8

// Supported color depths, finest first.
const (
	Bit24 ColorDepth = iota // 256 steps per channel
	Bit21                   // 128 steps per channel
	Bit18                   // 64 steps per channel
	Bit15                   // 32 steps per channel
	Bit12                   // 16 steps per channel
	Bit9                    // 8 steps per channel
	Bit6                    // 4 steps per channel
)

// Depths lists all color depths in declaration order.
var Depths = []ColorDepth{Bit24, Bit21, Bit18, Bit15, Bit12, Bit9, Bit6}

// Bits is the total number of bits across the three channels.
func (d ColorDepth) Bits() int {
	return 24 - 3*int(d)
}

func (d ColorDepth) String() string {
	if d > Bit6 {
		return fmt.Sprintf("ColorDepth(%d)", uint8(d))
	}
	return fmt.Sprintf("%d-bit", d.Bits())
}

// ParseColorDepth parses "24", "24-bit", "24bit" or "bit24".
func ParseColorDepth(s string) (ColorDepth, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "bit")
	v = strings.TrimSuffix(v, "bit")
	v = strings.TrimSuffix(v, "-")
	for _, d := range Depths {
		if v == fmt.Sprint(d.Bits()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownDepth, s)
}

// Profile describes the buffer geometry and channel quantization of a
// color depth.
type Profile struct {
	// Width of the buffer in pixels.
	Width uint16

	// Height of the buffer in pixels.
	Height uint16

	// Steps is the highest raw channel index; each channel has Steps+1 values.
	Steps uint8

	// Bitmask masks a raw index triple packed as 0x00RRGGBB.
	Bitmask uint32
}

// MaxColors is the number of pixels in the buffer.
func (p Profile) MaxColors() int {
	return int(p.Width) * int(p.Height)
}

// Colors is the number of distinct raw index triples, (Steps+1)^3.
func (p Profile) Colors() int {
	n := int(p.Steps) + 1
	return n * n * n
}

// Bounds is the buffer bounding box.
func (p Profile) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(p.Width), int(p.Height))
}

// Pack packs raw channel indices into a 0x00RRGGBB value under the bitmask.
func (p Profile) Pack(r, g, b uint8) uint32 {
	return (uint32(r)<<16 | uint32(g)<<8 | uint32(b)) & p.Bitmask
}

func (p Profile) String() string {
	return fmt.Sprintf("%dx%d/%d", p.Width, p.Height, int(p.Steps)+1)
}

func makeProfile(w, h uint16, steps uint8) Profile {
	s := uint32(steps)
	return Profile{
		Width:   w,
		Height:  h,
		Steps:   steps,
		Bitmask: s<<16 | s<<8 | s,
	}
}

var profiles = [...]Profile{
	Bit24: makeProfile(4096, 4096, 255),
	Bit21: makeProfile(2048, 1024, 127),
	Bit18: makeProfile(512, 512, 63),
	Bit15: makeProfile(256, 128, 31),
	Bit12: makeProfile(64, 64, 15),
	Bit9:  makeProfile(32, 16, 7),
	Bit6:  makeProfile(8, 8, 3),
}

func init() {
	for i, p := range profiles {
		if err := p.check(); err != nil {
			panic(fmt.Sprintf("allcolors: %s: %v", ColorDepth(i), err))
		}
	}
}

// check verifies that the enumeration exactly fills the buffer and that
// the bitmask can represent every raw index.
func (p Profile) check() error {
	if p.Steps == 0 {
		return errors.New("zero steps")
	}
	if p.Colors() != p.MaxColors() {
		return fmt.Errorf("%d colors do not fill %dx%d buffer", p.Colors(), p.Width, p.Height)
	}
	if s := uint32(p.Steps); s&(s+1) != 0 {
		return fmt.Errorf("steps %d is not a bit mask", s)
	}
	return nil
}

// Resolve returns the profile for a color depth.
func Resolve(depth ColorDepth) Profile {
	if int(depth) >= len(profiles) {
		panic(fmt.Sprintf("allcolors: invalid color depth %d", uint8(depth)))
	}
	return profiles[depth]
}
