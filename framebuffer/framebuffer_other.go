//go:build !linux

package framebuffer

import (
	"github.com/BeatGlow/allcolors/pixel"
)

// FrameBuffer is unavailable on this platform.
type FrameBuffer struct {
	pixel.Image
}

func Open(_ string) (*FrameBuffer, error) {
	return nil, ErrNotSupported
}

func (fb *FrameBuffer) Layout() Layout { return Layout{} }
func (fb *FrameBuffer) String() string { return "framebuffer" }
func (fb *FrameBuffer) Close() error   { return ErrNotSupported }
func (fb *FrameBuffer) Refresh() error { return ErrNotSupported }
