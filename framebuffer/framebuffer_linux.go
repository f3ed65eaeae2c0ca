package framebuffer

import (
	"encoding/binary"
	"fmt"
	"image"
	"os"
	"syscall"
	"unsafe"

	"github.com/BeatGlow/allcolors/pixel"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

// FrameBuffer is a memory mapped Linux framebuffer device.
type FrameBuffer struct {
	pixel.Image
	name       string
	f          *os.File
	fd         uintptr
	mem        []byte
	layout     Layout
	info       linuxFrameBufferInfo
	screenInfo linuxVarScreenInfo
}

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (*FrameBuffer, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	fb := &FrameBuffer{
		name: name,
		f:    f,
		fd:   f.Fd(),
	}
	if err = fb.ioctl(fbioGetFScreenInfo, unsafe.Pointer(&fb.info)); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Request virtual screen info.
	if err = fb.ioctl(fbioGetVScreenInfo, unsafe.Pointer(&fb.screenInfo)); err != nil {
		_ = f.Close()
		return nil, err
	}
	si := &fb.screenInfo
	if fb.layout, err = parseLayout(si.BitsPerPixel,
		channel{si.Red.Offset, si.Red.Length},
		channel{si.Green.Offset, si.Green.Length},
		channel{si.Blue.Offset, si.Blue.Length},
	); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Map pixel buffer.
	if fb.mem, err = syscall.Mmap(int(fb.fd), 0, int(fb.info.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED); err != nil {
		_ = f.Close()
		return nil, err
	}

	if err = fb.setImage(); err != nil {
		_ = fb.Close()
		return nil, err
	}
	return fb, nil
}

func (fb *FrameBuffer) setImage() error {
	var (
		si     = &fb.screenInfo
		bytes  = int(si.BitsPerPixel+7) / 8
		stride = int(fb.info.LineLength)
		start  = int(si.Yoffset)*stride + int(si.Xoffset)*bytes
		end    = start + int(si.Yres)*stride
	)
	if end > len(fb.mem) {
		return fmt.Errorf("framebuffer: %dx%d visible area exceeds %d bytes of memory", si.Xres, si.Yres, len(fb.mem))
	}

	buf := pixel.Buffer{
		Rect:   image.Rect(0, 0, int(si.Xres), int(si.Yres)),
		Pix:    fb.mem[start:end],
		Stride: stride,
	}
	if fb.layout.BitsPerPixel == 32 {
		fb.Image = &pixel.RGBAImage{Buffer: buf, BGR: fb.layout.BGR}
	} else {
		fb.Image = &pixel.PackedImage{Buffer: buf, Format: fb.layout.Format, Order: binary.LittleEndian}
	}
	return nil
}

// Layout is the pixel layout detected on the device.
func (fb *FrameBuffer) Layout() Layout {
	return fb.layout
}

func (fb *FrameBuffer) String() string {
	return fmt.Sprintf("%s %s %s", fb.name, fb.Bounds().Size(), fb.layout)
}

// Close the framebuffer device
func (fb *FrameBuffer) Close() error {
	if err := syscall.Munmap(fb.mem); err != nil {
		return err
	}
	return fb.f.Close()
}

// Refresh redraws the display.
func (fb *FrameBuffer) Refresh() error {
	return nil
}

func (fb *FrameBuffer) ioctl(cmd uintptr, arg unsafe.Pointer) (err error) {
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fb.fd, cmd, uintptr(arg)); errno != 0 {
		return &os.SyscallError{
			Syscall: "SYS_IOCTL",
			Err:     errno,
		}
	}
	return nil
}

type linuxFrameBufferInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// linuxBitField for the color
type linuxBitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// linuxVarScreenInfo contains device independent changeable information about a frame buffer device and a specific video mode.
type linuxVarScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha linuxBitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}
