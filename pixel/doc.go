// Package pixel implements the pixel types and image buffers used by color maps and their surfaces.
//
// This module provides a fully opaque RGBA pixel, a byte-addressed RGBA buffer and packed 15/16-bit
// formats as found on framebuffer devices, all compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces.
package pixel
