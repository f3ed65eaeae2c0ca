package allcolors

import (
	"fmt"
	"strings"
)

// Method is the order in which pixels are placed in the buffer.
type Method uint8

// Supported generation methods.
const (
	None         Method = iota // Raster order, red outer and blue inner
	Random                     // Uniform random permutation of raster order
	SmoothPixels               // Blue held for runs tied to the buffer width
)

// Methods lists all generation methods in declaration order.
var Methods = []Method{None, Random, SmoothPixels}

var methodNames = [...]string{
	None:         "none",
	Random:       "random",
	SmoothPixels: "smooth",
}

func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", uint8(m))
}

// ParseMethod parses a method name as returned by [Method.String].
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "raster", "":
		return None, nil
	case "random", "shuffle":
		return Random, nil
	case "smooth", "smoothpixels", "smooth-pixels":
		return SmoothPixels, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMethod, s)
}
