package draw

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// CaptionSize is the font size, in points at 72 DPI, used by [Caption].
const CaptionSize = 12

var (
	captionFont     *truetype.Font
	captionFontErr  error
	captionFontOnce sync.Once
)

func loadCaptionFont() (*truetype.Font, error) {
	captionFontOnce.Do(func() {
		captionFont, captionFontErr = freetype.ParseFont(goregular.TTF)
	})
	return captionFont, captionFontErr
}

// CaptionHeight is the number of pixel rows a caption line occupies.
func CaptionHeight() int {
	return CaptionSize + CaptionSize/2
}

// Caption draws a single line of text with its top-left corner at pt, on a filled background
// that spans the text. It returns the rectangle covered by the background.
func Caption(dst Image, pt image.Point, text string, fg, bg color.Color) (image.Rectangle, error) {
	f, err := loadCaptionFont()
	if err != nil {
		return image.Rectangle{}, err
	}

	face := truetype.NewFace(f, &truetype.Options{Size: CaptionSize, DPI: 72, Hinting: font.HintingFull})
	defer face.Close()

	var (
		width = font.MeasureString(face, text).Ceil()
		pad   = CaptionSize / 4
		box   = image.Rect(pt.X, pt.Y, pt.X+width+2*pad, pt.Y+CaptionHeight())
	)
	Box(dst, box, bg)

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(CaptionSize)
	c.SetHinting(font.HintingFull)
	c.SetClip(box.Intersect(dst.Bounds()))
	c.SetDst(dst)
	c.SetSrc(image.NewUniform(fg))
	if _, err = c.DrawString(text, freetype.Pt(pt.X+pad, pt.Y+CaptionSize)); err != nil {
		return box, err
	}
	return box, nil
}
