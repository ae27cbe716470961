// Package canvas draws into a monochrome page-packed framebuffer.
//
// A Canvas owns everything a single display needs: the pixel buffer, the
// optional dirty-region tracker, the text cursor, the text style and the bound
// font. It is not safe for concurrent use; callers sharing a Canvas between
// goroutines must serialize access themselves.
//
// Drawing never fails. Coordinates outside the buffer are clipped, degenerate
// geometry draws what it can and unknown characters are skipped.
package canvas

import (
	"image"
	"image/color"

	"github.com/flavioheleno/ssd1306/bitfont"
	"github.com/flavioheleno/ssd1306/image1bit"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Color selects how a pixel write affects the buffer.
type Color uint8

const (
	Off    Color = iota // Clear the pixel
	On                  // Set the pixel
	Invert              // Toggle the pixel; any larger value behaves the same
)

func (c Color) String() string {
	switch c {
	case Off:
		return "Off"
	case On:
		return "On"
	default:
		return "Invert"
	}
}

// Option configures a Canvas during creation.
type Option func(*Canvas)

// WithDirtyTracking enables the dirty-region tracker from the start.
func WithDirtyTracking() Option {
	return func(c *Canvas) {
		c.track = true
	}
}

// WithEncoding sets the code page WriteString uses to turn text into
// character codes. The default is Windows-1252, which is a superset of ASCII.
func WithEncoding(e encoding.Encoding) Option {
	return func(c *Canvas) {
		c.enc = e
	}
}

// WithFont binds f at creation time.
func WithFont(f *bitfont.Font) Option {
	return func(c *Canvas) {
		c.font = f
	}
}

// Canvas is a monochrome drawing surface of fixed size.
type Canvas struct {
	img  *image1bit.VerticalLSB
	w, h int

	// Dirty-region tracking
	track   bool
	pending bool
	dirty   Region

	// Text state
	font   *bitfont.Font
	cursor image.Point
	style  Style
	enc    encoding.Encoding
}

// New returns a blank w×h canvas. Negative sizes are treated as zero.
func New(w, h int, opts ...Option) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		img:   image1bit.NewVerticalLSB(image.Rect(0, 0, w, h)),
		w:     w,
		h:     h,
		style: DefaultStyle(),
		enc:   charmap.Windows1252,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.h }

// Image returns the backing buffer. Writes made directly to it bypass dirty
// tracking.
func (c *Canvas) Image() *image1bit.VerticalLSB { return c.img }

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model { return image1bit.BitModel }

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Rect }

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color { return c.img.BitAt(x, y) }

// Set implements draw.Image. The color is reduced to On or Off; the write is
// recorded by the dirty tracker like any other.
func (c *Canvas) Set(x, y int, col color.Color) {
	if image1bit.BitModel.Convert(col).(image1bit.Bit) {
		c.SetPixel(x, y, On)
	} else {
		c.SetPixel(x, y, Off)
	}
}

// SetPixel writes one pixel. Out of range coordinates are ignored.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	if c.track {
		c.mark(x, y)
	}
	switch col {
	case Off:
		c.img.SetBit(x, y, image1bit.Off)
	case On:
		c.img.SetBit(x, y, image1bit.On)
	default:
		c.img.FlipBit(x, y)
	}
}

// Pixel reports whether the pixel at (x, y) is lit. Out of range reads false.
func (c *Canvas) Pixel(x, y int) bool {
	return bool(c.img.BitAt(x, y))
}

// Fill applies col to every pixel at once.
func (c *Canvas) Fill(col Color) {
	pix := c.img.Pix
	switch col {
	case Off:
		for i := range pix {
			pix[i] = 0x00
		}
	case On:
		for i := range pix {
			pix[i] = 0xFF
		}
	default:
		for i := range pix {
			pix[i] = ^pix[i]
		}
	}
	if c.track && c.w > 0 && c.h > 0 {
		c.dirty = Region{MinX: 0, MinY: 0, MaxX: c.w - 1, MaxY: c.h - 1}
		c.pending = true
	}
}

// Clear turns every pixel off.
func (c *Canvas) Clear() {
	c.Fill(Off)
}
