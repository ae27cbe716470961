package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/flavioheleno/ssd1306/image1bit"
	"github.com/lucasb-eyer/go-colorful"
)

// palette maps panel pixels to screen colors.
type palette struct {
	tint colorful.Color
	bg   colorful.Color
}

func newPalette(tint, background string) (palette, error) {
	t, err := colorful.Hex(tint)
	if err != nil {
		return palette{}, fmt.Errorf("tint: %w", err)
	}
	b, err := colorful.Hex(background)
	if err != nil {
		return palette{}, fmt.Errorf("background: %w", err)
	}
	return palette{tint: t, bg: b}, nil
}

// colors returns the lit and dark pixel colors. Lower contrast pulls the lit
// color towards the background, never below a third of the way.
func (p palette) colors(contrast byte) (on, off color.RGBA) {
	t := 1.0/3 + 2.0/3*float64(contrast)/255
	return rgba(p.bg.BlendLab(p.tint, t).Clamped()), rgba(p.bg)
}

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// toRGBA expands img into dst as 8-bit RGBA, growing dst when needed.
func toRGBA(img *image1bit.VerticalLSB, on, off color.RGBA, dst []byte) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if cap(dst) < 4*w*h {
		dst = make([]byte, 4*w*h)
	}
	dst = dst[:4*w*h]
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := off
			if img.BitAt(x, y) {
				c = on
			}
			i := 4 * (y*w + x)
			dst[i], dst[i+1], dst[i+2], dst[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return dst
}

// halfBlock returns the character showing the pixel pair (top, bottom) in one
// terminal cell.
func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	}
	return ' '
}

// textFrame renders img with half blocks, two pixel rows per line.
func textFrame(img *image1bit.VerticalLSB) string {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			sb.WriteRune(halfBlock(bool(img.BitAt(x, y)), bool(img.BitAt(x, y+1))))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
