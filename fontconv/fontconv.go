// Package fontconv rasterizes outline and bitmap fonts into bitfont
// resources the canvas text engine can draw.
//
// Two sources are supported: any golang.org/x/image/font.Face (basicfont,
// opentype faces built from TTF/OTF data, plan9font) and any
// tinygo.org/x/tinyfont.Fonter (proggy, freemono and the other TinyGo fonts).
package fontconv

import (
	"errors"
	"fmt"
	"image"

	"github.com/flavioheleno/ssd1306/bitfont"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DefaultThreshold is the mask alpha at or above which a pixel is lit.
const DefaultThreshold = 0x80

// Options tunes the conversion.
type Options struct {
	// Threshold is the 8-bit alpha at or above which a pixel is lit.
	// Zero means DefaultThreshold.
	Threshold uint8
}

func (o *Options) threshold() uint32 {
	if o == nil || o.Threshold == 0 {
		return DefaultThreshold
	}
	return uint32(o.Threshold)
}

func checkRange(first, last rune) error {
	if first < 0 || last > 0xFFFF {
		return fmt.Errorf("fontconv: range 0x%X..0x%X exceeds 16-bit codes", first, last)
	}
	if last < first {
		return fmt.Errorf("fontconv: last char 0x%X before first 0x%X", last, first)
	}
	return nil
}

// FromFace renders runes first..last of face. The cell height is the face's
// ascent plus descent; glyph widths are the rounded-up advances. Runes the
// face lacks are encoded with zero width.
func FromFace(face font.Face, first, last rune, opts *Options) (*bitfont.Font, error) {
	if face == nil {
		return nil, errors.New("fontconv: face is required")
	}
	if err := checkRange(first, last); err != nil {
		return nil, err
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	b, err := bitfont.NewBuilder(uint16(first), uint16(last), height)
	if err != nil {
		return nil, fmt.Errorf("fontconv: %w", err)
	}

	th := opts.threshold() * 0x101
	dot := fixed.P(0, ascent)
	for r := first; r <= last; r++ {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		width := adv.Ceil()
		dr, mask, mp, _, ok := face.Glyph(dot, r)
		if !ok || mask == nil {
			if err := b.SetGlyph(uint16(r), width, blank); err != nil {
				return nil, fmt.Errorf("fontconv: %w", err)
			}
			continue
		}
		err := b.SetGlyph(uint16(r), width, func(x, y int) bool {
			p := image.Pt(x, y)
			if !p.In(dr) {
				return false
			}
			_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
			return a >= th
		})
		if err != nil {
			return nil, fmt.Errorf("fontconv: %w", err)
		}
	}
	return b.Font()
}

func blank(int, int) bool { return false }
