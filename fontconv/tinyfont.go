package fontconv

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/flavioheleno/ssd1306/bitfont"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// recorder is a drivers.Displayer that collects the pixels a glyph sets.
type recorder struct {
	th  uint32
	pts []image.Point
}

func (r *recorder) Size() (x, y int16) { return 0x7FFF, 0x7FFF }
func (r *recorder) Display() error     { return nil }

func (r *recorder) SetPixel(x, y int16, c color.RGBA) {
	if uint32(c.A) < r.th {
		return
	}
	r.pts = append(r.pts, image.Pt(int(x), int(y)))
}

var _ drivers.Displayer = (*recorder)(nil)

type captured struct {
	width int
	pts   []image.Point
}

// FromFonter renders runes first..last of f. Glyphs are drawn on a common
// baseline; the cell spans from the highest to the lowest pixel any glyph in
// the range sets, extended downwards to the font's line advance. Widths are
// the glyph advances. Pixels left of the origin or past the advance are
// dropped.
func FromFonter(f tinyfont.Fonter, first, last rune, opts *Options) (*bitfont.Font, error) {
	if f == nil {
		return nil, errors.New("fontconv: font is required")
	}
	if err := checkRange(first, last); err != nil {
		return nil, err
	}

	rec := &recorder{th: opts.threshold()}
	glyphs := make([]captured, 0, int(last-first)+1)
	top, bottom := 0, -1
	for r := first; r <= last; r++ {
		g := f.GetGlyph(r)
		rec.pts = rec.pts[:0]
		g.Draw(rec, 0, 0, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
		info := g.Info()

		c := captured{width: int(info.XAdvance), pts: append([]image.Point(nil), rec.pts...)}
		for _, p := range c.pts {
			if bottom < top {
				top, bottom = p.Y, p.Y
			}
			top = min(top, p.Y)
			bottom = max(bottom, p.Y)
		}
		glyphs = append(glyphs, c)
	}
	if bottom < top {
		// Nothing lit: keep a cell of the line advance.
		top, bottom = 0, max(int(f.GetYAdvance()), 1)-1
	}
	if adv := int(f.GetYAdvance()); bottom-top+1 < adv {
		bottom = top + adv - 1
	}

	b, err := bitfont.NewBuilder(uint16(first), uint16(last), bottom-top+1)
	if err != nil {
		return nil, fmt.Errorf("fontconv: %w", err)
	}
	for i, c := range glyphs {
		lit := make(map[image.Point]bool, len(c.pts))
		for _, p := range c.pts {
			lit[image.Pt(p.X, p.Y-top)] = true
		}
		err := b.SetGlyph(uint16(first)+uint16(i), c.width, func(x, y int) bool {
			return lit[image.Pt(x, y)]
		})
		if err != nil {
			return nil, fmt.Errorf("fontconv: %w", err)
		}
	}
	return b.Font()
}
