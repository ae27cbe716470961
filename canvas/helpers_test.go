package canvas

import (
	"image"
	"testing"

	"github.com/flavioheleno/ssd1306/bitfont"
)

// asciiFont builds a font covering the printable ASCII range. Glyph widths
// vary between 1 and 4 pixels and every glyph has a distinct pattern.
func asciiFont(t *testing.T, height int) *bitfont.Font {
	t.Helper()
	b, err := bitfont.NewBuilder('!', '~', height)
	if err != nil {
		t.Fatal(err)
	}
	for ch := uint16('!'); ch <= '~'; ch++ {
		code := int(ch)
		if err := b.SetGlyph(ch, 1+code%4, func(x, y int) bool {
			return (x+y+code)%3 == 0
		}); err != nil {
			t.Fatal(err)
		}
	}
	f, err := b.Font()
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// lit returns the set of lit pixels.
func lit(c *Canvas) map[image.Point]bool {
	out := make(map[image.Point]bool)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.Pixel(x, y) {
				out[image.Point{X: x, Y: y}] = true
			}
		}
	}
	return out
}

func snapshot(c *Canvas) []byte {
	return append([]byte(nil), c.Image().Pix...)
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func points(pts ...image.Point) map[image.Point]bool {
	out := make(map[image.Point]bool, len(pts))
	for _, p := range pts {
		out[p] = true
	}
	return out
}

func assertPixels(t *testing.T, c *Canvas, want map[image.Point]bool) {
	t.Helper()
	got := lit(c)
	for p := range want {
		if !got[p] {
			t.Errorf("pixel %v not lit", p)
		}
	}
	for p := range got {
		if !want[p] {
			t.Errorf("unexpected lit pixel %v", p)
		}
	}
}
