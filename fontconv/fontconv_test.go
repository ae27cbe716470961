package fontconv

import (
	"image"
	"image/color"
	"testing"

	"github.com/flavioheleno/ssd1306/bitfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

func litCount(f *bitfont.Font, c uint16) int {
	g, ok := f.Glyph(c)
	if !ok {
		return -1
	}
	n := 0
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < g.Width; x++ {
			if g.Bit(x, y) {
				n++
			}
		}
	}
	return n
}

func TestFromFaceBasic(t *testing.T) {
	face := basicfont.Face7x13
	f, err := FromFace(face, ' ', '~', nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.First() != ' ' || f.Last() != '~' || f.Height() != 13 {
		t.Fatalf("font = %#x..%#x height %d", f.First(), f.Last(), f.Height())
	}

	for r := rune('!'); r <= '~'; r++ {
		if w := f.Width(uint16(r)); w != 7 {
			t.Fatalf("Width(%q) = %d, want 7", r, w)
		}

		// Cross-check against the face drawn by font.Drawer.
		dst := image.NewAlpha(image.Rect(0, 0, 7, 13))
		d := font.Drawer{Dst: dst, Src: image.Opaque, Face: face, Dot: fixed.P(0, 11)}
		d.DrawString(string(r))

		g, _ := f.Glyph(uint16(r))
		for y := 0; y < 13; y++ {
			for x := 0; x < 7; x++ {
				want := dst.AlphaAt(x, y).A >= DefaultThreshold
				if got := g.Bit(x, y); got != want {
					t.Fatalf("%q bit (%d, %d) = %v, want %v", r, x, y, got, want)
				}
			}
		}
	}

	if n := litCount(f, ' '); n != 0 {
		t.Errorf("space has %d lit pixels", n)
	}
	if n := litCount(f, 'W'); n == 0 {
		t.Error("W has no lit pixels")
	}
}

func TestFromFaceMissingRunes(t *testing.T) {
	f, err := FromFace(basicfont.Face7x13, 0xE8, 0xEA, nil)
	if err != nil {
		t.Fatal(err)
	}
	for c := uint16(0xE8); c <= 0xEA; c++ {
		if w := f.Width(c); w != 0 {
			t.Errorf("Width(%#x) = %d, want 0 for a rune the face lacks", c, w)
		}
	}
}

func TestFromFaceOpenType(t *testing.T) {
	otf, err := opentype.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{Size: 12, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	f, err := FromFace(face, '0', '9', nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.Height() < 8 || f.Height() > 20 {
		t.Errorf("Height() = %d for a 12px face", f.Height())
	}
	for c := uint16('0'); c <= '9'; c++ {
		if litCount(f, c) <= 0 {
			t.Errorf("digit %q rendered blank", rune(c))
		}
	}
}

func TestThreshold(t *testing.T) {
	// A face whose only glyph is a half-transparent square.
	face := &basicfont.Face{
		Advance: 2, Width: 2, Height: 2, Ascent: 2,
		Mask:   image.NewUniform(color.Alpha{A: 0x60}),
		Ranges: []basicfont.Range{{Low: 'a', High: 'b'}},
	}

	tests := []struct {
		name string
		opts *Options
		want int
	}{
		{"default", nil, 0},
		{"low threshold", &Options{Threshold: 0x40}, 4},
		{"exact", &Options{Threshold: 0x60}, 4},
		{"above", &Options{Threshold: 0x61}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := FromFace(face, 'a', 'a', tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if got := litCount(f, 'a'); got != tt.want {
				t.Errorf("lit = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRangeErrors(t *testing.T) {
	tests := []struct {
		name        string
		first, last rune
	}{
		{"reversed", 'z', 'a'},
		{"above 16 bits", 'a', 0x10000},
		{"negative", -1, 'a'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromFace(basicfont.Face7x13, tt.first, tt.last, nil); err == nil {
				t.Error("FromFace should fail")
			}
			if _, err := FromFonter(&blockFont{}, tt.first, tt.last, nil); err == nil {
				t.Error("FromFonter should fail")
			}
		})
	}
	if _, err := FromFace(nil, 'a', 'b', nil); err == nil {
		t.Error("FromFace(nil) should fail")
	}
	if _, err := FromFonter(nil, 'a', 'b', nil); err == nil {
		t.Error("FromFonter(nil) should fail")
	}
}

// blockFont draws every rune as a 3x5 block sitting on the baseline, except
// 'g', which hangs two pixels below it, and ' ', which is blank.
type blockFont struct {
	g blockGlyph
}

type blockGlyph struct {
	r rune
}

func (g *blockGlyph) Draw(d drivers.Displayer, x, y int16, c color.RGBA) {
	if g.r == ' ' {
		return
	}
	top, bottom := y-4, y
	if g.r == 'g' {
		top, bottom = y-2, y+2
	}
	for py := top; py <= bottom; py++ {
		for px := x; px < x+3; px++ {
			d.SetPixel(px, py, c)
		}
	}
	// Past the advance; must be dropped.
	d.SetPixel(x+5, y, c)
}

func (g *blockGlyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{Rune: g.r, Width: 3, Height: 5, XAdvance: 4, YOffset: -4}
}

func (f *blockFont) GetYAdvance() uint8 { return 8 }

func (f *blockFont) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

func TestFromFonter(t *testing.T) {
	f, err := FromFonter(&blockFont{}, 'a', 'g', nil)
	if err != nil {
		t.Fatal(err)
	}
	// Rows y-4 .. y+2 are used, extended to the 8 pixel line advance.
	if f.Height() != 8 {
		t.Fatalf("Height() = %d, want 8", f.Height())
	}

	tests := []struct {
		c           rune
		top, bottom int
	}{
		{'a', 0, 4},
		{'f', 0, 4},
		{'g', 2, 6},
	}
	for _, tt := range tests {
		t.Run(string(tt.c), func(t *testing.T) {
			g, ok := f.Glyph(uint16(tt.c))
			if !ok || g.Width != 4 {
				t.Fatalf("Glyph(%q) = %+v, %v", tt.c, g, ok)
			}
			for y := 0; y < f.Height(); y++ {
				for x := 0; x < g.Width; x++ {
					want := x < 3 && y >= tt.top && y <= tt.bottom
					if got := g.Bit(x, y); got != want {
						t.Fatalf("bit (%d, %d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestFromFonterBlank(t *testing.T) {
	f, err := FromFonter(&blockFont{}, ' ', ' ', nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.Height() != 8 || f.Width(' ') != 4 || litCount(f, ' ') != 0 {
		t.Errorf("blank font: height %d width %d", f.Height(), f.Width(' '))
	}
}
