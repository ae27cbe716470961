package canvas

import (
	"image"
	"testing"
)

func TestDrawXBM(t *testing.T) {
	tests := []struct {
		name   string
		bitmap []byte
		w, h   int
		msb    bool
		want   []image.Point
	}{
		{
			name:   "lsb first",
			bitmap: []byte{0x01, 0x80},
			w:      8, h: 2,
			want: []image.Point{{0, 0}, {7, 1}},
		},
		{
			name:   "msb first",
			bitmap: []byte{0x01, 0x80},
			w:      8, h: 2,
			msb:  true,
			want: []image.Point{{7, 0}, {0, 1}},
		},
		{
			name:   "padded rows",
			bitmap: []byte{0x00, 0x02, 0x01, 0x00},
			w:      10, h: 2,
			want: []image.Point{{9, 0}, {0, 1}},
		},
		{
			name:   "short bitmap",
			bitmap: []byte{0xFF},
			w:      4, h: 4,
			want: []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		},
		{
			name:   "empty size",
			bitmap: []byte{0xFF},
			w:      0, h: 1,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(16, 16)
			if tt.msb {
				c.DrawBitmap(tt.bitmap, tt.w, tt.h, 0, 0, On)
			} else {
				c.DrawXBM(tt.bitmap, tt.w, tt.h, 0, 0, On)
			}
			assertPixels(t, c, points(tt.want...))
		})
	}
}

func TestDrawXBMKeepsBackground(t *testing.T) {
	c := New(16, 8)
	c.Fill(On)
	c.DrawXBM([]byte{0x05}, 3, 1, 2, 2, Off)

	if c.Pixel(2, 2) || c.Pixel(4, 2) {
		t.Error("set bits should be drawn with the given color")
	}
	if !c.Pixel(3, 2) {
		t.Error("clear bits must leave the canvas untouched")
	}
}

func TestDrawXBMClipsBottom(t *testing.T) {
	c := New(8, 4)
	c.DrawXBM([]byte{0xFF, 0xFF, 0xFF}, 8, 3, 0, 3, On)

	if n := len(lit(c)); n != 8 {
		t.Errorf("lit %d pixels, want only row 3", n)
	}
	for x := 0; x < 8; x++ {
		if !c.Pixel(x, 3) {
			t.Errorf("Pixel(%d, 3) not lit", x)
		}
	}
}

func TestDrawXBMOffset(t *testing.T) {
	c := New(16, 16)
	c.DrawXBM([]byte{0x03, 0x01}, 2, 2, 10, 12, On)
	assertPixels(t, c, points(image.Point{10, 12}, image.Point{11, 12}, image.Point{10, 13}))
}
