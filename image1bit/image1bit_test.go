package image1bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestBitRGBA(t *testing.T) {
	tests := []struct {
		name string
		bit  Bit
		want uint32
	}{
		{"off", Off, 0x0000},
		{"on", On, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.bit.RGBA()
			if r != tt.want || g != tt.want || b != tt.want || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, %x)",
					r, g, b, a, tt.want, tt.want, tt.want, uint32(0xFFFF))
			}
		})
	}
}

func TestBitModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Bit
	}{
		{"bit passthrough on", On, On},
		{"bit passthrough off", Off, Off},
		{"black", color.Black, Off},
		{"white", color.White, On},
		{"dark gray", color.RGBA{0x40, 0x40, 0x40, 0xFF}, Off},
		{"light gray", color.RGBA{0xC0, 0xC0, 0xC0, 0xFF}, On},
		{"pure blue is dark", color.RGBA{0x00, 0x00, 0xFF, 0xFF}, Off},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BitModel.Convert(tt.input).(Bit)
			if result != tt.want {
				t.Errorf("BitModel.Convert(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestNewVerticalLSB(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPages  int
		wantPixLen int
	}{
		{"128x64", image.Rect(0, 0, 128, 64), 128, 8, 1024},
		{"128x32", image.Rect(0, 0, 128, 32), 128, 4, 512},
		{"96x16", image.Rect(0, 0, 96, 16), 96, 2, 192},
		{"partial page", image.Rect(0, 0, 10, 9), 10, 2, 20},
		{"offset rect", image.Rect(10, 20, 14, 28), 4, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewVerticalLSB(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if got := img.Pages(); got != tt.wantPages {
				t.Errorf("Pages() = %d, want %d", got, tt.wantPages)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestVerticalLSBPagePacking(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 3, 16))

	img.SetBit(0, 0, On)
	img.SetBit(0, 7, On)
	img.SetBit(1, 1, On)
	img.SetBit(2, 8, On)
	img.SetBit(2, 15, On)

	want := []byte{
		0x81, 0x02, 0x00, // page 0
		0x00, 0x00, 0x81, // page 1
	}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = 0x%02X, want 0x%02X", i, img.Pix[i], b)
		}
	}
}

func TestVerticalLSBSetGet(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 16))

	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			img.SetBit(x, y, Bit((x+y)%2 == 0))
		}
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			want := Bit((x+y)%2 == 0)
			if got := img.BitAt(x, y); got != want {
				t.Errorf("BitAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestVerticalLSBFlipBit(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 4, 8))
	img.SetBit(1, 3, On)
	before := append([]byte(nil), img.Pix...)

	img.FlipBit(1, 3)
	if img.BitAt(1, 3) != Off {
		t.Error("FlipBit on a lit pixel should clear it")
	}
	img.FlipBit(1, 3)

	for i := range before {
		if img.Pix[i] != before[i] {
			t.Errorf("double FlipBit changed Pix[%d]: 0x%02X -> 0x%02X", i, before[i], img.Pix[i])
		}
	}
}

func TestVerticalLSBAt(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 2, 2))
	img.SetBit(0, 0, On)

	c := img.At(0, 0)
	b, ok := c.(Bit)
	if !ok {
		t.Fatalf("At(0, 0) returned %T, want Bit", c)
	}
	if b != On {
		t.Errorf("At(0, 0) = %v, want On", b)
	}
}

func TestVerticalLSBSet(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 2, 2))

	img.Set(0, 0, On)
	if img.BitAt(0, 0) != On {
		t.Error("After Set(0, 0, On), BitAt(0, 0) should be On")
	}

	img.Set(1, 0, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	if img.BitAt(1, 0) != On {
		t.Error("After Set(1, 0, white), BitAt(1, 0) should be On")
	}

	img.Set(1, 0, color.Black)
	if img.BitAt(1, 0) != Off {
		t.Error("After Set(1, 0, black), BitAt(1, 0) should be Off")
	}
}

func TestVerticalLSBOutOfBounds(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 4, 8))

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {4, 0}, {0, 8}} {
		img.SetBit(p.X, p.Y, On)
		img.FlipBit(p.X, p.Y)
		if img.BitAt(p.X, p.Y) != Off {
			t.Errorf("BitAt(%d, %d) = On, want Off (out of bounds)", p.X, p.Y)
		}
	}

	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("out-of-bounds writes changed Pix[%d] to 0x%02X", i, b)
		}
	}
}

func TestVerticalLSBOffsetRect(t *testing.T) {
	rect := image.Rect(100, 50, 104, 58)
	img := NewVerticalLSB(rect)

	img.SetBit(100, 50, On)
	if img.BitAt(100, 50) != On {
		t.Error("SetBit(100, 50) then BitAt(100, 50) should be On")
	}
	if img.Pix[0] != 0x01 {
		t.Errorf("Pix[0] = 0x%02X, want 0x01", img.Pix[0])
	}
}

func TestVerticalLSBPixOffset(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 16))

	tests := []struct {
		x, y   int
		offset int
		mask   byte
	}{
		{0, 0, 0, 0x01},
		{0, 7, 0, 0x80},
		{3, 2, 3, 0x04},
		{0, 8, 8, 0x01},
		{7, 15, 15, 0x80},
	}

	for _, tt := range tests {
		offset, mask := img.pixOffset(tt.x, tt.y)
		if offset != tt.offset || mask != tt.mask {
			t.Errorf("pixOffset(%d, %d) = (%d, 0x%02X), want (%d, 0x%02X)",
				tt.x, tt.y, offset, mask, tt.offset, tt.mask)
		}
	}
}

func TestVerticalLSBDrawUniform(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 16, 16))
	draw.Draw(img, image.Rect(0, 8, 16, 16), image.NewUniform(On), image.Point{}, draw.Src)

	for i := 0; i < 16; i++ {
		if img.Pix[i] != 0x00 {
			t.Errorf("page 0 Pix[%d] = 0x%02X, want 0x00", i, img.Pix[i])
		}
		if img.Pix[16+i] != 0xFF {
			t.Errorf("page 1 Pix[%d] = 0x%02X, want 0xFF", 16+i, img.Pix[16+i])
		}
	}
}
