package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantPixLen int
	}{
		{"128x32", 128, 32, 512},
		{"128x64", 128, 64, 1024},
		{"odd height", 10, 9, 20},
		{"negative size", -5, -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.w, tt.h)
			if got := len(c.Image().Pix); got != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", got, tt.wantPixLen)
			}
			if c.Style() != DefaultStyle() {
				t.Errorf("Style() = %+v, want %+v", c.Style(), DefaultStyle())
			}
		})
	}
}

func TestSetPixelRoundTrip(t *testing.T) {
	c := New(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c.SetPixel(x, y, On)
			if !c.Pixel(x, y) {
				t.Fatalf("Pixel(%d, %d) = false after On", x, y)
			}
			c.SetPixel(x, y, Off)
			if c.Pixel(x, y) {
				t.Fatalf("Pixel(%d, %d) = true after Off", x, y)
			}
		}
	}
	for i, b := range c.Image().Pix {
		if b != 0 {
			t.Fatalf("On then Off left Pix[%d] = 0x%02X", i, b)
		}
	}
}

func TestSetPixelInvertTwiceIsIdentity(t *testing.T) {
	c := New(8, 16)
	c.DrawLine(0, 0, 7, 15, On)
	before := snapshot(c)

	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			c.SetPixel(x, y, Invert)
		}
	}
	if equalBytes(before, snapshot(c)) {
		t.Fatal("a single Invert pass should change the buffer")
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			c.SetPixel(x, y, Invert)
		}
	}
	if !equalBytes(before, snapshot(c)) {
		t.Error("Invert applied twice should restore the buffer")
	}
}

func TestSetPixelSelectorAboveInvert(t *testing.T) {
	c := New(4, 8)
	c.SetPixel(1, 1, Color(3))
	if !c.Pixel(1, 1) {
		t.Error("Color(3) should toggle like Invert")
	}
	if got := Color(7).String(); got != "Invert" {
		t.Errorf("Color(7).String() = %q, want Invert", got)
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	c := New(8, 8, WithDirtyTracking())
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-100, 1000}} {
		c.SetPixel(p.X, p.Y, On)
		c.SetPixel(p.X, p.Y, Invert)
		if c.Pixel(p.X, p.Y) {
			t.Errorf("Pixel(%d, %d) = true outside the canvas", p.X, p.Y)
		}
	}
	for i, b := range c.Image().Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = 0x%02X after out of bounds writes", i, b)
		}
	}
	if _, ok := c.Dirty(); ok {
		t.Error("out of bounds writes must not mark the canvas dirty")
	}
}

func TestFill(t *testing.T) {
	c := New(16, 12)

	c.Fill(On)
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			if !c.Pixel(x, y) {
				t.Fatalf("Pixel(%d, %d) = false after Fill(On)", x, y)
			}
		}
	}

	c.Clear()
	for i, b := range c.Image().Pix {
		if b != 0 {
			t.Fatalf("Pix[%d] = 0x%02X after Clear", i, b)
		}
	}

	c.DrawCircle(8, 6, 4, On)
	before := snapshot(c)
	c.Fill(Invert)
	if !c.Pixel(8, 6) || c.Pixel(12, 6) {
		t.Error("Fill(Invert) should complement every pixel")
	}
	c.Fill(Invert)
	if !equalBytes(before, snapshot(c)) {
		t.Error("Fill(Invert) twice should restore the buffer")
	}
}

func TestDirtySinglePixel(t *testing.T) {
	c := New(128, 32, WithDirtyTracking())
	if _, ok := c.Dirty(); ok {
		t.Fatal("new canvas should have nothing pending")
	}

	c.SetPixel(5, 7, On)
	r, ok := c.Dirty()
	if !ok {
		t.Fatal("Dirty() not pending after a write")
	}
	want := Region{MinX: 5, MinY: 7, MaxX: 5, MaxY: 7}
	if r != want {
		t.Errorf("Dirty() = %+v, want %+v", r, want)
	}
}

func TestDirtyGrows(t *testing.T) {
	c := New(128, 64, WithDirtyTracking())
	c.SetPixel(40, 30, On)
	c.SetPixel(10, 50, Off)
	c.SetPixel(90, 3, Invert)

	r, ok := c.Dirty()
	if !ok {
		t.Fatal("Dirty() not pending")
	}
	want := Region{MinX: 10, MinY: 3, MaxX: 90, MaxY: 50}
	if r != want {
		t.Errorf("Dirty() = %+v, want %+v", r, want)
	}
	if got := r.Rect(); got != image.Rect(10, 3, 91, 51) {
		t.Errorf("Rect() = %v, want (10,3)-(91,51)", got)
	}
	if first, last := r.Pages(); first != 0 || last != 6 {
		t.Errorf("Pages() = (%d, %d), want (0, 6)", first, last)
	}

	c.ResetDirty()
	if _, ok := c.Dirty(); ok {
		t.Error("ResetDirty should clear the pending flag")
	}
	c.SetPixel(2, 2, On)
	if r, _ := c.Dirty(); r != (Region{2, 2, 2, 2}) {
		t.Errorf("after reset Dirty() = %+v, want the single pixel", r)
	}
}

func TestDirtyFill(t *testing.T) {
	c := New(128, 32, WithDirtyTracking())
	c.Fill(Off)
	r, ok := c.Dirty()
	if !ok || r != (Region{0, 0, 127, 31}) {
		t.Errorf("Dirty() after Fill = %+v, %v; want whole canvas", r, ok)
	}
}

func TestDirtyTrackingDisabled(t *testing.T) {
	c := New(16, 16)
	c.SetPixel(1, 1, On)
	c.Fill(On)
	if _, ok := c.Dirty(); ok {
		t.Error("untracked canvas should never report a dirty region")
	}

	c.SetDirtyTracking(true)
	c.SetPixel(3, 4, On)
	if !c.DirtyTracking() {
		t.Error("DirtyTracking() = false after enabling")
	}
	c.SetDirtyTracking(false)
	if _, ok := c.Dirty(); ok {
		t.Error("disabling tracking should discard the pending region")
	}
}

func TestMarkDirty(t *testing.T) {
	c := New(32, 16, WithDirtyTracking())
	c.MarkDirty(image.Rect(-4, 2, 8, 40))
	r, ok := c.Dirty()
	if !ok || r != (Region{0, 2, 7, 15}) {
		t.Errorf("Dirty() = %+v, %v; want clipped {0 2 7 15}", r, ok)
	}
}

func TestDrawImage(t *testing.T) {
	c := New(16, 16, WithDirtyTracking())
	var _ draw.Image = c

	draw.Draw(c, image.Rect(4, 4, 8, 6), image.NewUniform(color.White), image.Point{}, draw.Src)

	want := make(map[image.Point]bool)
	for y := 4; y < 6; y++ {
		for x := 4; x < 8; x++ {
			want[image.Point{X: x, Y: y}] = true
		}
	}
	assertPixels(t, c, want)

	if r, ok := c.Dirty(); !ok || r != (Region{4, 4, 7, 5}) {
		t.Errorf("Dirty() = %+v, %v; want {4 4 7 5}", r, ok)
	}
	if c.At(4, 4) != c.ColorModel().Convert(color.White) {
		t.Error("At(4, 4) should be On")
	}
}

func TestRenderClearRenderIsIdempotent(t *testing.T) {
	c := New(64, 32)
	render := func() {
		c.FillRoundRect(2, 2, 30, 20, 4, On)
		c.DrawCircle(45, 15, 9, Invert)
		c.DrawLine(0, 31, 63, 0, Invert)
	}

	render()
	first := snapshot(c)
	c.Clear()
	render()
	if !equalBytes(first, snapshot(c)) {
		t.Error("rendering after Clear should reproduce the same buffer")
	}
}
