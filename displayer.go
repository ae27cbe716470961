package ssd1306

import (
	"errors"
	"image/color"

	"github.com/flavioheleno/ssd1306/canvas"
	"github.com/flavioheleno/ssd1306/image1bit"
	"tinygo.org/x/drivers"
)

// NewTinyGoI2C creates a SSD1306 device on a TinyGo I²C bus, such as
// machine.I2C0.
func NewTinyGoI2C(b drivers.I2C, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, errors.New("ssd1306: bus is required")
	}
	return New(NewTxBus(b), opts)
}

// Displayer adapts a Dev to tinygo.org/x/drivers.Displayer so tinyfont,
// tinydraw and similar packages can render into its canvas.
type Displayer struct {
	dev *Dev
}

var _ drivers.Displayer = (*Displayer)(nil)

// Displayer returns a drivers.Displayer view of the device canvas.
func (d *Dev) Displayer() *Displayer {
	return &Displayer{dev: d}
}

// Size implements drivers.Displayer.
func (p *Displayer) Size() (x, y int16) {
	return int16(p.dev.Width()), int16(p.dev.Height())
}

// SetPixel implements drivers.Displayer. Colors at or above mid-gray light
// the pixel; darker colors clear it.
func (p *Displayer) SetPixel(x, y int16, c color.RGBA) {
	p.dev.SetPixel(int(x), int(y), toColor(c))
}

// Display implements drivers.Displayer.
func (p *Displayer) Display() error {
	return p.dev.Display()
}

// FillRectangle fills a width×height rectangle at (x, y).
func (p *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if width <= 0 || height <= 0 {
		return errors.New("ssd1306: invalid rectangle size")
	}
	p.dev.FillRect(int(x), int(y), int(width), int(height), toColor(c))
	return nil
}

// SetScroll moves the display start line, scrolling the picture vertically
// without touching the frame buffer.
func (p *Displayer) SetScroll(line int16) {
	if err := p.dev.SetStartLine(int(line)); err != nil {
		p.dev.log.Warn("ssd1306: set scroll", "line", line, "err", err)
	}
}

// SetRotation supports Rotation0 and Rotation180, the two orientations the
// controller remaps in hardware.
func (p *Displayer) SetRotation(r drivers.Rotation) error {
	d := p.dev
	if d.halted {
		return ErrHalted
	}
	switch r {
	case drivers.Rotation0:
		return d.sendCommands(0xA1, 0xC8)
	case drivers.Rotation180:
		return d.sendCommands(0xA0, 0xC0)
	}
	return errors.New("ssd1306: rotation not supported")
}

func toColor(c color.RGBA) canvas.Color {
	if image1bit.BitModel.Convert(c).(image1bit.Bit) {
		return canvas.On
	}
	return canvas.Off
}
