package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"time"

	"github.com/flavioheleno/ssd1306/canvas"
	"github.com/flavioheleno/ssd1306/image1bit"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// DefaultAddr is the I²C address of most modules; the alternative is 0x3D.
const DefaultAddr = 0x3C

var (
	// ErrCommunication wraps every transport failure.
	ErrCommunication = errors.New("ssd1306: communication failed")
	// ErrHalted is returned by I/O methods after Halt.
	ErrHalted = errors.New("ssd1306: halted")
)

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, at most 128)
	H int // Height (default: 32, one of 16, 32, 48 or 64)

	Addr uint16 // I²C address (default: DefaultAddr); SPI ignores it

	// PartialUpdate makes Display send only the pages and columns written
	// since the previous flush.
	PartialUpdate bool

	// FlipVertical scans COM outputs top to bottom instead of the default
	// bottom to top, mirroring the picture vertically.
	FlipVertical bool

	// Optional hardware reset pin
	RST gpio.PinIO

	// Logger overrides the package logger for this device.
	Logger *slog.Logger
}

// Dev is the device handle for the SSD1306 display.
//
// The embedded Canvas is the frame buffer; draw into it and call Display to
// push the result to the panel. Dev is not safe for concurrent use.
type Dev struct {
	*canvas.Canvas

	bus  Bus
	addr uint16
	rst  gpio.PinIO
	log  *slog.Logger

	halted bool
}

// New creates a SSD1306 device on an arbitrary Bus and runs the
// initialization sequence, which ends with a cleared panel.
//
// opts can be nil to use defaults (128x32 at address 0x3C).
func New(bus Bus, opts *Opts) (*Dev, error) {
	o, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if bus == nil {
		return nil, errors.New("ssd1306: bus is required")
	}

	var canvasOpts []canvas.Option
	if o.PartialUpdate {
		canvasOpts = append(canvasOpts, canvas.WithDirtyTracking())
	}
	log := o.Logger
	if log == nil {
		log = Logger()
	}

	d := &Dev{
		Canvas: canvas.New(o.W, o.H, canvasOpts...),
		bus:    bus,
		addr:   o.Addr,
		rst:    o.RST,
		log:    log,
	}
	if err := d.init(&o); err != nil {
		return nil, err
	}
	return d, nil
}

// NewI2C creates a SSD1306 device connected via periph's I²C.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, errors.New("ssd1306: bus is required")
	}
	return New(NewTxBus(b), opts)
}

// NewSPI creates a SSD1306 device connected via 4-wire SPI.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided and configured
// as an output.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if _, err := opts.resolve(); err != nil {
		return nil, err
	}
	if dc == nil || dc == gpio.INVALID {
		return nil, errors.New("ssd1306: dc pin is required")
	}

	// The controller samples on the rising edge; 10MHz is its rated maximum.
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1306: failed to connect SPI: %w", err)
	}
	return New(&spiBus{c: c, dc: dc}, opts)
}

// resolve applies defaults to zero fields and validates the result.
func (o *Opts) resolve() (Opts, error) {
	r := Opts{W: 128, H: 32, Addr: DefaultAddr}
	if o != nil {
		r = *o
		if r.W == 0 {
			r.W = 128
		}
		if r.H == 0 {
			r.H = 32
		}
		if r.Addr == 0 {
			r.Addr = DefaultAddr
		}
	}

	if r.W < 1 || r.W > 128 {
		return r, errors.New("ssd1306: width must be between 1 and 128")
	}
	switch r.H {
	case 16, 32, 48, 64:
	default:
		return r, errors.New("ssd1306: height must be 16, 32, 48 or 64")
	}
	if r.Addr > 0x7F {
		return r, fmt.Errorf("ssd1306: invalid I²C address 0x%X", r.Addr)
	}
	return r, nil
}

// initSequence returns the power-up command list for a w×h panel.
func initSequence(w, h int) []byte {
	comPins := byte(0x02) // Sequential COM pins
	if w == 128 && h == 64 {
		comPins = 0x12 // Alternative COM pins
	}
	return []byte{
		0xAE,                      // Display OFF
		0xA8, byte(h - 1),         // MUX ratio
		0x22, 0x00, byte(h/8 - 1), // Page address window
		0x21, 0x00, byte(w - 1),   // Column address window
		0xD3, 0x00,                // Display offset
		0x40,                      // Start line 0
		0xA1,                      // Segment remap: column 127 is SEG0
		0xC8,                      // COM scan direction: remapped
		0xDA, comPins,             // COM pins hardware configuration
		0x20, 0x00,                // Horizontal addressing mode
		0x81, 0xF7,                // Contrast
		0xA4,                      // Display follows RAM
		0xA6,                      // Normal display mode
		0xD5, 0x80,                // Clock divider and oscillator frequency
		0x8D, 0x14,                // Charge pump on
		0xD9, 0x22,                // Pre-charge period
		0x2E,                      // Deactivate scroll
		0xAF,                      // Display ON
	}
}

// init resets the panel, sends the initialization sequence and clears it.
func (d *Dev) init(o *Opts) error {
	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	d.log.Debug("ssd1306: init", "width", o.W, "height", o.H, "addr", o.Addr, "partial", o.PartialUpdate)
	if err := d.sendCommands(initSequence(o.W, o.H)...); err != nil {
		return err
	}
	if o.FlipVertical {
		if err := d.sendCommands(0xC0); err != nil {
			return err
		}
	}
	return d.DisplayEmpty()
}

// sendCommands sends cmds in a single command transfer.
func (d *Dev) sendCommands(cmds ...byte) error {
	return d.transfer(controlCommand, cmds)
}

// transfer sends control followed by p. The first failing call aborts the
// transfer without calling End.
func (d *Dev) transfer(control byte, p ...[]byte) error {
	if err := d.bus.Begin(d.addr); err != nil {
		return d.commError(err)
	}
	if err := d.bus.WriteByte(control); err != nil {
		return d.commError(err)
	}
	for _, b := range p {
		if err := d.bus.WriteBytes(b); err != nil {
			return d.commError(err)
		}
	}
	if err := d.bus.End(); err != nil {
		return d.commError(err)
	}
	return nil
}

func (d *Dev) commError(err error) error {
	d.log.Warn("ssd1306: transfer failed", "err", err)
	return fmt.Errorf("%w: %w", ErrCommunication, err)
}

// Display sends the frame buffer to the panel.
//
// Without dirty tracking the whole buffer is sent. With it (Opts.PartialUpdate
// or SetDirtyTracking), only the pages and columns covering the pixels
// written since the last successful Display are sent, and nothing at all when
// no pixel was written. On failure
// the buffer and the pending region are kept so a later Display retries.
func (d *Dev) Display() error {
	if d.halted {
		return ErrHalted
	}
	r := canvas.Region{MaxX: d.Width() - 1, MaxY: d.Height() - 1}
	if d.DirtyTracking() {
		var ok bool
		if r, ok = d.Dirty(); !ok {
			return nil
		}
	}
	if err := d.flush(r); err != nil {
		return err
	}
	d.ResetDirty()
	return nil
}

// flush writes the columns and pages covering r: one command transfer
// setting the address window, then one data transfer with the bytes page by
// page.
func (d *Dev) flush(r canvas.Region) error {
	p0, p1 := r.Pages()
	c0, c1 := r.MinX, r.MaxX
	d.log.Debug("ssd1306: flush", "pages", [2]int{p0, p1}, "columns", [2]int{c0, c1})

	if err := d.sendCommands(
		0x22, byte(p0), byte(p1), // Page address window
		0x21, byte(c0), byte(c1), // Column address window
	); err != nil {
		return err
	}

	img := d.Image()
	rows := make([][]byte, 0, p1-p0+1)
	for p := p0; p <= p1; p++ {
		start := p*img.Stride + c0
		rows = append(rows, img.Pix[start:start+c1-c0+1])
	}
	return d.transfer(controlData, rows...)
}

// WriteFrame replaces the whole frame buffer with pix, in the page layout of
// image1bit.VerticalLSB, and displays it.
func (d *Dev) WriteFrame(pix []byte) error {
	if d.halted {
		return ErrHalted
	}
	img := d.Image()
	if len(pix) != len(img.Pix) {
		return errors.New("ssd1306: invalid buffer size")
	}
	copy(img.Pix, pix)
	d.MarkDirty(d.Bounds())
	return d.Display()
}

// Draw draws src into the frame buffer and displays the result. It
// implements display.Drawer.
//
// Only the part of dst inside the display is drawn. Colors are reduced to on
// and off by luminance.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	// Clip to display bounds
	dst = dst.Intersect(d.Bounds())
	if dst.Empty() {
		return nil
	}

	// Fast path: if source is already VerticalLSB at full size
	if img, ok := src.(*image1bit.VerticalLSB); ok {
		if dst == d.Bounds() && sp == (image.Point{}) && img.Rect == d.Bounds() {
			return d.WriteFrame(img.Pix)
		}
	}

	draw.Draw(d.Canvas, dst, src, sp, draw.Src)
	return d.Display()
}

// DisplayEmpty clears the frame buffer and displays it.
func (d *Dev) DisplayEmpty() error {
	d.Fill(canvas.Off)
	return d.Display()
}

// DisplayFull lights every pixel of the frame buffer and displays it.
func (d *Dev) DisplayFull() error {
	d.Fill(canvas.On)
	return d.Display()
}

// ClearDisplay clears the frame buffer. The panel keeps its content until
// the next Display.
func (d *Dev) ClearDisplay() {
	d.Fill(canvas.Off)
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommands(0x81, contrast)
}

// SetDisplayOn turns the panel on or puts it to sleep. Display RAM is kept
// while asleep.
func (d *Dev) SetDisplayOn(on bool) error {
	if d.halted {
		return ErrHalted
	}
	cmd := byte(0xAE) // Display OFF
	if on {
		cmd = 0xAF // Display ON
	}
	return d.sendCommands(cmd)
}

// Invert inverts the display colors (black becomes white and vice versa).
// The frame buffer is not touched.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return ErrHalted
	}
	mode := byte(0xA6) // Normal display
	if invert {
		mode = 0xA7 // Inverted display
	}
	return d.sendCommands(mode)
}

// FlipVertically selects the COM scan direction. true restores the
// orientation set at init; false mirrors the picture vertically.
func (d *Dev) FlipVertically(flip bool) error {
	if d.halted {
		return ErrHalted
	}
	cmd := byte(0xC0) // Normal COM scan
	if flip {
		cmd = 0xC8 // Remapped COM scan
	}
	return d.sendCommands(cmd)
}

// SetEntireDisplayOn lights every pixel regardless of display RAM when on is
// true, and resumes showing RAM otherwise.
func (d *Dev) SetEntireDisplayOn(on bool) error {
	if d.halted {
		return ErrHalted
	}
	cmd := byte(0xA4) // Follow RAM
	if on {
		cmd = 0xA5 // Entire display ON
	}
	return d.sendCommands(cmd)
}

// SetStartLine sets the display RAM row shown at the top of the panel,
// modulo 64.
func (d *Dev) SetStartLine(line int) error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommands(0x40 | byte(line&0x3F))
}

// Halt turns the display off.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.halted = true
	return d.sendCommands(0xAE) // Display OFF
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.Width(), d.Height())
}

// ScrollSpeed is the number of frames between horizontal scroll steps.
type ScrollSpeed byte

const (
	Speed5Frames   ScrollSpeed = 0x00
	Speed64Frames  ScrollSpeed = 0x01
	Speed128Frames ScrollSpeed = 0x02
	Speed256Frames ScrollSpeed = 0x03
	Speed3Frames   ScrollSpeed = 0x04
	Speed4Frames   ScrollSpeed = 0x05
	Speed25Frames  ScrollSpeed = 0x06
	Speed2Frames   ScrollSpeed = 0x07
)

// ScrollHorizontal starts continuous horizontal scrolling of pages
// startPage..endPage. If right is true, content moves right; otherwise left.
//
// The controller must not be written to while scrolling; call StopScroll and
// then Display to redraw.
func (d *Dev) ScrollHorizontal(startPage, endPage int, speed ScrollSpeed, right bool) error {
	if d.halted {
		return ErrHalted
	}
	pages := d.Image().Pages()
	if startPage < 0 || endPage < startPage || endPage >= pages {
		return errors.New("ssd1306: scroll page out of range")
	}
	if speed > Speed2Frames {
		return errors.New("ssd1306: invalid scroll speed")
	}

	scrollCmd := byte(0x27) // Left
	if right {
		scrollCmd = 0x26 // Right
	}

	if err := d.sendCommands(0x2E); err != nil { // Must stop before reconfiguring
		return err
	}
	return d.sendCommands(
		scrollCmd,
		0x00, // Dummy byte
		byte(startPage),
		byte(speed),
		byte(endPage),
		0x00, 0xFF, // Dummy bytes
		0x2F, // Activate scroll
	)
}

// StopScroll stops scrolling. Display RAM must be rewritten afterwards.
func (d *Dev) StopScroll() error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommands(0x2E) // Deactivate scroll
}
