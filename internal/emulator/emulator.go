// Package emulator models a SSD1306 controller at the byte level.
//
// A Panel decodes the control bytes, commands and GDDRAM writes a driver
// sends and keeps display RAM and register state the way the chip does. It
// implements the driver's Bus interface and the Tx method of I²C buses, so
// it can stand in for hardware in tests and in the desktop simulator.
package emulator

import (
	"errors"
	"fmt"
	"sync"
)

const (
	ramColumns = 128
	ramPages   = 8
	ramRows    = ramPages * 8
)

// Addressing is the GDDRAM pointer mode selected by command 0x20.
type Addressing byte

const (
	Horizontal Addressing = 0
	Vertical   Addressing = 1
	Page       Addressing = 2
)

var (
	// ErrNACK is returned by Begin for an address the panel does not answer.
	ErrNACK         = errors.New("emulator: address not acknowledged")
	errNotStarted   = errors.New("emulator: no transfer in progress")
	errReadNotAvail = errors.New("emulator: reads are not supported")
)

// Stats counts the traffic a Panel received.
type Stats struct {
	Transfers int // Completed Begin/End pairs
	Commands  int // Complete commands decoded, parameters included
	DataBytes int // Bytes written to GDDRAM
}

// Panel is an emulated SSD1306 with a w×h glass.
type Panel struct {
	mu sync.Mutex

	addr uint16
	w, h int
	ram  [ramPages][ramColumns]byte

	// Registers
	displayOn  bool
	inverse    bool
	entireOn   bool
	contrast   byte
	mux        int
	offset     int
	startLine  int
	segRemap   bool
	comRemap   bool
	chargePump bool
	scrolling  bool
	mode       Addressing

	// GDDRAM pointer and window
	col, page          int
	colStart, colEnd   int
	pageStart, pageEnd int

	// Transfer decoder
	open     bool
	control  bool // next byte is a control byte
	dataMode bool // D/C# of the current stream
	single   bool // Co was set: one byte, then another control byte
	cmd      []byte

	stats Stats
}

// New returns a panel of w×h pixels answering at I²C address addr, in the
// chip's reset state. The glass is clipped to the 128×64 display RAM.
func New(w, h int, addr uint16) *Panel {
	w = min(max(w, 0), ramColumns)
	h = min(max(h, 0), ramRows)
	p := &Panel{addr: addr, w: w, h: h}
	p.reset()
	return p
}

func (p *Panel) reset() {
	p.ram = [ramPages][ramColumns]byte{}
	p.displayOn = false
	p.inverse = false
	p.entireOn = false
	p.contrast = 0x7F
	p.mux = ramRows - 1
	p.offset = 0
	p.startLine = 0
	p.segRemap = false
	p.comRemap = false
	p.chargePump = false
	p.scrolling = false
	p.mode = Page
	p.col, p.page = 0, 0
	p.colStart, p.colEnd = 0, ramColumns-1
	p.pageStart, p.pageEnd = 0, ramPages-1
	p.cmd = p.cmd[:0]
}

// Reset returns the panel to its power-on state and clears the statistics.
func (p *Panel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	p.open = false
	p.stats = Stats{}
}

// Begin starts a transfer. Addresses other than the panel's are not
// acknowledged. Like a repeated START, Begin during a transfer abandons it
// along with any command still waiting for parameters.
func (p *Panel) Begin(addr uint16) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = false
	if addr != p.addr {
		return ErrNACK
	}
	p.open = true
	p.control = true
	p.single = false
	p.cmd = p.cmd[:0]
	return nil
}

// WriteByte feeds one byte of the current transfer.
func (p *Panel) WriteByte(b byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return errNotStarted
	}
	p.feed(b)
	return nil
}

// WriteBytes feeds bytes of the current transfer.
func (p *Panel) WriteBytes(b []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return errNotStarted
	}
	for _, c := range b {
		p.feed(c)
	}
	return nil
}

// End finishes the transfer. A command still waiting for parameters is
// dropped.
func (p *Panel) End() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return errNotStarted
	}
	p.open = false
	p.cmd = p.cmd[:0]
	p.stats.Transfers++
	return nil
}

// Tx performs a whole write transaction, like an I²C bus.
func (p *Panel) Tx(addr uint16, w, r []byte) error {
	if len(r) != 0 {
		return errReadNotAvail
	}
	if err := p.Begin(addr); err != nil {
		return err
	}
	if err := p.WriteBytes(w); err != nil {
		return err
	}
	return p.End()
}

// String implements fmt.Stringer.
func (p *Panel) String() string {
	return fmt.Sprintf("emulator.Panel{%dx%d@0x%02X}", p.w, p.h, p.addr)
}

func (p *Panel) feed(b byte) {
	if p.control {
		p.single = b&0x80 != 0
		p.dataMode = b&0x40 != 0
		p.control = false
		return
	}
	if p.dataMode {
		p.writeRAM(b)
	} else {
		p.command(b)
	}
	if p.single {
		p.control = true
	}
}

// writeRAM stores b at the GDDRAM pointer and advances it.
func (p *Panel) writeRAM(b byte) {
	p.stats.DataBytes++
	if p.page < ramPages && p.col < ramColumns {
		p.ram[p.page][p.col] = b
	}

	switch p.mode {
	case Horizontal:
		p.col++
		if p.col > p.colEnd {
			p.col = p.colStart
			p.page++
			if p.page > p.pageEnd {
				p.page = p.pageStart
			}
		}
	case Vertical:
		p.page++
		if p.page > p.pageEnd {
			p.page = p.pageStart
			p.col++
			if p.col > p.colEnd {
				p.col = p.colStart
			}
		}
	default:
		p.col++
		if p.col >= ramColumns {
			p.col = 0
		}
	}
}
