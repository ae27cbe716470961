package ssd1306

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// Control bytes opening every transfer.
const (
	controlCommand byte = 0x00 // Co=0, D/C#=0: the rest of the stream is commands
	controlData    byte = 0x40 // Co=0, D/C#=1: the rest of the stream is GDDRAM data
)

// Bus is the byte transport a Dev writes through.
//
// A transfer is Begin, any number of WriteByte and WriteBytes calls, then
// End. The first byte of every transfer is a control byte. Implementations
// may buffer until End; errors can surface from any call. A transfer that
// failed midway is abandoned without End, so Begin must discard whatever an
// unfinished transfer left behind.
type Bus interface {
	Begin(addr uint16) error
	WriteByte(b byte) error
	WriteBytes(p []byte) error
	End() error
}

var errNotStarted = errors.New("ssd1306: transfer not started")

// Txer is a device-addressed bus such as periph's i2c.Bus or TinyGo's
// drivers.I2C.
type Txer interface {
	Tx(addr uint16, w, r []byte) error
}

// TxBus adapts a Txer to Bus. Each transfer becomes one write transaction.
type TxBus struct {
	tx   Txer
	addr uint16
	buf  []byte
	open bool
}

// NewTxBus returns a Bus that writes through t.
func NewTxBus(t Txer) *TxBus {
	return &TxBus{tx: t}
}

// Begin implements Bus. An unfinished transfer is dropped.
func (b *TxBus) Begin(addr uint16) error {
	b.addr = addr
	b.buf = b.buf[:0]
	b.open = true
	return nil
}

// WriteByte implements Bus.
func (b *TxBus) WriteByte(c byte) error {
	if !b.open {
		return errNotStarted
	}
	b.buf = append(b.buf, c)
	return nil
}

// WriteBytes implements Bus.
func (b *TxBus) WriteBytes(p []byte) error {
	if !b.open {
		return errNotStarted
	}
	b.buf = append(b.buf, p...)
	return nil
}

// End implements Bus.
func (b *TxBus) End() error {
	if !b.open {
		return errNotStarted
	}
	b.open = false
	return b.tx.Tx(b.addr, b.buf, nil)
}

// spiBus turns the control byte into a DC pin level, as 4-wire SPI has no
// control byte on the wire.
type spiBus struct {
	c    conn.Conn
	dc   gpio.PinOut
	buf  []byte
	open bool
}

func (b *spiBus) Begin(uint16) error {
	b.buf = b.buf[:0]
	b.open = true
	return nil
}

func (b *spiBus) WriteByte(c byte) error {
	if !b.open {
		return errNotStarted
	}
	b.buf = append(b.buf, c)
	return nil
}

func (b *spiBus) WriteBytes(p []byte) error {
	if !b.open {
		return errNotStarted
	}
	b.buf = append(b.buf, p...)
	return nil
}

func (b *spiBus) End() error {
	if !b.open {
		return errNotStarted
	}
	b.open = false
	if len(b.buf) < 2 {
		return nil
	}
	level := gpio.Low
	if b.buf[0]&controlData != 0 {
		level = gpio.High
	}
	if err := b.dc.Out(level); err != nil {
		return fmt.Errorf("ssd1306: failed to set DC pin: %w", err)
	}
	return b.c.Tx(b.buf[1:], nil)
}
