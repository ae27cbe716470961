// Package ssd1306 drives a SSD1306 monochrome OLED display over I²C or SPI.
//
// The SSD1306 is a 1-bit controller for panels up to 128×64 pixels. Common
// modules are 128×32 and 128×64. Display RAM is organized in pages of 8
// rows, each byte holding one column of a page with the top pixel in the
// least significant bit.
//
// A Dev owns an in-memory canvas. Shapes and text are drawn into the canvas
// and nothing reaches the panel until Display is called, which sends either
// the whole buffer or, with Opts.PartialUpdate, only the pages and columns
// touched since the previous flush.
//
// # Hardware Connection
//
// I²C modules need four wires:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C clock
//	SDA         → I²C data
//
// SPI modules add a Data/Command pin and an optional reset pin:
//
//	D0/CLK      → SPI Clock (SCLK)
//	D1/MOSI     → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RES         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/flavioheleno/ssd1306"
//		"github.com/flavioheleno/ssd1306/canvas"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//		bus, err := i2creg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer bus.Close()
//
//		dev, err := ssd1306.NewI2C(bus, &ssd1306.Opts{W: 128, H: 64, PartialUpdate: true})
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		dev.DrawRoundRect(0, 0, 128, 64, 6, canvas.On)
//		dev.FillCircle(64, 32, 12, canvas.Invert)
//		if err := dev.Display(); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Text
//
// Text uses fonts in the bitfont format. Bind one with SetFont, then write
// with WriteString or Printf:
//
//	dev.SetFont(bitfont.MustParse(fontData))
//	dev.SetCursor(0, 1)
//	dev.Printf("temp=%.1f", canvas.Float(21.37))
//	dev.Display()
//
// The fontconv package builds such fonts from golang.org/x/image faces and
// tinyfont fonts.
//
// # Transports
//
// Every transfer goes through the Bus interface: Begin, a stream of bytes
// starting with a control byte (0x00 for commands, 0x40 for data), then End.
// NewI2C and NewTinyGoI2C buffer the stream into a single write transaction.
// NewSPI strips the control byte and drives the DC pin from it instead. New
// accepts any other Bus.
//
// # Compatibility with periph.io and TinyGo
//
// Dev implements display.Drawer from periph.io, so it can be used with any
// tool expecting one. Displayer returns a tinygo.org/x/drivers Displayer view
// of the same canvas for tinyfont and friends.
package ssd1306
