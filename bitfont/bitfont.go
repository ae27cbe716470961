// Package bitfont reads and writes the compact bitmap font resources drawn by
// the canvas text engine.
//
// The format is the Microchip Graphics Library font layout: an 8 byte header,
// a glyph directory and the packed glyph bitmaps.
//
//	offset  size  field
//	0       2     reserved (font id)
//	2       2     first character code, little-endian
//	4       2     last character code, little-endian
//	6       1     glyph height in pixels
//	7       1     reserved
//	8       4*n   directory: width (1 byte) + bitmap offset (3 bytes, little-endian)
//	...           bitmaps
//
// Each glyph bitmap is Height rows of ceil(width/8) bytes. Within a byte the
// least significant bit is the leftmost pixel.
//
// Resources are borrowed, never copied: a Font keeps a reference to the bytes
// it was parsed from.
package bitfont

import (
	"encoding/binary"
	"errors"
)

const (
	// HeaderSize is the size of the fixed resource header.
	HeaderSize = 8
	// EntrySize is the size of one glyph directory entry.
	EntrySize = 4
)

// ErrShortHeader is returned by Parse when the resource cannot hold a header.
var ErrShortHeader = errors.New("bitfont: resource shorter than header")

// Font is a parsed view over a font resource.
//
// No consistency checks are done beyond the header length; a glyph whose
// directory entry or bitmap lies outside the resource is reported as missing
// or reads as blank.
type Font struct {
	data   []byte
	first  uint16
	last   uint16
	height int
}

// Parse reads the header of a font resource.
func Parse(b []byte) (*Font, error) {
	if len(b) < HeaderSize {
		return nil, ErrShortHeader
	}
	return &Font{
		data:   b,
		first:  binary.LittleEndian.Uint16(b[2:]),
		last:   binary.LittleEndian.Uint16(b[4:]),
		height: int(b[6]),
	}, nil
}

// MustParse is like Parse but panics on error. It is intended for font
// resources compiled into the program.
func MustParse(b []byte) *Font {
	f, err := Parse(b)
	if err != nil {
		panic(err)
	}
	return f
}

// First returns the first character code covered by the font.
func (f *Font) First() uint16 { return f.first }

// Last returns the last character code covered by the font.
func (f *Font) Last() uint16 { return f.last }

// Height returns the glyph height in pixels.
func (f *Font) Height() int { return f.height }

// Bytes returns the underlying resource.
func (f *Font) Bytes() []byte { return f.data }

// Has reports whether c lies in the font's character range.
func (f *Font) Has(c uint16) bool {
	return c >= f.first && c <= f.last
}

// Glyph looks up the directory entry of c.
func (f *Font) Glyph(c uint16) (Glyph, bool) {
	if !f.Has(c) {
		return Glyph{}, false
	}
	head := HeaderSize + int(c-f.first)*EntrySize
	if head+EntrySize > len(f.data) {
		return Glyph{}, false
	}
	e := f.data[head : head+EntrySize]
	return Glyph{
		font:   f,
		Width:  int(e[0]),
		Offset: int(e[1]) | int(e[2])<<8 | int(e[3])<<16,
	}, true
}

// Width returns the unscaled width of c, or 0 when c is not in the font.
func (f *Font) Width(c uint16) int {
	g, ok := f.Glyph(c)
	if !ok {
		return 0
	}
	return g.Width
}

// Glyph describes one character bitmap inside a Font.
type Glyph struct {
	font *Font

	Width  int // Width in pixels
	Offset int // Offset of the bitmap from the start of the resource
}

// RowBytes returns the number of bytes per bitmap row.
func (g Glyph) RowBytes() int {
	return (g.Width + 7) >> 3
}

// Bit reports whether the pixel at column x, row y of the glyph is set.
// Coordinates outside the glyph, or bytes past the end of the resource, read
// as unset.
func (g Glyph) Bit(x, y int) bool {
	if g.font == nil || x < 0 || y < 0 || x >= g.Width || y >= g.font.height {
		return false
	}
	i := g.Offset + y*g.RowBytes() + x>>3
	if i >= len(g.font.data) {
		return false
	}
	return g.font.data[i]>>(uint(x)&7)&1 != 0
}
