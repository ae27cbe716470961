package bitfont

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Builder assembles a font resource glyph by glyph.
type Builder struct {
	first, last uint16
	height      int
	glyphs      []glyphBits
}

type glyphBits struct {
	width int
	rows  []byte
}

// NewBuilder returns a Builder for characters first..last with the given
// glyph height. Glyphs not set explicitly are encoded with zero width.
func NewBuilder(first, last uint16, height int) (*Builder, error) {
	if last < first {
		return nil, fmt.Errorf("bitfont: last char 0x%X before first 0x%X", last, first)
	}
	if height <= 0 || height > 255 {
		return nil, errors.New("bitfont: height must be between 1 and 255")
	}
	return &Builder{
		first:  first,
		last:   last,
		height: height,
		glyphs: make([]glyphBits, int(last-first)+1),
	}, nil
}

// SetGlyph stores the bitmap of c. bit is called for every pixel of the
// width×height cell and reports whether it is lit.
func (b *Builder) SetGlyph(c uint16, width int, bit func(x, y int) bool) error {
	if c < b.first || c > b.last {
		return fmt.Errorf("bitfont: char 0x%X outside 0x%X..0x%X", c, b.first, b.last)
	}
	if width < 0 || width > 255 {
		return fmt.Errorf("bitfont: char 0x%X width %d out of range", c, width)
	}

	stride := (width + 7) >> 3
	rows := make([]byte, stride*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < width; x++ {
			if bit(x, y) {
				rows[y*stride+x>>3] |= 1 << uint(x&7)
			}
		}
	}
	b.glyphs[c-b.first] = glyphBits{width: width, rows: rows}
	return nil
}

// Bytes encodes the resource.
func (b *Builder) Bytes() ([]byte, error) {
	dir := HeaderSize + len(b.glyphs)*EntrySize
	size := dir
	for _, g := range b.glyphs {
		size += len(g.rows)
	}
	if size > 1<<24 {
		return nil, errors.New("bitfont: resource exceeds 24-bit offsets")
	}

	out := make([]byte, size)
	binary.LittleEndian.PutUint16(out[2:], b.first)
	binary.LittleEndian.PutUint16(out[4:], b.last)
	out[6] = byte(b.height)

	off := dir
	for i, g := range b.glyphs {
		e := out[HeaderSize+i*EntrySize:]
		e[0] = byte(g.width)
		e[1] = byte(off)
		e[2] = byte(off >> 8)
		e[3] = byte(off >> 16)
		off += copy(out[off:], g.rows)
	}
	return out, nil
}

// Font encodes the resource and parses it back.
func (b *Builder) Font() (*Font, error) {
	data, err := b.Bytes()
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// SetRows stores the bitmap of c from text art: one string per row, '#' or
// 'X' for a lit pixel, anything else for a dark one. The glyph width is the
// longest row; missing rows are blank.
func (b *Builder) SetRows(c uint16, rows ...string) error {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	return b.SetGlyph(c, width, func(x, y int) bool {
		if y >= len(rows) || x >= len(rows[y]) {
			return false
		}
		return rows[y][x] == '#' || rows[y][x] == 'X'
	})
}
