package canvas

import (
	"image"

	"github.com/flavioheleno/ssd1306/bitfont"
	"golang.org/x/text/encoding"
)

// Style holds the text parameters applied to every glyph.
type Style struct {
	Scale         int   // Pixel size multiplier, at least 1
	LetterSpacing int   // Pixels added after every character
	LineSpacing   int   // Pixels added between text rows
	Color         Color // Color of glyph pixels
	OffsetX       int   // Added to the cursor position of every glyph
	OffsetY       int
}

// DefaultStyle returns the style of a new Canvas.
func DefaultStyle() Style {
	return Style{
		Scale:         1,
		LetterSpacing: 1,
		LineSpacing:   1,
		Color:         On,
	}
}

// SetFont binds f for all subsequent text operations. The font is borrowed,
// not copied. A nil font leaves only space, newline and carriage return with
// any effect.
func (c *Canvas) SetFont(f *bitfont.Font) {
	c.font = f
}

// Font returns the bound font, or nil.
func (c *Canvas) Font() *bitfont.Font {
	return c.font
}

// Style returns the current text style.
func (c *Canvas) Style() Style {
	return c.style
}

// SetStyle replaces the whole text style. A scale below 1 is raised to 1.
func (c *Canvas) SetStyle(s Style) {
	if s.Scale < 1 {
		s.Scale = 1
	}
	c.style = s
}

// SetTextScale sets the glyph pixel multiplier. Values below 1 mean 1.
func (c *Canvas) SetTextScale(scale int) {
	if scale < 1 {
		scale = 1
	}
	c.style.Scale = scale
}

// SetLetterSpacing sets the pixels added after every character.
func (c *Canvas) SetLetterSpacing(px int) { c.style.LetterSpacing = px }

// SetLineSpacing sets the pixels added between text rows.
func (c *Canvas) SetLineSpacing(px int) { c.style.LineSpacing = px }

// SetTextColor sets the color glyph pixels are drawn with.
func (c *Canvas) SetTextColor(col Color) { c.style.Color = col }

// SetTextOffset sets the offset added to every glyph position.
func (c *Canvas) SetTextOffset(x, y int) {
	c.style.OffsetX = x
	c.style.OffsetY = y
}

// Cursor returns the text cursor position in pixels.
func (c *Canvas) Cursor() image.Point {
	return c.cursor
}

// SetCursor moves the cursor to pixel column col of text row row.
func (c *Canvas) SetCursor(col, row int) {
	c.cursor.X = col
	c.cursor.Y = row * c.lineHeight()
}

// SetCursorCoords moves the cursor to pixel coordinates (x, y).
func (c *Canvas) SetCursorCoords(x, y int) {
	c.cursor = image.Point{X: x, Y: y}
}

// SetCursorColumn moves the cursor to pixel column col, keeping the row.
func (c *Canvas) SetCursorColumn(col int) {
	c.cursor.X = col
}

// SetCursorRow moves the cursor to text row row, keeping the column.
func (c *Canvas) SetCursorRow(row int) {
	c.cursor.Y = row * c.lineHeight()
}

// AdvanceRow moves the cursor n text rows down and to pixel column col.
func (c *Canvas) AdvanceRow(n, col int) {
	c.cursor.Y += n * c.lineHeight()
	c.cursor.X = col
}

// FontHeight returns the scaled glyph height, or 0 without a font.
func (c *Canvas) FontHeight() int {
	if c.font == nil {
		return 0
	}
	return c.font.Height() * c.style.Scale
}

func (c *Canvas) lineHeight() int {
	return c.FontHeight() + c.style.LineSpacing
}

// CharWidth returns how far ch moves the cursor horizontally.
func (c *Canvas) CharWidth(ch byte) int {
	switch ch {
	case ' ':
		return c.style.Scale + c.style.LetterSpacing
	case '\n', '\r':
		return 0
	}
	if c.font == nil {
		return 0
	}
	g, ok := c.font.Glyph(uint16(ch))
	if !ok {
		return 0
	}
	return g.Width*c.style.Scale + c.style.LetterSpacing
}

// WriteChar draws one character at the cursor and advances it.
//
// Newline returns to column 0 of the next row, carriage return does nothing
// and space only advances. Characters the font does not cover are skipped
// without moving the cursor.
func (c *Canvas) WriteChar(ch byte) {
	s := c.style
	switch ch {
	case '\n':
		c.cursor.X = 0
		c.cursor.Y += c.lineHeight()
		return
	case '\r':
		return
	case ' ':
		c.cursor.X += s.Scale + s.LetterSpacing
		return
	}
	if c.font == nil {
		return
	}
	g, ok := c.font.Glyph(uint16(ch))
	if !ok {
		return
	}

	ox := s.OffsetX + c.cursor.X
	oy := s.OffsetY + c.cursor.Y
	for row := 0; row < c.font.Height(); row++ {
		for col := 0; col < g.Width; col++ {
			if !g.Bit(col, row) {
				continue
			}
			if s.Scale == 1 {
				c.SetPixel(ox+col, oy+row, s.Color)
				continue
			}
			c.FillRect(ox+col*s.Scale, oy+row*s.Scale, s.Scale, s.Scale, s.Color)
		}
	}
	c.cursor.X += g.Width*s.Scale + s.LetterSpacing
}

// Write draws p as raw character codes. It implements io.Writer and never
// fails.
func (c *Canvas) Write(p []byte) (int, error) {
	for _, ch := range p {
		c.WriteChar(ch)
	}
	return len(p), nil
}

// WriteString encodes s to the canvas code page and draws it. It implements
// io.StringWriter and never fails.
func (c *Canvas) WriteString(s string) (int, error) {
	c.emit(c.encode(s))
	return len(s), nil
}

// MeasureText returns the width in pixels of the widest line of s as
// WriteString would draw it. Nothing is drawn and the cursor does not move.
func (c *Canvas) MeasureText(s string) int {
	most, cur := 0, 0
	for _, ch := range c.encode(s) {
		if ch == '\n' {
			if cur > most {
				most = cur
			}
			cur = 0
			continue
		}
		cur += c.CharWidth(ch)
	}
	if cur > most {
		most = cur
	}
	return most
}

// encode converts UTF-8 text to character codes. Runes the code page cannot
// represent become its substitute byte.
func (c *Canvas) encode(s string) []byte {
	if c.enc == nil {
		return []byte(s)
	}
	b, err := encoding.ReplaceUnsupported(c.enc.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return b
}
