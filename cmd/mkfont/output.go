package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/flavioheleno/ssd1306/bitfont"
)

// writeGo writes a Go source file declaring the resource as a *bitfont.Font
// variable.
func writeGo(w io.Writer, f *bitfont.Font, pkg, name, comment string) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by mkfont; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import \"github.com/flavioheleno/ssd1306/bitfont\"\n\n")
	if comment != "" {
		fmt.Fprintf(&buf, "// %s %s\n", name, comment)
	}
	fmt.Fprintf(&buf, "var %s = bitfont.MustParse([]byte{\n", name)
	data := f.Bytes()
	for i := 0; i < len(data); i += 16 {
		end := min(i+16, len(data))
		parts := make([]string, 0, end-i)
		for _, b := range data[i:end] {
			parts = append(parts, fmt.Sprintf("0x%02x", b))
		}
		fmt.Fprintf(&buf, "%s,\n", strings.Join(parts, ", "))
	}
	fmt.Fprintf(&buf, "})\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// preview draws every non-empty glyph as text art.
func preview(w io.Writer, f *bitfont.Font) error {
	for c := uint32(f.First()); c <= uint32(f.Last()); c++ {
		g, ok := f.Glyph(uint16(c))
		if !ok || g.Width == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "0x%02X %q width %d\n", c, rune(c), g.Width); err != nil {
			return err
		}
		for y := 0; y < f.Height(); y++ {
			row := make([]byte, g.Width)
			for x := range row {
				row[x] = '.'
				if g.Bit(x, y) {
					row[x] = '#'
				}
			}
			if _, err := fmt.Fprintf(w, "%s\n", row); err != nil {
				return err
			}
		}
	}
	return nil
}
