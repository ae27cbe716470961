// Command mkfont compiles fonts into the bitmap resources drawn by the
// canvas text engine.
//
// Usage:
//
//	mkfont -src goregular -size 12 -o font.bin
//	mkfont -src proggy -format go -pkg fonts -var Proggy -o proggy.go
//	mkfont -src ./MyFont.ttf -first 0x20 -last 0xff -preview
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/flavioheleno/ssd1306/fontconv"
)

var (
	src       = flag.String("src", "basic7x13", "Font: basic7x13, proggy, goregular, gomono, gobold or a TTF/OTF path")
	size      = flag.Float64("size", 12, "Size in pixels for outline fonts")
	firstChar = flag.String("first", "0x20", "First character code")
	lastChar  = flag.String("last", "0x7e", "Last character code")
	threshold = flag.Uint("threshold", fontconv.DefaultThreshold, "Alpha (1-255) at which a pixel is lit")
	outFormat = flag.String("format", "bin", "Output format: bin or go")
	pkg       = flag.String("pkg", "fonts", "Package name for Go output")
	varName   = flag.String("var", "Font", "Variable name for Go output")
	out       = flag.String("o", "", "Output file (default: stdout)")
	show      = flag.Bool("preview", false, "Print the glyphs as text art to stderr")
)

func main() {
	flag.Parse()

	first, err := parseChar(*firstChar)
	if err != nil {
		log.Fatalf("Invalid -first: %v", err)
	}
	last, err := parseChar(*lastChar)
	if err != nil {
		log.Fatalf("Invalid -last: %v", err)
	}
	if *threshold < 1 || *threshold > 255 {
		log.Fatalf("Invalid -threshold %d", *threshold)
	}

	f, err := convert(*src, *size, first, last, &fontconv.Options{Threshold: uint8(*threshold)})
	if err != nil {
		log.Fatalf("Failed to convert %s: %v", *src, err)
	}
	if *show {
		if err := preview(os.Stderr, f); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
	}

	var buf bytes.Buffer
	switch *outFormat {
	case "bin":
		buf.Write(f.Bytes())
	case "go":
		comment := fmt.Sprintf("is %s rendered at %gpx, characters 0x%02X..0x%02X.", *src, *size, first, last)
		if err := writeGo(&buf, f, *pkg, *varName, comment); err != nil {
			log.Fatalf("Failed to generate Go source: %v", err)
		}
	default:
		log.Fatalf("Unknown format %q", *outFormat)
	}

	if *out == "" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		return
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
}

// parseChar accepts a number in Go syntax (32, 0x20, 0o40) or a single
// character.
func parseChar(s string) (rune, error) {
	if v, err := strconv.ParseInt(s, 0, 32); err == nil {
		return rune(v), nil
	}
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("%q is neither a number nor a single character", s)
	}
	return r[0], nil
}
