package main

import (
	"fmt"
	"os"

	"github.com/flavioheleno/ssd1306/bitfont"
	"github.com/flavioheleno/ssd1306/fontconv"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"tinygo.org/x/tinyfont/proggy"
)

// builtin lists the fonts mkfont can convert without a file.
var builtin = map[string][]byte{
	"goregular": goregular.TTF,
	"gomono":    gomono.TTF,
	"gobold":    gobold.TTF,
}

// convert renders first..last of src. src is "basic7x13", "proggy", one of
// the Go fonts in builtin, or the path of a TTF/OTF file.
func convert(src string, size float64, first, last rune, opts *fontconv.Options) (*bitfont.Font, error) {
	switch src {
	case "basic7x13":
		return fontconv.FromFace(basicfont.Face7x13, first, last, opts)
	case "proggy":
		return fontconv.FromFonter(&proggy.TinySZ8pt7b, first, last, opts)
	}

	data, ok := builtin[src]
	if !ok {
		var err error
		if data, err = os.ReadFile(src); err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	defer face.Close()
	return fontconv.FromFace(face, first, last, opts)
}
