package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/flavioheleno/ssd1306"
	"github.com/flavioheleno/ssd1306/bitfont"
	"github.com/flavioheleno/ssd1306/fontconv"
	"github.com/flavioheleno/ssd1306/internal/emulator"
	"github.com/flavioheleno/ssd1306/luascene"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

//go:embed demo.lua
var demoScript string

// sim is a driver talking to an emulated panel, with a Lua scene drawing
// into it.
type sim struct {
	emu    *emulator.Panel
	dev    *ssd1306.Dev
	scene  *luascene.Scene
	frame  int
	frames int
}

func newSim(cfg config, log *slog.Logger) (*sim, error) {
	emu := emulator.New(cfg.Width, cfg.Height, ssd1306.DefaultAddr)
	dev, err := ssd1306.New(emu, &ssd1306.Opts{
		W:             cfg.Width,
		H:             cfg.Height,
		PartialUpdate: cfg.Partial,
		Logger:        log,
	})
	if err != nil {
		return nil, err
	}

	basic, err := fontconv.FromFace(basicfont.Face7x13, ' ', '~', nil)
	if err != nil {
		return nil, err
	}
	f := basic
	if cfg.Font != "" {
		if f, err = loadFont(cfg.Font, cfg.FontSize); err != nil {
			return nil, err
		}
	}
	dev.SetFont(f)

	s := &sim{
		emu: emu,
		dev: dev,
		scene: luascene.New(dev.Canvas,
			luascene.WithDisplay(dev.Display),
			luascene.WithFont("default", f),
			luascene.WithFont("basic", basic),
		),
		frames: cfg.Frames,
	}
	if cfg.Script != "" {
		err = s.scene.DoFile(cfg.Script)
	} else {
		err = s.scene.DoString(demoScript)
	}
	if err != nil {
		s.close()
		return nil, err
	}
	if err := dev.Display(); err != nil {
		s.close()
		return nil, err
	}
	log.Debug("oledsim: scene loaded", "panel", emu.String(), "script", cfg.Script)
	return s, nil
}

// loadFont converts the Latin-1 range of a TTF or OTF file.
func loadFont(path string, size float64) (*bitfont.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
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
	return fontconv.FromFace(face, ' ', 0xFF, nil)
}

// step renders the next frame and flushes it. done reports that the frame
// limit was reached.
func (s *sim) step() (done bool, err error) {
	animated, err := s.scene.Frame(s.frame)
	if err != nil {
		return true, err
	}
	if animated {
		if err := s.dev.Display(); err != nil {
			return true, err
		}
	}
	s.frame++
	return s.frames > 0 && s.frame >= s.frames, nil
}

func (s *sim) close() {
	s.scene.Close()
	if err := s.dev.Halt(); err != nil {
		slog.Warn("oledsim: halt", "err", err)
	}
}
