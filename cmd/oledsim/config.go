package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// config is the simulator setup. Values come from the defaults, then the
// JSON file given with -config, then flags set on the command line.
type config struct {
	Width      int
	Height     int
	Scale      int
	Mode       string // window, term, text or auto
	Tint       string // Lit pixel color, #rrggbb
	Background string // Dark pixel color, #rrggbb
	FPS        int
	Frames     int // 0 runs until closed
	Partial    bool
	Script     string
	Font       string // TTF/OTF path; empty selects the built-in 7x13 face
	FontSize   float64
}

func defaultConfig() config {
	return config{
		Width:      128,
		Height:     64,
		Scale:      4,
		Mode:       "auto",
		Tint:       "#4fc3f7",
		Background: "#05080a",
		FPS:        30,
		Partial:    true,
		FontSize:   10,
	}
}

// loadFile merges the JSON file at path into c.
func (c *config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return c.loadJSON(data)
}

// loadJSON merges the keys present in data into c:
//
//	{
//	  "panel":  {"width": 128, "height": 64, "partial": true},
//	  "window": {"scale": 4, "mode": "window", "fps": 30, "frames": 0},
//	  "colors": {"tint": "#4fc3f7", "background": "#05080a"},
//	  "script": "scene.lua",
//	  "font":   {"path": "font.ttf", "size": 10}
//	}
func (c *config) loadJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("config: invalid JSON")
	}
	doc := gjson.ParseBytes(data)

	setInt := func(path string, dst *int) {
		if v := doc.Get(path); v.Exists() {
			*dst = int(v.Int())
		}
	}
	setString := func(path string, dst *string) {
		if v := doc.Get(path); v.Exists() {
			*dst = v.String()
		}
	}

	setInt("panel.width", &c.Width)
	setInt("panel.height", &c.Height)
	if v := doc.Get("panel.partial"); v.Exists() {
		c.Partial = v.Bool()
	}
	setInt("window.scale", &c.Scale)
	setString("window.mode", &c.Mode)
	setInt("window.fps", &c.FPS)
	setInt("window.frames", &c.Frames)
	setString("colors.tint", &c.Tint)
	setString("colors.background", &c.Background)
	setString("script", &c.Script)
	setString("font.path", &c.Font)
	if v := doc.Get("font.size"); v.Exists() {
		c.FontSize = v.Float()
	}
	return nil
}

func (c config) validate() error {
	switch c.Mode {
	case "auto", "window", "term", "text":
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	if c.Scale < 1 {
		return errors.New("config: scale must be at least 1")
	}
	if c.FPS < 1 {
		return errors.New("config: fps must be at least 1")
	}
	if c.Frames < 0 {
		return errors.New("config: frames must not be negative")
	}
	if c.FontSize <= 0 {
		return errors.New("config: font size must be positive")
	}
	return nil
}
