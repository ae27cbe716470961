// Command oledsim runs a Lua scene against an emulated SSD1306 panel and
// shows the result in a window, in the terminal or as text.
//
// The whole driver stack runs for real: every frame is flushed as I²C
// command and data transfers that the emulator decodes into its display RAM.
//
// Usage:
//
//	oledsim [-config sim.json] [-script scene.lua] [-mode auto|window|term|text]
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"golang.org/x/term"
)

var (
	configPath = flag.String("config", "", "JSON configuration file")
	width      = flag.Int("width", 128, "Panel width in pixels")
	height     = flag.Int("height", 64, "Panel height in pixels")
	scale      = flag.Int("scale", 4, "Window pixels per panel pixel")
	mode       = flag.String("mode", "auto", "Output: auto, window, term or text")
	tint       = flag.String("tint", "#4fc3f7", "Lit pixel color")
	background = flag.String("bg", "#05080a", "Dark pixel color")
	fps        = flag.Int("fps", 30, "Frames per second")
	frames     = flag.Int("frames", 0, "Stop after N frames (0 = run until closed)")
	partial    = flag.Bool("partial", true, "Flush only the changed region")
	script     = flag.String("script", "", "Lua scene (default: built-in demo)")
	fontPath   = flag.String("font", "", "TTF/OTF font (default: built-in 7x13)")
	fontSize   = flag.Float64("size", 10, "Font size in pixels")
	verbose    = flag.Bool("v", false, "Log driver activity")
)

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := defaultConfig()
	if *configPath != "" {
		if err := cfg.loadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	applyFlags(&cfg)
	if err := cfg.validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	pal, err := newPalette(cfg.Tint, cfg.Background)
	if err != nil {
		log.Fatalf("Invalid colors: %v", err)
	}

	s, err := newSim(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to start simulator: %v", err)
	}
	defer s.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := cfg.Mode
	if m == "auto" {
		m = detectMode()
	}
	logger.Debug("oledsim: starting", "mode", m, "panel", s.dev.String())

	switch m {
	case "window":
		err = runWindow(s, cfg, pal)
	case "term":
		err = runTerm(ctx, s, cfg, pal)
	default:
		err = runText(ctx, s, os.Stdout)
	}
	if err != nil {
		log.Fatalf("Simulator stopped: %v", err)
	}
}

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(cfg *config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "scale":
			cfg.Scale = *scale
		case "mode":
			cfg.Mode = *mode
		case "tint":
			cfg.Tint = *tint
		case "bg":
			cfg.Background = *background
		case "fps":
			cfg.FPS = *fps
		case "frames":
			cfg.Frames = *frames
		case "partial":
			cfg.Partial = *partial
		case "script":
			cfg.Script = *script
		case "font":
			cfg.Font = *fontPath
		case "size":
			cfg.FontSize = *fontSize
		}
	})
}

// detectMode picks the terminal preview on a Linux console without a
// graphical session, text when stdout is not a terminal, and the window
// otherwise.
func detectMode() string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return "text"
	}
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return "term"
	}
	return "window"
}
