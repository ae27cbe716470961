package main

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
)

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// runTerm draws the glass with half blocks, one cell per two rows, until q,
// Escape or Ctrl-C is pressed or the frame limit is hit.
func runTerm(ctx context.Context, s *sim, cfg config, pal palette) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()
	for {
		drawTerm(screen, s, pal)
		select {
		case <-ctx.Done():
			return nil
		case <-quit:
			return nil
		case <-ticker.C:
		}
		done, err := s.step()
		if err != nil {
			return err
		}
		if done {
			drawTerm(screen, s, pal)
			return nil
		}
	}
}

func drawTerm(screen tcell.Screen, s *sim, pal palette) {
	img := s.emu.Image()
	on, off := pal.colors(s.emu.Status().Contrast)
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top, bottom := off, off
			if img.BitAt(x, y) {
				top = on
			}
			if img.BitAt(x, y+1) {
				bottom = on
			}
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
	screen.Show()
}

// runText steps through the frames without a display and writes the last
// one to w as text.
func runText(ctx context.Context, s *sim, w io.Writer) error {
	for {
		if ctx.Err() != nil {
			break
		}
		done, err := s.step()
		if err != nil {
			return err
		}
		if done || s.frames == 0 {
			break
		}
	}
	_, err := io.WriteString(w, textFrame(s.emu.Image()))
	return err
}
