package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// game shows the emulated glass in a desktop window.
type game struct {
	sim *sim
	pal palette
	w   int
	h   int
	buf []byte
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	done, err := g.sim.step()
	if err != nil {
		return err
	}
	if done {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	on, off := g.pal.colors(g.sim.emu.Status().Contrast)
	g.buf = toRGBA(g.sim.emu.Image(), on, off, g.buf)
	screen.WritePixels(g.buf)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

// runWindow blocks until the window is closed or the frame limit is hit.
func runWindow(s *sim, cfg config, pal palette) error {
	ebiten.SetWindowTitle("oledsim " + s.dev.String())
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.FPS)

	err := ebiten.RunGame(&game{sim: s, pal: pal, w: cfg.Width, h: cfg.Height})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
