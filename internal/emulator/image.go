package emulator

import (
	"image"

	"github.com/flavioheleno/ssd1306/image1bit"
)

// RAM returns a copy of the GDDRAM area backing a w×h glass, in RAM order:
// column 0 on the left, page 0 on top, no remapping applied.
func (p *Panel) RAM() *image1bit.VerticalLSB {
	p.mu.Lock()
	defer p.mu.Unlock()
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, p.w, p.h))
	for pg := 0; pg < img.Pages(); pg++ {
		copy(img.Pix[pg*img.Stride:(pg+1)*img.Stride], p.ram[pg][:p.w])
	}
	return img
}

// Image renders what the glass shows.
//
// The orientation the driver sets at init, segment remap and COM remap both
// on, shows RAM upright. Clearing either mirrors the picture on that axis.
// Start line and display offset shift rows, and display off, entire display
// on and inverse are applied last.
func (p *Panel) Image() *image1bit.VerticalLSB {
	p.mu.Lock()
	defer p.mu.Unlock()
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, p.w, p.h))
	if !p.displayOn {
		return img
	}

	for y := 0; y < p.h; y++ {
		if y > p.mux {
			break
		}
		row := y
		if !p.comRemap {
			row = p.h - 1 - y
		}
		ramRow := (row + p.startLine + p.offset) % ramRows
		for x := 0; x < p.w; x++ {
			col := x
			if !p.segRemap {
				col = p.w - 1 - x
			}
			lit := p.ram[ramRow>>3][col]>>(ramRow&7)&1 != 0
			if p.entireOn {
				lit = true
			}
			if p.inverse {
				lit = !lit
			}
			if lit {
				img.SetBit(x, y, image1bit.On)
			}
		}
	}
	return img
}
