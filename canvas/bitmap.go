package canvas

// DrawXBM draws an XBM image with its top-left corner at (x0, y0).
//
// The image is row-major with each row padded to whole bytes; within a byte
// the least significant bit is the leftmost pixel, as in X11 bitmap files.
// Only set bits are drawn, in col; clear bits leave the canvas untouched.
//
// Rows running past the bottom of the canvas are skipped. Columns are not
// clipped against the canvas width beyond the per-pixel clipping, so images
// are expected to fit horizontally. A bitmap shorter than its stated size
// ends the blit at the last complete byte.
func (c *Canvas) DrawXBM(bitmap []byte, w, h, x0, y0 int, col Color) {
	c.blit(bitmap, w, h, x0, y0, col, false)
}

// DrawBitmap is like DrawXBM for images packed most significant bit first,
// the layout produced by most image-to-C converters.
func (c *Canvas) DrawBitmap(bitmap []byte, w, h, x0, y0 int, col Color) {
	c.blit(bitmap, w, h, x0, y0, col, true)
}

func (c *Canvas) blit(bitmap []byte, w, h, x0, y0 int, col Color, msbFirst bool) {
	if w <= 0 || h <= 0 {
		return
	}
	if y0+h > c.h {
		h = c.h - y0
	}

	stride := (w + 7) >> 3
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*stride + x>>3
			if i >= len(bitmap) {
				return
			}
			shift := uint(x & 7)
			if msbFirst {
				shift = 7 - shift
			}
			if bitmap[i]>>shift&1 != 0 {
				c.SetPixel(x0+x, y0+y, col)
			}
		}
	}
}
