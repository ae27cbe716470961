package canvas

// DrawLine draws a straight line between two points, both included.
//
// Horizontal and vertical lines take the fast paths. Other lines use integer
// Bresenham stepping; pixels falling outside the canvas are clipped one by one.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col Color) {
	if y0 == y1 {
		c.DrawHLine(x0, y0, x1, col)
		return
	}
	if x0 == x1 {
		c.DrawVLine(x0, y0, y1, col)
		return
	}

	steep := abs(x1-x0) < abs(y1-y0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	step := 1
	if y1 < y0 {
		step = -1
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2

	for y := y0; x0 <= x1; x0++ {
		if steep {
			c.SetPixel(y, x0, col)
		} else {
			c.SetPixel(x0, y, col)
		}
		err -= dy
		if err < 0 {
			err += dx
			y += step
		}
	}
}

// DrawHLine draws the horizontal run from x0 to x1 on row y. The endpoints
// may come in any order and are clipped to the canvas independently; a row
// outside the canvas draws nothing.
func (c *Canvas) DrawHLine(x0, y, x1 int, col Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	c.span(x0, x1, y, col)
}

// DrawVLine draws the vertical run from y0 to y1 in column x, with the same
// clipping rules as DrawHLine.
func (c *Canvas) DrawVLine(x, y0, y1 int, col Color) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	c.column(x, y0, y1, col)
}

// span draws x0..x1 on row y. Nothing is drawn when x0 > x1.
func (c *Canvas) span(x0, x1, y int, col Color) {
	if y < 0 || y >= c.h {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= c.w {
		x1 = c.w - 1
	}
	for x := x0; x <= x1; x++ {
		c.SetPixel(x, y, col)
	}
}

// column draws y0..y1 in column x. Nothing is drawn when y0 > y1.
func (c *Canvas) column(x, y0, y1 int, col Color) {
	if x < 0 || x >= c.w {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 >= c.h {
		y1 = c.h - 1
	}
	for y := y0; y <= y1; y++ {
		c.SetPixel(x, y, col)
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
