package canvas

// Quadrant selects one quarter of a circle.
//
//	|---|---|
//	| 1 | 0 |
//	|---|---|
//	| 2 | 3 |
//	|---|---|
type Quadrant uint8

const (
	TopRight    Quadrant = 0
	TopLeft     Quadrant = 1
	BottomLeft  Quadrant = 2
	BottomRight Quadrant = 3
)

// The circle routines walk one octant starting at (r, 0). Each step moves y
// down by one and pulls x in by one whenever x²+y² exceeds r²+r, until x
// drops below y. The other octants are reflections.

// DrawCircle draws the outline of a circle. Radius 0 draws the center pixel.
func (c *Canvas) DrawCircle(mx, my, r int, col Color) {
	if r < 0 {
		return
	}
	x, y, threshold := r, 0, r*r+r

	c.SetPixel(mx+r, my, col)
	if r != 0 {
		c.SetPixel(mx, my+r, col)
		c.SetPixel(mx, my-r, col)
		c.SetPixel(mx-r, my, col)
	}

	for x > y {
		y++
		if x*x+y*y > threshold {
			x--
		}
		if x < y {
			break
		}

		c.SetPixel(mx+x, my+y, col)
		c.SetPixel(mx+x, my-y, col)
		c.SetPixel(mx-x, my+y, col)
		c.SetPixel(mx-x, my-y, col)
		if x != y {
			c.SetPixel(mx+y, my+x, col)
			c.SetPixel(mx+y, my-x, col)
			c.SetPixel(mx-y, my+x, col)
			c.SetPixel(mx-y, my-x, col)
		}
	}
}

// DrawCircleQuarter draws the outline of one quadrant of a circle. An unknown
// quadrant draws nothing, except the center pixel when r is 0.
func (c *Canvas) DrawCircleQuarter(mx, my, r int, q Quadrant, col Color) {
	if r < 0 {
		return
	}
	x, y, threshold := r, 0, r*r+r
	sx, sy := q.signs()

	if r == 0 {
		c.SetPixel(mx, my, col)
	} else {
		switch q {
		case TopRight:
			c.SetPixel(mx+r, my, col)
			c.SetPixel(mx, my-r, col)
		case TopLeft:
			c.SetPixel(mx, my-r, col)
			c.SetPixel(mx-r, my, col)
		case BottomLeft:
			c.SetPixel(mx-r, my, col)
			c.SetPixel(mx, my+r, col)
		case BottomRight:
			c.SetPixel(mx, my+r, col)
			c.SetPixel(mx+r, my, col)
		}
	}

	for x > y {
		y++
		if x*x+y*y > threshold {
			x--
		}
		if x < y {
			break
		}
		if sx == 0 {
			continue
		}
		c.SetPixel(mx+sx*x, my+sy*y, col)
		if x != y {
			c.SetPixel(mx+sx*y, my+sy*x, col)
		}
	}
}

// FillCircle draws a filled circle as a stack of horizontal spans.
func (c *Canvas) FillCircle(mx, my, r int, col Color) {
	if r < 0 {
		return
	}
	x, y, threshold := r, 0, r*r+r
	c.span(mx-x, mx+x, my, col)

	for x > y {
		y++
		if x*x+y*y > threshold {
			// Row ±x is left behind: close it with the width reached so far.
			c.span(mx-y+1, mx+y-1, my-x, col)
			c.span(mx-y+1, mx+y-1, my+x, col)
			x--
		}
		if x < y {
			break
		}
		c.span(mx-x, mx+x, my+y, col)
		c.span(mx-x, mx+x, my-y, col)
	}
}

// FillCircleQuarter fills one quadrant of a circle. Spans include the center
// column and the center row.
func (c *Canvas) FillCircleQuarter(mx, my, r int, q Quadrant, col Color) {
	if r < 0 {
		return
	}
	sx, sy := q.signs()
	if sx == 0 {
		return
	}
	x, y, threshold := r, 0, r*r+r
	c.quarterSpan(mx, mx+sx*x, my, col)

	for x > y {
		y++
		if x*x+y*y > threshold {
			c.quarterSpan(mx, mx+sx*(y-1), my+sy*x, col)
			x--
		}
		if x < y {
			break
		}
		c.quarterSpan(mx, mx+sx*x, my+sy*y, col)
	}
}

// quarterSpan draws between the center column and the outer edge x, in
// whichever order they come.
func (c *Canvas) quarterSpan(center, edge, y int, col Color) {
	if edge < center {
		center, edge = edge, center
	}
	c.span(center, edge, y, col)
}

// signs returns the direction of the quadrant along each axis, in screen
// coordinates (y grows downwards). Unknown quadrants return zeros.
func (q Quadrant) signs() (sx, sy int) {
	switch q {
	case TopRight:
		return 1, -1
	case TopLeft:
		return -1, -1
	case BottomLeft:
		return -1, 1
	case BottomRight:
		return 1, 1
	}
	return 0, 0
}
