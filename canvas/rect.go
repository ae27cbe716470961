package canvas

// DrawRect draws the outline of a w×h rectangle with its top-left corner at
// (x, y). Every outline pixel is written exactly once, so Invert outlines
// come out whole.
func (c *Canvas) DrawRect(x, y, w, h int, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	right, bottom := x+w-1, y+h-1

	c.span(x, right, y, col)
	if h == 1 {
		return
	}
	c.column(right, y+1, bottom, col)
	if w == 1 {
		return
	}
	c.span(x, right-1, bottom, col)
	c.column(x, y+1, bottom-1, col)
}

// FillRect fills a w×h rectangle with its top-left corner at (x, y).
func (c *Canvas) FillRect(x, y, w, h int, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	for i := 0; i < h; i++ {
		c.span(x, x+w-1, y+i, col)
	}
}

// DrawRoundRect draws the outline of a rectangle whose corners are quarter
// circles of radius r. r must not exceed min(w, h)/2; larger values produce
// overlapping corners.
func (c *Canvas) DrawRoundRect(x, y, w, h, r int, col Color) {
	if w < 1 || h < 1 || r < 0 {
		return
	}
	right, bottom := x+w-1, y+h-1

	c.DrawCircleQuarter(right-r, y+r, r, TopRight, col)
	c.DrawCircleQuarter(x+r, y+r, r, TopLeft, col)
	c.DrawCircleQuarter(x+r, bottom-r, r, BottomLeft, col)
	c.DrawCircleQuarter(right-r, bottom-r, r, BottomRight, col)

	c.span(x+r+1, right-r-1, y, col)
	c.column(right, y+r+1, bottom-r-1, col)
	c.span(x+r+1, right-r-1, bottom, col)
	c.column(x, y+r+1, bottom-r-1, col)
}

// FillRoundRect fills a rectangle whose corners are quarter circles of
// radius r, with the same constraint on r as DrawRoundRect.
func (c *Canvas) FillRoundRect(x, y, w, h, r int, col Color) {
	if w < 1 || h < 1 || r < 0 {
		return
	}
	right, bottom := x+w-1, y+h-1

	c.FillCircleQuarter(right-r, y+r, r, TopRight, col)
	c.FillCircleQuarter(x+r, y+r, r, TopLeft, col)
	c.FillCircleQuarter(x+r, bottom-r, r, BottomLeft, col)
	c.FillCircleQuarter(right-r, bottom-r, r, BottomRight, col)

	for i := 0; i < h; i++ {
		if i <= r || i >= h-1-r {
			// Corner rows: only the part between the two arcs.
			c.span(x+r+1, right-r-1, y+i, col)
		} else {
			c.span(x, right, y+i, col)
		}
	}
}
