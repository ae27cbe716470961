package canvas

import "image"

// Region is an inclusive bounding box of pixels written since the last reset.
type Region struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Rect converts the inclusive region into a half-open image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.MinX, r.MinY, r.MaxX+1, r.MaxY+1)
}

// Pages returns the first and last 8-pixel pages the region touches.
func (r Region) Pages() (first, last int) {
	return r.MinY >> 3, r.MaxY >> 3
}

// SetDirtyTracking turns the dirty-region tracker on or off. Turning it off
// discards any pending region.
func (c *Canvas) SetDirtyTracking(enabled bool) {
	c.track = enabled
	if !enabled {
		c.pending = false
	}
}

// DirtyTracking reports whether writes are being tracked.
func (c *Canvas) DirtyTracking() bool {
	return c.track
}

// Dirty returns the bounding box of the pixels written since the last
// ResetDirty. ok is false when nothing is pending; the Region is then
// meaningless.
func (c *Canvas) Dirty() (r Region, ok bool) {
	return c.dirty, c.pending
}

// ResetDirty forgets the pending region.
func (c *Canvas) ResetDirty() {
	c.pending = false
	c.dirty = Region{}
}

// MarkDirty grows the pending region to cover r, clipped to the canvas. It is
// used after writing to Image() directly.
func (c *Canvas) MarkDirty(r image.Rectangle) {
	r = r.Intersect(c.Bounds())
	if !c.track || r.Empty() {
		return
	}
	c.mark(r.Min.X, r.Min.Y)
	c.mark(r.Max.X-1, r.Max.Y-1)
}

func (c *Canvas) mark(x, y int) {
	if !c.pending {
		c.dirty = Region{MinX: x, MinY: y, MaxX: x, MaxY: y}
		c.pending = true
		return
	}
	if x < c.dirty.MinX {
		c.dirty.MinX = x
	}
	if x > c.dirty.MaxX {
		c.dirty.MaxX = x
	}
	if y < c.dirty.MinY {
		c.dirty.MinY = y
	}
	if y > c.dirty.MaxY {
		c.dirty.MaxY = y
	}
}
