package imcore

// ListClipper virtualizes a long list of equal-height items: only the rows
// overlapping the window's clip rectangle are submitted, while the cursor
// still advances over the full list so scrolling stays correct.
//
//	clipper := ctx.BeginListClipper(len(rows), -1)
//	for clipper.Step() {
//	    for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
//	        ctx.Text(rows[i])
//	    }
//	}
type ListClipper struct {
	DisplayStart int     // First visible item index (inclusive)
	DisplayEnd   int     // Last visible item index (exclusive)
	ItemHeight   float32 // Height of each item including spacing
	TotalItems   int
	StartPosY    float32 // Screen Y of item 0

	ctx  *Context
	step int
}

// BeginListClipper starts clipping count items. itemHeight <= 0 measures
// the first item.
func (ctx *Context) BeginListClipper(count int, itemHeight float32) *ListClipper {
	w := ctx.mustWindow("BeginListClipper")
	return &ListClipper{
		TotalItems: count,
		ItemHeight: itemHeight,
		StartPosY:  w.DC.CursorPos.Y,
		ctx:        ctx,
	}
}

// Step yields the next range to submit and returns false when done.
func (c *ListClipper) Step() bool {
	w := c.ctx.mustWindow("ListClipper.Step")
	switch c.step {
	case 0:
		if c.TotalItems <= 0 {
			c.end(w)
			return false
		}
		if c.ItemHeight <= 0 {
			// Submit one item to measure it.
			c.step = 1
			c.DisplayStart, c.DisplayEnd = 0, 1
			return true
		}
		return c.stepVisible(w, 0)
	case 1:
		c.ItemHeight = maxf(1, w.DC.CursorPos.Y-c.StartPosY)
		return c.stepVisible(w, 1)
	default:
		c.end(w)
		return false
	}
}

func (c *ListClipper) stepVisible(w *Window, from int) bool {
	c.step = 2
	start, end := c.visibleRange(w)
	c.DisplayStart = max(start, from)
	c.DisplayEnd = max(end, c.DisplayStart)
	if c.DisplayStart >= c.DisplayEnd {
		c.end(w)
		return false
	}
	c.seek(w, c.DisplayStart)
	return true
}

// visibleRange maps the window clip rectangle onto item indices.
func (c *ListClipper) visibleRange(w *Window) (start, end int) {
	clip := w.ClipRect
	start = int((clip.Y - c.StartPosY) / c.ItemHeight)
	end = int((clip.Y+clip.H-c.StartPosY)/c.ItemHeight) + 1
	return clampi(start, 0, c.TotalItems), clampi(end, 0, c.TotalItems)
}

func (c *ListClipper) seek(w *Window, idx int) {
	y := c.StartPosY + float32(idx)*c.ItemHeight
	if w.DC.CursorPos.Y < y {
		c.ctx.setCursorScreenPos(w, Vec2{w.DC.CursorPos.X, y})
		w.DC.CursorPosPrevLine.Y = y - c.ItemHeight
	}
}

func (c *ListClipper) end(w *Window) {
	if c.step == 3 {
		return
	}
	c.step = 3
	c.seek(w, c.TotalItems)
	c.DisplayStart, c.DisplayEnd = c.TotalItems, c.TotalItems
}

// ContentHeight returns the height of the whole list.
func (c *ListClipper) ContentHeight() float32 {
	return float32(c.TotalItems) * c.ItemHeight
}

// ScrollToItem returns the scroll offset that brings item idx into a view
// of visibleHeight, or currentScroll when it is already visible.
func (c *ListClipper) ScrollToItem(idx int, currentScroll, visibleHeight float32) float32 {
	if idx < 0 || idx >= c.TotalItems {
		return currentScroll
	}
	top := float32(idx) * c.ItemHeight
	bottom := top + c.ItemHeight
	if top < currentScroll {
		return top
	}
	if bottom > currentScroll+visibleHeight {
		return bottom - visibleHeight
	}
	return currentScroll
}
