package imcore

// NavDirection is a keyboard focus movement.
type NavDirection int

const (
	NavNext NavDirection = iota // Tab
	NavPrev                     // Shift+Tab
	NavUp
	NavDown
	NavLeft
	NavRight
)

// focusableItem is one keyboard-focusable widget seen during a frame.
type focusableItem struct {
	ID     ID
	Rect   Rect
	Window *Window
}

// focusRegistry tracks focusable widgets per frame.
//
// Widgets register while they are declared, but navigation keys are handled
// at frame start before any widget runs, so the registry is double-buffered:
// navigation walks the previous frame's items while the current frame
// builds the next list.
type focusRegistry struct {
	prevItems []focusableItem
	items     []focusableItem
}

func newFocusRegistry() *focusRegistry {
	return &focusRegistry{
		prevItems: make([]focusableItem, 0, 64),
		items:     make([]focusableItem, 0, 64),
	}
}

// resetForFrame swaps the buffers: current items become previous.
func (r *focusRegistry) resetForFrame() {
	r.prevItems, r.items = r.items, r.prevItems
	r.items = r.items[:0]
}

func (r *focusRegistry) register(id ID, rect Rect, w *Window) {
	r.items = append(r.items, focusableItem{ID: id, Rect: rect, Window: w})
}

func (r *focusRegistry) indexOf(id ID) int {
	if id == 0 {
		return -1
	}
	for i := range r.prevItems {
		if r.prevItems[i].ID == id {
			return i
		}
	}
	return -1
}

// navigate returns the item focus should move to from current, or 0.
// Tab order wraps; directional moves pick the nearest item that way.
func (r *focusRegistry) navigate(current ID, dir NavDirection) ID {
	n := len(r.prevItems)
	if n == 0 {
		return 0
	}
	idx := r.indexOf(current)
	if idx < 0 {
		if dir == NavPrev || dir == NavUp {
			return r.prevItems[n-1].ID
		}
		return r.prevItems[0].ID
	}

	switch dir {
	case NavNext:
		return r.prevItems[(idx+1)%n].ID
	case NavPrev:
		return r.prevItems[(idx-1+n)%n].ID
	}

	cur := r.prevItems[idx].Rect
	best := -1
	bestDist := float32(1e9)
	for i, item := range r.prevItems {
		if i == idx {
			continue
		}
		dx := item.Rect.X - cur.X
		dy := item.Rect.Y - cur.Y
		var dist float32
		switch dir {
		case NavUp:
			if dy >= 0 {
				continue
			}
			dist = -dy + absf(dx)*2 // Penalize horizontal distance
		case NavDown:
			if dy <= 0 {
				continue
			}
			dist = dy + absf(dx)*2
		case NavLeft:
			if dx >= 0 {
				continue
			}
			dist = -dx + absf(dy)*2 // Penalize vertical distance
		case NavRight:
			if dx <= 0 {
				continue
			}
			dist = dx + absf(dy)*2
		}
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	if best < 0 {
		return 0
	}
	return r.prevItems[best].ID
}

// RegisterFocusable marks the last item as reachable by keyboard navigation.
// Returns true when the item holds keyboard focus.
func (ctx *Context) RegisterFocusable(id ID) bool {
	w := ctx.mustWindow("RegisterFocusable")
	if id == 0 || ctx.disabledDepth > 0 {
		return false
	}
	ctx.focusNav.register(id, ctx.lastItem.Rect, w)
	return ctx.focusedID == id
}

// NavigateFocus moves keyboard focus among the previous frame's focusable
// items. It returns false when there is nowhere to go.
func (ctx *Context) NavigateFocus(dir NavDirection) bool {
	target := ctx.focusNav.navigate(ctx.focusedID, dir)
	if target == 0 || target == ctx.focusedID {
		return false
	}
	if verbose() {
		ctx.logger.Debug("focus navigated", "from", ctx.focusedID, "to", target, "dir", dir)
	}
	for _, item := range ctx.focusNav.prevItems {
		if item.ID == target {
			ctx.focusWindow(item.Window)
			break
		}
	}
	ctx.SetFocusID(target)
	ctx.focusRequestID = target
	return true
}

// handleTabNavigation runs at frame start.
func (ctx *Context) handleTabNavigation() {
	if !ctx.Input.KeyPressedRepeat(KeyTab) || ctx.Input.KeyCtrl || ctx.Input.KeyAlt {
		return
	}
	dir := NavNext
	if ctx.Input.KeyShift {
		dir = NavPrev
	}
	ctx.NavigateFocus(dir)
}
