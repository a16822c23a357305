package imcore

const tooltipWindowName = "##Tooltip"

// BeginTooltip opens a tooltip window next to the pointer. Several tooltips
// in one frame append to the same window.
func (ctx *Context) BeginTooltip() {
	if !ctx.withinFrame {
		panic(usageErrorf("BeginTooltip", msgNoFrame))
	}
	pos := ctx.Input.MousePos
	if !mousePosValid(pos) {
		pos = Vec2{}
	}
	ctx.SetNextWindowPos(pos.Add(Vec2{16, 10}), CondAlways)
	ctx.Begin(tooltipWindowName, nil,
		WindowTooltip|WindowNoTitleBar|WindowNoMove|WindowNoInputs|WindowAlwaysAutoResize|WindowNoCollapse|WindowNoFocusOnAppear)
}

// EndTooltip closes BeginTooltip.
func (ctx *Context) EndTooltip() {
	w := ctx.mustWindow("EndTooltip")
	if w.Flags&WindowTooltip == 0 {
		panic(usageErrorf("EndTooltip", "current window %q is not a tooltip", w.Name))
	}
	ctx.End()
}

// SetTooltip shows text in a tooltip this frame.
func (ctx *Context) SetTooltip(text string) {
	ctx.BeginTooltip()
	ctx.Text(text)
	ctx.EndTooltip()
}

// SetItemTooltip shows text once the last item has been hovered for
// Config.HoverTooltipDelay seconds.
func (ctx *Context) SetItemTooltip(text string) {
	if ctx.IsItemHoveredFor(ctx.cfg.HoverTooltipDelay) {
		ctx.SetTooltip(text)
	}
}

// IsItemHoveredFor reports whether the last item has been hovered without
// interruption for at least delay seconds.
func (ctx *Context) IsItemHoveredFor(delay float32) bool {
	if !ctx.IsItemHovered() {
		return false
	}
	id := ctx.lastItem.ID
	if id == 0 || id != ctx.hoveredIDPrev {
		return delay <= 0
	}
	return ctx.hoveredIDTimer >= delay
}
