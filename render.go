package imcore

// Shared drawing helpers used by windows and widgets.

func (ctx *Context) renderText(dl *DrawList, pos Vec2, text string, color uint32) {
	if text == "" {
		return
	}
	dl.AddText(ctx.font(), ctx.style.FontSize, pos.X, pos.Y, text, color)
}

// renderFrame fills r and outlines it when FrameBorderSize is set.
func (ctx *Context) renderFrame(dl *DrawList, r Rect, color uint32) {
	dl.AddRectFilled(r.X, r.Y, r.W, r.H, color)
	if b := ctx.style.FrameBorderSize; b > 0 {
		dl.AddRect(r.X, r.Y, r.W, r.H, ctx.style.Color(ColBorder), b)
	}
}

// renderArrow draws a triangle inside r pointing down when open, right otherwise.
func (ctx *Context) renderArrow(dl *DrawList, r Rect, open bool, color uint32) {
	h := minf(r.W, r.H)
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	s := h * 0.35
	if open {
		dl.AddTriangleFilled(cx-s, cy-s*0.6, cx+s, cy-s*0.6, cx, cy+s*0.8, color)
		return
	}
	dl.AddTriangleFilled(cx-s*0.6, cy-s, cx+s*0.8, cy, cx-s*0.6, cy+s, color)
}

func (ctx *Context) renderCross(dl *DrawList, r Rect, color uint32) {
	inset := minf(r.W, r.H) * 0.25
	dl.AddLine(r.X+inset, r.Y+inset, r.X+r.W-inset, r.Y+r.H-inset, color, 1)
	dl.AddLine(r.X+r.W-inset, r.Y+inset, r.X+inset, r.Y+r.H-inset, color, 1)
}

func (ctx *Context) renderCheckMark(dl *DrawList, r Rect, color uint32) {
	t := maxf(1, r.W/6)
	x0, y0 := r.X+r.W*0.2, r.Y+r.H*0.5
	x1, y1 := r.X+r.W*0.42, r.Y+r.H*0.75
	x2, y2 := r.X+r.W*0.8, r.Y+r.H*0.25
	dl.AddLine(x0, y0, x1, y1, color, t)
	dl.AddLine(x1, y1, x2, y2, color, t)
}

func (ctx *Context) renderBullet(dl *DrawList, center Vec2, color uint32) {
	dl.AddCircleFilled(center.X, center.Y, ctx.style.FontSize*0.2, color, 8)
}

// renderTextClipped draws text aligned inside r and clipped to it.
// align is (0,0) for top-left and (0.5,0.5) for centered.
func (ctx *Context) renderTextClipped(dl *DrawList, r Rect, text string, textSize, align Vec2, color uint32) {
	pos := Vec2{
		X: r.X + maxf(0, (r.W-textSize.X)*align.X),
		Y: r.Y + maxf(0, (r.H-textSize.Y)*align.Y),
	}
	needClip := textSize.X > r.W || textSize.Y > r.H
	if needClip {
		dl.PushClipRect(r, true)
	}
	ctx.renderText(dl, pos, text, color)
	if needClip {
		dl.PopClipRect()
	}
}

// renderNavHighlight outlines r when id holds keyboard focus.
func (ctx *Context) renderNavHighlight(dl *DrawList, r Rect, id ID) {
	if id == 0 || ctx.focusedID != id {
		return
	}
	r = r.Expand(2)
	dl.AddRect(r.X, r.Y, r.W, r.H, ctx.style.Color(ColNavHighlight), 1)
}
