package imcore

type nextItemOpenData struct {
	cond Cond
	open bool
}

// SetNextItemOpen sets the open state of the next TreeNode or
// CollapsingHeader. CondAlways forces it every frame; CondOnce and
// CondFirstUseEver only seed it.
func (ctx *Context) SetNextItemOpen(open bool, cond Cond) {
	if cond == CondNone {
		cond = CondAlways
	}
	ctx.nextItemOpen = nextItemOpenData{cond: cond, open: open}
}

// treeNodeOpen resolves and stores the open state of id.
func (ctx *Context) treeNodeOpen(w *Window, id ID, defaultOpen bool) bool {
	next := ctx.nextItemOpen
	ctx.nextItemOpen = nextItemOpenData{}
	switch next.cond {
	case CondAlways:
		w.Storage.SetBool(id, next.open)
	case CondOnce, CondFirstUseEver, CondAppearing:
		if !w.Storage.Has(id) {
			w.Storage.SetBool(id, next.open)
		}
	}
	return w.Storage.Bool(id, defaultOpen)
}

// TreeNode draws an expandable node. When it returns true the children
// are submitted and TreePop must follow. Leaf nodes (OptLeaf) draw a
// bullet and are always open.
//
//	if ctx.TreeNode("Settings") {
//	    ctx.Checkbox("VSync", &vsync)
//	    ctx.TreePop()
//	}
func (ctx *Context) TreeNode(label string, opts ...Option) bool {
	w := ctx.mustWindow("TreeNode")
	o := applyOptions(opts)
	defer ctx.itemOptions(o)()

	id := ctx.itemID(label, o)
	leaf := GetOpt(o, OptLeaf)
	open := leaf || ctx.treeNodeOpen(w, id, GetOpt(o, OptDefaultOpen))

	text := VisibleLabel(label)
	textSize := ctx.CalcTextSize(text)
	h := ctx.TextLineHeight()
	pos := w.DC.CursorPos
	bb := Rect{X: pos.X, Y: pos.Y, W: maxf(h+textSize.X, ctx.contentRegionMax(w).X-pos.X), H: h}
	ctx.ItemSize(bb.Size())
	if ctx.ItemAdd(bb, id) {
		ctx.RegisterFocusable(id)
		pressed, hovered, held := ctx.ButtonBehavior(bb, id, ButtonPressOnClick)
		if !leaf {
			toggle := pressed
			if ctx.focusedID == id {
				if open && ctx.Input.KeyPressed(KeyLeft) || !open && ctx.Input.KeyPressed(KeyRight) {
					toggle = true
				}
			}
			if toggle {
				open = !open
				w.Storage.SetBool(id, open)
				ctx.lastItem.Status |= itemToggled
			}
		}
		if hovered {
			col := ColHeaderHovered
			if held {
				col = ColHeaderActive
			}
			w.DrawList.AddRectFilled(bb.X, bb.Y, bb.W, bb.H, ctx.style.Color(col))
		}
		textCol := ctx.style.Color(ColText)
		if leaf {
			ctx.renderBullet(w.DrawList, Vec2{pos.X + h/2, pos.Y + h/2}, textCol)
		} else {
			ctx.renderArrow(w.DrawList, Rect{X: pos.X, Y: pos.Y, W: h, H: h}, open, textCol)
		}
		ctx.renderNavHighlight(w.DrawList, bb, id)
		ctx.renderText(w.DrawList, Vec2{pos.X + h + ctx.style.ItemInnerSpacing.X, pos.Y}, text, textCol)
	}
	if open {
		ctx.treePush(w, id)
	}
	return open
}

func (ctx *Context) treePush(w *Window, id ID) {
	ctx.Indent(0)
	w.DC.TreeDepth++
	ctx.PushRawID(id)
}

// TreePop closes a TreeNode that returned true.
func (ctx *Context) TreePop() {
	w := ctx.mustWindow("TreePop")
	if w.DC.TreeDepth == 0 {
		panic(usageErrorf("TreePop", "no open TreeNode; call TreePop only when TreeNode returned true"))
	}
	ctx.Unindent(0)
	w.DC.TreeDepth--
	ctx.PopID()
}

// CollapsingHeader draws a full-width framed header and returns whether it
// is open. Unlike TreeNode it does not indent or need TreePop.
func (ctx *Context) CollapsingHeader(label string, opts ...Option) bool {
	w := ctx.mustWindow("CollapsingHeader")
	o := applyOptions(opts)
	defer ctx.itemOptions(o)()

	id := ctx.itemID(label, o)
	open := ctx.treeNodeOpen(w, id, GetOpt(o, OptDefaultOpen))
	text := VisibleLabel(label)
	textSize := ctx.CalcTextSize(text)
	h := ctx.FrameHeight()
	x1 := w.Pos.X + w.DC.ColumnsOffset + w.DC.Indent
	pos := w.DC.CursorPos
	bb := Rect{X: x1, Y: pos.Y, W: maxf(h, ctx.contentRegionMax(w).X-x1), H: h}
	ctx.ItemSize(Vec2{bb.W, h})
	if !ctx.ItemAdd(bb, id) {
		return open
	}
	ctx.RegisterFocusable(id)
	pressed, hovered, held := ctx.ButtonBehavior(bb, id, ButtonPressOnClick)
	if pressed {
		open = !open
		w.Storage.SetBool(id, open)
		ctx.lastItem.Status |= itemToggled
	}
	col := ColHeader
	switch {
	case held && hovered:
		col = ColHeaderActive
	case hovered:
		col = ColHeaderHovered
	}
	ctx.renderFrame(w.DrawList, bb, ctx.style.Color(col))
	textCol := ctx.style.Color(ColText)
	pad := ctx.style.FramePadding
	arrow := Rect{X: bb.X + pad.X, Y: bb.Y + pad.Y, W: h - pad.Y*2, H: h - pad.Y*2}
	ctx.renderArrow(w.DrawList, arrow, open, textCol)
	ctx.renderNavHighlight(w.DrawList, bb, id)
	labelRect := Rect{X: arrow.X + arrow.W + ctx.style.ItemInnerSpacing.X, Y: bb.Y, W: bb.W - arrow.W - pad.X*2, H: h}
	ctx.renderTextClipped(w.DrawList, labelRect, text, textSize, Vec2{0, 0.5}, textCol)
	return open
}

// IsItemToggledOpen reports whether the last TreeNode or CollapsingHeader
// changed its open state this frame.
func (ctx *Context) IsItemToggledOpen() bool {
	return ctx.lastItem.Status&itemToggled != 0
}
