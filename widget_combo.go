package imcore

// BeginCombo draws a combo box showing preview. When its dropdown is open
// it returns true and the caller submits the items, then calls EndCombo.
//
//	if ctx.BeginCombo("Quality", items[current]) {
//	    for i, it := range items {
//	        if ctx.Selectable(it, i == current) {
//	            current = i
//	        }
//	    }
//	    ctx.EndCombo()
//	}
func (ctx *Context) BeginCombo(label, preview string, opts ...Option) bool {
	w := ctx.mustWindow("BeginCombo")
	o := applyOptions(opts)
	done := ctx.itemOptions(o)

	id := ctx.itemID(label, o)
	popupID := Hash("##ComboPopup", id)
	frame, total, text := ctx.labeledFrame(w, o, label)
	ctx.ItemSize(total.Size())
	if !ctx.ItemAdd(total, id) {
		done()
		return false
	}
	ctx.RegisterFocusable(id)

	pressed, hovered, held := ctx.ButtonBehavior(frame, id, ButtonPressOnClick)
	popupOpen := ctx.isPopupOpenAtLevel(popupID)
	if pressed && !popupOpen && !ctx.popups.closedByClickAt(popupID, ctx.FrameCount) {
		ctx.openPopupEx(popupID)
		popupOpen = true
	}

	arrowW := frame.H
	ctx.renderFrame(w.DrawList, frame, ctx.style.Color(frameCol(hovered || popupOpen, held)))
	arrowBox := Rect{X: frame.X + frame.W - arrowW, Y: frame.Y, W: arrowW, H: frame.H}
	btnCol := ColButton
	if hovered || popupOpen {
		btnCol = ColButtonHovered
	}
	w.DrawList.AddRectFilled(arrowBox.X, arrowBox.Y, arrowBox.W, arrowBox.H, ctx.style.Color(btnCol))
	ctx.renderArrow(w.DrawList, arrowBox.Expand(-ctx.style.FramePadding.Y), true, ctx.style.Color(ColText))
	ctx.renderNavHighlight(w.DrawList, frame, id)
	pad := ctx.style.FramePadding
	previewRect := Rect{X: frame.X + pad.X, Y: frame.Y, W: frame.W - arrowW - pad.X*2, H: frame.H}
	ctx.renderTextClipped(w.DrawList, previewRect, preview, ctx.CalcTextSize(preview), Vec2{0, 0.5}, ctx.style.Color(ColText))
	ctx.renderFrameLabel(w, frame, text)
	done()

	if !popupOpen {
		return false
	}
	pos := Vec2{frame.X, frame.Y + frame.H}
	ctx.nextWindow.minWidth = frame.W
	return ctx.beginPopupEx(popupID, &pos, WindowNone)
}

// EndCombo closes a BeginCombo that returned true.
func (ctx *Context) EndCombo() {
	ctx.EndPopup()
}

// Combo selects one of items by index and returns true when *current
// changed.
func (ctx *Context) Combo(label string, current *int, items []string, opts ...Option) bool {
	preview := ""
	if *current >= 0 && *current < len(items) {
		preview = items[*current]
	}
	if !ctx.BeginCombo(label, preview, opts...) {
		return false
	}
	changed := false
	for i, item := range items {
		ctx.PushIDInt(i)
		if ctx.Selectable(item, i == *current) && i != *current {
			*current = i
			changed = true
		}
		ctx.PopID()
	}
	ctx.EndCombo()
	if changed {
		ctx.markEdited()
	}
	return changed
}
