package imcore

import "fmt"

// itemOptions applies the options every widget honors. The returned func
// must run after the item is submitted.
//
//	defer ctx.itemOptions(o)()
func (ctx *Context) itemOptions(o options) func() {
	disabled := GetOpt(o, OptDisabled)
	if disabled {
		ctx.BeginDisabled(true)
	}
	return func() {
		if disabled {
			ctx.EndDisabled()
		}
		if tip := GetOpt(o, OptTooltip); tip != "" {
			ctx.SetItemTooltip(tip)
		}
	}
}

// markEdited flags the last item as having changed its value.
func (ctx *Context) markEdited() {
	ctx.lastItem.Status |= itemEdited
}

// frameSize applies OptWidth/OptHeight to a computed size. A negative width
// extends to the right edge minus that amount.
func (ctx *Context) frameSize(w *Window, o options, size Vec2) Vec2 {
	if width := GetOpt(o, OptWidth); width > 0 {
		size.X = width
	} else if width < 0 {
		size.X = maxf(1, ctx.contentRegionMax(w).X-w.DC.CursorPos.X+width)
	}
	if height := GetOpt(o, OptHeight); height > 0 {
		size.Y = height
	}
	return size
}

// Text draws text at the cursor. Newlines start new lines within the item.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.Colors[ColText])
}

// Textf formats and draws text.
func (ctx *Context) Textf(format string, args ...any) {
	ctx.Text(fmt.Sprintf(format, args...))
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	w := ctx.mustWindow("Text")
	size := ctx.CalcTextSize(text)
	pos := w.DC.CursorPos
	bb := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	ctx.ItemSize(size)
	if !ctx.ItemAdd(bb, 0) {
		return
	}
	ctx.renderText(w.DrawList, pos, text, ColorMulAlpha(color, ctx.style.Alpha))
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.TextColored(text, ctx.style.Colors[ColTextDisabled])
}

// TextWrapped draws text wrapped at the right edge of the content region.
func (ctx *Context) TextWrapped(text string) {
	w := ctx.mustWindow("TextWrapped")
	pos := w.DC.CursorPos
	maxWidth := ctx.contentRegionMax(w).X - pos.X
	lines := ctx.WrapText(text, maxWidth, WrapModeAuto)
	lineH := ctx.TextLineHeight()
	size := Vec2{Y: float32(len(lines)) * lineH}
	for _, line := range lines {
		size.X = maxf(size.X, ctx.CalcTextSize(line).X)
	}
	bb := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	ctx.ItemSize(size)
	if !ctx.ItemAdd(bb, 0) {
		return
	}
	color := ctx.style.Color(ColText)
	for i, line := range lines {
		y := pos.Y + float32(i)*lineH
		if y+lineH < w.ClipRect.Y || y > w.ClipRect.Y+w.ClipRect.H {
			continue
		}
		ctx.renderText(w.DrawList, Vec2{pos.X, y}, line, color)
	}
}

// LabelText draws value in the item-width column followed by label.
func (ctx *Context) LabelText(label, value string) {
	w := ctx.mustWindow("LabelText")
	pos := w.DC.CursorPos
	width := ctx.CalcItemWidth()
	text := VisibleLabel(label)
	valueSize := ctx.CalcTextSize(value)
	labelSize := ctx.CalcTextSize(text)
	h := maxf(valueSize.Y, labelSize.Y) + ctx.style.FramePadding.Y*2
	total := width
	if labelSize.X > 0 {
		total += ctx.style.ItemInnerSpacing.X + labelSize.X
	}
	bb := Rect{X: pos.X, Y: pos.Y, W: total, H: h}
	ctx.ItemSize(bb.Size())
	if !ctx.ItemAdd(bb, 0) {
		return
	}
	color := ctx.style.Color(ColText)
	valueRect := Rect{X: pos.X, Y: pos.Y, W: width, H: h}
	ctx.renderTextClipped(w.DrawList, valueRect, value, valueSize, Vec2{0, 0.5}, color)
	ctx.renderText(w.DrawList, Vec2{pos.X + width + ctx.style.ItemInnerSpacing.X, pos.Y + ctx.style.FramePadding.Y}, text, color)
}

// Bullet draws a bullet point and keeps the cursor on the same line.
func (ctx *Context) Bullet() {
	w := ctx.mustWindow("Bullet")
	pos := w.DC.CursorPos
	h := ctx.TextLineHeight()
	bb := Rect{X: pos.X, Y: pos.Y, W: h, H: h}
	ctx.ItemSize(bb.Size())
	if ctx.ItemAdd(bb, 0) {
		ctx.renderBullet(w.DrawList, Vec2{pos.X + h/2, pos.Y + h/2}, ctx.style.Color(ColText))
	}
	ctx.SameLineEx(0, ctx.style.ItemInnerSpacing.X)
}

// BulletText draws a bullet followed by text.
func (ctx *Context) BulletText(text string) {
	ctx.Bullet()
	ctx.Text(text)
}

// Button draws a button and returns true when it was pressed.
func (ctx *Context) Button(label string, opts ...Option) bool {
	w := ctx.mustWindow("Button")
	o := applyOptions(opts)
	defer ctx.itemOptions(o)()

	id := ctx.itemID(label, o)
	text := VisibleLabel(label)
	textSize := ctx.CalcTextSize(text)
	pad := ctx.style.FramePadding
	size := ctx.frameSize(w, o, Vec2{textSize.X + pad.X*2, textSize.Y + pad.Y*2})

	pos := w.DC.CursorPos
	bb := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	ctx.ItemSize(size)
	if !ctx.ItemAdd(bb, id) {
		return false
	}
	ctx.RegisterFocusable(id)

	pressed, hovered, held := ctx.ButtonBehavior(bb, id, ButtonPressOnClickRelease)
	col := ColButton
	switch {
	case held && hovered:
		col = ColButtonActive
	case hovered:
		col = ColButtonHovered
	}
	ctx.renderFrame(w.DrawList, bb, ctx.style.Color(col))
	ctx.renderNavHighlight(w.DrawList, bb, id)
	ctx.renderTextClipped(w.DrawList, bb.Expand(-1), text, textSize, Vec2{0.5, 0.5}, ctx.style.Color(ColText))
	return pressed
}

// SmallButton is a Button without vertical frame padding, for use inline
// with text.
func (ctx *Context) SmallButton(label string, opts ...Option) bool {
	ctx.PushStyleVarVec2(StyleVarFramePadding, Vec2{ctx.style.FramePadding.X, 0})
	defer ctx.PopStyleVar(1)
	return ctx.Button(label, opts...)
}

// InvisibleButton is a hit area with button behavior and no drawing.
func (ctx *Context) InvisibleButton(strID string, size Vec2, flags ButtonFlags) bool {
	w := ctx.mustWindow("InvisibleButton")
	if size.X <= 0 || size.Y <= 0 {
		panic(usageErrorf("InvisibleButton", "size must be positive, got %v", size))
	}
	id := ctx.GetID(strID)
	pos := w.DC.CursorPos
	bb := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	ctx.ItemSize(size)
	if !ctx.ItemAdd(bb, id) {
		return false
	}
	pressed, _, _ := ctx.ButtonBehavior(bb, id, flags)
	return pressed
}

// Checkbox toggles *value on press and returns true when it changed.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	w := ctx.mustWindow("Checkbox")
	o := applyOptions(opts)
	defer ctx.itemOptions(o)()

	id := ctx.itemID(label, o)
	text := VisibleLabel(label)
	textSize := ctx.CalcTextSize(text)
	square := ctx.FrameHeight()
	pos := w.DC.CursorPos
	total := Vec2{square, square}
	if textSize.X > 0 {
		total.X += ctx.style.ItemInnerSpacing.X + textSize.X
	}
	bb := Rect{X: pos.X, Y: pos.Y, W: total.X, H: total.Y}
	ctx.ItemSize(total)
	if !ctx.ItemAdd(bb, id) {
		return false
	}
	ctx.RegisterFocusable(id)

	pressed, hovered, held := ctx.ButtonBehavior(bb, id, ButtonPressOnClickRelease)
	if pressed {
		*value = !*value
		ctx.markEdited()
	}
	box := Rect{X: pos.X, Y: pos.Y, W: square, H: square}
	ctx.renderFrame(w.DrawList, box, ctx.style.Color(frameCol(hovered, held)))
	ctx.renderNavHighlight(w.DrawList, box, id)
	if *value {
		pad := maxf(1, square/6)
		ctx.renderCheckMark(w.DrawList, box.Expand(-pad), ctx.style.Color(ColCheckMark))
	}
	if textSize.X > 0 {
		ctx.renderText(w.DrawList, Vec2{box.X + square + ctx.style.ItemInnerSpacing.X, pos.Y + ctx.style.FramePadding.Y},
			text, ctx.style.Color(ColText))
	}
	return pressed
}

// CheckboxFlags toggles mask inside *flags.
func (ctx *Context) CheckboxFlags(label string, flags *uint32, mask uint32, opts ...Option) bool {
	v := *flags&mask == mask
	if !ctx.Checkbox(label, &v, opts...) {
		return false
	}
	if v {
		*flags |= mask
	} else {
		*flags &^= mask
	}
	return true
}

func frameCol(hovered, held bool) Col {
	switch {
	case held && hovered:
		return ColFrameBgActive
	case hovered:
		return ColFrameBgHovered
	}
	return ColFrameBg
}

// RadioButton draws a radio button and returns true when it was pressed.
func (ctx *Context) RadioButton(label string, active bool, opts ...Option) bool {
	w := ctx.mustWindow("RadioButton")
	o := applyOptions(opts)
	defer ctx.itemOptions(o)()

	id := ctx.itemID(label, o)
	text := VisibleLabel(label)
	textSize := ctx.CalcTextSize(text)
	square := ctx.FrameHeight()
	pos := w.DC.CursorPos
	total := Vec2{square, square}
	if textSize.X > 0 {
		total.X += ctx.style.ItemInnerSpacing.X + textSize.X
	}
	bb := Rect{X: pos.X, Y: pos.Y, W: total.X, H: total.Y}
	ctx.ItemSize(total)
	if !ctx.ItemAdd(bb, id) {
		return false
	}
	ctx.RegisterFocusable(id)

	pressed, hovered, held := ctx.ButtonBehavior(bb, id, ButtonPressOnClickRelease)
	if pressed {
		ctx.markEdited()
	}
	center := Vec2{pos.X + square/2, pos.Y + square/2}
	radius := square/2 - 1
	w.DrawList.AddCircleFilled(center.X, center.Y, radius, ctx.style.Color(frameCol(hovered, held)), 16)
	if active {
		w.DrawList.AddCircleFilled(center.X, center.Y, maxf(1, radius-maxf(1, square/6)), ctx.style.Color(ColCheckMark), 16)
	}
	ctx.renderNavHighlight(w.DrawList, Rect{X: pos.X, Y: pos.Y, W: square, H: square}, id)
	if textSize.X > 0 {
		ctx.renderText(w.DrawList, Vec2{pos.X + square + ctx.style.ItemInnerSpacing.X, pos.Y + ctx.style.FramePadding.Y},
			text, ctx.style.Color(ColText))
	}
	return pressed
}

// RadioButtonInt sets *v to value when pressed.
func (ctx *Context) RadioButtonInt(label string, v *int, value int, opts ...Option) bool {
	pressed := ctx.RadioButton(label, *v == value, opts...)
	if pressed {
		*v = value
	}
	return pressed
}

// Selectable draws a full-width highlightable row and returns true when it
// was pressed.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) bool {
	w := ctx.mustWindow("Selectable")
	o := applyOptions(opts)
	defer ctx.itemOptions(o)()

	id := ctx.itemID(label, o)
	text := VisibleLabel(label)
	textSize := ctx.CalcTextSize(text)
	pos := w.DC.CursorPos
	size := Vec2{maxf(textSize.X, ctx.contentRegionMax(w).X-pos.X), textSize.Y}
	size = ctx.frameSize(w, o, size)
	bb := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	ctx.ItemSize(size)
	if !ctx.ItemAdd(bb, id) {
		return false
	}
	ctx.RegisterFocusable(id)

	pressed, hovered, held := ctx.ButtonBehavior(bb, id, ButtonPressOnClickRelease)
	if hovered || selected {
		col := ColHeader
		switch {
		case held && hovered:
			col = ColHeaderActive
		case hovered:
			col = ColHeaderHovered
		}
		w.DrawList.AddRectFilled(bb.X, bb.Y, bb.W, bb.H, ctx.style.Color(col))
	}
	ctx.renderNavHighlight(w.DrawList, bb, id)
	ctx.renderTextClipped(w.DrawList, bb, text, textSize, Vec2{0, 0.5}, ctx.style.Color(ColText))

	// Selectables inside a popup close it.
	if pressed && w.Flags&WindowPopup != 0 && w.Flags&WindowChild == 0 {
		ctx.CloseCurrentPopup()
	}
	return pressed
}

// Separator draws a horizontal line across the content region.
func (ctx *Context) Separator() {
	w := ctx.mustWindow("Separator")
	pos := w.DC.CursorPos
	x1 := w.Pos.X + w.DC.ColumnsOffset
	x2 := ctx.contentRegionMax(w).X
	bb := Rect{X: x1, Y: pos.Y, W: x2 - x1, H: 1}
	ctx.setCursorScreenPos(w, Vec2{x1 + w.DC.Indent, pos.Y})
	ctx.ItemSize(Vec2{0, 1})
	if !ctx.ItemAdd(bb, 0) {
		return
	}
	w.DrawList.AddRectFilled(bb.X, bb.Y, bb.W, 1, ctx.style.Color(ColSeparator))
}

// ProgressBar draws a bar filled to fraction (clamped to [0,1]). overlay
// replaces the default percentage text; "" keeps the percentage.
func (ctx *Context) ProgressBar(fraction float32, overlay string, opts ...Option) {
	w := ctx.mustWindow("ProgressBar")
	o := applyOptions(opts)
	defer ctx.itemOptions(o)()

	pos := w.DC.CursorPos
	size := ctx.frameSize(w, o, Vec2{ctx.CalcItemWidth(), ctx.FrameHeight()})
	bb := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	ctx.ItemSize(size)
	if !ctx.ItemAdd(bb, 0) {
		return
	}
	fraction = clampf(fraction, 0, 1)
	ctx.renderFrame(w.DrawList, bb, ctx.style.Color(ColFrameBg))
	inner := bb.Expand(-ctx.style.FrameBorderSize)
	if fill := inner.W * fraction; fill > 0 {
		w.DrawList.AddRectFilled(inner.X, inner.Y, fill, inner.H, ctx.style.Color(ColPlotHistogram))
	}
	if overlay == "" {
		overlay = fmt.Sprintf("%.0f%%", fraction*100)
	}
	ctx.renderTextClipped(w.DrawList, bb, overlay, ctx.CalcTextSize(overlay), Vec2{0.5, 0.5}, ctx.style.Color(ColText))
}

// Image draws a textured quad. tint 0 draws untinted.
func (ctx *Context) Image(tex TextureID, size Vec2, uv0, uv1 Vec2, tint uint32) {
	w := ctx.mustWindow("Image")
	pos := w.DC.CursorPos
	bb := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	ctx.ItemSize(size)
	if !ctx.ItemAdd(bb, 0) {
		return
	}
	if tint == 0 {
		tint = RGBA(255, 255, 255, 255)
	}
	w.DrawList.AddImage(tex, bb.X, bb.Y, bb.W, bb.H, uv0, uv1, ColorMulAlpha(tint, ctx.style.Alpha))
}
