package imcore

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// LayoutType defines the direction items flow in.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Each item continues the previous line
)

// stackLayout is one HStack/VStack level.
type stackLayout struct {
	Type LayoutType
	Gap  float32 // < 0 uses style ItemSpacing
}

// LayoutOption configures a stack container.
type LayoutOption func(*stackLayout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *stackLayout) { l.Gap = pixels }
}

// groupData is the cursor snapshot saved by BeginGroup.
type groupData struct {
	backupCursorPos      Vec2
	backupCursorMaxPos   Vec2
	backupIndent         float32
	backupCurrLineHeight float32
	backupPrevLineHeight float32
	backupActiveIDAlive  bool
}

// ItemSize advances the cursor past an item of the given size. Widgets call
// it whether or not ItemAdd later reports the item as clipped, so item
// positions never depend on visibility.
func (ctx *Context) ItemSize(size Vec2) {
	w := ctx.mustWindow("ItemSize")
	dc := &w.DC
	spacing := ctx.itemSpacing(w)

	lineHeight := maxf(dc.CurrLineHeight, size.Y)
	dc.CursorPosPrevLine = Vec2{dc.CursorPos.X + size.X, dc.CursorPos.Y}
	dc.CursorPos.X = w.Pos.X + dc.Indent + dc.ColumnsOffset
	dc.CursorPos.Y += lineHeight + spacing.Y
	dc.CursorMaxPos.X = maxf(dc.CursorMaxPos.X, dc.CursorPosPrevLine.X)
	dc.CursorMaxPos.Y = maxf(dc.CursorMaxPos.Y, dc.CursorPos.Y-spacing.Y)
	dc.PrevLineHeight = lineHeight
	dc.CurrLineHeight = 0

	if n := len(dc.layoutStack); n > 0 && dc.layoutStack[n-1].Type == LayoutHorizontal {
		ctx.SameLineEx(0, spacing.X)
	}
}

func (ctx *Context) itemSpacing(w *Window) Vec2 {
	spacing := ctx.style.ItemSpacing
	if n := len(w.DC.layoutStack); n > 0 {
		if l := w.DC.layoutStack[n-1]; l.Gap >= 0 {
			if l.Type == LayoutHorizontal {
				spacing.X = l.Gap
			} else {
				spacing.Y = l.Gap
			}
		}
	}
	return spacing
}

// ItemAdd registers bb as the last item. It returns false when the item is
// clipped; callers skip interaction and drawing but have already advanced
// the cursor with ItemSize. The active item is never clipped so its release
// is still observed.
func (ctx *Context) ItemAdd(bb Rect, id ID) bool {
	w := ctx.mustWindow("ItemAdd")
	ctx.lastItem = lastItemData{ID: id, Rect: bb}
	if ctx.disabledDepth > 0 {
		ctx.lastItem.Status |= itemDisabled
	}
	if id != 0 {
		ctx.keepAliveID(id)
	}
	if w.SkipItems || (!bb.Intersects(w.ClipRect) && (id == 0 || id != ctx.activeID)) {
		ctx.lastItem.Status |= itemClipped
		return false
	}
	ctx.lastItem.Status |= itemVisible
	if ctx.IsMouseHoveringRect(bb) {
		ctx.lastItem.Status |= itemHoveredRect
	}
	return true
}

// ItemHoverable claims hover for id when the pointer is over bb in the
// hovered window, no other item is active, and widgets are enabled.
// Among overlapping items the last one declared wins.
func (ctx *Context) ItemHoverable(bb Rect, id ID) bool {
	w := ctx.mustWindow("ItemHoverable")
	if ctx.hoveredWindow != w {
		return false
	}
	if ctx.activeID != 0 && ctx.activeID != id {
		return false
	}
	if !ctx.IsMouseHoveringRect(bb) || ctx.disabledDepth > 0 {
		return false
	}
	if id != 0 {
		ctx.hoveredID = id
	}
	return true
}

// ButtonFlags tune ButtonBehavior.
type ButtonFlags uint32

const (
	ButtonPressOnClickRelease ButtonFlags = 0      // Press on release while hovered (default)
	ButtonPressOnClick        ButtonFlags = 1 << 0 // Press on the click edge
	ButtonPressOnRelease      ButtonFlags = 1 << 1 // Press on release without activating
	ButtonPressOnDoubleClick  ButtonFlags = 1 << 2
	ButtonMouseRight          ButtonFlags = 1 << 3 // Also react to the right button
	ButtonMouseMiddle         ButtonFlags = 1 << 4
	ButtonNoLeft              ButtonFlags = 1 << 5 // Ignore the left button
	ButtonRepeat              ButtonFlags = 1 << 6 // Press repeatedly while held
)

// ButtonBehavior is the shared press state machine. A click edge while
// hovered makes id active; it stays active until the same button is
// released, wherever the pointer is.
func (ctx *Context) ButtonBehavior(bb Rect, id ID, flags ButtonFlags) (pressed, hovered, held bool) {
	w := ctx.mustWindow("ButtonBehavior")
	in := ctx.Input
	hovered = ctx.ItemHoverable(bb, id)

	if hovered {
		for _, b := range buttonsFor(flags) {
			switch {
			case flags&ButtonPressOnDoubleClick != 0:
				if in.MouseDoubleClicked(b) {
					pressed = true
				}
			case flags&ButtonPressOnRelease != 0:
				if in.MouseReleased(b) {
					pressed = true
				}
			case in.MouseClicked(b):
				ctx.SetActiveID(id, w)
				ctx.activeIDButton = b
				ctx.activeIDClickOffset = in.MousePos.Sub(bb.Min())
				if flags&ButtonPressOnClick != 0 {
					pressed = true
				}
			}
			if pressed || ctx.activeID == id {
				break
			}
		}
	}

	if id != 0 && ctx.activeID == id {
		b := ctx.activeIDButton
		if in.MouseDown(b) {
			held = true
			if flags&ButtonRepeat != 0 && !ctx.activeIDJustActivated &&
				repeatAmount(in.MouseDownDuration(b)-in.DeltaTime, in.MouseDownDuration(b), in.KeyRepeatDelay, in.KeyRepeatRate) > 0 {
				pressed = true
			}
		} else {
			if hovered && flags&(ButtonPressOnClick|ButtonPressOnRelease|ButtonPressOnDoubleClick) == 0 {
				pressed = true
			}
			ctx.ClearActiveID()
		}
	}

	// Keyboard activation of the focused item.
	if id != 0 && ctx.focusedID == id && ctx.activeTextInput() == 0 && ctx.disabledDepth == 0 &&
		(in.KeyPressed(KeySpace) || in.KeyPressed(KeyEnter)) {
		pressed = true
	}
	return pressed, hovered, held
}

func buttonsFor(flags ButtonFlags) []MouseButton {
	buttons := make([]MouseButton, 0, 3)
	if flags&ButtonNoLeft == 0 {
		buttons = append(buttons, MouseButtonLeft)
	}
	if flags&ButtonMouseRight != 0 {
		buttons = append(buttons, MouseButtonRight)
	}
	if flags&ButtonMouseMiddle != 0 {
		buttons = append(buttons, MouseButtonMiddle)
	}
	return buttons
}

// SameLine places the next item to the right of the previous one.
func (ctx *Context) SameLine() {
	ctx.SameLineEx(0, -1)
}

// SameLineEx places the next item on the previous line. A non-zero offsetX
// positions it relative to the window's left edge; otherwise it follows the
// previous item. spacing < 0 uses the style's ItemSpacing.X.
func (ctx *Context) SameLineEx(offsetX, spacing float32) {
	w := ctx.mustWindow("SameLine")
	dc := &w.DC
	if offsetX != 0 {
		if spacing < 0 {
			spacing = 0
		}
		dc.CursorPos.X = w.Pos.X + dc.ColumnsOffset + offsetX + spacing
	} else {
		if spacing < 0 {
			spacing = ctx.style.ItemSpacing.X
		}
		dc.CursorPos.X = dc.CursorPosPrevLine.X + spacing
	}
	dc.CursorPos.Y = dc.CursorPosPrevLine.Y
	dc.CurrLineHeight = dc.PrevLineHeight
}

// NewLine ends a SameLine run, or adds an empty line.
func (ctx *Context) NewLine() {
	w := ctx.mustWindow("NewLine")
	if w.DC.CurrLineHeight > 0 {
		ctx.ItemSize(Vec2{})
	} else {
		ctx.ItemSize(Vec2{0, ctx.style.FontSize})
	}
}

// Spacing adds one item spacing of vertical space.
func (ctx *Context) Spacing() {
	ctx.mustWindow("Spacing")
	ctx.ItemSize(Vec2{})
}

// Dummy reserves an empty item of the given size.
func (ctx *Context) Dummy(size Vec2) {
	w := ctx.mustWindow("Dummy")
	bb := Rect{X: w.DC.CursorPos.X, Y: w.DC.CursorPos.Y, W: size.X, H: size.Y}
	ctx.ItemSize(size)
	ctx.ItemAdd(bb, 0)
}

// Indent moves the left edge right. width <= 0 uses IndentSpacing.
func (ctx *Context) Indent(width float32) {
	w := ctx.mustWindow("Indent")
	if width <= 0 {
		width = ctx.style.IndentSpacing
	}
	w.DC.Indent += width
	w.DC.CursorPos.X = w.Pos.X + w.DC.Indent + w.DC.ColumnsOffset
}

// Unindent reverses Indent.
func (ctx *Context) Unindent(width float32) {
	w := ctx.mustWindow("Unindent")
	if width <= 0 {
		width = ctx.style.IndentSpacing
	}
	w.DC.Indent -= width
	w.DC.CursorPos.X = w.Pos.X + w.DC.Indent + w.DC.ColumnsOffset
}

// BeginGroup starts a group. Items inside lay out normally; EndGroup
// restores the cursor origin and submits their union as one item.
func (ctx *Context) BeginGroup() {
	w := ctx.mustWindow("BeginGroup")
	dc := &w.DC
	dc.groupStack = append(dc.groupStack, groupData{
		backupCursorPos:      dc.CursorPos,
		backupCursorMaxPos:   dc.CursorMaxPos,
		backupIndent:         dc.Indent,
		backupCurrLineHeight: dc.CurrLineHeight,
		backupPrevLineHeight: dc.PrevLineHeight,
		backupActiveIDAlive:  ctx.activeIDIsAlive,
	})
	dc.Indent = dc.CursorPos.X - w.Pos.X - dc.ColumnsOffset
	dc.CursorMaxPos = dc.CursorPos
	dc.CurrLineHeight = 0
	ctx.activeIDIsAlive = false
}

// EndGroup closes BeginGroup.
func (ctx *Context) EndGroup() {
	w := ctx.mustWindow("EndGroup")
	dc := &w.DC
	n := len(dc.groupStack)
	if n == 0 {
		panic(usageErrorf("EndGroup", "no matching BeginGroup"))
	}
	g := dc.groupStack[n-1]
	dc.groupStack = dc.groupStack[:n-1]

	maxPos := Vec2{maxf(dc.CursorMaxPos.X, g.backupCursorPos.X), maxf(dc.CursorMaxPos.Y, g.backupCursorPos.Y)}
	bb := RectFromMinMax(g.backupCursorPos, maxPos)
	activeInside := ctx.activeIDIsAlive

	dc.CursorPos = g.backupCursorPos
	dc.CursorMaxPos = Vec2{maxf(g.backupCursorMaxPos.X, maxPos.X), maxf(g.backupCursorMaxPos.Y, maxPos.Y)}
	dc.Indent = g.backupIndent
	dc.CurrLineHeight = g.backupCurrLineHeight
	dc.PrevLineHeight = g.backupPrevLineHeight
	ctx.activeIDIsAlive = g.backupActiveIDAlive || activeInside

	ctx.ItemSize(bb.Size())
	id := ID(0)
	if activeInside {
		id = ctx.activeID
	}
	ctx.ItemAdd(bb, id)
}

// VStack lays out contents top to bottom as one group.
//
//	ctx.VStack(imcore.Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutVertical, opts)
}

// HStack lays out contents left to right as one group.
//
//	ctx.HStack()(func() {
//	    ctx.Text("Label:")
//	    ctx.Button("OK")
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutHorizontal, opts)
}

func (ctx *Context) stack(t LayoutType, opts []LayoutOption) func(func()) {
	return func(contents func()) {
		w := ctx.mustWindow("Stack")
		l := stackLayout{Type: t, Gap: -1}
		for _, opt := range opts {
			opt(&l)
		}
		ctx.BeginGroup()
		w.DC.layoutStack = append(w.DC.layoutStack, l)
		contents()
		w.DC.layoutStack = w.DC.layoutStack[:len(w.DC.layoutStack)-1]
		ctx.EndGroup()
	}
}

// Cursor

// CursorPos returns the cursor in window-local coordinates, scroll included.
func (ctx *Context) CursorPos() Vec2 {
	w := ctx.mustWindow("CursorPos")
	return w.DC.CursorPos.Sub(w.Pos).Add(w.Scroll)
}

// SetCursorPos moves the cursor to a window-local position.
func (ctx *Context) SetCursorPos(local Vec2) {
	w := ctx.mustWindow("SetCursorPos")
	ctx.setCursorScreenPos(w, w.Pos.Sub(w.Scroll).Add(local))
}

// CursorScreenPos returns the cursor in screen coordinates.
func (ctx *Context) CursorScreenPos() Vec2 {
	return ctx.mustWindow("CursorScreenPos").DC.CursorPos
}

// SetCursorScreenPos moves the cursor to a screen position.
func (ctx *Context) SetCursorScreenPos(pos Vec2) {
	ctx.setCursorScreenPos(ctx.mustWindow("SetCursorScreenPos"), pos)
}

func (ctx *Context) setCursorScreenPos(w *Window, pos Vec2) {
	w.DC.CursorPos = pos
	w.DC.CursorMaxPos.X = maxf(w.DC.CursorMaxPos.X, pos.X)
	w.DC.CursorMaxPos.Y = maxf(w.DC.CursorMaxPos.Y, pos.Y)
}

// ContentRegionAvail returns the space from the cursor to the content edge.
func (ctx *Context) ContentRegionAvail() Vec2 {
	w := ctx.mustWindow("ContentRegionAvail")
	return ctx.contentRegionMax(w).Sub(w.DC.CursorPos)
}

// contentRegionMax is the window's content corner, or the current table
// cell's right edge inside a table.
func (ctx *Context) contentRegionMax(w *Window) Vec2 {
	m := w.ContentRegionMax()
	if t := ctx.currentTbl; t != nil && t.window == w && t.column >= 0 {
		m.X = t.cellMaxX()
	}
	return m
}

// Item width

// PushItemWidth sets the width of following framed widgets. Negative values
// are relative to the right edge.
func (ctx *Context) PushItemWidth(width float32) {
	w := ctx.mustWindow("PushItemWidth")
	w.DC.itemWidthStack = append(w.DC.itemWidthStack, w.DC.ItemWidth)
	if width == 0 {
		width = maxf(1, w.InnerRect.W*0.65)
	}
	w.DC.ItemWidth = width
}

// PopItemWidth restores the previous item width.
func (ctx *Context) PopItemWidth() {
	w := ctx.mustWindow("PopItemWidth")
	n := len(w.DC.itemWidthStack)
	if n == 0 {
		panic(usageErrorf("PopItemWidth", "item width stack underflow"))
	}
	w.DC.ItemWidth = w.DC.itemWidthStack[n-1]
	w.DC.itemWidthStack = w.DC.itemWidthStack[:n-1]
}

// CalcItemWidth resolves the current item width to pixels.
func (ctx *Context) CalcItemWidth() float32 {
	w := ctx.mustWindow("CalcItemWidth")
	width := w.DC.ItemWidth
	if width < 0 {
		width = ctx.contentRegionMax(w).X - w.DC.CursorPos.X + width
	}
	return maxf(1, width)
}

// Last item queries

// IsItemHovered reports whether the pointer is over the last item and it
// is eligible for interaction.
func (ctx *Context) IsItemHovered() bool {
	w := ctx.mustWindow("IsItemHovered")
	if ctx.lastItem.Status&itemHoveredRect == 0 || ctx.hoveredWindow != w {
		return false
	}
	if ctx.disabledDepth > 0 || ctx.lastItem.Status&itemDisabled != 0 {
		return false
	}
	if ctx.activeID != 0 && ctx.activeID != ctx.lastItem.ID {
		return false
	}
	return true
}

// IsItemActive reports whether the last item owns the active interaction.
func (ctx *Context) IsItemActive() bool {
	return ctx.lastItem.ID != 0 && ctx.activeID == ctx.lastItem.ID
}

// IsItemClicked reports a click edge on the hovered last item.
func (ctx *Context) IsItemClicked(button MouseButton) bool {
	return ctx.IsItemHovered() && ctx.Input.MouseClicked(button)
}

// IsItemVisible reports whether the last item passed the clip test.
func (ctx *Context) IsItemVisible() bool {
	return ctx.lastItem.Status&itemVisible != 0
}

// IsItemEdited reports whether the last item changed its value this frame.
func (ctx *Context) IsItemEdited() bool {
	return ctx.lastItem.Status&itemEdited != 0
}

// IsItemFocused reports whether the last item has keyboard focus.
func (ctx *Context) IsItemFocused() bool {
	return ctx.lastItem.ID != 0 && ctx.focusedID == ctx.lastItem.ID
}

// ItemRect returns the last item's screen rectangle.
func (ctx *Context) ItemRect() Rect {
	return ctx.lastItem.Rect
}

// LastItemID returns the ID of the last item, 0 for items without one.
func (ctx *Context) LastItemID() ID {
	return ctx.lastItem.ID
}

// Text metrics

func (ctx *Context) font() Font {
	if ctx.fontProvider == nil {
		return nil
	}
	return ctx.fontProvider.ActiveFont()
}

// FontSize returns the current font size in pixels.
func (ctx *Context) FontSize() float32 {
	return ctx.style.FontSize
}

// TextLineHeight returns the height of one line of text.
func (ctx *Context) TextLineHeight() float32 {
	if f := ctx.font(); f != nil {
		return f.LineHeight(ctx.style.FontSize)
	}
	return ctx.style.FontSize
}

// FrameHeight returns the height of a framed widget such as a button.
func (ctx *Context) FrameHeight() float32 {
	return ctx.TextLineHeight() + ctx.style.FramePadding.Y*2
}

// FrameHeightWithSpacing returns FrameHeight plus vertical item spacing.
func (ctx *Context) FrameHeightWithSpacing() float32 {
	return ctx.FrameHeight() + ctx.style.ItemSpacing.Y
}

// CalcTextSize measures text. Without a font, widths come from terminal
// cell widths times Style.CharWidth.
func (ctx *Context) CalcTextSize(text string) Vec2 {
	if text == "" {
		return Vec2{0, ctx.TextLineHeight()}
	}
	key := textMeasureKey{text: text, size: ctx.style.FontSize}
	if v, ok := ctx.textMeasureCache[key]; ok {
		return v
	}
	var size Vec2
	if f := ctx.font(); f != nil {
		size = f.MeasureText(text, ctx.style.FontSize)
	} else {
		lines := strings.Split(text, "\n")
		for _, line := range lines {
			size.X = maxf(size.X, float32(runewidth.StringWidth(line))*ctx.style.CharWidth)
		}
		size.Y = float32(len(lines)) * ctx.style.FontSize
	}
	ctx.textMeasureCache[key] = size
	return size
}
