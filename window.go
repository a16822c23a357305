package imcore

import "fmt"

// WindowFlags customize a window's chrome and behavior.
type WindowFlags uint32

const (
	WindowNone              WindowFlags = 0
	WindowNoTitleBar        WindowFlags = 1 << 0
	WindowNoMove            WindowFlags = 1 << 1
	WindowNoScrollbar       WindowFlags = 1 << 2
	WindowNoScrollWithMouse WindowFlags = 1 << 3
	WindowNoCollapse        WindowFlags = 1 << 4
	WindowAlwaysAutoResize  WindowFlags = 1 << 5
	WindowNoBackground      WindowFlags = 1 << 6
	WindowNoInputs          WindowFlags = 1 << 7 // Never hovered; clicks pass through
	WindowNoBringToFront    WindowFlags = 1 << 8
	WindowNoFocusOnAppear   WindowFlags = 1 << 9
	WindowBorder            WindowFlags = 1 << 10 // Border and padding for child windows

	// Set internally by BeginChild, BeginPopup and BeginTooltip.
	WindowChild   WindowFlags = 1 << 24
	WindowPopup   WindowFlags = 1 << 25
	WindowTooltip WindowFlags = 1 << 26
)

// Cond selects when a SetNextWindow* value is applied.
type Cond uint8

const (
	CondNone         Cond = iota
	CondAlways            // Every frame
	CondOnce              // First call per session
	CondFirstUseEver      // Only when the window is created
	CondAppearing         // When the window reappears after being hidden
)

// Window is the persistent record behind Begin(name). Windows are found by
// the hash of their name and survive across frames until evicted.
type Window struct {
	Name  string
	ID    ID
	Flags WindowFlags

	Pos         Vec2
	Size        Vec2 // Current size; title bar only while collapsed
	SizeFull    Vec2 // Size when expanded
	ContentSize Vec2 // Measured from last frame's layout
	Scroll      Vec2
	ScrollMax   Vec2
	Collapsed   bool
	SkipItems   bool // Contents are not visible; widgets early out

	DrawList *DrawList
	Storage  *Storage

	ParentWindow *Window
	RootWindow   *Window

	Active          bool // Begun this frame
	WasActive       bool // Begun last frame
	LastActiveFrame uint64

	TitleBarRect Rect
	InnerRect    Rect // Below the title bar, left of the scrollbar
	ClipRect     Rect // Hit-test and draw clip for contents

	DC windowTempData

	createdFrame     uint64
	padding          Vec2
	minWidth         float32
	visibleRect      Rect
	idStackBase      int
	moveID           ID
	childID          ID
	autoFitFrames    int
	hiddenFrames     int
	hidden           bool
	scrollbarY       bool
	posOnceDone      bool
	sizeOnceDone     bool
	collapseOnce     bool
	childWindows     []*Window
	childWindowsPrev []*Window // Hover descends through last frame's children
}

// windowTempData is the per-frame layout state, reset by Begin.
type windowTempData struct {
	CursorPos         Vec2 // Screen space
	CursorPosPrevLine Vec2
	CursorStartPos    Vec2
	CursorMaxPos      Vec2
	CurrLineHeight    float32
	PrevLineHeight    float32
	Indent            float32 // Offset from Pos.X
	ColumnsOffset     float32
	ItemWidth         float32
	TreeDepth         int
	LayoutType        LayoutType
	itemWidthStack    []float32
	groupStack        []groupData
	layoutStack       []stackLayout
}

// Hidden reports whether the window is laid out but not drawn this frame.
// New auto-sized windows stay hidden for one frame while they measure.
func (w *Window) Hidden() bool {
	return w.hidden
}

// OuterRect returns the window's full screen rectangle.
func (w *Window) OuterRect() Rect {
	return Rect{X: w.Pos.X, Y: w.Pos.Y, W: w.Size.X, H: w.Size.Y}
}

// ContentRegionMax returns the bottom-right corner available to items.
func (w *Window) ContentRegionMax() Vec2 {
	pad := w.padding
	return Vec2{w.InnerRect.X + w.InnerRect.W - pad.X, w.InnerRect.Y + w.InnerRect.H - pad.Y}
}

func (w *Window) isChild() bool { return w.Flags&WindowChild != 0 }

type nextWindowData struct {
	posCond       Cond
	pos           Vec2
	sizeCond      Cond
	size          Vec2
	collapsedCond Cond
	collapsed     bool
	focus         bool
	scrollY       float32
	scrollYSet    bool
	minWidth      float32
}

// SetNextWindowPos sets the position of the next window passed to Begin.
func (ctx *Context) SetNextWindowPos(pos Vec2, cond Cond) {
	if cond == CondNone {
		cond = CondAlways
	}
	ctx.nextWindow.pos = pos
	ctx.nextWindow.posCond = cond
}

// SetNextWindowSize sets the size of the next window. It disables auto-fit.
func (ctx *Context) SetNextWindowSize(size Vec2, cond Cond) {
	if cond == CondNone {
		cond = CondAlways
	}
	ctx.nextWindow.size = size
	ctx.nextWindow.sizeCond = cond
}

// SetNextWindowCollapsed sets the collapsed state of the next window.
func (ctx *Context) SetNextWindowCollapsed(collapsed bool, cond Cond) {
	if cond == CondNone {
		cond = CondAlways
	}
	ctx.nextWindow.collapsed = collapsed
	ctx.nextWindow.collapsedCond = cond
}

// SetNextWindowFocus focuses the next window and brings it to the front.
func (ctx *Context) SetNextWindowFocus() {
	ctx.nextWindow.focus = true
}

// SetNextWindowScrollY sets the vertical scroll of the next window.
func (ctx *Context) SetNextWindowScrollY(y float32) {
	ctx.nextWindow.scrollY = y
	ctx.nextWindow.scrollYSet = true
}

func condAllows(cond Cond, created, appearing bool, onceDone *bool) bool {
	switch cond {
	case CondAlways:
		return true
	case CondOnce:
		if *onceDone {
			return false
		}
		*onceDone = true
		return true
	case CondFirstUseEver:
		return created
	case CondAppearing:
		return appearing
	}
	return false
}

func (ctx *Context) initWindow(w *Window, name string, id ID, flags WindowFlags) {
	*w = Window{
		Name:         name,
		ID:           id,
		Flags:        flags,
		Pos:          Vec2{60, 60},
		DrawList:     AcquireDrawList(),
		Storage:      NewStorage(),
		createdFrame: ctx.FrameCount,
		moveID:       Hash("#MOVE", id),
	}
	w.DrawList.Owner = name
	w.autoFitFrames = 2
	w.hiddenFrames = 1
	ctx.windowOrder = append(ctx.windowOrder, w)
	ctx.logger.Debug("window created", "name", name, "id", id, "frame", ctx.FrameCount)
}

// Begin opens window name for item declaration and returns false when its
// contents are not visible (collapsed). End must be called either way.
// A non-nil open shows a close button that clears *open.
func (ctx *Context) Begin(name string, open *bool, flags WindowFlags) bool {
	if !ctx.withinFrame {
		panic(usageErrorf("Begin", msgNoFrame))
	}
	if name == "" {
		panic(usageErrorf("Begin", "window name must not be empty"))
	}
	var parent *Window
	if flags&WindowChild != 0 {
		parent = ctx.mustWindow("BeginChild")
	}

	id := Hash(name, 0)
	w, created := ctx.windows.GetOrAdd(id, ctx.FrameCount)
	if created {
		ctx.initWindow(w, name, id, flags)
	}
	ctx.windowStack = append(ctx.windowStack, w)
	ctx.currentWindow = w

	if w.Active {
		// Appending to a window already begun this frame.
		ctx.idStack = append(ctx.idStack, w.ID)
		w.idStackBase = len(ctx.idStack)
		w.DrawList.PushClipRect(w.ClipRect, false)
		return !w.SkipItems
	}

	appearing := !w.WasActive
	w.Flags = flags
	w.Active = true
	w.LastActiveFrame = ctx.FrameCount
	w.ParentWindow = parent
	w.RootWindow = w
	if parent != nil {
		w.RootWindow = parent.RootWindow
		parent.childWindows = append(parent.childWindows, w)
	}
	w.hidden = w.hiddenFrames > 0
	if w.hiddenFrames > 0 {
		w.hiddenFrames--
	}

	nw := ctx.nextWindow
	ctx.nextWindow = nextWindowData{}
	if condAllows(nw.posCond, created, appearing, &w.posOnceDone) {
		w.Pos = nw.pos
	}
	if condAllows(nw.sizeCond, created, appearing, &w.sizeOnceDone) {
		w.SizeFull = nw.size
		w.autoFitFrames = 0
		if created {
			w.hiddenFrames = 0
			w.hidden = false
		}
	}
	if condAllows(nw.collapsedCond, created, appearing, &w.collapseOnce) {
		w.Collapsed = nw.collapsed
	}
	if nw.scrollYSet {
		w.Scroll.Y = nw.scrollY
	}
	w.minWidth = nw.minWidth
	if nw.focus {
		ctx.focusWindow(w)
	} else if appearing && parent == nil && flags&(WindowNoFocusOnAppear|WindowNoBringToFront) == 0 && !created {
		ctx.bringToFront(w)
	}
	if flags&(WindowPopup|WindowTooltip) != 0 {
		ctx.bringToFront(w)
	}
	if ctx.movingWindow == w {
		ctx.keepAliveID(w.moveID)
	}

	ctx.layoutWindow(w, parent)

	ctx.idStack = append(ctx.idStack, w.ID)
	w.idStackBase = len(ctx.idStack)

	ctx.renderWindowChrome(w, open)
	w.DrawList.PushClipRect(w.ClipRect, false)
	ctx.resetWindowCursor(w)
	return !w.SkipItems
}

// layoutWindow sizes the window and computes its rectangles and scroll range.
func (ctx *Context) layoutWindow(w *Window, parent *Window) {
	style := &ctx.style
	titleH := ctx.titleBarHeight(w)
	pad := style.WindowPadding
	if w.isChild() && w.Flags&WindowBorder == 0 {
		pad = Vec2{}
	}
	w.padding = pad

	if w.autoFitFrames > 0 || w.Flags&WindowAlwaysAutoResize != 0 {
		w.SizeFull = Vec2{w.ContentSize.X + pad.X*2, w.ContentSize.Y + pad.Y*2 + titleH}
		if w.autoFitFrames > 0 {
			w.autoFitFrames--
		}
	}
	w.SizeFull.X = maxf(w.SizeFull.X, w.minWidth)
	if !w.isChild() {
		w.SizeFull.X = maxf(w.SizeFull.X, style.WindowMinSize.X)
		w.SizeFull.Y = maxf(w.SizeFull.Y, style.WindowMinSize.Y)
	}
	w.Size = w.SizeFull
	if w.Flags&WindowNoTitleBar != 0 || w.Flags&WindowNoCollapse != 0 {
		w.Collapsed = false
	}
	if w.Collapsed {
		w.Size.Y = titleH
	}
	w.SkipItems = w.Collapsed

	innerH := maxf(0, w.Size.Y-titleH)
	w.ScrollMax = Vec2{0, maxf(0, w.ContentSize.Y+pad.Y*2-innerH)}
	w.scrollbarY = !w.Collapsed && w.Flags&WindowNoScrollbar == 0 && w.ScrollMax.Y > 0
	sbW := float32(0)
	if w.scrollbarY {
		sbW = style.ScrollbarSize
	}

	if ctx.wheelTarget == w && !w.Collapsed {
		step := minf(5*style.FontSize, innerH*0.67)
		w.Scroll.Y -= ctx.Input.MouseWheel * step
	}
	w.Scroll.Y = clampf(w.Scroll.Y, 0, w.ScrollMax.Y)
	w.Scroll.X = 0

	w.TitleBarRect = Rect{X: w.Pos.X, Y: w.Pos.Y, W: w.Size.X, H: titleH}
	w.InnerRect = Rect{X: w.Pos.X, Y: w.Pos.Y + titleH, W: maxf(0, w.Size.X-sbW), H: innerH}
	border := style.WindowBorderSize
	clip := Rect{X: w.InnerRect.X + border, Y: w.InnerRect.Y, W: maxf(0, w.InnerRect.W-border*2), H: maxf(0, w.InnerRect.H-border)}
	w.visibleRect = w.OuterRect()
	if parent != nil {
		clip = clip.Intersect(parent.ClipRect)
		w.visibleRect = w.visibleRect.Intersect(parent.ClipRect)
	}
	w.ClipRect = clip
}

func (ctx *Context) titleBarHeight(w *Window) float32 {
	if w.Flags&(WindowNoTitleBar|WindowChild|WindowTooltip) != 0 {
		return 0
	}
	return ctx.FrameHeight()
}

// renderWindowChrome draws background, title bar, border and scrollbar and
// runs the title bar buttons.
func (ctx *Context) renderWindowChrome(w *Window, open *bool) {
	style := &ctx.style
	dl := w.DrawList
	dl.PushClipRect(w.visibleRect, false)
	contentClip := w.ClipRect
	w.ClipRect = w.visibleRect
	defer func() {
		w.ClipRect = contentClip
		dl.PopClipRect()
	}()

	outer := w.OuterRect()
	if !w.Collapsed && w.Flags&WindowNoBackground == 0 {
		bg := ColWindowBg
		switch {
		case w.Flags&(WindowPopup|WindowTooltip) != 0:
			bg = ColPopupBg
		case w.isChild():
			bg = ColChildBg
		}
		body := Rect{X: outer.X, Y: w.InnerRect.Y, W: outer.W, H: w.InnerRect.H}
		dl.AddRectFilled(body.X, body.Y, body.W, body.H, style.Color(bg))
	}

	if tb := w.TitleBarRect; tb.H > 0 {
		col := ColTitleBg
		if w.Collapsed {
			col = ColTitleBgCollapsed
		} else if fw := ctx.focusedWindow; fw != nil && fw.RootWindow == w.RootWindow {
			col = ColTitleBgActive
		}
		dl.AddRectFilled(tb.X, tb.Y, tb.W, tb.H, style.Color(col))

		fs := style.FontSize
		textX := tb.X + style.FramePadding.X
		if w.Flags&WindowNoCollapse == 0 {
			r := Rect{X: textX, Y: tb.Y + style.FramePadding.Y, W: fs, H: fs}
			cid := Hash("#COLLAPSE", w.ID)
			ctx.keepAliveID(cid)
			if pressed, hovered, _ := ctx.ButtonBehavior(r, cid, 0); pressed {
				w.Collapsed = !w.Collapsed
			} else if hovered {
				dl.AddRectFilled(r.X, r.Y, r.W, r.H, style.Color(ColButtonHovered))
			}
			ctx.renderArrow(dl, r, !w.Collapsed, style.Color(ColText))
			textX += fs + style.ItemInnerSpacing.X
		}
		titleRight := tb.X + tb.W - style.FramePadding.X
		if open != nil {
			r := Rect{X: titleRight - fs, Y: tb.Y + style.FramePadding.Y, W: fs, H: fs}
			xid := Hash("#CLOSE", w.ID)
			ctx.keepAliveID(xid)
			pressed, hovered, _ := ctx.ButtonBehavior(r, xid, 0)
			if pressed {
				*open = false
				ctx.logger.Debug("window closed", "name", w.Name)
			}
			if hovered {
				dl.AddRectFilled(r.X, r.Y, r.W, r.H, style.Color(ColButtonHovered))
			}
			ctx.renderCross(dl, r, style.Color(ColText))
			titleRight = r.X - style.ItemInnerSpacing.X
		}
		if ctx.hoveredWindow == w && ctx.hoveredID == 0 && w.Flags&WindowNoCollapse == 0 &&
			ctx.Input.MouseDoubleClicked(MouseButtonLeft) && tb.Contains(ctx.Input.MousePos) {
			w.Collapsed = !w.Collapsed
		}
		dl.PushClipRect(Rect{X: tb.X, Y: tb.Y, W: maxf(0, titleRight-tb.X), H: tb.H}, true)
		ctx.renderText(dl, Vec2{textX, tb.Y + style.FramePadding.Y}, VisibleLabel(w.Name), style.Color(ColText))
		dl.PopClipRect()
	}

	if w.scrollbarY {
		ctx.scrollbarY(w)
	}

	if b := style.WindowBorderSize; b > 0 && (!w.isChild() || w.Flags&WindowBorder != 0) {
		dl.AddRect(outer.X, outer.Y, outer.W, outer.H, style.Color(ColBorder), b)
	}
}

// scrollbarY draws the vertical scrollbar and lets its grab be dragged.
func (ctx *Context) scrollbarY(w *Window) {
	style := &ctx.style
	bb := Rect{X: w.InnerRect.X + w.InnerRect.W, Y: w.InnerRect.Y, W: style.ScrollbarSize, H: w.InnerRect.H}
	viewH := w.InnerRect.H
	grabH := clampf(bb.H*viewH/(viewH+w.ScrollMax.Y), style.GrabMinSize, bb.H)
	travel := bb.H - grabH
	grabY := bb.Y
	if w.ScrollMax.Y > 0 {
		grabY += travel * w.Scroll.Y / w.ScrollMax.Y
	}

	id := Hash("#SCROLLY", w.ID)
	ctx.keepAliveID(id)
	_, hovered, held := ctx.ButtonBehavior(bb, id, ButtonPressOnClick)
	if held && travel > 0 {
		mouseY := ctx.Input.MousePos.Y
		if ctx.activeIDJustActivated {
			if mouseY >= grabY && mouseY < grabY+grabH {
				ctx.activeIDClickOffset = Vec2{0, mouseY - grabY}
			} else {
				ctx.activeIDClickOffset = Vec2{0, grabH / 2}
			}
		}
		t := clampf((mouseY-ctx.activeIDClickOffset.Y-bb.Y)/travel, 0, 1)
		w.Scroll.Y = t * w.ScrollMax.Y
		grabY = bb.Y + travel*t
	}

	col := ColScrollbarGrab
	switch {
	case held:
		col = ColScrollbarGrabActive
	case hovered:
		col = ColScrollbarGrabHovered
	}
	w.DrawList.AddRectFilled(bb.X, bb.Y, bb.W, bb.H, style.Color(ColScrollbarBg))
	w.DrawList.AddRectFilled(bb.X+2, grabY, bb.W-4, grabH, style.Color(col))
}

func (ctx *Context) resetWindowCursor(w *Window) {
	pad := w.padding
	start := Vec2{w.Pos.X + pad.X, w.InnerRect.Y + pad.Y - w.Scroll.Y}
	stacks := w.DC
	w.DC = windowTempData{
		CursorPos:         start,
		CursorPosPrevLine: start,
		CursorStartPos:    start,
		CursorMaxPos:      start,
		Indent:            pad.X,
		ItemWidth:         maxf(1, w.InnerRect.W*0.65),
		itemWidthStack:    stacks.itemWidthStack[:0],
		groupStack:        stacks.groupStack[:0],
		layoutStack:       stacks.layoutStack[:0],
	}
}

// End closes the window opened by the matching Begin.
func (ctx *Context) End() {
	w := ctx.mustWindow("End")
	if n := len(w.DC.groupStack); n > 0 {
		panic(usageErrorf("End", "%d BeginGroup left open in window %q; call EndGroup", n, w.Name))
	}
	if t := ctx.currentTbl; t != nil && t.window == w {
		panic(usageErrorf("End", "table %q still open in window %q; call EndTable", t.label, w.Name))
	}
	if len(ctx.idStack) != w.idStackBase {
		ctx.logger.Warn("ID stack unbalanced at End; discarding extra scopes", "window", w.Name,
			"extra", len(ctx.idStack)-w.idStackBase)
	}

	w.ContentSize = w.DC.CursorMaxPos.Sub(w.DC.CursorStartPos)
	ctx.maybeStartWindowMove(w)

	w.DrawList.PopClipRect()
	ctx.idStack = ctx.idStack[:w.idStackBase-1]
	ctx.windowStack = ctx.windowStack[:len(ctx.windowStack)-1]
	ctx.currentWindow = nil
	if n := len(ctx.windowStack); n > 0 {
		ctx.currentWindow = ctx.windowStack[n-1]
	}
}

// maybeStartWindowMove starts dragging the root window when a click lands
// on background no item claimed.
func (ctx *Context) maybeStartWindowMove(w *Window) {
	root := w.RootWindow
	if ctx.hoveredWindow != w || ctx.activeID != 0 || ctx.hoveredID != 0 {
		return
	}
	if root.Flags&(WindowNoMove|WindowPopup|WindowTooltip) != 0 || !ctx.Input.MouseClicked(MouseButtonLeft) {
		return
	}
	ctx.movingWindow = root
	ctx.movingOffset = ctx.Input.MousePos.Sub(root.Pos)
	ctx.SetActiveID(root.moveID, root)
	ctx.activeIDButton = MouseButtonLeft
	if verbose() {
		ctx.logger.Debug("window move started", "name", root.Name)
	}
}

// updateMovingWindow follows the pointer with the window being dragged.
func (ctx *Context) updateMovingWindow() {
	w := ctx.movingWindow
	if w == nil {
		return
	}
	if ctx.activeID != w.moveID {
		ctx.movingWindow = nil
		return
	}
	if !ctx.Input.MouseDown(MouseButtonLeft) {
		ctx.movingWindow = nil
		ctx.ClearActiveID()
		return
	}
	ctx.keepAliveID(w.moveID)
	if mousePosValid(ctx.Input.MousePos) {
		w.Pos = ctx.Input.MousePos.Sub(ctx.movingOffset)
	}
}

// hoverTarget descends into the child windows of w under pos, using last
// frame's child list.
func (ctx *Context) hoverTarget(w *Window, pos Vec2) *Window {
	for i := len(w.childWindowsPrev) - 1; i >= 0; i-- {
		c := w.childWindowsPrev[i]
		if !c.WasActive || c.Flags&WindowNoInputs != 0 {
			continue
		}
		if c.visibleRect.Contains(pos) {
			return ctx.hoverTarget(c, pos)
		}
	}
	return w
}

// updateWheelTarget picks the window the mouse wheel scrolls: the hovered
// window or its nearest scrollable ancestor.
func (ctx *Context) updateWheelTarget() {
	ctx.wheelTarget = nil
	if ctx.Input.MouseWheel == 0 {
		return
	}
	for w := ctx.hoveredWindow; w != nil; w = w.ParentWindow {
		if w.Flags&WindowNoScrollWithMouse != 0 {
			return
		}
		if w.ScrollMax.Y > 0 {
			ctx.wheelTarget = w
			return
		}
	}
}

// BeginChild opens a scrolling region inside the current window.
// Non-positive size components mean "remaining space minus |v|".
func (ctx *Context) BeginChild(strID string, size Vec2, border bool, flags WindowFlags) bool {
	parent := ctx.mustWindow("BeginChild")
	id := ctx.GetID(strID)
	avail := ctx.ContentRegionAvail()
	if size.X <= 0 {
		size.X = maxf(4, avail.X+size.X)
	}
	if size.Y <= 0 {
		size.Y = maxf(4, avail.Y+size.Y)
	}
	flags |= WindowChild | WindowNoTitleBar | WindowNoMove | WindowNoCollapse
	if border {
		flags |= WindowBorder
	}
	name := fmt.Sprintf("%s/%s_%08X", parent.Name, VisibleLabel(strID), uint32(id))
	ctx.SetNextWindowPos(parent.DC.CursorPos, CondAlways)
	ctx.SetNextWindowSize(size, CondAlways)
	visible := ctx.Begin(name, nil, flags)
	ctx.currentWindow.childID = id
	return visible
}

// EndChild closes the region opened by BeginChild and lays it out in the
// parent as a single item.
func (ctx *Context) EndChild() {
	w := ctx.mustWindow("EndChild")
	if !w.isChild() {
		panic(usageErrorf("EndChild", "current window %q is not a child; call End instead", w.Name))
	}
	size := w.Size
	id := w.childID
	ctx.End()

	parent := ctx.currentWindow
	bb := Rect{X: parent.DC.CursorPos.X, Y: parent.DC.CursorPos.Y, W: size.X, H: size.Y}
	ctx.ItemSize(size)
	ctx.ItemAdd(bb, id)
}

// SetScrollY sets the current window's vertical scroll offset.
func (ctx *Context) SetScrollY(y float32) {
	w := ctx.mustWindow("SetScrollY")
	w.Scroll.Y = clampf(y, 0, w.ScrollMax.Y)
}

// ScrollY returns the current window's vertical scroll offset.
func (ctx *Context) ScrollY() float32 {
	return ctx.mustWindow("ScrollY").Scroll.Y
}

// ScrollMaxY returns the current window's largest scroll offset.
func (ctx *Context) ScrollMaxY() float32 {
	return ctx.mustWindow("ScrollMaxY").ScrollMax.Y
}

// SetScrollHereY scrolls so the cursor line sits at ratio (0 top, 1 bottom)
// of the visible region, from the next frame.
func (ctx *Context) SetScrollHereY(ratio float32) {
	w := ctx.mustWindow("SetScrollHereY")
	localY := w.DC.CursorPosPrevLine.Y - w.DC.CursorStartPos.Y
	target := localY - w.InnerRect.H*ratio + w.DC.PrevLineHeight*ratio
	w.Scroll.Y = clampf(target, 0, maxf(w.ScrollMax.Y, target))
}

// IsWindowHovered reports whether the current window is under the pointer.
func (ctx *Context) IsWindowHovered() bool {
	return ctx.hoveredWindow == ctx.mustWindow("IsWindowHovered")
}

// IsWindowFocused reports whether the current window's root has focus.
func (ctx *Context) IsWindowFocused() bool {
	w := ctx.mustWindow("IsWindowFocused")
	return ctx.focusedWindow != nil && ctx.focusedWindow.RootWindow == w.RootWindow
}

// SetWindowFocus focuses the window named name, or clears focus when "".
func (ctx *Context) SetWindowFocus(name string) {
	if name == "" {
		ctx.focusWindow(nil)
		return
	}
	if w := ctx.FindWindowByName(name); w != nil {
		ctx.focusWindow(w)
	}
}

// WindowPos returns the current window's screen position.
func (ctx *Context) WindowPos() Vec2 { return ctx.mustWindow("WindowPos").Pos }

// WindowSize returns the current window's size.
func (ctx *Context) WindowSize() Vec2 { return ctx.mustWindow("WindowSize").Size }
