package imcore

import "fmt"

// popupRef is one open popup. The open list doubles as the nesting stack:
// entry i is the popup opened from inside popup i-1.
type popupRef struct {
	ID        ID
	Window    *Window
	OpenFrame uint64
	OpenPos   Vec2
}

type popupState struct {
	open  []popupRef // Open popups, outermost first
	begun []popupRef // Popups currently between BeginPopup and EndPopup

	// Popups the last click closed; their opener must not reopen them on
	// that same click.
	clickClosed      []ID
	clickClosedFrame uint64
}

func (p *popupState) closedByClickAt(id ID, frame uint64) bool {
	if p.clickClosedFrame != frame {
		return false
	}
	for _, c := range p.clickClosed {
		if c == id {
			return true
		}
	}
	return false
}

// OpenPopup marks the popup strID as open at the current nesting level,
// closing any deeper popups. The popup appears at the pointer.
func (ctx *Context) OpenPopup(strID string) {
	ctx.openPopupEx(ctx.GetID(strID))
}

func (ctx *Context) openPopupEx(id ID) {
	p := &ctx.popups
	level := len(p.begun)
	ref := popupRef{ID: id, OpenFrame: ctx.FrameCount, OpenPos: ctx.Input.MousePos}
	if !mousePosValid(ref.OpenPos) {
		ref.OpenPos = ctx.DisplaySize.Mul(0.5)
	}
	if level < len(p.open) && p.open[level].ID == id {
		// Reopening keeps the window but moves it to the new pointer position.
		p.open[level].OpenFrame = ctx.FrameCount
		p.open[level].OpenPos = ref.OpenPos
		p.open = p.open[:level+1]
		return
	}
	if level < len(p.open) {
		ctx.closePopupsFrom(level)
	}
	p.open = append(p.open, ref)
	ctx.logger.Debug("popup opened", "id", id, "level", level, "frame", ctx.FrameCount)
}

// IsPopupOpen reports whether strID is open at the current nesting level.
func (ctx *Context) IsPopupOpen(strID string) bool {
	return ctx.isPopupOpenAtLevel(ctx.GetID(strID))
}

func (ctx *Context) isPopupOpenAtLevel(id ID) bool {
	level := len(ctx.popups.begun)
	return level < len(ctx.popups.open) && ctx.popups.open[level].ID == id
}

// OpenPopupCount returns how many popups are open.
func (ctx *Context) OpenPopupCount() int {
	return len(ctx.popups.open)
}

// BeginPopup declares the contents of popup strID. It returns false when
// the popup is closed; EndPopup is only called after a true return.
func (ctx *Context) BeginPopup(strID string, flags WindowFlags) bool {
	ctx.mustWindow("BeginPopup")
	return ctx.beginPopupEx(ctx.GetID(strID), nil, flags)
}

// beginPopupEx begins popup id at pos, or at the pointer position captured
// when it opened.
func (ctx *Context) beginPopupEx(id ID, pos *Vec2, flags WindowFlags) bool {
	if !ctx.isPopupOpenAtLevel(id) {
		ctx.nextWindow = nextWindowData{}
		return false
	}
	p := &ctx.popups
	ref := &p.open[len(p.begun)]
	at := ref.OpenPos
	if pos != nil {
		at = *pos
	}
	ctx.SetNextWindowPos(Vec2{clampf(at.X, 0, maxf(0, ctx.DisplaySize.X-8)), clampf(at.Y, 0, maxf(0, ctx.DisplaySize.Y-8))}, CondAlways)

	name := fmt.Sprintf("##Popup_%08x", uint32(id))
	flags |= WindowPopup | WindowNoTitleBar | WindowNoMove | WindowAlwaysAutoResize | WindowNoCollapse
	ctx.Begin(name, nil, flags)
	ref.Window = ctx.currentWindow
	p.begun = append(p.begun, *ref)
	return true
}

// EndPopup closes the contents opened by a successful BeginPopup.
func (ctx *Context) EndPopup() {
	w := ctx.mustWindow("EndPopup")
	n := len(ctx.popups.begun)
	if n == 0 || w.Flags&WindowPopup == 0 {
		panic(usageErrorf("EndPopup", "no matching BeginPopup"))
	}
	ctx.End()
	ctx.popups.begun = ctx.popups.begun[:n-1]
}

// CloseCurrentPopup closes the popup being declared and any inside it.
func (ctx *Context) CloseCurrentPopup() {
	n := len(ctx.popups.begun)
	if n == 0 {
		panic(usageErrorf("CloseCurrentPopup", "not inside BeginPopup"))
	}
	ctx.closePopupsFrom(n - 1)
}

// BeginPopupContextItem opens popup strID when the last item is
// right-clicked, then behaves like BeginPopup.
func (ctx *Context) BeginPopupContextItem(strID string, flags WindowFlags) bool {
	ctx.mustWindow("BeginPopupContextItem")
	id := ctx.GetID(strID)
	if ctx.IsItemHovered() && ctx.Input.MouseReleased(MouseButtonRight) {
		ctx.openPopupEx(id)
	}
	return ctx.BeginPopup(strID, flags)
}

func (ctx *Context) closePopupsFrom(level int) {
	p := &ctx.popups
	if level >= len(p.open) {
		return
	}
	for _, ref := range p.open[level:] {
		ctx.logger.Debug("popup closed", "id", ref.ID, "frame", ctx.FrameCount)
	}
	p.open = p.open[:level]
}

// closeOutside runs on a click: popups above the one under the pointer close.
func (p *popupState) closeOutside(ctx *Context, hovered *Window) {
	if len(p.open) == 0 {
		return
	}
	keep := 0
	if hovered != nil {
		root := hovered.RootWindow
		for i := len(p.open) - 1; i >= 0; i-- {
			if p.open[i].Window != nil && p.open[i].Window == root {
				keep = i + 1
				break
			}
		}
	}
	p.clickClosed = p.clickClosed[:0]
	p.clickClosedFrame = ctx.FrameCount
	for _, ref := range p.open[min(keep, len(p.open)):] {
		p.clickClosed = append(p.clickClosed, ref.ID)
	}
	ctx.closePopupsFrom(keep)
}

// endFrame checks that every BeginPopup got its EndPopup and drops popups
// whose declaring code stopped running.
func (p *popupState) endFrame(ctx *Context) {
	if len(p.begun) > 0 {
		panic(usageErrorf("EndFrame", "%d BeginPopup without EndPopup", len(p.begun)))
	}
	for i, ref := range p.open {
		if ref.OpenFrame+1 < ctx.FrameCount && (ref.Window == nil || !ref.Window.Active) {
			ctx.closePopupsFrom(i)
			return
		}
	}
}
