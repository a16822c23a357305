package imcore

import "strings"

// listBoxHeightItems is the default visible row count.
const listBoxHeightItems = 7

// BeginListBox opens a framed scrolling region sized for about seven rows,
// or OptHeight pixels. When it returns true, submit items (usually
// Selectable) and call EndListBox.
func (ctx *Context) BeginListBox(label string, opts ...Option) bool {
	w := ctx.mustWindow("BeginListBox")
	o := applyOptions(opts)
	height := ctx.TextLineHeight()*listBoxHeightItems + ctx.style.ItemSpacing.Y*(listBoxHeightItems-1) +
		ctx.style.WindowPadding.Y*2
	size := ctx.frameSize(w, o, Vec2{ctx.CalcItemWidth(), height})

	ctx.BeginGroup()
	if !ctx.BeginChild(label, size, true, WindowNone) {
		ctx.EndChild()
		ctx.EndGroup()
		return false
	}
	ctx.listBoxStack = append(ctx.listBoxStack, VisibleLabel(label))
	return true
}

// EndListBox closes a BeginListBox that returned true.
func (ctx *Context) EndListBox() {
	n := len(ctx.listBoxStack)
	if n == 0 {
		panic(usageErrorf("EndListBox", "EndListBox without BeginListBox"))
	}
	text := ctx.listBoxStack[n-1]
	ctx.listBoxStack = ctx.listBoxStack[:n-1]
	ctx.EndChild()
	if text != "" {
		ctx.SameLineEx(0, ctx.style.ItemInnerSpacing.X)
		ctx.Text(text)
	}
	ctx.EndGroup()
}

// ListBox selects one of items by index and returns true when *current
// changed. A non-empty OptFilter hides items not containing it,
// ignoring case.
func (ctx *Context) ListBox(label string, current *int, items []string, opts ...Option) bool {
	o := applyOptions(opts)
	if !ctx.BeginListBox(label, opts...) {
		return false
	}
	filter := strings.ToLower(GetOpt(o, OptFilter))
	changed := false
	for i, item := range items {
		if filter != "" && !strings.Contains(strings.ToLower(item), filter) {
			continue
		}
		ctx.PushIDInt(i)
		if ctx.Selectable(item, i == *current) && i != *current {
			*current = i
			changed = true
		}
		ctx.PopID()
	}
	ctx.EndListBox()
	if changed {
		ctx.markEdited()
	}
	return changed
}
