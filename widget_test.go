package imcore

import "testing"

// click presses and releases at p over two frames of decl.
func (h *harness) click(p Vec2, decl func(ctx *Context)) {
	h.t.Helper()
	h.moveTo(p)
	h.press()
	h.frame(decl)
	h.release()
	h.frame(decl)
}

func TestSliderFloatFollowsPointer(t *testing.T) {
	h := newHarness(t)
	v := float32(0)
	var changed bool
	decl := func(ctx *Context) { changed = ctx.SliderFloat("Volume", &v, 0, 100) }
	var rect Rect
	h.frame(func(ctx *Context) { decl(ctx); rect = ctx.ItemRect() })

	// The frame is the first CalcItemWidth (260) pixels; its middle maps to 50%.
	h.moveTo(Vec2{rect.X + 130, rect.Y + rect.H/2})
	h.press()
	h.frame(decl)
	if !changed || v != 50 {
		t.Errorf("changed=%v value=%v, want 50", changed, v)
	}

	h.moveTo(Vec2{399, rect.Y + rect.H/2})
	h.frame(decl)
	if v != 100 {
		t.Errorf("dragging past the end should clamp, got %v", v)
	}
	h.release()
	h.frame(decl)
}

func TestSliderIntKeyboard(t *testing.T) {
	h := newHarness(t)
	v := 5
	var id ID
	decl := func(ctx *Context) { ctx.SliderInt("Level", &v, 0, 10); id = ctx.LastItemID() }
	h.frame(decl)

	h.ctx.SetFocusID(id)
	h.key(KeyRight)
	h.frame(decl)
	if v != 6 {
		t.Errorf("Right should step by one, got %d", v)
	}
	h.keyUp(KeyRight)
	h.frame(decl)
	for i := 0; i < 2; i++ {
		h.key(KeyLeft)
		h.frame(decl)
		h.keyUp(KeyLeft)
		h.frame(decl)
	}
	if v != 4 {
		t.Errorf("two Left presses should give 4, got %d", v)
	}
}

func TestSnapValue(t *testing.T) {
	tests := []struct {
		v, minVal, step, want float32
	}{
		{0.26, 0, 0.25, 0.25},
		{0.4, 0, 0.25, 0.5},
		{7, 1, 3, 7},
		{3.3, 0, 0, 3.3},
	}
	for _, tt := range tests {
		if got := snapValue(tt.v, tt.minVal, tt.step); got != tt.want {
			t.Errorf("snapValue(%v, %v, %v) = %v, want %v", tt.v, tt.minVal, tt.step, got, tt.want)
		}
	}
}

func TestDragFloat(t *testing.T) {
	h := newHarness(t)
	f := float32(1)
	var rect Rect
	decl := func(ctx *Context) { ctx.DragFloat("Speed", &f, WithRange(0, 20)) }
	h.frame(func(ctx *Context) { decl(ctx); rect = ctx.ItemRect() })

	start := Vec2{rect.X + 50, rect.Y + rect.H/2}
	h.moveTo(start)
	h.press()
	h.frame(decl)
	if f != 1 {
		t.Fatalf("the click frame must not change the value, got %v", f)
	}

	h.moveTo(start.Add(Vec2{10, 0}))
	h.frame(decl)
	if f != 11 {
		t.Errorf("10px at speed 1 should add 10, got %v", f)
	}
	h.moveTo(start.Add(Vec2{100, 0}))
	h.frame(decl)
	if f != 20 {
		t.Errorf("range should clamp to 20, got %v", f)
	}
	h.release()
	h.frame(decl)
}

func TestDragIntAccumulatesFractions(t *testing.T) {
	h := newHarness(t)
	n := 0
	var rect Rect
	decl := func(ctx *Context) { ctx.DragInt("Count", &n, WithDragSpeed(0.25)) }
	h.frame(func(ctx *Context) { decl(ctx); rect = ctx.ItemRect() })

	p := Vec2{rect.X + 50, rect.Y + rect.H/2}
	h.moveTo(p)
	h.press()
	h.frame(decl)
	p.X += 10
	h.moveTo(p)
	h.frame(decl)
	if n != 2 {
		t.Fatalf("10px at 0.25 should give 2, got %d", n)
	}
	p.X += 2
	h.moveTo(p)
	h.frame(decl)
	if n != 3 {
		t.Errorf("leftover 0.5 plus 0.5 should add one, got %d", n)
	}
}

func TestTreeNodeToggle(t *testing.T) {
	h := newHarness(t)
	var open, toggled bool
	var childX float32
	decl := func(ctx *Context) {
		open = ctx.TreeNode("Node")
		toggled = ctx.IsItemToggledOpen()
		if open {
			ctx.Text("child")
			childX = ctx.ItemRect().X
			ctx.TreePop()
		}
	}
	var rect Rect
	h.frame(func(ctx *Context) { decl(ctx); rect = ctx.ItemRect() })
	if open {
		t.Fatal("nodes start closed")
	}

	h.moveTo(Vec2{rect.X + 5, rect.Y + rect.H/2})
	h.press()
	h.frame(decl)
	if !open || !toggled {
		t.Fatalf("click should open the node: open=%v toggled=%v", open, toggled)
	}
	if childX != 8+21 {
		t.Errorf("children indent by IndentSpacing, x=%v", childX)
	}
	h.release()
	h.frame(decl)
	if !open || toggled {
		t.Error("node should stay open without toggling again")
	}
}

func TestTreeNodeOpenState(t *testing.T) {
	h := newHarness(t)
	var forced, leaf, header bool
	h.frame(func(ctx *Context) {
		ctx.SetNextItemOpen(true, CondOnce)
		if forced = ctx.TreeNode("Seeded"); forced {
			ctx.TreePop()
		}
		if leaf = ctx.TreeNode("Leaf", WithOpt(OptLeaf, true)); leaf {
			ctx.TreePop()
		}
		header = ctx.CollapsingHeader("Header", DefaultOpen())
	})
	if !forced || !leaf || !header {
		t.Errorf("seeded=%v leaf=%v header=%v, want all open", forced, leaf, header)
	}
	h.frame(func(ctx *Context) {
		expectUsagePanic(t, "TreePop", ctx.TreePop)
	})
}

func TestComboSelectsItem(t *testing.T) {
	h := newHarness(t)
	items := []string{"Low", "Medium", "High"}
	current := 0
	var changed bool
	decl := func(ctx *Context) { changed = ctx.Combo("Quality", &current, items) || changed }
	var rect Rect
	h.frame(func(ctx *Context) { decl(ctx); rect = ctx.ItemRect() })

	h.click(Vec2{rect.X + 20, rect.Y + rect.H/2}, decl)
	if h.ctx.OpenPopupCount() != 1 {
		t.Fatal("clicking the combo should open its dropdown")
	}

	// The dropdown sits under the frame; rows start one WindowPadding in.
	rowY := rect.Y + rect.H + 8 + 2*17 + 6
	h.moveTo(Vec2{rect.X + 20, rowY})
	h.frame(decl)
	h.click(Vec2{rect.X + 20, rowY}, decl)
	if !changed || current != 2 {
		t.Errorf("changed=%v current=%d, want High selected", changed, current)
	}
	if h.ctx.OpenPopupCount() != 0 {
		t.Error("choosing an item should close the dropdown")
	}
}

func TestListBoxFilter(t *testing.T) {
	h := newHarness(t)
	items := []string{"apple", "banana", "cherry"}
	current := -1
	var changed bool
	decl := func(ctx *Context) {
		changed = ctx.ListBox("Fruit", &current, items, WithFilter("AN")) || changed
	}
	h.frame(decl)

	// Only "banana" passes the filter, so it is the first row.
	h.click(Vec2{40, 8 + 8 + 6}, decl)
	if !changed || current != 1 {
		t.Errorf("changed=%v current=%d, want banana", changed, current)
	}
}

func TestRadioGroup(t *testing.T) {
	h := newHarness(t)
	selected := 0
	var changed bool
	decl := func(ctx *Context) {
		changed = ctx.RadioGroup("Mode", &selected, []string{"A", "B"}) || changed
	}
	h.frame(decl)

	// Label line, then one FrameHeight row per item.
	second := Vec2{8 + 9, 8 + 13 + 4 + 19 + 4 + 9}
	h.click(second, decl)
	if !changed || selected != 1 {
		t.Errorf("changed=%v selected=%d, want 1", changed, selected)
	}
}

func TestRadioButtonInt(t *testing.T) {
	h := newHarness(t)
	v := 0
	var rect Rect
	decl := func(ctx *Context) { ctx.RadioButtonInt("three", &v, 3) }
	h.frame(func(ctx *Context) { decl(ctx); rect = ctx.ItemRect() })
	h.click(center(rect), decl)
	if v != 3 {
		t.Errorf("v = %d, want 3", v)
	}
}

func TestInputIntStepButtons(t *testing.T) {
	h := newHarness(t)
	n := 9
	decl := func(ctx *Context) { ctx.InputInt("Count", &n, WithRange(0, 10)) }
	h.frame(decl)

	// "+" follows the text field (260-2*23 wide) and the "-" button.
	plus := Vec2{8 + 214 + 4 + 19 + 4 + 9, 8 + 9}
	h.click(plus, decl)
	if n != 10 {
		t.Errorf("+ should step to 10, got %d", n)
	}
	h.click(plus, decl)
	if n != 10 {
		t.Errorf("range should cap at 10, got %d", n)
	}
}

func TestParseScalar(t *testing.T) {
	tests := []struct {
		in    string
		isInt bool
		want  float32
		ok    bool
	}{
		{" 42 ", true, 42, true},
		{"4.5", true, 0, false},
		{"4.5", false, 4.5, true},
		{"NaN", false, 0, false},
		{"", false, 0, false},
	}
	for _, tt := range tests {
		got, ok := parseScalar(tt.in, tt.isInt)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("parseScalar(%q, %v) = %v, %v", tt.in, tt.isInt, got, ok)
		}
	}
}

func TestProgressBarOverlay(t *testing.T) {
	h := newHarness(t)
	var rect Rect
	h.frame(func(ctx *Context) {
		ctx.ProgressBar(1.5, "")
		rect = ctx.ItemRect()
	})
	if rect.W != 260 || rect.H != 19 {
		t.Errorf("bar rect = %+v", rect)
	}
	var found bool
	for _, cmd := range h.dd.CmdLists[0].CmdBuffer {
		if cmd.Text != nil && cmd.Text.Text == "100%" {
			found = true
		}
	}
	if !found {
		t.Error("fraction should clamp and default to a percentage overlay")
	}
}

func TestSelectableClosesPopup(t *testing.T) {
	h := newHarness(t)
	var picked bool
	decl := func(ctx *Context) {
		if ctx.BeginPopup("menu", 0) {
			if ctx.Selectable("Item", false) {
				picked = true
			}
			ctx.EndPopup()
		}
	}
	h.moveTo(Vec2{100, 100})
	h.frame(func(ctx *Context) { ctx.OpenPopup("menu"); decl(ctx) })
	h.frame(decl)
	h.frame(decl)

	// The popup opened at the pointer; its first row is one padding in.
	h.click(Vec2{100 + 8 + 2, 100 + 8 + 6}, decl)
	if !picked {
		t.Fatal("Selectable should report the press")
	}
	if h.ctx.OpenPopupCount() != 0 {
		t.Error("pressing a Selectable inside a popup closes it")
	}
}

func TestPlotScaleAndIndex(t *testing.T) {
	lo, hi := plotScale([]float32{3, 3}, applyOptions(nil))
	if lo != 3 || hi != 4 {
		t.Errorf("flat data scale = %v..%v, want 3..4", lo, hi)
	}
	lo, hi = plotScale(nil, applyOptions(nil))
	if lo != 0 || hi != 1 {
		t.Errorf("empty scale = %v..%v", lo, hi)
	}
	lo, hi = plotScale([]float32{-5, 50}, applyOptions([]Option{WithRange(0, 10)}))
	if lo != 0 || hi != 10 {
		t.Errorf("fixed range ignored: %v..%v", lo, hi)
	}

	if got := plotIndexAt(plotLines, 50, 100, 5); got != 2 {
		t.Errorf("lines index = %d, want 2", got)
	}
	if got := plotIndexAt(plotHistogram, 99, 100, 4); got != 3 {
		t.Errorf("histogram index = %d, want 3", got)
	}
	if got := plotIndexAt(plotLines, 10, 100, 0); got != -1 {
		t.Errorf("empty plot index = %d", got)
	}
}

func TestPlotLinesLayout(t *testing.T) {
	h := newHarness(t)
	var rect Rect
	h.frame(func(ctx *Context) {
		ctx.PlotLines("fps", []float32{1, 2, 3})
		rect = ctx.ItemRect()
		ctx.PlotHistogram("##hist", []float32{1, 2}, WithHeight(60))
	})
	if rect.H != 38 {
		t.Errorf("default plot height = %v, want two frame heights", rect.H)
	}
}
