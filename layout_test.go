package imcore

import "testing"

func TestSameLine(t *testing.T) {
	h := newHarness(t)
	var a, b, c Rect
	h.frame(func(ctx *Context) {
		ctx.Button("A")
		a = ctx.ItemRect()
		ctx.SameLine()
		ctx.Button("B")
		b = ctx.ItemRect()
		ctx.Button("C")
		c = ctx.ItemRect()
	})
	if a != (Rect{X: 8, Y: 8, W: 15, H: 19}) {
		t.Errorf("A = %+v", a)
	}
	if b.X != a.X+a.W+8 || b.Y != a.Y {
		t.Errorf("B = %+v, want right of A", b)
	}
	if c.X != 8 || c.Y != 8+19+4 {
		t.Errorf("C = %+v, want next line", c)
	}
}

func TestNewLineAfterSameLine(t *testing.T) {
	h := newHarness(t)
	var y float32
	h.frame(func(ctx *Context) {
		ctx.Text("a")
		ctx.SameLine()
		ctx.NewLine()
		ctx.Text("b")
		y = ctx.ItemRect().Y
	})
	if y != 8+13+4 {
		t.Errorf("NewLine after SameLine should only finish the line, y=%v", y)
	}
}

func TestGroupIsOneItem(t *testing.T) {
	h := newHarness(t)
	var group, after Rect
	h.frame(func(ctx *Context) {
		ctx.BeginGroup()
		ctx.Text("a")
		ctx.Text("bbb")
		ctx.EndGroup()
		group = ctx.ItemRect()
		ctx.Text("next")
		after = ctx.ItemRect()
	})
	if group != (Rect{X: 8, Y: 8, W: 21, H: 30}) {
		t.Errorf("group rect = %+v", group)
	}
	if after.Y != 8+30+4 {
		t.Errorf("item after group at y=%v", after.Y)
	}
}

func TestGroupSameLine(t *testing.T) {
	h := newHarness(t)
	var right Rect
	h.frame(func(ctx *Context) {
		ctx.BeginGroup()
		ctx.Text("a")
		ctx.Text("bbb")
		ctx.EndGroup()
		ctx.SameLine()
		ctx.Text("side")
		right = ctx.ItemRect()
	})
	if right.X != 8+21+8 || right.Y != 8 {
		t.Errorf("text beside group = %+v", right)
	}
}

func TestIndent(t *testing.T) {
	h := newHarness(t)
	var in, out float32
	h.frame(func(ctx *Context) {
		ctx.Indent(0)
		ctx.Text("in")
		in = ctx.ItemRect().X
		ctx.Unindent(0)
		ctx.Text("out")
		out = ctx.ItemRect().X
	})
	if in != 29 || out != 8 {
		t.Errorf("indent x=%v unindent x=%v", in, out)
	}
}

func TestClippedItemStillAdvances(t *testing.T) {
	h := newHarness(t)
	var visible bool
	var y float32
	h.frame(func(ctx *Context) {
		ctx.Dummy(Vec2{10, 1000})
		ctx.Text("below")
		visible = ctx.IsItemVisible()
		y = ctx.ItemRect().Y
	})
	if visible {
		t.Error("item past the window bottom should be clipped")
	}
	if y != 8+1000+4 {
		t.Errorf("clipped item y = %v", y)
	}
}

func TestStacks(t *testing.T) {
	h := newHarness(t)
	var b, tight, second Rect
	h.frame(func(ctx *Context) {
		ctx.HStack()(func() {
			ctx.Button("A")
			ctx.Button("B")
			b = ctx.ItemRect()
		})
		ctx.HStack(Gap(2))(func() {
			ctx.Button("A")
			ctx.Button("B")
			tight = ctx.ItemRect()
		})
		ctx.VStack(Gap(10))(func() {
			ctx.Text("one")
			ctx.Text("two")
			second = ctx.ItemRect()
		})
	})
	if b.X != 8+15+8 || b.Y != 8 {
		t.Errorf("HStack second item = %+v", b)
	}
	row2 := float32(8 + 19 + 4)
	if tight.X != 8+15+2 || tight.Y != row2 {
		t.Errorf("HStack with gap = %+v", tight)
	}
	if second.Y != row2+19+4+13+10 {
		t.Errorf("VStack with gap second item y = %v", second.Y)
	}
}

func TestItemWidthStack(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		if w := ctx.CalcItemWidth(); w != 260 {
			t.Errorf("default item width = %v", w)
		}
		ctx.PushItemWidth(100)
		if w := ctx.CalcItemWidth(); w != 100 {
			t.Errorf("pushed width = %v", w)
		}
		// Negative widths leave room at the right edge (392).
		ctx.PushItemWidth(-50)
		if w := ctx.CalcItemWidth(); w != 334 {
			t.Errorf("right-aligned width = %v", w)
		}
		ctx.PopItemWidth()
		ctx.PopItemWidth()
		if w := ctx.CalcItemWidth(); w != 260 {
			t.Errorf("restored width = %v", w)
		}
		expectUsagePanic(t, "PopItemWidth", ctx.PopItemWidth)
	})
}

func TestCursorPositioning(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		if got := ctx.ContentRegionAvail(); got != (Vec2{384, 284}) {
			t.Errorf("ContentRegionAvail = %v", got)
		}
		if got := ctx.CursorPos(); got != (Vec2{8, 8}) {
			t.Errorf("CursorPos = %v", got)
		}
		ctx.SetCursorPos(Vec2{50, 60})
		ctx.Button("here")
		if r := ctx.ItemRect(); r.X != 50 || r.Y != 60 {
			t.Errorf("button at %v,%v; want 50,60", r.X, r.Y)
		}
		ctx.SetCursorScreenPos(Vec2{100, 200})
		if got := ctx.CursorScreenPos(); got != (Vec2{100, 200}) {
			t.Errorf("CursorScreenPos = %v", got)
		}
	})
}

func TestFrameHeights(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		if ctx.TextLineHeight() != 13 || ctx.FrameHeight() != 19 || ctx.FrameHeightWithSpacing() != 23 {
			t.Errorf("line=%v frame=%v frame+spacing=%v", ctx.TextLineHeight(), ctx.FrameHeight(), ctx.FrameHeightWithSpacing())
		}
	})
}
