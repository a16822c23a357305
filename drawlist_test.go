package imcore

import "testing"

func TestDrawListMergesCommands(t *testing.T) {
	dl := NewDrawList()
	dl.AddRectFilled(0, 0, 10, 10, ColorWhite)
	dl.AddRectFilled(20, 0, 10, 10, ColorRed)
	dl.AddLine(0, 0, 10, 10, ColorBlue, 1)

	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("expected 1 command, got %d", len(dl.CmdBuffer))
	}
	if len(dl.VtxBuffer) != 12 || len(dl.IdxBuffer) != 18 {
		t.Errorf("vtx=%d idx=%d, want 12 and 18", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if dl.CmdBuffer[0].ElemCount != 18 {
		t.Errorf("ElemCount = %d, want 18", dl.CmdBuffer[0].ElemCount)
	}
}

func TestDrawListSkipsTransparentAndEmpty(t *testing.T) {
	dl := NewDrawList()
	dl.AddRectFilled(0, 0, 10, 10, ColorTransparent)
	dl.AddRectFilled(0, 0, 0, 10, ColorWhite)
	dl.AddText(nil, 13, 0, 0, "", ColorWhite)
	if !dl.Empty() {
		t.Error("nothing visible was drawn; list should be empty")
	}
}

func TestDrawListClipChangeSplits(t *testing.T) {
	dl := NewDrawList()
	dl.AddRectFilled(0, 0, 10, 10, ColorWhite)
	dl.PushClipRect(Rect{X: 0, Y: 0, W: 50, H: 50}, false)
	dl.AddRectFilled(5, 5, 10, 10, ColorWhite)
	dl.PopClipRect()
	dl.AddRectFilled(30, 30, 10, 10, ColorWhite)

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(dl.CmdBuffer))
	}
	if got := dl.CmdBuffer[1].ClipRect; got != [4]float32{0, 0, 50, 50} {
		t.Errorf("clip rect = %v", got)
	}
	if dl.CmdBuffer[2].IndexOffset != 12 {
		t.Errorf("third command IndexOffset = %d, want 12", dl.CmdBuffer[2].IndexOffset)
	}
}

func TestDrawListPushWithoutDrawReusesCommand(t *testing.T) {
	dl := NewDrawList()
	dl.AddRectFilled(0, 0, 10, 10, ColorWhite)
	dl.PushClipRect(Rect{W: 5, H: 5}, false)
	dl.PopClipRect()
	dl.PushClipRect(Rect{W: 20, H: 20}, false)
	dl.AddRectFilled(0, 0, 10, 10, ColorWhite)
	dl.AddRectFilled(0, 0, 10, 10, ColorWhite)
	dl.PopClipRect()
	if len(dl.CmdBuffer) != 2 {
		t.Errorf("expected 2 commands, got %d", len(dl.CmdBuffer))
	}
}

func TestDrawListIntersectClip(t *testing.T) {
	dl := NewDrawList()
	dl.PushClipRect(Rect{X: 0, Y: 0, W: 100, H: 100}, false)
	dl.PushClipRect(Rect{X: 50, Y: 50, W: 100, H: 100}, true)
	if got := dl.ClipRectCurrent(); got != (Rect{X: 50, Y: 50, W: 50, H: 50}) {
		t.Errorf("intersected clip = %+v", got)
	}
	dl.PopClipRect()
	dl.PopClipRect()
}

func TestDrawListClipUnderflowPanics(t *testing.T) {
	defer func() {
		if _, ok := recover().(*UsageError); !ok {
			t.Error("PopClipRect on an empty stack should panic with *UsageError")
		}
	}()
	NewDrawList().PopClipRect()
}

func TestDrawListSplitsAt16BitLimit(t *testing.T) {
	dl := NewDrawList()
	quads := maxVerticesPerCmd/4 + 10
	for i := 0; i < quads; i++ {
		dl.AddRectFilled(float32(i%100), 0, 1, 1, ColorWhite)
	}
	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands past 65536 vertices, got %d", len(dl.CmdBuffer))
	}
	second := dl.CmdBuffer[1]
	if second.VertexOffset != maxVerticesPerCmd {
		t.Errorf("second VertexOffset = %d, want %d", second.VertexOffset, maxVerticesPerCmd)
	}
	if second.ElemCount != 10*6 {
		t.Errorf("second ElemCount = %d, want 60", second.ElemCount)
	}
	// Indices stay relative to the command's vertex offset.
	for _, idx := range dl.IdxBuffer[second.IndexOffset:] {
		if int(idx) >= len(dl.VtxBuffer)-int(second.VertexOffset) {
			t.Fatalf("index %d out of range for second command", idx)
		}
	}
}

func TestCircleSegmentsFitOneCommand(t *testing.T) {
	dl := NewDrawList()
	dl.AddRectFilled(0, 0, 1, 1, ColorWhite)
	dl.AddCircleFilled(50, 50, 10, ColorWhite, 100000)

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected the circle in its own command, got %d commands", len(dl.CmdBuffer))
	}
	circle := dl.CmdBuffer[1]
	if n := len(dl.VtxBuffer) - int(circle.VertexOffset); n != maxVerticesPerCmd {
		t.Errorf("circle vertices = %d, want %d", n, maxVerticesPerCmd)
	}
	if circle.ElemCount != 3*(maxVerticesPerCmd-1) {
		t.Errorf("circle ElemCount = %d", circle.ElemCount)
	}
	if last := dl.IdxBuffer[len(dl.IdxBuffer)-1]; last != 1 {
		t.Errorf("fan should close on the first rim vertex, got %d", last)
	}
}

func TestDrawListTexturesSplit(t *testing.T) {
	dl := NewDrawList()
	dl.AddRectFilled(0, 0, 1, 1, ColorWhite)
	dl.AddImage(7, 0, 0, 8, 8, Vec2{0, 0}, Vec2{1, 1}, ColorWhite)
	dl.AddRectFilled(0, 0, 1, 1, ColorWhite)
	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[1].TextureID != 7 {
		t.Errorf("image command texture = %d, want 7", dl.CmdBuffer[1].TextureID)
	}
	if dl.CmdBuffer[2].TextureID != 0 {
		t.Error("texture must be restored after AddImage")
	}
}

func TestDrawListTextRunFallback(t *testing.T) {
	dl := NewDrawList()
	dl.AddRectFilled(0, 0, 10, 10, ColorWhite)
	dl.AddText(nil, 13, 4, 5, "hello", ColorRed)
	dl.AddRectFilled(0, 0, 10, 10, ColorWhite)

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("expected rect, text, rect commands; got %d", len(dl.CmdBuffer))
	}
	run := dl.CmdBuffer[1].Text
	if run == nil {
		t.Fatal("middle command should carry a text run")
	}
	if run.Text != "hello" || run.Pos != (Vec2{4, 5}) || run.Size != 13 || run.Color != ColorRed {
		t.Errorf("text run = %+v", *run)
	}
}

func TestDrawDataTotals(t *testing.T) {
	a := NewDrawList()
	a.AddRectFilled(0, 0, 1, 1, ColorWhite)
	b := NewDrawList()
	c := NewDrawList()
	c.AddTriangleFilled(0, 0, 1, 0, 0, 1, ColorWhite)

	var dd DrawData
	dd.AddDrawList(a)
	dd.AddDrawList(b)
	dd.AddDrawList(c)
	dd.AddDrawList(nil)
	if len(dd.CmdLists) != 2 {
		t.Fatalf("empty lists should be skipped, got %d lists", len(dd.CmdLists))
	}
	if dd.TotalVtxCount != 7 || dd.TotalIdxCount != 9 {
		t.Errorf("totals vtx=%d idx=%d, want 7 and 9", dd.TotalVtxCount, dd.TotalIdxCount)
	}
	if dd.CmdCount() != 2 {
		t.Errorf("CmdCount = %d, want 2", dd.CmdCount())
	}

	dd.ScaleClipRects(Vec2{2, 2})
	dd.Clear()
	if dd.Valid || len(dd.CmdLists) != 0 || dd.TotalVtxCount != 0 {
		t.Error("Clear should reset the snapshot")
	}
}

func TestDrawListPool(t *testing.T) {
	dl := AcquireDrawList()
	dl.AddRectFilled(0, 0, 1, 1, ColorWhite)
	ReleaseDrawList(dl)
	again := AcquireDrawList()
	if len(again.CmdBuffer) != 0 || len(again.VtxBuffer) != 0 {
		t.Error("acquired list must be cleared")
	}
	ReleaseDrawList(again)
	ReleaseDrawList(nil)
}
