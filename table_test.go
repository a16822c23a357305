package imcore

import "testing"

func TestTableColumnWidths(t *testing.T) {
	h := newHarness(t)
	var fixed, stretch float32
	var second Rect
	h.frame(func(ctx *Context) {
		if !ctx.BeginTable("props", 2, TableFlagsNone, Vec2{}) {
			t.Fatal("BeginTable returned false in a visible window")
		}
		ctx.TableSetupColumn("Name", TableColumnFlagsWidthFixed, 100)
		ctx.TableSetupColumn("Value", TableColumnFlagsNone, 0)
		fixed, stretch = ctx.TableColumnWidth(0), ctx.TableColumnWidth(1)
		ctx.TableNextColumn()
		ctx.Text("a")
		ctx.TableNextColumn()
		second = ctx.TableCellRect()
		ctx.EndTable()
	})
	// The table spans the content region: 400 - 2*8 padding.
	if fixed != 100 || stretch != 284 {
		t.Errorf("widths = %v, %v; want 100, 284", fixed, stretch)
	}
	if second.X != 108 || second.Y != 8 {
		t.Errorf("second cell at %v,%v; want 108,8", second.X, second.Y)
	}
}

func TestTableStretchWeights(t *testing.T) {
	h := newHarness(t)
	var a, b float32
	h.frame(func(ctx *Context) {
		ctx.BeginTable("w", 2, TableFlagsNone, Vec2{})
		ctx.TableSetupColumns(
			TableColumn{Label: "A", InitWidth: 1},
			TableColumn{Label: "B", InitWidth: 3},
		)
		a, b = ctx.TableColumnWidth(0), ctx.TableColumnWidth(1)
		ctx.EndTable()
	})
	if a != 96 || b != 288 {
		t.Errorf("weights 1:3 of 384 gave %v, %v", a, b)
	}
}

func TestTableAutoColumnFitsContent(t *testing.T) {
	h := newHarness(t)
	var width float32
	decl := func(ctx *Context) {
		ctx.BeginTable("auto", 2, TableFlagsNone, Vec2{})
		ctx.TableSetupColumn("A", TableColumnFlagsWidthAuto, 0)
		ctx.TableSetupColumn("B", TableColumnFlagsNone, 0)
		width = ctx.TableColumnWidth(0)
		ctx.TableNextColumn()
		ctx.Text("abcdefghij")
		ctx.EndTable()
	}
	h.frame(decl)
	if width != 7+8 {
		t.Errorf("first frame sizes to the label: %v", width)
	}
	h.frame(decl)
	if width != 70+8 {
		t.Errorf("second frame sizes to last frame's content: %v", width)
	}
}

func TestTableRowsWrap(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		ctx.BeginTable("grid", 2, TableFlagsNone, Vec2{})
		for i := 0; i < 3; i++ {
			ctx.TableNextColumn()
			ctx.Text("x")
		}
		if ctx.TableRowIndex() != 1 || ctx.TableColumnIndex() != 0 {
			t.Errorf("third cell at row %d col %d, want 1,0", ctx.TableRowIndex(), ctx.TableColumnIndex())
		}
		// Rows are one line plus vertical cell padding tall.
		if r := ctx.TableCellRect(); r.Y != 8+17 {
			t.Errorf("second row Y = %v", r.Y)
		}
		ctx.EndTable()

		if ctx.TableColumnCount() != 0 || ctx.TableRowIndex() != -1 {
			t.Error("queries outside a table should report no table")
		}
		// The table is one item covering both rows.
		if r := ctx.ItemRect(); r.H != 34 {
			t.Errorf("table item height = %v, want 34", r.H)
		}
	})
}

func TestTableSortSpecs(t *testing.T) {
	h := newHarness(t)
	var specs TableSortSpecs
	decl := func(ctx *Context) {
		ctx.BeginTable("sorted", 2, TableFlagsSortable, Vec2{})
		ctx.TableSetupColumn("Name", TableColumnFlagsWidthFixed|TableColumnFlagsDefaultSort, 100)
		ctx.TableSetupColumn("Size", TableColumnFlagsPreferSortDescending, 0)
		ctx.TableHeadersRow()
		if s := ctx.TableSortSpecs(); s != nil && s.Dirty {
			specs = *s
			specs.Specs = append([]TableColumnSortSpecs(nil), s.Specs...)
			s.Dirty = false
		}
		ctx.EndTable()
	}
	h.frame(decl)
	if len(specs.Specs) != 1 || specs.Specs[0].ColumnIndex != 0 || specs.Specs[0].Direction != SortAscending {
		t.Fatalf("default sort = %+v", specs.Specs)
	}

	sizeHeader := Vec2{108 + 10, 8 + 6}
	h.click(sizeHeader, decl)
	if specs.Specs[0].ColumnIndex != 1 || specs.Specs[0].Direction != SortDescending {
		t.Errorf("clicking Size should sort it descending first: %+v", specs.Specs)
	}
	h.click(sizeHeader, decl)
	if specs.Specs[0].Direction != SortAscending {
		t.Errorf("second click should flip direction: %+v", specs.Specs)
	}
}

func TestTableSortDisabled(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		ctx.BeginTable("plain", 1, TableFlagsNone, Vec2{})
		if ctx.TableSortSpecs() != nil {
			t.Error("a non-sortable table has no sort specs")
		}
		ctx.EndTable()
	})
}

func TestSortDirectionString(t *testing.T) {
	for d, want := range map[SortDirection]string{
		SortNone:       "none",
		SortAscending:  "ascending",
		SortDescending: "descending",
	} {
		if got := d.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", d, got, want)
		}
	}
}

func TestTableResizePersists(t *testing.T) {
	h := newHarness(t)
	var width float32
	decl := func(ctx *Context) {
		ctx.BeginTable("resize", 2, TableFlagsResizable, Vec2{0, 60})
		width = ctx.TableColumnWidth(0)
		ctx.TableNextColumn()
		ctx.Text("a")
		ctx.EndTable()
	}
	h.frame(decl)
	if width != 192 {
		t.Fatalf("equal stretch width = %v", width)
	}

	// Drag the border between the columns 50px to the left.
	h.moveTo(Vec2{8 + 192, 20})
	h.press()
	h.frame(decl)
	h.moveTo(Vec2{8 + 142, 20})
	h.frame(decl)
	h.release()
	h.frame(decl)
	h.frame(decl)
	if width != 142 {
		t.Errorf("resized width = %v, want 142", width)
	}
}

func TestTableUsageErrors(t *testing.T) {
	h := newHarness(t)
	h.frame(func(ctx *Context) {
		expectUsagePanic(t, "BeginTable", func() { ctx.BeginTable("none", 0, 0, Vec2{}) })
		expectUsagePanic(t, "EndTable", ctx.EndTable)
		expectUsagePanic(t, "TableNextRow", ctx.TableNextRow)

		ctx.BeginTable("t", 2, 0, Vec2{})
		ctx.TableNextColumn()
		expectUsagePanic(t, "TableSetupColumn", func() { ctx.TableSetupColumn("late", 0, 0) })
		expectUsagePanic(t, "TableSetColumnIndex", func() { ctx.TableSetColumnIndex(2) })
		ctx.EndTable()
	})
}
