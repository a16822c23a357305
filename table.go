package imcore

// TableFlags control table behavior and appearance.
type TableFlags uint32

const (
	TableFlagsNone TableFlags = 0

	// Features
	TableFlagsResizable       TableFlags = 1 << 0 // Drag column borders to resize
	TableFlagsSortable        TableFlags = 1 << 1 // Header clicks toggle sort specs
	TableFlagsHighlightHover  TableFlags = 1 << 2 // Highlight the hovered row
	TableFlagsAutoSizeColumns TableFlags = 1 << 5 // Auto columns fit last frame's content

	// Borders
	TableFlagsBordersInnerH TableFlags = 1 << 8
	TableFlagsBordersInnerV TableFlags = 1 << 9
	TableFlagsBordersOuterH TableFlags = 1 << 10
	TableFlagsBordersOuterV TableFlags = 1 << 11

	TableFlagsBordersInner TableFlags = TableFlagsBordersInnerH | TableFlagsBordersInnerV
	TableFlagsBordersOuter TableFlags = TableFlagsBordersOuterH | TableFlagsBordersOuterV
	TableFlagsBorders      TableFlags = TableFlagsBordersInner | TableFlagsBordersOuter

	// Row appearance
	TableFlagsRowBg TableFlags = 1 << 16 // Alternate row background colors
)

// TableColumnFlags control individual column behavior.
type TableColumnFlags uint32

const (
	TableColumnFlagsNone TableColumnFlags = 0

	// Sizing
	TableColumnFlagsWidthFixed   TableColumnFlags = 1 << 0 // Fixed width; InitWidth or content
	TableColumnFlagsWidthStretch TableColumnFlags = 1 << 1 // Share the remaining width by InitWidth weight
	TableColumnFlagsWidthAuto    TableColumnFlags = 1 << 2 // Fit label and content

	// Sorting and resizing
	TableColumnFlagsNoResize             TableColumnFlags = 1 << 8
	TableColumnFlagsNoSort               TableColumnFlags = 1 << 9
	TableColumnFlagsDefaultSort          TableColumnFlags = 1 << 10
	TableColumnFlagsPreferSortDescending TableColumnFlags = 1 << 11
)

// SortDirection of a sorted column.
type SortDirection uint8

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	}
	return "none"
}

// TableColumnSortSpecs describes the sort on one column.
type TableColumnSortSpecs struct {
	ColumnIndex int
	SortOrder   int // 0 for the primary key
	Direction   SortDirection
}

// TableSortSpecs is what the caller should sort its rows by. The table
// never reorders data; the caller sorts and then clears Dirty.
type TableSortSpecs struct {
	Specs []TableColumnSortSpecs
	Dirty bool
}

// TableColumn defines a table column.
type TableColumn struct {
	Label     string
	Flags     TableColumnFlags
	InitWidth float32 // Fixed width, or stretch weight (0 = auto / 1)
	MinWidth  float32
	MaxWidth  float32 // 0 = unlimited

	x            float32 // Left edge, screen space
	width        float32
	contentWidth float32 // Widest cell content this frame
}

// tableState persists table state between frames.
type tableState struct {
	columnCount   int
	userWidths    []float32 // Widths set by dragging borders; 0 = computed
	contentWidths []float32 // Last frame's widest content per column
	sortColumn    int       // -1 = none
	sortDirection SortDirection
	sortSpecs     TableSortSpecs
	sortInit      bool
}

func (s *tableState) reset(columns int) {
	*s = tableState{
		columnCount:   columns,
		userWidths:    make([]float32, columns),
		contentWidths: make([]float32, columns),
		sortColumn:    -1,
	}
}

// Table is the per-frame record of a table between BeginTable and EndTable.
type Table struct {
	id      ID
	label   string
	ctx     *Context
	window  *Window
	flags   TableFlags
	state   *tableState
	columns []TableColumn

	columnCount int
	laidOut     bool

	startPos  Vec2
	outerSize Vec2
	width     float32
	clipRect  Rect
	clipped   bool // Height-limited: contents clipped to the outer rect

	row        int // -1 before the first row
	column     int // -1 before the first cell
	rowPosY    float32
	rowMaxY    float32
	headerRow  bool
	cellPad    Vec2
	minRowH    float32
	cellClipOn bool

	backupIndent        float32
	backupColumnsOffset float32
	backupItemWidth     float32
	backupCursorMaxPos  Vec2
	backupCurrLineH     float32
	backupClipRect      Rect
}

const tableMaxColumns = 64

func (ctx *Context) mustTable(op string) *Table {
	if ctx.currentTbl == nil {
		panic(usageErrorf(op, "no current table; call BeginTable first"))
	}
	if ctx.currentTbl.window != ctx.currentWindow {
		panic(usageErrorf(op, "table %q belongs to another window", ctx.currentTbl.label))
	}
	return ctx.currentTbl
}

// BeginTable starts a table with the given column count. outerSize <= 0
// components take the available width and grow with the rows. Returns false
// when the window is collapsed; EndTable is only called after true.
func (ctx *Context) BeginTable(strID string, columns int, flags TableFlags, outerSize Vec2) bool {
	w := ctx.mustWindow("BeginTable")
	if columns <= 0 || columns > tableMaxColumns {
		panic(usageErrorf("BeginTable", "column count %d out of range 1..%d", columns, tableMaxColumns))
	}
	if w.SkipItems {
		return false
	}
	id := ctx.GetID(strID)
	state, created := ctx.tables.GetOrAdd(id, ctx.FrameCount)
	if created || state.columnCount != columns {
		state.reset(columns)
	}

	depth := len(ctx.tableStack)
	if depth == len(ctx.tablesFrame) {
		ctx.tablesFrame = append(ctx.tablesFrame, &Table{})
	}
	t := ctx.tablesFrame[depth]
	cols := t.columns[:0]
	*t = Table{
		id:          id,
		label:       strID,
		ctx:         ctx,
		window:      w,
		flags:       flags,
		state:       state,
		columns:     cols,
		columnCount: columns,
		startPos:    w.DC.CursorPos,
		outerSize:   outerSize,
		row:         -1,
		column:      -1,
		cellPad:     ctx.style.CellPadding,
	}
	t.minRowH = ctx.TextLineHeight() + t.cellPad.Y*2

	avail := ctx.ContentRegionAvail()
	t.width = outerSize.X
	if t.width <= 0 {
		t.width = maxf(1, avail.X+outerSize.X)
	}

	dc := &w.DC
	t.backupIndent = dc.Indent
	t.backupColumnsOffset = dc.ColumnsOffset
	t.backupItemWidth = dc.ItemWidth
	t.backupCursorMaxPos = dc.CursorMaxPos
	t.backupCurrLineH = dc.CurrLineHeight
	t.backupClipRect = w.ClipRect

	t.clipRect = w.ClipRect
	if outerSize.Y > 0 {
		t.clipped = true
		t.clipRect = w.ClipRect.Intersect(Rect{X: t.startPos.X, Y: t.startPos.Y, W: t.width, H: outerSize.Y})
		w.ClipRect = t.clipRect
		w.DrawList.PushClipRect(t.clipRect, false)
	}

	ctx.tableStack = append(ctx.tableStack, t)
	ctx.currentTbl = t
	ctx.PushRawID(id)
	return true
}

// TableSetupColumn declares the next column. Call before the first row.
func (ctx *Context) TableSetupColumn(label string, flags TableColumnFlags, initWidth float32) {
	t := ctx.mustTable("TableSetupColumn")
	if t.laidOut {
		panic(usageErrorf("TableSetupColumn", "columns must be set up before the first row"))
	}
	if len(t.columns) >= t.columnCount {
		panic(usageErrorf("TableSetupColumn", "table %q has only %d columns", t.label, t.columnCount))
	}
	t.columns = append(t.columns, TableColumn{Label: label, Flags: flags, InitWidth: initWidth})
}

// TableSetupColumns declares every column at once.
func (ctx *Context) TableSetupColumns(columns ...TableColumn) {
	for _, c := range columns {
		ctx.TableSetupColumn(c.Label, c.Flags, c.InitWidth)
		t := ctx.currentTbl
		t.columns[len(t.columns)-1].MinWidth = c.MinWidth
		t.columns[len(t.columns)-1].MaxWidth = c.MaxWidth
	}
}

// layout resolves column widths once per frame.
func (t *Table) layout() {
	if t.laidOut {
		return
	}
	t.laidOut = true
	for len(t.columns) < t.columnCount {
		t.columns = append(t.columns, TableColumn{})
	}
	computeColumnWidths(t.ctx, t.columns, t.state, t.width, t.flags&TableFlagsAutoSizeColumns != 0)
	x := t.startPos.X
	for i := range t.columns {
		t.columns[i].x = x
		x += t.columns[i].width
	}

	s := t.state
	if t.flags&TableFlagsSortable != 0 && !s.sortInit {
		s.sortInit = true
		for i, c := range t.columns {
			if c.Flags&TableColumnFlagsDefaultSort != 0 {
				s.sortColumn = i
				s.sortDirection = preferredDirection(c.Flags)
				s.rebuildSpecs()
				break
			}
		}
	}
}

// computeColumnWidths fills in column widths: user-resized first, then
// fixed and auto columns, then stretch columns share what remains.
func computeColumnWidths(ctx *Context, columns []TableColumn, s *tableState, totalWidth float32, autoSize bool) {
	pad := ctx.style.CellPadding.X * 2
	allStretch := true
	for _, c := range columns {
		if c.Flags&(TableColumnFlagsWidthFixed|TableColumnFlagsWidthAuto) != 0 {
			allStretch = false
		}
	}

	used := float32(0)
	stretchWeight := float32(0)
	for i := range columns {
		c := &columns[i]
		c.width = 0
		switch {
		case s.userWidths[i] > 0:
			c.width = s.userWidths[i]
		case c.Flags&TableColumnFlagsWidthFixed != 0 && c.InitWidth > 0:
			c.width = c.InitWidth
		case c.Flags&(TableColumnFlagsWidthFixed|TableColumnFlagsWidthAuto) != 0 || (autoSize && !allStretch):
			c.width = ctx.CalcTextSize(VisibleLabel(c.Label)).X + pad
			c.width = maxf(c.width, s.contentWidths[i]+pad)
			c.width = maxf(c.width, c.InitWidth)
		default:
			w := c.InitWidth
			if w <= 0 {
				w = 1
			}
			stretchWeight += w
			continue
		}
		c.width = clampColumn(c, c.width)
		used += c.width
	}

	remaining := maxf(0, totalWidth-used)
	for i := range columns {
		c := &columns[i]
		if c.width != 0 || stretchWeight == 0 {
			continue
		}
		w := c.InitWidth
		if w <= 0 {
			w = 1
		}
		c.width = clampColumn(c, remaining*w/stretchWeight)
	}
}

func clampColumn(c *TableColumn, w float32) float32 {
	if c.MinWidth > 0 && w < c.MinWidth {
		w = c.MinWidth
	}
	if c.MaxWidth > 0 && w > c.MaxWidth {
		w = c.MaxWidth
	}
	return maxf(1, w)
}

func preferredDirection(flags TableColumnFlags) SortDirection {
	if flags&TableColumnFlagsPreferSortDescending != 0 {
		return SortDescending
	}
	return SortAscending
}

func (s *tableState) rebuildSpecs() {
	s.sortSpecs.Specs = s.sortSpecs.Specs[:0]
	if s.sortColumn >= 0 && s.sortDirection != SortNone {
		s.sortSpecs.Specs = append(s.sortSpecs.Specs, TableColumnSortSpecs{
			ColumnIndex: s.sortColumn,
			Direction:   s.sortDirection,
		})
	}
	s.sortSpecs.Dirty = true
}

// toggleSort handles a header click on column i.
func (t *Table) toggleSort(i int) {
	s := t.state
	if s.sortColumn == i {
		if s.sortDirection == SortAscending {
			s.sortDirection = SortDescending
		} else {
			s.sortDirection = SortAscending
		}
	} else {
		s.sortColumn = i
		s.sortDirection = preferredDirection(t.columns[i].Flags)
	}
	s.rebuildSpecs()
	t.ctx.logger.Debug("table sort changed", "table", t.label, "column", i, "direction", s.sortDirection)
}

// TableNextRow ends the current row and starts the next one.
func (ctx *Context) TableNextRow() {
	t := ctx.mustTable("TableNextRow")
	t.layout()
	if t.row >= 0 {
		t.endRow()
	} else {
		t.rowMaxY = t.startPos.Y
	}
	t.row++
	t.column = -1
	t.headerRow = false
	t.rowPosY = t.rowMaxY
	t.rowMaxY = t.rowPosY + t.minRowH

	dl := t.window.DrawList
	if t.flags&TableFlagsRowBg != 0 && t.row%2 == 1 {
		dl.AddRectFilled(t.startPos.X, t.rowPosY, t.width, t.minRowH, ctx.style.Color(ColTableRowBgAlt))
	}
	if t.flags&TableFlagsHighlightHover != 0 && ctx.hoveredWindow == t.window {
		r := Rect{X: t.startPos.X, Y: t.rowPosY, W: t.width, H: t.minRowH}
		if ctx.IsMouseHoveringRect(r) {
			dl.AddRectFilled(r.X, r.Y, r.W, r.H, ctx.style.Color(ColHeaderHovered))
		}
	}
}

func (t *Table) endRow() {
	if t.column >= 0 {
		t.endCell()
	}
	if t.flags&TableFlagsBordersInnerH != 0 {
		y := t.rowMaxY
		t.window.DrawList.AddLine(t.startPos.X, y, t.startPos.X+t.width, y, t.ctx.style.Color(ColTableBorder), 1)
	}
}

// TableNextColumn moves to the next cell, wrapping to a new row after the
// last column. It returns whether the cell is visible.
func (ctx *Context) TableNextColumn() bool {
	t := ctx.mustTable("TableNextColumn")
	if t.row < 0 || t.column+1 >= t.columnCount {
		ctx.TableNextRow()
	}
	t.beginCell(t.column + 1)
	return t.cellVisible()
}

// TableSetColumnIndex moves to column i of the current row.
func (ctx *Context) TableSetColumnIndex(i int) bool {
	t := ctx.mustTable("TableSetColumnIndex")
	if i < 0 || i >= t.columnCount {
		panic(usageErrorf("TableSetColumnIndex", "column %d out of range 0..%d", i, t.columnCount-1))
	}
	if t.row < 0 {
		ctx.TableNextRow()
	}
	t.beginCell(i)
	return t.cellVisible()
}

func (t *Table) cellVisible() bool {
	c := t.columns[t.column]
	r := Rect{X: c.x, Y: t.rowPosY, W: c.width, H: t.rowMaxY - t.rowPosY}
	return r.Intersects(t.window.ClipRect)
}

func (t *Table) cellMaxX() float32 {
	c := t.columns[t.column]
	return c.x + c.width - t.cellPad.X
}

func (t *Table) beginCell(i int) {
	if t.column >= 0 {
		t.endCell()
	}
	w := t.window
	dc := &w.DC
	t.column = i
	c := &t.columns[i]

	start := Vec2{c.x + t.cellPad.X, t.rowPosY + t.cellPad.Y}
	dc.Indent = t.backupIndent
	dc.ColumnsOffset = start.X - w.Pos.X - dc.Indent
	dc.CursorPos = start
	dc.CursorPosPrevLine = start
	dc.CursorMaxPos = start
	dc.CurrLineHeight = 0
	dc.PrevLineHeight = 0
	dc.ItemWidth = maxf(1, c.width-t.cellPad.X*2)

	cellClip := t.clipRect.Intersect(Rect{X: c.x, Y: t.clipRect.Y, W: c.width, H: t.clipRect.H})
	w.ClipRect = cellClip
	w.DrawList.PushClipRect(cellClip, false)
	t.cellClipOn = true
}

func (t *Table) endCell() {
	w := t.window
	dc := &w.DC
	c := &t.columns[t.column]
	c.contentWidth = maxf(c.contentWidth, dc.CursorMaxPos.X-(c.x+t.cellPad.X))
	t.rowMaxY = maxf(t.rowMaxY, dc.CursorMaxPos.Y+t.cellPad.Y)
	if t.cellClipOn {
		w.DrawList.PopClipRect()
		t.cellClipOn = false
	}
	w.ClipRect = t.clipRect
}

// TableHeadersRow submits a header row from the column labels.
func (ctx *Context) TableHeadersRow() {
	t := ctx.mustTable("TableHeadersRow")
	ctx.TableNextRow()
	t.headerRow = true
	for i := 0; i < t.columnCount; i++ {
		ctx.TableSetColumnIndex(i)
		ctx.TableHeader(t.columns[i].Label)
	}
}

// TableHeader draws one header cell in the current column. Clicking it
// toggles the column's sort when the table is sortable.
func (ctx *Context) TableHeader(label string) {
	t := ctx.mustTable("TableHeader")
	if t.column < 0 {
		panic(usageErrorf("TableHeader", "no current column; call TableNextColumn first"))
	}
	w := t.window
	c := &t.columns[t.column]
	id := Hash(label, HashInt(t.column, t.id))
	textSize := ctx.CalcTextSize(VisibleLabel(label))
	cell := Rect{X: c.x, Y: t.rowPosY, W: c.width, H: maxf(t.minRowH, textSize.Y+t.cellPad.Y*2)}

	ctx.ItemSize(textSize)
	if !ctx.ItemAdd(cell, id) {
		return
	}
	pressed, hovered, held := ctx.ButtonBehavior(cell, id, 0)
	col := ColTableHeaderBg
	switch {
	case held:
		col = ColHeaderActive
	case hovered:
		col = ColHeaderHovered
	}
	w.DrawList.AddRectFilled(cell.X, cell.Y, cell.W, cell.H, ctx.style.Color(col))
	ctx.renderText(w.DrawList, Vec2{c.x + t.cellPad.X, t.rowPosY + t.cellPad.Y}, VisibleLabel(label), ctx.style.Color(ColText))

	sortable := t.flags&TableFlagsSortable != 0 && c.Flags&TableColumnFlagsNoSort == 0
	if sortable && t.state.sortColumn == t.column && t.state.sortDirection != SortNone {
		fs := ctx.style.FontSize
		ax := cell.X + cell.W - t.cellPad.X - fs*0.6
		ay := cell.Y + cell.H/2
		s := fs * 0.25
		color := ctx.style.Color(ColText)
		if t.state.sortDirection == SortAscending {
			w.DrawList.AddTriangleFilled(ax-s, ay+s*0.5, ax+s, ay+s*0.5, ax, ay-s*0.7, color)
		} else {
			w.DrawList.AddTriangleFilled(ax-s, ay-s*0.5, ax+s, ay-s*0.5, ax, ay+s*0.7, color)
		}
	}
	if pressed && sortable {
		t.toggleSort(t.column)
	}
}

// TableSortSpecs returns the sort the caller should apply, or nil when the
// table is not sortable. Clear Dirty after sorting.
func (ctx *Context) TableSortSpecs() *TableSortSpecs {
	t := ctx.mustTable("TableSortSpecs")
	if t.flags&TableFlagsSortable == 0 {
		return nil
	}
	t.layout()
	return &t.state.sortSpecs
}

// TableColumnIndex returns the current column, or -1.
func (ctx *Context) TableColumnIndex() int {
	if ctx.currentTbl == nil {
		return -1
	}
	return ctx.currentTbl.column
}

// TableRowIndex returns the current row, or -1. A header row counts.
func (ctx *Context) TableRowIndex() int {
	if ctx.currentTbl == nil {
		return -1
	}
	return ctx.currentTbl.row
}

// TableColumnCount returns the current table's column count, or 0.
func (ctx *Context) TableColumnCount() int {
	if ctx.currentTbl == nil {
		return 0
	}
	return ctx.currentTbl.columnCount
}

// TableCellRect returns the current cell's rectangle as laid out so far.
func (ctx *Context) TableCellRect() Rect {
	t := ctx.mustTable("TableCellRect")
	if t.column < 0 {
		return Rect{}
	}
	c := t.columns[t.column]
	return Rect{X: c.x, Y: t.rowPosY, W: c.width, H: t.rowMaxY - t.rowPosY}
}

// TableColumnWidth returns the resolved width of column i.
func (ctx *Context) TableColumnWidth(i int) float32 {
	t := ctx.mustTable("TableColumnWidth")
	t.layout()
	if i < 0 || i >= t.columnCount {
		return 0
	}
	return t.columns[i].width
}

// EndTable closes the table and submits it to the window as one item.
func (ctx *Context) EndTable() {
	if ctx.currentTbl == nil {
		panic(usageErrorf("EndTable", "EndTable without BeginTable"))
	}
	t := ctx.mustTable("EndTable")
	w := t.window
	dc := &w.DC
	t.layout()
	if t.row >= 0 {
		t.endRow()
	} else {
		t.rowMaxY = t.startPos.Y
	}

	height := t.rowMaxY - t.startPos.Y
	if t.outerSize.Y > 0 {
		height = t.outerSize.Y
	}
	outer := Rect{X: t.startPos.X, Y: t.startPos.Y, W: t.width, H: height}
	dl := w.DrawList
	border := ctx.style.Color(ColTableBorder)
	if t.flags&TableFlagsBordersInnerV != 0 {
		for i := 0; i < t.columnCount-1; i++ {
			x := t.columns[i].x + t.columns[i].width
			dl.AddLine(x, outer.Y, x, outer.Y+outer.H, border, 1)
		}
	}
	if t.flags&TableFlagsBordersOuterH != 0 {
		dl.AddLine(outer.X, outer.Y, outer.X+outer.W, outer.Y, border, 1)
		dl.AddLine(outer.X, outer.Y+outer.H, outer.X+outer.W, outer.Y+outer.H, border, 1)
	}
	if t.flags&TableFlagsBordersOuterV != 0 {
		dl.AddLine(outer.X, outer.Y, outer.X, outer.Y+outer.H, border, 1)
		dl.AddLine(outer.X+outer.W, outer.Y, outer.X+outer.W, outer.Y+outer.H, border, 1)
	}
	if t.flags&TableFlagsResizable != 0 {
		t.handleResize(outer)
	}

	for i := range t.columns {
		t.state.contentWidths[i] = t.columns[i].contentWidth
	}
	if t.clipped {
		dl.PopClipRect()
	}
	w.ClipRect = t.backupClipRect
	dc.Indent = t.backupIndent
	dc.ColumnsOffset = t.backupColumnsOffset
	dc.ItemWidth = t.backupItemWidth
	dc.CursorMaxPos = t.backupCursorMaxPos
	dc.CurrLineHeight = t.backupCurrLineH
	dc.CursorPos = t.startPos
	ctx.PopID()

	ctx.tableStack = ctx.tableStack[:len(ctx.tableStack)-1]
	ctx.currentTbl = nil
	if n := len(ctx.tableStack); n > 0 {
		ctx.currentTbl = ctx.tableStack[n-1]
	}

	ctx.ItemSize(outer.Size())
	ctx.ItemAdd(outer, t.id)
}

// handleResize lets column borders be dragged. A resized column keeps its
// width in the table's persistent state.
func (t *Table) handleResize(outer Rect) {
	ctx := t.ctx
	for i := 0; i < t.columnCount-1; i++ {
		c := &t.columns[i]
		if c.Flags&TableColumnFlagsNoResize != 0 {
			continue
		}
		x := c.x + c.width
		hit := Rect{X: x - 2, Y: outer.Y, W: 4, H: outer.H}
		id := Hash("#RESIZE", HashInt(i, t.id))
		ctx.keepAliveID(id)
		_, hovered, held := ctx.ButtonBehavior(hit, id, ButtonPressOnClick)
		if held {
			minW := maxf(c.MinWidth, ctx.style.FontSize)
			t.state.userWidths[i] = maxf(minW, ctx.Input.MousePos.X-c.x)
		}
		if hovered || held {
			t.window.DrawList.AddLine(x, outer.Y, x, outer.Y+outer.H, ctx.style.Color(ColSeparator), 2)
		}
	}
}
