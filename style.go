package imcore

// Col indexes Style.Colors.
type Col int

const (
	ColText Col = iota
	ColTextDisabled
	ColWindowBg
	ColChildBg
	ColPopupBg
	ColBorder
	ColFrameBg
	ColFrameBgHovered
	ColFrameBgActive
	ColTitleBg
	ColTitleBgActive
	ColTitleBgCollapsed
	ColScrollbarBg
	ColScrollbarGrab
	ColScrollbarGrabHovered
	ColScrollbarGrabActive
	ColCheckMark
	ColSliderGrab
	ColSliderGrabActive
	ColButton
	ColButtonHovered
	ColButtonActive
	ColHeader
	ColHeaderHovered
	ColHeaderActive
	ColSeparator
	ColTextSelectedBg
	ColTableHeaderBg
	ColTableBorder
	ColTableRowBgAlt
	ColDragDropTarget
	ColNavHighlight
	ColPlotLines
	ColPlotLinesHovered
	ColPlotHistogram
	ColPlotHistogramHovered
	ColCount
)

var colNames = [ColCount]string{
	ColText:                 "Text",
	ColTextDisabled:         "TextDisabled",
	ColWindowBg:             "WindowBg",
	ColChildBg:              "ChildBg",
	ColPopupBg:              "PopupBg",
	ColBorder:               "Border",
	ColFrameBg:              "FrameBg",
	ColFrameBgHovered:       "FrameBgHovered",
	ColFrameBgActive:        "FrameBgActive",
	ColTitleBg:              "TitleBg",
	ColTitleBgActive:        "TitleBgActive",
	ColTitleBgCollapsed:     "TitleBgCollapsed",
	ColScrollbarBg:          "ScrollbarBg",
	ColScrollbarGrab:        "ScrollbarGrab",
	ColScrollbarGrabHovered: "ScrollbarGrabHovered",
	ColScrollbarGrabActive:  "ScrollbarGrabActive",
	ColCheckMark:            "CheckMark",
	ColSliderGrab:           "SliderGrab",
	ColSliderGrabActive:     "SliderGrabActive",
	ColButton:               "Button",
	ColButtonHovered:        "ButtonHovered",
	ColButtonActive:         "ButtonActive",
	ColHeader:               "Header",
	ColHeaderHovered:        "HeaderHovered",
	ColHeaderActive:         "HeaderActive",
	ColSeparator:            "Separator",
	ColTextSelectedBg:       "TextSelectedBg",
	ColTableHeaderBg:        "TableHeaderBg",
	ColTableBorder:          "TableBorder",
	ColTableRowBgAlt:        "TableRowBgAlt",
	ColDragDropTarget:       "DragDropTarget",
	ColNavHighlight:         "NavHighlight",
	ColPlotLines:            "PlotLines",
	ColPlotLinesHovered:     "PlotLinesHovered",
	ColPlotHistogram:        "PlotHistogram",
	ColPlotHistogramHovered: "PlotHistogramHovered",
}

func (c Col) String() string {
	if c < 0 || c >= ColCount {
		return "Col(?)"
	}
	return colNames[c]
}

// ColByName looks a color slot up by its String name.
func ColByName(name string) (Col, bool) {
	for i, n := range colNames {
		if n == name {
			return Col(i), true
		}
	}
	return 0, false
}

// Spacing constants for consistent layout (similar to Tailwind spacing scale).
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2  // Extra small
	SpaceSM   float32 = 4  // Small (default item spacing)
	SpaceMD   float32 = 8  // Medium (default padding)
	SpaceLG   float32 = 12 // Large
	SpaceXL   float32 = 16 // Extra large
)

// Style defines the visual appearance of UI elements.
type Style struct {
	Colors [ColCount]uint32

	Alpha            float32 // Global alpha applied to everything
	DisabledAlpha    float32 // Multiplier applied inside BeginDisabled
	WindowPadding    Vec2
	WindowBorderSize float32
	WindowMinSize    Vec2
	FramePadding     Vec2
	FrameBorderSize  float32
	ItemSpacing      Vec2
	ItemInnerSpacing Vec2
	IndentSpacing    float32
	CellPadding      Vec2
	ScrollbarSize    float32
	GrabMinSize      float32

	// Font
	FontName  string  // Passed to FontProvider.SetActiveFont when non-empty
	FontSize  float32 // Line height in pixels
	CharWidth float32 // Cell width used when no font is loaded
}

// Color returns a style color with the global alpha applied.
func (s *Style) Color(c Col) uint32 {
	return ColorMulAlpha(s.Colors[c], s.Alpha)
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	s := Style{
		Alpha:            1,
		DisabledAlpha:    0.6,
		WindowPadding:    Vec2{SpaceMD, SpaceMD},
		WindowBorderSize: 1,
		WindowMinSize:    Vec2{32, 32},
		FramePadding:     Vec2{SpaceSM, 3},
		FrameBorderSize:  0,
		ItemSpacing:      Vec2{SpaceMD, SpaceSM},
		ItemInnerSpacing: Vec2{SpaceSM, SpaceSM},
		IndentSpacing:    21,
		CellPadding:      Vec2{SpaceSM, SpaceXS},
		ScrollbarSize:    12,
		GrabMinSize:      10,
		FontSize:         13,
		CharWidth:        7,
	}
	c := &s.Colors
	c[ColText] = ColorWhite
	c[ColTextDisabled] = ColorGray
	c[ColWindowBg] = RGBA(20, 20, 20, 240)
	c[ColChildBg] = ColorTransparent
	c[ColPopupBg] = RGBA(25, 25, 25, 250)
	c[ColBorder] = RGBA(80, 80, 80, 255)
	c[ColFrameBg] = RGBA(30, 30, 30, 255)
	c[ColFrameBgHovered] = RGBA(40, 40, 50, 255)
	c[ColFrameBgActive] = RGBA(50, 50, 65, 255)
	c[ColTitleBg] = RGBA(40, 40, 45, 255)
	c[ColTitleBgActive] = RGBA(50, 70, 100, 255)
	c[ColTitleBgCollapsed] = RGBA(0, 0, 0, 130)
	c[ColScrollbarBg] = RGBA(30, 30, 30, 255)
	c[ColScrollbarGrab] = RGBA(80, 80, 80, 255)
	c[ColScrollbarGrabHovered] = RGBA(100, 100, 100, 255)
	c[ColScrollbarGrabActive] = RGBA(120, 120, 120, 255)
	c[ColCheckMark] = RGBA(66, 150, 250, 255)
	c[ColSliderGrab] = RGBA(100, 100, 100, 255)
	c[ColSliderGrabActive] = RGBA(140, 140, 140, 255)
	c[ColButton] = RGBA(50, 50, 50, 255)
	c[ColButtonHovered] = RGBA(70, 70, 70, 255)
	c[ColButtonActive] = RGBA(90, 90, 90, 255)
	c[ColHeader] = RGBA(50, 100, 150, 255)
	c[ColHeaderHovered] = RGBA(60, 60, 60, 255)
	c[ColHeaderActive] = RGBA(70, 120, 170, 255)
	c[ColSeparator] = RGBA(80, 80, 80, 255)
	c[ColTextSelectedBg] = RGBA(50, 100, 150, 160)
	c[ColTableHeaderBg] = RGBA(40, 40, 40, 255)
	c[ColTableBorder] = RGBA(80, 80, 80, 255)
	c[ColTableRowBgAlt] = RGBA(35, 35, 35, 255)
	c[ColDragDropTarget] = ColorYellow
	c[ColNavHighlight] = ColorCyan
	c[ColPlotLines] = RGBA(156, 156, 156, 255)
	c[ColPlotLinesHovered] = RGBA(255, 110, 89, 255)
	c[ColPlotHistogram] = RGBA(50, 100, 150, 255)
	c[ColPlotHistogramHovered] = RGBA(255, 153, 0, 255)
	return s
}

// DarkStyle returns a modern dark theme.
func DarkStyle() Style {
	s := DefaultStyle()
	s.Colors[ColWindowBg] = RGBA(25, 25, 25, 240)
	s.Colors[ColTitleBg] = RGBA(35, 35, 40, 255)
	s.Colors[ColButton] = RGBA(45, 45, 45, 255)
	s.Colors[ColButtonHovered] = RGBA(65, 65, 65, 255)
	s.Colors[ColHeader] = RGBA(65, 105, 225, 255) // Royal blue
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	c := &s.Colors
	c[ColText] = RGBA(20, 20, 20, 255)
	c[ColTextDisabled] = RGBA(150, 150, 150, 255)
	c[ColWindowBg] = RGBA(245, 245, 245, 250)
	c[ColPopupBg] = ColorWhite
	c[ColBorder] = RGBA(200, 200, 200, 255)
	c[ColFrameBg] = ColorWhite
	c[ColFrameBgHovered] = RGBA(235, 235, 240, 255)
	c[ColFrameBgActive] = RGBA(225, 225, 235, 255)
	c[ColTitleBg] = RGBA(220, 220, 225, 255)
	c[ColTitleBgActive] = RGBA(200, 210, 230, 255)
	c[ColScrollbarBg] = RGBA(240, 240, 240, 255)
	c[ColScrollbarGrab] = RGBA(180, 180, 180, 255)
	c[ColScrollbarGrabHovered] = RGBA(160, 160, 160, 255)
	c[ColScrollbarGrabActive] = RGBA(140, 140, 140, 255)
	c[ColSliderGrab] = RGBA(180, 180, 180, 255)
	c[ColSliderGrabActive] = RGBA(140, 140, 140, 255)
	c[ColButton] = RGBA(220, 220, 220, 255)
	c[ColButtonHovered] = RGBA(200, 200, 200, 255)
	c[ColButtonActive] = RGBA(180, 180, 180, 255)
	c[ColHeader] = RGBA(0, 120, 215, 255)
	c[ColHeaderHovered] = RGBA(230, 230, 230, 255)
	c[ColSeparator] = RGBA(200, 200, 200, 255)
	c[ColTableHeaderBg] = RGBA(230, 230, 230, 255)
	c[ColTableBorder] = RGBA(200, 200, 200, 255)
	c[ColTableRowBgAlt] = RGBA(250, 250, 250, 255)
	c[ColPlotHistogram] = RGBA(0, 120, 215, 255)
	return s
}

// GTAStyle returns a dark theme with cyan/yellow accents.
func GTAStyle() Style {
	s := DefaultStyle()
	c := &s.Colors
	c[ColTextDisabled] = RGBA(128, 128, 128, 255)
	c[ColWindowBg] = RGBA(0, 0, 0, 220)
	c[ColBorder] = RGBA(100, 100, 100, 255)
	c[ColTitleBg] = RGBA(0, 60, 90, 255)
	c[ColTitleBgActive] = RGBA(0, 100, 150, 255)
	c[ColButton] = RGBA(40, 40, 40, 255)
	c[ColButtonHovered] = RGBA(60, 80, 100, 255)
	c[ColButtonActive] = RGBA(0, 150, 200, 255)
	c[ColHeader] = RGBA(0, 120, 180, 255)
	c[ColHeaderHovered] = RGBA(50, 70, 90, 255)
	c[ColFrameBg] = RGBA(20, 20, 20, 255)
	c[ColFrameBgHovered] = RGBA(30, 40, 50, 255)
	c[ColSeparator] = RGBA(0, 150, 200, 128)
	c[ColTableBorder] = RGBA(0, 100, 150, 255)
	c[ColTableHeaderBg] = RGBA(0, 80, 120, 255)
	c[ColTableRowBgAlt] = RGBA(20, 30, 40, 255)
	c[ColScrollbarGrab] = RGBA(0, 100, 150, 255)
	c[ColScrollbarGrabHovered] = RGBA(0, 150, 200, 255)
	c[ColSliderGrab] = RGBA(0, 150, 200, 255)
	c[ColSliderGrabActive] = RGBA(0, 200, 255, 255)
	c[ColCheckMark] = RGBA(255, 200, 0, 255) // GTA yellow
	c[ColNavHighlight] = RGBA(0, 200, 255, 255)
	s.ItemSpacing = Vec2{12, 6}
	s.WindowPadding = Vec2{12, 12}
	s.FramePadding = Vec2{8, 4}
	s.ScrollbarSize = 14
	s.FontSize = 16
	s.CharWidth = 8
	s.FontName = "font1"
	return s
}

// StyleVar identifies a numeric Style field for PushStyleVar.
type StyleVar int

const (
	StyleVarAlpha StyleVar = iota
	StyleVarDisabledAlpha
	StyleVarWindowPadding
	StyleVarWindowBorderSize
	StyleVarWindowMinSize
	StyleVarFramePadding
	StyleVarFrameBorderSize
	StyleVarItemSpacing
	StyleVarItemInnerSpacing
	StyleVarIndentSpacing
	StyleVarCellPadding
	StyleVarScrollbarSize
	StyleVarGrabMinSize
	StyleVarCount
)

// styleVarInfo resolves a StyleVar to the field it controls.
// Exactly one of f or v is non-nil.
type styleVarInfo struct {
	f func(*Style) *float32
	v func(*Style) *Vec2
}

var styleVarInfos = [StyleVarCount]styleVarInfo{
	StyleVarAlpha:            {f: func(s *Style) *float32 { return &s.Alpha }},
	StyleVarDisabledAlpha:    {f: func(s *Style) *float32 { return &s.DisabledAlpha }},
	StyleVarWindowPadding:    {v: func(s *Style) *Vec2 { return &s.WindowPadding }},
	StyleVarWindowBorderSize: {f: func(s *Style) *float32 { return &s.WindowBorderSize }},
	StyleVarWindowMinSize:    {v: func(s *Style) *Vec2 { return &s.WindowMinSize }},
	StyleVarFramePadding:     {v: func(s *Style) *Vec2 { return &s.FramePadding }},
	StyleVarFrameBorderSize:  {f: func(s *Style) *float32 { return &s.FrameBorderSize }},
	StyleVarItemSpacing:      {v: func(s *Style) *Vec2 { return &s.ItemSpacing }},
	StyleVarItemInnerSpacing: {v: func(s *Style) *Vec2 { return &s.ItemInnerSpacing }},
	StyleVarIndentSpacing:    {f: func(s *Style) *float32 { return &s.IndentSpacing }},
	StyleVarCellPadding:      {v: func(s *Style) *Vec2 { return &s.CellPadding }},
	StyleVarScrollbarSize:    {f: func(s *Style) *float32 { return &s.ScrollbarSize }},
	StyleVarGrabMinSize:      {f: func(s *Style) *float32 { return &s.GrabMinSize }},
}

type colorBackup struct {
	col   Col
	value uint32
}

type varBackup struct {
	v     StyleVar
	float float32
	vec   Vec2
}

// PushStyleColor overrides a style color until the matching PopStyleColor.
func (ctx *Context) PushStyleColor(c Col, color uint32) {
	if c < 0 || c >= ColCount {
		panic(usageErrorf("PushStyleColor", "unknown color slot %d", c))
	}
	ctx.colorStack = append(ctx.colorStack, colorBackup{col: c, value: ctx.style.Colors[c]})
	ctx.style.Colors[c] = color
}

// PopStyleColor restores the last count pushed colors, most recent first.
func (ctx *Context) PopStyleColor(count int) {
	if count > len(ctx.colorStack) {
		panic(usageErrorf("PopStyleColor", "stack underflow; popping %d of %d pushed colors", count, len(ctx.colorStack)))
	}
	for ; count > 0; count-- {
		b := ctx.colorStack[len(ctx.colorStack)-1]
		ctx.colorStack = ctx.colorStack[:len(ctx.colorStack)-1]
		ctx.style.Colors[b.col] = b.value
	}
}

// PushStyleVar overrides a float style variable until PopStyleVar.
func (ctx *Context) PushStyleVar(v StyleVar, value float32) {
	if v < 0 || v >= StyleVarCount || styleVarInfos[v].f == nil {
		panic(usageErrorf("PushStyleVar", "style var %d is not a float; use PushStyleVarVec2", v))
	}
	p := styleVarInfos[v].f(&ctx.style)
	ctx.varStack = append(ctx.varStack, varBackup{v: v, float: *p})
	*p = value
}

// PushStyleVarVec2 overrides a Vec2 style variable until PopStyleVar.
func (ctx *Context) PushStyleVarVec2(v StyleVar, value Vec2) {
	if v < 0 || v >= StyleVarCount || styleVarInfos[v].v == nil {
		panic(usageErrorf("PushStyleVarVec2", "style var %d is not a Vec2; use PushStyleVar", v))
	}
	p := styleVarInfos[v].v(&ctx.style)
	ctx.varStack = append(ctx.varStack, varBackup{v: v, vec: *p})
	*p = value
}

// PopStyleVar restores the last count pushed variables, most recent first.
func (ctx *Context) PopStyleVar(count int) {
	if count > len(ctx.varStack) {
		panic(usageErrorf("PopStyleVar", "stack underflow; popping %d of %d pushed vars", count, len(ctx.varStack)))
	}
	for ; count > 0; count-- {
		b := ctx.varStack[len(ctx.varStack)-1]
		ctx.varStack = ctx.varStack[:len(ctx.varStack)-1]
		info := styleVarInfos[b.v]
		if info.f != nil {
			*info.f(&ctx.style) = b.float
		} else {
			*info.v(&ctx.style) = b.vec
		}
	}
}
