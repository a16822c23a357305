package imcore

import (
	"log/slog"
)

// Context is the root of all mutable GUI state: aggregated input, windows,
// hover/active/focus identifiers, the ID stack, style and every transient
// stack. Several contexts may coexist; each must be driven from one
// goroutine at a time.
type Context struct {
	cfg          Config
	logger       *slog.Logger
	style        Style
	fontProvider FontProvider
	clipboard    ClipboardProvider

	// Events is the producer-facing input queue. Backends push here from any goroutine.
	Events *EventQueue
	// Input is the per-frame aggregate, rebuilt by NewFrame.
	Input *InputState

	// Frame info
	FrameCount       uint64
	Time             float64
	DeltaTime        float32
	DisplaySize      Vec2
	FramebufferScale Vec2
	withinFrame      bool
	frameCountEnded  uint64
	lastDrain        DrainResult

	// Windows
	windows        *Pool[Window]
	windowOrder    []*Window // Back to front
	windowStack    []*Window
	currentWindow  *Window
	hoveredWindow  *Window
	focusedWindow  *Window
	movingWindow   *Window
	movingOffset   Vec2
	wheelTarget    *Window
	nextWindow     nextWindowData
	windowsVisible int

	// IDs
	idStack []ID

	// Hover/active/focus tracking
	hoveredID             ID // Claimed this frame, last writer wins
	hoveredIDPrev         ID
	hoveredIDTimer        float32
	activeID              ID // Target of the in-progress interaction
	activeIDWindow        *Window
	activeIDButton        MouseButton
	activeIDJustActivated bool
	activeIDIsAlive       bool
	activeIDPrevFrame     ID
	activeIDClickOffset   Vec2
	focusedID             ID // Keyboard target, kept alive by its widget
	focusedIDAlive        bool
	focusRequestID        ID // Set for one frame when focus moved by navigation
	lastItem              lastItemData
	nextItemOpen          nextItemOpenData

	// Style stacks
	colorStack []colorBackup
	varStack   []varBackup

	// Disabled scope
	disabledDepth int
	disabledStack []disabledBackup

	// Keyboard focus registry
	focusNav *focusRegistry

	popups   popupState
	dragDrop dragDropState

	// Tables
	tables      *Pool[tableState]
	tableStack  []*Table
	currentTbl  *Table
	tablesFrame []*Table // Reused Table records

	// Per-widget state
	inputTexts   *Pool[InputTextState]
	listBoxStack []string // Labels drawn by EndListBox

	// Overlay drawn above every window (drag previews, debug rects)
	foreground *DrawList

	// Reused between AddText calls
	textMeasureCache map[textMeasureKey]Vec2
}

type textMeasureKey struct {
	text string
	size float32
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithStyle sets the initial style.
func WithStyle(style Style) ContextOption {
	return func(ctx *Context) { ctx.style = style }
}

// WithConfig sets the input timing and bookkeeping configuration.
func WithConfig(cfg Config) ContextOption {
	return func(ctx *Context) { ctx.cfg = cfg }
}

// WithLogger routes the context's debug records to logger.
func WithLogger(logger *slog.Logger) ContextOption {
	return func(ctx *Context) { ctx.logger = logger }
}

// WithClipboard installs a clipboard provider.
func WithClipboard(cp ClipboardProvider) ContextOption {
	return func(ctx *Context) { ctx.clipboard = cp }
}

// WithFontProvider installs a font provider.
func WithFontProvider(fp FontProvider) ContextOption {
	return func(ctx *Context) { ctx.fontProvider = fp }
}

// NewContext creates a new GUI context with default settings.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{
		cfg:              DefaultConfig(),
		logger:           defaultLogger,
		style:            DefaultStyle(),
		clipboard:        &memoryClipboard{},
		Events:           NewEventQueue(),
		FramebufferScale: Vec2{1, 1},
		windows:          NewPool[Window](),
		idStack:          make([]ID, 0, 32),
		focusNav:         newFocusRegistry(),
		tables:           NewPool[tableState](),
		inputTexts:       NewPool[InputTextState](),
		foreground:       NewDrawList(),
		textMeasureCache: make(map[textMeasureKey]Vec2, 64),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	if ctx.clipboard == nil {
		ctx.clipboard = &memoryClipboard{}
	}
	if ctx.logger == nil {
		ctx.logger = defaultLogger
	}
	ctx.foreground.Owner = "##Foreground"
	ctx.Input = NewInputState(ctx.cfg)
	return ctx
}

// Config returns the active configuration.
func (ctx *Context) Config() Config {
	return ctx.cfg
}

// SetConfig replaces the configuration. Timing changes apply from the next frame.
func (ctx *Context) SetConfig(cfg Config) {
	ctx.cfg = cfg
	ctx.Input.applyConfig(cfg)
}

// Logger returns the context's logger.
func (ctx *Context) Logger() *slog.Logger {
	return ctx.logger
}

// Style returns a copy of the current style, including pushed overrides.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle replaces the base style. Must not be called with pushes outstanding.
func (ctx *Context) SetStyle(style Style) {
	if len(ctx.colorStack) > 0 || len(ctx.varStack) > 0 {
		panic(usageErrorf("SetStyle", "style stacks not empty; pop every PushStyleColor/PushStyleVar first"))
	}
	ctx.style = style
}

// SetFontProvider sets the font provider for glyph rendering.
func (ctx *Context) SetFontProvider(fp FontProvider) {
	ctx.fontProvider = fp
	clear(ctx.textMeasureCache)
}

// FontProvider returns the current font provider, or nil if not set.
func (ctx *Context) FontProvider() FontProvider {
	return ctx.fontProvider
}

// ForegroundDrawList returns the overlay list drawn above every window.
func (ctx *Context) ForegroundDrawList() *DrawList {
	return ctx.foreground
}

// WithinFrame reports whether NewFrame was called without a matching EndFrame.
func (ctx *Context) WithinFrame() bool {
	return ctx.withinFrame
}

// LastDrain reports how many events the last NewFrame consumed and deferred.
func (ctx *Context) LastDrain() DrainResult {
	return ctx.lastDrain
}

// NewFrame starts a frame: advances time, drains the input queue and resets
// per-frame interaction state. A non-positive dt uses Config.DefaultDeltaTime.
func (ctx *Context) NewFrame(displaySize Vec2, dt float32) {
	if ctx.withinFrame {
		ctx.logger.Debug("NewFrame without EndFrame; ending previous frame", "frame", ctx.FrameCount)
		ctx.EndFrame()
	}
	if dt <= 0 {
		dt = ctx.cfg.DefaultDeltaTime
	}
	ctx.FrameCount++
	ctx.DeltaTime = dt
	ctx.Time += float64(dt)
	ctx.DisplaySize = displaySize
	ctx.withinFrame = true

	// Hover bookkeeping
	if ctx.hoveredID != 0 && ctx.hoveredID == ctx.hoveredIDPrev {
		ctx.hoveredIDTimer += dt
	} else {
		ctx.hoveredIDTimer = 0
	}
	ctx.hoveredIDPrev = ctx.hoveredID
	ctx.hoveredID = 0

	// Active id of a widget that was not submitted last frame is dropped.
	if ctx.activeID != 0 && !ctx.activeIDIsAlive && ctx.activeIDPrevFrame == ctx.activeID {
		ctx.logger.Debug("active id lost (not submitted)", "id", ctx.activeID)
		ctx.ClearActiveID()
	}
	ctx.activeIDPrevFrame = ctx.activeID
	ctx.activeIDIsAlive = false
	ctx.activeIDJustActivated = false

	if ctx.focusedID != 0 && !ctx.focusedIDAlive {
		ctx.focusedID = 0
	}
	ctx.focusedIDAlive = false
	ctx.focusRequestID = 0

	// Input
	ctx.Input.applyConfig(ctx.cfg)
	ctx.lastDrain = ctx.Input.Drain(ctx.Events, dt, ctx.Time, ctx.cfg.TrickleEventQueue)
	if n := ctx.Events.takeSubstituted(); n > 0 {
		ctx.logger.Debug("malformed UTF-16 input replaced", "count", n)
	}
	if ctx.Input.AppFocusLost {
		ctx.logger.Debug("application focus lost; input cleared", "frame", ctx.FrameCount)
		ctx.ClearActiveID()
		ctx.movingWindow = nil
	}

	// Draw lists are rebuilt from scratch
	ctx.foreground.Clear()
	ctx.windows.Each(func(_ ID, w *Window) {
		w.DrawList.Clear()
		w.WasActive = w.Active
		w.Active = false
		w.childWindowsPrev, w.childWindows = w.childWindows, w.childWindowsPrev[:0]
	})
	clear(ctx.textMeasureCache)

	ctx.focusNav.resetForFrame()
	ctx.dragDrop.beginFrame(ctx)

	ctx.evictWindows()
	ctx.updateMovingWindow()
	ctx.updateHoveredWindow()
	ctx.updateWheelTarget()
	ctx.updateMouseFocus()
	ctx.handleTabNavigation()

	ctx.lastItem = lastItemData{}
	ctx.windowsVisible = 0
}

// EndFrame closes the frame. Render calls it automatically.
func (ctx *Context) EndFrame() {
	if !ctx.withinFrame {
		panic(usageErrorf("EndFrame", msgNoFrame))
	}
	if ctx.currentWindow != nil {
		panic(usageErrorf("EndFrame", "window %q still open; call End for every Begin", ctx.currentWindow.Name))
	}
	if len(ctx.colorStack) > 0 || len(ctx.varStack) > 0 {
		ctx.logger.Warn("style stacks left unbalanced at end of frame; restoring",
			"colors", len(ctx.colorStack), "vars", len(ctx.varStack))
		ctx.PopStyleColor(len(ctx.colorStack))
		ctx.PopStyleVar(len(ctx.varStack))
	}
	if len(ctx.disabledStack) > 0 {
		ctx.logger.Warn("BeginDisabled left open at end of frame", "depth", len(ctx.disabledStack))
		for len(ctx.disabledStack) > 0 {
			ctx.EndDisabled()
		}
	}

	ctx.dragDrop.endFrame(ctx)
	ctx.popups.endFrame(ctx)

	in := ctx.Input
	in.WantCaptureMouse = in.WantCaptureMouse || ctx.hoveredWindow != nil || ctx.activeID != 0
	in.WantTextInput = ctx.activeTextInput() != 0
	in.WantCaptureKeyboard = in.WantTextInput || (in.WantCaptureKeyboard && ctx.focusedID != 0)

	ctx.withinFrame = false
	ctx.frameCountEnded = ctx.FrameCount
}

// Render finalizes the frame into dd, which the caller owns and may reuse.
// Lists are ordered back to front; the foreground overlay comes last.
func (ctx *Context) Render(dd *DrawData) {
	if ctx.withinFrame {
		ctx.EndFrame()
	}
	dd.Clear()
	dd.Valid = true
	dd.DisplayPos = Vec2{}
	dd.DisplaySize = ctx.DisplaySize
	dd.FramebufferScale = ctx.FramebufferScale
	for _, w := range ctx.windowOrder {
		if w.ParentWindow != nil || !w.Active || w.Hidden() {
			continue
		}
		ctx.addWindowToDrawData(dd, w)
	}
	dd.AddDrawList(ctx.foreground)
}

func (ctx *Context) addWindowToDrawData(dd *DrawData, w *Window) {
	dd.AddDrawList(w.DrawList)
	for _, child := range w.childWindows {
		if child.Active && !child.Hidden() {
			ctx.addWindowToDrawData(dd, child)
		}
	}
}

// lastItemStatus flags describe the most recently submitted item.
type lastItemStatus uint8

const (
	itemVisible lastItemStatus = 1 << iota
	itemClipped
	itemHoveredRect
	itemEdited
	itemToggled
	itemFocusable
	itemDisabled
)

type lastItemData struct {
	ID     ID
	Rect   Rect
	Status lastItemStatus
}

// mustWindow returns the current window or panics with a usage error.
func (ctx *Context) mustWindow(op string) *Window {
	if ctx.currentWindow == nil {
		if !ctx.withinFrame {
			panic(usageErrorf(op, msgNoFrame))
		}
		panic(usageErrorf(op, msgNoWindow))
	}
	return ctx.currentWindow
}

// CurrentWindow returns the window being declared. It panics outside Begin/End.
func (ctx *Context) CurrentWindow() *Window {
	return ctx.mustWindow("CurrentWindow")
}

// WindowDrawList returns the draw list of the current window.
func (ctx *Context) WindowDrawList() *DrawList {
	return ctx.mustWindow("WindowDrawList").DrawList
}

// Hover/active/focus queries

// HoveredID returns the item hovered so far this frame.
func (ctx *Context) HoveredID() ID { return ctx.hoveredID }

// HoveredIDPrev returns the item that was hovered at the end of last frame.
func (ctx *Context) HoveredIDPrev() ID { return ctx.hoveredIDPrev }

// ActiveID returns the item owning the in-progress interaction.
func (ctx *Context) ActiveID() ID { return ctx.activeID }

// ActiveIDJustActivated reports whether ActiveID became active this frame.
func (ctx *Context) ActiveIDJustActivated() bool { return ctx.activeIDJustActivated }

// FocusedID returns the item holding keyboard focus.
func (ctx *Context) FocusedID() ID { return ctx.focusedID }

// HoveredWindow returns the frontmost window under the pointer.
func (ctx *Context) HoveredWindow() *Window { return ctx.hoveredWindow }

// SetActiveID makes id the single active item. Passing 0 clears it.
func (ctx *Context) SetActiveID(id ID, w *Window) {
	if ctx.activeID != id {
		if verbose() {
			ctx.logger.Debug("active id changed", "from", ctx.activeID, "to", id, "frame", ctx.FrameCount)
		}
		ctx.activeIDJustActivated = id != 0
	}
	ctx.activeID = id
	ctx.activeIDWindow = w
	if id != 0 {
		ctx.activeIDIsAlive = true
	}
}

// ClearActiveID releases the active item.
func (ctx *Context) ClearActiveID() {
	ctx.SetActiveID(0, nil)
}

// SetFocusID gives id keyboard focus.
func (ctx *Context) SetFocusID(id ID) {
	ctx.focusedID = id
	ctx.focusedIDAlive = id != 0
}

// ClearFocus drops keyboard focus.
func (ctx *Context) ClearFocus() {
	ctx.focusedID = 0
	ctx.focusedIDAlive = false
}

// keepAliveID records that id was submitted this frame.
func (ctx *Context) keepAliveID(id ID) {
	if ctx.activeID == id {
		ctx.activeIDIsAlive = true
	}
	if ctx.focusedID == id {
		ctx.focusedIDAlive = true
	}
}

// IsMouseHoveringRect tests the pointer against r clipped to the current
// window's clip rectangle.
func (ctx *Context) IsMouseHoveringRect(r Rect) bool {
	if w := ctx.currentWindow; w != nil {
		r = r.Intersect(w.ClipRect)
	}
	return r.Contains(ctx.Input.MousePos)
}

// Disabled scope

type disabledBackup struct {
	alpha    float32
	disabled bool
}

// BeginDisabled dims and deactivates every widget until EndDisabled.
// Nested scopes multiply the alpha once; disabled=false still pushes a level
// so calls stay balanced.
func (ctx *Context) BeginDisabled(disabled bool) {
	ctx.disabledStack = append(ctx.disabledStack, disabledBackup{alpha: ctx.style.Alpha, disabled: disabled})
	if !disabled {
		return
	}
	if ctx.disabledDepth == 0 {
		ctx.style.Alpha *= ctx.style.DisabledAlpha
	}
	ctx.disabledDepth++
}

// EndDisabled closes the matching BeginDisabled.
func (ctx *Context) EndDisabled() {
	n := len(ctx.disabledStack)
	if n == 0 {
		panic(usageErrorf("EndDisabled", "no matching BeginDisabled"))
	}
	saved := ctx.disabledStack[n-1]
	ctx.disabledStack = ctx.disabledStack[:n-1]
	if !saved.disabled {
		return
	}
	ctx.disabledDepth--
	ctx.style.Alpha = saved.alpha
}

// IsDisabled reports whether widgets are currently inside a disabled scope.
func (ctx *Context) IsDisabled() bool {
	return ctx.disabledDepth > 0
}

// Window bookkeeping

func (ctx *Context) evictWindows() {
	if ctx.cfg.WindowEvictFrames == 0 {
		return
	}
	ctx.windows.Evict(ctx.FrameCount, ctx.cfg.WindowEvictFrames, func(id ID, w *Window) {
		ctx.logger.Debug("window evicted", "name", w.Name, "id", id, "lastActive", w.LastActiveFrame)
		ReleaseDrawList(w.DrawList)
		w.DrawList = nil
		ctx.removeFromOrder(w)
		if ctx.focusedWindow == w {
			ctx.focusedWindow = nil
		}
		if ctx.hoveredWindow == w {
			ctx.hoveredWindow = nil
		}
		if ctx.activeIDWindow == w {
			ctx.ClearActiveID()
		}
	})
	ctx.inputTexts.Evict(ctx.FrameCount, ctx.cfg.WindowEvictFrames, nil)
	ctx.tables.Evict(ctx.FrameCount, ctx.cfg.WindowEvictFrames, nil)
}

func (ctx *Context) removeFromOrder(w *Window) {
	for i, o := range ctx.windowOrder {
		if o == w {
			ctx.windowOrder = append(ctx.windowOrder[:i], ctx.windowOrder[i+1:]...)
			return
		}
	}
}

// updateHoveredWindow picks the frontmost window under the pointer, using
// rectangles from last frame.
func (ctx *Context) updateHoveredWindow() {
	ctx.hoveredWindow = nil
	if ctx.movingWindow != nil {
		ctx.hoveredWindow = ctx.movingWindow
		return
	}
	pos := ctx.Input.MousePos
	if !mousePosValid(pos) {
		return
	}
	for i := len(ctx.windowOrder) - 1; i >= 0; i-- {
		w := ctx.windowOrder[i]
		if !w.WasActive || w.Hidden() || w.Flags&WindowNoInputs != 0 {
			continue
		}
		if w.OuterRect().Contains(pos) {
			ctx.hoveredWindow = ctx.hoverTarget(w, pos)
			return
		}
	}
}

// updateMouseFocus brings the clicked window to the front and closes popups
// the click landed outside of.
func (ctx *Context) updateMouseFocus() {
	if !ctx.Input.MouseClicked(MouseButtonLeft) && !ctx.Input.MouseClicked(MouseButtonRight) {
		return
	}
	ctx.popups.closeOutside(ctx, ctx.hoveredWindow)
	if ctx.Input.MouseClicked(MouseButtonLeft) {
		if ctx.hoveredWindow != nil {
			ctx.focusWindow(ctx.hoveredWindow)
		} else {
			ctx.focusWindow(nil)
			ctx.ClearFocus()
		}
	}
}

// focusWindow makes w the focused window and moves its root to the front.
func (ctx *Context) focusWindow(w *Window) {
	ctx.focusedWindow = w
	if w == nil {
		return
	}
	root := w.RootWindow
	if root.Flags&WindowNoBringToFront != 0 {
		return
	}
	ctx.bringToFront(root)
}

func (ctx *Context) bringToFront(w *Window) {
	n := len(ctx.windowOrder)
	if n == 0 || ctx.windowOrder[n-1] == w {
		return
	}
	for i, o := range ctx.windowOrder {
		if o == w {
			copy(ctx.windowOrder[i:], ctx.windowOrder[i+1:])
			ctx.windowOrder[n-1] = w
			return
		}
	}
}

// Windows returns the known windows back to front.
func (ctx *Context) Windows() []*Window {
	out := make([]*Window, len(ctx.windowOrder))
	copy(out, ctx.windowOrder)
	return out
}

// FindWindowByName returns the window named name, or nil.
func (ctx *Context) FindWindowByName(name string) *Window {
	return ctx.windows.Get(Hash(name, 0))
}

// WindowCount returns the number of live windows.
func (ctx *Context) WindowCount() int {
	return ctx.windows.Len()
}
