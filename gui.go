package imcore

// Renderer turns finished draw data into pixels.
type Renderer interface {
	RenderDrawData(dd *DrawData) error
	Resize(width, height int)
}

// GUI bundles a context, its draw data buffer and a renderer for the
// common one-window application loop:
//
//	ctx := g.Begin(size, dt)
//	if ctx.Begin("Tools", nil, 0) { ... }
//	ctx.End()
//	err := g.End()
type GUI struct {
	renderer Renderer
	ctx      *Context
	drawData DrawData
	ctxOpts  []ContextOption
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithContextOptions passes options to the GUI's context.
func WithContextOptions(opts ...ContextOption) GUIOption {
	return func(g *GUI) { g.ctxOpts = append(g.ctxOpts, opts...) }
}

// New creates a GUI drawing through renderer. renderer may be nil for
// headless use; End then only builds the draw data.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{renderer: renderer}
	for _, opt := range opts {
		opt(g)
	}
	g.ctx = NewContext(g.ctxOpts...)
	g.ctxOpts = nil
	return g
}

// Begin starts a frame and returns the context to declare UI on.
func (g *GUI) Begin(displaySize Vec2, deltaTime float32) *Context {
	g.ctx.NewFrame(displaySize, deltaTime)
	return g.ctx
}

// End finishes the frame and renders it.
func (g *GUI) End() error {
	g.ctx.Render(&g.drawData)
	if g.renderer == nil {
		return nil
	}
	return g.renderer.RenderDrawData(&g.drawData)
}

// Context returns the GUI's context.
func (g *GUI) Context() *Context {
	return g.ctx
}

// DrawData returns the draw data built by the last End.
func (g *GUI) DrawData() *DrawData {
	return &g.drawData
}

// Resize notifies the renderer of a framebuffer size change.
func (g *GUI) Resize(width, height int) {
	if g.renderer != nil {
		g.renderer.Resize(width, height)
	}
}

// SetFontProvider sets the font provider used for measuring and glyphs.
func (g *GUI) SetFontProvider(fp FontProvider) {
	g.ctx.SetFontProvider(fp)
}
