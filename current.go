package imcore

import "sync/atomic"

// The ambient context is a convenience for programs with a single
// context. Everything it wraps is also a method on *Context.
var current atomic.Pointer[Context]

// CreateContext creates a context and makes it current if none is.
func CreateContext(opts ...ContextOption) *Context {
	ctx := NewContext(opts...)
	current.CompareAndSwap(nil, ctx)
	ctx.logger.Debug("context created")
	return ctx
}

// SetCurrentContext makes ctx the ambient context. nil clears it.
func SetCurrentContext(ctx *Context) {
	current.Store(ctx)
}

// CurrentContext returns the ambient context, or nil.
func CurrentContext() *Context {
	return current.Load()
}

// DestroyContext releases ctx's pooled resources. If ctx is current the
// ambient context becomes nil. ctx must not be used afterwards.
func DestroyContext(ctx *Context) {
	if ctx == nil {
		return
	}
	current.CompareAndSwap(ctx, nil)
	ctx.windows.Each(func(_ ID, w *Window) {
		ReleaseDrawList(w.DrawList)
		w.DrawList = nil
	})
	ctx.windows.Clear()
	ctx.windowOrder = nil
	ctx.tables.Clear()
	ctx.inputTexts.Clear()
	ctx.Events.Clear()
	ctx.logger.Debug("context destroyed", "frames", ctx.FrameCount)
}

func mustCurrent(op string) *Context {
	ctx := current.Load()
	if ctx == nil {
		panic(usageErrorf(op, msgNoContext))
	}
	return ctx
}

// NewFrame starts a frame on the ambient context.
func NewFrame(displaySize Vec2, dt float32) { mustCurrent("NewFrame").NewFrame(displaySize, dt) }

// EndFrame ends the ambient context's frame.
func EndFrame() { mustCurrent("EndFrame").EndFrame() }

// Render finalizes the ambient context's frame into dd.
func Render(dd *DrawData) { mustCurrent("Render").Render(dd) }

// Begin opens a window on the ambient context.
func Begin(name string, open *bool, flags WindowFlags) bool {
	return mustCurrent("Begin").Begin(name, open, flags)
}

// End closes the window opened by Begin.
func End() { mustCurrent("End").End() }

// Text draws text with the ambient context.
func Text(text string) { mustCurrent("Text").Text(text) }

// Button draws a button with the ambient context.
func Button(label string, opts ...Option) bool { return mustCurrent("Button").Button(label, opts...) }

// Checkbox draws a checkbox with the ambient context.
func Checkbox(label string, value *bool, opts ...Option) bool {
	return mustCurrent("Checkbox").Checkbox(label, value, opts...)
}

// SliderFloat draws a slider with the ambient context.
func SliderFloat(label string, value *float32, minVal, maxVal float32, opts ...Option) bool {
	return mustCurrent("SliderFloat").SliderFloat(label, value, minVal, maxVal, opts...)
}

// InputText draws a text field with the ambient context.
func InputText(label string, value *string, opts ...Option) bool {
	return mustCurrent("InputText").InputText(label, value, opts...)
}

// SameLine continues the previous line on the ambient context.
func SameLine() { mustCurrent("SameLine").SameLine() }

// PushID opens an ID scope on the ambient context.
func PushID(label string) { mustCurrent("PushID").PushID(label) }

// PopID closes an ID scope on the ambient context.
func PopID() { mustCurrent("PopID").PopID() }

// GetID hashes label in the ambient context's current ID scope.
func GetID(label string) ID { return mustCurrent("GetID").GetID(label) }
