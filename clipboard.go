package imcore

// ClipboardProvider abstracts system clipboard access.
// Implement this interface with platform-specific clipboard APIs.
//
// For GLFW:
//
//	type GLFWClipboard struct {
//	    window *glfw.Window
//	}
//
//	func (c *GLFWClipboard) GetText() string {
//	    return c.window.GetClipboardString()
//	}
//
//	func (c *GLFWClipboard) SetText(text string) {
//	    c.window.SetClipboardString(text)
//	}
type ClipboardProvider interface {
	// GetText retrieves text from the clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the clipboard.
	SetText(text string)
}

// ClipboardFuncs adapts a get/set function pair to ClipboardProvider.
type ClipboardFuncs struct {
	Get func() string
	Set func(text string)
}

// GetText calls Get, or returns "" when Get is nil.
func (f ClipboardFuncs) GetText() string {
	if f.Get == nil {
		return ""
	}
	return f.Get()
}

// SetText calls Set when non-nil.
func (f ClipboardFuncs) SetText(text string) {
	if f.Set != nil {
		f.Set(text)
	}
}

// memoryClipboard is the in-process fallback used until a backend installs
// a real provider.
type memoryClipboard struct {
	text string
}

func (m *memoryClipboard) GetText() string     { return m.text }
func (m *memoryClipboard) SetText(text string) { m.text = text }

// SetClipboardProvider installs a clipboard provider; nil restores the
// in-process fallback.
func (ctx *Context) SetClipboardProvider(cp ClipboardProvider) {
	if cp == nil {
		cp = &memoryClipboard{}
	}
	ctx.clipboard = cp
}

// ClipboardText retrieves text from the clipboard.
func (ctx *Context) ClipboardText() string {
	return ctx.clipboard.GetText()
}

// SetClipboardText copies text to the clipboard.
func (ctx *Context) SetClipboardText(text string) {
	ctx.clipboard.SetText(text)
}
