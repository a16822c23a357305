package opengl

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/imcore"
)

// GLFWInput forwards GLFW window callbacks to a context's event queue.
// Callbacks run on the main thread during glfw.PollEvents; the queue is
// drained by the next NewFrame.
type GLFWInput struct {
	window *glfw.Window
	events *imcore.EventQueue
}

// NewGLFWInput installs input callbacks on window that push to ctx.Events,
// and makes window's clipboard the context's clipboard.
func NewGLFWInput(window *glfw.Window, ctx *imcore.Context) *GLFWInput {
	in := &GLFWInput{window: window, events: ctx.Events}

	window.SetKeyCallback(in.keyCallback)
	window.SetCharCallback(in.charCallback)
	window.SetMouseButtonCallback(in.mouseButtonCallback)
	window.SetScrollCallback(in.scrollCallback)
	window.SetCursorPosCallback(in.cursorPosCallback)
	window.SetCursorEnterCallback(in.cursorEnterCallback)
	window.SetFocusCallback(in.focusCallback)

	ctx.SetClipboardProvider(imcore.ClipboardFuncs{
		Get: window.GetClipboardString,
		Set: window.SetClipboardString,
	})
	return in
}

// FramebufferScale returns the ratio of framebuffer pixels to window
// coordinates, for HiDPI displays.
func (in *GLFWInput) FramebufferScale() imcore.Vec2 {
	ww, wh := in.window.GetSize()
	fw, fh := in.window.GetFramebufferSize()
	if ww == 0 || wh == 0 {
		return imcore.Vec2{X: 1, Y: 1}
	}
	return imcore.Vec2{X: float32(fw) / float32(ww), Y: float32(fh) / float32(wh)}
}

// DisplaySize returns the window size in logical coordinates.
func (in *GLFWInput) DisplaySize() imcore.Vec2 {
	w, h := in.window.GetSize()
	return imcore.Vec2{X: float32(w), Y: float32(h)}
}

func (in *GLFWInput) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKey(key)
	if k == imcore.KeyNone {
		return
	}
	switch action {
	case glfw.Press:
		in.events.AddKey(k, true)
	case glfw.Release:
		in.events.AddKey(k, false)
	}
	// Repeat is synthesized by the core from key-down duration.
}

func (in *GLFWInput) charCallback(_ *glfw.Window, char rune) {
	in.events.AddChar(char)
}

func (in *GLFWInput) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}
	in.events.AddMouseButton(b, action == glfw.Press)
}

func (in *GLFWInput) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	in.events.AddMouseWheel(float32(xoff), float32(yoff))
}

func (in *GLFWInput) cursorPosCallback(_ *glfw.Window, x, y float64) {
	in.events.AddMousePos(float32(x), float32(y))
}

func (in *GLFWInput) cursorEnterCallback(_ *glfw.Window, entered bool) {
	if !entered {
		in.events.AddMousePos(-math.MaxFloat32, -math.MaxFloat32)
	}
}

func (in *GLFWInput) focusCallback(_ *glfw.Window, focused bool) {
	in.events.AddFocus(focused)
}

// glfwKey maps a GLFW key to an imcore key, or KeyNone.
func glfwKey(key glfw.Key) imcore.Key {
	switch key {
	case glfw.KeyTab:
		return imcore.KeyTab
	case glfw.KeyLeft:
		return imcore.KeyLeft
	case glfw.KeyRight:
		return imcore.KeyRight
	case glfw.KeyUp:
		return imcore.KeyUp
	case glfw.KeyDown:
		return imcore.KeyDown
	case glfw.KeyPageUp:
		return imcore.KeyPageUp
	case glfw.KeyPageDown:
		return imcore.KeyPageDown
	case glfw.KeyHome:
		return imcore.KeyHome
	case glfw.KeyEnd:
		return imcore.KeyEnd
	case glfw.KeyInsert:
		return imcore.KeyInsert
	case glfw.KeyDelete:
		return imcore.KeyDelete
	case glfw.KeyBackspace:
		return imcore.KeyBackspace
	case glfw.KeySpace:
		return imcore.KeySpace
	case glfw.KeyEnter:
		return imcore.KeyEnter
	case glfw.KeyEscape:
		return imcore.KeyEscape
	case glfw.KeyLeftControl:
		return imcore.KeyLeftCtrl
	case glfw.KeyRightControl:
		return imcore.KeyRightCtrl
	case glfw.KeyLeftShift:
		return imcore.KeyLeftShift
	case glfw.KeyRightShift:
		return imcore.KeyRightShift
	case glfw.KeyLeftAlt:
		return imcore.KeyLeftAlt
	case glfw.KeyRightAlt:
		return imcore.KeyRightAlt
	case glfw.KeyLeftSuper:
		return imcore.KeyLeftSuper
	case glfw.KeyRightSuper:
		return imcore.KeyRightSuper
	}
	switch {
	case key >= glfw.Key0 && key <= glfw.Key9:
		return imcore.Key0 + imcore.Key(key-glfw.Key0)
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return imcore.KeyA + imcore.Key(key-glfw.KeyA)
	}
	switch key {
	case glfw.KeyF1:
		return imcore.KeyF1
	case glfw.KeyF2:
		return imcore.KeyF2
	case glfw.KeyF3:
		return imcore.KeyF3
	case glfw.KeyF4:
		return imcore.KeyF4
	case glfw.KeyF5:
		return imcore.KeyF5
	case glfw.KeyF6:
		return imcore.KeyF6
	case glfw.KeyF7:
		return imcore.KeyF7
	case glfw.KeyF8:
		return imcore.KeyF8
	case glfw.KeyF9:
		return imcore.KeyF9
	case glfw.KeyF10:
		return imcore.KeyF10
	case glfw.KeyF11:
		return imcore.KeyF11
	case glfw.KeyF12:
		return imcore.KeyF12
	default:
		return imcore.KeyNone
	}
}

// glfwMouseButton maps a GLFW button to an imcore button, or -1.
func glfwMouseButton(button glfw.MouseButton) imcore.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return imcore.MouseButtonLeft
	case glfw.MouseButtonRight:
		return imcore.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return imcore.MouseButtonMiddle
	case glfw.MouseButton4:
		return imcore.MouseButtonExtra1
	case glfw.MouseButton5:
		return imcore.MouseButtonExtra2
	default:
		return -1
	}
}
