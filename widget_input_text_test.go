package imcore

import "testing"

// startEditing clicks the field declared by decl and releases, leaving it
// focused and editing.
func startEditing(h *harness, decl func(ctx *Context)) ID {
	h.t.Helper()
	var rect Rect
	var id ID
	h.frame(func(ctx *Context) { decl(ctx); rect, id = ctx.ItemRect(), ctx.LastItemID() })
	h.moveTo(Vec2{rect.X + 20, rect.Y + rect.H/2})
	h.press()
	h.frame(decl)
	h.release()
	h.frame(decl)
	return id
}

func TestInputTextClickStartsEditing(t *testing.T) {
	h := newHarness(t)
	value := "ab"
	id := startEditing(h, func(ctx *Context) { ctx.InputText("Name", &value) })

	s := h.ctx.InputTextStateOf(id)
	if s == nil || !s.Editing() {
		t.Fatal("click should start editing")
	}
	if h.ctx.FocusedID() != id {
		t.Error("editing field should hold keyboard focus")
	}
	if !h.ctx.Input.WantTextInput || !h.ctx.Input.WantCaptureKeyboard {
		t.Error("an editing field should capture the keyboard")
	}
}

func TestInputTextTypingAndUndo(t *testing.T) {
	h := newHarness(t)
	value := ""
	var changed, edited bool
	decl := func(ctx *Context) {
		changed = ctx.InputText("Name", &value)
		edited = ctx.IsItemEdited()
	}
	startEditing(h, decl)

	h.ctx.Events.AddChars("hi")
	h.frame(decl)
	if !changed || !edited || value != "hi" {
		t.Fatalf("after typing: changed=%v edited=%v value=%q", changed, edited, value)
	}

	h.key(KeyLeftCtrl)
	h.key(KeyZ)
	h.frame(decl)
	if !changed || value != "" {
		t.Errorf("Ctrl+Z should undo the typing, value=%q", value)
	}
	h.keyUp(KeyZ)
	h.frame(decl)

	h.key(KeyY)
	h.frame(decl)
	if value != "hi" {
		t.Errorf("Ctrl+Y should redo, value=%q", value)
	}
}

func TestInputTextEscapeRestores(t *testing.T) {
	h := newHarness(t)
	value := "keep"
	decl := func(ctx *Context) { ctx.InputText("Name", &value) }
	id := startEditing(h, decl)

	h.ctx.Events.AddChars("xyz")
	h.frame(decl)
	if value == "keep" {
		t.Fatal("typing should change the value")
	}

	h.key(KeyEscape)
	h.frame(decl)
	if value != "keep" {
		t.Errorf("Escape should restore the text from before editing, got %q", value)
	}
	if h.ctx.InputTextStateOf(id).Editing() || h.ctx.FocusedID() != 0 {
		t.Error("Escape should stop editing and drop focus")
	}
}

func TestInputTextEnterReturnsTrue(t *testing.T) {
	h := newHarness(t)
	value := ""
	var ret bool
	decl := func(ctx *Context) { ret = ctx.InputText("Cmd", &value, EnterReturnsTrue()) }
	startEditing(h, decl)

	h.ctx.Events.AddChars("go")
	h.frame(decl)
	if ret {
		t.Error("typing alone must not return true with EnterReturnsTrue")
	}
	if value != "go" {
		t.Errorf("value = %q", value)
	}

	h.key(KeyEnter)
	h.frame(decl)
	if !ret {
		t.Error("Enter should commit and return true")
	}
}

func TestInputTextMaxLengthAndReadOnly(t *testing.T) {
	h := newHarness(t)
	limited, fixed := "", "ro"
	decl := func(ctx *Context) {
		ctx.InputText("Limited", &limited, WithMaxLength(3))
	}
	startEditing(h, decl)
	h.ctx.Events.AddChars("abcdef")
	h.frame(decl)
	if limited != "abc" {
		t.Errorf("max length 3 kept %q", limited)
	}

	h2 := newHarness(t)
	decl2 := func(ctx *Context) { ctx.InputText("Fixed", &fixed, ReadOnly()) }
	startEditing(h2, decl2)
	h2.ctx.Events.AddChars("zz")
	h2.frame(decl2)
	if fixed != "ro" {
		t.Errorf("read-only field changed to %q", fixed)
	}
}

func TestInputTextClickOutsideStops(t *testing.T) {
	h := newHarness(t)
	value := ""
	decl := func(ctx *Context) { ctx.InputText("Name", &value) }
	id := startEditing(h, decl)

	h.moveTo(Vec2{200, 250})
	h.press()
	h.frame(decl)
	if h.ctx.InputTextStateOf(id).Editing() {
		t.Error("click elsewhere should stop editing")
	}
	if h.ctx.FocusedID() == id {
		t.Error("click elsewhere should drop focus")
	}
}

func TestInputTextPaste(t *testing.T) {
	h := newHarness(t)
	h.ctx.SetClipboardText("one\ntwo")
	value := ""
	decl := func(ctx *Context) { ctx.InputText("Name", &value) }
	startEditing(h, decl)

	h.key(KeyLeftCtrl)
	h.key(KeyV)
	h.frame(decl)
	if value != "one two" {
		t.Errorf("paste should flatten newlines, got %q", value)
	}
}
