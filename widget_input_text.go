package imcore

import (
	"math"
	"strings"
	"unicode"

	"github.com/go-theft-auto/imcore/textedit"
)

const maxUndoSize = 50

// InputTextState is the persistent editing state of one InputText,
// pooled by item ID while the field is in use.
type InputTextState struct {
	ID      ID
	Edit    textedit.State
	Scroll  float32 // Horizontal text offset keeping the cursor in view
	editing bool

	buf       textedit.RuneBuffer
	initial   string // Restored by Escape
	blink     float32
	undoStack []string
	undoIndex int
}

// Text returns the text being edited.
func (s *InputTextState) Text() string { return s.buf.String() }

// Editing reports whether the field is capturing keyboard input.
func (s *InputTextState) Editing() bool { return s.editing }

func (s *InputTextState) begin(text string) {
	s.editing = true
	s.buf.Set(text)
	s.initial = text
	s.blink = 0
	s.undoStack = s.undoStack[:0]
	s.undoIndex = 0
	s.Edit.Clamp(&s.buf)
}

// pushUndo saves text before an edit, dropping any redo history.
func (s *InputTextState) pushUndo(text string) {
	if s.undoIndex < len(s.undoStack) {
		s.undoStack = s.undoStack[:s.undoIndex]
	}
	if n := len(s.undoStack); n > 0 && s.undoStack[n-1] == text {
		return
	}
	s.undoStack = append(s.undoStack, text)
	s.undoIndex = len(s.undoStack)
	if len(s.undoStack) > maxUndoSize {
		s.undoStack = s.undoStack[1:]
		s.undoIndex--
	}
}

func (s *InputTextState) undo() bool {
	if s.undoIndex == 0 {
		return false
	}
	cur := s.buf.String()
	if s.undoIndex == len(s.undoStack) && s.undoStack[len(s.undoStack)-1] != cur {
		s.undoStack = append(s.undoStack, cur)
	}
	s.undoIndex--
	s.restore(s.undoStack[s.undoIndex])
	return true
}

func (s *InputTextState) redo() bool {
	if s.undoIndex >= len(s.undoStack)-1 {
		return false
	}
	s.undoIndex++
	s.restore(s.undoStack[s.undoIndex])
	return true
}

func (s *InputTextState) restore(text string) {
	s.buf.Set(text)
	n := s.buf.Len()
	s.Edit = textedit.State{Cursor: n, SelectStart: n, SelectEnd: n}
}

// activeTextInput returns the ID of the InputText capturing the keyboard,
// or 0.
func (ctx *Context) activeTextInput() ID {
	id := ctx.focusedID
	if id == 0 {
		return 0
	}
	if s := ctx.inputTexts.Get(id); s != nil && s.editing {
		return id
	}
	return 0
}

// InputTextStateOf returns the editing state of the field id, or nil.
func (ctx *Context) InputTextStateOf(id ID) *InputTextState {
	return ctx.inputTexts.Get(id)
}

// InputText edits *value in a single-line field. It returns true when the
// text changed, or with EnterReturnsTrue only when Enter commits it.
//
// Clicking the field or tabbing to it starts editing. Enter or a click
// elsewhere stops; Escape stops and restores the text from before editing.
// Ctrl+A/C/X/V/Z/Y select all, use the clipboard, undo and redo.
func (ctx *Context) InputText(label string, value *string, opts ...Option) bool {
	w := ctx.mustWindow("InputText")
	o := applyOptions(opts)
	defer ctx.itemOptions(o)()

	id := ctx.itemID(label, o)
	frame, total, text := ctx.labeledFrame(w, o, label)
	ctx.ItemSize(total.Size())
	if !ctx.ItemAdd(total, id) {
		return false
	}
	ctx.RegisterFocusable(id)

	s, created := ctx.inputTexts.GetOrAdd(id, ctx.FrameCount)
	if created {
		s.ID = id
	}
	password := GetOpt(o, OptPassword)
	readOnly := GetOpt(o, OptReadOnly)
	enterReturns := GetOpt(o, OptEnterReturn)
	maxLen := GetOpt(o, OptMaxLength)
	in := ctx.Input

	_, hovered, held := ctx.ButtonBehavior(frame, id, ButtonPressOnClick)
	if s.editing && ctx.focusedID != id {
		s.editing = false
	}
	clickedHere := hovered && in.MouseClicked(MouseButtonLeft)
	switch {
	case clickedHere:
		if !s.editing {
			s.begin(*value)
		}
		ctx.SetFocusID(id)
		pos := ctx.inputTextIndexAt(s, password, in.MousePos.X-frame.X-ctx.style.FramePadding.X+s.Scroll)
		switch {
		case in.MouseDoubleClicked(MouseButtonLeft):
			s.Edit.SelectAll(&s.buf)
		default:
			s.Edit.Click(&s.buf, pos, in.KeyShift)
		}
	case ctx.focusRequestID == id && !s.editing:
		s.begin(*value)
		s.Edit.SelectAll(&s.buf)
	case s.editing && in.MouseClicked(MouseButtonLeft) && !hovered:
		s.editing = false
		if ctx.focusedID == id {
			ctx.ClearFocus()
		}
	}
	if held && s.editing && !ctx.activeIDJustActivated && in.MouseDelta.X != 0 {
		pos := ctx.inputTextIndexAt(s, password, in.MousePos.X-frame.X-ctx.style.FramePadding.X+s.Scroll)
		s.Edit.Drag(&s.buf, pos)
	}

	changed, committed := false, false
	if s.editing {
		edited, enter, cancel := ctx.inputTextKeys(s, readOnly, password, maxLen)
		s.blink += ctx.DeltaTime
		switch {
		case cancel:
			if s.buf.String() != s.initial {
				s.buf.Set(s.initial)
				edited = true
			}
			s.editing = false
			ctx.ClearFocus()
		case enter:
			committed = true
			s.editing = false
			ctx.ClearFocus()
		}
		if edited {
			s.blink = 0
			if t := s.buf.String(); t != *value {
				*value = t
				changed = true
				ctx.markEdited()
			}
		}
	}

	ctx.renderInputText(w, s, frame, *value, o, hovered)
	ctx.renderFrameLabel(w, frame, text)
	if enterReturns {
		return committed
	}
	return changed
}

// inputTextKeys applies this frame's keyboard input to s.
func (ctx *Context) inputTextKeys(s *InputTextState, readOnly, password bool, maxLen int) (edited, enter, cancel bool) {
	in := ctx.Input
	buf := &s.buf
	ed := &s.Edit
	ed.Clamp(buf)
	word := in.KeyCtrl || in.KeyAlt
	edit := func(f func() bool) {
		if readOnly {
			return
		}
		before := buf.String()
		if f() {
			s.pushUndo(before)
			edited = true
		}
	}

	move := func(k Key, plain, withWord textedit.Key) {
		if in.KeyPressedRepeat(k) {
			tk := plain
			if word {
				tk = withWord
			}
			ed.Key(buf, tk, in.KeyShift)
		}
	}
	move(KeyLeft, textedit.KeyLeft, textedit.KeyWordLeft)
	move(KeyRight, textedit.KeyRight, textedit.KeyWordRight)
	move(KeyHome, textedit.KeyLineStart, textedit.KeyTextStart)
	move(KeyEnd, textedit.KeyLineEnd, textedit.KeyTextEnd)

	if in.KeyPressedRepeat(KeyBackspace) {
		k := textedit.KeyBackspace
		if word {
			k = textedit.KeyWordBackspace
		}
		edit(func() bool { return ed.Key(buf, k, false) })
	}
	if in.KeyPressedRepeat(KeyDelete) {
		k := textedit.KeyDelete
		if word {
			k = textedit.KeyWordDelete
		}
		edit(func() bool { return ed.Key(buf, k, false) })
	}

	if in.KeyCtrl {
		switch {
		case in.KeyPressed(KeyA):
			ed.SelectAll(buf)
		case in.KeyPressed(KeyC) && !password:
			if sel := ed.Copy(buf); sel != nil {
				ctx.SetClipboardText(string(sel))
			}
		case in.KeyPressed(KeyX) && !password:
			if ed.HasSelection() && !readOnly {
				ctx.SetClipboardText(string(ed.Copy(buf)))
				edit(func() bool { return ed.DeleteSelection(buf) })
			}
		case in.KeyPressed(KeyV):
			clip := []rune(strings.ReplaceAll(ctx.ClipboardText(), "\n", " "))
			edit(func() bool { return ed.Paste(buf, limitRunes(s, clip, maxLen)) })
		case in.KeyPressedRepeat(KeyZ) && !in.KeyShift:
			if !readOnly && s.undo() {
				edited = true
			}
		case in.KeyPressedRepeat(KeyY), in.KeyPressedRepeat(KeyZ) && in.KeyShift:
			if !readOnly && s.redo() {
				edited = true
			}
		}
	} else if len(in.InputChars) > 0 {
		typed := make([]rune, 0, len(in.InputChars))
		for _, r := range in.InputChars {
			if unicode.IsPrint(r) || r == ' ' {
				typed = append(typed, r)
			}
		}
		if len(typed) > 0 {
			edit(func() bool { return ed.Paste(buf, limitRunes(s, typed, maxLen)) })
		}
	}

	enter = in.KeyPressed(KeyEnter)
	cancel = in.KeyPressed(KeyEscape)
	return edited, enter, cancel
}

// limitRunes cuts text so that replacing the selection keeps the buffer
// within maxLen runes.
func limitRunes(s *InputTextState, text []rune, maxLen int) []rune {
	if maxLen <= 0 {
		return text
	}
	lo, hi := s.Edit.Selection()
	room := maxLen - (s.buf.Len() - (hi - lo))
	if room <= 0 {
		return nil
	}
	if len(text) > room {
		return text[:room]
	}
	return text
}

func displayText(text string, password bool) string {
	if password {
		return strings.Repeat("*", len([]rune(text)))
	}
	return text
}

// inputTextIndexAt maps an x offset within the displayed text to the
// nearest rune boundary.
func (ctx *Context) inputTextIndexAt(s *InputTextState, password bool, x float32) int {
	runes := []rune(displayText(s.buf.String(), password))
	prev := float32(0)
	for i := range runes {
		next := ctx.CalcTextSize(string(runes[:i+1])).X
		if x < (prev+next)/2 {
			return i
		}
		prev = next
	}
	return len(runes)
}

func (ctx *Context) renderInputText(w *Window, s *InputTextState, frame Rect, value string, o options, hovered bool) {
	dl := w.DrawList
	pad := ctx.style.FramePadding
	col := ColFrameBg
	if s.editing {
		col = ColFrameBgActive
	} else if hovered {
		col = ColFrameBgHovered
	}
	ctx.renderFrame(dl, frame, ctx.style.Color(col))
	ctx.renderNavHighlight(dl, frame, s.ID)

	inner := Rect{X: frame.X + pad.X, Y: frame.Y, W: maxf(0, frame.W-pad.X*2), H: frame.H}
	password := GetOpt(o, OptPassword)
	shown := value
	if s.editing {
		shown = s.buf.String()
	}
	if shown == "" && !s.editing {
		if hint := GetOpt(o, OptHint); hint != "" {
			ctx.renderTextClipped(dl, inner, hint, ctx.CalcTextSize(hint), Vec2{0, 0.5}, ctx.style.Color(ColTextDisabled))
		}
		return
	}
	shown = displayText(shown, password)
	runes := []rune(shown)
	textY := frame.Y + pad.Y

	if !s.editing {
		s.Scroll = 0
		dl.PushClipRect(inner, true)
		ctx.renderText(dl, Vec2{inner.X, textY}, shown, ctx.style.Color(ColText))
		dl.PopClipRect()
		return
	}

	ed := s.Edit
	ed.Clamp(&s.buf)
	cursorX := ctx.CalcTextSize(string(runes[:ed.Cursor])).X
	if ed.Cursor == 0 {
		cursorX = 0
	}
	switch {
	case cursorX < s.Scroll:
		s.Scroll = maxf(0, cursorX-inner.W/4)
	case cursorX-s.Scroll > inner.W:
		s.Scroll = cursorX - inner.W
	}

	dl.PushClipRect(inner, true)
	origin := Vec2{inner.X - s.Scroll, textY}
	lh := ctx.TextLineHeight()
	if ed.HasSelection() {
		lo, hi := ed.Selection()
		x0 := float32(0)
		if lo > 0 {
			x0 = ctx.CalcTextSize(string(runes[:lo])).X
		}
		x1 := ctx.CalcTextSize(string(runes[:hi])).X
		dl.AddRectFilled(origin.X+x0, origin.Y, x1-x0, lh, ctx.style.Color(ColTextSelectedBg))
	}
	ctx.renderText(dl, origin, shown, ctx.style.Color(ColText))
	if blinkOn(s.blink) {
		dl.AddRectFilled(origin.X+cursorX, origin.Y, 1, lh, ctx.style.Color(ColText))
	}
	dl.PopClipRect()
}

// blinkOn is the cursor blink cycle: 0.8s visible, 0.4s hidden.
func blinkOn(t float32) bool {
	return math.Mod(float64(t), 1.2) < 0.8
}
