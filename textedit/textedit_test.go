package textedit

import "testing"

func TestPasteAndBackspace(t *testing.T) {
	buf := NewRuneBuffer("hi")
	s := State{Cursor: 2, SelectStart: 2, SelectEnd: 2}

	if !s.Paste(buf, []rune(" there")) {
		t.Fatal("Paste returned false")
	}
	if got := buf.String(); got != "hi there" {
		t.Fatalf("after paste buffer = %q, want %q", got, "hi there")
	}
	if s.Cursor != 8 {
		t.Errorf("cursor = %d, want 8", s.Cursor)
	}

	if !s.Key(buf, KeyBackspace, false) {
		t.Fatal("Backspace reported no edit")
	}
	if got := buf.String(); got != "hi ther" {
		t.Errorf("after backspace buffer = %q, want %q", got, "hi ther")
	}
	if s.Cursor != 7 {
		t.Errorf("cursor = %d, want 7", s.Cursor)
	}
}

func TestSelectionCut(t *testing.T) {
	buf := NewRuneBuffer("hello")
	s := State{Cursor: 1, SelectStart: 1, SelectEnd: 4}

	cut := s.Cut(buf)
	if string(cut) != "ell" {
		t.Errorf("cut = %q, want %q", string(cut), "ell")
	}
	if got := buf.String(); got != "ho" {
		t.Errorf("buffer = %q, want %q", got, "ho")
	}
	if s.Cursor != 1 || s.HasSelection() {
		t.Errorf("state = %+v, want cursor 1 with no selection", s)
	}
}

func TestCutWithoutSelection(t *testing.T) {
	buf := NewRuneBuffer("abc")
	s := State{Cursor: 1, SelectStart: 1, SelectEnd: 1}
	if cut := s.Cut(buf); cut != nil {
		t.Errorf("cut = %q, want nil", string(cut))
	}
	if buf.String() != "abc" {
		t.Errorf("buffer changed to %q", buf.String())
	}
}

func TestBackspaceDeletesSelection(t *testing.T) {
	for _, k := range []Key{KeyBackspace, KeyDelete} {
		buf := NewRuneBuffer("abcdef")
		s := State{Cursor: 4, SelectStart: 1, SelectEnd: 4}
		if !s.Key(buf, k, false) {
			t.Fatalf("key %d reported no edit", k)
		}
		if buf.String() != "aef" {
			t.Errorf("key %d: buffer = %q, want %q", k, buf.String(), "aef")
		}
		if s.Cursor != 1 || s.SelectStart != 1 || s.SelectEnd != 1 {
			t.Errorf("key %d: state = %+v, want collapsed at 1", k, s)
		}
	}
}

func TestShiftArrowExtendsSelection(t *testing.T) {
	buf := NewRuneBuffer("abcdef")
	s := State{Cursor: 2, SelectStart: 2, SelectEnd: 2}

	s.Key(buf, KeyRight, true)
	s.Key(buf, KeyRight, true)
	if s.SelectStart != 2 || s.SelectEnd != 4 || s.Cursor != 4 {
		t.Fatalf("after shift+right x2: %+v", s)
	}
	s.Key(buf, KeyLeft, true)
	if s.SelectStart != 2 || s.SelectEnd != 3 {
		t.Errorf("after shift+left: %+v", s)
	}
	s.Key(buf, KeyLeft, false)
	if s.HasSelection() || s.Cursor != 2 {
		t.Errorf("plain left should collapse at destination, got %+v", s)
	}
}

func TestCursorClamped(t *testing.T) {
	buf := NewRuneBuffer("ab")
	s := State{}
	s.Key(buf, KeyLeft, false)
	if s.Cursor != 0 {
		t.Errorf("left at start: cursor = %d", s.Cursor)
	}
	s.Click(buf, 99, false)
	if s.Cursor != 2 {
		t.Errorf("click past end: cursor = %d, want 2", s.Cursor)
	}
	s.Key(buf, KeyRight, false)
	if s.Cursor != 2 {
		t.Errorf("right at end: cursor = %d, want 2", s.Cursor)
	}
	if s.Key(buf, KeyDelete, false) {
		t.Error("delete at end reported an edit")
	}

	// The buffer shrinks behind the editor's back.
	s = State{Cursor: 5, SelectStart: 5, SelectEnd: 5}
	s.Key(buf, KeyBackspace, false)
	if buf.String() != "a" || s.Cursor != 1 {
		t.Errorf("backspace with stale cursor: buffer %q cursor %d", buf.String(), s.Cursor)
	}
}

func TestClickAndDrag(t *testing.T) {
	buf := NewRuneBuffer("hello world")
	var s State
	s.Click(buf, 2, false)
	s.Drag(buf, 7)
	lo, hi := s.Selection()
	if lo != 2 || hi != 7 {
		t.Errorf("selection = [%d,%d), want [2,7)", lo, hi)
	}
	if got := string(s.Copy(buf)); got != "llo w" {
		t.Errorf("copy = %q", got)
	}
	s.Click(buf, 9, true)
	if s.SelectStart != 2 || s.SelectEnd != 9 {
		t.Errorf("shift-click: %+v", s)
	}
}

func TestWordMovement(t *testing.T) {
	buf := NewRuneBuffer("foo bar_baz  qux")
	s := State{Cursor: 0}
	s.Key(buf, KeyWordRight, false)
	if s.Cursor != 4 {
		t.Errorf("word right = %d, want 4", s.Cursor)
	}
	s.Key(buf, KeyWordRight, false)
	if s.Cursor != 13 {
		t.Errorf("word right = %d, want 13", s.Cursor)
	}
	s.Key(buf, KeyWordLeft, false)
	if s.Cursor != 4 {
		t.Errorf("word left = %d, want 4", s.Cursor)
	}
	s.Key(buf, KeyTextEnd, false)
	s.Key(buf, KeyWordBackspace, false)
	if buf.String() != "foo bar_baz  " {
		t.Errorf("word backspace: %q", buf.String())
	}
}

func TestPasteReplacesSelection(t *testing.T) {
	buf := NewRuneBuffer("hello")
	var s State
	s.SelectAll(buf)
	s.Paste(buf, []rune("bye"))
	if buf.String() != "bye" || s.Cursor != 3 || s.HasSelection() {
		t.Errorf("buffer %q state %+v", buf.String(), s)
	}
}
