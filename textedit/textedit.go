// Package textedit is a single-line text editing state machine over an
// abstract rune buffer. It tracks a cursor and a selection; it knows
// nothing about rendering, fonts or input devices.
//
// Positions are rune indices in [0, Len]. SelectStart is the anchor and
// SelectEnd follows the cursor; equal values mean no selection.
package textedit

import "unicode"

// Buffer is the mutable text an editor operates on.
type Buffer interface {
	Len() int
	At(i int) rune
	Insert(at int, text []rune)
	Delete(at, n int)
}

// Key is an editing key.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyWordLeft
	KeyWordRight
	KeyLineStart
	KeyLineEnd
	KeyTextStart
	KeyTextEnd
	KeyBackspace
	KeyDelete
	KeyWordBackspace
	KeyWordDelete
)

// State is the cursor and selection of one edited buffer.
type State struct {
	Cursor      int
	SelectStart int
	SelectEnd   int
}

// HasSelection reports whether a non-empty range is selected.
func (s *State) HasSelection() bool {
	return s.SelectStart != s.SelectEnd
}

// Selection returns the selected range ordered low to high.
func (s *State) Selection() (lo, hi int) {
	if s.SelectStart < s.SelectEnd {
		return s.SelectStart, s.SelectEnd
	}
	return s.SelectEnd, s.SelectStart
}

// Clamp forces every position into [0, buf.Len()]. Call it after the
// buffer was changed behind the editor's back.
func (s *State) Clamp(buf Buffer) {
	n := buf.Len()
	s.Cursor = clamp(s.Cursor, 0, n)
	s.SelectStart = clamp(s.SelectStart, 0, n)
	s.SelectEnd = clamp(s.SelectEnd, 0, n)
}

func (s *State) collapse(at int) {
	s.Cursor = at
	s.SelectStart = at
	s.SelectEnd = at
}

// Click places the cursor at pos. With extend the anchor stays put and the
// selection grows to pos.
func (s *State) Click(buf Buffer, pos int, extend bool) {
	pos = clamp(pos, 0, buf.Len())
	if extend {
		if !s.HasSelection() {
			s.SelectStart = s.Cursor
		}
		s.SelectEnd = pos
		s.Cursor = pos
		return
	}
	s.collapse(pos)
}

// Drag moves the cursor and the selection end to pos, keeping the anchor.
func (s *State) Drag(buf Buffer, pos int) {
	pos = clamp(pos, 0, buf.Len())
	s.Cursor = pos
	s.SelectEnd = pos
}

// SelectAll selects the whole buffer with the cursor at the end.
func (s *State) SelectAll(buf Buffer) {
	s.SelectStart = 0
	s.SelectEnd = buf.Len()
	s.Cursor = s.SelectEnd
}

// Key applies an editing key. shift extends the selection for movement
// keys. It returns true when the buffer changed.
func (s *State) Key(buf Buffer, k Key, shift bool) (edited bool) {
	s.Clamp(buf)
	switch k {
	case KeyLeft:
		s.moveTo(s.Cursor-1, shift)
	case KeyRight:
		s.moveTo(min(s.Cursor+1, buf.Len()), shift)
	case KeyWordLeft:
		s.moveTo(wordStart(buf, s.Cursor), shift)
	case KeyWordRight:
		s.moveTo(wordEnd(buf, s.Cursor), shift)
	case KeyLineStart, KeyTextStart:
		s.moveTo(0, shift)
	case KeyLineEnd, KeyTextEnd:
		s.moveTo(buf.Len(), shift)
	case KeyBackspace, KeyWordBackspace:
		if s.HasSelection() {
			return s.DeleteSelection(buf)
		}
		from := s.Cursor - 1
		if k == KeyWordBackspace {
			from = wordStart(buf, s.Cursor)
		}
		if s.Cursor == 0 || from < 0 {
			return false
		}
		buf.Delete(from, s.Cursor-from)
		s.collapse(from)
		return true
	case KeyDelete, KeyWordDelete:
		if s.HasSelection() {
			return s.DeleteSelection(buf)
		}
		if s.Cursor >= buf.Len() {
			return false
		}
		to := s.Cursor + 1
		if k == KeyWordDelete {
			to = wordEnd(buf, s.Cursor)
		}
		buf.Delete(s.Cursor, to-s.Cursor)
		s.collapse(s.Cursor)
		return true
	}
	return false
}

func (s *State) moveTo(pos int, extend bool) {
	pos = max(pos, 0)
	if extend {
		if !s.HasSelection() {
			s.SelectStart = s.Cursor
		}
		s.Cursor = pos
		s.SelectEnd = pos
		return
	}
	s.collapse(pos)
}

// DeleteSelection removes the selected range and collapses onto its start.
func (s *State) DeleteSelection(buf Buffer) bool {
	if !s.HasSelection() {
		return false
	}
	s.Clamp(buf)
	lo, hi := s.Selection()
	buf.Delete(lo, hi-lo)
	s.collapse(lo)
	return true
}

// Paste replaces the selection with text and leaves the cursor after it.
func (s *State) Paste(buf Buffer, text []rune) bool {
	deleted := s.DeleteSelection(buf)
	if len(text) == 0 {
		return deleted
	}
	s.Clamp(buf)
	buf.Insert(s.Cursor, text)
	s.collapse(s.Cursor + len(text))
	return true
}

// Copy returns the selected text.
func (s *State) Copy(buf Buffer) []rune {
	if !s.HasSelection() {
		return nil
	}
	s.Clamp(buf)
	lo, hi := s.Selection()
	out := make([]rune, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, buf.At(i))
	}
	return out
}

// Cut returns the selected text and removes it from buf.
func (s *State) Cut(buf Buffer) []rune {
	out := s.Copy(buf)
	if out != nil {
		s.DeleteSelection(buf)
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// wordStart skips separators then word runes to the left of pos.
func wordStart(buf Buffer, pos int) int {
	for pos > 0 && !isWordRune(buf.At(pos-1)) {
		pos--
	}
	for pos > 0 && isWordRune(buf.At(pos-1)) {
		pos--
	}
	return pos
}

// wordEnd skips word runes then separators to the right of pos.
func wordEnd(buf Buffer, pos int) int {
	n := buf.Len()
	for pos < n && isWordRune(buf.At(pos)) {
		pos++
	}
	for pos < n && !isWordRune(buf.At(pos)) {
		pos++
	}
	return pos
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
