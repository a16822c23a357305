package textedit

import "slices"

// RuneBuffer is a Buffer over a rune slice.
type RuneBuffer struct {
	runes []rune
}

// NewRuneBuffer returns a buffer holding s.
func NewRuneBuffer(s string) *RuneBuffer {
	return &RuneBuffer{runes: []rune(s)}
}

func (b *RuneBuffer) Len() int      { return len(b.runes) }
func (b *RuneBuffer) At(i int) rune { return b.runes[i] }

// Insert panics when at is outside [0, Len].
func (b *RuneBuffer) Insert(at int, text []rune) {
	if at < 0 || at > len(b.runes) {
		panic("textedit: insert position out of range")
	}
	b.runes = slices.Insert(b.runes, at, text...)
}

// Delete removes up to n runes starting at at.
func (b *RuneBuffer) Delete(at, n int) {
	if n <= 0 {
		return
	}
	if at < 0 || at > len(b.runes) {
		panic("textedit: delete position out of range")
	}
	n = min(n, len(b.runes)-at)
	b.runes = slices.Delete(b.runes, at, at+n)
}

// Set replaces the contents.
func (b *RuneBuffer) Set(s string) {
	b.runes = append(b.runes[:0], []rune(s)...)
}

func (b *RuneBuffer) String() string { return string(b.runes) }
