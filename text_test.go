package imcore

import (
	"reflect"
	"strings"
	"testing"
)

// Without a font every column is Style.CharWidth (7) wide and CJK runes
// take two columns.
func TestWrapText(t *testing.T) {
	ctx := NewContext(WithLogger(quietLogger()))
	tests := []struct {
		name  string
		text  string
		width float32
		mode  TextWrapMode
		want  []string
	}{
		{"words", "hello world foo", 80, WrapModeWord, []string{"hello world", "foo"}},
		{"long word kept whole", "abcdefghijkl", 28, WrapModeWord, []string{"abcdefghijkl"}},
		{"chars", "abcdef", 21, WrapModeChar, []string{"abc", "def"}},
		{"auto picks chars for CJK", "界界界", 28, WrapModeAuto, []string{"界界", "界"}},
		{"auto picks words for Latin", "ab cd", 21, WrapModeAuto, []string{"ab", "cd"}},
		{"newlines always break", "a\n\nb", 100, WrapModeWord, []string{"a", "", "b"}},
		{"no width splits lines only", "one two\nthree", 0, WrapModeWord, []string{"one two", "three"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ctx.WrapText(tt.text, tt.width, tt.mode)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapText(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestMeasureWrappedText(t *testing.T) {
	ctx := NewContext(WithLogger(quietLogger()))
	got := ctx.MeasureWrappedText("hello world foo", 80, WrapModeWord)
	if got != (Vec2{77, 26}) {
		t.Errorf("MeasureWrappedText = %v, want {77 26}", got)
	}
}

func TestTruncateText(t *testing.T) {
	ctx := NewContext(WithLogger(quietLogger()))
	tests := []struct {
		text   string
		width  float32
		suffix string
		want   string
	}{
		{"short", 100, "...", "short"},
		{"abcdefgh", 35, "...", "ab..."},
		{"abcdefgh", 10, "...", ""},
		{"abcdefgh", 21, "...", "..."},
	}
	for _, tt := range tests {
		if got := ctx.TruncateText(tt.text, tt.width, tt.suffix); got != tt.want {
			t.Errorf("TruncateText(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestTextWrappedWidget(t *testing.T) {
	h := newHarness(t)
	var r Rect
	h.frame(func(ctx *Context) {
		// Five 10-column words fit the 384px content width; the sixth wraps.
		ctx.TextWrapped(strings.Repeat("aaaaaaaaaa ", 6))
		r = ctx.ItemRect()
	})
	if r.H != 26 || r.W != 5*77-7 {
		t.Errorf("wrapped text should take two lines, rect=%+v", r)
	}
}
