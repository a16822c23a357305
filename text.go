package imcore

import (
	"strings"
	"unicode"
)

// TextWrapMode specifies how text is broken into lines.
type TextWrapMode int

const (
	WrapModeWord TextWrapMode = iota // Break at spaces
	WrapModeChar                     // Break anywhere (CJK, dense text)
	WrapModeAuto                     // Per script: words for Latin, characters for CJK
)

// WrapText splits text into lines no wider than maxWidth. Explicit newlines
// always break.
func (ctx *Context) WrapText(text string, maxWidth float32, mode TextWrapMode) []string {
	if maxWidth <= 0 {
		return strings.Split(text, "\n")
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		m := mode
		if m == WrapModeAuto {
			m = WrapModeWord
			if containsCJK(para) {
				m = WrapModeChar
			}
		}
		var wrapped []string
		if m == WrapModeChar {
			wrapped = ctx.wrapByChar(para, maxWidth)
		} else {
			wrapped = ctx.wrapByWord(para, maxWidth)
		}
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

func (ctx *Context) wrapByWord(text string, maxWidth float32) []string {
	words := strings.Fields(text)
	var lines []string
	var line string
	for _, word := range words {
		test := word
		if line != "" {
			test = line + " " + word
		}
		if ctx.CalcTextSize(test).X > maxWidth && line != "" {
			lines = append(lines, line)
			line = word
		} else {
			line = test
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func (ctx *Context) wrapByChar(text string, maxWidth float32) []string {
	var lines []string
	var line []rune
	for _, r := range text {
		test := append(line, r)
		if ctx.CalcTextSize(string(test)).X > maxWidth && len(line) > 0 {
			lines = append(lines, string(line))
			line = []rune{r}
		} else {
			line = test
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}

func containsCJK(text string) bool {
	for _, r := range text {
		if isCJKRune(r) {
			return true
		}
	}
	return false
}

func isCJKRune(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r)
}

// MeasureWrappedText returns the size of text wrapped to maxWidth.
func (ctx *Context) MeasureWrappedText(text string, maxWidth float32, mode TextWrapMode) Vec2 {
	lines := ctx.WrapText(text, maxWidth, mode)
	var size Vec2
	for _, line := range lines {
		size.X = maxf(size.X, ctx.CalcTextSize(line).X)
	}
	size.Y = float32(len(lines)) * ctx.TextLineHeight()
	return size
}

// TruncateText shortens text to fit maxWidth, ending it with suffix.
// It returns "" when not even the suffix fits.
func (ctx *Context) TruncateText(text string, maxWidth float32, suffix string) string {
	if ctx.CalcTextSize(text).X <= maxWidth {
		return text
	}
	target := maxWidth - ctx.CalcTextSize(suffix).X
	if target < 0 {
		return ""
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if ctx.CalcTextSize(string(runes)).X <= target {
			return string(runes) + suffix
		}
	}
	return suffix
}
