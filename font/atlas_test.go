package font

import (
	"testing"

	"github.com/go-theft-auto/imcore"
)

func TestDefaultAtlas(t *testing.T) {
	a, err := Default(16)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if a.SizePx != 16 {
		t.Errorf("SizePx = %v, want 16", a.SizePx)
	}
	if !a.HasGlyph('A') || !a.HasGlyph(' ') {
		t.Error("expected glyphs for 'A' and ' '")
	}
	if a.HasGlyph('日') {
		t.Error("CJK glyph should not be in the Latin-1 atlas")
	}
	if a.Height <= 0 || a.Ascent <= 0 {
		t.Errorf("bad metrics: height=%v ascent=%v", a.Height, a.Ascent)
	}
	b := a.Pixels.Bounds()
	if b.Dx() != b.Dy() || b.Dx() > maxAtlasSize {
		t.Errorf("atlas bounds = %v", b)
	}
}

func TestMeasureTextScales(t *testing.T) {
	a, err := Default(16)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	s16 := a.MeasureText("Hello", 16)
	s32 := a.MeasureText("Hello", 32)
	if s16.X <= 0 {
		t.Fatalf("width = %v, want > 0", s16.X)
	}
	if s32.X != s16.X*2 {
		t.Errorf("width at 32 = %v, want %v", s32.X, s16.X*2)
	}
	if got := a.MeasureText("a\nb", 16).Y; got != 2*a.LineHeight(16) {
		t.Errorf("two-line height = %v, want %v", got, 2*a.LineHeight(16))
	}
	if got := a.MeasureText("", 16).X; got != 0 {
		t.Errorf("empty width = %v", got)
	}
}

func TestGlyphQuads(t *testing.T) {
	a, err := Default(16)
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	quads := a.GlyphQuads("a b", 10, 20, 16)
	// The space has no bitmap.
	if len(quads) != 2 {
		t.Fatalf("len(quads) = %d, want 2", len(quads))
	}
	if quads[0].X0 < 10 || quads[1].X0 <= quads[0].X0 {
		t.Errorf("quads not advancing: %+v", quads)
	}
	for _, q := range quads {
		if q.U1 <= q.U0 || q.V1 <= q.V0 {
			t.Errorf("empty uv rect: %+v", q)
		}
		if q.Y0 < 20 {
			t.Errorf("glyph above the line top: %+v", q)
		}
	}
}

func TestManager(t *testing.T) {
	m, err := NewDefaultManager(14)
	if err != nil {
		t.Fatalf("NewDefaultManager: %v", err)
	}
	var _ imcore.FontProvider = m
	if m.ActiveFont() == nil || m.ActiveName() != "default" {
		t.Fatalf("active = %q", m.ActiveName())
	}
	big, err := Default(24)
	if err != nil {
		t.Fatal(err)
	}
	m.Add("big", big)
	if m.ActiveName() != "default" {
		t.Error("Add should not change the active font")
	}
	if err := m.SetActiveFont("big"); err != nil {
		t.Fatalf("SetActiveFont: %v", err)
	}
	if m.ActiveFont() != imcore.Font(big) {
		t.Error("active font not switched")
	}
	if err := m.SetActiveFont("missing"); err == nil {
		t.Error("expected error for unknown font")
	}
	if got := m.Names(); len(got) != 2 || got[0] != "big" {
		t.Errorf("Names = %v", got)
	}
}

func TestNewAtlasErrors(t *testing.T) {
	if _, err := NewAtlas([]byte("not a font"), DefaultOptions()); err == nil {
		t.Error("expected parse error")
	}
	opts := DefaultOptions()
	opts.SizePx = 0
	if _, err := NewAtlas(nil, opts); err == nil {
		t.Error("expected size error")
	}
	if _, err := LoadFile("/nonexistent/font.ttf", DefaultOptions()); err == nil {
		t.Error("expected read error")
	}
}
