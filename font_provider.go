package imcore

// FontProvider abstracts font loading and selection. The core does not
// depend on a concrete font implementation; see package font for one built
// on golang.org/x/image.
type FontProvider interface {
	// ActiveFont returns the currently active font, or nil if none is loaded.
	ActiveFont() Font

	// SetActiveFont selects a font by name.
	SetActiveFont(name string) error
}

// Font is an opaque glyph-metrics provider backed by a texture atlas.
type Font interface {
	// TextureID returns the atlas texture bound when drawing glyph quads.
	TextureID() TextureID

	// HasGlyph returns true if the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// MeasureText returns the pixel extent of text rendered at size.
	MeasureText(text string, size float32) Vec2

	// GlyphQuads lays text out with its top-left at (x, y).
	// The returned slice should be used immediately and not stored.
	GlyphQuads(text string, x, y, size float32) []GlyphQuad

	// LineHeight returns the line advance at size.
	LineHeight(size float32) float32
}
