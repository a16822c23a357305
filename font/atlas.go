// Package font builds glyph atlases from OpenType fonts with
// golang.org/x/image and serves them to imcore as Font and FontProvider.
package font

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/go-theft-auto/imcore"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph is one rasterized rune. Metrics are in atlas pixels at Atlas.SizePx.
type Glyph struct {
	Advance  float32
	BearingX float32 // Pen to left edge
	BearingY float32 // Baseline to top edge
	W, H     int
	U0, V0   float32
	U1, V1   float32
}

// Atlas is a rasterized font at one pixel size. Drawing at other sizes
// scales the quads.
type Atlas struct {
	SizePx  float32
	Ascent  float32
	Descent float32 // Positive, below the baseline
	Height  float32 // Line advance
	Glyphs  map[rune]Glyph
	Kerning map[[2]rune]float32

	// Pixels is white with glyph coverage in alpha, ready for upload.
	Pixels *image.RGBA

	tex   imcore.TextureID
	quads []imcore.GlyphQuad
}

// Options control atlas building.
type Options struct {
	SizePx float32
	First  rune // First rune rasterized
	Last   rune // Last rune rasterized, inclusive
}

// DefaultOptions rasterizes Latin-1 at 16px.
func DefaultOptions() Options {
	return Options{SizePx: 16, First: 32, Last: 255}
}

const (
	atlasPadding = 2
	maxAtlasSize = 4096
)

// ErrAtlasTooLarge is returned when the glyphs do not fit a 4096px square.
var ErrAtlasTooLarge = errors.New("font: atlas too large")

// LoadFile parses the font at path and builds an atlas.
func LoadFile(path string, opts Options) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return NewAtlas(data, opts)
}

// Default builds an atlas from the Go Regular font.
func Default(sizePx float32) (*Atlas, error) {
	opts := DefaultOptions()
	opts.SizePx = sizePx
	return NewAtlas(goregular.TTF, opts)
}

// NewAtlas parses TrueType/OpenType data and rasterizes opts' rune range
// into a shelf-packed atlas.
func NewAtlas(data []byte, opts Options) (*Atlas, error) {
	if opts.SizePx <= 0 {
		return nil, fmt.Errorf("font: size must be positive, got %v", opts.SizePx)
	}
	if opts.Last < opts.First {
		return nil, fmt.Errorf("font: empty rune range %d..%d", opts.First, opts.Last)
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(opts.SizePx), DPI: 72, Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	a := &Atlas{
		SizePx:  opts.SizePx,
		Ascent:  float32(m.Ascent.Round()),
		Descent: float32(m.Descent.Round()),
		Height:  float32(m.Height.Round()),
		Glyphs:  make(map[rune]Glyph, int(opts.Last-opts.First)+1),
		Kerning: make(map[[2]rune]float32),
	}

	type measured struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	var glyphs []measured
	for r := opts.First; r <= opts.Last; r++ {
		if idx, _ := ft.GlyphIndex(nil, r); idx == 0 && r != ' ' {
			continue
		}
		b, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, measured{
			r:   r,
			w:   (b.Max.X - b.Min.X).Ceil(),
			h:   (b.Max.Y - b.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(b.Min.X.Floor()),
			by:  float32(-b.Min.Y.Floor()),
		})
	}

	// Shelf packing; grow the square until everything fits.
	size := 128
	var pos map[rune]image.Point
	for {
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		pos = make(map[rune]image.Point, len(glyphs))
		for _, g := range glyphs {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if x+g.w+atlasPadding > size {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if g.w+atlasPadding*2 > size || y+g.h+atlasPadding > size {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			rowH = max(rowH, g.h)
		}
		if fits {
			break
		}
		size *= 2
		if size > maxAtlasSize {
			return nil, ErrAtlasTooLarge
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	drawer := &xfont.Drawer{Dst: dst, Src: image.White, Face: face}
	inv := 1 / float32(size)
	for _, g := range glyphs {
		glyph := Glyph{Advance: g.adv, BearingX: g.bx, BearingY: g.by, W: g.w, H: g.h}
		if p, ok := pos[g.r]; ok {
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			glyph.U0, glyph.V0 = float32(p.X)*inv, float32(p.Y)*inv
			glyph.U1, glyph.V1 = float32(p.X+g.w)*inv, float32(p.Y+g.h)*inv
		}
		a.Glyphs[g.r] = glyph
	}
	for _, l := range glyphs {
		for _, r := range glyphs {
			if k := face.Kern(l.r, r.r); k != 0 {
				a.Kerning[[2]rune{l.r, r.r}] = float32(k.Round())
			}
		}
	}
	a.Pixels = dst
	return a, nil
}

// SetTextureID records the texture the renderer uploaded Pixels to.
func (a *Atlas) SetTextureID(id imcore.TextureID) { a.tex = id }

// TextureID returns the atlas texture.
func (a *Atlas) TextureID() imcore.TextureID { return a.tex }

// HasGlyph reports whether r was rasterized.
func (a *Atlas) HasGlyph(r rune) bool {
	_, ok := a.Glyphs[r]
	return ok
}

func (a *Atlas) glyph(r rune) (Glyph, bool) {
	if g, ok := a.Glyphs[r]; ok {
		return g, true
	}
	if g, ok := a.Glyphs['?']; ok {
		return g, true
	}
	return Glyph{}, false
}

// LineHeight returns the line advance at size.
func (a *Atlas) LineHeight(size float32) float32 {
	return a.Height * size / a.SizePx
}

// MeasureText returns the extent of text at size. Newlines start new lines.
func (a *Atlas) MeasureText(text string, size float32) imcore.Vec2 {
	scale := size / a.SizePx
	var width, line float32
	lines := 1
	prev := rune(-1)
	for _, r := range text {
		if r == '\n' {
			width = max(width, line)
			line = 0
			lines++
			prev = -1
			continue
		}
		g, ok := a.glyph(r)
		if !ok {
			continue
		}
		if prev >= 0 {
			line += a.Kerning[[2]rune{prev, r}]
		}
		line += g.Advance
		prev = r
	}
	width = max(width, line)
	return imcore.Vec2{X: width * scale, Y: float32(lines) * a.Height * scale}
}

// GlyphQuads lays text out with its top-left at (x, y). The returned slice
// is reused by the next call.
func (a *Atlas) GlyphQuads(text string, x, y, size float32) []imcore.GlyphQuad {
	scale := size / a.SizePx
	a.quads = a.quads[:0]
	penX := x
	baseline := y + a.Ascent*scale
	prev := rune(-1)
	for _, r := range text {
		if r == '\n' {
			penX = x
			baseline += a.Height * scale
			prev = -1
			continue
		}
		g, ok := a.glyph(r)
		if !ok {
			continue
		}
		if prev >= 0 {
			penX += a.Kerning[[2]rune{prev, r}] * scale
		}
		if g.W > 0 && g.H > 0 {
			x0 := penX + g.BearingX*scale
			y0 := baseline - g.BearingY*scale
			a.quads = append(a.quads, imcore.GlyphQuad{
				X0: x0, Y0: y0,
				X1: x0 + float32(g.W)*scale, Y1: y0 + float32(g.H)*scale,
				U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1,
			})
		}
		penX += g.Advance * scale
		prev = r
	}
	return a.quads
}
