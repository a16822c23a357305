package imcore

import (
	"math"
	"sync"
)

// TextureID is an opaque renderer texture handle. Zero means untextured.
type TextureID uint32

// Vertex is a single vertex for GUI rendering.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd is one contiguous run of triangles sharing a clip rect and texture.
// A command with a non-nil Text carries a text run instead of triangles.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    TextureID  // 0 = no texture
	VertexOffset uint32     // Added to every index of this command
	IndexOffset  uint32     // First index in IdxBuffer
	Text         *TextRun   // Fallback text, rendered by the backend
}

// TextRun is text the core could not turn into glyph quads because no font
// atlas is available. Renderers draw it with whatever fallback they have.
type TextRun struct {
	Pos   Vec2
	Text  string
	Color uint32
	Size  float32 // Line height in pixels
}

// maxVerticesPerCmd is the 16-bit index limit relative to VertexOffset.
const maxVerticesPerCmd = 1 << 16

// drawListPool provides efficient reuse of DrawList buffers.
// Windows evicted from a context return their list here.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for one surface during a frame.
// Consecutive primitives sharing clip rect and texture fold into one command.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data, relative to the command's VertexOffset

	// Owner is a debug name (window name) used by inspectors.
	Owner string

	clipStack    [][4]float32
	currentClip  [4]float32
	textureStack []TextureID
	textureID    TextureID
}

// NewDrawList creates an empty DrawList.
func NewDrawList() *DrawList {
	dl := &DrawList{}
	dl.Clear()
	return dl
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.textureStack = dl.textureStack[:0]
	dl.currentClip = infiniteRect.ClipRect()
	dl.textureID = 0
}

// Empty reports whether nothing was drawn.
func (dl *DrawList) Empty() bool {
	for i := range dl.CmdBuffer {
		if dl.CmdBuffer[i].ElemCount > 0 || dl.CmdBuffer[i].Text != nil {
			return false
		}
	}
	return true
}

// PushClipRect pushes a new clip rectangle onto the stack.
// With intersect set, the rectangle is first clipped to the current one.
func (dl *DrawList) PushClipRect(r Rect, intersect bool) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	if intersect {
		r = r.Intersect(dl.ClipRectCurrent())
	}
	dl.currentClip = r.ClipRect()
}

// PushClipRectFullScreen pushes an unrestricted clip rectangle.
func (dl *DrawList) PushClipRectFullScreen() {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = infiniteRect.ClipRect()
}

// PopClipRect restores the clip rectangle saved by the matching push.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		panic(usageErrorf("PopClipRect", "clip stack underflow; every PopClipRect needs a matching PushClipRect"))
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
}

// ClipRectCurrent returns the active clip rectangle.
func (dl *DrawList) ClipRectCurrent() Rect {
	c := dl.currentClip
	return Rect{X: c[0], Y: c[1], W: c[2] - c[0], H: c[3] - c[1]}
}

// PushTexture binds a texture for subsequent primitives.
func (dl *DrawList) PushTexture(tex TextureID) {
	dl.textureStack = append(dl.textureStack, dl.textureID)
	dl.textureID = tex
}

// PopTexture restores the previous texture binding.
func (dl *DrawList) PopTexture() {
	n := len(dl.textureStack)
	if n == 0 {
		panic(usageErrorf("PopTexture", "texture stack underflow"))
	}
	dl.textureID = dl.textureStack[n-1]
	dl.textureStack = dl.textureStack[:n-1]
}

// reserve makes sure the last command accepts vtxCount more vertices under
// the current clip rect and texture, opening a new command otherwise.
// It returns the index of the first new vertex relative to the command.
func (dl *DrawList) reserve(vtxCount int) uint16 {
	if n := len(dl.CmdBuffer); n > 0 {
		cmd := &dl.CmdBuffer[n-1]
		if cmd.Text == nil && cmd.ClipRect == dl.currentClip && cmd.TextureID == dl.textureID &&
			len(dl.VtxBuffer)-int(cmd.VertexOffset)+vtxCount <= maxVerticesPerCmd {
			return uint16(len(dl.VtxBuffer) - int(cmd.VertexOffset))
		}
		if cmd.Text == nil && cmd.ElemCount == 0 {
			// Nothing was drawn with the stale state, reuse the slot.
			cmd.ClipRect = dl.currentClip
			cmd.TextureID = dl.textureID
			cmd.VertexOffset = uint32(len(dl.VtxBuffer))
			cmd.IndexOffset = uint32(len(dl.IdxBuffer))
			return 0
		}
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	return 0
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
	dl.CmdBuffer[len(dl.CmdBuffer)-1].ElemCount += uint32(len(indices))
}

func (dl *DrawList) addQuad(a, b, c, d Vertex) {
	idx := dl.reserve(4)
	dl.VtxBuffer = append(dl.VtxBuffer, a, b, c, d)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

func transparent(color uint32) bool {
	return color&0xFF000000 == 0
}

// AddRectFilled draws a filled rectangle as two triangles.
func (dl *DrawList) AddRectFilled(x, y, w, h float32, color uint32) {
	if transparent(color) || w <= 0 || h <= 0 {
		return
	}
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRect draws a rectangle outline.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32, thickness float32) {
	if transparent(color) {
		return
	}
	if thickness*2 >= w || thickness*2 >= h {
		dl.AddRectFilled(x, y, w, h, color)
		return
	}
	dl.AddRectFilled(x, y, w, thickness, color)
	dl.AddRectFilled(x, y+h-thickness, w, thickness, color)
	dl.AddRectFilled(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRectFilled(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line between two points as a thin quad.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if transparent(color) {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1)
	if l := float32(math.Sqrt(float64(dx*dx + dy*dy))); l > 0 {
		inv = 1 / l
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5
	dl.addQuad(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
}

// AddTriangleFilled draws a filled triangle.
func (dl *DrawList) AddTriangleFilled(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if transparent(color) {
		return
	}
	idx := dl.reserve(3)
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2)
}

// AddCircleFilled draws a filled circle as a triangle fan.
func (dl *DrawList) AddCircleFilled(cx, cy, radius float32, color uint32, segments int) {
	if transparent(color) || radius <= 0 {
		return
	}
	if segments < 3 {
		segments = clampi(int(radius), 8, 32)
	}
	segments = min(segments, maxVerticesPerCmd-1)
	idx := dl.reserve(segments + 1)
	dl.VtxBuffer = append(dl.VtxBuffer, Vertex{Pos: [2]float32{cx, cy}, Color: color})
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		dl.VtxBuffer = append(dl.VtxBuffer, Vertex{
			Pos:   [2]float32{cx + radius*float32(math.Cos(a)), cy + radius*float32(math.Sin(a))},
			Color: color,
		})
	}
	for i := 0; i < segments; i++ {
		next := (i+1)%segments + 1
		dl.addIndices(idx, idx+uint16(i)+1, idx+uint16(next))
	}
}

// AddImage draws a textured rectangle.
func (dl *DrawList) AddImage(tex TextureID, x, y, w, h float32, uv0, uv1 Vec2, color uint32) {
	if transparent(color) {
		return
	}
	dl.PushTexture(tex)
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, TexCoord: [2]float32{uv0.X, uv0.Y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, TexCoord: [2]float32{uv1.X, uv0.Y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, TexCoord: [2]float32{uv1.X, uv1.Y}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, TexCoord: [2]float32{uv0.X, uv1.Y}, Color: color},
	)
	dl.PopTexture()
}

// GlyphQuad represents a single character's rendering quad.
type GlyphQuad struct {
	X0, Y0 float32 // Screen coordinates (top-left)
	X1, Y1 float32 // Screen coordinates (bottom-right)
	U0, V0 float32 // Texture coordinates (top-left)
	U1, V1 float32 // Texture coordinates (bottom-right)
}

// AddGlyphQuads draws glyph quads sampled from the given atlas texture.
func (dl *DrawList) AddGlyphQuads(tex TextureID, quads []GlyphQuad, color uint32) {
	if transparent(color) || len(quads) == 0 {
		return
	}
	dl.PushTexture(tex)
	for _, q := range quads {
		dl.addQuad(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
		)
	}
	dl.PopTexture()
}

// AddText draws text at (x, y). With a font the text becomes glyph quads;
// without one it is recorded as a TextRun for the renderer's fallback.
func (dl *DrawList) AddText(font Font, size, x, y float32, text string, color uint32) {
	if transparent(color) || len(text) == 0 {
		return
	}
	if font != nil {
		dl.AddGlyphQuads(font.TextureID(), font.GlyphQuads(text, x, y, size), color)
		return
	}
	dl.AddTextRun(TextRun{Pos: Vec2{x, y}, Text: text, Color: color, Size: size})
}

// AddTextRun records a text run command under the current clip rect.
// Following geometry always starts a new command.
func (dl *DrawList) AddTextRun(run TextRun) {
	if transparent(run.Color) || len(run.Text) == 0 {
		return
	}
	r := run
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
		Text:         &r,
	})
}

// Finalize drops commands that ended up empty. Called by Render.
func (dl *DrawList) Finalize() {
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 || cmd.Text != nil {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
