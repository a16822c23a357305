// Package opengl renders imcore draw data with OpenGL 4.1 and feeds GLFW
// input into an imcore event queue.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/imcore"
	"github.com/go-theft-auto/imcore/font"
)

// Renderer implements imcore.Renderer.
type Renderer struct {
	shader       uint32
	vao, vbo     uint32
	ebo          uint32
	textVAO      uint32 // Fallback text geometry
	textVBO      uint32
	textEBO      uint32
	bitmapTex    uint32
	projLoc      int32
	texLoc       int32
	useTexLoc    int32
	isRGBATexLoc int32
	width        int
	height       int

	// Textures sampled as full color; the rest use the R channel as coverage.
	rgbaTextures map[uint32]bool

	textVtx []imcore.Vertex
	textIdx []uint16
}

var _ imcore.Renderer = (*Renderer)(nil)

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D tex;
uniform bool useTexture;
uniform bool isRGBATexture;

void main() {
    if (useTexture) {
        vec4 texColor = texture(tex, TexCoord);
        if (isRGBATexture) {
            FragColor = texColor * Color;
        } else {
            FragColor = vec4(Color.rgb, Color.a * texColor.r);
        }
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// NewRenderer compiles the shaders and creates the buffers. A current
// OpenGL 4.1 context is required.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:        width,
		height:       height,
		rgbaTextures: make(map[uint32]bool),
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))
	r.isRGBATexLoc = gl.GetUniformLocation(r.shader, gl.Str("isRGBATexture\x00"))

	r.vao, r.vbo, r.ebo = newVertexArray()
	r.textVAO, r.textVBO, r.textEBO = newVertexArray()
	r.bitmapTex = uploadTexture(gl.RED, bitmapTexW, bitmapTexH, bitmapPixels(), gl.NEAREST)
	return r, nil
}

func newVertexArray() (vao, vbo, ebo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)

	stride := int32(unsafe.Sizeof(imcore.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(imcore.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)
	// Color is packed RGBA8
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(imcore.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return vao, vbo, ebo
}

func uploadTexture(format uint32, w, h int, pixels []byte, filter int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), int32(w), int32(h), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// UploadAtlas uploads a font atlas and assigns its texture ID.
func (r *Renderer) UploadAtlas(a *font.Atlas) imcore.TextureID {
	b := a.Pixels.Bounds()
	tex := uploadTexture(gl.RGBA, b.Dx(), b.Dy(), a.Pixels.Pix, gl.LINEAR)
	r.rgbaTextures[tex] = true
	a.SetTextureID(imcore.TextureID(tex))
	return imcore.TextureID(tex)
}

// UploadFonts uploads every atlas registered with m.
func (r *Renderer) UploadFonts(m *font.Manager) {
	for _, name := range m.Names() {
		r.UploadAtlas(m.Atlas(name))
	}
}

// RegisterRGBATexture marks an application texture as full color.
func (r *Renderer) RegisterRGBATexture(tex imcore.TextureID) {
	r.rgbaTextures[uint32(tex)] = true
}

// DeleteTexture releases a texture created by UploadAtlas.
func (r *Renderer) DeleteTexture(tex imcore.TextureID) {
	id := uint32(tex)
	delete(r.rgbaTextures, id)
	gl.DeleteTextures(1, &id)
}

// Resize updates the framebuffer size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// RenderDrawData draws every list in dd, back to front.
func (r *Renderer) RenderDrawData(dd *imcore.DrawData) error {
	if dd == nil || !dd.Valid || len(dd.CmdLists) == 0 {
		return nil
	}
	if r.width <= 0 || r.height <= 0 {
		return nil
	}

	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	var lastScissorBox [4]int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled := gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled := gl.IsEnabled(gl.SCISSOR_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	pos, size := dd.DisplayPos, dd.DisplaySize
	proj := orthoMatrix(pos.X, pos.X+size.X, pos.Y+size.Y, pos.Y, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	scale := dd.FramebufferScale
	if scale.X == 0 || scale.Y == 0 {
		scale = imcore.Vec2{X: float32(r.width) / maxf(size.X, 1), Y: float32(r.height) / maxf(size.Y, 1)}
	}
	for _, dl := range dd.CmdLists {
		r.renderList(dl, pos, scale)
	}

	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))
	setEnabled(gl.BLEND, blendEnabled)
	setEnabled(gl.DEPTH_TEST, depthEnabled)
	setEnabled(gl.CULL_FACE, cullEnabled)
	setEnabled(gl.SCISSOR_TEST, scissorEnabled)
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])
	gl.BindVertexArray(0)
	return nil
}

func (r *Renderer) renderList(dl *imcore.DrawList, origin, scale imcore.Vec2) {
	if len(dl.VtxBuffer) > 0 {
		gl.BindVertexArray(r.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(imcore.Vertex{})),
			gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
			gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)
	}

	for i := range dl.CmdBuffer {
		cmd := &dl.CmdBuffer[i]
		if !r.scissor(cmd.ClipRect, origin, scale) {
			continue
		}
		if cmd.Text != nil {
			r.drawTextRun(*cmd.Text)
			gl.BindVertexArray(r.vao)
			continue
		}
		if cmd.ElemCount == 0 {
			continue
		}
		r.bindTexture(uint32(cmd.TextureID))
		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}
}

// scissor sets the GL scissor box from a clip rect in display coordinates.
// It returns false when the rect is empty on screen.
func (r *Renderer) scissor(clip [4]float32, origin, scale imcore.Vec2) bool {
	x0 := (clip[0] - origin.X) * scale.X
	y0 := (clip[1] - origin.Y) * scale.Y
	x1 := (clip[2] - origin.X) * scale.X
	y1 := (clip[3] - origin.Y) * scale.Y
	x0, y0 = maxf(x0, 0), maxf(y0, 0)
	x1, y1 = minf(x1, float32(r.width)), minf(y1, float32(r.height))
	if x1 <= x0 || y1 <= y0 {
		return false
	}
	// GL's origin is bottom-left.
	gl.Scissor(int32(x0), int32(float32(r.height)-y1), int32(x1-x0), int32(y1-y0))
	return true
}

func (r *Renderer) bindTexture(tex uint32) {
	if tex == 0 {
		gl.Uniform1i(r.useTexLoc, 0)
		gl.Uniform1i(r.isRGBATexLoc, 0)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform1i(r.useTexLoc, 1)
	if r.rgbaTextures[tex] {
		gl.Uniform1i(r.isRGBATexLoc, 1)
	} else {
		gl.Uniform1i(r.isRGBATexLoc, 0)
	}
}

func (r *Renderer) drawTextRun(run imcore.TextRun) {
	r.textVtx, r.textIdx = appendBitmapText(r.textVtx[:0], r.textIdx[:0], run)
	if len(r.textIdx) == 0 {
		return
	}
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textVtx)*int(unsafe.Sizeof(imcore.Vertex{})),
		gl.Ptr(r.textVtx), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.textEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(r.textIdx)*2, gl.Ptr(r.textIdx), gl.STREAM_DRAW)
	r.bindTexture(r.bitmapTex)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(r.textIdx)), gl.UNSIGNED_SHORT, 0)
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.bitmapTex != 0 {
		gl.DeleteTextures(1, &r.bitmapTex)
	}
	for _, b := range []*uint32{&r.ebo, &r.vbo, &r.textEBO, &r.textVBO} {
		if *b != 0 {
			gl.DeleteBuffers(1, b)
		}
	}
	for _, a := range []*uint32{&r.vao, &r.textVAO} {
		if *a != 0 {
			gl.DeleteVertexArrays(1, a)
		}
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	// Compile vertex shader
	vertexShader := gl.CreateShader(gl.VERTEX_SHADER)
	csource, free := gl.Strs(vertexSource)
	gl.ShaderSource(vertexShader, 1, csource, nil)
	free()
	gl.CompileShader(vertexShader)

	var status int32
	gl.GetShaderiv(vertexShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(vertexShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(vertexShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("vertex shader compilation failed: %s", string(log))
	}

	// Compile fragment shader
	fragmentShader := gl.CreateShader(gl.FRAGMENT_SHADER)
	csource, free = gl.Strs(fragmentSource)
	gl.ShaderSource(fragmentShader, 1, csource, nil)
	free()
	gl.CompileShader(fragmentShader)

	gl.GetShaderiv(fragmentShader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(fragmentShader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(fragmentShader, logLength, nil, &log[0])
		return 0, fmt.Errorf("fragment shader compilation failed: %s", string(log))
	}

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	// Cleanup shaders (they're linked into the program now)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
