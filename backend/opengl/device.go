// Package opengl implements the bridge's Device interface over OpenGL
// 4.1 core. The GL context must be current on the calling thread for
// every method.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/willgale/imbridge"
)

// Device issues bridge GPU operations as OpenGL calls. One vertex array
// object carries the fixed vertex layout for all geometry.
type Device struct {
	vao      uint32
	projLocs map[imbridge.ProgramID]int32
}

// NewDevice creates the device's vertex array object. Call it after
// gl.Init with a current context.
func NewDevice() *Device {
	d := &Device{projLocs: make(map[imbridge.ProgramID]int32)}
	gl.GenVertexArrays(1, &d.vao)
	return d
}

// Destroy releases the vertex array object.
func (d *Device) Destroy() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

// CreateProgram compiles and links a shader program and resolves its
// uniforms. On failure it returns the compiler/linker info log as the
// error.
func (d *Device) CreateProgram(vertexSrc, fragmentSrc string) (imbridge.ProgramID, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &infoLog[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", infoLog)
	}

	id := imbridge.ProgramID(program)
	d.projLocs[id] = gl.GetUniformLocation(program, gl.Str("projection\x00"))

	// The sampler always reads texture unit 0.
	gl.UseProgram(program)
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("fontTexture\x00")), 0)
	gl.UseProgram(0)

	return id, nil
}

func compileShader(kind uint32, src string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &infoLog[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", infoLog)
	}
	return shader, nil
}

// UseProgram binds the program.
func (d *Device) UseProgram(p imbridge.ProgramID) {
	gl.UseProgram(uint32(p))
}

// SetProjection uploads the projection uniform. The program must be in
// use.
func (d *Device) SetProjection(p imbridge.ProgramID, matrix [16]float32) {
	if loc, ok := d.projLocs[p]; ok {
		gl.UniformMatrix4fv(loc, 1, false, &matrix[0])
	}
}

// DeleteProgram releases the program.
func (d *Device) DeleteProgram(p imbridge.ProgramID) {
	delete(d.projLocs, p)
	gl.DeleteProgram(uint32(p))
}

func bufferTarget(kind imbridge.BufferKind) uint32 {
	if kind == imbridge.IndexBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

// CreateBuffer generates a buffer object.
func (d *Device) CreateBuffer(kind imbridge.BufferKind) imbridge.BufferID {
	var id uint32
	gl.GenBuffers(1, &id)
	return imbridge.BufferID(id)
}

// AllocBuffer (re)allocates the buffer's backing store. The element
// array binding lives in VAO state, so the device's VAO is bound first.
func (d *Device) AllocBuffer(id imbridge.BufferID, kind imbridge.BufferKind, capacity int) {
	gl.BindVertexArray(d.vao)
	target := bufferTarget(kind)
	gl.BindBuffer(target, uint32(id))
	gl.BufferData(target, capacity, nil, gl.DYNAMIC_DRAW)
}

// UploadBuffer writes data into the buffer from offset zero.
func (d *Device) UploadBuffer(id imbridge.BufferID, kind imbridge.BufferKind, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BindVertexArray(d.vao)
	target := bufferTarget(kind)
	gl.BindBuffer(target, uint32(id))
	gl.BufferSubData(target, 0, len(data), gl.Ptr(data))
}

// BindGeometry makes the buffer pair current and points the vertex
// attributes at the packed layout.
func (d *Device) BindGeometry(vertex, index imbridge.BufferID) {
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(vertex))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(index))

	stride := int32(unsafe.Sizeof(imbridge.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(imbridge.Vertex{}.UV))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(imbridge.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)
}

// DeleteBuffer releases a buffer object.
func (d *Device) DeleteBuffer(id imbridge.BufferID) {
	v := uint32(id)
	gl.DeleteBuffers(1, &v)
}

// CreateTexture uploads an RGBA8 bitmap as a linearly filtered texture.
func (d *Device) CreateTexture(width, height int, rgba []byte) imbridge.TextureID {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return imbridge.TextureID(tex)
}

// BindTexture binds the texture to unit 0.
func (d *Device) BindTexture(id imbridge.TextureID) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(id))
}

// DeleteTexture releases a texture object.
func (d *Device) DeleteTexture(id imbridge.TextureID) {
	v := uint32(id)
	gl.DeleteTextures(1, &v)
}

// CaptureState reads back the ambient pipeline state the renderer will
// touch.
func (d *Device) CaptureState() imbridge.PipelineState {
	var s imbridge.PipelineState
	gl.GetIntegerv(gl.VIEWPORT, &s.Viewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.Scissor[0])

	var blendSrc, blendDst int32
	gl.GetIntegerv(gl.BLEND_SRC_RGB, &blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_RGB, &blendDst)
	s.BlendSrc = blendFactorFromGL(uint32(blendSrc))
	s.BlendDst = blendFactorFromGL(uint32(blendDst))

	var modes [2]int32
	gl.GetIntegerv(gl.POLYGON_MODE, &modes[0])
	s.PolygonMode = polygonModeFromGL(uint32(modes[0]))

	s.Blend = gl.IsEnabled(gl.BLEND)
	s.CullFace = gl.IsEnabled(gl.CULL_FACE)
	s.DepthTest = gl.IsEnabled(gl.DEPTH_TEST)
	s.ScissorTest = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

// RestoreState reapplies a captured state: capability flags first, then
// polygon mode and blend function, then the viewport and scissor rects.
func (d *Device) RestoreState(s imbridge.PipelineState) {
	setCapability(gl.BLEND, s.Blend)
	setCapability(gl.CULL_FACE, s.CullFace)
	setCapability(gl.DEPTH_TEST, s.DepthTest)
	setCapability(gl.SCISSOR_TEST, s.ScissorTest)
	gl.PolygonMode(gl.FRONT_AND_BACK, polygonModeToGL(s.PolygonMode))
	gl.BlendFunc(blendFactorToGL(s.BlendSrc), blendFactorToGL(s.BlendDst))
	gl.Viewport(s.Viewport[0], s.Viewport[1], s.Viewport[2], s.Viewport[3])
	gl.Scissor(s.Scissor[0], s.Scissor[1], s.Scissor[2], s.Scissor[3])
}

func setCapability(cap uint32, enabled bool) {
	if enabled {
		gl.Enable(cap)
	} else {
		gl.Disable(cap)
	}
}

func capabilityToGL(c imbridge.Capability) uint32 {
	switch c {
	case imbridge.CapBlend:
		return gl.BLEND
	case imbridge.CapCullFace:
		return gl.CULL_FACE
	case imbridge.CapDepthTest:
		return gl.DEPTH_TEST
	case imbridge.CapScissorTest:
		return gl.SCISSOR_TEST
	}
	return gl.BLEND
}

// Enable turns a capability on.
func (d *Device) Enable(c imbridge.Capability) {
	gl.Enable(capabilityToGL(c))
}

// Disable turns a capability off.
func (d *Device) Disable(c imbridge.Capability) {
	gl.Disable(capabilityToGL(c))
}

// BlendFunc sets the blend factors.
func (d *Device) BlendFunc(src, dst imbridge.BlendFactor) {
	gl.BlendFunc(blendFactorToGL(src), blendFactorToGL(dst))
}

// SetPolygonMode sets the polygon rasterization mode for both faces.
func (d *Device) SetPolygonMode(m imbridge.PolygonMode) {
	gl.PolygonMode(gl.FRONT_AND_BACK, polygonModeToGL(m))
}

// Viewport sets the viewport rect.
func (d *Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// Scissor sets the scissor rect.
func (d *Device) Scissor(x, y, width, height int32) {
	gl.Scissor(x, y, width, height)
}

// DrawIndexed draws elemCount 16-bit indices starting at the given byte
// offset into the bound index buffer.
func (d *Device) DrawIndexed(elemCount, indexByteOffset int) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(elemCount), gl.UNSIGNED_SHORT, uintptr(indexByteOffset))
}

var blendFactorGL = [...]uint32{
	imbridge.BlendZero:                  gl.ZERO,
	imbridge.BlendOne:                   gl.ONE,
	imbridge.BlendSrcColor:              gl.SRC_COLOR,
	imbridge.BlendOneMinusSrcColor:      gl.ONE_MINUS_SRC_COLOR,
	imbridge.BlendDstColor:              gl.DST_COLOR,
	imbridge.BlendOneMinusDstColor:      gl.ONE_MINUS_DST_COLOR,
	imbridge.BlendSrcAlpha:              gl.SRC_ALPHA,
	imbridge.BlendOneMinusSrcAlpha:      gl.ONE_MINUS_SRC_ALPHA,
	imbridge.BlendDstAlpha:              gl.DST_ALPHA,
	imbridge.BlendOneMinusDstAlpha:      gl.ONE_MINUS_DST_ALPHA,
	imbridge.BlendConstantColor:         gl.CONSTANT_COLOR,
	imbridge.BlendOneMinusConstantColor: gl.ONE_MINUS_CONSTANT_COLOR,
	imbridge.BlendConstantAlpha:         gl.CONSTANT_ALPHA,
	imbridge.BlendOneMinusConstantAlpha: gl.ONE_MINUS_CONSTANT_ALPHA,
}

func blendFactorToGL(f imbridge.BlendFactor) uint32 {
	if int(f) >= 0 && int(f) < len(blendFactorGL) {
		return blendFactorGL[f]
	}
	return gl.ONE
}

func blendFactorFromGL(v uint32) imbridge.BlendFactor {
	for f, glv := range blendFactorGL {
		if glv == v {
			return imbridge.BlendFactor(f)
		}
	}
	return imbridge.BlendOne
}

func polygonModeToGL(m imbridge.PolygonMode) uint32 {
	switch m {
	case imbridge.PolygonLine:
		return gl.LINE
	case imbridge.PolygonPoint:
		return gl.POINT
	default:
		return gl.FILL
	}
}

func polygonModeFromGL(v uint32) imbridge.PolygonMode {
	switch v {
	case gl.LINE:
		return imbridge.PolygonLine
	case gl.POINT:
		return imbridge.PolygonPoint
	default:
		return imbridge.PolygonFill
	}
}
