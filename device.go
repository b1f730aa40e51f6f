package imbridge

// GPU object handles. Values are backend-defined; zero is never a live
// handle.
type (
	BufferID  uint32
	TextureID uint32
	ProgramID uint32
)

// BufferKind selects which of the two geometry buffers an operation
// targets.
type BufferKind int

const (
	VertexBuffer BufferKind = iota
	IndexBuffer
)

// Capability is a toggleable pipeline feature.
type Capability int

const (
	CapBlend Capability = iota
	CapCullFace
	CapDepthTest
	CapScissorTest
)

// BlendFactor enumerates the standard blend function factors.
type BlendFactor int

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendDstColor
	BlendOneMinusDstColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
	BlendConstantColor
	BlendOneMinusConstantColor
	BlendConstantAlpha
	BlendOneMinusConstantAlpha
)

// PolygonMode is the polygon rasterization mode.
type PolygonMode int

const (
	PolygonFill PolygonMode = iota
	PolygonLine
	PolygonPoint
)

// PipelineState is the ambient pipeline configuration the renderer
// mutates during a replay. It is captured before the first state change
// and restored verbatim before Render returns, so the application's own
// rendering never observes the bridge's settings.
type PipelineState struct {
	Viewport    [4]int32
	Scissor     [4]int32
	BlendSrc    BlendFactor
	BlendDst    BlendFactor
	PolygonMode PolygonMode
	Blend       bool
	CullFace    bool
	DepthTest   bool
	ScissorTest bool
}

// Device is the GPU driver boundary. backend/opengl implements it over
// OpenGL 4.1 core; tests implement it in memory.
//
// RestoreState must reapply every PipelineState field, capability flags
// first, then polygon mode and blend function, then viewport and
// scissor rects.
type Device interface {
	// Shader program lifecycle. CreateProgram compiles and links; on
	// failure it returns a zero handle and a diagnostic error.
	// SetProjection requires the program to be in use.
	CreateProgram(vertexSrc, fragmentSrc string) (ProgramID, error)
	UseProgram(p ProgramID)
	SetProjection(p ProgramID, matrix [16]float32)
	DeleteProgram(p ProgramID)

	// Geometry buffers. AllocBuffer sizes (or resizes) a buffer's
	// backing store; UploadBuffer writes data from offset zero and
	// requires a prior allocation of at least len(data) bytes.
	// BindGeometry makes the pair current with the fixed vertex layout
	// (2D position, 2D UV, normalized RGBA8 color, tightly packed).
	CreateBuffer(kind BufferKind) BufferID
	AllocBuffer(id BufferID, kind BufferKind, capacity int)
	UploadBuffer(id BufferID, kind BufferKind, data []byte)
	BindGeometry(vertex, index BufferID)
	DeleteBuffer(id BufferID)

	// Textures are RGBA8, len(rgba) == width*height*4.
	CreateTexture(width, height int, rgba []byte) TextureID
	BindTexture(id TextureID)
	DeleteTexture(id TextureID)

	// Ambient state.
	CaptureState() PipelineState
	RestoreState(s PipelineState)
	Enable(c Capability)
	Disable(c Capability)
	BlendFunc(src, dst BlendFactor)
	SetPolygonMode(m PolygonMode)
	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)

	// DrawIndexed issues an indexed triangle draw of elemCount 16-bit
	// indices starting indexByteOffset bytes into the bound index
	// buffer.
	DrawIndexed(elemCount, indexByteOffset int)
}
