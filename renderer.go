package imbridge

import (
	"errors"
	"log"
	"unsafe"

	"github.com/willgale/imbridge/fontatlas"
)

// Initial buffer capacities in bytes. Tuning parameters: big enough that
// small UIs never reallocate, small enough not to matter.
const (
	initialVertexBufferBytes = 10000
	initialIndexBufferBytes  = 2000
)

// ErrUnsupportedCallback is returned when a draw command carries a user
// callback. The renderer provides no callback mechanism, and skipping
// the command would produce silently wrong output.
var ErrUnsupportedCallback = errors.New("imbridge: draw command callbacks are not supported")

const (
	vertexShaderSource = `#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in vec4 aColor;

out vec2 UV;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    UV = aUV;
    Color = aColor;
}
`

	fragmentShaderSource = `#version 410 core
in vec2 UV;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D fontTexture;

void main() {
    FragColor = Color * texture(fontTexture, UV);
}
`
)

// gpuBuffer pairs a device buffer handle with its current byte capacity.
// Capacity only ever grows; reallocating per frame would defeat the
// amortization the buffers exist for.
type gpuBuffer struct {
	id       BufferID
	kind     BufferKind
	capacity int
}

func (b *gpuBuffer) ensure(dev Device, size int) {
	if size <= b.capacity {
		return
	}
	b.capacity = growCapacity(b.capacity, size)
	dev.AllocBuffer(b.id, b.kind, b.capacity)
}

// growCapacity returns max(1.5x current, required).
func growCapacity(current, required int) int {
	grown := current + current/2
	if grown < required {
		return required
	}
	return grown
}

// Renderer owns the bridge's GPU objects (vertex/index buffers, shader
// program, font texture) and replays finalized draw data through them.
type Renderer struct {
	dev      Device
	program  ProgramID
	vertices gpuBuffer
	indices  gpuBuffer

	fontTex    TextureID
	hasFontTex bool
	disposed   bool
}

// NewRenderer creates the GPU resources on dev. A shader compile or link
// failure is reported and leaves the renderer in a degraded state that
// draws garbage rather than failing construction; the host application
// may still need its window.
func NewRenderer(dev Device) *Renderer {
	r := &Renderer{dev: dev}

	program, err := dev.CreateProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		log.Printf("imbridge: shader program unavailable, rendering degraded: %v", err)
	}
	r.program = program

	r.vertices = gpuBuffer{id: dev.CreateBuffer(VertexBuffer), kind: VertexBuffer, capacity: initialVertexBufferBytes}
	dev.AllocBuffer(r.vertices.id, VertexBuffer, r.vertices.capacity)
	r.indices = gpuBuffer{id: dev.CreateBuffer(IndexBuffer), kind: IndexBuffer, capacity: initialIndexBufferBytes}
	dev.AllocBuffer(r.indices.id, IndexBuffer, r.indices.capacity)

	return r
}

// RecreateFontAtlas uploads the atlas bitmap as a fresh RGBA8 texture,
// hands the new handle to the engine, and releases the previous texture.
// Call it whenever fonts are (re)loaded.
func (r *Renderer) RecreateFontAtlas(engine Engine, atlas *fontatlas.Atlas) {
	if r.hasFontTex {
		r.dev.DeleteTexture(r.fontTex)
	}
	r.fontTex = r.dev.CreateTexture(atlas.Width, atlas.Height, atlas.Pix)
	r.hasFontTex = true
	engine.SetFontTexture(r.fontTex)
}

// Render replays one frame of draw data. Ambient pipeline state is
// captured up front and restored before returning, on the error path
// included. Buffer growth is the only side effect that outlives the
// call.
func (r *Renderer) Render(data *DrawData) error {
	if data == nil || len(data.Lists) == 0 {
		return nil
	}

	state := r.dev.CaptureState()
	defer r.dev.RestoreState(state)

	fbWidth := int32(data.DisplaySize.X * data.FramebufferScale.X)
	fbHeight := int32(data.DisplaySize.Y * data.FramebufferScale.Y)

	r.dev.Enable(CapBlend)
	r.dev.BlendFunc(BlendSrcAlpha, BlendOneMinusSrcAlpha)
	r.dev.Disable(CapCullFace)
	r.dev.Disable(CapDepthTest)
	r.dev.Enable(CapScissorTest)
	r.dev.SetPolygonMode(PolygonFill)
	r.dev.Viewport(0, 0, fbWidth, fbHeight)

	r.dev.UseProgram(r.program)
	r.dev.SetProjection(r.program, orthoProjection(data.DisplayPos, data.DisplaySize))

	for _, list := range data.Lists {
		vtx := vertexBytes(list.VtxBuffer)
		idx := indexBytes(list.IdxBuffer)
		if len(idx) == 0 {
			continue
		}
		r.vertices.ensure(r.dev, len(vtx))
		r.indices.ensure(r.dev, len(idx))
		r.dev.UploadBuffer(r.vertices.id, VertexBuffer, vtx)
		r.dev.UploadBuffer(r.indices.id, IndexBuffer, idx)
		r.dev.BindGeometry(r.vertices.id, r.indices.id)

		indexOffset := 0
		for i := range list.CmdBuffer {
			cmd := &list.CmdBuffer[i]
			if cmd.UserCallback != nil {
				return ErrUnsupportedCallback
			}
			x, y, w, h := scissorRect(cmd.ClipRect, data, fbHeight)
			if w > 0 && h > 0 {
				r.dev.BindTexture(cmd.TextureID)
				r.dev.Scissor(x, y, w, h)
				r.dev.DrawIndexed(int(cmd.ElemCount), indexOffset*2)
			}
			indexOffset += int(cmd.ElemCount)
		}
	}
	return nil
}

// Dispose releases the renderer's GPU objects. Safe to call once during
// teardown.
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	if r.hasFontTex {
		r.dev.DeleteTexture(r.fontTex)
		r.hasFontTex = false
	}
	r.dev.DeleteBuffer(r.indices.id)
	r.dev.DeleteBuffer(r.vertices.id)
	r.dev.DeleteProgram(r.program)
}

// scissorRect converts a logical clip rectangle to framebuffer
// coordinates. Both axes are scaled independently; Y is flipped because
// scissor space has its origin at the bottom.
func scissorRect(clip [4]float32, data *DrawData, fbHeight int32) (x, y, w, h int32) {
	sx := data.FramebufferScale.X
	sy := data.FramebufferScale.Y
	x = int32((clip[0] - data.DisplayPos.X) * sx)
	y = fbHeight - int32((clip[3]-data.DisplayPos.Y)*sy)
	w = int32((clip[2] - clip[0]) * sx)
	h = int32((clip[3] - clip[1]) * sy)
	return x, y, w, h
}

// orthoProjection maps the logical display rect directly to clip space,
// logical top to clip-space top.
func orthoProjection(pos, size Vec2) [16]float32 {
	l := pos.X
	r := pos.X + size.X
	t := pos.Y
	b := pos.Y + size.Y
	return [16]float32{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, -1, 0,
		(r + l) / (l - r), (t + b) / (b - t), 0, 1,
	}
}

func vertexBytes(v []Vertex) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*int(unsafe.Sizeof(v[0])))
}

func indexBytes(v []uint16) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*2)
}
