package imbridge_test

import (
	"testing"

	"github.com/willgale/imbridge"
	"github.com/willgale/imbridge/fontatlas"
)

// newTestBridge wires a bridge over fresh fakes.
func newTestBridge(t *testing.T, opts ...imbridge.Option) (*imbridge.Bridge, *fakeHost, *recordingEngine, *fakeDevice) {
	t.Helper()
	host := newFakeHost()
	engine := newRecordingEngine()
	dev := newFakeDevice()
	b, err := imbridge.New(host, engine, dev, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b, host, engine, dev
}

// fakeHost is an in-memory imbridge.Host.
type fakeHost struct {
	display     imbridge.Vec2
	framebuffer imbridge.Vec2
	cursorPos   imbridge.Vec2
	scroll      imbridge.Vec2

	buttons map[int]bool
	keys    map[imbridge.Key]bool
	grabbed bool

	cursor       imbridge.HostCursor
	cursorWrites int

	clipboard string

	gamepad    imbridge.GamepadState
	hasGamepad bool

	charFn func(rune)
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		display:     imbridge.Vec2{X: 800, Y: 600},
		framebuffer: imbridge.Vec2{X: 800, Y: 600},
		buttons:     make(map[int]bool),
		keys:        make(map[imbridge.Key]bool),
		cursor:      imbridge.HostCursor{Shape: imbridge.CursorArrow, Visible: true},
	}
}

func (h *fakeHost) DisplaySize() imbridge.Vec2     { return h.display }
func (h *fakeHost) FramebufferSize() imbridge.Vec2 { return h.framebuffer }
func (h *fakeHost) CursorPos() imbridge.Vec2       { return h.cursorPos }

func (h *fakeHost) MouseButtonDown(button int) bool { return h.buttons[button] }
func (h *fakeHost) ScrollOffset() imbridge.Vec2     { return h.scroll }
func (h *fakeHost) KeyDown(key imbridge.Key) bool   { return h.keys[key] }

func (h *fakeHost) Cursor() imbridge.HostCursor { return h.cursor }
func (h *fakeHost) SetCursor(c imbridge.HostCursor) {
	h.cursor = c
	h.cursorWrites++
}
func (h *fakeHost) CursorGrabbed() bool { return h.grabbed }

func (h *fakeHost) ClipboardText() string        { return h.clipboard }
func (h *fakeHost) SetClipboardText(text string) { h.clipboard = text }

func (h *fakeHost) Gamepad() (imbridge.GamepadState, bool) { return h.gamepad, h.hasGamepad }

func (h *fakeHost) SetCharCallback(fn func(ch rune)) { h.charFn = fn }

// typeChar simulates the host's event dispatch delivering a character.
func (h *fakeHost) typeChar(ch rune) {
	if h.charFn != nil {
		h.charFn(ch)
	}
}

// recordingEngine is an imbridge.Engine that records everything it is
// fed and answers intent queries from settable fields.
type recordingEngine struct {
	displaySize  imbridge.Vec2
	displayScale imbridge.Vec2
	deltaTime    float32
	mousePos     imbridge.Vec2

	buttons    map[int]bool
	wheel      [][2]float32
	keys       map[imbridge.Key]bool
	analog     map[imbridge.Key]float32
	analogDown map[imbridge.Key]bool
	chars      []rune

	clipboard string

	wantsMouse     bool
	wantsKeyboard  bool
	cursorShape    imbridge.CursorShape
	drawsCursor    bool
	suppressCursor bool

	atlas        *fontatlas.Atlas
	fontTextures []imbridge.TextureID
	drawData     *imbridge.DrawData
}

func newRecordingEngine() *recordingEngine {
	return &recordingEngine{
		buttons:     make(map[int]bool),
		keys:        make(map[imbridge.Key]bool),
		analog:      make(map[imbridge.Key]float32),
		analogDown:  make(map[imbridge.Key]bool),
		cursorShape: imbridge.CursorArrow,
	}
}

func (e *recordingEngine) SetDisplaySize(size imbridge.Vec2)   { e.displaySize = size }
func (e *recordingEngine) SetDisplayScale(scale imbridge.Vec2) { e.displayScale = scale }
func (e *recordingEngine) SetDeltaTime(dt float32)             { e.deltaTime = dt }

func (e *recordingEngine) SetMousePosition(pos imbridge.Vec2)   { e.mousePos = pos }
func (e *recordingEngine) SetMouseButton(button int, down bool) { e.buttons[button] = down }
func (e *recordingEngine) AddMouseWheel(dx, dy float32)         { e.wheel = append(e.wheel, [2]float32{dx, dy}) }
func (e *recordingEngine) SetKey(key imbridge.Key, down bool)   { e.keys[key] = down }
func (e *recordingEngine) SetAnalogKey(key imbridge.Key, down bool, value float32) {
	e.analogDown[key] = down
	e.analog[key] = value
}
func (e *recordingEngine) AddInputCharacter(ch rune) { e.chars = append(e.chars, ch) }

func (e *recordingEngine) ClipboardText() string        { return e.clipboard }
func (e *recordingEngine) SetClipboardText(text string) { e.clipboard = text }

func (e *recordingEngine) WantsMouseCapture() bool            { return e.wantsMouse }
func (e *recordingEngine) WantsKeyboardCapture() bool         { return e.wantsKeyboard }
func (e *recordingEngine) CursorShape() imbridge.CursorShape  { return e.cursorShape }
func (e *recordingEngine) DrawsCursor() bool                  { return e.drawsCursor }
func (e *recordingEngine) CursorChangeSuppressed() bool       { return e.suppressCursor }

func (e *recordingEngine) SetFontAtlas(atlas *fontatlas.Atlas) { e.atlas = atlas }
func (e *recordingEngine) SetFontTexture(tex imbridge.TextureID) {
	e.fontTextures = append(e.fontTextures, tex)
}

func (e *recordingEngine) Render() *imbridge.DrawData { return e.drawData }

// fakeDevice is an in-memory imbridge.Device tracking pipeline state and
// resource traffic.
type drawCall struct {
	count      int
	byteOffset int
}

type fakeDevice struct {
	nextID uint32
	state  imbridge.PipelineState

	programErr      error
	deletedPrograms []imbridge.ProgramID
	projections     [][16]float32

	buffers        map[imbridge.BufferKind][]imbridge.BufferID
	allocs         map[imbridge.BufferID][]int
	uploads        map[imbridge.BufferID][]int
	deletedBuffers []imbridge.BufferID

	createdTextures []imbridge.TextureID
	deletedTextures []imbridge.TextureID
	boundTextures   []imbridge.TextureID

	scissors [][4]int32
	draws    []drawCall
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		buffers: make(map[imbridge.BufferKind][]imbridge.BufferID),
		allocs:  make(map[imbridge.BufferID][]int),
		uploads: make(map[imbridge.BufferID][]int),
	}
}

func (d *fakeDevice) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDevice) CreateProgram(vertexSrc, fragmentSrc string) (imbridge.ProgramID, error) {
	if d.programErr != nil {
		return 0, d.programErr
	}
	return imbridge.ProgramID(d.id()), nil
}

func (d *fakeDevice) UseProgram(p imbridge.ProgramID) {}

func (d *fakeDevice) SetProjection(p imbridge.ProgramID, matrix [16]float32) {
	d.projections = append(d.projections, matrix)
}

func (d *fakeDevice) DeleteProgram(p imbridge.ProgramID) {
	d.deletedPrograms = append(d.deletedPrograms, p)
}

func (d *fakeDevice) CreateBuffer(kind imbridge.BufferKind) imbridge.BufferID {
	id := imbridge.BufferID(d.id())
	d.buffers[kind] = append(d.buffers[kind], id)
	return id
}

func (d *fakeDevice) AllocBuffer(id imbridge.BufferID, kind imbridge.BufferKind, capacity int) {
	d.allocs[id] = append(d.allocs[id], capacity)
}

func (d *fakeDevice) UploadBuffer(id imbridge.BufferID, kind imbridge.BufferKind, data []byte) {
	d.uploads[id] = append(d.uploads[id], len(data))
}

func (d *fakeDevice) BindGeometry(vertex, index imbridge.BufferID) {}

func (d *fakeDevice) DeleteBuffer(id imbridge.BufferID) {
	d.deletedBuffers = append(d.deletedBuffers, id)
}

func (d *fakeDevice) CreateTexture(width, height int, rgba []byte) imbridge.TextureID {
	id := imbridge.TextureID(d.id())
	d.createdTextures = append(d.createdTextures, id)
	return id
}

func (d *fakeDevice) BindTexture(id imbridge.TextureID) {
	d.boundTextures = append(d.boundTextures, id)
}

func (d *fakeDevice) DeleteTexture(id imbridge.TextureID) {
	d.deletedTextures = append(d.deletedTextures, id)
}

func (d *fakeDevice) CaptureState() imbridge.PipelineState { return d.state }
func (d *fakeDevice) RestoreState(s imbridge.PipelineState) { d.state = s }

func (d *fakeDevice) setCapability(c imbridge.Capability, enabled bool) {
	switch c {
	case imbridge.CapBlend:
		d.state.Blend = enabled
	case imbridge.CapCullFace:
		d.state.CullFace = enabled
	case imbridge.CapDepthTest:
		d.state.DepthTest = enabled
	case imbridge.CapScissorTest:
		d.state.ScissorTest = enabled
	}
}

func (d *fakeDevice) Enable(c imbridge.Capability)  { d.setCapability(c, true) }
func (d *fakeDevice) Disable(c imbridge.Capability) { d.setCapability(c, false) }

func (d *fakeDevice) BlendFunc(src, dst imbridge.BlendFactor) {
	d.state.BlendSrc = src
	d.state.BlendDst = dst
}

func (d *fakeDevice) SetPolygonMode(m imbridge.PolygonMode) { d.state.PolygonMode = m }

func (d *fakeDevice) Viewport(x, y, width, height int32) {
	d.state.Viewport = [4]int32{x, y, width, height}
}

func (d *fakeDevice) Scissor(x, y, width, height int32) {
	d.state.Scissor = [4]int32{x, y, width, height}
	d.scissors = append(d.scissors, d.state.Scissor)
}

func (d *fakeDevice) DrawIndexed(elemCount, indexByteOffset int) {
	d.draws = append(d.draws, drawCall{count: elemCount, byteOffset: indexByteOffset})
}

// vertexBufferID and indexBufferID return the renderer's two buffers.
func (d *fakeDevice) vertexBufferID() imbridge.BufferID { return d.buffers[imbridge.VertexBuffer][0] }
func (d *fakeDevice) indexBufferID() imbridge.BufferID  { return d.buffers[imbridge.IndexBuffer][0] }
