package imbridge_test

import (
	"errors"
	"testing"

	"github.com/willgale/imbridge"
)

// singleListData builds draw data with one list of the given geometry
// size and one command covering all of it.
func singleListData(vertexCount, indexCount int, clip [4]float32) *imbridge.DrawData {
	list := &imbridge.DrawList{
		VtxBuffer: make([]imbridge.Vertex, vertexCount),
		IdxBuffer: make([]uint16, indexCount),
		CmdBuffer: []imbridge.DrawCmd{{
			ElemCount: uint32(indexCount),
			ClipRect:  clip,
			TextureID: 7,
		}},
	}
	return &imbridge.DrawData{
		DisplaySize:      imbridge.Vec2{X: 800, Y: 600},
		FramebufferScale: imbridge.Vec2{X: 1, Y: 1},
		Lists:            []*imbridge.DrawList{list},
	}
}

func fullClip() [4]float32 { return [4]float32{0, 0, 800, 600} }

func TestNewRendererAllocatesInitialBuffers(t *testing.T) {
	dev := newFakeDevice()
	imbridge.NewRenderer(dev)

	if got := dev.allocs[dev.vertexBufferID()]; len(got) != 1 || got[0] != 10000 {
		t.Errorf("vertex buffer allocations = %v, want [10000]", got)
	}
	if got := dev.allocs[dev.indexBufferID()]; len(got) != 1 || got[0] != 2000 {
		t.Errorf("index buffer allocations = %v, want [2000]", got)
	}
}

func TestRenderGrowsBufferToRequiredSize(t *testing.T) {
	dev := newFakeDevice()
	r := imbridge.NewRenderer(dev)

	// 2048 16-bit indices need 4096 bytes; 1.5x of 2000 is not enough,
	// so the allocation jumps straight to the requirement.
	if err := r.Render(singleListData(100, 2048, fullClip())); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := dev.allocs[dev.indexBufferID()]; len(got) != 2 || got[1] != 4096 {
		t.Errorf("index buffer allocations = %v, want [2000 4096]", got)
	}
	if got := dev.allocs[dev.vertexBufferID()]; len(got) != 1 {
		t.Errorf("vertex buffer reallocated for geometry that fits: %v", got)
	}
}

func TestRenderGrowsBufferByHalf(t *testing.T) {
	dev := newFakeDevice()
	r := imbridge.NewRenderer(dev)

	// 1250 indices need 2500 bytes; 1.5x of 2000 covers it.
	if err := r.Render(singleListData(100, 1250, fullClip())); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := dev.allocs[dev.indexBufferID()]; len(got) != 2 || got[1] != 3000 {
		t.Errorf("index buffer allocations = %v, want [2000 3000]", got)
	}
}

func TestRenderBufferCapacityIsMonotonic(t *testing.T) {
	dev := newFakeDevice()
	r := imbridge.NewRenderer(dev)

	if err := r.Render(singleListData(100, 2048, fullClip())); err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Smaller frames must reuse the grown buffer.
	if err := r.Render(singleListData(10, 30, fullClip())); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := dev.allocs[dev.indexBufferID()]; len(got) != 2 {
		t.Errorf("index buffer shrank or reallocated: %v", got)
	}
}

func TestRenderRestoresPipelineState(t *testing.T) {
	states := []imbridge.PipelineState{
		{
			Viewport:    [4]int32{5, 6, 700, 500},
			Scissor:     [4]int32{1, 2, 3, 4},
			BlendSrc:    imbridge.BlendOne,
			BlendDst:    imbridge.BlendZero,
			PolygonMode: imbridge.PolygonLine,
			Blend:       false,
			CullFace:    true,
			DepthTest:   true,
			ScissorTest: false,
		},
		{
			Viewport:    [4]int32{0, 0, 800, 600},
			BlendSrc:    imbridge.BlendSrcAlpha,
			BlendDst:    imbridge.BlendOneMinusSrcAlpha,
			PolygonMode: imbridge.PolygonFill,
			Blend:       true,
			ScissorTest: true,
		},
	}
	for i, state := range states {
		dev := newFakeDevice()
		r := imbridge.NewRenderer(dev)
		dev.state = state

		if err := r.Render(singleListData(4, 6, fullClip())); err != nil {
			t.Fatalf("state %d: Render: %v", i, err)
		}
		if dev.state != state {
			t.Errorf("state %d not restored:\n got %+v\nwant %+v", i, dev.state, state)
		}
	}
}

func TestRenderScissorConversion(t *testing.T) {
	dev := newFakeDevice()
	r := imbridge.NewRenderer(dev)

	if err := r.Render(singleListData(4, 6, [4]float32{10, 20, 110, 70})); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(dev.scissors) != 1 {
		t.Fatalf("scissor calls = %d, want 1", len(dev.scissors))
	}
	// Y flips: framebuffer origin is bottom-left.
	if want := [4]int32{10, 530, 100, 50}; dev.scissors[0] != want {
		t.Errorf("scissor = %v, want %v", dev.scissors[0], want)
	}
}

func TestRenderScissorScalesPerAxis(t *testing.T) {
	dev := newFakeDevice()
	r := imbridge.NewRenderer(dev)

	data := singleListData(4, 6, [4]float32{10, 20, 110, 70})
	data.DisplaySize = imbridge.Vec2{X: 400, Y: 300}
	data.FramebufferScale = imbridge.Vec2{X: 2, Y: 2}

	if err := r.Render(data); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := [4]int32{20, 460, 200, 100}; dev.scissors[0] != want {
		t.Errorf("scissor = %v, want %v", dev.scissors[0], want)
	}
}

func TestRenderIndexOffsetAdvancesPastSkippedCommands(t *testing.T) {
	dev := newFakeDevice()
	r := imbridge.NewRenderer(dev)

	list := &imbridge.DrawList{
		VtxBuffer: make([]imbridge.Vertex, 12),
		IdxBuffer: make([]uint16, 18),
		CmdBuffer: []imbridge.DrawCmd{
			{ElemCount: 6, ClipRect: fullClip(), TextureID: 1},
			// Zero-area clip: skipped, but its elements still advance
			// the index cursor.
			{ElemCount: 6, ClipRect: [4]float32{50, 50, 50, 50}, TextureID: 2},
			{ElemCount: 6, ClipRect: fullClip(), TextureID: 3},
		},
	}
	data := &imbridge.DrawData{
		DisplaySize:      imbridge.Vec2{X: 800, Y: 600},
		FramebufferScale: imbridge.Vec2{X: 1, Y: 1},
		Lists:            []*imbridge.DrawList{list},
	}

	if err := r.Render(data); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(dev.draws) != 2 {
		t.Fatalf("draw calls = %d, want 2", len(dev.draws))
	}
	if dev.draws[0] != (drawCall{count: 6, byteOffset: 0}) {
		t.Errorf("first draw = %+v, want 6 elems at byte 0", dev.draws[0])
	}
	if dev.draws[1] != (drawCall{count: 6, byteOffset: 24}) {
		t.Errorf("second draw = %+v, want 6 elems at byte 24", dev.draws[1])
	}
	want := []imbridge.TextureID{1, 3}
	for i, tex := range want {
		if dev.boundTextures[i] != tex {
			t.Errorf("bound texture %d = %v, want %v", i, dev.boundTextures[i], tex)
		}
	}
}

func TestRenderUserCallbackFailsWithStateRestored(t *testing.T) {
	dev := newFakeDevice()
	r := imbridge.NewRenderer(dev)
	before := imbridge.PipelineState{
		Viewport:    [4]int32{0, 0, 320, 200},
		BlendSrc:    imbridge.BlendOne,
		PolygonMode: imbridge.PolygonPoint,
		DepthTest:   true,
	}
	dev.state = before

	data := singleListData(4, 6, fullClip())
	data.Lists[0].CmdBuffer[0].UserCallback = func(*imbridge.DrawList, *imbridge.DrawCmd) {}

	err := r.Render(data)
	if !errors.Is(err, imbridge.ErrUnsupportedCallback) {
		t.Fatalf("Render error = %v, want ErrUnsupportedCallback", err)
	}
	if len(dev.draws) != 0 {
		t.Errorf("draw calls issued despite callback command")
	}
	if dev.state != before {
		t.Errorf("pipeline state not restored on the error path:\n got %+v\nwant %+v", dev.state, before)
	}
}

func TestRenderEmptyFrameIsNoOp(t *testing.T) {
	dev := newFakeDevice()
	r := imbridge.NewRenderer(dev)

	if err := r.Render(nil); err != nil {
		t.Fatalf("Render(nil): %v", err)
	}
	if err := r.Render(&imbridge.DrawData{}); err != nil {
		t.Fatalf("Render(empty): %v", err)
	}

	empty := singleListData(0, 0, fullClip())
	empty.Lists[0].CmdBuffer = nil
	if err := r.Render(empty); err != nil {
		t.Fatalf("Render(empty list): %v", err)
	}
	if len(dev.draws) != 0 || len(dev.uploads[dev.vertexBufferID()]) != 0 {
		t.Errorf("empty frames touched the device: draws=%d uploads=%d",
			len(dev.draws), len(dev.uploads[dev.vertexBufferID()]))
	}
}

func TestRenderProjectionMapsDisplayRect(t *testing.T) {
	dev := newFakeDevice()
	r := imbridge.NewRenderer(dev)

	if err := r.Render(singleListData(4, 6, fullClip())); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(dev.projections) != 1 {
		t.Fatalf("projection uploads = %d, want 1", len(dev.projections))
	}
	proj := dev.projections[0]
	if proj[0] != 2.0/800 {
		t.Errorf("x scale = %v, want %v", proj[0], 2.0/800)
	}
	if proj[12] != -1 || proj[13] != 1 {
		t.Errorf("translation = (%v, %v), want (-1, 1)", proj[12], proj[13])
	}
}

func TestRenderSurvivesShaderFailure(t *testing.T) {
	dev := newFakeDevice()
	dev.programErr = errors.New("link failed")

	r := imbridge.NewRenderer(dev)
	if err := r.Render(singleListData(4, 6, fullClip())); err != nil {
		t.Fatalf("Render after shader failure: %v", err)
	}
	if len(dev.draws) != 1 {
		t.Errorf("draw calls = %d, want 1", len(dev.draws))
	}
}

func TestRendererDisposeReleasesResources(t *testing.T) {
	dev := newFakeDevice()
	r := imbridge.NewRenderer(dev)

	r.Dispose()
	r.Dispose()

	if len(dev.deletedBuffers) != 2 {
		t.Errorf("deleted buffers = %d, want 2", len(dev.deletedBuffers))
	}
	if len(dev.deletedPrograms) != 1 {
		t.Errorf("deleted programs = %d, want 1", len(dev.deletedPrograms))
	}
}
