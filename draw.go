package imbridge

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Vertex is one draw-list vertex. The memory layout (2D position, 2D UV,
// packed RGBA8 color, tightly packed) is what the renderer's vertex
// attribute bindings assume.
type Vertex struct {
	Pos   [2]float32
	UV    [2]float32
	Color uint32
}

// RGBA packs a color from individual components (0-255) in the byte
// order the Vertex color attribute expects.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// DrawCmd is a single scissor-clipped indexed draw within a DrawList.
// Its index range starts where the previous command's range ended and
// covers ElemCount indices.
//
// UserCallback is carried for engines that support command hooks; this
// renderer does not, and replaying a command with a callback fails with
// ErrUnsupportedCallback rather than silently dropping it.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // left, top, right, bottom in logical space
	TextureID    TextureID
	UserCallback func(*DrawList, *DrawCmd)
}

// DrawList holds one batch of geometry and the ordered commands that
// consume it. Indices are 16-bit and relative to this list's vertices.
type DrawList struct {
	VtxBuffer []Vertex
	IdxBuffer []uint16
	CmdBuffer []DrawCmd
}

// DrawData is the finalized output of one engine frame. It is read-only
// to the renderer and not retained across frames.
type DrawData struct {
	DisplayPos       Vec2 // logical top-left of the display area
	DisplaySize      Vec2 // logical size
	FramebufferScale Vec2 // physical pixels per logical unit, per axis
	Lists            []*DrawList
}
