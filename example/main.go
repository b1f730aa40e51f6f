// Example bridges a tiny demo engine to a GLFW window and the OpenGL
// device. The engine draws a movable panel with a text label using the
// bridge's font atlas; dragging with the left button moves it, and the
// cursor switches to a hand while it is hovered.
//
// Run with OpenGL/X11 headers available:
//
//	go run ./example/
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	glfw3 "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/willgale/imbridge"
	glfwhost "github.com/willgale/imbridge/backend/glfw"
	"github.com/willgale/imbridge/backend/opengl"
	"github.com/willgale/imbridge/fontatlas"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "imbridge example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw3.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw3.Terminate()

	glfw3.WindowHint(glfw3.ContextVersionMajor, 4)
	glfw3.WindowHint(glfw3.ContextVersionMinor, 1)
	glfw3.WindowHint(glfw3.OpenGLProfile, glfw3.OpenGLCoreProfile)
	glfw3.WindowHint(glfw3.OpenGLForwardCompatible, glfw3.True)

	window, err := glfw3.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw3.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	host := glfwhost.NewHost(window)
	defer host.Destroy()
	device := opengl.NewDevice()
	defer device.Destroy()
	engine := newDemoEngine()

	bridge, err := imbridge.New(host, engine, device)
	if err != nil {
		return fmt.Errorf("create bridge: %w", err)
	}
	defer bridge.Dispose()

	for !window.ShouldClose() {
		glfw3.PollEvents()
		bridge.Update(0)

		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := bridge.Render(); err != nil {
			return err
		}
		window.SwapBuffers()
	}
	return nil
}

// demoEngine is a stand-in GUI engine just big enough to exercise the
// bridge: it records the input it is fed and emits one draw list per
// frame.
type demoEngine struct {
	displaySize imbridge.Vec2
	scale       imbridge.Vec2
	mouse       imbridge.Vec2
	leftDown    bool
	wheelY      float32

	atlas   *fontatlas.Atlas
	fontTex imbridge.TextureID

	panelPos imbridge.Vec2
	dragging bool
	dragOff  imbridge.Vec2
	hovered  bool
}

func newDemoEngine() *demoEngine {
	return &demoEngine{panelPos: imbridge.Vec2{X: 60, Y: 60}}
}

func (e *demoEngine) SetDisplaySize(size imbridge.Vec2)  { e.displaySize = size }
func (e *demoEngine) SetDisplayScale(scale imbridge.Vec2) { e.scale = scale }
func (e *demoEngine) SetDeltaTime(dt float32)             {}

func (e *demoEngine) SetMousePosition(pos imbridge.Vec2) { e.mouse = pos }

func (e *demoEngine) SetMouseButton(button int, down bool) {
	if button == imbridge.MouseButtonLeft {
		e.leftDown = down
	}
}

func (e *demoEngine) AddMouseWheel(dx, dy float32)                       { e.wheelY += dy }
func (e *demoEngine) SetKey(key imbridge.Key, down bool)                 {}
func (e *demoEngine) SetAnalogKey(key imbridge.Key, down bool, v float32) {}
func (e *demoEngine) AddInputCharacter(ch rune)                          {}

func (e *demoEngine) ClipboardText() string        { return "imbridge demo" }
func (e *demoEngine) SetClipboardText(text string) {}

func (e *demoEngine) WantsMouseCapture() bool    { return e.hovered || e.dragging }
func (e *demoEngine) WantsKeyboardCapture() bool { return false }

func (e *demoEngine) CursorShape() imbridge.CursorShape {
	if e.hovered {
		return imbridge.CursorHand
	}
	return imbridge.CursorArrow
}

func (e *demoEngine) DrawsCursor() bool            { return false }
func (e *demoEngine) CursorChangeSuppressed() bool { return false }

func (e *demoEngine) SetFontAtlas(atlas *fontatlas.Atlas)   { e.atlas = atlas }
func (e *demoEngine) SetFontTexture(tex imbridge.TextureID) { e.fontTex = tex }

const (
	panelW = 260
	panelH = 80
)

func (e *demoEngine) Render() *imbridge.DrawData {
	e.hovered = e.mouse.X >= e.panelPos.X && e.mouse.X < e.panelPos.X+panelW &&
		e.mouse.Y >= e.panelPos.Y && e.mouse.Y < e.panelPos.Y+panelH

	switch {
	case e.dragging && !e.leftDown:
		e.dragging = false
	case e.dragging:
		e.panelPos = imbridge.Vec2{X: e.mouse.X - e.dragOff.X, Y: e.mouse.Y - e.dragOff.Y}
	case e.hovered && e.leftDown:
		e.dragging = true
		e.dragOff = imbridge.Vec2{X: e.mouse.X - e.panelPos.X, Y: e.mouse.Y - e.panelPos.Y}
	}

	list := &imbridge.DrawList{}
	bg := imbridge.RGBA(40, 44, 52, 230)
	if e.hovered {
		bg = imbridge.RGBA(50, 56, 66, 230)
	}
	e.quad(list, e.panelPos.X, e.panelPos.Y, panelW, panelH, bg)
	e.text(list, e.panelPos.X+12, e.panelPos.Y+12, "drag me", imbridge.RGBA(255, 255, 255, 255))
	e.text(list, e.panelPos.X+12, e.panelPos.Y+12+e.atlas.LineHeight,
		fmt.Sprintf("wheel: %.1f", e.wheelY), imbridge.RGBA(160, 200, 255, 255))

	clip := [4]float32{0, 0, e.displaySize.X, e.displaySize.Y}
	list.CmdBuffer = append(list.CmdBuffer, imbridge.DrawCmd{
		ElemCount: uint32(len(list.IdxBuffer)),
		ClipRect:  clip,
		TextureID: e.fontTex,
	})

	return &imbridge.DrawData{
		DisplaySize:      e.displaySize,
		FramebufferScale: e.scale,
		Lists:            []*imbridge.DrawList{list},
	}
}

// quad appends a solid rectangle sampling the atlas's white texel.
func (e *demoEngine) quad(list *imbridge.DrawList, x, y, w, h float32, color uint32) {
	e.texturedQuad(list, x, y, w, h, e.atlas.WhiteU, e.atlas.WhiteV, e.atlas.WhiteU, e.atlas.WhiteV, color)
}

func (e *demoEngine) texturedQuad(list *imbridge.DrawList, x, y, w, h, u0, v0, u1, v1 float32, color uint32) {
	base := uint16(len(list.VtxBuffer))
	list.VtxBuffer = append(list.VtxBuffer,
		imbridge.Vertex{Pos: [2]float32{x, y}, UV: [2]float32{u0, v0}, Color: color},
		imbridge.Vertex{Pos: [2]float32{x + w, y}, UV: [2]float32{u1, v0}, Color: color},
		imbridge.Vertex{Pos: [2]float32{x + w, y + h}, UV: [2]float32{u1, v1}, Color: color},
		imbridge.Vertex{Pos: [2]float32{x, y + h}, UV: [2]float32{u0, v1}, Color: color},
	)
	list.IdxBuffer = append(list.IdxBuffer,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

func (e *demoEngine) text(list *imbridge.DrawList, x, y float32, s string, color uint32) {
	pen := x
	for _, r := range s {
		g, ok := e.atlas.Glyphs[r]
		if !ok {
			continue
		}
		if g.Width > 0 && g.Height > 0 {
			e.texturedQuad(list, pen+g.OffsetX, y+g.OffsetY,
				float32(g.Width), float32(g.Height), g.U0, g.V0, g.U1, g.V1, color)
		}
		pen += g.Advance
	}
}
