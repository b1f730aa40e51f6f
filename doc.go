// Package imbridge connects an immediate-mode GUI engine to a host window
// and a GPU, handling the three jobs every backend has to get right:
// translating host input into the engine's input model with correct
// delta/edge semantics, arbitrating the shared system cursor between the
// engine and the host application, and replaying the engine's per-frame
// draw lists through GPU buffers whose lifecycle the bridge owns.
//
// The bridge itself contains no widget logic and no GL or GLFW calls. It
// works against three small interfaces:
//
//   - Engine: the GUI engine (input sinks, capture intents, cursor
//     requests, finalized draw data).
//   - Host: the window/input system (pointer, keys, scroll, gamepad,
//     cursor shape/visibility, clipboard).
//   - Device: the GPU driver (buffers, textures, shader program, pipeline
//     state, indexed draws).
//
// Concrete adapters for GLFW and OpenGL 4.1 live under backend/glfw and
// backend/opengl. A typical frame looks like:
//
//	bridge, err := imbridge.New(host, engine, device)
//	...
//	for !window.ShouldClose() {
//	    glfw.PollEvents()
//	    bridge.Update(0) // 0 = measure delta time internally
//	    // application issues engine calls here
//	    if err := bridge.Render(); err != nil { ... }
//	    window.SwapBuffers()
//	}
//	bridge.Dispose()
//
// Everything runs synchronously on the thread that owns the GPU context;
// the bridge has no internal concurrency. Character input is the one
// exception to the per-frame model: the host delivers it through a
// callback whenever its event dispatch runs, and the bridge forwards it
// to the engine immediately.
package imbridge
