package imbridge

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/willgale/imbridge/fontatlas"
)

// Bridge is the public surface: one instance per window, driven once per
// frame with Update then Render, torn down with Dispose. All methods
// must run on the thread that owns the GPU context.
type Bridge struct {
	host     Host
	engine   Engine
	renderer *Renderer
	cursor   *cursorArbiter
	input    *inputSynchronizer
	cfg      Config

	lastFrame time.Time
	disposed  bool
}

// New wires a host, an engine and a GPU device together. It creates the
// GPU resources, registers the text-input callback and installs the
// built-in font at the configured size. Nil collaborators are caller
// errors and fail immediately.
func New(host Host, engine Engine, device Device, opts ...Option) (*Bridge, error) {
	if host == nil {
		return nil, errors.New("imbridge: host must not be nil")
	}
	if engine == nil {
		return nil, errors.New("imbridge: engine must not be nil")
	}
	if device == nil {
		return nil, errors.New("imbridge: device must not be nil")
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !validFontSize(cfg.FontSize) {
		return nil, fmt.Errorf("imbridge: invalid font size %v", cfg.FontSize)
	}

	b := &Bridge{host: host, engine: engine, cfg: cfg}
	b.cursor = newCursorArbiter(host, cfg.CursorControl)
	b.renderer = NewRenderer(device)
	b.input = newInputSynchronizer(host, engine, &b.cfg, b.cursor)

	host.SetCharCallback(engine.AddInputCharacter)

	b.installAtlas(fontatlas.Default(cfg.FontSize))
	return b, nil
}

// Update runs the per-frame input pass: display geometry, delta time,
// pointer, wheel deltas, keys, clipboard shortcuts, cursor arbitration
// and gamepad state, in that order. Call it after polling host events
// and before issuing any engine calls for the frame.
//
// dt is the frame delta in seconds; pass a value <= 0 to let the bridge
// measure it from the wall clock.
func (b *Bridge) Update(dt float32) {
	now := time.Now()
	if dt <= 0 {
		if !b.lastFrame.IsZero() {
			dt = float32(now.Sub(b.lastFrame).Seconds())
		} else {
			dt = 0
		}
	}
	b.lastFrame = now
	b.input.update(dt)
}

// Render finalizes the engine's frame and replays it on the GPU.
func (b *Bridge) Render() error {
	return b.renderer.Render(b.engine.Render())
}

// WantsMouseCapture reports whether the engine claims the pointer this
// frame. Applications should skip their own pointer handling when true.
func (b *Bridge) WantsMouseCapture() bool { return b.engine.WantsMouseCapture() }

// WantsKeyboardCapture reports whether the engine claims the keyboard
// this frame.
func (b *Bridge) WantsKeyboardCapture() bool { return b.engine.WantsKeyboardCapture() }

// LoadFont replaces the engine's font with the TTF at path, rendered at
// sizePx. If the file cannot be read the bridge falls back to the
// built-in font at the same size and reports the failure.
func (b *Bridge) LoadFont(path string, sizePx float32) error {
	if !validFontSize(sizePx) {
		return fmt.Errorf("imbridge: invalid font size %v", sizePx)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("imbridge: load font %s: %v; using built-in font", path, err)
		b.installAtlas(fontatlas.Default(sizePx))
		return fmt.Errorf("load font %s: %w", path, err)
	}
	return b.LoadFontBytes(data, sizePx)
}

// LoadFontBytes replaces the engine's font with the given TTF bytes,
// rendered at sizePx. The bytes are only read during the call. Unusable
// font data falls back to the built-in font and reports the failure.
func (b *Bridge) LoadFontBytes(data []byte, sizePx float32) error {
	if !validFontSize(sizePx) {
		return fmt.Errorf("imbridge: invalid font size %v", sizePx)
	}
	atlas, err := fontatlas.Build(data, sizePx)
	if err != nil {
		log.Printf("imbridge: build font atlas: %v; using built-in font", err)
		b.installAtlas(fontatlas.Default(sizePx))
		return fmt.Errorf("build font atlas: %w", err)
	}
	b.installAtlas(atlas)
	return nil
}

func (b *Bridge) installAtlas(atlas *fontatlas.Atlas) {
	b.engine.SetFontAtlas(atlas)
	b.renderer.RecreateFontAtlas(b.engine, atlas)
}

// Dispose hands the cursor back to the host if an override is active and
// releases all GPU objects. Further calls are no-ops.
func (b *Bridge) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.cursor.restore()
	b.renderer.Dispose()
}

func validFontSize(px float32) bool {
	return px > 0 && !math.IsInf(float64(px), 0)
}
