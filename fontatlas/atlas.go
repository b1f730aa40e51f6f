// Package fontatlas rasterizes TrueType/OpenType fonts into RGBA8 glyph
// atlases for GPU upload. It also carries the bridge's built-in fallback
// font (the embedded Go Regular face).
package fontatlas

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph locates one rune inside the atlas and carries the metrics an
// engine needs to lay it out. Offsets are relative to the pen position
// at the top of the line.
type Glyph struct {
	U0, V0, U1, V1 float32 // atlas texture coordinates
	Width, Height  int     // raster size in pixels
	OffsetX        float32
	OffsetY        float32
	Advance        float32
}

// Atlas is a rasterized font: an RGBA8 bitmap plus per-rune metrics.
// Pix is Width*Height*4 bytes, row-major. WhiteU/WhiteV point at a solid
// white texel so engines can draw untextured shapes with the same
// pipeline.
type Atlas struct {
	Pix    []byte
	Width  int
	Height int

	SizePx     float32
	Ascent     float32
	LineHeight float32
	Glyphs     map[rune]Glyph

	WhiteU, WhiteV float32
}

const (
	firstRune = ' '
	lastRune  = '~'

	atlasWidth = 512
	padding    = 1

	// Solid white block reserved at the atlas origin.
	whiteSize = 2
)

// Build rasterizes the printable ASCII range of the given TTF/OTF bytes
// at sizePx. The font bytes are only read during the call; the returned
// atlas owns its own pixel buffer.
func Build(ttf []byte, sizePx float32) (*Atlas, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("fontatlas: invalid size %v", sizePx)
	}
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fontatlas: create face: %w", err)
	}
	defer face.Close()
	return buildFromFace(face, sizePx), nil
}

// Default builds the embedded Go Regular face at sizePx. It is the
// fallback installed whenever a caller-supplied font cannot be used.
func Default(sizePx float32) *Atlas {
	a, err := Build(goregular.TTF, sizePx)
	if err != nil {
		// The embedded face is known-good and the size is validated by
		// callers; nothing recoverable gets here.
		panic(err)
	}
	return a
}

func buildFromFace(face font.Face, sizePx float32) *Atlas {
	m := face.Metrics()

	type placed struct {
		r      rune
		bounds fixed.Rectangle26_6
		adv    fixed.Int26_6
		x, y   int
		w, h   int
	}
	var glyphs []placed

	// Shelf-pack left to right, wrapping into new rows. The white block
	// occupies the top-left corner.
	x := whiteSize + padding
	y := padding
	rowHeight := whiteSize
	for r := rune(firstRune); r <= lastRune; r++ {
		bounds, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		w := (bounds.Max.X - bounds.Min.X).Ceil()
		h := (bounds.Max.Y - bounds.Min.Y).Ceil()
		if x+w+padding > atlasWidth {
			x = padding
			y += rowHeight + padding
			rowHeight = 0
		}
		glyphs = append(glyphs, placed{r: r, bounds: bounds, adv: adv, x: x, y: y, w: w, h: h})
		x += w + padding
		if h > rowHeight {
			rowHeight = h
		}
	}
	height := y + rowHeight + padding

	img := image.NewRGBA(image.Rect(0, 0, atlasWidth, height))
	draw.Draw(img, image.Rect(0, 0, whiteSize, whiteSize), image.White, image.Point{}, draw.Src)

	atlas := &Atlas{
		Pix:        img.Pix,
		Width:      atlasWidth,
		Height:     height,
		SizePx:     sizePx,
		Ascent:     fixedToFloat(m.Ascent),
		LineHeight: fixedToFloat(m.Height),
		Glyphs:     make(map[rune]Glyph, len(glyphs)),
		WhiteU:     float32(whiteSize) / 2 / atlasWidth,
		WhiteV:     float32(whiteSize) / 2 / float32(height),
	}

	for _, g := range glyphs {
		if g.w > 0 && g.h > 0 {
			// Place the pen so the glyph raster lands exactly on its
			// packed cell.
			dot := fixed.Point26_6{
				X: fixed.I(g.x) - g.bounds.Min.X,
				Y: fixed.I(g.y) - g.bounds.Min.Y,
			}
			dr, mask, maskp, _, ok := face.Glyph(dot, g.r)
			if ok {
				draw.DrawMask(img, dr, image.White, image.Point{}, mask, maskp, draw.Over)
			}
		}
		atlas.Glyphs[g.r] = Glyph{
			U0:      float32(g.x) / atlasWidth,
			V0:      float32(g.y) / float32(height),
			U1:      float32(g.x+g.w) / atlasWidth,
			V1:      float32(g.y+g.h) / float32(height),
			Width:   g.w,
			Height:  g.h,
			OffsetX: fixedToFloat(g.bounds.Min.X),
			OffsetY: fixedToFloat(m.Ascent + g.bounds.Min.Y),
			Advance: fixedToFloat(g.adv),
		}
	}
	return atlas
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
