package asciigrid

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Side of the square canvas each character is rasterized on.
const glyphSize = 16

// Coverage above this counts as an ink pixel.
const inkThreshold = 0x7f

/*
glyphRenderer rasterizes characters on a fixed glyphSize canvas and
measures their raw brightness: the fraction of canvas cells covered by
ink. Raw brightness depends only on the face and the character, so it is
cached per rune for the lifetime of the renderer and survives character
set edits. The cache is written under a mutex so concurrent table builds
do not race.
*/
type glyphRenderer struct {
	face font.Face

	mu  sync.Mutex
	raw map[rune]float64
}

func newGlyphRenderer(face font.Face) *glyphRenderer {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &glyphRenderer{face: face, raw: make(map[rune]float64)}
}

func (g *glyphRenderer) rawBrightness(r rune) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if b, ok := g.raw[r]; ok {
		return b
	}
	b := renderBrightness(g.face, r)
	g.raw[r] = b
	return b
}

// renderBrightness draws r centered on a glyphSize canvas and returns the
// ink fraction in [0,1]. The same face and rune always produce the same
// value.
func renderBrightness(face font.Face, r rune) float64 {
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return 0
	}

	dst := image.NewAlpha(image.Rect(0, 0, glyphSize, glyphSize))
	metrics := face.Metrics()
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Alpha{A: 0xff}),
		Face: face,
		Dot: fixed.Point26_6{
			X: (fixed.I(glyphSize) - adv) / 2,
			Y: (fixed.I(glyphSize) + metrics.Ascent - metrics.Descent) / 2,
		},
	}
	d.DrawString(string(r))

	ink := 0
	for _, a := range dst.Pix {
		if a > inkThreshold {
			ink++
		}
	}
	return float64(ink) / (glyphSize * glyphSize)
}

/*
LoadFontFace parses TrueType font data and returns a face rendered at the
given point size, for use with WithFontFace. The default face needs no
font file; loading one only changes which glyph shapes the brightness
measurements come from.
*/
func LoadFontFace(ttf []byte, points float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}
