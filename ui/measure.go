package ui

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vireo-ui/vireo/geom"
)

// TextMeasurer reports the pixel extent of rendered text. Layout needs
// measurement without a Surface in hand (auto-sized labels, cursor
// positioning), so measurement is a separate capability from drawing.
// Surface implementations usually satisfy it too.
type TextMeasurer interface {
	MeasureText(s string, f Font) geom.Size
}

// BasicMeasurer measures text against the fixed-metric face from
// golang.org/x/image/font/basicfont, scaled to the requested size. The
// result is deterministic across platforms, which keeps layout tests
// reproducible; backends substitute their real font metrics.
type BasicMeasurer struct{}

// MeasureText implements TextMeasurer.
func (BasicMeasurer) MeasureText(s string, f Font) geom.Size {
	f = f.orDefault()
	face := basicfont.Face7x13
	adv := font.MeasureString(face, s)

	// Face7x13 renders at a nominal 13px line height; scale to the
	// requested size.
	scale := f.Size / float64(face.Height)
	return geom.Size{
		Width:  fixedToFloat(adv) * scale,
		Height: f.Size,
	}
}

// AdvanceToIndex returns the x offset of the glyph boundary before index i
// in s, measured with the same metrics as MeasureText. Used by TextInput to
// place the cursor.
func (m BasicMeasurer) AdvanceToIndex(s string, i int, f Font) float64 {
	runes := []rune(s)
	if i > len(runes) {
		i = len(runes)
	}
	return m.MeasureText(string(runes[:i]), f).Width
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
