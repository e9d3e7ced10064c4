package ui

import (
	"image"
	"image/color"

	"github.com/vireo-ui/vireo/geom"
)

// ============================================================================
// Render Boundary
// ============================================================================

// Surface is the abstract drawing target supplied by the host loop. The
// framework issues primitives against it and never opens windows or manages
// a display itself. All coordinates are absolute (screen space).
//
// Clipping is a stack: PushClip intersects the current clip with r, PopClip
// restores the previous one. Draw calls outside the current clip are
// discarded by the implementation.
type Surface interface {
	// FillRect fills r with c. A zero radius draws square corners.
	FillRect(r geom.Rect, c color.RGBA, radius float64)

	// StrokeRect outlines r with line width w. A zero radius draws square
	// corners.
	StrokeRect(r geom.Rect, c color.RGBA, w, radius float64)

	// FillCircle fills a circle centered at p.
	FillCircle(p geom.Point, radius float64, c color.RGBA)

	// DrawText draws s with its baseline-box anchored at the top-left point
	// pos, using the given font.
	DrawText(s string, pos geom.Point, f Font, c color.RGBA)

	// DrawImage blits src scaled into dst.
	DrawImage(src image.Image, dst geom.Rect)

	// PushClip intersects the clip region with r.
	PushClip(r geom.Rect)

	// PopClip restores the clip region active before the matching PushClip.
	PopClip()
}

// Font describes how text is rendered and measured. Widgets carry explicit
// Font values in their style; there is no global default font state.
type Font struct {
	Size   float64
	Family string
	Bold   bool
	Italic bool
}

// DefaultFont returns the font used when a widget's style leaves the font
// zero-valued.
func DefaultFont() Font {
	return Font{Size: 16}
}

// orDefault fills in a zero font.
func (f Font) orDefault() Font {
	if f.Size <= 0 {
		f.Size = DefaultFont().Size
	}
	return f
}
