// Package ebitengine renders a ui.Manager through Ebitengine: it implements
// ui.Surface on an *ebiten.Image, translates Ebitengine input into ui
// events, and adapts a Manager to the ebiten.Game loop.
package ebitengine

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vireo-ui/vireo/geom"
	"github.com/vireo-ui/vireo/ui"
)

var baseFace = text.NewGoXFace(basicfont.Face7x13)

// Surface draws ui primitives onto an ebiten image. Clipping uses SubImage,
// so PushClip is cheap; corner radii are drawn square because ebiten/vector
// has no rounded-rect primitive.
type Surface struct {
	dst *ebiten.Image

	// clip stack; the top is the current draw target.
	stack []*ebiten.Image

	// decoded-image cache, keyed by the source image pointer. Widgets keep
	// stable image values, so this avoids re-uploading every frame.
	textures map[image.Image]*ebiten.Image
}

// NewSurface wraps an ebiten image as a ui.Surface. One Surface can be
// reused across frames as long as the target image stays the same size.
func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{
		dst:      dst,
		stack:    []*ebiten.Image{dst},
		textures: make(map[image.Image]*ebiten.Image),
	}
}

// Reset retargets the surface for a new frame.
func (s *Surface) Reset(dst *ebiten.Image) {
	s.dst = dst
	s.stack = s.stack[:0]
	s.stack = append(s.stack, dst)
}

func (s *Surface) target() *ebiten.Image {
	return s.stack[len(s.stack)-1]
}

// FillRect implements ui.Surface.
func (s *Surface) FillRect(r geom.Rect, c color.RGBA, radius float64) {
	if c.A == 0 || r.IsEmpty() {
		return
	}
	vector.DrawFilledRect(s.target(), float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, true)
}

// StrokeRect implements ui.Surface.
func (s *Surface) StrokeRect(r geom.Rect, c color.RGBA, width, radius float64) {
	if c.A == 0 || r.IsEmpty() || width <= 0 {
		return
	}
	vector.StrokeRect(s.target(), float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(width), c, true)
}

// FillCircle implements ui.Surface.
func (s *Surface) FillCircle(center geom.Point, radius float64, c color.RGBA) {
	if c.A == 0 || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.target(), float32(center.X), float32(center.Y), float32(radius), c, true)
}

// DrawText implements ui.Surface. The bitmap face is scaled to the
// requested size, matching the metrics ui.BasicMeasurer reports.
func (s *Surface) DrawText(str string, pos geom.Point, f ui.Font, c color.RGBA) {
	if str == "" || c.A == 0 {
		return
	}
	size := f.Size
	if size <= 0 {
		size = ui.DefaultFont().Size
	}
	scale := size / float64(basicfont.Face7x13.Height)

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.target(), str, baseFace, op)
}

// DrawImage implements ui.Surface, scaling src into dst.
func (s *Surface) DrawImage(src image.Image, dst geom.Rect) {
	if src == nil || dst.IsEmpty() {
		return
	}
	tex, ok := s.textures[src]
	if !ok {
		tex = ebiten.NewImageFromImage(src)
		s.textures[src] = tex
	}
	b := tex.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Width/float64(b.Dx()), dst.Height/float64(b.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	s.target().DrawImage(tex, op)
}

// PushClip implements ui.Surface: subsequent drawing is confined to r,
// intersected with any enclosing clip.
func (s *Surface) PushClip(r geom.Rect) {
	cur := s.target()
	clip := image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom())).Intersect(cur.Bounds())
	sub := cur.SubImage(clip).(*ebiten.Image)
	s.stack = append(s.stack, sub)
}

// PopClip implements ui.Surface.
func (s *Surface) PopClip() {
	if len(s.stack) > 1 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// Measurer returns a ui.TextMeasurer whose metrics match this surface's
// text rendering.
func Measurer() ui.TextMeasurer {
	return ui.BasicMeasurer{}
}
