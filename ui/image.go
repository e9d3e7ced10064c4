package ui

import (
	"image"
	_ "image/jpeg" // registered for LoadImageFile
	_ "image/png"
	"os"

	"github.com/vireo-ui/vireo/geom"
)

// ImageScale selects how an image maps into its widget rect.
type ImageScale uint8

const (
	// ImageScaleStretch fills the rect, ignoring aspect ratio.
	ImageScaleStretch ImageScale = iota
	// ImageScaleFit letterboxes the image, preserving aspect ratio.
	ImageScaleFit
	// ImageScaleOriginal draws at the source size, anchored top-left.
	ImageScaleOriginal
)

// ImageWidget displays a decoded image. A widget whose load failed stays in
// the tree and paints a hatched placeholder instead of erroring, so a broken
// asset path never takes the UI down.
type ImageWidget struct {
	Base

	src        image.Image
	scale      ImageScale
	loadFailed bool
	style      Style
}

// ImageOptions configures an ImageWidget.
type ImageOptions struct {
	Rect  geom.Rect
	Image image.Image
	Scale ImageScale
	Style Style
}

// NewImage builds an image widget from an already-decoded image. A nil image
// is treated as a failed load.
func NewImage(opts ImageOptions) *ImageWidget {
	iw := &ImageWidget{
		src:        opts.Image,
		scale:      opts.Scale,
		loadFailed: opts.Image == nil,
		style:      opts.Style,
	}
	iw.bind(iw)
	iw.rect = opts.Rect
	return iw
}

// NewImageFromFile builds an image widget by decoding path. Decode failures
// produce a placeholder widget, not an error; check LoadFailed.
func NewImageFromFile(rect geom.Rect, path string, scale ImageScale, style Style) *ImageWidget {
	img, err := LoadImageFile(path)
	iw := NewImage(ImageOptions{Rect: rect, Image: img, Scale: scale, Style: style})
	iw.loadFailed = err != nil || img == nil
	return iw
}

// LoadImageFile decodes a PNG or JPEG from disk.
func LoadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Image returns the displayed image, nil if none.
func (iw *ImageWidget) Image() image.Image { return iw.src }

// SetImage replaces the displayed image and clears the failed flag when the
// image is non-nil.
func (iw *ImageWidget) SetImage(img image.Image) {
	iw.src = img
	iw.loadFailed = img == nil
}

// LoadFailed reports whether the widget is showing the placeholder.
func (iw *ImageWidget) LoadFailed() bool { return iw.loadFailed }

// Scale returns the scaling mode.
func (iw *ImageWidget) Scale() ImageScale { return iw.scale }

// SetScale replaces the scaling mode.
func (iw *ImageWidget) SetScale(s ImageScale) { iw.scale = s }

// targetRect maps the source bounds into the widget rect per the scale mode.
func (iw *ImageWidget) targetRect(abs geom.Rect) geom.Rect {
	if iw.src == nil {
		return abs
	}
	b := iw.src.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	switch iw.scale {
	case ImageScaleFit:
		if sw <= 0 || sh <= 0 {
			return abs
		}
		k := abs.Width / sw
		if abs.Height/sh < k {
			k = abs.Height / sh
		}
		w, h := sw*k, sh*k
		return geom.NewRect(abs.X+(abs.Width-w)/2, abs.Y+(abs.Height-h)/2, w, h)
	case ImageScaleOriginal:
		return geom.NewRect(abs.X, abs.Y, sw, sh)
	default:
		return abs
	}
}

// Draw paints the image, or a crossed placeholder box after a failed load.
func (iw *ImageWidget) Draw(s Surface, origin geom.Point) {
	abs := iw.rect.At(origin.Add(iw.rect.Origin()))
	if iw.loadFailed || iw.src == nil {
		s.FillRect(abs, RGB(60, 40, 40), 0)
		s.StrokeRect(abs, RGB(160, 60, 60), 1, 0)
		s.DrawText("×", abs.Center(), iw.style.Font, RGB(200, 120, 120))
	} else {
		s.DrawImage(iw.src, iw.targetRect(abs))
	}
	if iw.style.BorderWidth > 0 && !transparent(iw.style.BorderColor) {
		s.StrokeRect(abs, iw.style.BorderColor, iw.style.BorderWidth, iw.style.BorderRadius)
	}
	iw.DrawChildren(s, abs.Origin())
}
