package ui

import "github.com/vireo-ui/vireo/geom"

// HBox lays its children out left to right in insertion order, separated by
// Spacing, inset by Padding, and aligned on the vertical axis.
type HBox struct {
	Container

	spacing float64
	align   Align
}

// HBoxOptions configures an HBox.
type HBoxOptions struct {
	ContainerOptions
	Spacing float64
	Align   Align
}

// NewHBox builds a horizontal stack container.
func NewHBox(opts HBoxOptions) *HBox {
	h := &HBox{spacing: opts.Spacing, align: opts.Align}
	h.initContainer(h, opts.ContainerOptions, h.layoutChildren)
	return h
}

// Spacing returns the gap between consecutive children.
func (h *HBox) Spacing() float64 { return h.spacing }

// SetSpacing replaces the gap and invalidates layout, the parent's
// included: under auto-sizing the spacing changes the stack's extent.
func (h *HBox) SetSpacing(s float64) {
	if h.spacing != s {
		h.spacing = s
		h.invalidateLayout()
	}
}

// Alignment returns the vertical alignment applied to children.
func (h *HBox) Alignment() Align { return h.align }

// SetAlignment replaces the vertical alignment and invalidates layout.
func (h *HBox) SetAlignment(a Align) {
	if h.align != a {
		h.align = a
		h.invalidateLayout()
	}
}

func (h *HBox) layoutChildren() {
	children := h.children
	if h.autoSize {
		var w, maxH float64
		for i, ch := range children {
			r := ch.AsBase().Rect()
			if i > 0 {
				w += h.spacing
			}
			w += r.Width
			if r.Height > maxH {
				maxH = r.Height
			}
		}
		h.rect.Width = w + 2*h.padding
		h.rect.Height = maxH + 2*h.padding
	}

	inner := h.ContentRect()
	x := inner.X
	for _, ch := range children {
		cb := ch.AsBase()
		r := cb.Rect()
		y := inner.Y
		hh := r.Height
		switch h.align {
		case AlignCenter:
			y = inner.Y + (inner.Height-hh)/2
		case AlignEnd:
			y = inner.Y + inner.Height - hh
		case AlignStretch:
			hh = inner.Height
		}
		if hh != r.Height {
			if rl, ok := ch.(relayouter); ok {
				rl.markLayoutDirty()
			}
		}
		cb.rect = geom.NewRect(x, y, r.Width, hh)
		x += r.Width + h.spacing
	}
}
