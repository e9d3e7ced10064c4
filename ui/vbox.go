package ui

import "github.com/vireo-ui/vireo/geom"

// VBox stacks its children vertically in insertion order, separated by
// Spacing, inset by Padding, and aligned on the horizontal axis.
type VBox struct {
	Container

	spacing float64
	align   Align
}

// VBoxOptions configures a VBox.
type VBoxOptions struct {
	ContainerOptions
	Spacing float64
	Align   Align
}

// NewVBox builds a vertical stack container.
func NewVBox(opts VBoxOptions) *VBox {
	v := &VBox{spacing: opts.Spacing, align: opts.Align}
	v.initContainer(v, opts.ContainerOptions, v.layoutChildren)
	return v
}

// Spacing returns the gap between consecutive children.
func (v *VBox) Spacing() float64 { return v.spacing }

// SetSpacing replaces the gap and invalidates layout, the parent's
// included: under auto-sizing the spacing changes the stack's extent.
func (v *VBox) SetSpacing(s float64) {
	if v.spacing != s {
		v.spacing = s
		v.invalidateLayout()
	}
}

// Alignment returns the horizontal alignment applied to children.
func (v *VBox) Alignment() Align { return v.align }

// SetAlignment replaces the horizontal alignment and invalidates layout.
func (v *VBox) SetAlignment(a Align) {
	if v.align != a {
		v.align = a
		v.invalidateLayout()
	}
}

// layoutChildren positions each child top to bottom. When auto-sizing, the
// stack grows to spacing-separated child heights plus padding on both ends,
// and to the widest child plus padding.
func (v *VBox) layoutChildren() {
	children := v.children
	if v.autoSize {
		var h, maxW float64
		for i, ch := range children {
			r := ch.AsBase().Rect()
			if i > 0 {
				h += v.spacing
			}
			h += r.Height
			if r.Width > maxW {
				maxW = r.Width
			}
		}
		v.rect.Width = maxW + 2*v.padding
		v.rect.Height = h + 2*v.padding
	}

	inner := v.ContentRect()
	y := inner.Y
	for _, ch := range children {
		cb := ch.AsBase()
		r := cb.Rect()
		x := inner.X
		w := r.Width
		switch v.align {
		case AlignCenter:
			x = inner.X + (inner.Width-w)/2
		case AlignEnd:
			x = inner.X + inner.Width - w
		case AlignStretch:
			w = inner.Width
		}
		if w != r.Width {
			if rl, ok := ch.(relayouter); ok {
				rl.markLayoutDirty()
			}
		}
		cb.rect = geom.NewRect(x, y, w, r.Height)
		y += r.Height + v.spacing
	}
}
