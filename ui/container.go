package ui

import "github.com/vireo-ui/vireo/geom"

// Align selects cross-axis placement inside stacks and grid cells.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	// AlignStretch resizes the child to fill the cross axis.
	AlignStretch
)

// ContainerOptions configures the state shared by all layout containers.
type ContainerOptions struct {
	Rect    geom.Rect
	Style   Style
	Padding float64

	// AutoSize lets the container grow on its layout axis to fit its
	// children; an explicit size wins over auto-sizing.
	AutoSize bool

	// ConfineHits bounds hit-testing to the container's own rect: a point
	// outside the container can then never hit a descendant, even one whose
	// local rect overflows. Off by default; ScrollView always confines to
	// its viewport regardless of this flag.
	ConfineHits bool
}

// Container is the specialization of Base shared by VBox, HBox, Grid, and
// ScrollView: it caches child placement and recomputes it lazily. Layout is
// never resolved during child mutation itself — only before the next draw
// or hit-test that needs it — so callbacks that add or remove children
// mid-dispatch cannot trigger reentrant layout.
type Container struct {
	Base

	style       Style
	padding     float64
	autoSize    bool
	confineHits bool

	layoutDirty bool
	doLayout    func() // bound to the concrete container's layout pass
}

func (c *Container) initContainer(self Widget, opts ContainerOptions, layout func()) {
	c.bind(self)
	c.rect = opts.Rect
	c.style = opts.Style
	c.padding = opts.Padding
	c.autoSize = opts.AutoSize
	c.confineHits = opts.ConfineHits
	c.doLayout = layout
	c.layoutDirty = true
}

// markLayoutDirty implements relayouter.
func (c *Container) markLayoutDirty() { c.layoutDirty = true }

// LayoutDirty reports whether child placement is stale.
func (c *Container) LayoutDirty() bool { return c.layoutDirty }

// ensureLayout resolves child placement if it is stale. The dirty flag is
// cleared before the pass runs so a layout that resizes the container (auto
// sizing) does not recurse.
func (c *Container) ensureLayout() {
	if !c.layoutDirty || c.doLayout == nil {
		return
	}
	c.layoutDirty = false
	c.doLayout()
}

// Style returns the container's visual style.
func (c *Container) Style() Style { return c.style }

// SetStyle replaces the container's visual style.
func (c *Container) SetStyle(st Style) { c.style = st }

// Padding returns the inner padding.
func (c *Container) Padding() float64 { return c.padding }

// SetPadding replaces the inner padding and invalidates layout. The parent
// is invalidated too: under auto-sizing the padding changes this
// container's extent.
func (c *Container) SetPadding(p float64) {
	if c.padding != p {
		c.padding = p
		c.invalidateLayout()
	}
}

// ConfineHits reports whether hit-testing is bounded by the container rect.
func (c *Container) ConfineHits() bool { return c.confineHits }

// SetConfineHits toggles hit-test bounding.
func (c *Container) SetConfineHits(v bool) { c.confineHits = v }

// ContentRect returns the padded interior in local coordinates.
func (c *Container) ContentRect() geom.Rect {
	return geom.NewRect(0, 0, c.rect.Width, c.rect.Height).Inset(c.padding)
}

// WidgetAt resolves layout first so hit-testing never sees stale child
// positions, then applies the confinement policy.
func (c *Container) WidgetAt(p geom.Point) Widget {
	c.ensureLayout()
	if c.confineHits && !c.rect.Contains(p) {
		return nil
	}
	return c.Base.WidgetAt(p)
}

// HandleEvent resolves layout before offering the event to children.
func (c *Container) HandleEvent(e Event) bool {
	c.ensureLayout()
	return c.DispatchToChildren(e)
}

// Draw paints the container background and border, then the children.
func (c *Container) Draw(s Surface, origin geom.Point) {
	c.ensureLayout()
	abs := c.rect.At(origin.Add(c.rect.Origin()))
	c.drawFrame(s, abs)
	c.DrawChildren(s, abs.Origin())
}

// drawFrame paints the background fill and border stroke, if styled.
func (c *Container) drawFrame(s Surface, abs geom.Rect) {
	if c.style.HasBackground && !transparent(c.style.Background) {
		s.FillRect(abs, c.style.Background, c.style.BorderRadius)
	}
	if c.style.BorderWidth > 0 && !transparent(c.style.BorderColor) {
		s.StrokeRect(abs, c.style.BorderColor, c.style.BorderWidth, c.style.BorderRadius)
	}
}
