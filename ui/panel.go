package ui

import "github.com/vireo-ui/vireo/geom"

// Panel is a styled rectangle used for grouping and backdrop. Children are
// positioned manually; a Panel imposes no layout of its own.
type Panel struct {
	Base

	style Style

	// blockInput makes the panel consume mouse events over it that no child
	// claimed, so widgets behind a modal backdrop stay inert.
	blockInput bool
}

// PanelOptions configures a Panel.
type PanelOptions struct {
	Rect  geom.Rect
	Style Style

	// BlockInput swallows unclaimed mouse events over the panel.
	BlockInput bool
}

// NewPanel builds a styled grouping rectangle.
func NewPanel(opts PanelOptions) *Panel {
	p := &Panel{style: opts.Style, blockInput: opts.BlockInput}
	p.bind(p)
	p.rect = opts.Rect
	return p
}

// Style returns the panel's visual style.
func (p *Panel) Style() Style { return p.style }

// SetStyle replaces the panel's visual style.
func (p *Panel) SetStyle(st Style) { p.style = st }

// HandleEvent offers the event to children first; a blocking panel then
// consumes any mouse event over its own rect.
func (p *Panel) HandleEvent(e Event) bool {
	if p.DispatchToChildren(e) {
		return true
	}
	if !p.blockInput || !p.visible || !p.enabled {
		return false
	}
	if me, ok := e.(*MouseEvent); ok {
		return p.AbsoluteRect().Contains(me.Pos)
	}
	return false
}

// Draw paints the panel frame, then the children.
func (p *Panel) Draw(s Surface, origin geom.Point) {
	abs := p.rect.At(origin.Add(p.rect.Origin()))
	if p.style.HasBackground && !transparent(p.style.Background) {
		s.FillRect(abs, p.style.Background, p.style.BorderRadius)
	}
	if p.style.BorderWidth > 0 && !transparent(p.style.BorderColor) {
		s.StrokeRect(abs, p.style.BorderColor, p.style.BorderWidth, p.style.BorderRadius)
	}
	p.DrawChildren(s, abs.Origin())
}
