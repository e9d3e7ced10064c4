package ui

import "github.com/vireo-ui/vireo/geom"

// overlayDrawer is satisfied by widgets that paint a floating layer above
// the whole tree (an open Dropdown's option list).
type overlayDrawer interface {
	DrawOverlay(s Surface)
}

// Manager owns the widget roots and drives the whole tree: it routes input
// events, tracks the hovered and focused widgets, advances time-based state,
// and paints. One Manager per window; everything runs on the thread that
// calls it.
//
// At most one widget holds keyboard focus per Manager; transferring focus
// blurs the previous holder before the new one's OnFocus fires.
type Manager struct {
	roots []Widget

	hovered  Widget
	focused  Widget
	captured Widget // consumer of the in-flight press, until release

	// overlays receive events before the tree and paint after it, newest
	// first for events and last for painting.
	overlays []Widget

	settings Settings
	measurer TextMeasurer

	width, height float64
}

// NewManager builds a Manager with the given logical screen size and
// default settings.
func NewManager(width, height float64) *Manager {
	return &Manager{
		settings: DefaultSettings(),
		measurer: BasicMeasurer{},
		width:    width,
		height:   height,
	}
}

// Settings returns the Manager's tunables.
func (m *Manager) Settings() Settings { return m.settings }

// SetSettings replaces the tunables. Invalid settings are rejected.
func (m *Manager) SetSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	m.settings = s
	return nil
}

// SetTextMeasurer installs the measurer widgets size text with; backends
// install one matching their renderer. A nil measurer restores the
// built-in one.
func (m *Manager) SetTextMeasurer(tm TextMeasurer) {
	if tm == nil {
		tm = BasicMeasurer{}
	}
	m.measurer = tm
}

// Size returns the logical screen size.
func (m *Manager) Size() (width, height float64) { return m.width, m.height }

// ============================================================================
// Roots
// ============================================================================

// AddWidget appends a root widget. Roots are painted in insertion order and
// hit-tested in reverse, like siblings anywhere else in the tree.
func (m *Manager) AddWidget(w Widget) {
	b := w.AsBase()
	if b.parent != nil {
		b.RemoveFromParent()
	}
	m.roots = append(m.roots, w)
	setManager(w, m)
}

// RemoveWidget detaches a root widget and its subtree.
func (m *Manager) RemoveWidget(w Widget) bool {
	for i, r := range m.roots {
		if r == w {
			m.roots = append(m.roots[:i], m.roots[i+1:]...)
			m.widgetDetached(w)
			setManager(w, nil)
			return true
		}
	}
	return false
}

// Roots returns a copy of the root list in z order.
func (m *Manager) Roots() []Widget {
	out := make([]Widget, len(m.roots))
	copy(out, m.roots)
	return out
}

// Clear detaches every root.
func (m *Manager) Clear() {
	for _, r := range m.Roots() {
		m.RemoveWidget(r)
	}
}

// ============================================================================
// Focus
// ============================================================================

// Focused returns the widget holding keyboard focus, nil for none.
func (m *Manager) Focused() Widget { return m.focused }

// ClearFocus blurs the focused widget, if any.
func (m *Manager) ClearFocus() { m.setFocus(nil) }

// setFocus transfers focus: the previous holder is blurred (flag cleared,
// OnBlur fired) before the new holder's OnFocus fires.
func (m *Manager) setFocus(w Widget) {
	if m.focused == w {
		return
	}
	if prev := m.focused; prev != nil {
		pb := prev.AsBase()
		pb.focused = false
		m.focused = nil
		if pb.onBlur != nil {
			pb.onBlur()
		}
	}
	if w == nil {
		return
	}
	b := w.AsBase()
	b.focused = true
	m.focused = w
	if b.onFocus != nil {
		b.onFocus()
	}
}

// ============================================================================
// Hover
// ============================================================================

// Hovered returns the deepest widget under the pointer, nil for none.
func (m *Manager) Hovered() Widget { return m.hovered }

// updateHover recomputes the hovered widget for a pointer position: the old
// widget's OnHoverExit fires before the new widget's OnHoverEnter.
func (m *Manager) updateHover(p geom.Point) {
	next := m.WidgetAt(p)
	if next == m.hovered {
		return
	}
	if prev := m.hovered; prev != nil {
		pb := prev.AsBase()
		pb.hovered = false
		if pb.onHoverExit != nil {
			pb.onHoverExit()
		}
	}
	m.hovered = next
	if next != nil {
		nb := next.AsBase()
		nb.hovered = true
		if nb.onHoverEnter != nil {
			nb.onHoverEnter()
		}
	}
}

// WidgetAt returns the deepest visible, enabled widget at the screen point
// p: overlays first, then roots topmost-first.
func (m *Manager) WidgetAt(p geom.Point) Widget {
	for i := len(m.overlays) - 1; i >= 0; i-- {
		if w := m.overlays[i].WidgetAt(m.toParentSpace(m.overlays[i], p)); w != nil {
			return w
		}
	}
	for i := len(m.roots) - 1; i >= 0; i-- {
		if w := m.roots[i].WidgetAt(p); w != nil {
			return w
		}
	}
	return nil
}

// toParentSpace converts a screen point into w's parent's coordinate space,
// which is what WidgetAt expects.
func (m *Manager) toParentSpace(w Widget, p geom.Point) geom.Point {
	b := w.AsBase()
	if b.parent == nil {
		return p
	}
	return p.Sub(b.parent.ContentOrigin())
}

// ============================================================================
// Dispatch
// ============================================================================

// DispatchEvent routes one input event and reports whether any widget
// consumed it. Mouse moves recompute hover first. A widget that consumes a
// press captures the pointer: moves and the release go straight to it, so
// drags keep working after the pointer leaves the widget.
func (m *Manager) DispatchEvent(e Event) bool {
	if me, ok := e.(*MouseEvent); ok {
		switch me.Kind {
		case EventMouseMove:
			m.updateHover(me.Pos)
			if m.captured != nil {
				return m.captured.HandleEvent(e)
			}
		case EventMouseUp:
			if c := m.captured; c != nil {
				m.captured = nil
				return c.HandleEvent(e)
			}
		case EventMouseDown:
			if w := m.dispatch(e); w != nil {
				m.captured = w
				return true
			}
			// A press on empty space clears focus, like clicking the
			// desktop behind a form.
			m.setFocus(nil)
			return false
		}
		return m.dispatch(e) != nil
	}

	if re, ok := e.(*ResizeEvent); ok {
		m.width, m.height = re.Width, re.Height
		return true
	}

	// Keyboard events go to the focus holder first.
	if m.focused != nil && m.focused.HandleEvent(e) {
		return true
	}
	return m.dispatch(e) != nil
}

// dispatch offers e to overlays newest-first, then roots topmost-first, and
// returns the consuming widget, nil if none consumed it.
func (m *Manager) dispatch(e Event) Widget {
	overlays := append([]Widget(nil), m.overlays...)
	for i := len(overlays) - 1; i >= 0; i-- {
		if overlays[i].HandleEvent(e) {
			return overlays[i]
		}
	}
	roots := m.Roots()
	for i := len(roots) - 1; i >= 0; i-- {
		r := roots[i]
		b := r.AsBase()
		if b.manager != m || !b.visible || !b.enabled {
			continue
		}
		if r.HandleEvent(e) {
			return r
		}
	}
	return nil
}

// ============================================================================
// Frame
// ============================================================================

// Update advances time-based widget state. dt is in seconds.
func (m *Manager) Update(dt float64) {
	for _, r := range m.Roots() {
		if r.AsBase().manager == m {
			r.Update(dt)
		}
	}
}

// Draw paints roots in insertion order, then the overlay layers above
// everything.
func (m *Manager) Draw(s Surface) {
	for _, r := range m.roots {
		if r.AsBase().visible {
			r.Draw(s, geom.Pt(0, 0))
		}
	}
	for _, o := range m.overlays {
		if od, ok := o.(overlayDrawer); ok {
			od.DrawOverlay(s)
		}
	}
}

// ============================================================================
// Overlays
// ============================================================================

// pushOverlay registers w as a floating layer. Idempotent.
func (m *Manager) pushOverlay(w Widget) {
	for _, o := range m.overlays {
		if o == w {
			return
		}
	}
	m.overlays = append(m.overlays, w)
}

// removeOverlay unregisters w.
func (m *Manager) removeOverlay(w Widget) {
	for i, o := range m.overlays {
		if o == w {
			m.overlays = append(m.overlays[:i], m.overlays[i+1:]...)
			return
		}
	}
}

// ============================================================================
// Tree bookkeeping
// ============================================================================

// widgetDetached clears Manager references into a subtree that just left
// the tree; stale hover, focus, capture, or overlay entries would otherwise
// keep a detached widget live.
func (m *Manager) widgetDetached(w Widget) {
	if m.hovered != nil && inSubtree(w, m.hovered) {
		m.hovered.AsBase().hovered = false
		m.hovered = nil
	}
	if m.focused != nil && inSubtree(w, m.focused) {
		m.setFocus(nil)
	}
	if m.captured != nil && inSubtree(w, m.captured) {
		m.captured = nil
	}
	var keep []Widget
	for _, o := range m.overlays {
		if !inSubtree(w, o) {
			keep = append(keep, o)
		}
	}
	m.overlays = keep
}

// widgetDisabled drops hover, focus, and capture held inside a subtree that
// was just disabled or hidden.
func (m *Manager) widgetDisabled(w Widget) {
	m.widgetDetached(w)
}

// inSubtree reports whether target is root or one of its descendants.
func inSubtree(root, target Widget) bool {
	if root == target {
		return true
	}
	for _, c := range root.AsBase().children {
		if inSubtree(c, target) {
			return true
		}
	}
	return false
}
