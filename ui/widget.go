// Package ui is a retained-mode widget framework: a tree of stateful visual
// components composed through layout containers and driven once per frame by
// an external event/render loop.
//
// The host loop feeds raw input events to a Manager, which dispatches them
// top-down through the tree with hit-testing; a widget may consume an event
// or mutate its own state and fire a callback. Manager.Update advances
// time-based state and Manager.Draw paints the tree onto an abstract
// Surface. Everything is single-threaded and synchronous: the widget tree is
// owned by the thread driving the Manager.
package ui

import "github.com/vireo-ui/vireo/geom"

// Widget is the capability interface every node in the tree satisfies.
// Common state lives in one concrete record, Base; concrete widgets embed
// Base and override the behavior that differs (layout for containers, draw
// and input for leaves).
type Widget interface {
	// AsBase returns the widget's common state record.
	AsBase() *Base

	// Draw paints the widget and its children. origin is the absolute
	// position of the parent's content box; the widget paints at
	// origin + its local rect origin. Draw is only called on visible
	// widgets.
	Draw(s Surface, origin geom.Point)

	// Update advances time-based state. dt is in seconds.
	Update(dt float64)

	// HandleEvent processes an input event and reports whether it was
	// consumed. Containers offer the event to children topmost-first and
	// stop at the first consumer before acting themselves.
	HandleEvent(e Event) bool

	// WidgetAt returns the deepest visible, enabled widget at p, or nil.
	// p is in the widget's parent's coordinate space. Children are tested
	// in reverse insertion order, so the most recently added sibling wins
	// ties.
	WidgetAt(p geom.Point) Widget

	// ContentOrigin returns the absolute origin of this widget's children's
	// coordinate space. ScrollView shifts it by its scroll offset.
	ContentOrigin() geom.Point
}

// relayouter is satisfied by containers that cache child layout.
type relayouter interface {
	markLayoutDirty()
}

// Base holds the state shared by all widgets: geometry, hierarchy, state
// flags, and the framework-level callbacks. Children are owned exclusively
// by their parent; the parent reference is a non-owning back-pointer used
// for coordinate resolution and lookup only.
type Base struct {
	self Widget // the outer concrete widget; set by bind

	rect     geom.Rect
	parent   Widget
	children []Widget
	manager  *Manager

	visible   bool
	enabled   bool
	focused   bool
	hovered   bool
	pressed   bool
	focusable bool

	onHoverEnter func()
	onHoverExit  func()
	onFocus      func()
	onBlur       func()
}

// bind wires the embedded Base back to its outer widget. Every constructor
// calls it before the widget is used.
func (b *Base) bind(self Widget) {
	b.self = self
	b.visible = true
	b.enabled = true
}

// AsBase implements Widget for every type embedding this record.
func (b *Base) AsBase() *Base { return b }

// ============================================================================
// Geometry
// ============================================================================

// Rect returns the widget's local (parent-relative) rectangle.
func (b *Base) Rect() geom.Rect { return b.rect }

// SetRect replaces the widget's local rectangle. Resizing invalidates the
// widget's own layout cache (if it is a container) and the parent's, since
// stack and grid placement depend on child sizes.
func (b *Base) SetRect(r geom.Rect) {
	if b.rect == r {
		return
	}
	resized := r.Size() != b.rect.Size()
	b.rect = r
	if resized {
		b.invalidateLayout()
	} else {
		b.invalidateParentLayout()
	}
}

// SetPosition moves the widget within its parent.
func (b *Base) SetPosition(p geom.Point) {
	b.SetRect(b.rect.At(p))
}

// SetSize resizes the widget.
func (b *Base) SetSize(s geom.Size) {
	b.SetRect(geom.NewRect(b.rect.X, b.rect.Y, s.Width, s.Height))
}

// AbsolutePosition resolves the widget's absolute origin by walking the
// ownership chain: parent content origin plus local origin, recursively.
// A detached widget returns its local origin — an unattached subtree is a
// normal transient state during construction, not an error.
func (b *Base) AbsolutePosition() geom.Point {
	if b.parent == nil {
		return b.rect.Origin()
	}
	return b.parent.ContentOrigin().Add(b.rect.Origin())
}

// AbsoluteRect returns the widget's rectangle in absolute coordinates.
func (b *Base) AbsoluteRect() geom.Rect {
	return b.rect.At(b.AbsolutePosition())
}

// ContentOrigin implements Widget. The default children's space starts at
// the widget's own absolute origin.
func (b *Base) ContentOrigin() geom.Point {
	return b.AbsolutePosition()
}

// ============================================================================
// Hierarchy
// ============================================================================

// Parent returns the owning parent, or nil for a root or detached widget.
func (b *Base) Parent() Widget { return b.parent }

// Children returns a copy of the child list in insertion (z) order.
func (b *Base) Children() []Widget {
	out := make([]Widget, len(b.children))
	copy(out, b.children)
	return out
}

// ChildCount returns the number of children without copying.
func (b *Base) ChildCount() int { return len(b.children) }

// AddChild appends child, transferring ownership to this widget. The child
// is painted and dispatched after (above) existing siblings.
func (b *Base) AddChild(child Widget) {
	cb := child.AsBase()
	if cb.parent != nil {
		cb.parent.AsBase().RemoveChild(child)
	}
	cb.parent = b.self
	b.children = append(b.children, child)
	setManager(child, b.manager)
	b.invalidateLayout()
}

// RemoveChild detaches child and its subtree. The subtree keeps its
// internal structure but is no longer painted or dispatched to.
func (b *Base) RemoveChild(child Widget) bool {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			cb := child.AsBase()
			cb.parent = nil
			if m := cb.manager; m != nil {
				m.widgetDetached(child)
			}
			setManager(child, nil)
			b.invalidateLayout()
			return true
		}
	}
	return false
}

// RemoveFromParent detaches the widget from its owner, if any.
func (b *Base) RemoveFromParent() {
	if b.parent != nil {
		b.parent.AsBase().RemoveChild(b.self)
	}
}

// RemoveAllChildren detaches every child.
func (b *Base) RemoveAllChildren() {
	for _, c := range b.Children() {
		b.RemoveChild(c)
	}
}

// Manager returns the Manager this widget is attached to, or nil while
// detached.
func (b *Base) Manager() *Manager { return b.manager }

// setManager propagates manager attachment through a subtree.
func setManager(w Widget, m *Manager) {
	b := w.AsBase()
	b.manager = m
	for _, c := range b.children {
		setManager(c, m)
	}
}

// invalidateLayout marks this widget's layout cache stale (if it caches
// one) and the parent's, since container sizing depends on child sizes.
func (b *Base) invalidateLayout() {
	if l, ok := b.self.(relayouter); ok {
		l.markLayoutDirty()
	}
	b.invalidateParentLayout()
}

func (b *Base) invalidateParentLayout() {
	if b.parent == nil {
		return
	}
	if l, ok := b.parent.(relayouter); ok {
		l.markLayoutDirty()
	}
}

// ============================================================================
// State Flags
// ============================================================================

// Visible reports whether the widget is painted and hit-testable.
func (b *Base) Visible() bool { return b.visible }

// SetVisible shows or hides the widget and its subtree. Hiding drops any
// hover, focus, capture, or overlay state held inside the subtree.
func (b *Base) SetVisible(v bool) {
	b.visible = v
	if !v && b.manager != nil {
		b.manager.widgetDisabled(b.self)
	}
}

// Enabled reports whether the widget receives events.
func (b *Base) Enabled() bool { return b.enabled }

// SetEnabled enables or disables event handling. A disabled widget still
// paints (typically grayed) but consumes nothing.
func (b *Base) SetEnabled(v bool) {
	b.enabled = v
	if !v && b.manager != nil {
		b.manager.widgetDisabled(b.self)
	}
}

// Focused reports whether this widget holds the keyboard focus.
func (b *Base) Focused() bool { return b.focused }

// Hovered reports whether the pointer is over this widget.
func (b *Base) Hovered() bool { return b.hovered }

// Pressed reports whether a pointer button went down on this widget and has
// not been released yet.
func (b *Base) Pressed() bool { return b.pressed }

// Focusable reports whether the widget can take keyboard focus.
func (b *Base) Focusable() bool { return b.focusable }

// SetFocusable marks the widget as able to take keyboard focus.
func (b *Base) SetFocusable(v bool) { b.focusable = v }

// ============================================================================
// Focus
// ============================================================================

// Focus requests keyboard focus. No-op if the widget is not focusable, not
// attached to a Manager, or already focused. Transferring focus blurs the
// previous holder (firing its OnBlur) before this widget's OnFocus fires.
func (b *Base) Focus() {
	if !b.focusable || b.manager == nil || b.focused {
		return
	}
	b.manager.setFocus(b.self)
}

// Blur releases keyboard focus if this widget holds it.
func (b *Base) Blur() {
	if !b.focused || b.manager == nil {
		return
	}
	b.manager.setFocus(nil)
}

// ============================================================================
// Callbacks
// ============================================================================

// OnHoverEnter sets the callback fired after the pointer enters the widget.
func (b *Base) OnHoverEnter(fn func()) { b.onHoverEnter = fn }

// OnHoverExit sets the callback fired after the pointer leaves the widget.
func (b *Base) OnHoverExit(fn func()) { b.onHoverExit = fn }

// OnFocus sets the callback fired after the widget gains keyboard focus.
func (b *Base) OnFocus(fn func()) { b.onFocus = fn }

// OnBlur sets the callback fired after the widget loses keyboard focus.
func (b *Base) OnBlur(fn func()) { b.onBlur = fn }

// ============================================================================
// Default Tree Behavior
// ============================================================================

// HitTest reports whether p (in the parent's coordinate space) hits this
// widget or any descendant.
func (b *Base) HitTest(p geom.Point) bool {
	return b.self.WidgetAt(p) != nil
}

// WidgetAt implements the default lookup: children topmost-first, then the
// widget's own rect. Children are deliberately tested regardless of whether
// p falls inside this widget's rect — plain widgets do not confine child
// hits; see Container.ConfineHits and ScrollView for the bounding variants.
func (b *Base) WidgetAt(p geom.Point) Widget {
	if !b.visible || !b.enabled {
		return nil
	}
	cp := p.Sub(b.rect.Origin())
	for i := len(b.children) - 1; i >= 0; i-- {
		if w := b.children[i].WidgetAt(cp); w != nil {
			return w
		}
	}
	if b.rect.Contains(p) {
		return b.self
	}
	return nil
}

// HandleEvent implements the default dispatch policy: offer the event to
// children topmost-first and stop at the first consumer. The base record
// itself consumes nothing; leaf widgets override and handle the event after
// their children decline.
func (b *Base) HandleEvent(e Event) bool {
	return b.DispatchToChildren(e)
}

// DispatchToChildren walks the children in reverse insertion order. The
// child list is snapshotted and each child's liveness re-checked before the
// call, so a callback that removes widgets mid-dispatch cannot corrupt the
// walk.
func (b *Base) DispatchToChildren(e Event) bool {
	if !b.visible || !b.enabled || len(b.children) == 0 {
		return false
	}
	snapshot := b.Children()
	for i := len(snapshot) - 1; i >= 0; i-- {
		child := snapshot[i]
		cb := child.AsBase()
		if cb.parent != b.self || !cb.visible || !cb.enabled {
			continue
		}
		if child.HandleEvent(e) {
			return true
		}
	}
	return false
}

// Update advances children depth-first. Widgets with time-based state
// override and call this after their own bookkeeping.
func (b *Base) Update(dt float64) {
	for _, child := range b.Children() {
		if child.AsBase().parent == b.self {
			child.Update(dt)
		}
	}
}

// Draw paints the children above this widget's own background. The base
// record has no visual of its own.
func (b *Base) Draw(s Surface, origin geom.Point) {
	b.DrawChildren(s, origin.Add(b.rect.Origin()))
}

// DrawChildren paints visible children in insertion order at the given
// absolute content origin.
func (b *Base) DrawChildren(s Surface, contentOrigin geom.Point) {
	for _, child := range b.children {
		if child.AsBase().visible {
			child.Draw(s, contentOrigin)
		}
	}
}

// settings returns the Manager's tunables, or defaults while detached.
func (b *Base) settings() Settings {
	if b.manager != nil {
		return b.manager.settings
	}
	return DefaultSettings()
}

// measurer returns the Manager's text measurer, or the deterministic
// built-in one while detached.
func (b *Base) measurer() TextMeasurer {
	if b.manager != nil && b.manager.measurer != nil {
		return b.manager.measurer
	}
	return BasicMeasurer{}
}
