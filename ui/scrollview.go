package ui

import "github.com/vireo-ui/vireo/geom"

// ScrollView shows a window onto content larger than itself. Children are
// positioned in content coordinates; the view shifts their coordinate space
// by the scroll offset, clips painting to the viewport, and culls children
// scrolled fully out of it. Unlike plain containers, hit-testing is always
// confined: a point outside the viewport never reaches a child.
type ScrollView struct {
	Container

	offset      geom.Point
	contentSize geom.Size // zero means derive from child extents

	showScrollbar bool
	draggingThumb bool
	dragStartY    float64
	dragStartOff  float64
}

// ScrollViewOptions configures a ScrollView.
type ScrollViewOptions struct {
	Rect    geom.Rect
	Style   Style
	Padding float64

	// ContentSize fixes the scrollable extent; a zero size derives it from
	// the union of child rects each layout pass.
	ContentSize geom.Size

	// HideScrollbar suppresses the vertical scrollbar.
	HideScrollbar bool
}

// NewScrollView builds a scrolling viewport.
func NewScrollView(opts ScrollViewOptions) *ScrollView {
	sv := &ScrollView{
		contentSize:   opts.ContentSize,
		showScrollbar: !opts.HideScrollbar,
	}
	sv.initContainer(sv, ContainerOptions{
		Rect:        opts.Rect,
		Style:       opts.Style,
		Padding:     opts.Padding,
		ConfineHits: true,
	}, func() {})
	return sv
}

// ============================================================================
// Scrolling
// ============================================================================

// Offset returns the current scroll offset.
func (sv *ScrollView) Offset() geom.Point { return sv.offset }

// ScrollTo sets the scroll offset, clamped to [0, content − viewport] on
// each axis (zero when the content fits).
func (sv *ScrollView) ScrollTo(p geom.Point) {
	maxX, maxY := sv.maxScroll()
	sv.offset = geom.Pt(geom.Clamp(p.X, 0, maxX), geom.Clamp(p.Y, 0, maxY))
}

// ScrollBy shifts the scroll offset by d, clamped.
func (sv *ScrollView) ScrollBy(d geom.Point) {
	sv.ScrollTo(sv.offset.Add(d))
}

// ContentSize returns the scrollable extent: the explicit size if one was
// set, otherwise the union of child rects.
func (sv *ScrollView) ContentSize() geom.Size {
	if sv.contentSize.Width > 0 || sv.contentSize.Height > 0 {
		return sv.contentSize
	}
	var w, h float64
	for _, ch := range sv.children {
		r := ch.AsBase().Rect()
		if r.Right() > w {
			w = r.Right()
		}
		if r.Bottom() > h {
			h = r.Bottom()
		}
	}
	return geom.Size{Width: w, Height: h}
}

// SetContentSize fixes the scrollable extent and re-clamps the offset.
func (sv *ScrollView) SetContentSize(s geom.Size) {
	sv.contentSize = s
	sv.ScrollTo(sv.offset)
}

// Viewport returns the visible content window in local coordinates.
func (sv *ScrollView) Viewport() geom.Rect {
	return sv.ContentRect()
}

func (sv *ScrollView) maxScroll() (x, y float64) {
	vp := sv.Viewport()
	cs := sv.ContentSize()
	x = cs.Width - vp.Width
	if x < 0 {
		x = 0
	}
	y = cs.Height - vp.Height
	if y < 0 {
		y = 0
	}
	return x, y
}

// ContentOrigin shifts the children's coordinate space by the padding and
// the scroll offset.
func (sv *ScrollView) ContentOrigin() geom.Point {
	return sv.AbsolutePosition().Add(geom.Pt(sv.padding-sv.offset.X, sv.padding-sv.offset.Y))
}

// ============================================================================
// Hit-testing
// ============================================================================

// WidgetAt confines lookup to the viewport: a child scrolled out of view, or
// a point outside the view's rect, never hits. The scrollbar region resolves
// to the view itself.
func (sv *ScrollView) WidgetAt(p geom.Point) Widget {
	if !sv.visible || !sv.enabled || !sv.rect.Contains(p) {
		return nil
	}
	local := p.Sub(sv.rect.Origin())
	if sv.Viewport().Contains(local) {
		// Translate into content space for the children.
		cp := local.Sub(geom.Pt(sv.padding-sv.offset.X, sv.padding-sv.offset.Y))
		for i := len(sv.children) - 1; i >= 0; i-- {
			if w := sv.children[i].WidgetAt(cp); w != nil {
				return w
			}
		}
	}
	return sv.self
}

// ============================================================================
// Events
// ============================================================================

// HandleEvent drives thumb dragging, offers mouse events inside the viewport
// to children, and scrolls on wheel input anywhere over the view.
func (sv *ScrollView) HandleEvent(e Event) bool {
	if !sv.visible || !sv.enabled {
		return false
	}

	me, isMouse := e.(*MouseEvent)
	if sv.draggingThumb && isMouse {
		return sv.handleThumbDrag(me)
	}

	if isMouse {
		abs := sv.AbsoluteRect()
		if !abs.Contains(me.Pos) {
			return false
		}
		if me.Kind == EventMouseWheel {
			return sv.handleWheel(me)
		}
		if me.Kind == EventMouseDown && sv.scrollbarVisible() {
			if sv.thumbRect().Translate(abs.Origin()).Contains(me.Pos) {
				sv.draggingThumb = true
				sv.dragStartY = me.Pos.Y
				sv.dragStartOff = sv.offset.Y
				return true
			}
		}
		if !sv.Viewport().Translate(abs.Origin()).Contains(me.Pos) {
			// Padding band and scrollbar track: swallow so nothing behind
			// the view reacts.
			return true
		}
		return sv.DispatchToChildren(e)
	}

	return sv.DispatchToChildren(e)
}

func (sv *ScrollView) handleWheel(me *MouseEvent) bool {
	step := sv.settings().ScrollStep
	sv.ScrollBy(geom.Pt(-me.Delta.X*step, -me.Delta.Y*step))
	maxX, maxY := sv.maxScroll()
	// Consume whenever the view is scrollable, even at the ends, so wheel
	// input over a full view never leaks to widgets behind it.
	return maxX > 0 || maxY > 0
}

func (sv *ScrollView) handleThumbDrag(me *MouseEvent) bool {
	switch me.Kind {
	case EventMouseMove:
		track := sv.trackRect()
		thumb := sv.thumbRect()
		span := track.Height - thumb.Height
		if span > 0 {
			_, maxY := sv.maxScroll()
			dy := me.Pos.Y - sv.dragStartY
			sv.ScrollTo(geom.Pt(sv.offset.X, sv.dragStartOff+dy*maxY/span))
		}
		return true
	case EventMouseUp:
		sv.draggingThumb = false
		return true
	}
	return true
}

// ============================================================================
// Scrollbar geometry (local coordinates)
// ============================================================================

func (sv *ScrollView) scrollbarVisible() bool {
	if !sv.showScrollbar {
		return false
	}
	_, maxY := sv.maxScroll()
	return maxY > 0
}

func (sv *ScrollView) trackRect() geom.Rect {
	w := sv.settings().ScrollbarWidth
	return geom.NewRect(sv.rect.Width-w, 0, w, sv.rect.Height)
}

func (sv *ScrollView) thumbRect() geom.Rect {
	track := sv.trackRect()
	vp := sv.Viewport()
	cs := sv.ContentSize()
	if cs.Height <= 0 {
		return track
	}
	h := track.Height * vp.Height / cs.Height
	if min := sv.settings().ScrollbarMinThumb; h < min {
		h = min
	}
	if h > track.Height {
		h = track.Height
	}
	_, maxY := sv.maxScroll()
	var y float64
	if maxY > 0 {
		y = (sv.offset.Y / maxY) * (track.Height - h)
	}
	return geom.NewRect(track.X, y, track.Width, h)
}

// ============================================================================
// Drawing
// ============================================================================

// Draw clips painting to the viewport, culls children fully outside it, and
// overlays the scrollbar.
func (sv *ScrollView) Draw(s Surface, origin geom.Point) {
	abs := sv.rect.At(origin.Add(sv.rect.Origin()))
	sv.drawFrame(s, abs)

	vp := sv.Viewport().Translate(abs.Origin())
	contentOrigin := abs.Origin().Add(geom.Pt(sv.padding-sv.offset.X, sv.padding-sv.offset.Y))

	s.PushClip(vp)
	for _, ch := range sv.children {
		cb := ch.AsBase()
		if !cb.visible {
			continue
		}
		if !cb.Rect().At(contentOrigin.Add(cb.Rect().Origin())).Overlaps(vp) {
			continue
		}
		ch.Draw(s, contentOrigin)
	}
	s.PopClip()

	if sv.scrollbarVisible() {
		radius := sv.settings().ScrollbarWidth / 2
		s.FillRect(sv.trackRect().Translate(abs.Origin()), sv.style.ScrollbarTrack, radius)
		s.FillRect(sv.thumbRect().Translate(abs.Origin()), sv.style.ScrollbarThumb, radius)
	}
}
