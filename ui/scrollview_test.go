package ui

import (
	"testing"

	"github.com/vireo-ui/vireo/geom"
)

func testScrollView() *ScrollView {
	sv := NewScrollView(ScrollViewOptions{
		Rect:        geom.NewRect(100, 100, 200, 150),
		ContentSize: geom.Size{Width: 200, Height: 600},
	})
	return sv
}

func TestScrollClamping(t *testing.T) {
	sv := testScrollView()

	tests := []struct {
		name string
		to   geom.Point
		want geom.Point
	}{
		{"negative clamps to zero", geom.Pt(0, -50), geom.Pt(0, 0)},
		{"within range", geom.Pt(0, 200), geom.Pt(0, 200)},
		{"past bottom clamps to max", geom.Pt(0, 9999), geom.Pt(0, 450)},
		{"x clamps when content fits", geom.Pt(50, 0), geom.Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sv.ScrollTo(tt.to)
			if sv.Offset() != tt.want {
				t.Errorf("Offset() = %v, want %v", sv.Offset(), tt.want)
			}
		})
	}
}

func TestScrollWhenContentFits(t *testing.T) {
	sv := NewScrollView(ScrollViewOptions{
		Rect:        geom.NewRect(0, 0, 200, 300),
		ContentSize: geom.Size{Width: 100, Height: 100},
	})
	sv.ScrollBy(geom.Pt(10, 10))
	if sv.Offset() != geom.Pt(0, 0) {
		t.Errorf("Offset() = %v, want (0,0): content smaller than viewport never scrolls", sv.Offset())
	}
}

func TestScrollShiftsContentOrigin(t *testing.T) {
	sv := testScrollView()
	child := NewPanel(PanelOptions{Rect: geom.NewRect(0, 480, 200, 40), Style: Style{HasBackground: true}})
	sv.AddChild(child)

	sv.ScrollTo(geom.Pt(0, 100))
	// Absolute = view origin + child local − scroll offset.
	if got, want := child.AbsolutePosition(), geom.Pt(100, 480); got != want {
		t.Errorf("AbsolutePosition() = %v, want %v", got, want)
	}
}

func TestScrollViewConfinesHits(t *testing.T) {
	m := NewManager(800, 600)
	sv := testScrollView()
	child := NewPanel(PanelOptions{Rect: geom.NewRect(0, 0, 200, 600), Style: Style{HasBackground: true}})
	sv.AddChild(child)
	m.AddWidget(sv)

	if got := m.WidgetAt(geom.Pt(150, 150)); got != Widget(child) {
		t.Errorf("WidgetAt(inside viewport) = %T, want the child", got)
	}
	// The child extends far below the viewport; outside the view nothing hits.
	if got := m.WidgetAt(geom.Pt(150, 400)); got != nil {
		t.Errorf("WidgetAt(below viewport) = %T, want nil", got)
	}
}

func TestScrolledOutChildNotHit(t *testing.T) {
	m := NewManager(800, 600)
	sv := testScrollView()
	top := NewPanel(PanelOptions{Rect: geom.NewRect(0, 0, 200, 40), Style: Style{HasBackground: true}})
	bottom := NewPanel(PanelOptions{Rect: geom.NewRect(0, 500, 200, 40), Style: Style{HasBackground: true}})
	sv.AddChild(top)
	sv.AddChild(bottom)
	m.AddWidget(sv)

	// Scrolled to the bottom: the top child left the viewport, the bottom
	// one entered it.
	sv.ScrollTo(geom.Pt(0, 450))
	p := geom.Pt(150, 160) // content y ≈ 510 after the shift
	if got := m.WidgetAt(p); got != Widget(bottom) {
		t.Errorf("WidgetAt = %T, want the bottom child", got)
	}
}

func TestScrollWheel(t *testing.T) {
	m := NewManager(800, 600)
	sv := testScrollView()
	m.AddWidget(sv)

	// Wheel toward the user scrolls the content down by the step.
	consumed := m.DispatchEvent(NewMouseWheel(geom.Pt(150, 150), geom.Pt(0, -1), 0))
	if !consumed {
		t.Fatal("wheel over a scrollable view should be consumed")
	}
	if got, want := sv.Offset().Y, DefaultSettings().ScrollStep; got != want {
		t.Errorf("Offset().Y = %g, want %g", got, want)
	}

	// Wheel outside the view does nothing.
	m.DispatchEvent(NewMouseWheel(geom.Pt(500, 500), geom.Pt(0, -1), 0))
	if got := sv.Offset().Y; got != DefaultSettings().ScrollStep {
		t.Errorf("Offset().Y = %g after outside wheel, want unchanged", got)
	}
}

func TestScrollContentSizeFromChildren(t *testing.T) {
	sv := NewScrollView(ScrollViewOptions{Rect: geom.NewRect(0, 0, 200, 100)})
	sv.AddChild(NewPanel(PanelOptions{Rect: geom.NewRect(0, 0, 180, 250)}))
	sv.AddChild(NewPanel(PanelOptions{Rect: geom.NewRect(0, 250, 180, 150)}))

	if got := sv.ContentSize(); got != (geom.Size{Width: 180, Height: 400}) {
		t.Errorf("ContentSize() = %v, want {180 400}", got)
	}
	sv.ScrollTo(geom.Pt(0, 9999))
	if got := sv.Offset().Y; got != 300 {
		t.Errorf("max scroll = %g, want 300", got)
	}
}

func TestScrollbarThumbDrag(t *testing.T) {
	m := NewManager(800, 600)
	sv := NewScrollView(ScrollViewOptions{
		Rect:        geom.NewRect(0, 0, 200, 300),
		ContentSize: geom.Size{Width: 190, Height: 600},
	})
	m.AddWidget(sv)

	// Thumb: track 300 tall, viewport/content = 0.5 → thumb 150, at y=0.
	thumb := sv.thumbRect()
	if thumb.Height != 150 {
		t.Fatalf("thumb height = %g, want 150", thumb.Height)
	}

	grab := geom.Pt(195, 10)
	m.DispatchEvent(NewMouseDown(grab, MouseButtonLeft, 0))
	// Dragging the thumb down 75px (half its travel) scrolls half the range.
	m.DispatchEvent(NewMouseMove(geom.Pt(195, 85), 0))
	if got := sv.Offset().Y; got != 150 {
		t.Errorf("Offset().Y mid-drag = %g, want 150", got)
	}
	m.DispatchEvent(NewMouseUp(geom.Pt(195, 85), MouseButtonLeft, 0))
	m.DispatchEvent(NewMouseMove(geom.Pt(195, 200), 0))
	if got := sv.Offset().Y; got != 150 {
		t.Error("movement after release must not scroll")
	}
}
