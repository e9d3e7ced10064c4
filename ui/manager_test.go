package ui

import (
	"testing"

	"github.com/vireo-ui/vireo/geom"
)

func TestHoverEnterExit(t *testing.T) {
	m := NewManager(800, 600)
	var order []string
	a := NewButton(ButtonOptions{Rect: geom.NewRect(0, 0, 100, 40)})
	b := NewButton(ButtonOptions{Rect: geom.NewRect(200, 0, 100, 40)})
	a.OnHoverEnter(func() { order = append(order, "a.enter") })
	a.OnHoverExit(func() { order = append(order, "a.exit") })
	b.OnHoverEnter(func() { order = append(order, "b.enter") })
	m.AddWidget(a)
	m.AddWidget(b)

	m.DispatchEvent(NewMouseMove(geom.Pt(50, 20), 0))
	if !a.Hovered() {
		t.Fatal("a should be hovered")
	}

	// Moving straight to b: a's exit fires before b's enter.
	m.DispatchEvent(NewMouseMove(geom.Pt(250, 20), 0))
	if a.Hovered() || !b.Hovered() {
		t.Error("hover should have transferred from a to b")
	}
	want := []string{"a.enter", "a.exit", "b.enter"}
	if len(order) != len(want) {
		t.Fatalf("callback order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("callback order = %v, want %v", order, want)
		}
	}

	// Moving to empty space clears hover without re-firing.
	m.DispatchEvent(NewMouseMove(geom.Pt(500, 500), 0))
	if b.Hovered() || m.Hovered() != nil {
		t.Error("hover should clear over empty space")
	}
}

func TestHoverStableWithinWidget(t *testing.T) {
	m := NewManager(800, 600)
	enters := 0
	a := NewButton(ButtonOptions{Rect: geom.NewRect(0, 0, 100, 40)})
	a.OnHoverEnter(func() { enters++ })
	m.AddWidget(a)

	m.DispatchEvent(NewMouseMove(geom.Pt(10, 10), 0))
	m.DispatchEvent(NewMouseMove(geom.Pt(50, 20), 0))
	m.DispatchEvent(NewMouseMove(geom.Pt(90, 30), 0))
	if enters != 1 {
		t.Errorf("enter fired %d times for moves inside one widget, want 1", enters)
	}
}

func TestRemovingHoveredWidgetClearsHover(t *testing.T) {
	m := NewManager(800, 600)
	a := NewButton(ButtonOptions{Rect: geom.NewRect(0, 0, 100, 40)})
	m.AddWidget(a)

	m.DispatchEvent(NewMouseMove(geom.Pt(50, 20), 0))
	if m.Hovered() != Widget(a) {
		t.Fatal("a should be hovered")
	}
	m.RemoveWidget(a)
	if m.Hovered() != nil {
		t.Error("hover should clear when the hovered widget is removed")
	}
}

func TestHidingWidgetClearsManagerReferences(t *testing.T) {
	m := NewManager(800, 600)
	btn := NewButton(ButtonOptions{Rect: geom.NewRect(0, 0, 100, 40)})
	m.AddWidget(btn)

	m.DispatchEvent(NewMouseMove(geom.Pt(50, 20), 0))
	m.DispatchEvent(NewMouseDown(geom.Pt(50, 20), MouseButtonLeft, 0))
	if m.Hovered() != Widget(btn) || m.Focused() != Widget(btn) || m.captured != Widget(btn) {
		t.Fatal("button should be hovered, focused, and capturing")
	}

	// Hiding drops the references immediately, like disabling does, rather
	// than leaving them stale until the next event happens to recompute.
	btn.SetVisible(false)
	if m.Hovered() != nil {
		t.Error("hover should clear when the hovered widget is hidden")
	}
	if m.Focused() != nil || btn.Focused() {
		t.Error("focus should clear when the focused widget is hidden")
	}
	if m.captured != nil {
		t.Error("capture should clear when the capturing widget is hidden")
	}
}

func TestDispatchStopsAtFirstConsumer(t *testing.T) {
	m := NewManager(800, 600)
	var hits []string
	mk := func(name string) *Button {
		return NewButton(ButtonOptions{
			Rect:    geom.NewRect(100, 100, 100, 40),
			OnClick: func() { hits = append(hits, name) },
		})
	}
	under := mk("under")
	over := mk("over")
	m.AddWidget(under)
	m.AddWidget(over) // same rect, added later: wins

	p := geom.Pt(150, 120)
	m.DispatchEvent(NewMouseDown(p, MouseButtonLeft, 0))
	m.DispatchEvent(NewMouseUp(p, MouseButtonLeft, 0))

	if len(hits) != 1 || hits[0] != "over" {
		t.Errorf("hits = %v, want [over]: topmost sibling consumes first", hits)
	}
	if under.Pressed() {
		t.Error("the occluded button must never have seen the press")
	}
}

func TestResizeEventUpdatesSize(t *testing.T) {
	m := NewManager(800, 600)
	m.DispatchEvent(&ResizeEvent{Width: 1024, Height: 768})
	w, h := m.Size()
	if w != 1024 || h != 768 {
		t.Errorf("Size() = (%g, %g), want (1024, 768)", w, h)
	}
}

func TestSetSettingsRejectsInvalid(t *testing.T) {
	m := NewManager(800, 600)
	bad := DefaultSettings()
	bad.ScrollStep = -1
	if err := m.SetSettings(bad); err == nil {
		t.Error("negative scroll step should be rejected")
	}
	// The manager keeps its previous settings on failure.
	if m.Settings().ScrollStep != DefaultSettings().ScrollStep {
		t.Error("failed SetSettings must not partially apply")
	}
}

func TestUpdatePropagates(t *testing.T) {
	m := NewManager(800, 600)
	root := NewPanel(PanelOptions{Rect: geom.NewRect(0, 0, 800, 600)})
	in := NewTextInput(TextInputOptions{Rect: geom.NewRect(0, 0, 100, 30)})
	root.AddChild(in)
	m.AddWidget(root)
	in.Focus()

	m.Update(DefaultSettings().CursorBlinkInterval)
	if in.cursorShown {
		t.Error("Update should have reached the nested input and advanced its blink")
	}
}

func TestManagerClear(t *testing.T) {
	m := NewManager(800, 600)
	a := NewPanel(PanelOptions{Rect: geom.NewRect(0, 0, 10, 10)})
	b := NewPanel(PanelOptions{Rect: geom.NewRect(0, 0, 10, 10)})
	m.AddWidget(a)
	m.AddWidget(b)
	m.Clear()
	if len(m.Roots()) != 0 {
		t.Errorf("Roots() has %d entries after Clear", len(m.Roots()))
	}
	if a.Manager() != nil {
		t.Error("cleared root should drop its manager reference")
	}
}
