package ui

import (
	"testing"

	"github.com/vireo-ui/vireo/geom"
)

func TestAbsolutePosition(t *testing.T) {
	outer := NewPanel(PanelOptions{Rect: geom.NewRect(100, 50, 400, 300)})
	inner := NewPanel(PanelOptions{Rect: geom.NewRect(20, 10, 200, 100)})
	leaf := NewLabel(LabelOptions{Rect: geom.NewRect(5, 5, 50, 20), Text: "x"})

	outer.AddChild(inner)
	inner.AddChild(leaf)

	got := leaf.AbsolutePosition()
	want := geom.Pt(125, 65)
	if got != want {
		t.Errorf("AbsolutePosition() = %v, want %v", got, want)
	}
}

func TestAbsolutePositionAfterReparent(t *testing.T) {
	a := NewPanel(PanelOptions{Rect: geom.NewRect(0, 0, 100, 100)})
	b := NewPanel(PanelOptions{Rect: geom.NewRect(500, 500, 100, 100)})
	leaf := NewPanel(PanelOptions{Rect: geom.NewRect(10, 10, 10, 10)})

	a.AddChild(leaf)
	if got, want := leaf.AbsolutePosition(), geom.Pt(10, 10); got != want {
		t.Fatalf("under a: AbsolutePosition() = %v, want %v", got, want)
	}

	b.AddChild(leaf)
	if leaf.Parent() != b {
		t.Fatal("AddChild should have reparented the leaf")
	}
	if a.ChildCount() != 0 {
		t.Errorf("old parent still has %d children", a.ChildCount())
	}
	if got, want := leaf.AbsolutePosition(), geom.Pt(510, 510); got != want {
		t.Errorf("under b: AbsolutePosition() = %v, want %v", got, want)
	}
}

func TestDetachedWidgetUsesLocalOrigin(t *testing.T) {
	w := NewPanel(PanelOptions{Rect: geom.NewRect(30, 40, 10, 10)})
	if got, want := w.AbsolutePosition(), geom.Pt(30, 40); got != want {
		t.Errorf("AbsolutePosition() = %v, want %v", got, want)
	}
}

func TestWidgetAtTopmostWins(t *testing.T) {
	root := NewPanel(PanelOptions{Rect: geom.NewRect(0, 0, 200, 200)})
	bottom := NewPanel(PanelOptions{Rect: geom.NewRect(10, 10, 100, 100), Style: Style{HasBackground: true}})
	top := NewPanel(PanelOptions{Rect: geom.NewRect(50, 50, 100, 100), Style: Style{HasBackground: true}})
	root.AddChild(bottom)
	root.AddChild(top)

	// Overlap region: the later-added sibling wins.
	if got := root.WidgetAt(geom.Pt(60, 60)); got != Widget(top) {
		t.Errorf("WidgetAt(overlap) = %T, want the top panel", got)
	}
	if got := root.WidgetAt(geom.Pt(15, 15)); got != Widget(bottom) {
		t.Errorf("WidgetAt(bottom only) = %T, want the bottom panel", got)
	}
}

func TestWidgetAtSkipsHiddenAndDisabled(t *testing.T) {
	root := NewPanel(PanelOptions{Rect: geom.NewRect(0, 0, 200, 200)})
	child := NewPanel(PanelOptions{Rect: geom.NewRect(10, 10, 50, 50), Style: Style{HasBackground: true}})
	root.AddChild(child)

	child.SetVisible(false)
	if got := root.WidgetAt(geom.Pt(20, 20)); got == Widget(child) {
		t.Error("hidden widget should not be hit")
	}

	child.SetVisible(true)
	child.SetEnabled(false)
	if got := root.WidgetAt(geom.Pt(20, 20)); got == Widget(child) {
		t.Error("disabled widget should not be hit")
	}
}

func TestPlainWidgetDoesNotConfineChildHits(t *testing.T) {
	// The child's rect pokes outside the parent's; without confinement the
	// overhang is still hittable.
	parent := NewPanel(PanelOptions{Rect: geom.NewRect(0, 0, 50, 50)})
	child := NewPanel(PanelOptions{Rect: geom.NewRect(40, 40, 50, 50), Style: Style{HasBackground: true}})
	parent.AddChild(child)

	if got := parent.WidgetAt(geom.Pt(80, 80)); got != Widget(child) {
		t.Errorf("WidgetAt(overhang) = %T, want the child", got)
	}
}

func TestConfineHitsBoundsChildren(t *testing.T) {
	box := NewVBox(VBoxOptions{ContainerOptions: ContainerOptions{
		Rect:        geom.NewRect(0, 0, 50, 50),
		ConfineHits: true,
	}})
	child := NewPanel(PanelOptions{Rect: geom.NewRect(0, 0, 50, 100), Style: Style{HasBackground: true}})
	box.AddChild(child)

	if got := box.WidgetAt(geom.Pt(25, 25)); got != Widget(child) {
		t.Errorf("WidgetAt(inside) = %T, want the child", got)
	}
	if got := box.WidgetAt(geom.Pt(25, 80)); got != nil {
		t.Errorf("WidgetAt(below container) = %T, want nil", got)
	}
}

func TestRemoveChildDetachesSubtree(t *testing.T) {
	m := NewManager(800, 600)
	root := NewPanel(PanelOptions{Rect: geom.NewRect(0, 0, 800, 600)})
	child := NewPanel(PanelOptions{Rect: geom.NewRect(0, 0, 100, 100)})
	grand := NewButton(ButtonOptions{Rect: geom.NewRect(0, 0, 50, 20)})
	m.AddWidget(root)
	root.AddChild(child)
	child.AddChild(grand)

	if grand.Manager() != m {
		t.Fatal("grandchild should inherit the manager")
	}

	root.RemoveChild(child)
	if child.Parent() != nil {
		t.Error("removed child should have no parent")
	}
	if child.Manager() != nil || grand.Manager() != nil {
		t.Error("detached subtree should drop its manager reference")
	}
	// Internal structure survives detachment.
	if child.ChildCount() != 1 {
		t.Errorf("detached subtree lost children: ChildCount() = %d", child.ChildCount())
	}
}

func TestFocusSingleHolder(t *testing.T) {
	m := NewManager(800, 600)
	a := NewTextInput(TextInputOptions{Rect: geom.NewRect(0, 0, 100, 30)})
	b := NewTextInput(TextInputOptions{Rect: geom.NewRect(0, 40, 100, 30)})
	m.AddWidget(a)
	m.AddWidget(b)

	a.Focus()
	if !a.Focused() || m.Focused() != Widget(a) {
		t.Fatal("a should hold focus")
	}

	b.Focus()
	if a.Focused() {
		t.Error("a should have been blurred when b took focus")
	}
	if !b.Focused() || m.Focused() != Widget(b) {
		t.Error("b should hold focus")
	}
}

func TestFocusBlurOrdering(t *testing.T) {
	m := NewManager(800, 600)
	a := NewTextInput(TextInputOptions{Rect: geom.NewRect(0, 0, 100, 30)})
	b := NewTextInput(TextInputOptions{Rect: geom.NewRect(0, 40, 100, 30)})
	m.AddWidget(a)
	m.AddWidget(b)

	var order []string
	a.OnBlur(func() { order = append(order, "a.blur") })
	b.OnFocus(func() { order = append(order, "b.focus") })

	a.Focus()
	b.Focus()

	if len(order) != 2 || order[0] != "a.blur" || order[1] != "b.focus" {
		t.Errorf("callback order = %v, want [a.blur b.focus]", order)
	}
}

func TestFocusDetachedWidgetIsNoop(t *testing.T) {
	a := NewTextInput(TextInputOptions{Rect: geom.NewRect(0, 0, 100, 30)})
	a.Focus()
	if a.Focused() {
		t.Error("detached widget must not take focus")
	}
}

func TestRemovingFocusedWidgetClearsFocus(t *testing.T) {
	m := NewManager(800, 600)
	root := NewPanel(PanelOptions{Rect: geom.NewRect(0, 0, 800, 600)})
	in := NewTextInput(TextInputOptions{Rect: geom.NewRect(0, 0, 100, 30)})
	m.AddWidget(root)
	root.AddChild(in)

	in.Focus()
	if m.Focused() != Widget(in) {
		t.Fatal("input should hold focus")
	}

	root.RemoveChild(in)
	if m.Focused() != nil {
		t.Error("manager should drop focus on a removed widget")
	}
	if in.Focused() {
		t.Error("removed widget should not report focused")
	}
}

func TestDisablingFocusedWidgetClearsFocus(t *testing.T) {
	m := NewManager(800, 600)
	in := NewTextInput(TextInputOptions{Rect: geom.NewRect(0, 0, 100, 30)})
	m.AddWidget(in)

	in.Focus()
	in.SetEnabled(false)
	if m.Focused() != nil || in.Focused() {
		t.Error("disabling the focus holder should clear focus")
	}
}
