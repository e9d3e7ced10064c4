package ui

import (
	"testing"

	"github.com/vireo-ui/vireo/geom"
)

func fixedPanel(w, h float64) *Panel {
	return NewPanel(PanelOptions{Rect: geom.NewRect(0, 0, w, h)})
}

func TestVBoxStacksChildren(t *testing.T) {
	box := NewVBox(VBoxOptions{
		ContainerOptions: ContainerOptions{Rect: geom.NewRect(0, 0, 200, 300), Padding: 10},
		Spacing:          5,
	})
	a := fixedPanel(100, 40)
	b := fixedPanel(100, 40)
	c := fixedPanel(100, 40)
	box.AddChild(a)
	box.AddChild(b)
	box.AddChild(c)
	box.ensureLayout()

	wantY := []float64{10, 55, 100}
	for i, ch := range []*Panel{a, b, c} {
		r := ch.Rect()
		if r.X != 10 || r.Y != wantY[i] {
			t.Errorf("child %d at (%g, %g), want (10, %g)", i, r.X, r.Y, wantY[i])
		}
	}
}

func TestVBoxAutoSize(t *testing.T) {
	box := NewVBox(VBoxOptions{
		ContainerOptions: ContainerOptions{Padding: 10, AutoSize: true},
		Spacing:          5,
	})
	box.AddChild(fixedPanel(80, 40))
	box.AddChild(fixedPanel(120, 30))
	box.ensureLayout()

	r := box.Rect()
	// Width: widest child + padding both sides. Height: sum + one gap + padding.
	if r.Width != 140 {
		t.Errorf("auto width = %g, want 140", r.Width)
	}
	if r.Height != 95 {
		t.Errorf("auto height = %g, want 95", r.Height)
	}
}

func TestVBoxAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align Align
		wantX float64
		wantW float64
	}{
		{"start", AlignStart, 0, 50},
		{"center", AlignCenter, 75, 50},
		{"end", AlignEnd, 150, 50},
		{"stretch", AlignStretch, 0, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewVBox(VBoxOptions{
				ContainerOptions: ContainerOptions{Rect: geom.NewRect(0, 0, 200, 100)},
				Align:            tt.align,
			})
			ch := fixedPanel(50, 20)
			box.AddChild(ch)
			box.ensureLayout()

			r := ch.Rect()
			if r.X != tt.wantX || r.Width != tt.wantW {
				t.Errorf("child rect x=%g w=%g, want x=%g w=%g", r.X, r.Width, tt.wantX, tt.wantW)
			}
		})
	}
}

func TestHBoxRowsChildren(t *testing.T) {
	box := NewHBox(HBoxOptions{
		ContainerOptions: ContainerOptions{Rect: geom.NewRect(0, 0, 400, 60), Padding: 5},
		Spacing:          10,
	})
	a := fixedPanel(50, 40)
	b := fixedPanel(70, 40)
	box.AddChild(a)
	box.AddChild(b)
	box.ensureLayout()

	if r := a.Rect(); r.X != 5 || r.Y != 5 {
		t.Errorf("first child at (%g, %g), want (5, 5)", r.X, r.Y)
	}
	if r := b.Rect(); r.X != 65 {
		t.Errorf("second child x = %g, want 65", r.X)
	}
}

func TestHBoxAutoSize(t *testing.T) {
	box := NewHBox(HBoxOptions{
		ContainerOptions: ContainerOptions{Padding: 5, AutoSize: true},
		Spacing:          10,
	})
	box.AddChild(fixedPanel(50, 40))
	box.AddChild(fixedPanel(70, 30))
	box.ensureLayout()

	r := box.Rect()
	if r.Width != 140 {
		t.Errorf("auto width = %g, want 140", r.Width)
	}
	if r.Height != 50 {
		t.Errorf("auto height = %g, want 50", r.Height)
	}
}

func TestLayoutIsLazy(t *testing.T) {
	box := NewVBox(VBoxOptions{ContainerOptions: ContainerOptions{Rect: geom.NewRect(0, 0, 100, 300)}})
	box.ensureLayout()
	if box.LayoutDirty() {
		t.Fatal("layout should be clean after ensureLayout")
	}

	// Mutations only mark dirty; nothing is repositioned yet.
	ch := fixedPanel(50, 20)
	ch.SetPosition(geom.Pt(99, 99))
	box.AddChild(ch)
	if !box.LayoutDirty() {
		t.Fatal("AddChild should mark layout dirty")
	}
	if ch.Rect().Y != 99 {
		t.Error("child must not move until layout resolves")
	}

	// Hit-testing resolves layout first.
	box.WidgetAt(geom.Pt(-1, -1))
	if box.LayoutDirty() {
		t.Error("WidgetAt should have resolved layout")
	}
	if ch.Rect().Y != 0 {
		t.Errorf("child y = %g after layout, want 0", ch.Rect().Y)
	}
}

func TestSpacingChangeInvalidatesParentLayout(t *testing.T) {
	outer := NewVBox(VBoxOptions{
		ContainerOptions: ContainerOptions{Rect: geom.NewRect(0, 0, 200, 400)},
	})
	inner := NewVBox(VBoxOptions{
		ContainerOptions: ContainerOptions{AutoSize: true},
		Spacing:          5,
	})
	inner.AddChild(fixedPanel(50, 20))
	inner.AddChild(fixedPanel(50, 20))
	outer.AddChild(inner)
	outer.ensureLayout()
	inner.ensureLayout()
	if outer.LayoutDirty() || inner.LayoutDirty() {
		t.Fatal("both stacks should be resolved")
	}

	// Under auto-sizing the spacing changes the nested stack's extent, so
	// the parent's placement of it is stale too.
	inner.SetSpacing(15)
	if !inner.LayoutDirty() {
		t.Error("spacing change should invalidate the stack's own layout")
	}
	if !outer.LayoutDirty() {
		t.Error("spacing change should invalidate the parent's layout")
	}

	outer.ensureLayout()
	inner.SetPadding(4)
	if !outer.LayoutDirty() {
		t.Error("padding change should invalidate the parent's layout")
	}
}

func TestGridRowMajorPlacement(t *testing.T) {
	grid, err := NewGrid(GridOptions{
		ContainerOptions: ContainerOptions{Rect: geom.NewRect(0, 0, 400, 400)},
		Columns:          3,
		SpacingX:         10,
		SpacingY:         10,
		CellSize:         geom.Size{Width: 50, Height: 30},
	})
	if err != nil {
		t.Fatal(err)
	}
	var panels []*Panel
	for i := 0; i < 7; i++ {
		p := fixedPanel(50, 30)
		panels = append(panels, p)
		grid.AddChild(p)
	}
	grid.ensureLayout()

	// Child 5 lands in row 1, column 2.
	r := panels[5].Rect()
	if r.X != 120 || r.Y != 40 {
		t.Errorf("child 5 at (%g, %g), want (120, 40)", r.X, r.Y)
	}
	// Child 6 wraps to row 2, column 0.
	r = panels[6].Rect()
	if r.X != 0 || r.Y != 80 {
		t.Errorf("child 6 at (%g, %g), want (0, 80)", r.X, r.Y)
	}
}

func TestGridRejectsBadColumns(t *testing.T) {
	if _, err := NewGrid(GridOptions{Columns: -1}); err == nil {
		t.Error("NewGrid(columns=-1) should fail")
	}
	// Deriving the column count needs a fixed cell width.
	if _, err := NewGrid(GridOptions{Columns: 0}); err == nil {
		t.Error("NewGrid(columns=0, no cell width) should fail")
	}
}

func TestGridDerivesColumnsFromWidth(t *testing.T) {
	// 160 wide content: two 50-wide cells plus one 10 gap fit, three do not.
	grid, err := NewGrid(GridOptions{
		ContainerOptions: ContainerOptions{Rect: geom.NewRect(0, 0, 160, 400)},
		SpacingX:         10,
		SpacingY:         10,
		CellSize:         geom.Size{Width: 50, Height: 30},
	})
	if err != nil {
		t.Fatal(err)
	}
	var panels []*Panel
	for i := 0; i < 3; i++ {
		p := fixedPanel(50, 30)
		panels = append(panels, p)
		grid.AddChild(p)
	}
	grid.ensureLayout()

	if r := panels[2].Rect(); r.X != 0 || r.Y != 40 {
		t.Errorf("child 2 at (%g, %g), want (0, 40)", r.X, r.Y)
	}
}

func TestGridPerColumnWidths(t *testing.T) {
	grid, err := NewGrid(GridOptions{
		ContainerOptions: ContainerOptions{Rect: geom.NewRect(0, 0, 400, 400)},
		Columns:          2,
		SpacingX:         10,
	})
	if err != nil {
		t.Fatal(err)
	}
	grid.AddChild(fixedPanel(20, 30))
	wide := fixedPanel(100, 30)
	grid.AddChild(wide)
	second := fixedPanel(40, 30)
	grid.AddChild(second)
	grid.ensureLayout()

	// Column 0 is as wide as its widest occupant (40), not the global max:
	// column 1 starts at 40 + the 10 gap.
	if r := wide.Rect(); r.X != 50 {
		t.Errorf("column 1 x = %g, want 50", r.X)
	}
	if c := grid.CellAt(1); c.X != 50 || c.Width != 100 {
		t.Errorf("CellAt(1) = x %g width %g, want x 50 width 100", c.X, c.Width)
	}
}

func TestGridSetColumnsKeepsDerivableConfig(t *testing.T) {
	grid, err := NewGrid(GridOptions{
		ContainerOptions: ContainerOptions{Rect: geom.NewRect(0, 0, 400, 400)},
		Columns:          2,
	})
	if err != nil {
		t.Fatal(err)
	}

	// Without a fixed cell width there is nothing to derive the count
	// from, so zero is ignored, as the constructor would have rejected it.
	grid.SetColumns(0)
	if grid.Columns() != 2 {
		t.Errorf("Columns() = %d after SetColumns(0), want 2", grid.Columns())
	}
	grid.SetColumns(-3)
	if grid.Columns() != 2 {
		t.Errorf("Columns() = %d after SetColumns(-3), want 2", grid.Columns())
	}
	grid.SetColumns(3)
	if grid.Columns() != 3 {
		t.Errorf("Columns() = %d, want 3", grid.Columns())
	}
}

func TestGridDerivesCellFromChildren(t *testing.T) {
	grid, err := NewGrid(GridOptions{
		ContainerOptions: ContainerOptions{Rect: geom.NewRect(0, 0, 400, 400)},
		Columns:          2,
	})
	if err != nil {
		t.Fatal(err)
	}
	grid.AddChild(fixedPanel(30, 20))
	big := fixedPanel(60, 45)
	grid.AddChild(big)
	third := fixedPanel(30, 20)
	grid.AddChild(third)
	grid.ensureLayout()

	// Cells adopt the largest child's size.
	if r := third.Rect(); r.Y != 45 {
		t.Errorf("third child y = %g, want 45", r.Y)
	}
}
