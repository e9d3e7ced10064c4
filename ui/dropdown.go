package ui

import "github.com/vireo-ui/vireo/geom"

// Dropdown shows the selected option and, when open, an option list that
// floats above every other widget. While open it registers itself as a
// Manager overlay: it sees events before the regular tree and is painted
// after it, so the list is never occluded by later siblings.
type Dropdown struct {
	Base

	options  []string
	selected int
	style    Style
	open     bool

	// hoverIndex tracks the option under the pointer while open; -1 means
	// none.
	hoverIndex int

	optionHeight float64

	// maxVisible caps the open list at that many rows; longer option sets
	// scroll. Zero means show everything.
	maxVisible int
	listOffset int

	onSelect func(index int, option string)
}

// DropdownOptions configures a Dropdown.
type DropdownOptions struct {
	Rect     geom.Rect
	Options  []string
	Selected int
	Style    Style

	// OptionHeight sets each list row's height; zero means reuse the widget
	// height.
	OptionHeight float64

	// MaxVisible caps the open list's row count; longer option sets scroll
	// with the wheel. Zero shows every option.
	MaxVisible int

	OnSelect func(index int, option string)
}

// NewDropdown builds a selection widget. A Selected index out of range
// clamps to the nearest valid option (-1 stays, meaning no selection).
func NewDropdown(opts DropdownOptions) *Dropdown {
	d := &Dropdown{
		options:      append([]string(nil), opts.Options...),
		selected:     opts.Selected,
		style:        opts.Style,
		hoverIndex:   -1,
		optionHeight: opts.OptionHeight,
		maxVisible:   opts.MaxVisible,
		onSelect:     opts.OnSelect,
	}
	if d.selected >= len(d.options) {
		d.selected = len(d.options) - 1
	}
	if d.selected < -1 {
		d.selected = -1
	}
	d.bind(d)
	d.rect = opts.Rect
	d.focusable = true
	return d
}

// Options returns a copy of the option list.
func (d *Dropdown) Options() []string {
	return append([]string(nil), d.options...)
}

// SetOptions replaces the option list, clamping the selection.
func (d *Dropdown) SetOptions(opts []string) {
	d.options = append([]string(nil), opts...)
	if d.selected >= len(d.options) {
		d.selected = len(d.options) - 1
	}
}

// Selected returns the selected index, -1 for none.
func (d *Dropdown) Selected() int { return d.selected }

// SelectedOption returns the selected option text, "" for none.
func (d *Dropdown) SelectedOption() string {
	if d.selected < 0 || d.selected >= len(d.options) {
		return ""
	}
	return d.options[d.selected]
}

// Select sets the selection programmatically, firing OnSelect on change.
// Out-of-range indices are ignored.
func (d *Dropdown) Select(i int) {
	if i < 0 || i >= len(d.options) || i == d.selected {
		return
	}
	d.selected = i
	if d.onSelect != nil {
		d.onSelect(i, d.options[i])
	}
}

// Open reports whether the option list is showing.
func (d *Dropdown) Open() bool { return d.open }

// OnSelect sets the callback fired after the selection changes.
func (d *Dropdown) OnSelect(fn func(int, string)) { d.onSelect = fn }

func (d *Dropdown) rowHeight() float64 {
	if d.optionHeight > 0 {
		return d.optionHeight
	}
	return d.rect.Height
}

// visibleRows returns how many rows the open list shows at once.
func (d *Dropdown) visibleRows() int {
	if d.maxVisible > 0 && d.maxVisible < len(d.options) {
		return d.maxVisible
	}
	return len(d.options)
}

// listRect returns the open list's rect in absolute coordinates.
func (d *Dropdown) listRect() geom.Rect {
	abs := d.AbsoluteRect()
	return geom.NewRect(abs.X, abs.Bottom(), abs.Width, d.rowHeight()*float64(d.visibleRows()))
}

// scrollList shifts the visible window by rows, clamped so the window
// never runs past either end of the option list.
func (d *Dropdown) scrollList(rows int) {
	max := len(d.options) - d.visibleRows()
	d.listOffset += rows
	if d.listOffset > max {
		d.listOffset = max
	}
	if d.listOffset < 0 {
		d.listOffset = 0
	}
}

func (d *Dropdown) setOpen(v bool) {
	if d.open == v {
		return
	}
	d.open = v
	d.hoverIndex = -1
	d.listOffset = 0
	if d.manager == nil {
		return
	}
	if v {
		d.manager.pushOverlay(d)
	} else {
		d.manager.removeOverlay(d)
	}
}

// optionAt maps an absolute point inside the list to an option index, -1
// when outside.
func (d *Dropdown) optionAt(p geom.Point) int {
	list := d.listRect()
	if !list.Contains(p) || len(d.options) == 0 {
		return -1
	}
	i := d.listOffset + int((p.Y-list.Y)/d.rowHeight())
	if i < 0 || i >= len(d.options) {
		return -1
	}
	return i
}

// HandleEvent toggles the list on click and, while open, resolves option
// picks. An open list consumes every mouse press: a press outside both the
// widget and the list closes it without leaking the press to whatever is
// underneath.
func (d *Dropdown) HandleEvent(e Event) bool {
	if !d.visible || !d.enabled {
		return false
	}
	if d.DispatchToChildren(e) {
		return true
	}
	switch ev := e.(type) {
	case *MouseEvent:
		switch ev.Kind {
		case EventMouseDown:
			if ev.Button != MouseButtonLeft {
				return d.open // swallow other buttons while open
			}
			if d.AbsoluteRect().Contains(ev.Pos) {
				d.Focus()
				d.setOpen(!d.open)
				return true
			}
			if d.open {
				if i := d.optionAt(ev.Pos); i >= 0 {
					d.Select(i)
				}
				d.setOpen(false)
				return true
			}
		case EventMouseMove:
			if d.open {
				d.hoverIndex = d.optionAt(ev.Pos)
			}
		case EventMouseWheel:
			if d.open && d.listRect().Contains(ev.Pos) {
				d.scrollList(-int(ev.Delta.Y))
				d.hoverIndex = d.optionAt(ev.Pos)
				return true
			}
		}
	case *KeyEvent:
		if !d.focused {
			return false
		}
		switch ev.Key {
		case KeyEscape:
			if d.open {
				d.setOpen(false)
				return true
			}
		case KeyEnter, KeySpace:
			if d.open && d.hoverIndex >= 0 {
				d.Select(d.hoverIndex)
			}
			d.setOpen(!d.open)
			return true
		case KeyUp:
			d.Select(d.selected - 1)
			return true
		case KeyDown:
			d.Select(d.selected + 1)
			return true
		}
	}
	return false
}

// WidgetAt extends the hit region to the open list.
func (d *Dropdown) WidgetAt(p geom.Point) Widget {
	if w := d.Base.WidgetAt(p); w != nil {
		return w
	}
	if d.open && d.visible && d.enabled {
		// p is in parent space; translate the absolute list rect back.
		delta := d.AbsolutePosition().Sub(d.rect.Origin())
		if d.listRect().Translate(geom.Pt(-delta.X, -delta.Y)).Contains(p) {
			return d.self
		}
	}
	return nil
}

// Draw paints the closed widget face; the open list is painted by the
// Manager's overlay pass (DrawOverlay) above the whole tree.
func (d *Dropdown) Draw(s Surface, origin geom.Point) {
	abs := d.rect.At(origin.Add(d.rect.Origin()))

	bg := d.style.Background
	switch {
	case !d.enabled:
		bg = d.style.DisabledColor
	case d.open:
		bg = d.style.PressedColor
	case d.hovered:
		bg = d.style.HoverColor
	}
	s.FillRect(abs, bg, d.style.BorderRadius)
	s.StrokeRect(abs, d.style.BorderColor, d.style.BorderWidth, d.style.BorderRadius)

	sz := d.measurer().MeasureText(d.SelectedOption(), d.style.Font)
	s.DrawText(d.SelectedOption(), geom.Pt(abs.X+8, abs.Y+(abs.Height-sz.Height)/2), d.style.Font, d.style.TextColor)

	arrow := "▼"
	if d.open {
		arrow = "▲"
	}
	asz := d.measurer().MeasureText(arrow, d.style.Font)
	s.DrawText(arrow, geom.Pt(abs.Right()-asz.Width-8, abs.Y+(abs.Height-asz.Height)/2), d.style.Font, d.style.TextColor)

	d.DrawChildren(s, abs.Origin())
}

// DrawOverlay paints the open option list. Called by the Manager after the
// normal draw pass.
func (d *Dropdown) DrawOverlay(s Surface) {
	if !d.open {
		return
	}
	list := d.listRect()
	s.FillRect(list, d.style.Background, d.style.BorderRadius)
	s.StrokeRect(list, d.style.BorderColor, d.style.BorderWidth, d.style.BorderRadius)
	rh := d.rowHeight()
	for v := 0; v < d.visibleRows(); v++ {
		i := d.listOffset + v
		opt := d.options[i]
		row := geom.NewRect(list.X, list.Y+float64(v)*rh, list.Width, rh)
		if i == d.hoverIndex {
			s.FillRect(row, d.style.HoverColor, 0)
		} else if i == d.selected {
			s.FillRect(row, d.style.PressedColor, 0)
		}
		sz := d.measurer().MeasureText(opt, d.style.Font)
		s.DrawText(opt, geom.Pt(row.X+8, row.Y+(rh-sz.Height)/2), d.style.Font, d.style.TextColor)
	}
}
