package ui

import "github.com/vireo-ui/vireo/geom"

// Checkbox is a toggle with a square box and a trailing text label. The
// whole widget rect is the click target, not just the box.
type Checkbox struct {
	Base

	text    string
	style   Style
	checked bool
	boxSize float64

	onChange func(checked bool)
}

// CheckboxOptions configures a Checkbox.
type CheckboxOptions struct {
	Rect    geom.Rect
	Text    string
	Style   Style
	Checked bool

	// BoxSize sets the square's edge length; zero means derive it from the
	// widget height.
	BoxSize float64

	OnChange func(checked bool)
}

// NewCheckbox builds a toggle control.
func NewCheckbox(opts CheckboxOptions) *Checkbox {
	c := &Checkbox{
		text:     opts.Text,
		style:    opts.Style,
		checked:  opts.Checked,
		boxSize:  opts.BoxSize,
		onChange: opts.OnChange,
	}
	c.bind(c)
	c.rect = opts.Rect
	c.focusable = true
	return c
}

// Checked reports the toggle state.
func (c *Checkbox) Checked() bool { return c.checked }

// SetChecked sets the toggle state programmatically, firing OnChange only
// when the state actually changes.
func (c *Checkbox) SetChecked(v bool) {
	if c.checked == v {
		return
	}
	c.checked = v
	if c.onChange != nil {
		c.onChange(v)
	}
}

// Toggle flips the state, firing OnChange.
func (c *Checkbox) Toggle() { c.SetChecked(!c.checked) }

// Text returns the label text.
func (c *Checkbox) Text() string { return c.text }

// SetText replaces the label text.
func (c *Checkbox) SetText(s string) { c.text = s }

// OnChange sets the callback fired after the checked state changes.
func (c *Checkbox) OnChange(fn func(bool)) { c.onChange = fn }

func (c *Checkbox) box() float64 {
	if c.boxSize > 0 {
		return c.boxSize
	}
	b := c.rect.Height * 0.6
	if b < 10 {
		b = 10
	}
	return b
}

// HandleEvent runs the same press state machine as Button: a left press
// anywhere in the widget rect arms the toggle, the matching release flips
// it only if it lands back on the widget. Space toggles while focused.
func (c *Checkbox) HandleEvent(e Event) bool {
	if !c.visible || !c.enabled {
		return false
	}
	if c.DispatchToChildren(e) {
		return true
	}
	switch ev := e.(type) {
	case *MouseEvent:
		switch ev.Kind {
		case EventMouseDown:
			if ev.Button != MouseButtonLeft {
				return false
			}
			if c.AbsoluteRect().Contains(ev.Pos) {
				c.pressed = true
				c.Focus()
				return true
			}
		case EventMouseUp:
			if ev.Button != MouseButtonLeft {
				return false
			}
			if c.pressed {
				c.pressed = false
				if c.AbsoluteRect().Contains(ev.Pos) {
					c.Toggle()
				}
				return true
			}
		}
	case *KeyEvent:
		if c.focused && ev.Key == KeySpace {
			c.Toggle()
			return true
		}
	}
	return false
}

// Draw paints the box, the check mark, and the label.
func (c *Checkbox) Draw(s Surface, origin geom.Point) {
	abs := c.rect.At(origin.Add(c.rect.Origin()))
	edge := c.box()
	box := geom.NewRect(abs.X, abs.Y+(abs.Height-edge)/2, edge, edge)

	bg := c.style.Background
	if c.hovered && c.enabled {
		bg = c.style.HoverColor
	}
	s.FillRect(box, bg, 2)

	border := c.style.BorderColor
	if c.focused {
		border = c.style.HoverColor
	}
	s.StrokeRect(box, border, 1, 2)

	if c.checked {
		mark := c.style.TextColor
		if !c.enabled {
			mark = c.style.DisabledColor
		}
		s.FillRect(box.Inset(edge*0.25), mark, 1)
	}

	tc := c.style.TextColor
	if !c.enabled {
		tc = c.style.DisabledColor
	}
	sz := c.measurer().MeasureText(c.text, c.style.Font)
	s.DrawText(c.text, geom.Pt(box.Right()+8, abs.Y+(abs.Height-sz.Height)/2), c.style.Font, tc)

	c.DrawChildren(s, abs.Origin())
}
