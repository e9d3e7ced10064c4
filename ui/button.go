package ui

import "github.com/vireo-ui/vireo/geom"

// Button is a clickable control with press/release semantics: the click
// fires only when the button release lands on the same button the press
// started on. Dragging off before releasing cancels the click.
type Button struct {
	Base

	text  string
	style Style

	onClick func()
}

// ButtonOptions configures a Button.
type ButtonOptions struct {
	Rect    geom.Rect
	Text    string
	Style   Style
	OnClick func()
}

// NewButton builds a push button.
func NewButton(opts ButtonOptions) *Button {
	b := &Button{text: opts.Text, style: opts.Style, onClick: opts.OnClick}
	b.bind(b)
	b.rect = opts.Rect
	b.focusable = true
	return b
}

// Text returns the button caption.
func (b *Button) Text() string { return b.text }

// SetText replaces the button caption.
func (b *Button) SetText(s string) { b.text = s }

// Style returns the button's visual style.
func (b *Button) Style() Style { return b.style }

// SetStyle replaces the button's visual style.
func (b *Button) SetStyle(st Style) { b.style = st }

// OnClick sets the callback fired on a completed press/release cycle.
func (b *Button) OnClick(fn func()) { b.onClick = fn }

// HandleEvent implements the press state machine. A press arms the button;
// the matching release fires OnClick only if it lands back on the button,
// and is consumed either way so no widget underneath sees a stray release.
func (b *Button) HandleEvent(e Event) bool {
	if !b.visible || !b.enabled {
		return false
	}
	if b.DispatchToChildren(e) {
		return true
	}
	if ke, ok := e.(*KeyEvent); ok {
		return b.handleKey(ke)
	}
	me, ok := e.(*MouseEvent)
	if !ok {
		return false
	}
	switch me.Kind {
	case EventMouseDown:
		if me.Button != MouseButtonLeft {
			return false
		}
		if b.AbsoluteRect().Contains(me.Pos) {
			b.pressed = true
			b.Focus()
			return true
		}
	case EventMouseUp:
		if me.Button != MouseButtonLeft {
			return false
		}
		if b.pressed {
			b.pressed = false
			if b.AbsoluteRect().Contains(me.Pos) && b.onClick != nil {
				b.onClick()
			}
			return true
		}
	}
	return false
}

// handleKey activates the button on Enter or Space while focused.
func (b *Button) handleKey(ke *KeyEvent) bool {
	if !b.focused {
		return false
	}
	if ke.Key == KeyEnter || ke.Key == KeySpace {
		if b.onClick != nil {
			b.onClick()
		}
		return true
	}
	return false
}

// Draw paints the button in its interaction state: pressed wins over hover,
// disabled grays the caption.
func (b *Button) Draw(s Surface, origin geom.Point) {
	abs := b.rect.At(origin.Add(b.rect.Origin()))

	bg := b.style.Background
	switch {
	case !b.enabled:
		bg = b.style.DisabledColor
	case b.pressed:
		bg = b.style.PressedColor
	case b.hovered:
		bg = b.style.HoverColor
	}
	s.FillRect(abs, bg, b.style.BorderRadius)

	border := b.style.BorderColor
	if b.focused {
		border = b.style.HoverColor
	}
	if b.style.BorderWidth > 0 && !transparent(border) {
		s.StrokeRect(abs, border, b.style.BorderWidth, b.style.BorderRadius)
	}

	c := b.style.TextColor
	if !b.enabled {
		c = RGB(160, 160, 160)
	}
	sz := b.measurer().MeasureText(b.text, b.style.Font)
	s.DrawText(b.text, geom.Pt(abs.X+(abs.Width-sz.Width)/2, abs.Y+(abs.Height-sz.Height)/2), b.style.Font, c)

	b.DrawChildren(s, abs.Origin())
}
