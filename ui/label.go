package ui

import "github.com/vireo-ui/vireo/geom"

// TextAlign selects horizontal text placement within a widget.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// Label is a non-interactive text display. It never consumes events and is
// transparent to hit-testing unless given a background.
type Label struct {
	Base

	text  string
	style Style
	align TextAlign

	autoSize bool
}

// LabelOptions configures a Label.
type LabelOptions struct {
	Rect  geom.Rect
	Text  string
	Style Style
	Align TextAlign

	// AutoSize resizes the label to its measured text whenever the text or
	// font changes. A zero Rect size implies it.
	AutoSize bool
}

// NewLabel builds a text label.
func NewLabel(opts LabelOptions) *Label {
	l := &Label{
		text:     opts.Text,
		style:    opts.Style,
		align:    opts.Align,
		autoSize: opts.AutoSize || opts.Rect.Size().IsEmpty(),
	}
	l.bind(l)
	l.rect = opts.Rect
	if l.autoSize {
		l.fitToText()
	}
	return l
}

// Text returns the displayed string.
func (l *Label) Text() string { return l.text }

// SetText replaces the displayed string.
func (l *Label) SetText(s string) {
	if l.text == s {
		return
	}
	l.text = s
	if l.autoSize {
		l.fitToText()
	}
}

// Style returns the label's visual style.
func (l *Label) Style() Style { return l.style }

// SetStyle replaces the label's visual style.
func (l *Label) SetStyle(st Style) {
	l.style = st
	if l.autoSize {
		l.fitToText()
	}
}

func (l *Label) fitToText() {
	sz := l.measurer().MeasureText(l.text, l.style.Font)
	l.SetSize(sz)
}

// WidgetAt makes the label transparent to hit-testing unless it draws a
// background, so text overlaid on interactive widgets never steals clicks.
func (l *Label) WidgetAt(p geom.Point) Widget {
	if !l.style.HasBackground {
		return nil
	}
	return l.Base.WidgetAt(p)
}

// Draw paints the optional background and the text.
func (l *Label) Draw(s Surface, origin geom.Point) {
	abs := l.rect.At(origin.Add(l.rect.Origin()))
	if l.style.HasBackground && !transparent(l.style.Background) {
		s.FillRect(abs, l.style.Background, l.style.BorderRadius)
	}
	c := l.style.TextColor
	if !l.enabled {
		c = l.style.DisabledColor
	}
	sz := l.measurer().MeasureText(l.text, l.style.Font)
	pos := geom.Pt(abs.X, abs.Y+(abs.Height-sz.Height)/2)
	switch l.align {
	case TextAlignCenter:
		pos.X = abs.X + (abs.Width-sz.Width)/2
	case TextAlignRight:
		pos.X = abs.Right() - sz.Width
	}
	s.DrawText(l.text, pos, l.style.Font, c)
	l.DrawChildren(s, abs.Origin())
}
