package ui

import "github.com/vireo-ui/vireo/geom"

// TabBar is a horizontal strip of labeled tabs with one active at a time.
// It only renders the strip; pairing each tab with a content widget (show
// the active one, hide the rest) is the caller's concern, typically via
// OnSelect.
type TabBar struct {
	Base

	tabs     []string
	active   int
	style    Style
	tabWidth float64 // zero means divide the rect evenly

	onSelect func(index int, tab string)
}

// TabBarOptions configures a TabBar.
type TabBarOptions struct {
	Rect   geom.Rect
	Tabs   []string
	Active int
	Style  Style

	// TabWidth fixes each tab's width; zero divides the bar evenly.
	TabWidth float64

	OnSelect func(index int, tab string)
}

// NewTabBar builds a tab strip. An out-of-range Active clamps to 0.
func NewTabBar(opts TabBarOptions) *TabBar {
	t := &TabBar{
		tabs:     append([]string(nil), opts.Tabs...),
		active:   opts.Active,
		style:    opts.Style,
		tabWidth: opts.TabWidth,
		onSelect: opts.OnSelect,
	}
	if t.active < 0 || t.active >= len(t.tabs) {
		t.active = 0
	}
	t.bind(t)
	t.rect = opts.Rect
	t.focusable = true
	return t
}

// Tabs returns a copy of the tab labels.
func (t *TabBar) Tabs() []string { return append([]string(nil), t.tabs...) }

// Active returns the active tab index.
func (t *TabBar) Active() int { return t.active }

// ActiveTab returns the active tab label, "" when there are no tabs.
func (t *TabBar) ActiveTab() string {
	if t.active < 0 || t.active >= len(t.tabs) {
		return ""
	}
	return t.tabs[t.active]
}

// SetActive switches the active tab, firing OnSelect on change.
// Out-of-range indices are ignored.
func (t *TabBar) SetActive(i int) {
	if i < 0 || i >= len(t.tabs) || i == t.active {
		return
	}
	t.active = i
	if t.onSelect != nil {
		t.onSelect(i, t.tabs[i])
	}
}

// OnSelect sets the callback fired after the active tab changes.
func (t *TabBar) OnSelect(fn func(int, string)) { t.onSelect = fn }

func (t *TabBar) tabW() float64 {
	if t.tabWidth > 0 {
		return t.tabWidth
	}
	if len(t.tabs) == 0 {
		return t.rect.Width
	}
	return t.rect.Width / float64(len(t.tabs))
}

// tabAt maps an absolute point to a tab index, -1 when outside.
func (t *TabBar) tabAt(p geom.Point) int {
	abs := t.AbsoluteRect()
	if !abs.Contains(p) || len(t.tabs) == 0 {
		return -1
	}
	i := int((p.X - abs.X) / t.tabW())
	if i < 0 || i >= len(t.tabs) {
		return -1
	}
	return i
}

// HandleEvent switches tabs on click and cycles them with arrow keys while
// focused.
func (t *TabBar) HandleEvent(e Event) bool {
	if !t.visible || !t.enabled {
		return false
	}
	if t.DispatchToChildren(e) {
		return true
	}
	switch ev := e.(type) {
	case *MouseEvent:
		if ev.Kind == EventMouseDown && ev.Button == MouseButtonLeft {
			if i := t.tabAt(ev.Pos); i >= 0 {
				t.Focus()
				t.SetActive(i)
				return true
			}
		}
	case *KeyEvent:
		if !t.focused {
			return false
		}
		switch ev.Key {
		case KeyLeft:
			t.SetActive(t.active - 1)
			return true
		case KeyRight:
			t.SetActive(t.active + 1)
			return true
		}
	}
	return false
}

// Draw paints each tab cell; the active tab fills with the pressed color
// and gets an underline.
func (t *TabBar) Draw(s Surface, origin geom.Point) {
	abs := t.rect.At(origin.Add(t.rect.Origin()))
	if t.style.HasBackground {
		s.FillRect(abs, t.style.Background, 0)
	}
	w := t.tabW()
	for i, label := range t.tabs {
		cell := geom.NewRect(abs.X+float64(i)*w, abs.Y, w, abs.Height)
		if i == t.active {
			s.FillRect(cell, t.style.PressedColor, 0)
			s.FillRect(geom.NewRect(cell.X, cell.Bottom()-2, cell.Width, 2), t.style.HoverColor, 0)
		}
		c := t.style.TextColor
		if !t.enabled {
			c = t.style.DisabledColor
		}
		sz := t.measurer().MeasureText(label, t.style.Font)
		s.DrawText(label, geom.Pt(cell.X+(cell.Width-sz.Width)/2, cell.Y+(cell.Height-sz.Height)/2), t.style.Font, c)
	}
	t.DrawChildren(s, abs.Origin())
}
