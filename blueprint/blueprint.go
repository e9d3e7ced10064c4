// Package blueprint builds widget trees from YAML declarations. A blueprint
// names widget types, geometry, style, and children; the loader turns it
// into live ui widgets and returns the named ones so application code can
// attach behavior.
package blueprint

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vireo-ui/vireo/geom"
	"github.com/vireo-ui/vireo/ui"
)

// Node is one widget declaration. Fields that don't apply to the declared
// type are ignored.
type Node struct {
	Type string `yaml:"type"`
	Name string `yaml:"name,omitempty"`

	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	Text        string   `yaml:"text,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	MaxLength   int      `yaml:"max_length,omitempty"`
	Checked     bool     `yaml:"checked,omitempty"`
	Options     []string `yaml:"options,omitempty"`
	Selected    int      `yaml:"selected,omitempty"`
	Tabs        []string `yaml:"tabs,omitempty"`

	Min   float64 `yaml:"min,omitempty"`
	Max   float64 `yaml:"max,omitempty"`
	Step  float64 `yaml:"step,omitempty"`
	Value float64 `yaml:"value,omitempty"`

	Columns    int     `yaml:"columns,omitempty"`
	Spacing    float64 `yaml:"spacing,omitempty"`
	SpacingX   float64 `yaml:"spacing_x,omitempty"`
	SpacingY   float64 `yaml:"spacing_y,omitempty"`
	CellWidth  float64 `yaml:"cell_width,omitempty"`
	CellHeight float64 `yaml:"cell_height,omitempty"`
	Padding    float64 `yaml:"padding,omitempty"`
	Align      string  `yaml:"align,omitempty"`
	AutoSize   bool    `yaml:"auto_size,omitempty"`

	ContentWidth  float64 `yaml:"content_width,omitempty"`
	ContentHeight float64 `yaml:"content_height,omitempty"`

	Style *StyleNode `yaml:"style,omitempty"`

	Children []Node `yaml:"children,omitempty"`
}

// StyleNode overrides parts of the default style. Colors are #RRGGBB or
// #RRGGBBAA strings.
type StyleNode struct {
	Background   string  `yaml:"background,omitempty"`
	HoverColor   string  `yaml:"hover_color,omitempty"`
	PressedColor string  `yaml:"pressed_color,omitempty"`
	BorderColor  string  `yaml:"border_color,omitempty"`
	TextColor    string  `yaml:"text_color,omitempty"`
	BorderWidth  float64 `yaml:"border_width,omitempty"`
	BorderRadius float64 `yaml:"border_radius,omitempty"`
	FontSize     float64 `yaml:"font_size,omitempty"`
}

// Document is a blueprint file: a list of root widget declarations.
type Document struct {
	Widgets []Node `yaml:"widgets"`
}

// Tree is the result of building a blueprint.
type Tree struct {
	// Roots are the top-level widgets in declaration order.
	Roots []ui.Widget

	// Named maps each declared name to its widget. Names must be unique
	// within one document.
	Named map[string]ui.Widget
}

// Lookup returns the named widget, nil if absent.
func (t *Tree) Lookup(name string) ui.Widget { return t.Named[name] }

// AttachTo adds every root to the manager.
func (t *Tree) AttachTo(m *ui.Manager) {
	for _, r := range t.Roots {
		m.AddWidget(r)
	}
}

// LoadFile reads and builds a blueprint from a YAML file.
func LoadFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("blueprint: read %s: %w", path, err)
	}
	return Load(data)
}

// Load builds a blueprint from YAML in memory.
func Load(data []byte) (*Tree, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("blueprint: parse: %w", err)
	}
	t := &Tree{Named: make(map[string]ui.Widget)}
	for i, n := range doc.Widgets {
		w, err := t.build(n, fmt.Sprintf("widgets[%d]", i))
		if err != nil {
			return nil, err
		}
		t.Roots = append(t.Roots, w)
	}
	return t, nil
}

func (t *Tree) build(n Node, path string) (ui.Widget, error) {
	w, err := t.construct(n, path)
	if err != nil {
		return nil, err
	}
	if n.Name != "" {
		if _, dup := t.Named[n.Name]; dup {
			return nil, fmt.Errorf("blueprint: %s: duplicate widget name %q", path, n.Name)
		}
		t.Named[n.Name] = w
	}
	for i, c := range n.Children {
		child, err := t.build(c, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		w.AsBase().AddChild(child)
	}
	return w, nil
}

func (n Node) rect() geom.Rect {
	return geom.NewRect(n.X, n.Y, n.Width, n.Height)
}

func (n Node) style() ui.Style {
	st := ui.DefaultStyle()
	s := n.Style
	if s == nil {
		return st
	}
	if s.Background != "" {
		st.Background = ui.Hex(s.Background)
	}
	if s.HoverColor != "" {
		st.HoverColor = ui.Hex(s.HoverColor)
	}
	if s.PressedColor != "" {
		st.PressedColor = ui.Hex(s.PressedColor)
	}
	if s.BorderColor != "" {
		st.BorderColor = ui.Hex(s.BorderColor)
	}
	if s.TextColor != "" {
		st.TextColor = ui.Hex(s.TextColor)
	}
	if s.BorderWidth > 0 {
		st.BorderWidth = s.BorderWidth
	}
	if s.BorderRadius > 0 {
		st.BorderRadius = s.BorderRadius
	}
	if s.FontSize > 0 {
		st.Font.Size = s.FontSize
	}
	return st
}

func parseAlign(s, path string) (ui.Align, error) {
	switch s {
	case "", "start":
		return ui.AlignStart, nil
	case "center":
		return ui.AlignCenter, nil
	case "end":
		return ui.AlignEnd, nil
	case "stretch":
		return ui.AlignStretch, nil
	}
	return 0, fmt.Errorf("blueprint: %s: unknown align %q", path, s)
}

func (t *Tree) construct(n Node, path string) (ui.Widget, error) {
	switch n.Type {
	case "label":
		return ui.NewLabel(ui.LabelOptions{Rect: n.rect(), Text: n.Text, Style: n.style()}), nil
	case "button":
		return ui.NewButton(ui.ButtonOptions{Rect: n.rect(), Text: n.Text, Style: n.style()}), nil
	case "panel":
		return ui.NewPanel(ui.PanelOptions{Rect: n.rect(), Style: n.style()}), nil
	case "checkbox":
		return ui.NewCheckbox(ui.CheckboxOptions{Rect: n.rect(), Text: n.Text, Checked: n.Checked, Style: n.style()}), nil
	case "slider":
		s, err := ui.NewSlider(ui.SliderOptions{
			Rect: n.rect(), Min: n.Min, Max: n.Max, Step: n.Step, Value: n.Value, Style: n.style(),
		})
		if err != nil {
			return nil, fmt.Errorf("blueprint: %s: %w", path, err)
		}
		return s, nil
	case "text_input":
		return ui.NewTextInput(ui.TextInputOptions{
			Rect: n.rect(), Text: n.Text, Placeholder: n.Placeholder, MaxLength: n.MaxLength, Style: n.style(),
		}), nil
	case "dropdown":
		return ui.NewDropdown(ui.DropdownOptions{
			Rect: n.rect(), Options: n.Options, Selected: n.Selected, Style: n.style(),
		}), nil
	case "tab_bar":
		return ui.NewTabBar(ui.TabBarOptions{
			Rect: n.rect(), Tabs: n.Tabs, Active: n.Selected, Style: n.style(),
		}), nil
	case "vbox", "hbox":
		align, err := parseAlign(n.Align, path)
		if err != nil {
			return nil, err
		}
		co := ui.ContainerOptions{Rect: n.rect(), Style: n.style(), Padding: n.Padding, AutoSize: n.AutoSize}
		if n.Type == "vbox" {
			return ui.NewVBox(ui.VBoxOptions{ContainerOptions: co, Spacing: n.Spacing, Align: align}), nil
		}
		return ui.NewHBox(ui.HBoxOptions{ContainerOptions: co, Spacing: n.Spacing, Align: align}), nil
	case "grid":
		align, err := parseAlign(n.Align, path)
		if err != nil {
			return nil, err
		}
		sx, sy := n.SpacingX, n.SpacingY
		if sx == 0 {
			sx = n.Spacing
		}
		if sy == 0 {
			sy = n.Spacing
		}
		g, err := ui.NewGrid(ui.GridOptions{
			ContainerOptions: ui.ContainerOptions{Rect: n.rect(), Style: n.style(), Padding: n.Padding, AutoSize: n.AutoSize},
			Columns:          n.Columns,
			SpacingX:         sx,
			SpacingY:         sy,
			CellSize:         geom.Size{Width: n.CellWidth, Height: n.CellHeight},
			Align:            align,
		})
		if err != nil {
			return nil, fmt.Errorf("blueprint: %s: %w", path, err)
		}
		return g, nil
	case "scroll_view":
		return ui.NewScrollView(ui.ScrollViewOptions{
			Rect:        n.rect(),
			Style:       n.style(),
			Padding:     n.Padding,
			ContentSize: geom.Size{Width: n.ContentWidth, Height: n.ContentHeight},
		}), nil
	case "":
		return nil, fmt.Errorf("blueprint: %s: missing widget type", path)
	default:
		return nil, fmt.Errorf("blueprint: %s: unknown widget type %q", path, n.Type)
	}
}
