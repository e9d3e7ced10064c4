package ui

import "image/color"

// Style carries the explicit visual values a widget draws with. Every widget
// owns its own Style; there is deliberately no module-level default theme —
// construct a Style (or start from DefaultStyle) and pass it in.
type Style struct {
	Background     color.RGBA
	HoverColor     color.RGBA
	PressedColor   color.RGBA
	BorderColor    color.RGBA
	TextColor      color.RGBA
	DisabledColor  color.RGBA
	ScrollbarTrack color.RGBA
	ScrollbarThumb color.RGBA
	BorderWidth    float64
	BorderRadius   float64
	Font           Font
	HasBackground  bool // draw Background even if it is the zero color
}

// DefaultStyle returns the stock dark style. Callers are expected to copy
// and adjust it.
func DefaultStyle() Style {
	return Style{
		Background:     RGB(50, 50, 50),
		HoverColor:     RGB(70, 70, 90),
		PressedColor:   RGB(40, 40, 55),
		BorderColor:    RGB(80, 80, 80),
		TextColor:      RGB(255, 255, 255),
		DisabledColor:  RGB(100, 100, 100),
		ScrollbarTrack: RGB(35, 35, 35),
		ScrollbarThumb: RGB(110, 110, 110),
		BorderWidth:    1,
		BorderRadius:   4,
		Font:           DefaultFont(),
		HasBackground:  true,
	}
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// RGBA builds a color with explicit alpha.
func RGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Hex parses "#RRGGBB" or "#RRGGBBAA" (leading '#' optional) into a color.
// Malformed input yields opaque black, matching how the original treated
// unknown colors.
func Hex(s string) color.RGBA {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{A: 0xFF}
	}
	var v [4]uint8
	v[3] = 0xFF
	for i := 0; i*2 < len(s); i++ {
		hi, ok1 := hexDigit(s[i*2])
		lo, ok2 := hexDigit(s[i*2+1])
		if !ok1 || !ok2 {
			return color.RGBA{A: 0xFF}
		}
		v[i] = hi<<4 | lo
	}
	return color.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// transparent reports whether c draws nothing.
func transparent(c color.RGBA) bool {
	return c.A == 0
}
