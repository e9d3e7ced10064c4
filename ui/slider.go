package ui

import (
	"fmt"
	"math"

	"github.com/vireo-ui/vireo/geom"
)

// Slider selects a numeric value from [Min, Max] by dragging a handle along
// a horizontal track. With a positive Step, values quantize to the nearest
// multiple of Step from Min; OnChange fires only when the quantized value
// actually changes, so a drag across one step interval produces exactly one
// callback.
type Slider struct {
	Base

	min, max, step float64
	value          float64
	style          Style

	dragging bool

	onChange func(value float64)
}

// SliderOptions configures a Slider.
type SliderOptions struct {
	Rect  geom.Rect
	Min   float64
	Max   float64
	Step  float64 // zero means continuous
	Value float64
	Style Style

	OnChange func(float64)
}

// NewSlider builds a horizontal slider. Min must not exceed Max and Step
// must not be negative.
func NewSlider(opts SliderOptions) (*Slider, error) {
	if opts.Min > opts.Max {
		return nil, fmt.Errorf("slider: min %g exceeds max %g", opts.Min, opts.Max)
	}
	if opts.Step < 0 {
		return nil, fmt.Errorf("slider: negative step %g", opts.Step)
	}
	s := &Slider{
		min:      opts.Min,
		max:      opts.Max,
		step:     opts.Step,
		style:    opts.Style,
		onChange: opts.OnChange,
	}
	s.bind(s)
	s.rect = opts.Rect
	s.focusable = true
	s.value = s.quantize(opts.Value)
	return s, nil
}

// Value returns the current (quantized) value.
func (s *Slider) Value() float64 { return s.value }

// SetValue sets the value programmatically: it is quantized and clamped, and
// OnChange fires only if the stored value changes.
func (s *Slider) SetValue(v float64) {
	q := s.quantize(v)
	if q == s.value {
		return
	}
	s.value = q
	if s.onChange != nil {
		s.onChange(q)
	}
}

// Min returns the lower bound.
func (s *Slider) Min() float64 { return s.min }

// Max returns the upper bound.
func (s *Slider) Max() float64 { return s.max }

// Step returns the quantization interval, zero for continuous.
func (s *Slider) Step() float64 { return s.step }

// OnChange sets the callback fired after the value changes.
func (s *Slider) OnChange(fn func(float64)) { s.onChange = fn }

// quantize clamps v into [min, max] and rounds it to the nearest step
// multiple counted from min. Rounding happens before the final clamp so a
// value near max still lands on a representable step.
func (s *Slider) quantize(v float64) float64 {
	v = geom.Clamp(v, s.min, s.max)
	if s.step > 0 {
		v = s.min + math.Round((v-s.min)/s.step)*s.step
		v = geom.Clamp(v, s.min, s.max)
	}
	return v
}

// valueAt maps an absolute x coordinate on the track to a raw value.
func (s *Slider) valueAt(x float64) float64 {
	abs := s.AbsoluteRect()
	if abs.Width <= 0 || s.max == s.min {
		return s.min
	}
	t := geom.Clamp((x-abs.X)/abs.Width, 0, 1)
	return s.min + t*(s.max-s.min)
}

// HandleEvent implements press-to-set plus drag: the press moves the handle
// to the pointer immediately, and dragging keeps tracking it until release,
// even after the pointer leaves the widget.
func (s *Slider) HandleEvent(e Event) bool {
	if !s.visible || !s.enabled {
		return false
	}
	if s.DispatchToChildren(e) {
		return true
	}
	switch ev := e.(type) {
	case *MouseEvent:
		switch ev.Kind {
		case EventMouseDown:
			if ev.Button == MouseButtonLeft && s.AbsoluteRect().Contains(ev.Pos) {
				s.dragging = true
				s.pressed = true
				s.Focus()
				s.SetValue(s.valueAt(ev.Pos.X))
				return true
			}
		case EventMouseMove:
			if s.dragging {
				s.SetValue(s.valueAt(ev.Pos.X))
				return true
			}
		case EventMouseUp:
			if s.dragging {
				s.dragging = false
				s.pressed = false
				return true
			}
		}
	case *KeyEvent:
		if !s.focused {
			return false
		}
		step := s.step
		if step <= 0 {
			step = (s.max - s.min) / 100
		}
		switch ev.Key {
		case KeyLeft, KeyDown:
			s.SetValue(s.value - step)
			return true
		case KeyRight, KeyUp:
			s.SetValue(s.value + step)
			return true
		case KeyHome:
			s.SetValue(s.min)
			return true
		case KeyEnd:
			s.SetValue(s.max)
			return true
		}
	}
	return false
}

// Draw paints the track, the filled portion, and the handle.
func (s *Slider) Draw(sf Surface, origin geom.Point) {
	abs := s.rect.At(origin.Add(s.rect.Origin()))

	trackH := 6.0
	track := geom.NewRect(abs.X, abs.Y+(abs.Height-trackH)/2, abs.Width, trackH)
	sf.FillRect(track, s.style.Background, trackH/2)

	var t float64
	if s.max > s.min {
		t = (s.value - s.min) / (s.max - s.min)
	}
	if t > 0 {
		fill := s.style.HoverColor
		if !s.enabled {
			fill = s.style.DisabledColor
		}
		sf.FillRect(geom.NewRect(track.X, track.Y, track.Width*t, track.Height), fill, trackH/2)
	}

	handleR := abs.Height * 0.35
	hc := s.style.TextColor
	switch {
	case !s.enabled:
		hc = s.style.DisabledColor
	case s.dragging:
		hc = s.style.PressedColor
	case s.hovered:
		hc = s.style.HoverColor
	}
	sf.FillCircle(geom.Pt(track.X+track.Width*t, abs.Y+abs.Height/2), handleR, hc)

	s.DrawChildren(sf, abs.Origin())
}
