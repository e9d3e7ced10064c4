package ui

import "github.com/vireo-ui/vireo/geom"

// TextInput is a single-line text field. It takes focus on click, edits
// through keyboard events while focused, blinks its cursor on the Update
// clock, submits on Enter, and releases focus on Escape.
type TextInput struct {
	Base

	buf         *textBuffer
	style       Style
	placeholder string

	blinkTimer  float64
	cursorShown bool

	onChange func(text string)
	onSubmit func(text string)
}

// TextInputOptions configures a TextInput.
type TextInputOptions struct {
	Rect        geom.Rect
	Text        string
	Placeholder string
	Style       Style

	// MaxLength caps the text at a rune count; zero means unlimited. Typed
	// input beyond the cap is dropped without error.
	MaxLength int

	OnChange func(string)
	OnSubmit func(string)
}

// NewTextInput builds a single-line editable field.
func NewTextInput(opts TextInputOptions) *TextInput {
	t := &TextInput{
		buf:         newTextBuffer(opts.Text, opts.MaxLength),
		style:       opts.Style,
		placeholder: opts.Placeholder,
		cursorShown: true,
		onChange:    opts.OnChange,
		onSubmit:    opts.OnSubmit,
	}
	t.bind(t)
	t.rect = opts.Rect
	t.focusable = true
	return t
}

// Text returns the field contents.
func (t *TextInput) Text() string { return t.buf.String() }

// SetText replaces the contents (truncated to MaxLength) and moves the
// cursor to the end. OnChange fires if the text changed.
func (t *TextInput) SetText(s string) {
	before := t.buf.String()
	t.buf.SetText(s)
	if t.buf.String() != before {
		t.fireChange()
	}
}

// CursorPos returns the cursor position in runes.
func (t *TextInput) CursorPos() int { return t.buf.Cursor() }

// Placeholder returns the hint text shown while empty and unfocused.
func (t *TextInput) Placeholder() string { return t.placeholder }

// SetPlaceholder replaces the hint text.
func (t *TextInput) SetPlaceholder(s string) { t.placeholder = s }

// OnChange sets the callback fired after the text changes.
func (t *TextInput) OnChange(fn func(string)) { t.onChange = fn }

// OnSubmit sets the callback fired when Enter is pressed while focused.
func (t *TextInput) OnSubmit(fn func(string)) { t.onSubmit = fn }

func (t *TextInput) fireChange() {
	if t.onChange != nil {
		t.onChange(t.buf.String())
	}
}

// resetBlink makes the cursor visible immediately; every edit or focus
// change restarts the blink phase so the cursor is never invisible right
// after the user acted.
func (t *TextInput) resetBlink() {
	t.blinkTimer = 0
	t.cursorShown = true
}

// Update advances the cursor blink clock while focused.
func (t *TextInput) Update(dt float64) {
	if t.focused {
		interval := t.settings().CursorBlinkInterval
		t.blinkTimer += dt
		for interval > 0 && t.blinkTimer >= interval {
			t.blinkTimer -= interval
			t.cursorShown = !t.cursorShown
		}
	}
	t.Base.Update(dt)
}

// HandleEvent takes focus on click (placing the cursor at the clicked rune
// boundary) and edits on keyboard input while focused.
func (t *TextInput) HandleEvent(e Event) bool {
	if !t.visible || !t.enabled {
		return false
	}
	if t.DispatchToChildren(e) {
		return true
	}
	switch ev := e.(type) {
	case *MouseEvent:
		if ev.Kind == EventMouseDown && ev.Button == MouseButtonLeft &&
			t.AbsoluteRect().Contains(ev.Pos) {
			t.Focus()
			t.buf.SetCursor(t.indexAt(ev.Pos.X))
			t.resetBlink()
			return true
		}
	case *KeyEvent:
		if t.focused {
			return t.handleKey(ev)
		}
	}
	return false
}

func (t *TextInput) handleKey(ev *KeyEvent) bool {
	defer t.resetBlink()
	switch ev.Key {
	case KeyBackspace:
		if t.buf.Backspace() {
			t.fireChange()
		}
		return true
	case KeyDelete:
		if t.buf.Delete() {
			t.fireChange()
		}
		return true
	case KeyLeft:
		t.buf.MoveLeft()
		return true
	case KeyRight:
		t.buf.MoveRight()
		return true
	case KeyHome:
		t.buf.MoveHome()
		return true
	case KeyEnd:
		t.buf.MoveEnd()
		return true
	case KeyEnter:
		if t.onSubmit != nil {
			t.onSubmit(t.buf.String())
		}
		return true
	case KeyEscape:
		t.Blur()
		return true
	}
	if ev.Char >= ' ' && ev.Char != 0x7F {
		if t.buf.Insert(ev.Char) {
			t.fireChange()
		}
		// Consumed even when the cap dropped it: the keystroke was aimed
		// at this field.
		return true
	}
	return false
}

// indexAt maps an absolute x coordinate to the nearest rune boundary.
func (t *TextInput) indexAt(x float64) int {
	abs := t.AbsoluteRect()
	local := x - abs.X - t.textPad()
	runes := []rune(t.buf.String())
	m := t.measurer()
	for i := range runes {
		w := m.MeasureText(string(runes[:i+1]), t.style.Font).Width
		prev := m.MeasureText(string(runes[:i]), t.style.Font).Width
		if local < (prev+w)/2 {
			return i
		}
	}
	return len(runes)
}

func (t *TextInput) textPad() float64 { return 6 }

// Draw paints the field frame, the text or placeholder, and the blinking
// cursor while focused.
func (t *TextInput) Draw(s Surface, origin geom.Point) {
	abs := t.rect.At(origin.Add(t.rect.Origin()))

	bg := t.style.Background
	if !t.enabled {
		bg = t.style.DisabledColor
	}
	s.FillRect(abs, bg, t.style.BorderRadius)

	border := t.style.BorderColor
	if t.focused {
		border = t.style.HoverColor
	}
	s.StrokeRect(abs, border, t.style.BorderWidth, t.style.BorderRadius)

	text := t.buf.String()
	c := t.style.TextColor
	if text == "" && !t.focused && t.placeholder != "" {
		text = t.placeholder
		c = t.style.DisabledColor
	}
	if !t.enabled {
		c = t.style.DisabledColor
	}
	m := t.measurer()
	sz := m.MeasureText(text, t.style.Font)
	pos := geom.Pt(abs.X+t.textPad(), abs.Y+(abs.Height-sz.Height)/2)
	s.DrawText(text, pos, t.style.Font, c)

	if t.focused && t.cursorShown {
		runes := []rune(t.buf.String())
		cx := pos.X + m.MeasureText(string(runes[:t.buf.Cursor()]), t.style.Font).Width
		s.FillRect(geom.NewRect(cx, abs.Y+4, 1, abs.Height-8), t.style.TextColor, 0)
	}

	t.DrawChildren(s, abs.Origin())
}
