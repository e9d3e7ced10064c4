package ui

// textBuffer is the editing model behind TextInput: a rune slice with a
// cursor and an optional length cap. Keeping it separate from the widget
// makes the editing rules testable without a tree or a surface.
//
// All positions are rune indices, so multi-byte input edits correctly.
type textBuffer struct {
	runes  []rune
	cursor int

	// maxLength caps the rune count; zero means unlimited. Input beyond the
	// cap is dropped silently, matching what a bounded form field does.
	maxLength int
}

func newTextBuffer(s string, maxLength int) *textBuffer {
	b := &textBuffer{maxLength: maxLength}
	b.SetText(s)
	return b
}

// String returns the buffer contents.
func (b *textBuffer) String() string { return string(b.runes) }

// Len returns the rune count.
func (b *textBuffer) Len() int { return len(b.runes) }

// Cursor returns the cursor position in runes, 0..Len.
func (b *textBuffer) Cursor() int { return b.cursor }

// SetText replaces the contents, truncating to the cap, and moves the
// cursor to the end.
func (b *textBuffer) SetText(s string) {
	b.runes = []rune(s)
	if b.maxLength > 0 && len(b.runes) > b.maxLength {
		b.runes = b.runes[:b.maxLength]
	}
	b.cursor = len(b.runes)
}

// Insert places r at the cursor and advances it. Reports whether the rune
// was accepted; a full buffer drops it.
func (b *textBuffer) Insert(r rune) bool {
	if b.maxLength > 0 && len(b.runes) >= b.maxLength {
		return false
	}
	b.runes = append(b.runes, 0)
	copy(b.runes[b.cursor+1:], b.runes[b.cursor:])
	b.runes[b.cursor] = r
	b.cursor++
	return true
}

// Backspace removes the rune before the cursor. Reports whether anything
// was removed.
func (b *textBuffer) Backspace() bool {
	if b.cursor == 0 {
		return false
	}
	b.runes = append(b.runes[:b.cursor-1], b.runes[b.cursor:]...)
	b.cursor--
	return true
}

// Delete removes the rune at the cursor. Reports whether anything was
// removed.
func (b *textBuffer) Delete() bool {
	if b.cursor >= len(b.runes) {
		return false
	}
	b.runes = append(b.runes[:b.cursor], b.runes[b.cursor+1:]...)
	return true
}

// MoveLeft steps the cursor one rune left, stopping at 0.
func (b *textBuffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight steps the cursor one rune right, stopping at the end.
func (b *textBuffer) MoveRight() {
	if b.cursor < len(b.runes) {
		b.cursor++
	}
}

// MoveHome jumps the cursor to the start.
func (b *textBuffer) MoveHome() { b.cursor = 0 }

// MoveEnd jumps the cursor past the last rune.
func (b *textBuffer) MoveEnd() { b.cursor = len(b.runes) }

// SetCursor clamps i into [0, Len] and moves the cursor there.
func (b *textBuffer) SetCursor(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(b.runes) {
		i = len(b.runes)
	}
	b.cursor = i
}
