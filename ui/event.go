package ui

import "github.com/vireo-ui/vireo/geom"

// ============================================================================
// Event Types
// ============================================================================

// EventType identifies the kind of input event the host loop produced.
type EventType uint8

const (
	// Mouse events
	EventMouseMove EventType = iota + 1
	EventMouseDown
	EventMouseUp
	EventMouseWheel

	// Keyboard events
	EventKeyDown

	// Window events
	EventResize
)

// MouseButton identifies which mouse button was pressed.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// Modifiers is a bitmask of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// Key is a logical key code for EventKeyDown events. The backend translates
// its platform codes into these; widgets never see platform codes.
type Key uint16

const (
	KeyNone Key = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyTab
	KeySpace
)

// ============================================================================
// Event Interface and Concrete Events
// ============================================================================

// Event is the interface all input events satisfy. Events are plain values
// created once per host-loop input and dispatched synchronously; a widget
// that returns true from HandleEvent consumes the event and stops
// propagation.
type Event interface {
	// Type returns the event type.
	Type() EventType
}

// MouseEvent carries pointer-move, button, and wheel events. Pos is in
// screen coordinates (the Manager's space); widgets compare it against their
// absolute rect.
type MouseEvent struct {
	Kind   EventType
	Pos    geom.Point
	Button MouseButton

	// Wheel delta, only meaningful for EventMouseWheel. Positive Y scrolls
	// the content up (wheel away from the user).
	Delta geom.Point

	Modifiers Modifiers
}

func (e *MouseEvent) Type() EventType { return e.Kind }

// KeyEvent carries a key press. Char is the typed character when the key
// produces text input, or zero for control keys.
type KeyEvent struct {
	Key       Key
	Char      rune
	Modifiers Modifiers
}

func (e *KeyEvent) Type() EventType { return EventKeyDown }

// ResizeEvent reports a change of the host window size.
type ResizeEvent struct {
	Width, Height float64
}

func (e *ResizeEvent) Type() EventType { return EventResize }

// NewMouseMove builds a pointer-move event.
func NewMouseMove(pos geom.Point, mods Modifiers) *MouseEvent {
	return &MouseEvent{Kind: EventMouseMove, Pos: pos, Modifiers: mods}
}

// NewMouseDown builds a button-press event.
func NewMouseDown(pos geom.Point, button MouseButton, mods Modifiers) *MouseEvent {
	return &MouseEvent{Kind: EventMouseDown, Pos: pos, Button: button, Modifiers: mods}
}

// NewMouseUp builds a button-release event.
func NewMouseUp(pos geom.Point, button MouseButton, mods Modifiers) *MouseEvent {
	return &MouseEvent{Kind: EventMouseUp, Pos: pos, Button: button, Modifiers: mods}
}

// NewMouseWheel builds a wheel event at pos with the given scroll delta.
func NewMouseWheel(pos, delta geom.Point, mods Modifiers) *MouseEvent {
	return &MouseEvent{Kind: EventMouseWheel, Pos: pos, Delta: delta, Modifiers: mods}
}

// NewKeyDown builds a key event. char is zero for non-text keys.
func NewKeyDown(key Key, char rune, mods Modifiers) *KeyEvent {
	return &KeyEvent{Key: key, Char: char, Modifiers: mods}
}
