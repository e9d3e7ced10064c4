package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vireo-ui/vireo/geom"
	"github.com/vireo-ui/vireo/ui"
)

// keymap pairs the ebiten keys the widgets care about with their logical
// codes. Printable input arrives through AppendInputChars instead.
var keymap = []struct {
	src ebiten.Key
	dst ui.Key
}{
	{ebiten.KeyBackspace, ui.KeyBackspace},
	{ebiten.KeyDelete, ui.KeyDelete},
	{ebiten.KeyArrowLeft, ui.KeyLeft},
	{ebiten.KeyArrowRight, ui.KeyRight},
	{ebiten.KeyArrowUp, ui.KeyUp},
	{ebiten.KeyArrowDown, ui.KeyDown},
	{ebiten.KeyHome, ui.KeyHome},
	{ebiten.KeyEnd, ui.KeyEnd},
	{ebiten.KeyEnter, ui.KeyEnter},
	{ebiten.KeyEscape, ui.KeyEscape},
	{ebiten.KeyTab, ui.KeyTab},
	{ebiten.KeySpace, ui.KeySpace},
}

var buttonmap = []struct {
	src ebiten.MouseButton
	dst ui.MouseButton
}{
	{ebiten.MouseButtonLeft, ui.MouseButtonLeft},
	{ebiten.MouseButtonRight, ui.MouseButtonRight},
	{ebiten.MouseButtonMiddle, ui.MouseButtonMiddle},
}

// keyRepeat matches the usual text-field timing: first repeat after 0.5s,
// then 20 per second. Ticks are counted at ebiten's TPS.
const (
	repeatDelayTicks    = 30
	repeatIntervalTicks = 3
)

// Input polls Ebitengine's input state once per tick and feeds the deltas
// to a Manager as ui events.
type Input struct {
	lastCursor geom.Point
	chars      []rune
}

// NewInput builds an input translator.
func NewInput() *Input {
	return &Input{lastCursor: geom.Pt(-1, -1)}
}

func modifiers() ui.Modifiers {
	var m ui.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= ui.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= ui.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= ui.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= ui.ModSuper
	}
	return m
}

func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d >= repeatDelayTicks && (d-repeatDelayTicks)%repeatIntervalTicks == 0
}

// Poll reads this tick's input and dispatches it to m.
func (in *Input) Poll(m *ui.Manager) {
	mods := modifiers()

	cx, cy := ebiten.CursorPosition()
	cursor := geom.Pt(float64(cx), float64(cy))
	if cursor != in.lastCursor {
		in.lastCursor = cursor
		m.DispatchEvent(ui.NewMouseMove(cursor, mods))
	}

	for _, bm := range buttonmap {
		if inpututil.IsMouseButtonJustPressed(bm.src) {
			m.DispatchEvent(ui.NewMouseDown(cursor, bm.dst, mods))
		}
		if inpututil.IsMouseButtonJustReleased(bm.src) {
			m.DispatchEvent(ui.NewMouseUp(cursor, bm.dst, mods))
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		m.DispatchEvent(ui.NewMouseWheel(cursor, geom.Pt(wx, wy), mods))
	}

	in.chars = ebiten.AppendInputChars(in.chars[:0])
	for _, r := range in.chars {
		m.DispatchEvent(ui.NewKeyDown(ui.KeyNone, r, mods))
	}

	for _, km := range keymap {
		if repeating(km.src) {
			m.DispatchEvent(ui.NewKeyDown(km.dst, 0, mods))
		}
	}
}
