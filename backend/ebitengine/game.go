package ebitengine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vireo-ui/vireo/ui"
)

// Game adapts a ui.Manager to the ebiten.Game loop: input is polled and the
// tree updated in Update, and the tree painted in Draw.
type Game struct {
	mgr   *ui.Manager
	input *Input

	surface *Surface

	// Background is cleared before the tree paints.
	Background color.RGBA

	width, height int
}

// NewGame wraps a Manager for ebiten.RunGame.
func NewGame(m *ui.Manager) *Game {
	m.SetTextMeasurer(Measurer())
	w, h := m.Size()
	return &Game{
		mgr:        m,
		input:      NewInput(),
		Background: color.RGBA{R: 30, G: 30, B: 30, A: 0xFF},
		width:      int(w),
		height:     int(h),
	}
}

// Manager returns the wrapped Manager.
func (g *Game) Manager() *ui.Manager { return g.mgr }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.input.Poll(g.mgr)
	g.mgr.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.Background)
	if g.surface == nil {
		g.surface = NewSurface(screen)
	} else {
		g.surface.Reset(screen)
	}
	g.mgr.Draw(g.surface)
}

// Layout implements ebiten.Game. Size changes are forwarded to the Manager
// as resize events.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.mgr.DispatchEvent(&ui.ResizeEvent{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	return g.width, g.height
}
