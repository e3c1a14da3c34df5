//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"life3d/internal/engine"
	"life3d/internal/render"
	"life3d/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Clear colors signal the run state, a darker tint while paused.
var (
	runningBG = color.RGBA{R: 0, G: 0, B: 51, A: 255}
	pausedBG  = color.RGBA{R: 64, G: 0, B: 0, A: 255}
)

// Game adapts the lifecycle engine to the ebiten.Game interface, translating
// keyboard and mouse input into engine commands.
type Game struct {
	eng     *engine.Engine
	painter *render.CellPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale       int
	probability float64
	attrs       []engine.CellAttr

	// Drag painting state: the last cell toggled while the mouse button is
	// held, so a drag flips each cell at most once.
	drawing bool
	lastCX  int
	lastCY  int
}

// New constructs a Game for the provided engine.
func New(eng *engine.Engine, scale int, probability float64) *Game {
	size := eng.Size()
	return &Game{
		eng:         eng,
		painter:     render.NewCellPainter(size.W, size.H),
		hud:         ui.NewHUD(eng),
		overlay:     ui.NewOverlay(),
		scale:       scale,
		probability: probability,
		lastCX:      -1,
		lastCY:      -1,
	}
}

// Update queues commands from the input devices and advances the engine by
// one frame tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.eng.Running() {
			g.eng.Enqueue(engine.Pause())
		} else {
			g.eng.Enqueue(engine.Resume())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.eng.Enqueue(engine.Randomize(time.Now().UnixNano(), g.probability))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.eng.Enqueue(engine.Clear())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.eng.Enqueue(engine.SetSpeed(g.eng.Speed() * 2))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.eng.Enqueue(engine.SetSpeed(g.eng.Speed() / 2))
	}

	g.handleMouse()

	if g.overlay != nil {
		g.overlay.Update()
	}

	for _, err := range g.eng.Update(1) {
		log.Printf("command rejected: %v", err)
	}
	g.attrs = g.eng.Snapshot(g.attrs)
	return nil
}

// handleMouse paints cells while the left button is held, toggling each cell
// under the cursor at most once per pass.
func (g *Game) handleMouse() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.drawing = false
		g.lastCX, g.lastCY = -1, -1
		return
	}
	mx, my := ebiten.CursorPosition()
	cx, cy := mx/g.scale, my/g.scale
	if g.drawing && cx == g.lastCX && cy == g.lastCY {
		return
	}
	g.eng.Enqueue(engine.Toggle(cx, cy))
	g.drawing = true
	g.lastCX, g.lastCY = cx, cy
}

// Draw renders the universe, the status HUD, and the help overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	bg := runningBG
	if !g.eng.Running() {
		bg = pausedBG
	}
	screen.Fill(bg)
	g.painter.Blit(screen, g.attrs, g.scale)
	if g.hud != nil {
		g.hud.Draw(screen)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.eng.Size()
	return s.W * g.scale, s.H * g.scale
}
