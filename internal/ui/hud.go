//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"life3d/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD paints the simulation status line in the top-left corner of the view.
type HUD struct {
	eng *engine.Engine
}

// NewHUD constructs a HUD reading from the provided engine.
func NewHUD(eng *engine.Engine) *HUD {
	return &HUD{eng: eng}
}

// Draw renders the status line onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.eng == nil {
		return
	}
	status := "RUNNING"
	if !h.eng.Running() {
		status = "PAUSED"
	}
	line := fmt.Sprintf("gen %d | pop %d | speed %.2fx | %s",
		h.eng.Generation(), h.eng.Population(), h.eng.Speed(), status)
	text.Draw(screen, line, basicfont.Face7x13, 8, 16, color.White)
}
