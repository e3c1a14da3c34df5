//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the key binding help on top of the simulation view.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// Update toggles overlay visibility from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw paints the help text when the overlay is visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.visible {
		return
	}
	lines := []string{
		"space      pause / resume",
		"r          randomize",
		"delete     clear",
		"=/-        faster / slower",
		"click+drag toggle cells",
		"h          toggle this help",
		"q, esc     quit",
	}
	y := 36
	for _, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, 8, y, color.White)
		y += 14
	}
}
