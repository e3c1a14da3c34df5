//go:build !ebiten

package ui

import "life3d/internal/engine"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*engine.Engine) *HUD { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
