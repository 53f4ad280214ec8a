//go:build !ebiten

package ui

import "chroma-ca/internal/core"

// HUD has nothing to draw in headless builds; cmd/bout-run logs the same
// parameter and generation lines instead.
type HUD struct{}

// NewHUD returns nil; every HUD method accepts a nil receiver.
func NewHUD(core.Sim, int) *HUD { return nil }

// Update skips the panel rebuild.
func (h *HUD) Update() {}

// Draw skips the panel.
func (h *HUD) Draw(any, int, int) {}
