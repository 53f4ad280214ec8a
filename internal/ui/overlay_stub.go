//go:build !ebiten

package ui

import "chroma-ca/internal/core"

// Overlay keeps the score and saturation mask toggles out of headless builds.
type Overlay struct{}

// NewOverlay returns an overlay that never draws.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Update ignores the 1 and 2 keys.
func (o *Overlay) Update() {}

// Draw draws no masks.
func (o *Overlay) Draw(any) {}
