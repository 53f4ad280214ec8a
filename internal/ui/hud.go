//go:build ebiten

package ui

import (
	"image/color"

	"chroma-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter and statistics panel to the right of the
// simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	lines []hudLine
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Update rebuilds the panel text from the simulation's parameters and the
// latest generation statistics.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	var snap core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	var stats []string
	if provider, ok := h.sim.(core.StatsProvider); ok {
		stats = provider.StatsLines()
	}
	h.lines = layout(h.sim.Name(), snap, stats)
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := panelPadding + headerBaseline + i*lineHeight
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, line.text, face, panelPadding, y, line.style.color())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (s lineStyle) color() color.Color {
	switch s {
	case styleTitle:
		return color.RGBA{R: 200, G: 200, B: 210, A: 255}
	case styleGroup:
		return color.RGBA{R: 160, G: 160, B: 170, A: 255}
	default:
		return color.RGBA{R: 220, G: 220, B: 230, A: 255}
	}
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 16
)
