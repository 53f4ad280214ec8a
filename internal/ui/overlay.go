//go:build ebiten

package ui

import (
	"image/color"

	"chroma-ca/internal/core"
	"chroma-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws score and saturation heat masks over the field.
type Overlay struct {
	sim     core.Sim
	scale   int
	painter *render.GridPainter
	state   overlayState
}

// NewOverlay constructs an overlay for sim drawn at scale.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{sim: sim, scale: scale, painter: render.NewGridPainter(size.W, size.H)}
}

// Update toggles masks: 1 for score, 2 for saturation.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.state.toggle(maskScore)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.state.toggle(maskSaturation)
	}
}

// Draw renders the enabled masks onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(maskProvider)
	if !ok {
		return
	}
	if o.state.showScore {
		o.painter.BlitMask(screen, provider.ScoreMask(), color.RGBA{R: 255, G: 220, B: 40, A: 255}, 200, o.scale)
	}
	if o.state.showSaturation {
		o.painter.BlitMask(screen, provider.SaturationMask(), color.RGBA{R: 64, G: 164, B: 223, A: 255}, 200, o.scale)
	}
}
