//go:build !ebiten

package app

import (
	"errors"

	"chroma-ca/internal/core"
)

// errHeadless is returned by the window loop in builds without ebiten.
var errHeadless = errors.New("app: no window in this build; rebuild with -tags ebiten or use cmd/bout-run")

// Game stands in for the window loop so headless builds still compile.
type Game struct{}

// New panics: the arena window only exists in ebiten builds.
func New(core.Sim, int, int, int) *Game {
	panic(errHeadless)
}

// Reset does nothing without a window.
func (g *Game) Reset(int64) {}

// Update reports errHeadless.
func (g *Game) Update() error { return errHeadless }

// Draw does nothing without a window.
func (g *Game) Draw(any) {}

// Layout has no screen to size.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
