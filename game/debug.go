package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var colorOverlay = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// DebugState holds the debug toggles
type DebugState struct {
	ShowOverlay bool // F1
}

// overlayLines describes the simulation for the debug overlay
func overlayLines(sim *Simulation, seed int64, fps float64) []string {
	p := sim.Player()
	return []string{
		fmt.Sprintf("FPS: %.0f", fps),
		fmt.Sprintf("Score: %d", sim.Score()),
		fmt.Sprintf("Player: %d,%d", p.Pos.X, p.Pos.Y),
		fmt.Sprintf("Bullets: %d", len(p.Bullets)),
		fmt.Sprintf("Enemies: %d", len(sim.Enemies())),
		fmt.Sprintf("Seed: %d", seed),
	}
}

// drawOverlay prints the debug lines in the top-left corner
func (g *Game) drawOverlay(screen *ebiten.Image) {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	for i, line := range overlayLines(g.sim, g.config.Seed, ebiten.ActualFPS()) {
		text.Draw(screen, line, face, 8, 16+i*lineHeight, colorOverlay)
	}
}
