package game

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the simulation to ebiten's update/draw loop
type Game struct {
	sim     *Simulation
	config  Config
	input   InputSource
	display ScoreDisplay
	logger  *log.Logger
	debug   DebugState

	// Clock, replaceable in tests
	now func() time.Time

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates a game reading the keyboard and mouse and showing the
// score in the window title
func NewGame(config Config, rng *rand.Rand, logger *log.Logger) *Game {
	sim := NewSimulation(config.Tuning, rng, logger)
	return newGame(config, sim, NewKeyboardInput(), &WindowTitle{}, logger, time.Now)
}

func newGame(config Config, sim *Simulation, input InputSource, display ScoreDisplay, logger *log.Logger, now func() time.Time) *Game {
	return &Game{
		sim:            sim,
		config:         config,
		input:          input,
		display:        display,
		logger:         logger,
		now:            now,
		lastUpdateTime: now(),
	}
}

// Simulation returns the underlying game state
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Update advances the simulation by the wall-clock time since the last
// frame. The delta is not clamped; a slow frame moves everything further.
func (g *Game) Update() error {
	now := g.now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.ShowOverlay = !g.debug.ShowOverlay
	}

	g.sim.Tick(deltaTime, g.input.Poll(), g.config.Viewport())
	g.display.SetScore(g.sim.Score())

	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.sim.Render(NewScreenSurface(screen)); err != nil {
		g.logger.Error("failed to present frame", "err", err)
	}
	if g.debug.ShowOverlay {
		g.drawOverlay(screen)
	}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
