package game

import (
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"
)

// spawnPoints are the off-screen corners enemies enter from, each 50 units
// outside an 800x600 screen. The last one sits at x=8050 rather than 850,
// so enemies from it take about forty seconds to arrive.
var spawnPoints = [4]Vec2i{
	{X: -50, Y: -50},
	{X: 800 + 50, Y: -50},
	{X: -50, Y: 600 + 50},
	{X: 8000 + 50, Y: 600 + 50},
}

// Simulation is the whole game state: one player, the live enemies and
// the score. It has no notion of windows or time sources.
type Simulation struct {
	player  *Player
	enemies []Enemy // newest first

	tuning     Tuning
	spawnTimer float64
	score      int

	rng    *rand.Rand
	logger *log.Logger
}

// NewSimulation creates a fresh game with the player at the origin
func NewSimulation(tuning Tuning, rng *rand.Rand, logger *log.Logger) *Simulation {
	return &Simulation{
		player:  NewPlayer(tuning),
		enemies: make([]Enemy, 0, 16),
		tuning:  tuning,
		rng:     rng,
		logger:  logger,
	}
}

// Player returns the player
func (s *Simulation) Player() *Player {
	return s.player
}

// Enemies returns the live enemies, newest first
func (s *Simulation) Enemies() []Enemy {
	return s.enemies
}

// Score returns the current score
func (s *Simulation) Score() int {
	return s.score
}

// Tick advances the game by dt seconds.
//
// The score is reset while any enemy overlaps the player, and only then
// are dead enemies pruned, each one adding a point. An enemy that rammed
// the player therefore leaves the score at 1, not 0.
func (s *Simulation) Tick(dt float64, in InputState, viewport Vec2i) {
	s.player.Update(dt, in, viewport)

	s.spawnTimer += dt
	if s.spawnTimer > s.tuning.SpawnInterval {
		s.spawnTimer = 0
		s.spawnEnemy()
	}

	for i := range s.enemies {
		s.enemies[i].Update(dt, s.player)
	}

	for i := range s.enemies {
		if s.enemies[i].Touches(s.player) {
			if s.score > 0 {
				s.logger.Debug("player hit", "score", s.score)
			}
			s.score = 0
		}
	}

	before := len(s.enemies)
	s.enemies = slices.DeleteFunc(s.enemies, func(e Enemy) bool {
		return !e.Active()
	})
	s.score += before - len(s.enemies)
}

func (s *Simulation) spawnEnemy() {
	pos := spawnPoints[s.rng.Intn(len(spawnPoints))]
	s.enemies = slices.Insert(s.enemies, 0, NewEnemy(pos, s.tuning.EnemySpeed))
	s.logger.Debug("enemy spawned", "x", pos.X, "y", pos.Y, "live", len(s.enemies))
}

// Render draws the player, its bullets and the enemies onto surface and
// presents the frame
func (s *Simulation) Render(surface Surface) error {
	surface.Clear(colorBackground)

	surface.FillRect(s.player.Pos, s.player.Size, colorPlayer)
	for _, b := range s.player.Bullets {
		surface.FillRect(b.Pos, b.Size, colorBullet)
	}
	for _, e := range s.enemies {
		surface.FillRect(e.Pos, e.Size, colorEnemy)
	}

	return surface.Present()
}
