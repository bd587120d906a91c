package game

// EnemySize is the width and height of every enemy
var EnemySize = Vec2i{X: 40, Y: 40}

// Enemy is a square that homes toward the player
type Enemy struct {
	Pos   Vec2i
	Size  Vec2i
	Speed float64 // 0 means inactive, pending removal
}

// NewEnemy creates an active enemy at pos
func NewEnemy(pos Vec2i, speed float64) Enemy {
	return Enemy{
		Pos:   pos,
		Size:  EnemySize,
		Speed: speed,
	}
}

// Active reports whether the enemy is still alive
func (e *Enemy) Active() bool {
	return e.Speed != 0
}

// Update steers the enemy toward the player and checks collisions.
// Touching the player or any of its bullets deactivates the enemy; the
// bullet is left alone and can hit other enemies in the same tick.
func (e *Enemy) Update(dt float64, player *Player) {
	dir := Normalize(player.Pos.Sub(e.Pos).Float())
	e.Pos = advance(e.Pos, dir, e.Speed, dt)

	if BoxesOverlap(e.Pos, player.Pos, e.Size, player.Size) {
		e.Speed = 0
		return
	}

	for i := range player.Bullets {
		b := &player.Bullets[i]
		if BoxesOverlap(e.Pos, b.Pos, e.Size, b.Size) {
			e.Speed = 0
			return
		}
	}
}

// Touches reports whether the enemy overlaps the player
func (e *Enemy) Touches(player *Player) bool {
	return BoxesOverlap(player.Pos, e.Pos, player.Size, e.Size)
}
