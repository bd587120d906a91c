package game

import "slices"

// PlayerSize is the width and height of the player square
var PlayerSize = Vec2i{X: 40, Y: 40}

// Player is the keyboard-controlled square. It owns its bullets.
type Player struct {
	Pos     Vec2i
	Size    Vec2i
	Speed   float64
	Bullets []Bullet // newest first

	bulletSpeed  float64
	fireCooldown float64
	shootTimer   float64
}

// NewPlayer creates a player at the origin using the given tuning
func NewPlayer(tuning Tuning) *Player {
	return &Player{
		Size:         PlayerSize,
		Speed:        tuning.PlayerSpeed,
		Bullets:      make([]Bullet, 0, 16),
		bulletSpeed:  tuning.BulletSpeed,
		fireCooldown: tuning.FireCooldown,
	}
}

// Update reads the input snapshot, moves the player, fires on cooldown and
// advances every bullet, dropping the ones that left the viewport.
func (p *Player) Update(dt float64, in InputState, viewport Vec2i) {
	move := Normalize(in.Axis())
	p.Pos = advance(p.Pos, move, p.Speed, dt)

	p.shootTimer += dt
	if in.Fire && p.shootTimer > p.fireCooldown {
		p.fire(in.Mouse)
		p.shootTimer = 0
	}

	for i := range p.Bullets {
		p.Bullets[i].Update(dt, viewport)
	}

	p.Bullets = slices.DeleteFunc(p.Bullets, func(b Bullet) bool {
		return !b.Active()
	})
}

// fire spawns a bullet at the player's position aimed at target
func (p *Player) fire(target Vec2f) {
	dir := Normalize(Vec2f{
		X: target.X - float64(p.Pos.X),
		Y: target.Y - float64(p.Pos.Y),
	})
	p.Bullets = slices.Insert(p.Bullets, 0, NewBullet(p.Pos, dir, p.bulletSpeed))
}
