package game

// BulletSize is the width and height of every bullet
var BulletSize = Vec2i{X: 10, Y: 10}

// Bullet is a projectile fired by the player
type Bullet struct {
	Pos   Vec2i
	Size  Vec2i
	Dir   Vec2f
	Speed float64 // 0 means inactive, pending removal
}

// NewBullet creates an active bullet at pos heading along dir
func NewBullet(pos Vec2i, dir Vec2f, speed float64) Bullet {
	return Bullet{
		Pos:   pos,
		Size:  BulletSize,
		Dir:   dir,
		Speed: speed,
	}
}

// Active reports whether the bullet is still in flight
func (b *Bullet) Active() bool {
	return b.Speed != 0
}

// Update moves the bullet and deactivates it once it leaves the viewport.
// The edges themselves still count as inside.
func (b *Bullet) Update(dt float64, viewport Vec2i) {
	b.Pos = advance(b.Pos, b.Dir, b.Speed, dt)

	if b.Pos.X > viewport.X || b.Pos.X < 0 || b.Pos.Y > viewport.Y || b.Pos.Y < 0 {
		b.Speed = 0
	}
}
