package object

import (
	"math"

	"github.com/tomz197/bossrush/internal/physics"
)

// Bullet size and speeds.
const (
	BulletWidth       = 10.0
	BulletHeight      = 10.0
	PlayerBulletSpeed = 10.0
	BossBulletSpeed   = 5.0
)

// Bullet is a projectile fired by the player or the boss.
type Bullet struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Units per tick
	Direction     float64 // Travel angle in radians
}

// NewBullet creates a bullet whose top-left corner is at (x, y).
func NewBullet(x, y, speed, direction float64) *Bullet {
	return &Bullet{
		X:         x,
		Y:         y,
		Width:     BulletWidth,
		Height:    BulletHeight,
		Speed:     speed,
		Direction: direction,
	}
}

// Advance moves the bullet one tick along its direction.
func (b *Bullet) Advance() {
	b.X += b.Speed * math.Cos(b.Direction)
	b.Y += b.Speed * math.Sin(b.Direction)
}

// OutOfBounds reports whether the bullet's origin has left the playfield.
func (b *Bullet) OutOfBounds(screen Screen) bool {
	return !screen.Contains(b.X, b.Y)
}

// Bounds returns the bullet rectangle.
func (b *Bullet) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// HitboxRect is the full rectangle.
func (b *Bullet) HitboxRect() physics.Rect {
	return b.Bounds()
}

// Draw renders the bullet.
func (b *Bullet) Draw(ctx DrawContext) error {
	ctx.Canvas.FillRect(b.X, b.Y, b.Width, b.Height)
	return nil
}
