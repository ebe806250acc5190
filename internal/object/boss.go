package object

import (
	"math"

	"github.com/tomz197/bossrush/internal/physics"
)

// Boss defaults.
const (
	BossWidth       = 100.0
	BossHeight      = 100.0
	BossMaxHealth   = 200
	BossSpeed       = 2.0
	BossSpawnInset  = 150.0 // Distance of the spawn point from the right edge
	BossSpawnMargin = 100.0 // Vertical margin kept free when spawning

	bossHealthBarGap    = 10.0
	bossHealthBarHeight = 5.0
)

// Boss is the enemy that patrols the right half of the playfield.
type Boss struct {
	X, Y          float64
	Width, Height float64
	Hitbox        physics.Rect // Collision box relative to X, Y
	Health        int
	MaxHealth     int
	BaseSpeed     float64 // Speed at full health
	Direction     float64 // Travel angle in radians
}

// NewBoss creates a boss at full health.
func NewBoss(x, y, direction float64) *Boss {
	return &Boss{
		X:         x,
		Y:         y,
		Width:     BossWidth,
		Height:    BossHeight,
		Hitbox:    physics.Rect{X: 10, Y: 10, Width: 80, Height: 80},
		Health:    BossMaxHealth,
		MaxHealth: BossMaxHealth,
		BaseSpeed: BossSpeed,
		Direction: direction,
	}
}

// HealthRatio returns health/maxHealth, clamped to [0, 1].
func (b *Boss) HealthRatio() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(b.Health)/float64(b.MaxHealth)))
}

// Speed is the effective speed; the boss slows down as it takes damage.
func (b *Boss) Speed() float64 {
	return b.BaseSpeed * b.HealthRatio()
}

// Defeated reports whether the boss has run out of health.
func (b *Boss) Defeated() bool {
	return b.Health <= 0
}

// Bounds returns the full sprite rectangle.
func (b *Boss) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// HitboxRect returns the hitbox in world coordinates.
func (b *Boss) HitboxRect() physics.Rect {
	return b.Bounds().Inset(b.Hitbox.X, b.Hitbox.Y, b.Hitbox.Width, b.Hitbox.Height)
}

// Center returns the middle of the sprite.
func (b *Boss) Center() (x, y float64) {
	return b.Bounds().Center()
}

// Draw renders the boss outline with a health bar above it.
func (b *Boss) Draw(ctx DrawContext) error {
	ctx.Canvas.DrawRect(b.X, b.Y, b.Width, b.Height)
	ctx.Canvas.FillRect(b.X+b.Width/4, b.Y+b.Height/4, b.Width/2, b.Height/2)
	ctx.Canvas.FillRect(b.X, b.Y-bossHealthBarGap, b.HealthRatio()*b.Width, bossHealthBarHeight)
	return nil
}
