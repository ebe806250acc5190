package object

import (
	"math"

	"github.com/tomz197/bossrush/internal/draw"
	"github.com/tomz197/bossrush/internal/physics"
)

// Player sprite and movement defaults.
const (
	PlayerStartX = 50.0
	PlayerWidth  = 50.0
	PlayerHeight = 50.0
	PlayerSpeed  = 5.0
)

// Player is the player-controlled ship.
type Player struct {
	X, Y          float64      // Top-left corner
	Width, Height float64      // Sprite size
	Hitbox        physics.Rect // Collision box relative to X, Y
	Speed         float64      // Axial speed in units per tick
	DX, DY        float64      // Velocity for the current tick
	Direction     float64      // Facing angle in radians (0 = right, π/2 = down)
}

// NewPlayer creates a player at the given top-left position, facing right.
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Width:  PlayerWidth,
		Height: PlayerHeight,
		Hitbox: physics.Rect{X: 10, Y: 10, Width: 30, Height: 30},
		Speed:  PlayerSpeed,
	}
}

// Bounds returns the full sprite rectangle.
func (p *Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// HitboxRect returns the hitbox in world coordinates.
func (p *Player) HitboxRect() physics.Rect {
	return p.Bounds().Inset(p.Hitbox.X, p.Hitbox.Y, p.Hitbox.Width, p.Hitbox.Height)
}

// Center returns the middle of the sprite.
func (p *Player) Center() (x, y float64) {
	return p.Bounds().Center()
}

// Move applies the current velocity and keeps the whole sprite on screen.
func (p *Player) Move(screen Screen) {
	p.X += p.DX
	p.Y += p.DY

	if p.X < 0 {
		p.X = 0
	}
	if p.X+p.Width > screen.Width {
		p.X = screen.Width - p.Width
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y+p.Height > screen.Height {
		p.Y = screen.Height - p.Height
	}
}

// Draw renders the ship as a triangle pointing in its facing direction.
func (p *Player) Draw(ctx DrawContext) error {
	cx, cy := p.Center()
	size := p.Width / 2

	// Nose in the facing direction, wings ~143 degrees either side.
	noseAngle := p.Direction
	leftAngle := p.Direction + 2.5
	rightAngle := p.Direction - 2.5

	triangle := ctx.Canvas.BorrowPoints(3)
	triangle[0] = draw.Point{X: cx + math.Cos(noseAngle)*size, Y: cy + math.Sin(noseAngle)*size}
	triangle[1] = draw.Point{X: cx + math.Cos(leftAngle)*size*0.8, Y: cy + math.Sin(leftAngle)*size*0.8}
	triangle[2] = draw.Point{X: cx + math.Cos(rightAngle)*size*0.8, Y: cy + math.Sin(rightAngle)*size*0.8}

	ctx.Canvas.DrawPolygon(triangle, true)
	return nil
}
