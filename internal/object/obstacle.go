package object

import "github.com/tomz197/bossrush/internal/physics"

// Obstacle size.
const (
	ObstacleWidth  = 20.0
	ObstacleHeight = 100.0
)

// Obstacle is a wall segment scrolling in from the right edge.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
}

// NewObstacle creates an obstacle with its top-left corner at (x, y).
func NewObstacle(x, y float64) *Obstacle {
	return &Obstacle{X: x, Y: y, Width: ObstacleWidth, Height: ObstacleHeight}
}

// Bounds returns the obstacle rectangle.
func (o *Obstacle) Bounds() physics.Rect {
	return physics.Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// HitboxRect is the full rectangle; obstacles are solid.
func (o *Obstacle) HitboxRect() physics.Rect {
	return o.Bounds()
}

// Scroll moves the obstacle left by speed units.
func (o *Obstacle) Scroll(speed float64) {
	o.X -= speed
}

// Passed reports whether the obstacle has fully left the playfield on the left.
func (o *Obstacle) Passed() bool {
	return o.X+o.Width < 0
}

// Draw renders the obstacle as a filled bar.
func (o *Obstacle) Draw(ctx DrawContext) error {
	ctx.Canvas.FillRect(o.X, o.Y, o.Width, o.Height)
	return nil
}
