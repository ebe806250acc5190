// Package object defines the entities that live on the playfield.
package object

import (
	"github.com/tomz197/bossrush/internal/draw"
	"github.com/tomz197/bossrush/internal/physics"
)

// Screen is the logical playfield size.
type Screen struct {
	Width  float64
	Height float64
}

// Contains reports whether the point lies inside the playfield, edges included.
func (s Screen) Contains(x, y float64) bool {
	return physics.Contains(s.Width, s.Height, x, y)
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas (2x vertical)
}

// Object is a drawable entity with a collision shape.
type Object interface {
	// Bounds returns the full sprite rectangle.
	Bounds() physics.Rect
	// HitboxRect returns the narrower collision rectangle in world coordinates.
	HitboxRect() physics.Rect
	// Draw renders the object onto ctx.Canvas.
	Draw(ctx DrawContext) error
}
