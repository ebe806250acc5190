package object

import (
	"math"
	"testing"

	"github.com/tomz197/bossrush/internal/draw"
	"github.com/tomz197/bossrush/internal/physics"
)

const eps = 1e-9

func TestPlayerMoveClampsToScreen(t *testing.T) {
	screen := Screen{Width: 800, Height: 600}

	p := NewPlayer(2, 3)
	p.DX, p.DY = -5, -5
	p.Move(screen)
	if p.X != 0 || p.Y != 0 {
		t.Fatalf("expected clamp to (0,0), got (%v,%v)", p.X, p.Y)
	}

	p = NewPlayer(screen.Width-PlayerWidth-1, screen.Height-PlayerHeight-1)
	p.DX, p.DY = 5, 5
	p.Move(screen)
	if p.X != screen.Width-PlayerWidth || p.Y != screen.Height-PlayerHeight {
		t.Fatalf("expected clamp to far corner, got (%v,%v)", p.X, p.Y)
	}
}

func TestPlayerHitboxIsInsideBounds(t *testing.T) {
	p := NewPlayer(50, 100)
	want := physics.Rect{X: 60, Y: 110, Width: 30, Height: 30}
	if got := p.HitboxRect(); got != want {
		t.Fatalf("HitboxRect = %+v, want %+v", got, want)
	}
}

func TestBulletAdvance(t *testing.T) {
	b := NewBullet(100, 100, 10, math.Pi/2)
	b.Advance()
	if math.Abs(b.X-100) > eps || math.Abs(b.Y-110) > eps {
		t.Fatalf("bullet at (%v,%v), want (100,110)", b.X, b.Y)
	}

	screen := Screen{Width: 200, Height: 200}
	if b.OutOfBounds(screen) {
		t.Error("bullet inside the screen reported out of bounds")
	}
	b.Y = 200
	if b.OutOfBounds(screen) {
		t.Error("bullet on the bottom edge is still inside")
	}
	b.Y = 200.5
	if !b.OutOfBounds(screen) {
		t.Error("bullet past the bottom edge should be out of bounds")
	}
}

func TestObstacleScrollAndPassed(t *testing.T) {
	o := NewObstacle(5, 0)
	o.Scroll(5)
	if o.X != 0 || o.Passed() {
		t.Fatalf("obstacle at x=%v passed=%v", o.X, o.Passed())
	}
	o.Scroll(ObstacleWidth)
	if o.Passed() {
		t.Fatal("obstacle whose right edge is at 0 has not passed yet")
	}
	o.Scroll(0.5)
	if !o.Passed() {
		t.Fatal("obstacle fully left of the screen should have passed")
	}
}

func TestBossSpeedScalesWithHealth(t *testing.T) {
	b := NewBoss(0, 0, 0)
	if b.Speed() != BossSpeed {
		t.Fatalf("full health speed = %v, want %v", b.Speed(), BossSpeed)
	}

	prev := b.Speed()
	for b.Health > 0 {
		b.Health -= 10
		s := b.Speed()
		if s > prev {
			t.Fatalf("speed increased from %v to %v at health %d", prev, s, b.Health)
		}
		prev = s
	}
	if !b.Defeated() || b.Speed() != 0 {
		t.Fatalf("defeated boss should stop, speed = %v", b.Speed())
	}

	b.Health = -30
	if b.HealthRatio() != 0 {
		t.Errorf("ratio for negative health = %v, want 0", b.HealthRatio())
	}
}

func TestDrawDoesNotFail(t *testing.T) {
	ctx := DrawContext{Canvas: draw.NewCanvas(draw.Viewport{Width: 80, Height: 24}, 800, 600)}
	objects := []Object{
		NewPlayer(50, 300),
		NewObstacle(780, -50), // partly off screen
		NewBullet(400, 300, 10, 0),
		NewBoss(600, 200, 0),
	}
	for _, obj := range objects {
		if err := obj.Draw(ctx); err != nil {
			t.Errorf("%T.Draw: %v", obj, err)
		}
	}
}
