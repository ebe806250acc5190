package game

import (
	"math"

	"github.com/tomz197/bossrush/internal/object"
)

// handleBoss spawns the boss once the score threshold is reached, then
// moves it, lets it fire and applies contact damage.
func (s *Simulation) handleBoss() {
	if !s.bossSpawned && s.score >= BossScoreThreshold {
		s.spawnBoss()
	}
	b := s.boss
	if b == nil {
		return
	}

	s.moveBoss(b)

	if s.frame%BossFireInterval == 0 {
		x, y := b.Center()
		s.bossBullets = append(s.bossBullets, object.NewBullet(x, y, object.BossBulletSpeed, b.Direction))
	}

	if s.collide(s.player, b) {
		s.damagePlayer(BossContactDamage)
	}
}

// moveBoss advances the boss at its health-scaled speed and bounces it
// inside the right half of the playfield.
func (s *Simulation) moveBoss(b *object.Boss) {
	speed := b.Speed()
	b.X += speed * math.Cos(b.Direction)
	b.Y += speed * math.Sin(b.Direction)

	minX := s.screen.Width / 2
	maxX := s.screen.Width - b.Width
	switch {
	case b.X < minX:
		b.X = minX
		b.Direction = math.Pi - b.Direction
	case b.X > maxX:
		b.X = maxX
		b.Direction = math.Pi - b.Direction
	}

	maxY := s.screen.Height - b.Height
	switch {
	case b.Y < 0:
		b.Y = 0
		b.Direction = -b.Direction
	case b.Y > maxY:
		b.Y = maxY
		b.Direction = -b.Direction
	}
}

// hitBoss applies player bullet damage and handles the defeat.
func (s *Simulation) hitBoss() {
	s.boss.Health -= PlayerBulletDamage * s.playerPower
	if !s.boss.Defeated() {
		return
	}
	s.boss = nil
	s.bossSpawned = false
	s.addScore(BossDefeatScore)
	s.notifier.Notify(Event{Type: EventBossDefeated, Value: s.score})
}
