package game

import (
	"math"

	"github.com/tomz197/bossrush/internal/object"
)

// scrollSpeed is how far obstacles move left per tick.
func (s *Simulation) scrollSpeed() float64 {
	return (s.player.Speed + s.buffs.Speed) * s.speedMultiplier
}

// handleObstacles spawns an obstacle every ObstacleInterval ticks, scrolls
// all of them, scores the ones that left the screen and resolves player hits.
func (s *Simulation) handleObstacles() {
	if s.frame%ObstacleInterval == 0 {
		y := s.rng.Float64() * (s.screen.Height - object.ObstacleHeight)
		s.obstacles = append(s.obstacles, object.NewObstacle(s.screen.Width, y))
	}

	speed := s.scrollSpeed()
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Scroll(speed)
		if o.Passed() {
			s.addScore(ObstaclePassScore)
			continue
		}
		if s.collide(s.player, o) {
			s.damagePlayer(ObstacleDamage)
			continue
		}
		kept = append(kept, o)
	}
	clear(s.obstacles[len(kept):])
	s.obstacles = kept
}

// spawnBoss places a fresh boss near the right edge with a random heading.
func (s *Simulation) spawnBoss() {
	y := s.rng.Float64()*(s.screen.Height-2*object.BossSpawnMargin) + object.BossSpawnMargin
	dir := s.rng.Float64() * 2 * math.Pi
	s.boss = object.NewBoss(s.screen.Width-object.BossSpawnInset, y, dir)
	s.bossSpawned = true
	s.notifier.Notify(Event{Type: EventBossSpawned, Value: s.boss.Health})
}
