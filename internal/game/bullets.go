package game

import "github.com/tomz197/bossrush/internal/object"

func newPlayerBullet(x, y, direction float64) *object.Bullet {
	return object.NewBullet(x, y, object.PlayerBulletSpeed, direction)
}

// updateBullets advances both bullet lists and resolves their hits.
func (s *Simulation) updateBullets() {
	s.playerBullets = s.updatePlayerBullets(s.playerBullets)
	s.bossBullets = s.updateBossBullets(s.bossBullets)
}

// updatePlayerBullets moves player bullets. A bullet is spent on the first
// obstacle it touches, when it leaves the screen, or when it hits the boss.
func (s *Simulation) updatePlayerBullets(bullets []*object.Bullet) []*object.Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Advance()
		if s.hitsObstacle(b) || b.OutOfBounds(s.screen) {
			continue
		}
		if s.boss != nil && s.collide(b, s.boss) {
			s.hitBoss()
			continue
		}
		kept = append(kept, b)
	}
	clear(bullets[len(kept):])
	return kept
}

func (s *Simulation) hitsObstacle(b *object.Bullet) bool {
	for _, o := range s.obstacles {
		if s.collide(b, o) {
			return true
		}
	}
	return false
}

// updateBossBullets moves boss bullets and damages the player on contact.
func (s *Simulation) updateBossBullets(bullets []*object.Bullet) []*object.Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Advance()
		if b.OutOfBounds(s.screen) {
			continue
		}
		if s.collide(s.player, b) {
			s.damagePlayer(BossBulletDamage)
			continue
		}
		kept = append(kept, b)
	}
	clear(bullets[len(kept):])
	return kept
}
