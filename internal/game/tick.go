package game

import (
	"context"
	"time"

	"github.com/tomz197/bossrush/internal/input"
	"github.com/tomz197/bossrush/internal/object"
)

// Tick advances the world by one frame. It does nothing unless the game is
// running. Returns true if the world changed.
func (s *Simulation) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return false
	}

	s.updatePlayer()
	s.updateBullets()
	s.handleObstacles()
	s.handleBoss()

	s.frame++
	if s.frame%DifficultyInterval == 0 {
		s.speedMultiplier += DifficultyStep
	}
	return true
}

// HandleKey applies a discrete key press or release.
func (s *Simulation) HandleKey(ev input.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Action {
	case input.ActionUp, input.ActionDown, input.ActionLeft, input.ActionRight:
		s.held[ev.Action] = ev.Pressed
	case input.ActionFire:
		if ev.Pressed {
			s.fire()
		} else {
			s.firing = false
		}
	case input.ActionPause:
		if ev.Pressed {
			s.togglePause()
		}
	case input.ActionBuffSpeed, input.ActionBuffJump:
		// Recognised, but no buffs can be acquired yet.
	}
}

// RunScoreClock awards TimeScore every interval until ctx is done.
func (s *Simulation) RunScoreClock(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.AddTimeScore()
		}
	}
}

// Snapshot is a copy of the world for rendering. It shares nothing with the
// simulation.
type Snapshot struct {
	Phase           Phase
	Reviving        bool
	Score           int
	Health          int
	Frame           int
	SpeedMultiplier float64
	PlayerPower     int
	Buffs           Buffs

	Player        object.Player
	Obstacles     []object.Obstacle
	PlayerBullets []object.Bullet
	BossBullets   []object.Bullet
	Boss          *object.Boss // Nil when no boss is active
}

// Snapshot copies the current world state.
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Phase:           s.phase,
		Reviving:        s.reviving,
		Score:           s.score,
		Health:          s.health,
		Frame:           s.frame,
		SpeedMultiplier: s.speedMultiplier,
		PlayerPower:     s.playerPower,
		Buffs:           s.buffs,
		Player:          *s.player,
		Obstacles:       make([]object.Obstacle, len(s.obstacles)),
		PlayerBullets:   copyBullets(s.playerBullets),
		BossBullets:     copyBullets(s.bossBullets),
	}
	for i, o := range s.obstacles {
		snap.Obstacles[i] = *o
	}
	if s.boss != nil {
		b := *s.boss
		snap.Boss = &b
	}
	return snap
}

func copyBullets(bullets []*object.Bullet) []object.Bullet {
	out := make([]object.Bullet, len(bullets))
	for i, b := range bullets {
		out[i] = *b
	}
	return out
}

// Objects returns everything to draw, back to front.
func (snap *Snapshot) Objects() []object.Object {
	objs := make([]object.Object, 0, 2+len(snap.Obstacles)+len(snap.PlayerBullets)+len(snap.BossBullets))
	objs = append(objs, &snap.Player)
	for i := range snap.Obstacles {
		objs = append(objs, &snap.Obstacles[i])
	}
	if snap.Boss != nil {
		objs = append(objs, snap.Boss)
	}
	for i := range snap.PlayerBullets {
		objs = append(objs, &snap.PlayerBullets[i])
	}
	for i := range snap.BossBullets {
		objs = append(objs, &snap.BossBullets[i])
	}
	return objs
}
