package game

import "time"

// Fixed gameplay tuning. Difficulty only ramps through the speed multiplier.
const (
	InitialHealth      = 100
	InitialPlayerPower = 1

	ObstacleInterval  = 150 // Ticks between obstacle spawns
	ObstacleDamage    = 10
	ObstaclePassScore = 5

	BossScoreThreshold = 50 // Score at which a boss appears
	BossDefeatScore    = 50
	BossFireInterval   = 100 // Ticks between boss shots
	BossContactDamage  = 25  // Per tick of overlap
	BossBulletDamage   = 10
	PlayerBulletDamage = 10 // Multiplied by player power

	DifficultyInterval = 500 // Ticks between speed multiplier increases
	DifficultyStep     = 0.1

	TimeScore     = 1 // Awarded every ScoreInterval while running
	ScoreInterval = time.Second

	DefaultReviveDelay = 3 * time.Second
)

// HealthBarWidth is the on-screen width of the health bar for a health value.
func HealthBarWidth(health int) float64 {
	return float64(health) * 2
}
