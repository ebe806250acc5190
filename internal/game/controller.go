package game

import (
	"math"

	"github.com/tomz197/bossrush/internal/input"
)

// axisKey maps a held action to a unit step along one axis.
type axisKey struct {
	action input.Action
	step   float64
}

// Movement priority. Within an axis the first held key wins, so holding
// both up and down moves up, and holding both left and right moves left.
var (
	verticalKeys = []axisKey{
		{input.ActionUp, -1},
		{input.ActionDown, 1},
	}
	horizontalKeys = []axisKey{
		{input.ActionLeft, -1},
		{input.ActionRight, 1},
	}
)

// facing is indexed by [horizontal step + 1][vertical step + 1].
var facing = [3][3]float64{
	{-3 * math.Pi / 4, math.Pi, 3 * math.Pi / 4},
	{-math.Pi / 2, math.NaN(), math.Pi / 2},
	{-math.Pi / 4, 0, math.Pi / 4},
}

func (s *Simulation) axis(keys []axisKey) float64 {
	for _, k := range keys {
		if s.held[k.action] {
			return k.step
		}
	}
	return 0
}

// updatePlayer turns held keys into velocity and facing, then moves the
// player and clamps it to the playfield.
func (s *Simulation) updatePlayer() {
	p := s.player
	h := s.axis(horizontalKeys)
	v := s.axis(verticalKeys)

	p.DX = h * p.Speed
	p.DY = v * p.Speed
	if h != 0 && v != 0 {
		p.DX *= math.Sqrt2 / 2
		p.DY *= math.Sqrt2 / 2
	}
	if h != 0 || v != 0 {
		p.Direction = facing[int(h)+1][int(v)+1]
	}

	p.Move(s.screen)
}

// fire spawns a player bullet at the player's center, heading where the
// player faces. Holding the key does not fire again.
func (s *Simulation) fire() {
	if s.firing {
		return
	}
	s.firing = true
	if s.phase != PhaseRunning {
		return
	}
	x, y := s.player.Center()
	s.playerBullets = append(s.playerBullets, newPlayerBullet(x, y, s.player.Direction))
}
