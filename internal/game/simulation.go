// Package game implements the per-tick simulation of the shooter: player
// movement, spawning, collisions, the boss and the game state machine.
//
// All state lives in a Simulation. Ticks, key events, the real-time score
// clock and the revive timer may arrive from different goroutines; every
// entry point takes the simulation lock, so one tick always runs to
// completion before anything else touches the world.
package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/tomz197/bossrush/internal/input"
	"github.com/tomz197/bossrush/internal/object"
	"github.com/tomz197/bossrush/internal/physics"
)

// Phase is the state of the game state machine.
type Phase int

const (
	PhaseReady   Phase = iota // Waiting for the first start
	PhaseRunning              // Ticks advance the world
	PhasePaused               // Frozen until resumed
	PhaseOver                 // Player died; start a new game or revive
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Buffs are temporary modifiers. Nothing grants them yet, so they stay zero.
type Buffs struct {
	Speed float64
	Jump  float64
}

// AfterFunc runs f once after d elapses, on its own goroutine.
type AfterFunc func(d time.Duration, f func())

// Options configures a Simulation.
type Options struct {
	Width, Height float64 // Playfield size in logical units

	// Rand drives spawn positions and boss directions. Defaults to a
	// time-seeded source.
	Rand *rand.Rand

	// Notifier receives events for audio and UI. Defaults to a no-op.
	Notifier Notifier

	// PreciseHitboxes tests collisions on the entities' hitboxes instead of
	// their full sprite rectangles.
	PreciseHitboxes bool

	// ReviveDelay is the length of the simulated ad before a revive.
	ReviveDelay time.Duration

	// AfterFunc schedules the revive. Defaults to time.AfterFunc.
	AfterFunc AfterFunc
}

// Simulation owns the whole game world.
type Simulation struct {
	mu sync.Mutex

	screen          object.Screen
	rng             *rand.Rand
	notifier        Notifier
	preciseHitboxes bool
	reviveDelay     time.Duration
	afterFunc       AfterFunc

	phase    Phase
	run      int  // Incremented on every Start; stale revive timers compare against it
	reviving bool // Revive timer pending

	held   [input.ActionCount]bool
	firing bool // Fire key still down since the last shot

	player        *object.Player
	obstacles     []*object.Obstacle
	playerBullets []*object.Bullet
	bossBullets   []*object.Bullet
	boss          *object.Boss
	bossSpawned   bool

	score           int
	health          int
	speedMultiplier float64
	frame           int
	buffs           Buffs
	playerPower     int
}

// New creates a simulation in the ready phase.
func New(opts Options) *Simulation {
	s := &Simulation{
		screen:          object.Screen{Width: opts.Width, Height: opts.Height},
		rng:             opts.Rand,
		notifier:        opts.Notifier,
		preciseHitboxes: opts.PreciseHitboxes,
		reviveDelay:     opts.ReviveDelay,
		afterFunc:       opts.AfterFunc,
		phase:           PhaseReady,
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	if s.reviveDelay <= 0 {
		s.reviveDelay = DefaultReviveDelay
	}
	if s.afterFunc == nil {
		s.afterFunc = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	s.reset()
	return s
}

// reset puts every piece of run state back to its initial value.
func (s *Simulation) reset() {
	s.player = s.newPlayer()
	s.obstacles = nil
	s.playerBullets = nil
	s.bossBullets = nil
	s.boss = nil
	s.bossSpawned = false
	s.score = 0
	s.health = InitialHealth
	s.speedMultiplier = 1
	s.frame = 0
	s.buffs = Buffs{}
	s.playerPower = InitialPlayerPower
	s.releaseKeys()
	s.reviving = false
}

// releaseKeys forgets held movement and fire keys. The terminal front end
// resets its key tracking when a run begins, so a release for a key held
// across that point never arrives.
func (s *Simulation) releaseKeys() {
	clear(s.held[:])
	s.firing = false
}

func (s *Simulation) newPlayer() *object.Player {
	return object.NewPlayer(object.PlayerStartX, s.screen.Height/2)
}

// Start begins a new game from the ready or over phase. It returns false if
// a game is already in progress.
func (s *Simulation) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReady && s.phase != PhaseOver {
		return false
	}

	s.run++
	s.reset()
	s.setPhase(PhaseRunning)
	s.notifyHealth()
	s.notifyScore()
	s.music(MusicPlay)
	return true
}

// TogglePause switches between running and paused. Outside a game it does nothing.
func (s *Simulation) TogglePause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.togglePause()
}

func (s *Simulation) togglePause() {
	switch s.phase {
	case PhaseRunning:
		s.setPhase(PhasePaused)
		s.music(MusicPause)
	case PhasePaused:
		s.setPhase(PhaseRunning)
		s.music(MusicPlay)
	}
}

// RequestRevive starts the ad-watch timer. When it fires the player is
// revived, unless a new game was started or the revive already happened.
// Returns false if the game is not over or a revive is already pending.
func (s *Simulation) RequestRevive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseOver || s.reviving {
		return false
	}
	s.reviving = true
	s.notifier.Notify(Event{Type: EventReviveStarted})

	run := s.run
	s.afterFunc(s.reviveDelay, func() {
		s.finishRevive(run)
	})
	return true
}

func (s *Simulation) finishRevive(run int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run != s.run || s.phase != PhaseOver || !s.reviving {
		return
	}
	s.revive()
}

// revive restores the player while keeping score, frame count and the
// obstacles already in flight.
func (s *Simulation) revive() {
	s.reviving = false
	s.health = InitialHealth
	s.playerBullets = nil
	s.bossBullets = nil
	s.playerPower = InitialPlayerPower
	s.player = s.newPlayer()
	s.boss = nil
	s.bossSpawned = false
	s.releaseKeys()

	s.setPhase(PhaseRunning)
	s.notifyHealth()
	s.music(MusicPlay)
}

// endGame moves to the over phase. Calling it again has no effect.
func (s *Simulation) endGame() {
	if s.phase == PhaseOver {
		return
	}
	s.setPhase(PhaseOver)
	s.music(MusicReset)
	s.sound(SoundGameOver)
	s.notifier.Notify(Event{Type: EventGameOver, Value: s.score})
}

// AddTimeScore awards the real-time score increment. It only counts while
// the game is running, so pausing stops the clock.
func (s *Simulation) AddTimeScore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRunning {
		return
	}
	s.addScore(TimeScore)
}

func (s *Simulation) addScore(n int) {
	s.score += n
	s.notifyScore()
}

func (s *Simulation) damagePlayer(amount int) {
	if s.phase != PhaseRunning {
		return
	}
	s.health -= amount
	if s.health < 0 {
		s.health = 0
	}
	s.notifyHealth()
	s.sound(SoundCollision)
	if s.health <= 0 {
		s.endGame()
	}
}

// collide tests two objects on full rectangles, or on hitboxes when
// precise hitboxes are enabled.
func (s *Simulation) collide(a, b object.Object) bool {
	if s.preciseHitboxes {
		return physics.Overlaps(a.HitboxRect(), b.HitboxRect())
	}
	return physics.Overlaps(a.Bounds(), b.Bounds())
}

func (s *Simulation) setPhase(p Phase) {
	s.phase = p
	s.notifier.Notify(Event{Type: EventPhaseChanged, Phase: p})
}

func (s *Simulation) notifyHealth() {
	s.notifier.Notify(Event{Type: EventHealthChanged, Value: s.health})
}

func (s *Simulation) notifyScore() {
	s.notifier.Notify(Event{Type: EventScoreChanged, Value: s.score})
}

func (s *Simulation) sound(kind SoundKind) {
	s.notifier.Notify(Event{Type: EventSound, Sound: kind})
}

func (s *Simulation) music(cmd MusicCommand) {
	s.notifier.Notify(Event{Type: EventMusic, Music: cmd})
}

// Phase returns the current phase.
func (s *Simulation) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Score returns the current score.
func (s *Simulation) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Health returns the player's health.
func (s *Simulation) Health() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.health
}
