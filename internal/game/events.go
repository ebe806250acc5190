package game

// EventType identifies what changed in the simulation.
type EventType int

const (
	EventHealthChanged EventType = iota
	EventScoreChanged
	EventPhaseChanged
	EventSound
	EventMusic
	EventGameOver
	EventBossSpawned
	EventBossDefeated
	EventReviveStarted
)

// SoundKind names a one-shot sound effect.
type SoundKind int

const (
	SoundCollision SoundKind = iota
	SoundJump
	SoundGameOver
)

// MusicCommand controls the background track.
type MusicCommand int

const (
	MusicPlay MusicCommand = iota
	MusicPause
	MusicReset // Stop and rewind to the start
)

// Event is a notification sent to the simulation's collaborators
// (audio, HUD, UI visibility). Value carries health, score or the final score.
type Event struct {
	Type  EventType
	Value int
	Phase Phase
	Sound SoundKind
	Music MusicCommand
}

// Notifier receives simulation events. Notify is called while the simulation
// is locked and must not call back into it.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Event)

// Notify calls f(e).
func (f NotifierFunc) Notify(e Event) {
	f(e)
}

// ChanNotifier delivers events on a buffered channel. When the channel is
// full most events are dropped; a game over instead evicts the oldest queued
// event, since the final score is reported only once.
type ChanNotifier chan Event

// Notify sends e without blocking.
func (c ChanNotifier) Notify(e Event) {
	for {
		select {
		case c <- e:
			return
		default:
		}
		if e.Type != EventGameOver {
			return
		}
		select {
		case <-c:
		default:
		}
	}
}

type nopNotifier struct{}

func (nopNotifier) Notify(Event) {}
