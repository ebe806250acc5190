// Package audio plays the game's sound effects and background music.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/bossrush/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Player is the audio collaborator driven by simulation events.
type Player interface {
	PlaySound(kind game.SoundKind)
	ControlMusic(cmd game.MusicCommand)
	Close()
}

// Dispatch forwards sound and music events to p and ignores the rest.
func Dispatch(p Player, e game.Event) {
	switch e.Type {
	case game.EventSound:
		p.PlaySound(e.Sound)
	case game.EventMusic:
		p.ControlMusic(e.Music)
	}
}

// Nop is a silent Player, used for SSH sessions and when audio is disabled.
type Nop struct{}

func (Nop) PlaySound(game.SoundKind)       {}
func (Nop) ControlMusic(game.MusicCommand) {}
func (Nop) Close()                         {}

// SoundManager mixes effects and music onto the local speaker.
type SoundManager struct {
	mu          sync.Mutex
	volume      float64
	mixer       *beep.Mixer
	music       *musicGenerator
	musicCtrl   *beep.Ctrl
	initialized bool

	// locked runs f while the speaker is not reading the mixer.
	locked func(f func())
}

// NewSoundManager creates a manager with music loaded but paused. volume is
// linear, 1 being unchanged.
func NewSoundManager(volume float64) *SoundManager {
	music := newMusicGenerator(sampleRate)
	ctrl := &beep.Ctrl{Streamer: newVolume(music, volume*musicVolume), Paused: true}

	sm := &SoundManager{
		volume:    volume,
		mixer:     &beep.Mixer{},
		music:     music,
		musicCtrl: ctrl,
		locked: func(f func()) {
			speaker.Lock()
			defer speaker.Unlock()
			f()
		},
	}
	sm.mixer.Add(ctrl)
	return sm
}

// Initialize opens the audio device and starts streaming the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// PlaySound starts a one-shot effect on top of whatever is playing.
func (sm *SoundManager) PlaySound(kind game.SoundKind) {
	s := Effect(kind, sm.volume)
	if s == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.locked(func() {
		sm.mixer.Add(s)
	})
}

// ControlMusic plays, pauses or rewinds the background track.
func (sm *SoundManager) ControlMusic(cmd game.MusicCommand) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.locked(func() {
		switch cmd {
		case game.MusicPlay:
			sm.musicCtrl.Paused = false
		case game.MusicPause:
			sm.musicCtrl.Paused = true
		case game.MusicReset:
			sm.musicCtrl.Paused = true
			sm.music.Reset()
		}
	})
}

// Close stops all sounds and releases the audio device.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.locked(func() {
		sm.musicCtrl.Paused = true
		sm.mixer.Clear()
	})
	speaker.Close()
	sm.initialized = false
}
