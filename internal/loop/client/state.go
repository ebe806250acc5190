package client

import (
	"time"

	"github.com/tomz197/bossrush/internal/game"
	"github.com/tomz197/bossrush/internal/input"
	"github.com/tomz197/bossrush/internal/loop/server"
)

// Screen is what the client currently shows.
type Screen int

const (
	ScreenStart    Screen = iota // Title screen
	ScreenPlaying                // Active gameplay
	ScreenPaused                 // Gameplay frozen
	ScreenOver                   // Game over with leaderboard
	ScreenReviving               // Watching the ad before a revive
	ScreenShutdown               // Server is shutting down
)

// ClientState holds per-session state mirrored from simulation events.
type ClientState struct {
	Input         input.Input
	Score         int                    // Last reported score
	Health        int                    // Last reported health
	FinalScore    int                    // Score of the last finished run
	TopScores     []server.TopScoreEntry // Leaderboard shown on the game over screen
	Running       bool                   // Client loop running
	delta         time.Duration          // Frame delta time
	reviveUntil   time.Time              // When the pending revive completes
	shutdown      bool                   // Server asked us to leave
	shutdownLeft  time.Duration          // Countdown before auto-disconnect on shutdown
	isInactive    bool                   // Whether the client is in inactive warning state
	wasInactive   bool
	prevScreen    Screen
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Health:  game.InitialHealth,
		Running: true,
	}
}

// screenFor picks the screen for a simulation snapshot.
func (s *ClientState) screenFor(snap *game.Snapshot) Screen {
	if s.shutdown {
		return ScreenShutdown
	}
	switch snap.Phase {
	case game.PhaseRunning:
		return ScreenPlaying
	case game.PhasePaused:
		return ScreenPaused
	case game.PhaseOver:
		if snap.Reviving {
			return ScreenReviving
		}
		return ScreenOver
	default:
		return ScreenStart
	}
}
