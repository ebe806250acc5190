// Package config centralizes the session and rendering parameters of the
// terminal front end.
package config

import "time"

// Playfield size in logical units. Rendering scales it to the terminal.
const (
	FieldWidth  = 1200
	FieldHeight = 800
)

// Render area limits; larger terminals get a centered, bordered playfield.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
)

// Leaderboard
const (
	TopScoresCount    = 5
	MaxUsernameLength = 16 // Maximum display length for player usernames
)

// Shutdown: players see a countdown, the server waits a little longer for
// them to leave before closing the listener.
const (
	ShutdownNotice  = 10 * time.Second
	ShutdownTimeout = 15 * time.Second
)

// Idle sessions are warned, then dropped.
const (
	IdleWarn       = 90 * time.Second
	IdleDisconnect = 120 * time.Second
)

// Frame pacing of a session. The simulation advances one tick per frame.
const (
	FrameRate = 60
	FrameTime = time.Second / FrameRate
)

// EventBuffer is the capacity of a session's simulation event channel.
const EventBuffer = 256
