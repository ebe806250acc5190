package client

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/tomz197/bossrush/internal/audio"
	"github.com/tomz197/bossrush/internal/draw"
	"github.com/tomz197/bossrush/internal/game"
	"github.com/tomz197/bossrush/internal/input"
	"github.com/tomz197/bossrush/internal/loop/config"
	"github.com/tomz197/bossrush/internal/loop/server"
)

// Client runs one player's game: input, simulation, audio and rendering.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	sim          *game.Simulation
	events       game.ChanNotifier
	audio        audio.Player
	tracker      input.Tracker
	state        *ClientState
	canvas       *draw.Canvas
	frame        *draw.FrameWriter
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	reviveDelay  time.Duration
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc    draw.TermSizeFunc
	Username        string
	Audio           audio.Player // Defaults to silence
	PreciseHitboxes bool
	ReviveDelay     time.Duration
	Rand            *rand.Rand
}

// NewClient creates a new client registered with the given server.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.StdoutSize
	}
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}
	reviveDelay := opts.ReviveDelay
	if reviveDelay <= 0 {
		reviveDelay = game.DefaultReviveDelay
	}

	events := make(game.ChanNotifier, config.EventBuffer)
	sim := game.New(game.Options{
		Width:           config.FieldWidth,
		Height:          config.FieldHeight,
		Rand:            opts.Rand,
		Notifier:        events,
		PreciseHitboxes: opts.PreciseHitboxes,
		ReviveDelay:     reviveDelay,
	})

	termWidth, termHeight, _ := termSizeFunc()
	view := fitViewport(termWidth, termHeight)

	return &Client{
		server:       gs,
		handle:       gs.RegisterClient(opts.Username),
		sim:          sim,
		events:       events,
		audio:        player,
		state:        NewClientState(),
		canvas:       draw.NewCanvas(view, config.FieldWidth, config.FieldHeight),
		frame:        draw.NewFrameWriter(w, view),
		writer:       w,
		inputStream:  input.StartStream(r),
		lastInput:    time.Now(),
		termSizeFunc: termSizeFunc,
		reviveDelay:  reviveDelay,
	}
}

// Run starts the client loop. Blocks until the client disconnects or the
// server shuts down.
func (c *Client) Run() error {
	draw.EnterSession(c.writer)
	defer draw.LeaveSession(c.writer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.sim.RunScoreClock(ctx, game.ScoreInterval)

	c.state.TopScores = c.server.TopScores()
	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		c.processServerEvents()
		c.sim.Tick()
		c.processGameEvents()
		c.updateScreen()

		if c.state.shutdown {
			c.updateShutdownState()
		}

		if err := c.drawFrame(); err != nil {
			c.server.UnregisterClient(c.handle.ID)
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.FrameTime {
			time.Sleep(config.FrameTime - elapsed)
		}
	}

	c.audio.ControlMusic(game.MusicReset)
	c.server.UnregisterClient(c.handle.ID)
	return nil
}

// processInput reads input and turns key transitions into game commands.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if time.Since(c.lastInput) > config.IdleDisconnect {
		c.state.Running = false
	} else if time.Since(c.lastInput) > config.IdleWarn {
		c.state.isInactive = true
	}

	for _, ev := range c.tracker.Events(c.state.Input) {
		c.handleKey(ev)
	}
}

// handleKey routes one key transition. Session keys are handled here, game
// keys go to the simulation.
func (c *Client) handleKey(ev input.Event) {
	switch ev.Action {
	case input.ActionQuit:
		if ev.Pressed {
			c.state.Running = false
		}
	case input.ActionStart:
		if ev.Pressed && !c.state.shutdown && c.sim.Start() {
			input.ResetKeyInput(c.inputStream)
			c.tracker.Reset()
		}
	case input.ActionRevive:
		if ev.Pressed && !c.state.shutdown {
			c.sim.RequestRevive()
		}
	default:
		c.sim.HandleKey(ev)
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Server closed the channel
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				c.state.shutdown = true
				c.state.shutdownLeft = config.ShutdownNotice
				if c.sim.Phase() == game.PhaseRunning {
					c.sim.TogglePause()
				}
			case server.EventLeaderboardChanged:
				c.state.TopScores = c.server.TopScores()
			}
		default:
			return
		}
	}
}

// processGameEvents drains simulation events into audio, the HUD and the
// leaderboard.
func (c *Client) processGameEvents() {
	for {
		select {
		case ev := <-c.events:
			audio.Dispatch(c.audio, ev)
			switch ev.Type {
			case game.EventHealthChanged:
				c.state.Health = ev.Value
			case game.EventScoreChanged:
				c.state.Score = ev.Value
			case game.EventGameOver:
				c.state.FinalScore = ev.Value
				c.server.SubmitScore(c.handle.ID, ev.Value)
				c.state.TopScores = c.server.TopScores()
			case game.EventReviveStarted:
				c.state.reviveUntil = time.Now().Add(c.reviveDelay)
			}
		default:
			return
		}
	}
}

// updateScreen follows terminal resizes. The render area is clamped to the
// max resolution and centered; when it moves the terminal is cleared so no
// stale border or pixels are left outside it.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	view := fitViewport(termWidth, termHeight)
	if c.canvas.SetViewport(view) {
		draw.ClearScreen(c.writer)
	}
	c.frame.SetViewport(view)
}

func fitViewport(termWidth, termHeight int) draw.Viewport {
	return draw.FitViewport(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownLeft -= c.state.delta
	if c.state.shutdownLeft <= 0 {
		c.state.Running = false
	}
}
