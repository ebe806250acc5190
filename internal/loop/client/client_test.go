package client

import (
	"bufio"
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/bossrush/internal/game"
	"github.com/tomz197/bossrush/internal/input"
	"github.com/tomz197/bossrush/internal/loop/config"
	"github.com/tomz197/bossrush/internal/loop/server"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

// newIdleClient returns a client whose input never arrives.
func newIdleClient(t *testing.T) (*Client, *server.Server, *bytes.Buffer) {
	t.Helper()
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	srv := server.NewServer(log.New(io.Discard))
	var out bytes.Buffer
	c := NewClient(srv, bufio.NewReader(pr), &out, ClientOptions{
		TermSizeFunc: fixedSize(80, 24),
		Username:     "tester",
		Rand:         rand.New(rand.NewSource(1)),
	})
	return c, srv, &out
}

func press(c *Client, a input.Action) {
	c.handleKey(input.Event{Action: a, Pressed: true})
	c.handleKey(input.Event{Action: a, Pressed: false})
}

func TestStartKeyStartsGame(t *testing.T) {
	c, _, _ := newIdleClient(t)
	if c.sim.Phase() != game.PhaseReady {
		t.Fatalf("phase = %v, want ready", c.sim.Phase())
	}
	press(c, input.ActionStart)
	if c.sim.Phase() != game.PhaseRunning {
		t.Fatalf("phase = %v, want running", c.sim.Phase())
	}

	press(c, input.ActionPause)
	if c.sim.Phase() != game.PhasePaused {
		t.Fatalf("phase = %v, want paused", c.sim.Phase())
	}
}

func TestQuitStopsClient(t *testing.T) {
	c, _, _ := newIdleClient(t)
	c.handleKey(input.Event{Action: input.ActionQuit, Pressed: true})
	if c.state.Running {
		t.Fatal("client still running after quit")
	}
}

func TestGameEventsUpdateStateAndLeaderboard(t *testing.T) {
	c, srv, _ := newIdleClient(t)

	c.events.Notify(game.Event{Type: game.EventHealthChanged, Value: 40})
	c.events.Notify(game.Event{Type: game.EventScoreChanged, Value: 17})
	c.events.Notify(game.Event{Type: game.EventGameOver, Value: 17})
	c.processGameEvents()

	if c.state.Health != 40 || c.state.Score != 17 || c.state.FinalScore != 17 {
		t.Fatalf("state = %+v", *c.state)
	}
	top := srv.TopScores()
	if len(top) != 1 || top[0].Score != 17 || top[0].Username != "tester" {
		t.Fatalf("leaderboard = %+v", top)
	}
	if len(c.state.TopScores) != 1 {
		t.Fatalf("client leaderboard = %+v", c.state.TopScores)
	}
}

func TestShutdownCountsDown(t *testing.T) {
	c, srv, _ := newIdleClient(t)
	press(c, input.ActionStart)

	go srv.Shutdown(50 * time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for !c.state.shutdown {
		if time.Now().After(deadline) {
			t.Fatal("shutdown event never arrived")
		}
		c.processServerEvents()
		time.Sleep(time.Millisecond)
	}

	if c.sim.Phase() != game.PhasePaused {
		t.Errorf("game should pause on shutdown, phase = %v", c.sim.Phase())
	}
	press(c, input.ActionStart)
	if c.sim.Phase() != game.PhasePaused {
		t.Error("start accepted during shutdown")
	}

	c.state.delta = config.ShutdownNotice
	c.updateShutdownState()
	if c.state.Running {
		t.Fatal("client still running after the shutdown countdown")
	}
}

func TestInactivityWarnsThenDisconnects(t *testing.T) {
	c, _, _ := newIdleClient(t)

	c.lastInput = time.Now().Add(-config.IdleWarn - time.Second)
	c.processInput()
	if !c.state.isInactive || !c.state.Running {
		t.Fatalf("inactive=%v running=%v, want warning only", c.state.isInactive, c.state.Running)
	}

	c.lastInput = time.Now().Add(-config.IdleDisconnect - time.Second)
	c.processInput()
	if c.state.Running {
		t.Fatal("client not disconnected after the inactivity limit")
	}
}

func TestDrawFrameScreens(t *testing.T) {
	c, _, out := newIdleClient(t)

	if err := c.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if !strings.Contains(out.String(), "Controls") {
		t.Fatal("start screen not drawn")
	}

	press(c, input.ActionStart)
	c.processGameEvents()
	c.sim.Tick()
	out.Reset()
	if err := c.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "\033[H\033[2J") {
		t.Error("screen change did not clear the terminal")
	}
	if !strings.Contains(got, "Score: 0") || !strings.Contains(got, "HP 100") {
		t.Errorf("HUD missing from %q", got)
	}

	press(c, input.ActionPause)
	out.Reset()
	c.drawFrame()
	if !strings.Contains(out.String(), "PAUSED") {
		t.Error("pause overlay not drawn")
	}
}

func TestRunEndsWhenInputCloses(t *testing.T) {
	srv := server.NewServer(log.New(io.Discard))
	var out bytes.Buffer
	c := NewClient(srv, bufio.NewReader(strings.NewReader("")), &out, ClientOptions{
		TermSizeFunc: fixedSize(80, 24),
	})

	done := make(chan error, 1)
	go func() { done <- c.Run() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after input closed")
	}
	if srv.Players() != 0 {
		t.Errorf("client still registered after Run")
	}
}

func TestFitViewport(t *testing.T) {
	v := fitViewport(config.MaxTermWidth+20, config.MaxTermHeight+10)
	if v.Width != config.MaxTermWidth || v.Height != config.MaxTermHeight || v.OffsetCol != 10 || v.OffsetRow != 5 {
		t.Fatalf("fitViewport = %+v", v)
	}
	v = fitViewport(80, 24)
	if v.Width != 80 || v.Height != 24 || v.OffsetCol != 0 || v.OffsetRow != 0 {
		t.Fatalf("small terminal clamped: %+v", v)
	}
}

func TestResizeClearsTerminal(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	width := 80
	var out bytes.Buffer
	c := NewClient(server.NewServer(log.New(io.Discard)), bufio.NewReader(pr), &out, ClientOptions{
		TermSizeFunc: func() (int, int, error) { return width, 24, nil },
	})

	c.updateScreen()
	if out.Len() != 0 {
		t.Fatalf("unchanged size wrote %q", out.String())
	}

	width = 100
	c.updateScreen()
	if out.String() != "\033[H\033[2J" {
		t.Fatalf("resize wrote %q, want a clear", out.String())
	}
	if c.canvas.TerminalWidth() != 100 {
		t.Errorf("canvas width = %d, want 100", c.canvas.TerminalWidth())
	}
}

func TestScreenFor(t *testing.T) {
	s := NewClientState()
	tests := []struct {
		snap game.Snapshot
		want Screen
	}{
		{game.Snapshot{Phase: game.PhaseReady}, ScreenStart},
		{game.Snapshot{Phase: game.PhaseRunning}, ScreenPlaying},
		{game.Snapshot{Phase: game.PhasePaused}, ScreenPaused},
		{game.Snapshot{Phase: game.PhaseOver}, ScreenOver},
		{game.Snapshot{Phase: game.PhaseOver, Reviving: true}, ScreenReviving},
	}
	for _, tt := range tests {
		if got := s.screenFor(&tt.snap); got != tt.want {
			t.Errorf("screenFor(%v) = %v, want %v", tt.snap.Phase, got, tt.want)
		}
	}

	s.shutdown = true
	if got := s.screenFor(&tests[1].snap); got != ScreenShutdown {
		t.Errorf("shutdown screen = %v", got)
	}
}
