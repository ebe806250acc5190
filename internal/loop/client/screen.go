package client

import (
	"fmt"
	"time"

	"github.com/tomz197/bossrush/internal/game"
	"github.com/tomz197/bossrush/internal/loop/config"
	"github.com/tomz197/bossrush/internal/object"
)

// Health bar position in logical units.
const (
	healthBarX      = 10.0
	healthBarY      = 10.0
	healthBarHeight = 12.0
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	snap := c.sim.Snapshot()
	screen := c.state.screenFor(&snap)

	// On screen or inactivity transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	if screen != c.state.prevScreen || c.state.isInactive != c.state.wasInactive {
		c.frame.Clear()
		c.canvas.ForceRedraw()
		c.state.prevScreen = screen
		c.state.wasInactive = c.state.isInactive
	}

	c.canvas.Clear()

	if screen == ScreenPlaying || screen == ScreenPaused {
		ctx := object.DrawContext{Canvas: c.canvas}
		for _, obj := range snap.Objects() {
			if err := obj.Draw(ctx); err != nil {
				return err
			}
		}
		c.canvas.FillRect(healthBarX, healthBarY, game.HealthBarWidth(c.state.Health), healthBarHeight)
	}

	if err := c.canvas.Render(c.frame); err != nil {
		return err
	}
	// Border only shows when the terminal exceeds the max render resolution
	if err := c.canvas.RenderBorder(c.frame); err != nil {
		return err
	}

	c.drawUI(screen)

	return c.frame.Flush()
}

// drawUI draws the text overlay for the current screen.
func (c *Client) drawUI(screen Screen) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if screen == ScreenShutdown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch screen {
	case ScreenPlaying:
		c.drawPlayingHUD(termWidth)
	case ScreenPaused:
		c.drawPlayingHUD(termWidth)
		c.drawPausedScreen(centerX, centerY)
	case ScreenStart:
		c.drawStartScreen(centerX, centerY)
	case ScreenOver:
		c.drawOverScreen(centerX, centerY)
	case ScreenReviving:
		c.drawRevivingScreen(centerX, centerY)
	}
}

// writeCentered writes text centered on centerX and marks the cells so the
// canvas repaints them once the text is gone.
func (c *Client) writeCentered(centerX, row int, text string) {
	col := centerX - len([]rune(text))/2
	c.writeText(col, row, text)
}

func (c *Client) writeText(col, row int, text string) {
	c.frame.WriteAt(col, row, text)
	c.canvas.MarkTextDirty(col, row, len([]rune(text)))
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int((config.IdleDisconnect - time.Since(c.lastInput)).Seconds()),
	)
	c.writeCentered(centerX, centerY, msg)
	c.writeCentered(centerX, centerY+2, "Press any key to continue")
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		` ___  ___  ___ ___   ___ _   _ ___ _  _ `,
		`| _ )/ _ \/ __/ __| | _ \ | | / __| || |`,
		`| _ \ (_) \__ \__ \ |   / |_| \__ \ __ |`,
		`|___/\___/|___/___/ |_|_\\___/|___/_||_|`,
	}

	titleStartY := centerY - 7
	for i, line := range titleArt {
		c.writeCentered(centerX, titleStartY+i, line)
	}
	c.writeCentered(centerX, titleStartY+len(titleArt)+1, "~ Dodge the walls, beat the boss ~")

	controlsY := titleStartY + len(titleArt) + 3
	c.writeCentered(centerX, controlsY, "Controls")
	controlLines := []string{
		"WASD / Arrows  . . .  Move",
		"SPACE  . . . . . . . Shoot",
		"P  . . . . . . . . . Pause",
		"Ctrl-C . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		c.writeCentered(centerX, controlsY+1+i, line)
	}

	// Blinking start prompt
	prompt := ">>  Press ENTER to Start  <<"
	if time.Now().UnixMilli()/600%2 != 0 {
		prompt = "                            "
	}
	c.writeCentered(centerX, controlsY+len(controlLines)+2, prompt)
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth int) {
	col, row := c.canvas.LogicalToTerminal(healthBarX, healthBarY+healthBarHeight)
	c.writeText(col, row+1, fmt.Sprintf("HP %-3d", c.state.Health))

	scoreText := fmt.Sprintf("Score: %-8d", c.state.Score)
	c.writeText(termWidth-len(scoreText)-1, 1, scoreText)
}

// drawPausedScreen draws the pause overlay.
func (c *Client) drawPausedScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-1, "PAUSED")
	c.writeCentered(centerX, centerY+1, "Press P to resume")
}

// drawOverScreen draws the game over screen with the leaderboard.
func (c *Client) drawOverScreen(centerX, centerY int) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	}

	titleStartY := centerY - 8
	for i, line := range titleArt {
		c.writeCentered(centerX, titleStartY+i, line)
	}

	row := titleStartY + len(titleArt) + 1
	c.writeCentered(centerX, row, fmt.Sprintf("Your score: %-8d", c.state.FinalScore))

	row += 2
	c.writeCentered(centerX, row, "Top scores")
	for i := range config.TopScoresCount {
		line := fmt.Sprintf("%d. %-*s %8s", i+1, config.MaxUsernameLength, "-", "")
		if i < len(c.state.TopScores) {
			e := c.state.TopScores[i]
			line = fmt.Sprintf("%d. %-*s %8d", i+1, config.MaxUsernameLength, e.Username, e.Score)
		}
		c.writeCentered(centerX, row+1+i, line)
	}

	row += config.TopScoresCount + 2
	c.writeCentered(centerX, row, "ENTER  new game    R  watch an ad to revive")
}

// drawRevivingScreen draws the ad countdown while a revive is pending.
func (c *Client) drawRevivingScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-1, "Watching ad...")

	remaining := max(time.Until(c.state.reviveUntil).Seconds(), 0)
	c.writeCentered(centerX, centerY+1, fmt.Sprintf("Reviving in %.1f seconds", remaining))
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	c.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	c.writeCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownLeft/time.Second) + 1
	c.writeCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %-2d seconds...", remaining))
	c.writeCentered(centerX, centerY+4, "Press Ctrl-C to disconnect now")
}
