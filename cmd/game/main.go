package main

import (
	"bufio"
	"io"
	"os"
	"os/user"

	"golang.org/x/term"

	"github.com/tomz197/bossrush/internal/audio"
	"github.com/tomz197/bossrush/internal/config"
	"github.com/tomz197/bossrush/internal/loop"
)

func main() {
	settings, err := config.LoadFromEnv()
	logger := config.NewLogger(os.Stderr, "bossrush", settings.LogLevel)
	if err != nil {
		logger.Fatal("failed to load settings", "err", err)
	}

	var player audio.Player = audio.Nop{}
	if settings.Audio.Enabled {
		sm := audio.NewSoundManager(settings.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			player = sm
		}
	}
	defer player.Close()

	username := "player"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}

	// The terminal belongs to the game while it runs, so session logs are dropped.
	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(reader, os.Stdout, loop.Options{
		Username:        username,
		Audio:           player,
		Logger:          config.NewLogger(io.Discard, "bossrush", settings.LogLevel),
		PreciseHitboxes: settings.PreciseHitboxes,
	})
	_ = term.Restore(fd, oldState)
	if err != nil {
		player.Close()
		logger.Fatal("game error", "err", err)
	}
}
