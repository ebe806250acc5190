// Package loop runs the game in a single local terminal.
package loop

import (
	"bufio"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/bossrush/internal/audio"
	"github.com/tomz197/bossrush/internal/draw"
	"github.com/tomz197/bossrush/internal/loop/client"
	"github.com/tomz197/bossrush/internal/loop/server"
)

// Options configures a local game.
type Options struct {
	Username        string
	Audio           audio.Player
	Logger          *log.Logger
	PreciseHitboxes bool
	TermSizeFunc    draw.TermSizeFunc
}

// Run plays one local session on r and w with a private server for the
// leaderboard. It returns when the player quits.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	srv := server.NewServer(opts.Logger)
	c := client.NewClient(srv, r, w, client.ClientOptions{
		TermSizeFunc:    opts.TermSizeFunc,
		Username:        opts.Username,
		Audio:           opts.Audio,
		PreciseHitboxes: opts.PreciseHitboxes,
	})
	return c.Run()
}
