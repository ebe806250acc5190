package loop

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestRunQuitsOnCtrlC(t *testing.T) {
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- Run(bufio.NewReader(strings.NewReader("\x03")), &out, Options{
			Username:     "local",
			Logger:       log.New(io.Discard),
			TermSizeFunc: func() (int, int, error) { return 80, 24, nil },
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Ctrl-C")
	}
	if !strings.Contains(out.String(), "\033[?25h") {
		t.Error("cursor not restored on exit")
	}
}
