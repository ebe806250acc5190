package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Control sequences written around a game session.
const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// maxChunkSize keeps single writes under a typical MTU so frames stream
// smoothly over SSH.
const maxChunkSize = 1400

// TermSizeFunc returns the terminal dimensions in columns and rows.
type TermSizeFunc func() (width, height int, err error)

// StdoutSize reports the size of the terminal attached to os.Stdout.
func StdoutSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Viewport is the part of the terminal the game renders into. Offsets are
// 0-based columns and rows skipped to center the area.
type Viewport struct {
	Width, Height        int
	OffsetCol, OffsetRow int
}

// FitViewport clamps a terminal of termWidth x termHeight to at most
// maxWidth x maxHeight and centers the result.
func FitViewport(termWidth, termHeight, maxWidth, maxHeight int) Viewport {
	w := min(termWidth, maxWidth)
	h := min(termHeight, maxHeight)
	return Viewport{
		Width:     w,
		Height:    h,
		OffsetCol: (termWidth - w) / 2,
		OffsetRow: (termHeight - h) / 2,
	}
}

// EnterSession hides the cursor and clears the terminal before the first frame.
func EnterSession(w io.Writer) {
	io.WriteString(w, seqHideCursor+seqClear)
}

// LeaveSession wipes the playfield and gives the cursor back.
func LeaveSession(w io.Writer) {
	io.WriteString(w, seqClear+seqShowCursor)
}

// ClearScreen clears the terminal immediately.
func ClearScreen(w io.Writer) {
	io.WriteString(w, seqClear)
}

// writeChunks writes s to w in pieces of at most maxChunkSize bytes.
func writeChunks(w io.Writer, s string) error {
	for len(s) > 0 {
		n := min(len(s), maxChunkSize)
		if _, err := io.WriteString(w, s[:n]); err != nil {
			return err
		}
		s = s[n:]
	}
	return nil
}

// appendMove appends a cursor move to the 1-based terminal cell (col, row).
func appendMove(b *strings.Builder, scratch []byte, col, row int) {
	b.WriteString("\033[")
	b.Write(strconv.AppendInt(scratch[:0], int64(row), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(scratch[:0], int64(col), 10))
	b.WriteByte('H')
}

// FrameWriter collects one frame of canvas cells and text overlays and sends
// it to the terminal in a single Flush. Text positions are canvas-relative
// and shifted by the viewport offset.
type FrameWriter struct {
	buf     strings.Builder
	out     *bufio.Writer
	scratch [20]byte
	offCol  int
	offRow  int
}

// NewFrameWriter returns a FrameWriter sending to w.
func NewFrameWriter(w io.Writer, v Viewport) *FrameWriter {
	return &FrameWriter{
		out:    bufio.NewWriterSize(w, 8192),
		offCol: v.OffsetCol,
		offRow: v.OffsetRow,
	}
}

// SetViewport moves text output along with a resized canvas.
func (fw *FrameWriter) SetViewport(v Viewport) {
	fw.offCol = v.OffsetCol
	fw.offRow = v.OffsetRow
}

// Write appends raw terminal output such as a rendered canvas.
func (fw *FrameWriter) Write(p []byte) (int, error) {
	return fw.buf.Write(p)
}

// Clear queues a full terminal clear at the current position in the frame.
func (fw *FrameWriter) Clear() {
	fw.buf.WriteString(seqClear)
}

// WriteAt queues text at the 1-based canvas cell (col, row).
func (fw *FrameWriter) WriteAt(col, row int, s string) {
	appendMove(&fw.buf, fw.scratch[:], col+fw.offCol, row+fw.offRow)
	fw.buf.WriteString(s)
}

// Flush sends the queued frame and starts a new one.
func (fw *FrameWriter) Flush() error {
	data := fw.buf.String()
	fw.buf.Reset()
	if err := writeChunks(fw.out, data); err != nil {
		return err
	}
	return fw.out.Flush()
}
