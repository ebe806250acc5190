package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestFrameWriterAppliesOffset(t *testing.T) {
	var out bytes.Buffer
	fw := NewFrameWriter(&out, Viewport{OffsetCol: 3, OffsetRow: 2})
	fw.WriteAt(1, 1, "hi")
	if out.Len() != 0 {
		t.Fatal("nothing should be written before Flush")
	}
	if err := fw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := out.String(), "\033[3;4Hhi"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	out.Reset()
	fw.SetViewport(Viewport{})
	fw.Clear()
	fw.WriteAt(2, 5, "x")
	fw.Flush()
	if got, want := out.String(), "\033[H\033[2J\033[5;2Hx"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFrameWriterChunksLargeFrames(t *testing.T) {
	var out chunkRecorder
	fw := NewFrameWriter(&out, Viewport{})
	fw.Write([]byte(strings.Repeat("x", 3*maxChunkSize)))
	if err := fw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if out.total != 3*maxChunkSize {
		t.Fatalf("wrote %d bytes, want %d", out.total, 3*maxChunkSize)
	}
}

type chunkRecorder struct{ total int }

func (r *chunkRecorder) Write(p []byte) (int, error) {
	r.total += len(p)
	return len(p), nil
}

func TestFitViewportCenters(t *testing.T) {
	tests := []struct {
		w, h int
		want Viewport
	}{
		{80, 24, Viewport{Width: 80, Height: 24}},
		{200, 60, Viewport{Width: 160, Height: 50, OffsetCol: 20, OffsetRow: 5}},
		{161, 24, Viewport{Width: 160, Height: 24}},
	}
	for _, tt := range tests {
		if got := FitViewport(tt.w, tt.h, 160, 50); got != tt.want {
			t.Errorf("FitViewport(%d, %d) = %+v, want %+v", tt.w, tt.h, got, tt.want)
		}
	}
}
