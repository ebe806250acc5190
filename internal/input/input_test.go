package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParseCodes(t *testing.T) {
	got := ParseCodes([]byte("\x1b[A\x1b[Dw \rpz\x03"))
	want := []Code{CodeArrowUp, CodeArrowLeft, CodeKeyW, CodeSpace, CodeEnter, CodeKeyP, CodeCtrlC}
	if len(got) != len(want) {
		t.Fatalf("ParseCodes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("code %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBindingsAcceptSynonyms(t *testing.T) {
	pairs := []struct {
		a, b Code
		want Action
	}{
		{CodeArrowUp, CodeKeyW, ActionUp},
		{CodeArrowDown, CodeKeyS, ActionDown},
		{CodeArrowLeft, CodeKeyA, ActionLeft},
		{CodeArrowRight, CodeKeyD, ActionRight},
	}
	for _, p := range pairs {
		for _, c := range []Code{p.a, p.b} {
			got, ok := Lookup(c)
			if !ok || got != p.want {
				t.Errorf("Lookup(%q) = %v, %v; want %v", c, got, ok, p.want)
			}
		}
	}
	if _, ok := Lookup("KeyZ"); ok {
		t.Error("unbound code should not resolve")
	}
}

func newTestStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

func TestReadInputHoldWindow(t *testing.T) {
	s := newTestStream()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, b := range []byte("d ") {
		s.ch <- b
	}
	in := readInputAt(s, now)
	if !in.Down(ActionRight) || !in.Down(ActionFire) {
		t.Fatalf("expected right and fire held, got %+v", in.Held)
	}
	if string(in.Pressed) != "d " {
		t.Errorf("Pressed = %q, want %q", in.Pressed, "d ")
	}

	in = readInputAt(s, now.Add(keyHoldDuration/2))
	if !in.Down(ActionRight) {
		t.Error("key should still be held within the hold window")
	}

	in = readInputAt(s, now.Add(keyHoldDuration))
	if in.Down(ActionRight) || in.Down(ActionFire) {
		t.Error("keys should be released after the hold window")
	}
}

func TestReadInputClosedStreamQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if ReadInput(s).Down(ActionQuit) {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("expected quit after the reader hit EOF")
}

func TestResetKeyInput(t *testing.T) {
	s := newTestStream()
	now := time.Now()
	s.ch <- 'w'
	readInputAt(s, now)
	ResetKeyInput(s)
	if readInputAt(s, now).Down(ActionUp) {
		t.Error("reset should release held keys")
	}
}

func TestTrackerEdges(t *testing.T) {
	var tr Tracker
	var in Input

	in.Held[ActionFire] = true
	events := tr.Events(in)
	if len(events) != 1 || events[0] != (Event{Action: ActionFire, Pressed: true}) {
		t.Fatalf("first frame events = %+v", events)
	}

	// Still held: no new events.
	if events := tr.Events(in); len(events) != 0 {
		t.Fatalf("held key produced %+v", events)
	}

	in.Held[ActionFire] = false
	in.Held[ActionUp] = true
	events = tr.Events(in)
	if len(events) != 2 {
		t.Fatalf("expected press+release, got %+v", events)
	}
	if events[0] != (Event{Action: ActionUp, Pressed: true}) || events[1] != (Event{Action: ActionFire, Pressed: false}) {
		t.Errorf("events = %+v", events)
	}

	tr.Reset()
	if events := tr.Events(Input{}); len(events) != 0 {
		t.Errorf("after reset an idle frame should be silent, got %+v", events)
	}
}

func TestActionString(t *testing.T) {
	if ActionBuffJump.String() != "buff-jump" {
		t.Errorf("got %q", ActionBuffJump.String())
	}
	if Action(99).String() != "unknown" {
		t.Errorf("got %q", Action(99).String())
	}
}
