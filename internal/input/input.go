// Package input turns a raw terminal byte stream into logical game actions.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses, so releases are inferred from silence. The
// pause before autorepeat starts (typically 250-500ms) is longer than this,
// so holding a key yields a second press: Space fires again and P toggles
// pause twice.
const keyHoldDuration = 60 * time.Millisecond

// Code names a physical key the way browsers report KeyboardEvent.code.
type Code string

// Key codes understood by the game.
const (
	CodeArrowUp    Code = "ArrowUp"
	CodeArrowDown  Code = "ArrowDown"
	CodeArrowLeft  Code = "ArrowLeft"
	CodeArrowRight Code = "ArrowRight"
	CodeKeyW       Code = "KeyW"
	CodeKeyA       Code = "KeyA"
	CodeKeyS       Code = "KeyS"
	CodeKeyD       Code = "KeyD"
	CodeKeyQ       Code = "KeyQ"
	CodeKeyE       Code = "KeyE"
	CodeKeyP       Code = "KeyP"
	CodeKeyR       Code = "KeyR"
	CodeSpace      Code = "Space"
	CodeEnter      Code = "Enter"
	CodeCtrlC      Code = "CtrlC"
)

// Action is a logical game input bound to one or more key codes.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionPause
	ActionBuffSpeed
	ActionBuffJump
	ActionStart
	ActionRevive
	ActionQuit
	ActionCount
)

var actionNames = [ActionCount]string{
	"up", "down", "left", "right", "fire", "pause",
	"buff-speed", "buff-jump", "start", "revive", "quit",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Bindings maps key codes to actions. Movement accepts both arrow keys and WASD.
var Bindings = map[Code]Action{
	CodeArrowUp:    ActionUp,
	CodeKeyW:       ActionUp,
	CodeArrowDown:  ActionDown,
	CodeKeyS:       ActionDown,
	CodeArrowLeft:  ActionLeft,
	CodeKeyA:       ActionLeft,
	CodeArrowRight: ActionRight,
	CodeKeyD:       ActionRight,
	CodeSpace:      ActionFire,
	CodeKeyP:       ActionPause,
	CodeKeyQ:       ActionBuffSpeed,
	CodeKeyE:       ActionBuffJump,
	CodeEnter:      ActionStart,
	CodeKeyR:       ActionRevive,
	CodeCtrlC:      ActionQuit,
}

// Lookup returns the action bound to code.
func Lookup(code Code) (Action, bool) {
	a, ok := Bindings[code]
	return a, ok
}

// Input represents the current frame's input state.
type Input struct {
	Held    [ActionCount]bool // Actions whose keys were seen within the hold window
	Pressed []byte            // Raw bytes received this frame
}

// Down reports whether the action is currently held.
func (in Input) Down(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}
	return in.Held[a]
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch       chan byte
	lastSeen [ActionCount]time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// A closed stream reports Quit so the caller can shut down.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

func readInputAt(s *Stream, now time.Time) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for _, code := range ParseCodes(buf) {
		if a, ok := Lookup(code); ok {
			s.lastSeen[a] = now
		}
	}

	// Build input from key state - keys are "pressed" if seen within hold duration
	in := Input{Pressed: buf}
	for a := Action(0); a < ActionCount; a++ {
		seen := s.lastSeen[a]
		in.Held[a] = !seen.IsZero() && now.Sub(seen) < keyHoldDuration
	}
	if closed {
		in.Held[ActionQuit] = true
	}
	return in
}

// ResetKeyInput forgets all held keys, e.g. after a screen transition.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.lastSeen = [ActionCount]time.Time{}
}

// ParseCodes converts raw terminal bytes into key codes. Arrow keys arrive as
// CSI sequences (ESC [ A..D); everything else is a single byte.
func ParseCodes(buf []byte) []Code {
	var codes []Code
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				codes = append(codes, CodeArrowUp)
				i += 2
				continue
			case 'B':
				codes = append(codes, CodeArrowDown)
				i += 2
				continue
			case 'C':
				codes = append(codes, CodeArrowRight)
				i += 2
				continue
			case 'D':
				codes = append(codes, CodeArrowLeft)
				i += 2
				continue
			}
		}

		if code, ok := byteCode(b); ok {
			codes = append(codes, code)
		}
	}
	return codes
}

func byteCode(b byte) (Code, bool) {
	switch b {
	case 'w', 'W':
		return CodeKeyW, true
	case 'a', 'A':
		return CodeKeyA, true
	case 's', 'S':
		return CodeKeyS, true
	case 'd', 'D':
		return CodeKeyD, true
	case 'q', 'Q':
		return CodeKeyQ, true
	case 'e', 'E':
		return CodeKeyE, true
	case 'p', 'P':
		return CodeKeyP, true
	case 'r', 'R':
		return CodeKeyR, true
	case ' ':
		return CodeSpace, true
	case '\n', '\r':
		return CodeEnter, true
	case '\x03':
		return CodeCtrlC, true
	}
	return "", false
}
