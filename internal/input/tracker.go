package input

// Event is a discrete key transition for one action.
type Event struct {
	Action  Action
	Pressed bool // true on press, false on release
}

// Tracker converts per-frame held state into press/release events.
type Tracker struct {
	held [ActionCount]bool
}

// Events returns the transitions between the previous frame and in, in
// action order. Holding a key produces a single press event.
func (t *Tracker) Events(in Input) []Event {
	var events []Event
	for a := Action(0); a < ActionCount; a++ {
		if in.Held[a] == t.held[a] {
			continue
		}
		t.held[a] = in.Held[a]
		events = append(events, Event{Action: a, Pressed: in.Held[a]})
	}
	return events
}

// Reset releases everything without emitting events.
func (t *Tracker) Reset() {
	t.held = [ActionCount]bool{}
}
