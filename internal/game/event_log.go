package game

import "fmt"

// eventLogLimit bounds the engine's log so long sessions don't grow forever.
const eventLogLimit = 4096

// EventKind names what happened.
type EventKind uint8

const (
	EventReset EventKind = iota
	EventSteer
	EventAte
	EventCrash
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventReset:
		return "reset"
	case EventSteer:
		return "steer"
	case EventAte:
		return "ate"
	case EventCrash:
		return "crash"
	case EventQuit:
		return "quit"
	}
	return "unknown"
}

// Event is one recorded engine event.
type Event struct {
	Tick   int
	Kind   EventKind
	Head   Point // head cell when the event was recorded
	Score  int
	Length int
	Detail string
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] ate    (6,5)   score=10   len=4  next food (17,3)
func (e Event) String() string {
	return fmt.Sprintf("[T=%03d] %-6s %-7s score=%-4d len=%-3d %s",
		e.Tick, e.Kind, e.Head, e.Score, e.Length, e.Detail)
}

// EventLog collects engine events in order. With a positive limit the
// oldest entries are dropped once it is full.
type EventLog struct {
	entries []Event
	limit   int
}

// NewEventLog creates a log keeping at most limit entries; 0 keeps all.
func NewEventLog(limit int) *EventLog {
	return &EventLog{limit: limit}
}

// Add records a new entry.
func (l *EventLog) Add(e Event) {
	if l.limit > 0 && len(l.entries) >= l.limit {
		n := copy(l.entries, l.entries[len(l.entries)-l.limit+1:])
		l.entries = l.entries[:n]
	}
	l.entries = append(l.entries, e)
}

// Len is the number of retained entries.
func (l *EventLog) Len() int { return len(l.entries) }

// Entries returns a copy of all retained entries, oldest first.
func (l *EventLog) Entries() []Event {
	return append([]Event(nil), l.entries...)
}

// Recent returns a copy of up to n of the newest entries, oldest first.
func (l *EventLog) Recent(n int) []Event {
	if n <= 0 {
		return nil
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	return append([]Event(nil), l.entries[len(l.entries)-n:]...)
}

// Filter returns entries of the given kind.
func (l *EventLog) Filter(kind EventKind) []Event {
	var out []Event
	for _, e := range l.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries have the given kind.
func (l *EventLog) Count(kind EventKind) int {
	n := 0
	for _, e := range l.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent entry of kind, or false if none.
func (l *EventLog) Last(kind EventKind) (Event, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Kind == kind {
			return l.entries[i], true
		}
	}
	return Event{}, false
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (l *EventLog) FilterTickRange(fromTick, toTick int) []Event {
	var out []Event
	for _, e := range l.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}
