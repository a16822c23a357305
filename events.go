package imcore

import (
	"sync"
	"unicode/utf16"
	"unicode/utf8"
)

// EventType tags the payload carried by an Event.
type EventType uint8

const (
	EventNone EventType = iota
	EventMousePos
	EventMouseButton
	EventMouseWheel
	EventKey
	EventText
	EventFocus
)

func (t EventType) String() string {
	switch t {
	case EventMousePos:
		return "MousePos"
	case EventMouseButton:
		return "MouseButton"
	case EventMouseWheel:
		return "MouseWheel"
	case EventKey:
		return "Key"
	case EventText:
		return "Text"
	case EventFocus:
		return "Focus"
	default:
		return "None"
	}
}

// Event is one atomic input fact. Only the fields relevant to Type are set.
// Events are immutable once pushed.
type Event struct {
	Type EventType
	Seq  uint32 // Arrival order, starting at 1

	Pos     Vec2        // EventMousePos: position; EventMouseWheel: (horizontal, vertical) delta
	Button  MouseButton // EventMouseButton
	Key     Key         // EventKey
	Down    bool        // EventMouseButton, EventKey
	Char    rune        // EventText
	Focused bool        // EventFocus
}

// EventQueue is the FIFO between platform backends and the frame driver.
// Push methods may be called from any goroutine; draining happens only on
// the frame goroutine through InputState.Drain.
type EventQueue struct {
	mu          sync.Mutex
	events      []Event
	seq         uint32
	highSurr    uint16 // Pending UTF-16 high surrogate, 0 when none
	substituted int    // Replacement runes emitted for malformed UTF-16
}

func (e Event) valid() bool {
	switch e.Type {
	case EventMouseButton:
		return e.Button >= 0 && e.Button < MouseButtonCount
	case EventKey:
		return e.Key > KeyNone && e.Key < KeyCount
	case EventText:
		return e.Char != 0
	}
	return e.Type > EventNone && e.Type <= EventFocus
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 64)}
}

// Push appends an event. Seq is assigned here and overrides any caller value.
// Events naming an out-of-range button or key are dropped.
func (q *EventQueue) Push(e Event) {
	if !e.valid() {
		return
	}
	q.mu.Lock()
	q.pushLocked(e)
	q.mu.Unlock()
}

func (q *EventQueue) pushLocked(e Event) {
	q.seq++
	e.Seq = q.seq
	q.events = append(q.events, e)
}

// AddMousePos queues a pointer move.
func (q *EventQueue) AddMousePos(x, y float32) {
	q.Push(Event{Type: EventMousePos, Pos: Vec2{x, y}})
}

// AddMouseButton queues a pointer button edge.
// Out-of-range buttons are dropped.
func (q *EventQueue) AddMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	q.Push(Event{Type: EventMouseButton, Button: button, Down: down})
}

// AddMouseWheel queues a wheel delta. Zero deltas are dropped.
func (q *EventQueue) AddMouseWheel(x, y float32) {
	if x == 0 && y == 0 {
		return
	}
	q.Push(Event{Type: EventMouseWheel, Pos: Vec2{x, y}})
}

// AddKey queues a key edge. Modifier keys update the aggregated modifier flags.
func (q *EventQueue) AddKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	q.Push(Event{Type: EventKey, Key: key, Down: down})
}

// AddChar queues a decoded codepoint. Invalid codepoints become U+FFFD.
func (q *EventQueue) AddChar(r rune) {
	if r == 0 {
		return
	}
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	q.Push(Event{Type: EventText, Char: r})
}

// AddChars queues every rune of s.
func (q *EventQueue) AddChars(s string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, r := range s {
		q.pushLocked(Event{Type: EventText, Char: r})
	}
}

// AddCharUTF16 queues one UTF-16 code unit, pairing surrogates across calls.
// An unmatched low surrogate or two consecutive high surrogates produce U+FFFD.
func (q *EventQueue) AddCharUTF16(c uint16) {
	q.mu.Lock()
	defer q.mu.Unlock()

	r := rune(c)
	switch {
	case c >= 0xD800 && c <= 0xDBFF:
		if q.highSurr != 0 {
			q.substituteLocked()
		}
		q.highSurr = c
		return
	case c >= 0xDC00 && c <= 0xDFFF:
		if q.highSurr == 0 {
			q.substituteLocked()
			return
		}
		r = utf16.DecodeRune(rune(q.highSurr), r)
		q.highSurr = 0
	default:
		if q.highSurr != 0 {
			q.highSurr = 0
			q.substituteLocked()
		}
		if c == 0 {
			return
		}
	}
	q.pushLocked(Event{Type: EventText, Char: r})
}

func (q *EventQueue) substituteLocked() {
	q.substituted++
	q.pushLocked(Event{Type: EventText, Char: utf8.RuneError})
}

// AddFocus queues an application focus change.
func (q *EventQueue) AddFocus(focused bool) {
	q.Push(Event{Type: EventFocus, Focused: focused})
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Events returns a copy of the queued events.
func (q *EventQueue) Events() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Event, len(q.events))
	copy(out, q.events)
	return out
}

// Clear drops all queued events.
func (q *EventQueue) Clear() {
	q.mu.Lock()
	q.events = q.events[:0]
	q.highSurr = 0
	q.mu.Unlock()
}

// take swaps out the pending events. The returned slice is owned by the caller.
func (q *EventQueue) take() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

// requeue puts unconsumed events back at the head, ahead of anything pushed
// since take, so arrival order is preserved.
func (q *EventQueue) requeue(rest []Event) {
	if len(rest) == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	merged := make([]Event, 0, len(rest)+len(q.events))
	merged = append(merged, rest...)
	merged = append(merged, q.events...)
	q.events = merged
}

// takeSubstituted returns and resets the malformed UTF-16 counter.
func (q *EventQueue) takeSubstituted() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := q.substituted
	q.substituted = 0
	return n
}
