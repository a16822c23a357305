package imcore

import (
	"sync"
	"testing"
	"unicode/utf8"
)

func newTestInput() *InputState {
	return NewInputState(DefaultConfig())
}

func TestEventQueueOrderAndSeq(t *testing.T) {
	q := NewEventQueue()
	q.AddMousePos(1, 2)
	q.AddMouseButton(MouseButtonLeft, true)
	q.AddKey(KeyA, true)
	q.AddChar('x')

	events := q.Events()
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
	wantTypes := []EventType{EventMousePos, EventMouseButton, EventKey, EventText}
	for i, e := range events {
		if e.Type != wantTypes[i] {
			t.Errorf("event %d: type %v, want %v", i, e.Type, wantTypes[i])
		}
		if e.Seq != uint32(i+1) {
			t.Errorf("event %d: seq %d, want %d", i, e.Seq, i+1)
		}
	}
}

func TestEventQueueDropsInvalid(t *testing.T) {
	q := NewEventQueue()
	q.AddMouseButton(MouseButtonCount, true)
	q.AddMouseButton(-1, true)
	q.AddMouseWheel(0, 0)
	q.AddKey(KeyNone, true)
	q.AddKey(KeyCount, true)
	q.AddChar(0)
	q.Push(Event{Type: EventMouseButton, Button: 7, Down: true})
	q.Push(Event{Type: EventKey, Key: KeyCount + 3, Down: true})
	q.Push(Event{Type: EventKey, Key: -2, Down: true})
	q.Push(Event{Type: EventNone})
	if q.Len() != 0 {
		t.Fatalf("invalid events should be dropped, queue has %d", q.Len())
	}

	q.AddChar(0x110000)
	events := q.Events()
	if len(events) != 1 || events[0].Char != utf8.RuneError {
		t.Errorf("out-of-range rune should become U+FFFD, got %+v", events)
	}
}

func TestMalformedPushDoesNotPanic(t *testing.T) {
	h := newHarness(t)
	h.ctx.Events.Push(Event{Type: EventMouseButton, Button: 7, Down: true})
	h.ctx.Events.Push(Event{Type: EventKey, Key: KeyCount, Down: true})
	h.ctx.Events.Push(Event{Type: EventMouseButton, Button: MouseButtonRight, Down: true})
	h.frame(func(ctx *Context) { ctx.Text("x") })
	if !h.ctx.Input.MouseDown(MouseButtonRight) {
		t.Error("valid events after malformed ones must still apply")
	}
}

func TestEventQueueConcurrentPush(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.AddMousePos(float32(i), 0)
			}
		}()
	}
	wg.Wait()

	events := q.Events()
	if len(events) != 800 {
		t.Fatalf("expected 800 events, got %d", len(events))
	}
	for i, e := range events {
		if e.Seq != uint32(i+1) {
			t.Fatalf("event %d has seq %d; sequence must be gapless", i, e.Seq)
		}
	}
}

func TestAddCharUTF16(t *testing.T) {
	tests := []struct {
		name        string
		units       []uint16
		want        []rune
		substituted int
	}{
		{"bmp", []uint16{'h', 'i'}, []rune{'h', 'i'}, 0},
		{"pair", []uint16{0xD83D, 0xDE00}, []rune{'😀'}, 0},
		{"lone low", []uint16{0xDE00, 'a'}, []rune{utf8.RuneError, 'a'}, 1},
		{"double high", []uint16{0xD83D, 0xD83D, 0xDE00}, []rune{utf8.RuneError, '😀'}, 1},
		{"high then bmp", []uint16{0xD83D, 'b'}, []rune{utf8.RuneError, 'b'}, 1},
		{"zero", []uint16{0}, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewEventQueue()
			for _, u := range tt.units {
				q.AddCharUTF16(u)
			}
			var got []rune
			for _, e := range q.Events() {
				got = append(got, e.Char)
			}
			if string(got) != string(tt.want) {
				t.Errorf("runes = %q, want %q", string(got), string(tt.want))
			}
			if n := q.takeSubstituted(); n != tt.substituted {
				t.Errorf("substituted = %d, want %d", n, tt.substituted)
			}
		})
	}
}

func TestDrainClickEdges(t *testing.T) {
	in := newTestInput()
	q := NewEventQueue()
	dt := float32(1.0 / 60)

	q.AddMousePos(10, 10)
	q.AddMouseButton(MouseButtonLeft, true)
	in.Drain(q, dt, 1.0, true)
	if !in.MouseDown(MouseButtonLeft) || !in.MouseClicked(MouseButtonLeft) {
		t.Fatal("expected down and clicked on the press frame")
	}
	if d := in.MouseDownDuration(MouseButtonLeft); d != 0 {
		t.Errorf("duration on press frame = %v, want 0", d)
	}

	in.Drain(q, dt, 1.0+float64(dt), true)
	if in.MouseClicked(MouseButtonLeft) {
		t.Error("clicked must only be true on the press frame")
	}
	if d := in.MouseDownDuration(MouseButtonLeft); d != dt {
		t.Errorf("duration while held = %v, want %v", d, dt)
	}

	q.AddMouseButton(MouseButtonLeft, false)
	in.Drain(q, dt, 1.0+2*float64(dt), true)
	if !in.MouseReleased(MouseButtonLeft) || in.MouseDown(MouseButtonLeft) {
		t.Error("expected release edge")
	}
	if d := in.MouseDownDuration(MouseButtonLeft); d != -1 {
		t.Errorf("duration when up = %v, want -1", d)
	}
}

func TestDrainDoubleClick(t *testing.T) {
	in := newTestInput()
	q := NewEventQueue()

	q.AddMousePos(20, 20)
	q.AddMouseButton(MouseButtonLeft, true)
	in.Drain(q, 0.05, 1.0, true)
	q.AddMouseButton(MouseButtonLeft, false)
	in.Drain(q, 0.05, 1.05, true)
	q.AddMouseButton(MouseButtonLeft, true)
	in.Drain(q, 0.05, 1.10, true)
	if !in.MouseDoubleClicked(MouseButtonLeft) {
		t.Fatal("second click inside the double-click time should be a double click")
	}

	// A third click starts a new sequence.
	q.AddMouseButton(MouseButtonLeft, false)
	in.Drain(q, 0.05, 1.15, true)
	q.AddMouseButton(MouseButtonLeft, true)
	in.Drain(q, 0.05, 1.20, true)
	if in.MouseDoubleClicked(MouseButtonLeft) {
		t.Error("third click must not be reported as a double click")
	}
}

func TestDrainTrickleSplitsPressRelease(t *testing.T) {
	in := newTestInput()
	q := NewEventQueue()
	q.AddMousePos(5, 5)
	q.AddMouseButton(MouseButtonLeft, true)
	q.AddMouseButton(MouseButtonLeft, false)

	res := in.Drain(q, 0.016, 1, true)
	if res.Consumed != 2 || res.Deferred != 1 {
		t.Fatalf("first drain = %+v, want 2 consumed 1 deferred", res)
	}
	if !in.MouseClicked(MouseButtonLeft) {
		t.Error("press should be visible as a click on the first frame")
	}

	res = in.Drain(q, 0.016, 1.016, true)
	if res.Consumed != 1 || res.Deferred != 0 {
		t.Fatalf("second drain = %+v, want 1 consumed", res)
	}
	if !in.MouseReleased(MouseButtonLeft) {
		t.Error("release should arrive on the second frame")
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty, has %d", q.Len())
	}
}

func TestDrainWithoutTrickleCollapses(t *testing.T) {
	in := newTestInput()
	q := NewEventQueue()
	q.AddMouseButton(MouseButtonLeft, true)
	q.AddMouseButton(MouseButtonLeft, false)

	res := in.Drain(q, 0.016, 1, false)
	if res.Consumed != 2 || res.Deferred != 0 {
		t.Fatalf("drain = %+v, want everything consumed", res)
	}
	if in.MouseDown(MouseButtonLeft) || in.MouseClicked(MouseButtonLeft) {
		t.Error("press and release in one frame collapse without trickling")
	}
}

func TestDrainTrickleTextAfterKey(t *testing.T) {
	in := newTestInput()
	q := NewEventQueue()
	q.AddKey(KeyA, true)
	q.AddChar('a')
	q.AddKey(KeyA, false)

	res := in.Drain(q, 0.016, 1, true)
	if res.Consumed != 1 || res.Deferred != 2 {
		t.Fatalf("drain = %+v, want 1 consumed 2 deferred", res)
	}
	if !in.KeyPressed(KeyA) || in.HasInputChars() {
		t.Error("key edge first, text deferred")
	}

	in.Drain(q, 0.016, 1.016, true)
	if string(in.InputChars) != "a" {
		t.Errorf("InputChars = %q, want a", string(in.InputChars))
	}
	if !in.KeyReleased(KeyA) {
		t.Error("release may follow text in the same frame")
	}
}

func TestDrainMultipleCharsOneFrame(t *testing.T) {
	in := newTestInput()
	q := NewEventQueue()
	q.AddChars("héllo")
	res := in.Drain(q, 0.016, 1, true)
	if res.Deferred != 0 {
		t.Errorf("deferred %d, want 0", res.Deferred)
	}
	if string(in.InputChars) != "héllo" {
		t.Errorf("InputChars = %q", string(in.InputChars))
	}
	in.ConsumeInputChars()
	if in.HasInputChars() {
		t.Error("ConsumeInputChars should clear the buffer")
	}
}

func TestDrainModifiers(t *testing.T) {
	in := newTestInput()
	q := NewEventQueue()
	q.AddKey(KeyLeftCtrl, true)
	q.AddKey(KeyRightShift, true)
	in.Drain(q, 0.016, 1, true)
	if !in.KeyCtrl || !in.KeyShift || in.KeyAlt {
		t.Errorf("mods ctrl=%v shift=%v alt=%v", in.KeyCtrl, in.KeyShift, in.KeyAlt)
	}
	if in.KeyMods != ModCtrl|ModShift {
		t.Errorf("KeyMods = %b", in.KeyMods)
	}
}

func TestDrainFocusLossReleasesEverything(t *testing.T) {
	in := newTestInput()
	q := NewEventQueue()
	q.AddMousePos(1, 1)
	q.AddMouseButton(MouseButtonLeft, true)
	in.Drain(q, 0.016, 1, true)
	q.AddKey(KeyLeftShift, true)
	in.Drain(q, 0.016, 1.008, true)
	if !in.MouseDown(MouseButtonLeft) || !in.KeyDown(KeyLeftShift) {
		t.Fatal("setup: inputs should be down")
	}

	q.AddFocus(false)
	in.Drain(q, 0.016, 1.016, true)
	if !in.AppFocusLost {
		t.Error("AppFocusLost should be set")
	}
	if in.MouseDown(MouseButtonLeft) || in.KeyDown(KeyLeftShift) || in.KeyShift {
		t.Error("focus loss must release every input")
	}
	if !in.MouseReleased(MouseButtonLeft) || !in.KeyReleased(KeyLeftShift) {
		t.Error("released inputs should report a release edge")
	}

	in.Drain(q, 0.016, 1.032, true)
	if in.AppFocusLost {
		t.Error("AppFocusLost lasts one frame")
	}
}

func TestKeyPressedRepeat(t *testing.T) {
	in := newTestInput()
	q := NewEventQueue()
	q.AddKey(KeyBackspace, true)

	var repeats []bool
	for i := 0; i < 5; i++ {
		in.Drain(q, 0.1, float64(i)*0.1, true)
		repeats = append(repeats, in.KeyPressedRepeat(KeyBackspace))
	}
	want := []bool{true, false, false, true, true}
	for i := range want {
		if repeats[i] != want[i] {
			t.Errorf("frame %d: repeat %v, want %v", i, repeats[i], want[i])
		}
	}
}

func TestMouseDragging(t *testing.T) {
	in := newTestInput()
	q := NewEventQueue()
	q.AddMousePos(100, 100)
	q.AddMouseButton(MouseButtonLeft, true)
	in.Drain(q, 0.016, 1, true)

	q.AddMousePos(103, 100)
	in.Drain(q, 0.016, 1.016, true)
	if in.IsMouseDragging(MouseButtonLeft, -1) {
		t.Error("3px is below the drag threshold")
	}

	q.AddMousePos(120, 100)
	in.Drain(q, 0.016, 1.032, true)
	if !in.IsMouseDragging(MouseButtonLeft, -1) {
		t.Fatal("20px should be a drag")
	}
	if d := in.MouseDragDelta(MouseButtonLeft, -1); d != (Vec2{20, 0}) {
		t.Errorf("drag delta = %v, want {20 0}", d)
	}
	if in.MouseDelta != (Vec2{17, 0}) {
		t.Errorf("MouseDelta = %v, want {17 0}", in.MouseDelta)
	}
}

func TestRepeatAmount(t *testing.T) {
	tests := []struct {
		t0, t1, delay, rate float32
		want                int
	}{
		{-1, 0, 0.5, 0.1, 1},
		{0.1, 0.2, 0.5, 0.1, 0},
		{0.45, 0.55, 0.5, 0.1, 1},
		{0.55, 0.85, 0.5, 0.1, 3},
		{0.4, 0.6, 0.5, 0, 1},
		{0.6, 0.7, 0.5, 0, 0},
	}
	for _, tt := range tests {
		if got := repeatAmount(tt.t0, tt.t1, tt.delay, tt.rate); got != tt.want {
			t.Errorf("repeatAmount(%v, %v, %v, %v) = %d, want %d", tt.t0, tt.t1, tt.delay, tt.rate, got, tt.want)
		}
	}
}
