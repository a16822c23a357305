package imcore

import (
	"math"
	"strconv"
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonExtra1
	MouseButtonExtra2
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyLeftCtrl
	KeyLeftShift
	KeyLeftAlt
	KeyLeftSuper
	KeyRightCtrl
	KeyRightShift
	KeyRightAlt
	KeyRightSuper
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCount
)

// KeyMods is the combined modifier bitmask.
type KeyMods uint8

const (
	ModCtrl KeyMods = 1 << iota
	ModShift
	ModAlt
	ModSuper
	ModNone KeyMods = 0
)

// invalidMousePos marks "no pointer" before the first move event.
var invalidMousePos = Vec2{-math.MaxFloat32, -math.MaxFloat32}

func mousePosValid(p Vec2) bool {
	return p.X >= -math.MaxFloat32/2 && p.Y >= -math.MaxFloat32/2
}

// InputState is the per-frame aggregate derived from the event queue.
// Only Drain mutates it; widget code reads it.
type InputState struct {
	MousePos     Vec2
	MousePosPrev Vec2
	MouseDelta   Vec2

	// Wheel deltas accumulated this frame
	MouseWheel  float32
	MouseWheelH float32

	mouseDown             [MouseButtonCount]bool
	mouseDownDuration     [MouseButtonCount]float32 // -1 when up
	mouseDownDurationPrev [MouseButtonCount]float32
	mouseClicked          [MouseButtonCount]bool
	mouseReleased         [MouseButtonCount]bool
	mouseDoubleClicked    [MouseButtonCount]bool
	mouseClickedPos       [MouseButtonCount]Vec2
	mouseClickedTime      [MouseButtonCount]float64
	mouseDragMaxDistSqr   [MouseButtonCount]float32

	keyDown             [KeyCount]bool
	keyDownDuration     [KeyCount]float32 // -1 when up
	keyDownDurationPrev [KeyCount]float32

	// Text input (Unicode characters typed this frame)
	InputChars []rune

	// Modifiers
	KeyCtrl  bool
	KeyShift bool
	KeyAlt   bool
	KeySuper bool
	KeyMods  KeyMods

	// AppFocusLost is true for the one frame following a focus-loss event.
	AppFocusLost bool

	// Coarse capture hints for the embedding application.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
	WantTextInput       bool

	// Time settings, copied from Config
	KeyRepeatDelay          float32
	KeyRepeatRate           float32
	MouseDragThreshold      float32
	MouseDoubleClickTime    float32
	MouseDoubleClickMaxDist float32

	DeltaTime float32
	Time      float64
}

// NewInputState creates an InputState with every input up.
func NewInputState(cfg Config) *InputState {
	s := &InputState{
		MousePos:     invalidMousePos,
		MousePosPrev: invalidMousePos,
		InputChars:   make([]rune, 0, 16),
	}
	s.applyConfig(cfg)
	for i := range s.mouseDownDuration {
		s.mouseDownDuration[i] = -1
		s.mouseDownDurationPrev[i] = -1
		s.mouseClickedTime[i] = math.Inf(-1)
	}
	for i := range s.keyDownDuration {
		s.keyDownDuration[i] = -1
		s.keyDownDurationPrev[i] = -1
	}
	return s
}

func (s *InputState) applyConfig(cfg Config) {
	s.KeyRepeatDelay = cfg.KeyRepeatDelay
	s.KeyRepeatRate = cfg.KeyRepeatRate
	s.MouseDragThreshold = cfg.MouseDragThreshold
	s.MouseDoubleClickTime = cfg.MouseDoubleClickTime
	s.MouseDoubleClickMaxDist = cfg.MouseDoubleClickMaxDist
}

// DrainResult summarizes one Drain call.
type DrainResult struct {
	Consumed int // Events folded into the state this frame
	Deferred int // Events left queued by the trickle rule
}

// Drain folds queued events into the aggregate state, in arrival order, then
// updates durations. Call exactly once per frame from the frame goroutine.
//
// With trickle enabled, an input that already changed this frame stops the
// fold; the rest stays queued for the next frame. A press and release arriving
// within one frame therefore still produce a click followed by a release.
func (s *InputState) Drain(q *EventQueue, dt float32, now float64, trickle bool) DrainResult {
	s.DeltaTime = dt
	s.Time = now
	s.InputChars = s.InputChars[:0]
	s.MouseWheel = 0
	s.MouseWheelH = 0
	s.AppFocusLost = false

	events := q.take()

	var (
		mouseMoved    bool
		mouseWheeled  bool
		buttonChanged uint32
		keyChanged    [KeyCount]bool
		anyKeyChanged bool
		textInputted  bool
	)

	consumed := 0
drain:
	for _, e := range events {
		switch e.Type {
		case EventMousePos:
			if trickle && (buttonChanged != 0 || mouseWheeled || anyKeyChanged || textInputted) {
				break drain
			}
			s.MousePos = e.Pos
			mouseMoved = true
		case EventMouseButton:
			bit := uint32(1) << uint(e.Button)
			if trickle && (buttonChanged&bit != 0 || mouseWheeled) {
				break drain
			}
			if s.mouseDown[e.Button] != e.Down {
				buttonChanged |= bit
			}
			s.mouseDown[e.Button] = e.Down
		case EventMouseWheel:
			if trickle && (mouseMoved || buttonChanged != 0) {
				break drain
			}
			s.MouseWheelH += e.Pos.X
			s.MouseWheel += e.Pos.Y
			mouseWheeled = true
		case EventKey:
			if trickle && s.keyDown[e.Key] != e.Down && (keyChanged[e.Key] || buttonChanged != 0) {
				break drain
			}
			if s.keyDown[e.Key] != e.Down {
				keyChanged[e.Key] = true
				anyKeyChanged = true
			}
			s.keyDown[e.Key] = e.Down
			if isModifierKey(e.Key) {
				s.updateModifiers()
			}
		case EventText:
			if trickle && (anyKeyChanged || buttonChanged != 0 || mouseMoved || mouseWheeled) {
				break drain
			}
			s.InputChars = append(s.InputChars, e.Char)
			textInputted = true
		case EventFocus:
			if !e.Focused {
				s.clearInputDown()
				s.AppFocusLost = true
			}
		}
		consumed++
	}
	q.requeue(events[consumed:])

	s.updateMouse(dt, now)
	s.updateKeys(dt)
	s.updateCapture()

	return DrainResult{Consumed: consumed, Deferred: len(events) - consumed}
}

// clearInputDown releases every button and key. Durations are then reset by
// the regular update, so released inputs report a release edge.
func (s *InputState) clearInputDown() {
	for i := range s.mouseDown {
		s.mouseDown[i] = false
	}
	for i := range s.keyDown {
		s.keyDown[i] = false
	}
	s.updateModifiers()
}

func isModifierKey(k Key) bool {
	return k >= KeyLeftCtrl && k <= KeyRightSuper
}

func (s *InputState) updateModifiers() {
	s.KeyCtrl = s.keyDown[KeyLeftCtrl] || s.keyDown[KeyRightCtrl]
	s.KeyShift = s.keyDown[KeyLeftShift] || s.keyDown[KeyRightShift]
	s.KeyAlt = s.keyDown[KeyLeftAlt] || s.keyDown[KeyRightAlt]
	s.KeySuper = s.keyDown[KeyLeftSuper] || s.keyDown[KeyRightSuper]
	s.KeyMods = ModNone
	if s.KeyCtrl {
		s.KeyMods |= ModCtrl
	}
	if s.KeyShift {
		s.KeyMods |= ModShift
	}
	if s.KeyAlt {
		s.KeyMods |= ModAlt
	}
	if s.KeySuper {
		s.KeyMods |= ModSuper
	}
}

func (s *InputState) updateMouse(dt float32, now float64) {
	if mousePosValid(s.MousePos) && mousePosValid(s.MousePosPrev) {
		s.MouseDelta = s.MousePos.Sub(s.MousePosPrev)
	} else {
		s.MouseDelta = Vec2{}
	}
	s.MousePosPrev = s.MousePos

	for i := range s.mouseDown {
		prev := s.mouseDownDuration[i]
		s.mouseDownDurationPrev[i] = prev
		s.mouseDoubleClicked[i] = false
		if s.mouseDown[i] {
			if prev < 0 {
				s.mouseDownDuration[i] = 0
			} else {
				s.mouseDownDuration[i] = prev + dt
			}
		} else {
			s.mouseDownDuration[i] = -1
		}
		s.mouseClicked[i] = s.mouseDownDuration[i] == 0
		s.mouseReleased[i] = prev >= 0 && !s.mouseDown[i]

		if s.mouseClicked[i] {
			pos := s.MousePos
			delta := pos.Sub(s.mouseClickedPos[i])
			if now-s.mouseClickedTime[i] < float64(s.MouseDoubleClickTime) &&
				delta.LengthSqr() < s.MouseDoubleClickMaxDist*s.MouseDoubleClickMaxDist {
				s.mouseDoubleClicked[i] = true
				// Triple click starts a fresh sequence
				s.mouseClickedTime[i] = math.Inf(-1)
			} else {
				s.mouseClickedTime[i] = now
			}
			s.mouseClickedPos[i] = pos
			s.mouseDragMaxDistSqr[i] = 0
		} else if s.mouseDown[i] && mousePosValid(s.MousePos) {
			d := s.MousePos.Sub(s.mouseClickedPos[i]).LengthSqr()
			if d > s.mouseDragMaxDistSqr[i] {
				s.mouseDragMaxDistSqr[i] = d
			}
		}
	}
}

func (s *InputState) updateKeys(dt float32) {
	for i := range s.keyDown {
		prev := s.keyDownDuration[i]
		s.keyDownDurationPrev[i] = prev
		if s.keyDown[i] {
			if prev < 0 {
				s.keyDownDuration[i] = 0
			} else {
				s.keyDownDuration[i] = prev + dt
			}
		} else {
			s.keyDownDuration[i] = -1
		}
	}
}

func (s *InputState) updateCapture() {
	s.WantCaptureMouse = false
	for _, d := range s.mouseDown {
		if d {
			s.WantCaptureMouse = true
			break
		}
	}
	s.WantCaptureKeyboard = len(s.InputChars) > 0
	for _, d := range s.keyDown {
		if d {
			s.WantCaptureKeyboard = true
			break
		}
	}
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true only on the frame the button went down.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if the button was down last frame and is up now.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseReleased[button]
}

// MouseDoubleClicked returns true on the second click of a double click.
func (s *InputState) MouseDoubleClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDoubleClicked[button]
}

// MouseDownDuration returns how long the button has been held, or -1 when up.
func (s *InputState) MouseDownDuration(button MouseButton) float32 {
	if button < 0 || button >= MouseButtonCount {
		return -1
	}
	return s.mouseDownDuration[button]
}

// MouseClickedPos returns where the last click of button happened.
func (s *InputState) MouseClickedPos(button MouseButton) Vec2 {
	if button < 0 || button >= MouseButtonCount {
		return Vec2{}
	}
	return s.mouseClickedPos[button]
}

// IsMouseDragging reports whether button is held and the pointer moved past
// threshold since the click. A negative threshold uses MouseDragThreshold.
func (s *InputState) IsMouseDragging(button MouseButton, threshold float32) bool {
	if button < 0 || button >= MouseButtonCount || !s.mouseDown[button] {
		return false
	}
	if threshold < 0 {
		threshold = s.MouseDragThreshold
	}
	return s.mouseDragMaxDistSqr[button] >= threshold*threshold
}

// MouseDragDelta returns the pointer offset from the click position while
// dragging past threshold, else zero.
func (s *InputState) MouseDragDelta(button MouseButton, threshold float32) Vec2 {
	if !s.IsMouseDragging(button, threshold) || !mousePosValid(s.MousePos) {
		return Vec2{}
	}
	return s.MousePos.Sub(s.mouseClickedPos[button])
}

// AnyMouseDown returns true if any button is held.
func (s *InputState) AnyMouseDown() bool {
	for _, d := range s.mouseDown {
		if d {
			return true
		}
	}
	return false
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true only on the frame the key went down.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDownDuration[key] == 0
}

// KeyReleased returns true if the key was down last frame and is up now.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDownDurationPrev[key] >= 0 && !s.keyDown[key]
}

// KeyDownDuration returns how long the key has been held, or -1 when up.
func (s *InputState) KeyDownDuration(key Key) float32 {
	if key < 0 || key >= KeyCount {
		return -1
	}
	return s.keyDownDuration[key]
}

// KeyPressedRepeat returns true on the initial press, then after
// KeyRepeatDelay every KeyRepeatRate seconds while held.
// Use this for actions that should repeat when holding a key (like backspace in text input).
func (s *InputState) KeyPressedRepeat(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	t := s.keyDownDuration[key]
	if t < 0 {
		return false
	}
	return repeatAmount(t-s.DeltaTime, t, s.KeyRepeatDelay, s.KeyRepeatRate) > 0
}

// repeatAmount counts repeat ticks crossed between t0 and t1.
func repeatAmount(t0, t1, delay, rate float32) int {
	if t1 == 0 {
		return 1
	}
	if t0 >= t1 {
		return 0
	}
	if rate <= 0 {
		if t0 < delay && t1 >= delay {
			return 1
		}
		return 0
	}
	count := func(t float32) int {
		if t < delay {
			return -1
		}
		return int((t - delay) / rate)
	}
	return count(t1) - count(t0)
}

// HasInputChars returns true if there are typed characters this frame.
func (s *InputState) HasInputChars() bool {
	return len(s.InputChars) > 0
}

// ConsumeInputChars clears all typed characters for this frame.
// Call this after processing a keyboard shortcut to prevent the shortcut key
// from also being typed into text fields.
func (s *InputState) ConsumeInputChars() {
	s.InputChars = s.InputChars[:0]
}

var keyNames = map[Key]string{
	KeyNone:       "--",
	KeyTab:        "Tab",
	KeyLeft:       "Left",
	KeyRight:      "Right",
	KeyUp:         "Up",
	KeyDown:       "Down",
	KeyPageUp:     "PgUp",
	KeyPageDown:   "PgDn",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyInsert:     "Ins",
	KeyDelete:     "Del",
	KeyBackspace:  "Backspace",
	KeySpace:      "Space",
	KeyEnter:      "Enter",
	KeyEscape:     "Esc",
	KeyLeftCtrl:   "LCtrl",
	KeyLeftShift:  "LShift",
	KeyLeftAlt:    "LAlt",
	KeyLeftSuper:  "LSuper",
	KeyRightCtrl:  "RCtrl",
	KeyRightShift: "RShift",
	KeyRightAlt:   "RAlt",
	KeyRightSuper: "RSuper",
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}
