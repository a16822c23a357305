package imcore

import (
	"io"
	"log/slog"
	"testing"
)

// harness drives a context through whole frames with one fixed window at
// the origin, so item rectangles are stable from the first frame.
type harness struct {
	t   *testing.T
	ctx *Context
	dd  DrawData
}

func newHarness(t *testing.T, opts ...ContextOption) *harness {
	t.Helper()
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]ContextOption{WithLogger(quiet)}, opts...)
	return &harness{t: t, ctx: NewContext(opts...)}
}

// frame runs one frame, declaring fn inside the "Test" window.
func (h *harness) frame(fn func(ctx *Context)) {
	h.t.Helper()
	ctx := h.ctx
	ctx.NewFrame(Vec2{800, 600}, 1.0/60)
	ctx.SetNextWindowPos(Vec2{0, 0}, CondAlways)
	ctx.SetNextWindowSize(Vec2{400, 300}, CondAlways)
	if ctx.Begin("Test", nil, WindowNoTitleBar|WindowNoMove) {
		fn(ctx)
	}
	ctx.End()
	ctx.Render(&h.dd)
}

func (h *harness) moveTo(p Vec2) { h.ctx.Events.AddMousePos(p.X, p.Y) }

func (h *harness) press() { h.ctx.Events.AddMouseButton(MouseButtonLeft, true) }

func (h *harness) release() { h.ctx.Events.AddMouseButton(MouseButtonLeft, false) }

func (h *harness) key(k Key) {
	h.ctx.Events.AddKey(k, true)
}

func (h *harness) keyUp(k Key) {
	h.ctx.Events.AddKey(k, false)
}

func center(r Rect) Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// expectUsagePanic runs fn and fails unless it panics with a *UsageError
// reported by op.
func expectUsagePanic(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		ue, ok := r.(*UsageError)
		if !ok {
			t.Fatalf("expected *UsageError panic from %s, got %v", op, r)
		}
		if ue.Op != op {
			t.Errorf("UsageError.Op = %q, want %q (%v)", ue.Op, op, ue)
		}
	}()
	fn()
}
