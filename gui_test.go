package imcore

import (
	"errors"
	"testing"
)

type recordingRenderer struct {
	frames  int
	lists   int
	width   int
	height  int
	failure error
}

func (r *recordingRenderer) RenderDrawData(dd *DrawData) error {
	r.frames++
	r.lists = len(dd.CmdLists)
	return r.failure
}

func (r *recordingRenderer) Resize(width, height int) {
	r.width, r.height = width, height
}

func TestGUIFrameLoop(t *testing.T) {
	r := &recordingRenderer{}
	g := New(r, WithContextOptions(WithLogger(quietLogger())))

	for i := 0; i < 2; i++ {
		ctx := g.Begin(Vec2{320, 240}, 1.0/60)
		if ctx != g.Context() {
			t.Fatal("Begin should hand out the GUI's context")
		}
		ctx.SetNextWindowSize(Vec2{100, 80}, CondOnce)
		if ctx.Begin("Tools", nil, 0) {
			ctx.Text("ok")
		}
		ctx.End()
		if err := g.End(); err != nil {
			t.Fatalf("End: %v", err)
		}
	}
	if r.frames != 2 || r.lists != 1 {
		t.Errorf("renderer saw %d frames, %d lists", r.frames, r.lists)
	}
	if dd := g.DrawData(); !dd.Valid || dd.DisplaySize != (Vec2{320, 240}) {
		t.Errorf("draw data = %+v", dd)
	}

	g.Resize(640, 480)
	if r.width != 640 || r.height != 480 {
		t.Errorf("resize forwarded as %dx%d", r.width, r.height)
	}
}

func TestGUIRendererError(t *testing.T) {
	boom := errors.New("device lost")
	g := New(&recordingRenderer{failure: boom}, WithContextOptions(WithLogger(quietLogger())))
	g.Begin(Vec2{100, 100}, 0)
	if err := g.End(); !errors.Is(err, boom) {
		t.Errorf("End error = %v, want the renderer's", err)
	}
}

func TestGUIHeadless(t *testing.T) {
	g := New(nil, WithContextOptions(WithLogger(quietLogger())))
	ctx := g.Begin(Vec2{100, 100}, 0)
	ctx.Begin("Only", nil, 0)
	ctx.End()
	if err := g.End(); err != nil {
		t.Errorf("headless End: %v", err)
	}
	g.Resize(1, 1)
	if !g.DrawData().Valid {
		t.Error("headless End should still build draw data")
	}
}
