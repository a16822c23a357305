package imcore

import (
	"io"
	"log/slog"
	"strings"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAmbientContextLifecycle(t *testing.T) {
	SetCurrentContext(nil)
	t.Cleanup(func() { SetCurrentContext(nil) })

	first := CreateContext(WithLogger(quietLogger()))
	if CurrentContext() != first {
		t.Fatal("first CreateContext should become current")
	}
	second := CreateContext(WithLogger(quietLogger()))
	if CurrentContext() != first {
		t.Error("CreateContext must not replace an existing current context")
	}
	SetCurrentContext(second)
	if CurrentContext() != second {
		t.Error("SetCurrentContext did not switch")
	}

	DestroyContext(first)
	if CurrentContext() != second {
		t.Error("destroying a non-current context must leave the current one")
	}
	DestroyContext(second)
	if CurrentContext() != nil {
		t.Error("destroying the current context should clear it")
	}
	DestroyContext(nil)
}

func TestAmbientFrame(t *testing.T) {
	SetCurrentContext(nil)
	t.Cleanup(func() { SetCurrentContext(nil) })
	ctx := CreateContext(WithLogger(quietLogger()))

	var dd DrawData
	var pressed bool
	for i := 0; i < 2; i++ {
		NewFrame(Vec2{640, 480}, 1.0/60)
		if Begin("Ambient", nil, 0) {
			PushID("scope")
			Text("hello")
			SameLine()
			pressed = Button("Go")
			PopID()
		}
		End()
		Render(&dd)
	}
	if pressed {
		t.Error("nothing clicked the button")
	}
	if !dd.Valid || len(dd.CmdLists) != 1 {
		t.Fatalf("draw data valid=%v lists=%d", dd.Valid, len(dd.CmdLists))
	}
	if ctx.FindWindowByName("Ambient") == nil {
		t.Error("window not created on the ambient context")
	}

	DestroyContext(ctx)
	if ctx.WindowCount() != 0 {
		t.Error("DestroyContext should drop every window")
	}
}

func TestAmbientWithoutContext(t *testing.T) {
	SetCurrentContext(nil)
	defer func() {
		r := recover()
		ue, ok := r.(*UsageError)
		if !ok {
			t.Fatalf("expected *UsageError, got %v", r)
		}
		if ue.Op != "NewFrame" || !strings.Contains(ue.Error(), "CreateContext") {
			t.Errorf("error = %v", ue)
		}
	}()
	NewFrame(Vec2{100, 100}, 0)
}
