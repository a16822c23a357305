package imcore

import (
	"errors"
	"testing"
)

func TestHashDeterministic(t *testing.T) {
	a := Hash("Button", 0)
	b := Hash("Button", 0)
	if a != b {
		t.Fatalf("Hash not deterministic: %d != %d", a, b)
	}
	if Hash("Button", 0) == Hash("Button", 42) {
		t.Error("seed should change the hash")
	}
	if Hash("", 0) != ID(fnvOffset32) {
		t.Errorf("empty label with zero seed should be the offset basis, got %#x", Hash("", 0))
	}
	// Known FNV-1a value of "a".
	if got := Hash("a", 0); got != 0xe40c292c {
		t.Errorf("Hash(a) = %#x, want 0xe40c292c", got)
	}
}

func TestHashIntDistinct(t *testing.T) {
	seen := make(map[ID]int)
	for i := -50; i < 50; i++ {
		id := HashInt(i, 7)
		if prev, ok := seen[id]; ok {
			t.Fatalf("HashInt(%d) collides with HashInt(%d)", i, prev)
		}
		seen[id] = i
	}
}

func TestVisibleLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Save", "Save"},
		{"Save##toolbar", "Save"},
		{"##hidden", ""},
		{"a#b", "a#b"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := VisibleLabel(tt.label); got != tt.want {
			t.Errorf("VisibleLabel(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestHiddenSuffixChangesID(t *testing.T) {
	ctx := NewContext()
	if ctx.GetID("OK##1") == ctx.GetID("OK##2") {
		t.Error("labels differing only after ## must hash differently")
	}
}

func TestPushIDScopes(t *testing.T) {
	ctx := NewContext()
	ctx.NewFrame(Vec2{800, 600}, 0)
	ctx.Begin("IDs", nil, 0)

	outer := ctx.GetID("Delete")
	ctx.PushID("row1")
	row1 := ctx.GetID("Delete")
	ctx.PopID()
	ctx.PushIDInt(1)
	rowInt := ctx.GetID("Delete")
	ctx.PopID()
	again := ctx.GetID("Delete")

	if outer == row1 || outer == rowInt || row1 == rowInt {
		t.Errorf("scoped IDs should differ: outer=%d row1=%d rowInt=%d", outer, row1, rowInt)
	}
	if outer != again {
		t.Errorf("PopID should restore the scope: %d != %d", outer, again)
	}

	ctx.End()
	ctx.EndFrame()
}

func TestIDStableAcrossFrames(t *testing.T) {
	ctx := NewContext()
	var ids [2]ID
	for i := range ids {
		ctx.NewFrame(Vec2{800, 600}, 0)
		ctx.Begin("Stable", nil, 0)
		ctx.PushID("list")
		ids[i] = ctx.GetIDInt(3)
		ctx.PopID()
		ctx.End()
		ctx.EndFrame()
	}
	if ids[0] != ids[1] {
		t.Errorf("ID changed between frames: %d != %d", ids[0], ids[1])
	}
}

func TestPopIDUnderflowPanics(t *testing.T) {
	ctx := NewContext()
	ctx.NewFrame(Vec2{800, 600}, 0)
	ctx.Begin("Underflow", nil, 0)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("PopID past the window scope should panic")
		}
		err, ok := r.(error)
		var ue *UsageError
		if !ok || !errors.As(err, &ue) {
			t.Fatalf("panic value %v is not a *UsageError", r)
		}
		if ue.Op != "PopID" {
			t.Errorf("Op = %q, want PopID", ue.Op)
		}
	}()
	ctx.PopID()
}
