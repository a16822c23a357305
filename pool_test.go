package imcore

import "testing"

type poolItem struct {
	name  string
	count int
}

func TestPoolGetOrAdd(t *testing.T) {
	p := NewPool[poolItem]()
	v, created := p.GetOrAdd(1, 10)
	if !created {
		t.Fatal("first GetOrAdd should create")
	}
	v.name = "one"

	again, created := p.GetOrAdd(1, 11)
	if created || again != v || again.name != "one" {
		t.Error("second GetOrAdd should return the same value")
	}
	if f, ok := p.LastFrame(1); !ok || f != 11 {
		t.Errorf("LastFrame = %d,%v, want 11", f, ok)
	}
	if p.Get(2) != nil {
		t.Error("Get of a missing id should be nil")
	}
	if p.Index(2) != -1 || p.GetByIndex(5) != nil || p.GetByIndex(-1) != nil {
		t.Error("missing lookups should not fail")
	}
}

func TestPoolRemoveRecyclesSlot(t *testing.T) {
	p := NewPool[poolItem]()
	p.GetOrAdd(1, 1)
	p.GetOrAdd(2, 1)
	if !p.Remove(1) || p.Remove(1) {
		t.Fatal("Remove should succeed once")
	}
	if p.Len() != 1 {
		t.Errorf("Len = %d, want 1", p.Len())
	}
	v, created := p.GetOrAdd(3, 2)
	if !created || v.name != "" {
		t.Error("recycled slot must start zeroed")
	}
	if p.Cap() != 2 {
		t.Errorf("Cap = %d, want 2 (slot reused)", p.Cap())
	}
}

func TestPoolEvict(t *testing.T) {
	p := NewPool[poolItem]()
	p.GetOrAdd(1, 1)
	p.GetOrAdd(2, 5)
	p.GetOrAdd(3, 9)

	var order []ID
	n := p.Evict(10, 4, func(id ID, _ *poolItem) { order = append(order, id) })
	if n != 2 {
		t.Fatalf("evicted %d, want 2", n)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("evict order = %v, want oldest first [1 2]", order)
	}
	if p.Get(3) == nil {
		t.Error("recent entry must survive")
	}
	if p.Evict(3, 4, nil) != 0 {
		t.Error("no eviction before maxAge frames have passed")
	}
}

func TestPoolEach(t *testing.T) {
	p := NewPool[poolItem]()
	for i := 1; i <= 3; i++ {
		v, _ := p.GetOrAdd(ID(i), 0)
		v.count = i
	}
	p.Remove(2)
	sum := 0
	p.Each(func(_ ID, v *poolItem) { sum += v.count })
	if sum != 4 {
		t.Errorf("sum = %d, want 4", sum)
	}
	p.Clear()
	if p.Len() != 0 {
		t.Error("Clear should remove everything")
	}
}

func TestStorage(t *testing.T) {
	s := NewStorage()
	if s.Int(1, 7) != 7 || s.Bool(2, true) != true || s.Float(3, 1.5) != 1.5 {
		t.Error("unset keys should return defaults")
	}
	s.SetInt(1, -42)
	s.SetBool(2, false)
	s.SetFloat(3, 0.25)
	if s.Int(1, 0) != -42 {
		t.Errorf("Int = %d", s.Int(1, 0))
	}
	if s.Bool(2, true) {
		t.Error("Bool should be false")
	}
	if s.Float(3, 0) != 0.25 {
		t.Errorf("Float = %v", s.Float(3, 0))
	}
	if !s.Has(1) || s.Has(99) {
		t.Error("Has mismatch")
	}

	s.SetRef(4, []string{"a"})
	if got := StorageValue(s, 4, []string(nil)); len(got) != 1 {
		t.Errorf("StorageValue = %v", got)
	}
	if got := StorageValue(s, 4, 3); got != 3 {
		t.Error("StorageValue with another type should return the default")
	}
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}

	s.Delete(1)
	if s.Has(1) {
		t.Error("Delete should remove the key")
	}
	s.Clear()
	if s.Len() != 0 {
		t.Error("Clear should empty the storage")
	}
}

func TestOnceUponAFrame(t *testing.T) {
	ctx := NewContext()
	var once OnceUponAFrame
	ctx.NewFrame(Vec2{100, 100}, 0)
	if !once.Test(ctx) || once.Test(ctx) {
		t.Error("Test should be true exactly once per frame")
	}
	ctx.EndFrame()
	ctx.NewFrame(Vec2{100, 100}, 0)
	if !once.Test(ctx) {
		t.Error("Test should reset on the next frame")
	}
	ctx.EndFrame()
}

func TestClipboardProviders(t *testing.T) {
	ctx := NewContext()
	ctx.SetClipboardText("copied")
	if got := ctx.ClipboardText(); got != "copied" {
		t.Errorf("memory clipboard = %q", got)
	}

	var system string
	ctx.SetClipboardProvider(ClipboardFuncs{
		Get: func() string { return system },
		Set: func(s string) { system = s },
	})
	ctx.SetClipboardText("system")
	if system != "system" || ctx.ClipboardText() != "system" {
		t.Error("ClipboardFuncs should forward to the functions")
	}

	ctx.SetClipboardProvider(nil)
	if ctx.ClipboardText() != "" {
		t.Error("nil provider should restore an empty in-process clipboard")
	}

	var empty ClipboardFuncs
	empty.SetText("ignored")
	if empty.GetText() != "" {
		t.Error("zero ClipboardFuncs should be inert")
	}
}
